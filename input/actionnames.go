package input

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

var actionNames = map[Action]string{
	ActionForward:   "forward",
	ActionBackward:  "backward",
	ActionLeft:      "left",
	ActionRight:     "right",
	ActionTurnLeft:  "turn_left",
	ActionTurnRight: "turn_right",
	ActionEngage:    "engage",
	ActionDisengage: "disengage",
	ActionQuit:      "quit",
	ActionVoice:     "voice",
	ActionMute:      "mute",
}

// ActionByName resolves a config action name, case-insensitive
func ActionByName(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return a, true
		}
	}
	return ActionNone, false
}

// Named special keys accepted in key config
var specialKeyNames = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"enter":     tcell.KeyEnter,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"ctrl+c":    tcell.KeyCtrlC,
	"ctrl+q":    tcell.KeyCtrlQ,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
	"f3":        tcell.KeyF3,
}

// Rune aliases for keys that read badly as bare config strings
var runeAliases = map[string]rune{
	"space": ' ',
	"comma": ',',
	"dot":   '.',
}
