package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (arrows, Esc, Enter, Ctrl+*, function keys)
	SpecialKeys map[tcell.Key]Action

	// Printable rune bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the default bindings: arrows and WASD move,
// q/e turn, Esc releases the look control, Enter re-engages it
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionForward,
			tcell.KeyDown:   ActionBackward,
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyEscape: ActionDisengage,
			tcell.KeyEnter:  ActionEngage,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
			tcell.KeyF2:     ActionVoice,
			tcell.KeyF3:     ActionMute,
		},
		Runes: map[rune]Action{
			'w': ActionForward,
			'W': ActionForward,
			's': ActionBackward,
			'S': ActionBackward,
			'a': ActionLeft,
			'A': ActionLeft,
			'd': ActionRight,
			'D': ActionRight,
			'q': ActionTurnLeft,
			'Q': ActionTurnLeft,
			'e': ActionTurnRight,
			'E': ActionTurnRight,
		},
	}
}

// Lookup returns the action bound to a key event, ActionNone when unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev == nil {
		return ActionNone
	}
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}

// Merge applies sparse overrides on top of the table
func (kt *KeyTable) Merge(override *KeyTable) {
	if override == nil {
		return
	}
	for k, a := range override.SpecialKeys {
		kt.SpecialKeys[k] = a
	}
	for r, a := range override.Runes {
		kt.Runes[r] = a
	}
}
