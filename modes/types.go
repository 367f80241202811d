package modes

import "github.com/lixenwraith/vi-lobby/engine"

// Mode is the input routing state, derived from look and conversation
type Mode uint8

const (
	ModeWalk   Mode = iota // Look engaged, movement keys drive the viewpoint
	ModePaused             // Look released, waiting for engage
	ModeChat               // Conversation open, keys edit the message line
)

var modeNames = [...]string{"walk", "paused", "chat"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// Sound is the mutable cue player
type Sound interface {
	SetMuted(muted bool)
	Muted() bool
}

// Renderer draws frames for the input handler
type Renderer interface {
	Render(f engine.Frame)
	Sync()
}
