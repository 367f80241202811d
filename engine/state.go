package engine

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-lobby/input"
	"github.com/lixenwraith/vi-lobby/physics"
)

// State is the per-session mutable walkthrough state, owned by the Driver
type State struct {
	Body     *physics.Body
	Velocity mgl64.Vec3
	Input    *input.Hold
}

// NewState places the viewer at (x, z) at rest with no keys held
func NewState(x, z float64, body physics.BodyProfile, holdTimeout time.Duration) *State {
	return &State{
		Body:  physics.NewBody(x, z, body),
		Input: input.NewHold(holdTimeout),
	}
}
