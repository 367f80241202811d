package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-lobby/physics"
	"github.com/lixenwraith/vi-lobby/vmath"
)

// Look is the first-person look control: a yaw angle and an engaged flag
// Movement is applied along the horizontal facing basis
type Look struct {
	Yaw      float64 // Radians, 0 looks down -Z
	TurnRate float64 // Radians per turn step

	engaged bool
}

// NewLook creates an engaged look control
func NewLook(yaw, turnRate float64) *Look {
	return &Look{Yaw: vmath.WrapAngle(yaw), TurnRate: turnRate, engaged: true}
}

// Engage captures the look control
func (l *Look) Engage() { l.engaged = true }

// Disengage releases the look control
func (l *Look) Disengage() { l.engaged = false }

// Engaged reports whether movement and look input are captured
func (l *Look) Engaged() bool { return l.engaged }

// Turn rotates by steps * TurnRate, positive turns left
func (l *Look) Turn(steps float64) {
	l.Yaw = vmath.WrapAngle(l.Yaw + steps*l.TurnRate)
}

// Basis returns the horizontal forward and right vectors
func (l *Look) Basis() (forward, right mgl64.Vec3) {
	return vmath.Basis(l.Yaw)
}

// MoveForward translates the body along the facing direction
func (l *Look) MoveForward(b *physics.Body, d float64) {
	fwd, _ := l.Basis()
	b.Translate(fwd.Mul(d))
}

// MoveRight translates the body along the strafe direction
func (l *Look) MoveRight(b *physics.Body, d float64) {
	_, right := l.Basis()
	b.Translate(right.Mul(d))
}
