package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-lobby/input"
	"github.com/lixenwraith/vi-lobby/vmath"
)

// Integrator converts held movement keys into a damped velocity
// Velocity X runs along the look right axis and Z along the look backward
// axis, so holding forward drives Z negative
type Integrator struct {
	Speed   float64 // Acceleration added per frame on a held axis
	Damping float64 // Fraction of velocity removed per frame, [0, 1)
}

// NewIntegrator creates an integrator from a movement profile
func NewIntegrator(p MovementProfile) *Integrator {
	return &Integrator{Speed: p.Speed, Damping: p.Damping}
}

// Step returns the next-frame velocity: decay first, then accelerate on
// axes whose keys are held. Axes with no key held only decay
func (in *Integrator) Step(v mgl64.Vec3, f input.Flags) mgl64.Vec3 {
	vx := v.X() - v.X()*in.Damping
	vz := v.Z() - v.Z()*in.Damping

	dirX, dirZ := Direction(f)

	if f.Forward || f.Backward {
		vz -= dirZ * in.Speed
	}
	if f.Left || f.Right {
		vx -= dirX * in.Speed
	}
	return mgl64.Vec3{vx, v.Y(), vz}
}

// Direction maps held keys to a normalized (right, forward) direction
// Opposing keys cancel, diagonals are scaled to unit length
func Direction(f input.Flags) (x, z float64) {
	z = b2f(f.Forward) - b2f(f.Backward)
	x = b2f(f.Right) - b2f(f.Left)
	return vmath.Normalize2(x, z)
}

// Displacement returns how far to move along the look right and forward axes
func Displacement(v mgl64.Vec3) (right, forward float64) {
	return -v.X(), -v.Z()
}

// HorizontalSpeed returns the velocity magnitude in the walking plane
func HorizontalSpeed(v mgl64.Vec3) float64 {
	return vmath.V3Horizontal(v).Len()
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
