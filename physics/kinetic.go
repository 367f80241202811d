package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-lobby/vmath"
)

// Body is the first-person viewpoint: an eye position with a standing
// collision box whose feet rest on the floor
type Body struct {
	Position  mgl64.Vec3
	EyeHeight float64
	HalfWidth float64
	Height    float64
}

// NewBody places a body at (x, z) with the eye pinned to the profile height
func NewBody(x, z float64, p BodyProfile) *Body {
	b := &Body{
		Position:  mgl64.Vec3{x, p.EyeHeight, z},
		EyeHeight: p.EyeHeight,
		HalfWidth: p.HalfWidth,
		Height:    p.Height,
	}
	return b
}

// PinHeight forces the eye to its fixed height; there is no vertical motion
func (b *Body) PinHeight() {
	b.Position[1] = b.EyeHeight
}

// Box returns the body's collision volume
// X/Z span ±HalfWidth around the position, Y spans feet to feet+Height
func (b *Body) Box() vmath.Box3 {
	feet := b.Position.Y() - b.EyeHeight
	return vmath.Box3{
		Min: mgl64.Vec3{b.Position.X() - b.HalfWidth, feet, b.Position.Z() - b.HalfWidth},
		Max: mgl64.Vec3{b.Position.X() + b.HalfWidth, feet + b.Height, b.Position.Z() + b.HalfWidth},
	}
}

// Translate moves the body by d
func (b *Body) Translate(d mgl64.Vec3) {
	b.Position = b.Position.Add(d)
}
