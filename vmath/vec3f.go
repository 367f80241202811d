package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world vertical axis
var Up = mgl64.Vec3{0, 1, 0}

// V3Horizontal drops the vertical component
func V3Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// V3Distance returns the euclidean distance between a and b
func V3Distance(a, b mgl64.Vec3) float64 {
	return a.Sub(b).Len()
}

// Basis returns the horizontal forward and right unit vectors for a yaw angle
// Yaw 0 looks down -Z, positive yaw turns left (counter-clockwise seen from above)
func Basis(yaw float64) (forward, right mgl64.Vec3) {
	sin, cos := math.Sincos(yaw)
	right = mgl64.Vec3{cos, 0, -sin}
	// forward = up × right
	forward = Up.Cross(right)
	return forward, right
}
