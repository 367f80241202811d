package vmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

// TestClamp verifies values are limited to the closed interval
func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{0, -1, 1, 0},
		{-5, -1, 1, -1},
		{5, -1, 1, 1},
		{1, -1, 1, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clamp(tt.v, tt.lo, tt.hi))
	}
}

// TestNormalize2 verifies unit length and the zero vector case
func TestNormalize2(t *testing.T) {
	x, z := Normalize2(0, 0)
	assert.Zero(t, x)
	assert.Zero(t, z)

	x, z = Normalize2(1, 1)
	assert.InDelta(t, 1.0, math.Hypot(x, z), 1e-12)
	assert.InDelta(t, x, z, 1e-12)

	x, z = Normalize2(0, -3)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, -1.0, z)
}

func TestWrapAngle(t *testing.T) {
	assert.InDelta(t, 0.0, WrapAngle(2*math.Pi), 1e-12)
	assert.InDelta(t, math.Pi, WrapAngle(-math.Pi), 1e-12)
	assert.InDelta(t, -math.Pi/2, WrapAngle(3*math.Pi/2), 1e-12)
}

// assertVec compares component-wise with an absolute tolerance
// mgl64 ApproxEqual switches to ε² near zero, which rejects sin/cos residue
func assertVec(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12, "component %d of %v", i, got)
	}
}

// TestBasis verifies the camera convention: yaw 0 looks down -Z
func TestBasis(t *testing.T) {
	tests := []struct {
		name       string
		yaw        float64
		fwd, right mgl64.Vec3
	}{
		{"yaw 0", 0, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{1, 0, 0}},
		{"quarter left", math.Pi / 2, mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{0, 0, -1}},
		{"about face", math.Pi, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{-1, 0, 0}},
		{"quarter right", -math.Pi / 2, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fwd, right := Basis(tt.yaw)
			assertVec(t, tt.fwd, fwd)
			assertVec(t, tt.right, right)
		})
	}

	// Basis stays orthonormal and horizontal for arbitrary yaw
	for _, yaw := range []float64{0.3, 1.7, -2.9} {
		fwd, right := Basis(yaw)
		assert.InDelta(t, 1.0, fwd.Len(), 1e-12)
		assert.InDelta(t, 1.0, right.Len(), 1e-12)
		assert.InDelta(t, 0.0, fwd.Dot(right), 1e-12)
		assert.Zero(t, fwd.Y())
	}
}
