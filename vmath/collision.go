package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box3 is an axis-aligned bounding box
type Box3 struct {
	Min, Max mgl64.Vec3
}

// BoxFromCenter creates a box centered on center with half extents half
func BoxFromCenter(center, half mgl64.Vec3) Box3 {
	return Box3{Min: center.Sub(half), Max: center.Add(half)}
}

// Valid reports whether the box has positive extent on every axis
// Zero-size and inverted boxes are never valid
func (b Box3) Valid() bool {
	return b.Max.X() > b.Min.X() && b.Max.Y() > b.Min.Y() && b.Max.Z() > b.Min.Z()
}

// Center returns the box midpoint
func (b Box3) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the box extents
func (b Box3) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// Translate returns the box shifted by d
func (b Box3) Translate(d mgl64.Vec3) Box3 {
	return Box3{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// Union returns the smallest box containing both boxes
func (b Box3) Union(o Box3) Box3 {
	return Box3{
		Min: mgl64.Vec3{math.Min(b.Min.X(), o.Min.X()), math.Min(b.Min.Y(), o.Min.Y()), math.Min(b.Min.Z(), o.Min.Z())},
		Max: mgl64.Vec3{math.Max(b.Max.X(), o.Max.X()), math.Max(b.Max.Y(), o.Max.Y()), math.Max(b.Max.Z(), o.Max.Z())},
	}
}

// Intersects reports interior overlap on all three axes
// Boxes that only share a face do not intersect, invalid boxes never intersect
func (b Box3) Intersects(o Box3) bool {
	if !b.Valid() || !o.Valid() {
		return false
	}
	return b.Max.X() > o.Min.X() && b.Min.X() < o.Max.X() &&
		b.Max.Y() > o.Min.Y() && b.Min.Y() < o.Max.Y() &&
		b.Max.Z() > o.Min.Z() && b.Min.Z() < o.Max.Z()
}

// Penetration returns the horizontal overlap depths of b into o
// Each depth is the smaller of the two separating distances on that axis
func (b Box3) Penetration(o Box3) (dx, dz float64) {
	dx = math.Min(b.Max.X()-o.Min.X(), o.Max.X()-b.Min.X())
	dz = math.Min(b.Max.Z()-o.Min.Z(), o.Max.Z()-b.Min.Z())
	return dx, dz
}
