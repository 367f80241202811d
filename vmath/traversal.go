package vmath

import (
	"math"
)

// Face identifies which box face a horizontal ray entered through
type Face uint8

const (
	FaceNone Face = iota
	FaceX         // ray entered through a face perpendicular to X
	FaceZ         // ray entered through a face perpendicular to Z
)

// RayBox2 intersects the horizontal ray origin + t*dir with the box footprint
// in the XZ plane using the slab method. Returns the entry distance along the
// ray (0 when the origin is inside) and the entry face
func RayBox2(ox, oz, dirX, dirZ float64, b Box3) (t float64, face Face, ok bool) {
	tNear, tFar := math.Inf(-1), math.Inf(1)
	nearFace := FaceNone

	if dirX == 0 {
		if ox < b.Min.X() || ox > b.Max.X() {
			return 0, FaceNone, false
		}
	} else {
		inv := 1.0 / dirX
		t1 := (b.Min.X() - ox) * inv
		t2 := (b.Max.X() - ox) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tNear {
			tNear, nearFace = t1, FaceX
		}
		tFar = math.Min(tFar, t2)
	}

	if dirZ == 0 {
		if oz < b.Min.Z() || oz > b.Max.Z() {
			return 0, FaceNone, false
		}
	} else {
		inv := 1.0 / dirZ
		t1 := (b.Min.Z() - oz) * inv
		t2 := (b.Max.Z() - oz) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tNear {
			tNear, nearFace = t1, FaceZ
		}
		tFar = math.Min(tFar, t2)
	}

	if tNear > tFar || tFar < 0 {
		return 0, FaceNone, false
	}
	if tNear < 0 {
		return 0, nearFace, true
	}
	return tNear, nearFace, true
}
