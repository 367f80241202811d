package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-lobby/vmath"
)

// Zone is a point-and-radius trigger. Without RequireExit it signals on
// every check inside the radius while no conversation is open. With
// RequireExit (the lobby default) it signals once per visit, which is
// stricter than that plain condition
type Zone struct {
	Center mgl64.Vec3
	Radius float64

	// RequireExit re-arms the zone only after the viewpoint has left it,
	// so closing a conversation while still inside does not reopen it
	RequireExit bool

	latched bool
}

// NewZone creates a trigger zone
func NewZone(center mgl64.Vec3, radius float64, requireExit bool) *Zone {
	return &Zone{Center: center, Radius: radius, RequireExit: requireExit}
}

// Contains reports whether pos is within the radius, boundary included
func (z *Zone) Contains(pos mgl64.Vec3) bool {
	return vmath.V3Distance(pos, z.Center) <= z.Radius
}

// Check returns true when pos is inside and no conversation is open
func (z *Zone) Check(pos mgl64.Vec3, conversationOpen bool) bool {
	if !z.Contains(pos) {
		z.latched = false
		return false
	}
	if conversationOpen || (z.RequireExit && z.latched) {
		return false
	}
	z.latched = true
	return true
}

// Armed reports whether the next check inside the zone may signal
func (z *Zone) Armed() bool {
	return !z.RequireExit || !z.latched
}
