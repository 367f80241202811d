package physics

import (
	"github.com/lixenwraith/vi-lobby/vmath"
)

// Obstacle is a static collision volume registered for one piece of scene geometry
type Obstacle struct {
	Name  string
	Box   vmath.Box3
	Floor bool // Floor volumes are skipped, there is no vertical motion
}

// Room is the horizontal interval the viewpoint is always clamped into
type Room struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
}

// Clamp returns x and z limited to the room
func (r Room) Clamp(x, z float64) (float64, float64) {
	return vmath.Clamp(x, r.MinX, r.MaxX), vmath.Clamp(z, r.MinZ, r.MaxZ)
}

// Contains reports whether (x, z) lies within the room, bounds included
func (r Room) Contains(x, z float64) bool {
	return x >= r.MinX && x <= r.MaxX && z >= r.MinZ && z <= r.MaxZ
}

// Axis names the axis a contact was resolved along
type Axis uint8

const (
	AxisX Axis = iota
	AxisZ
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "z"
}

// Contact records one push applied by the resolver
type Contact struct {
	Index int     // Obstacle index in the slice passed to Resolve
	Axis  Axis    // Axis the push was applied along
	Push  float64 // Signed push distance
}

// Resolver pushes the viewpoint out of static obstacles
type Resolver struct {
	Room Room

	// MaxPasses bounds the number of sweeps over the obstacle list
	// 1 is a single greedy pass: a push out of one obstacle is not re-checked
	// against obstacles already visited. Larger values repeat the sweep until
	// a pass applies no push
	MaxPasses int
}

// NewResolver creates a single-pass resolver for the room
func NewResolver(room Room) *Resolver {
	return &Resolver{Room: room, MaxPasses: 1}
}

// Resolve clamps the body into the room, pins its eye height, then pushes it
// out of every overlapping non-floor obstacle along the axis of smaller
// penetration. Ties go to Z. Runs in O(passes * len(obstacles)) and never fails
func (r *Resolver) Resolve(b *Body, obstacles []Obstacle) []Contact {
	r.clamp(b)

	passes := r.MaxPasses
	if passes < 1 {
		passes = 1
	}

	var contacts []Contact
	view := b.Box()
	for pass := 0; pass < passes; pass++ {
		pushed := false
		for i := range obstacles {
			o := &obstacles[i]
			if o.Floor || !view.Intersects(o.Box) {
				continue
			}

			dx, dz := view.Penetration(o.Box)
			center := o.Box.Center()

			c := Contact{Index: i}
			if dx < dz {
				if b.Position.X() < center.X() {
					dx = -dx
				}
				b.Position[0] += dx
				c.Axis, c.Push = AxisX, dx
			} else {
				if b.Position.Z() < center.Z() {
					dz = -dz
				}
				b.Position[2] += dz
				c.Axis, c.Push = AxisZ, dz
			}

			contacts = append(contacts, c)
			view = b.Box()
			pushed = true
		}
		if !pushed {
			break
		}
	}

	// A push may not leave the room
	if len(contacts) > 0 {
		r.clamp(b)
	}
	return contacts
}

func (r *Resolver) clamp(b *Body) {
	x, z := r.Room.Clamp(b.Position.X(), b.Position.Z())
	b.Position[0] = x
	b.Position[2] = z
	b.PinHeight()
}
