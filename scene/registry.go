package scene

import (
	"github.com/lixenwraith/vi-lobby/physics"
	"github.com/lixenwraith/vi-lobby/vmath"
)

// Kind classifies scene geometry for rendering
type Kind uint8

const (
	KindFloor Kind = iota
	KindWall
	KindDesk
	KindSofa
	KindTable
	KindTrunk
	KindFoliage
)

var kindNames = [...]string{"floor", "wall", "desk", "sofa", "table", "trunk", "foliage"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Registry is the immutable list of obstacle volumes for one scene
// Boxes are computed once at build time, geometry never moves
type Registry struct {
	obstacles []physics.Obstacle
	kinds     []Kind
}

// Obstacles returns the volumes in registration order
// The slice is shared, callers must not modify it
func (r *Registry) Obstacles() []physics.Obstacle {
	return r.obstacles
}

// Kind returns the geometry kind of obstacle i
func (r *Registry) Kind(i int) Kind {
	return r.kinds[i]
}

// Len returns the number of registered volumes
func (r *Registry) Len() int {
	return len(r.obstacles)
}

// Bounds returns the union of all non-floor volumes
func (r *Registry) Bounds() (vmath.Box3, bool) {
	var out vmath.Box3
	found := false
	for _, o := range r.obstacles {
		if o.Floor {
			continue
		}
		if !found {
			out, found = o.Box, true
			continue
		}
		out = out.Union(o.Box)
	}
	return out, found
}

// Builder accumulates volumes while a scene is constructed
type Builder struct {
	obstacles []physics.Obstacle
	kinds     []Kind
}

// NewBuilder creates an empty registry builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Add registers a collidable volume and returns its index
func (b *Builder) Add(kind Kind, name string, box vmath.Box3) int {
	b.obstacles = append(b.obstacles, physics.Obstacle{Name: name, Box: box, Floor: kind == KindFloor})
	b.kinds = append(b.kinds, kind)
	return len(b.obstacles) - 1
}

// Build freezes the volumes into a registry
func (b *Builder) Build() *Registry {
	r := &Registry{
		obstacles: make([]physics.Obstacle, len(b.obstacles)),
		kinds:     make([]Kind, len(b.kinds)),
	}
	copy(r.obstacles, b.obstacles)
	copy(r.kinds, b.kinds)
	return r
}
