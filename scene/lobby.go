package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-lobby/vmath"
)

// Landmark is a non-collidable point of interest drawn on the map
type Landmark struct {
	Name     string
	Position mgl64.Vec3 // Base of the figure
	Height   float64    // Vertical extent drawn in first person, 0 for a single glyph
	Glyph    rune
}

// Lobby dimensions
const (
	LobbyHalfWidth = 12.0 // Walls at x = ±12
	LobbyHalfDepth = 10.0 // Walls at z = ±10
	LobbyHeight    = 6.0
	wallThickness  = 0.2
)

// ConciergePosition is where the concierge stands behind the desk
var ConciergePosition = mgl64.Vec3{0, 0, -6}

// Scene bundles the obstacle registry with decorative landmarks
type Scene struct {
	Registry  *Registry
	Landmarks []Landmark
}

// Lobby builds the reception lobby: floor, four walls, reception desk,
// two sofas, two coffee tables and two potted trees
func Lobby() *Scene {
	b := NewBuilder()

	// Floor plane, 24 x 20
	b.Add(KindFloor, "floor", vmath.Box3{
		Min: mgl64.Vec3{-LobbyHalfWidth, 0, -LobbyHalfDepth},
		Max: mgl64.Vec3{LobbyHalfWidth, 0, LobbyHalfDepth},
	})

	// Walls are thin slabs just outside the floor edge
	hw, hd, ht := LobbyHalfWidth, LobbyHalfDepth, LobbyHeight/2
	b.Add(KindWall, "wall left", sized(-hw-wallThickness/2, ht, 0, wallThickness, LobbyHeight, hd*2))
	b.Add(KindWall, "wall right", sized(hw+wallThickness/2, ht, 0, wallThickness, LobbyHeight, hd*2))
	b.Add(KindWall, "wall back", sized(0, ht, -hd-wallThickness/2, hw*2, LobbyHeight, wallThickness))
	b.Add(KindWall, "wall front", sized(0, ht, hd+wallThickness/2, hw*2, LobbyHeight, wallThickness))

	// Elliptical desk (rx 3.2, ry 0.9) extruded 0.95 toward the entrance
	b.Add(KindDesk, "reception desk", vmath.Box3{
		Min: mgl64.Vec3{-3.2, 0.475 - 0.9, -6},
		Max: mgl64.Vec3{3.2, 0.475 + 0.9, -6 + 0.95},
	})

	for _, x := range []float64{-5, 5} {
		addSofa(b, x)
		addCoffeeTable(b, x, -3.2)
	}
	for _, x := range []float64{-6.5, 6.5} {
		addTree(b, x, -2.5)
	}

	return &Scene{
		Registry: b.Build(),
		Landmarks: []Landmark{
			{Name: "concierge", Position: ConciergePosition, Height: 1.75, Glyph: '@'},
			{Name: "sign", Position: mgl64.Vec3{0, 2.8, -6}, Glyph: 'C'},
			{Name: "window left", Position: mgl64.Vec3{-8, 2, -9.8}, Height: 2, Glyph: '#'},
			{Name: "window right", Position: mgl64.Vec3{8, 2, -9.8}, Height: 2, Glyph: '#'},
		},
	}
}

func addSofa(b *Builder, x float64) {
	side := sideName(x)
	b.Add(KindSofa, "sofa seat "+side, sized(x, 0.25, -4, 2.2, 0.5, 0.9))
	b.Add(KindSofa, "sofa back "+side, sized(x, 0.65, -4.45, 2.2, 0.8, 0.15))
}

func addCoffeeTable(b *Builder, x, z float64) {
	// Cylinder top, radius 0.5 tapering to 0.52
	b.Add(KindTable, "coffee table "+sideName(x), sized(x, 0.33, z, 1.04, 0.06, 1.04))
}

func addTree(b *Builder, x, z float64) {
	side := sideName(x)
	b.Add(KindFoliage, "tree foliage "+side, sized(x, 1.6, z, 1.4, 1.4, 1.4))
	b.Add(KindTrunk, "tree trunk "+side, sized(x, 0.6, z, 0.4, 1.2, 0.4))
}

// sized builds a box from a center and full extents
func sized(cx, cy, cz, w, h, d float64) vmath.Box3 {
	return vmath.BoxFromCenter(mgl64.Vec3{cx, cy, cz}, mgl64.Vec3{w / 2, h / 2, d / 2})
}

func sideName(x float64) string {
	if x < 0 {
		return "left"
	}
	return "right"
}
