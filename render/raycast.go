package render

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-lobby/scene"
	"github.com/lixenwraith/vi-lobby/vmath"
)

// Hit is one ray/obstacle intersection
type Hit struct {
	Index int        // Obstacle index in the registry
	Depth float64    // Perpendicular distance along the view direction
	Face  vmath.Face // Entry face, used for side shading
}

// Camera is the horizontal projection of the viewpoint
type Camera struct {
	Position mgl64.Vec3
	Forward  mgl64.Vec3
	Right    mgl64.Vec3
	FOV      float64 // Horizontal field of view in radians
}

// NewCamera builds a camera from a position and yaw
func NewCamera(pos mgl64.Vec3, yaw, fov float64) Camera {
	f, r := vmath.Basis(yaw)
	return Camera{Position: pos, Forward: f, Right: r, FOV: fov}
}

// ColumnDir returns the unnormalized ray for column col of width columns
// The forward component is 1 so ray distance equals perpendicular depth
func (c Camera) ColumnDir(col, width int) (dx, dz float64) {
	k := 0.0
	if width > 1 {
		k = (2*(float64(col)+0.5)/float64(width) - 1) * math.Tan(c.FOV/2)
	}
	d := c.Forward.Add(c.Right.Mul(k))
	return d.X(), d.Z()
}

// Project maps a world point to a horizontal screen offset in [-1, 1] and its depth
// ok is false for points behind the camera
func (c Camera) Project(p mgl64.Vec3) (x, depth float64, ok bool) {
	rel := p.Sub(c.Position)
	depth = rel.Dot(c.Forward)
	if depth <= vmath.Epsilon {
		return 0, 0, false
	}
	x = rel.Dot(c.Right) / depth / math.Tan(c.FOV/2)
	return x, depth, true
}

// CastColumn returns every non-floor obstacle hit by the ray, farthest first
// Obstacles containing the camera are skipped
func CastColumn(reg *scene.Registry, ox, oz, dx, dz float64, hits []Hit) []Hit {
	hits = hits[:0]
	for i, o := range reg.Obstacles() {
		if o.Floor || !o.Box.Valid() {
			continue
		}
		t, face, ok := vmath.RayBox2(ox, oz, dx, dz, o.Box)
		if !ok || t <= vmath.Epsilon {
			continue
		}
		hits = append(hits, Hit{Index: i, Depth: t, Face: face})
	}
	sort.Slice(hits, func(a, b int) bool { return hits[a].Depth > hits[b].Depth })
	return hits
}

// shadeGlyph picks a block density by distance
func shadeGlyph(depth float64) rune {
	switch {
	case depth < 3:
		return '█'
	case depth < 6:
		return '▓'
	case depth < 12:
		return '▒'
	default:
		return '░'
	}
}

// shadeColor fogs the base color with distance and darkens X faces
func shadeColor(base RGB, depth float64, face vmath.Face) RGB {
	if face == vmath.FaceX {
		base = Scale(base, 0.8)
	}
	return Lerp(base, RgbFog, math.Min(depth/22, 0.85))
}
