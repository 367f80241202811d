package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-lobby/vmath"
)

const (
	mapMaxW = 26
	mapMaxH = 11
)

// arrowGlyphs are clockwise from screen-up (-Z)
var arrowGlyphs = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// ArrowFor returns the minimap glyph for a horizontal forward vector
func ArrowFor(forward mgl64.Vec3) rune {
	// Screen up is world -Z, screen right is world +X
	a := math.Atan2(forward.X(), -forward.Z())
	idx := int(math.Round(a/(math.Pi/4))) % 8
	if idx < 0 {
		idx += 8
	}
	return arrowGlyphs[idx]
}

// mapRect is the minimap's screen placement and world mapping
type mapRect struct {
	x, y, w, h int
	bounds     vmath.Box3
}

// cellCenter returns the world XZ at the center of map cell (mx, my)
func (m mapRect) cellCenter(mx, my int) (x, z float64) {
	size := m.bounds.Size()
	x = m.bounds.Min.X() + (float64(mx)+0.5)/float64(m.w)*size.X()
	z = m.bounds.Min.Z() + (float64(my)+0.5)/float64(m.h)*size.Z()
	return x, z
}

// cellOf returns the map cell containing world (x, z)
func (m mapRect) cellOf(x, z float64) (mx, my int) {
	size := m.bounds.Size()
	mx = int((x - m.bounds.Min.X()) / size.X() * float64(m.w))
	my = int((z - m.bounds.Min.Z()) / size.Z() * float64(m.h))
	return min(max(mx, 0), m.w-1), min(max(my, 0), m.h-1)
}

func (r *Renderer) minimapRect(w, viewH int) (mapRect, bool) {
	bounds, ok := r.scene.Registry.Bounds()
	if !ok {
		return mapRect{}, false
	}
	mw, mh := min(mapMaxW, w/3), min(mapMaxH, viewH/2)
	if mw < 6 || mh < 4 {
		return mapRect{}, false
	}
	return mapRect{x: w - mw - 1, y: 0, w: mw, h: mh, bounds: bounds}, true
}

func (r *Renderer) drawMinimap(w, viewH int) {
	m, ok := r.minimapRect(w, viewH)
	if !ok {
		return
	}
	reg := r.scene.Registry
	obstacles := reg.Obstacles()
	cellW := m.bounds.Size().X() / float64(m.w)

	for my := 0; my < m.h; my++ {
		for mx := 0; mx < m.w; mx++ {
			x, z := m.cellCenter(mx, my)
			ch, fg := '·', RgbHUDDim

			for i, o := range obstacles {
				if o.Floor {
					continue
				}
				b := o.Box
				if x >= b.Min.X() && x <= b.Max.X() && z >= b.Min.Z() && z <= b.Max.Z() {
					ch, fg = '▒', KindColor(reg.Kind(i))
				}
			}
			if ch == '·' && r.zone != nil {
				d := math.Hypot(x-r.zone.Center.X(), z-r.zone.Center.Z())
				if math.Abs(d-r.zone.Radius) < cellW/2 {
					// Dim while latched, the concierge will not greet again until the viewer leaves
					ch, fg = '∘', RgbHUDDim
					if r.zone.Armed() {
						fg = RgbZone
					}
				}
			}
			r.screen.SetContent(m.x+mx, m.y+my, ch, nil, style(fg, RgbChatBg))
		}
	}

	for _, lm := range r.scene.Landmarks {
		if lm.Height == 0 {
			continue
		}
		mx, my := m.cellOf(lm.Position.X(), lm.Position.Z())
		r.screen.SetContent(m.x+mx, m.y+my, lm.Glyph, nil, style(RgbAccent, RgbChatBg))
	}

	pos := r.state.Body.Position
	mx, my := m.cellOf(pos.X(), pos.Z())
	fwd, _ := r.look.Basis()
	r.screen.SetContent(m.x+mx, m.y+my, ArrowFor(fwd), nil, style(RgbPlayer, RgbChatBg).Bold(true))
}
