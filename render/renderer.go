package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-lobby/concierge"
	"github.com/lixenwraith/vi-lobby/engine"
	"github.com/lixenwraith/vi-lobby/scene"
)

const (
	hudRows = 2

	// Terminal cells are roughly twice as tall as wide
	cellAspect = 0.5

	// DefaultFOV is the horizontal field of view, 75 degrees
	DefaultFOV = 75 * math.Pi / 180
)

// ChatView is the read side of the conversation overlay
type ChatView interface {
	IsOpen() bool
	Transcript() []concierge.Message
	Line() string
	Pending() int
}

// Renderer draws the first-person lobby view, minimap, HUD and chat overlay
type Renderer struct {
	screen tcell.Screen
	scene  *scene.Scene
	look   *scene.Look
	state  *engine.State
	zone   *scene.Zone
	chat   ChatView

	FOV     float64
	ShowMap bool
	Status  string // Extra HUD text, e.g. audio state

	width, height int
	zbuf          []float64 // Nearest obstacle depth per view cell
	hits          []Hit
}

// NewRenderer creates a renderer, zone and chat may be nil
func NewRenderer(screen tcell.Screen, sc *scene.Scene, look *scene.Look, state *engine.State, zone *scene.Zone, chat ChatView) *Renderer {
	return &Renderer{
		screen:  screen,
		scene:   sc,
		look:    look,
		state:   state,
		zone:    zone,
		chat:    chat,
		FOV:     DefaultFOV,
		ShowMap: true,
	}
}

// Render draws one frame and flushes it to the screen
func (r *Renderer) Render(f engine.Frame) {
	r.Draw(f)
	r.screen.Show()
}

// Sync forces a full redraw on the next Show, used after resize
func (r *Renderer) Sync() {
	r.screen.Sync()
}

// Draw composes the frame without flushing
func (r *Renderer) Draw(f engine.Frame) {
	w, h := r.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}
	r.resize(w, h)
	r.screen.Clear()

	viewH := max(h-hudRows, 1)
	cam := NewCamera(r.state.Body.Position, r.look.Yaw, r.FOV)

	r.drawBackdrop(w, viewH)
	r.drawColumns(cam, w, viewH)
	r.drawLandmarks(cam, w, viewH)
	if r.ShowMap {
		r.drawMinimap(w, viewH)
	}
	r.drawHUD(f, w, h)
	if r.chat != nil && r.chat.IsOpen() {
		r.drawChat(w, viewH)
	}
}

func (r *Renderer) resize(w, h int) {
	if w == r.width && h == r.height {
		return
	}
	r.width, r.height = w, h
	r.zbuf = make([]float64, w*h)
}

// focal returns the vertical projection scale in rows per unit at depth 1
func (r *Renderer) focal(w int) float64 {
	return float64(w) / 2 / math.Tan(r.FOV/2) * cellAspect
}

// rowOf projects world height y at depth to a screen row
func (r *Renderer) rowOf(y, depth float64, w, viewH int) float64 {
	eye := r.state.Body.Position.Y()
	return float64(viewH)/2 - (y-eye)*r.focal(w)/depth
}

func (r *Renderer) drawBackdrop(w, viewH int) {
	horizon := viewH / 2
	ceil := style(RgbCeiling, RgbCeiling)
	for y := 0; y < viewH; y++ {
		for x := 0; x < w; x++ {
			r.zbuf[y*w+x] = math.Inf(1)
			if y < horizon {
				r.screen.SetContent(x, y, ' ', nil, ceil)
				continue
			}
			// Floor darkens toward the horizon
			t := float64(y-horizon) / float64(max(viewH-horizon, 1))
			bg := Lerp(RgbFog, RgbFloor, t)
			ch := ' '
			if (x+y)%4 == 0 {
				ch = '.'
			}
			r.screen.SetContent(x, y, ch, nil, style(Lerp(bg, RgbFloorDot, t), bg))
		}
	}
}

func (r *Renderer) drawColumns(cam Camera, w, viewH int) {
	reg := r.scene.Registry
	ox, oz := cam.Position.X(), cam.Position.Z()
	for col := 0; col < w; col++ {
		dx, dz := cam.ColumnDir(col, w)
		r.hits = CastColumn(reg, ox, oz, dx, dz, r.hits)
		for _, hit := range r.hits {
			box := reg.Obstacles()[hit.Index].Box
			top := int(math.Ceil(r.rowOf(box.Max.Y(), hit.Depth, w, viewH)))
			bottom := int(math.Floor(r.rowOf(box.Min.Y(), hit.Depth, w, viewH)))
			top, bottom = max(top, 0), min(bottom, viewH-1)
			if top > bottom {
				continue
			}
			c := shadeColor(KindColor(reg.Kind(hit.Index)), hit.Depth, hit.Face)
			st := style(c, Scale(c, 0.6))
			g := shadeGlyph(hit.Depth)
			for y := top; y <= bottom; y++ {
				r.screen.SetContent(col, y, g, nil, st)
				r.zbuf[y*w+col] = hit.Depth
			}
		}
	}
}

func (r *Renderer) drawLandmarks(cam Camera, w, viewH int) {
	for _, lm := range r.scene.Landmarks {
		sx, depth, ok := cam.Project(lm.Position)
		if !ok || sx < -1 || sx > 1 {
			continue
		}
		col := int((sx + 1) / 2 * float64(w))
		if col < 0 || col >= w {
			continue
		}
		top := int(math.Round(r.rowOf(lm.Position.Y()+lm.Height, depth, w, viewH)))
		bottom := int(math.Round(r.rowOf(lm.Position.Y(), depth, w, viewH)))
		if lm.Height == 0 {
			bottom = top
		}
		c := Lerp(RgbAccent, RgbFog, math.Min(depth/25, 0.7))
		for y := max(top, 0); y <= min(bottom, viewH-1); y++ {
			if depth >= r.zbuf[y*w+col] {
				continue
			}
			r.screen.SetContent(col, y, lm.Glyph, nil, style(c, RgbCeiling).Bold(true))
		}
	}
}

// drawText writes s from (x, y) clipped to maxX, returns the next column
func (r *Renderer) drawText(x, y, maxX int, s string, st tcell.Style) int {
	for _, ch := range s {
		if x >= maxX {
			break
		}
		r.screen.SetContent(x, y, ch, nil, st)
		x++
	}
	return x
}

// fill paints a rectangle with spaces
func (r *Renderer) fill(x0, y0, x1, y1 int, st tcell.Style) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.screen.SetContent(x, y, ' ', nil, st)
		}
	}
}
