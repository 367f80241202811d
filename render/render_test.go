package render

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-lobby/concierge"
	"github.com/lixenwraith/vi-lobby/engine"
	"github.com/lixenwraith/vi-lobby/physics"
	"github.com/lixenwraith/vi-lobby/scene"
)

func newTestRenderer(t *testing.T, w, h int, chat ChatView) (*Renderer, tcell.SimulationScreen, *scene.Look, *engine.State) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)

	sc := scene.Lobby()
	look := scene.NewLook(0, 0.06)
	state := engine.NewState(0, 8, physics.DefaultBody, 180*time.Millisecond)
	zone := scene.NewZone(scene.ConciergePosition, 2.2, true)
	return NewRenderer(screen, sc, look, state, zone, chat), screen, look, state
}

// rowText reads one screen row as a string
func rowText(s tcell.SimulationScreen, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

// screenText reads the whole screen
func screenText(s tcell.SimulationScreen) string {
	w, h := s.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		b.WriteString(rowText(s, y, w))
		b.WriteByte('\n')
	}
	return b.String()
}

// TestCameraColumnDir verifies the center column looks straight ahead
func TestCameraColumnDir(t *testing.T) {
	cam := NewCamera(mgl64.Vec3{0, 1.6, 0}, 0, math.Pi/2)

	dx, dz := cam.ColumnDir(50, 101)
	assert.InDelta(t, 0, dx, 1e-12)
	assert.InDelta(t, -1, dz, 1e-12)

	// Leftmost column of a 90 degree view leans toward -X
	dx, dz = cam.ColumnDir(0, 2)
	assert.InDelta(t, -0.5, dx, 1e-12)
	assert.InDelta(t, -1, dz, 1e-12)
}

// TestCameraProject verifies projection and behind-camera rejection
func TestCameraProject(t *testing.T) {
	cam := NewCamera(mgl64.Vec3{0, 1.6, 0}, 0, math.Pi/2)

	x, depth, ok := cam.Project(mgl64.Vec3{1, 0, -2})
	require.True(t, ok)
	assert.InDelta(t, 2, depth, 1e-12)
	assert.InDelta(t, 0.5, x, 1e-12)

	_, _, ok = cam.Project(mgl64.Vec3{0, 0, 3})
	assert.False(t, ok)
}

// TestCastColumnHitsDesk verifies the nearest hit from spawn looking north is the desk
func TestCastColumnHitsDesk(t *testing.T) {
	reg := scene.Lobby().Registry
	hits := CastColumn(reg, 0, 8, 0, -1, nil)

	require.NotEmpty(t, hits)
	near := hits[len(hits)-1]
	assert.Equal(t, scene.KindDesk, reg.Kind(near.Index))
	assert.InDelta(t, 8-(-5.05), near.Depth, 1e-9)

	// Back wall is behind the desk, sorted first
	assert.Equal(t, scene.KindWall, reg.Kind(hits[0].Index))
	for i := 1; i < len(hits); i++ {
		assert.GreaterOrEqual(t, hits[i-1].Depth, hits[i].Depth)
	}
}

// TestCastColumnSkipsFloor verifies the floor never occludes
func TestCastColumnSkipsFloor(t *testing.T) {
	reg := scene.Lobby().Registry
	for _, h := range CastColumn(reg, 0, 0, 1, 0, nil) {
		assert.NotEqual(t, scene.KindFloor, reg.Kind(h.Index))
	}
}

// TestArrowFor covers the eight minimap headings
func TestArrowFor(t *testing.T) {
	tests := []struct {
		yaw  float64
		want rune
	}{
		{0, '↑'},
		{math.Pi / 2, '←'},
		{-math.Pi / 2, '→'},
		{math.Pi, '↓'},
		{math.Pi / 4, '↖'},
		{-math.Pi / 4, '↗'},
	}
	for _, tt := range tests {
		look := scene.NewLook(tt.yaw, 0)
		fwd, _ := look.Basis()
		assert.Equal(t, string(tt.want), string(ArrowFor(fwd)), "yaw %v", tt.yaw)
	}
}

// TestWrap verifies word wrapping
func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"hello", "world"}, wrap("hello world", 7))
	assert.Equal(t, []string{"abcde", "fgh"}, wrap("abcdefgh", 5))
	assert.Equal(t, []string{""}, wrap("", 5))
	assert.Nil(t, wrap("x", 0))
}

// TestRenderWalkingFrame verifies the desk, HUD and minimap appear
func TestRenderWalkingFrame(t *testing.T) {
	r, screen, _, _ := newTestRenderer(t, 100, 30, nil)
	r.Render(engine.Frame{Number: 1, Active: true})

	text := screenText(screen)
	assert.Contains(t, text, "[WALKING]")
	assert.Contains(t, text, "w/a/s/d move")
	assert.Contains(t, text, "↑", "player arrow on minimap")
	assert.Contains(t, text, "@", "concierge on minimap")

	// Center column crosses the desk below the horizon
	_, _, st, _ := screen.GetContent(50, 16)
	fg, _, _ := st.Decompose()
	assert.NotEqual(t, tcell.ColorDefault, fg)
	center, _, _, _ := screen.GetContent(50, 15)
	assert.Contains(t, "█▓▒░", string(center))
}

// TestRenderPausedHints verifies the released state is shown
func TestRenderPausedHints(t *testing.T) {
	r, screen, look, _ := newTestRenderer(t, 80, 24, nil)
	look.Disengage()
	r.Status = "audio off"
	r.Render(engine.Frame{})

	hud := rowText(screen, 22, 80)
	assert.Contains(t, hud, "[PAUSED]")
	assert.Contains(t, hud, "audio off")
	assert.Contains(t, rowText(screen, 23, 80), "enter to walk")
}

// TestRenderChatOverlay verifies transcript and input line are drawn
func TestRenderChatOverlay(t *testing.T) {
	conv := concierge.New(nil, concierge.Options{})
	r, screen, _, _ := newTestRenderer(t, 100, 30, conv)

	now := time.Unix(0, 0)
	conv.Open()
	require.NoError(t, conv.Send("hello", now))

	r.Render(engine.Frame{})
	assert.Contains(t, screenText(screen), typingLine, "reply scheduled")

	conv.Deliver(now)
	for _, ch := range "need help" {
		conv.Type(ch)
	}

	r.Render(engine.Frame{})
	text := screenText(screen)
	assert.NotContains(t, text, typingLine)
	assert.Contains(t, text, "Concierge")
	assert.Contains(t, text, "you: hello")
	assert.Contains(t, text, "concierge: Hello! Welcome.")
	assert.Contains(t, text, "> need help_")
	assert.Contains(t, text, "[CONCIERGE]")
}

// TestRenderTinyScreen verifies small terminals do not panic
func TestRenderTinyScreen(t *testing.T) {
	r, _, _, _ := newTestRenderer(t, 3, 2, nil)
	assert.NotPanics(t, func() { r.Render(engine.Frame{}) })
}

// TestMinimapZoneRingDimsWhenLatched verifies the ring color follows the zone latch
func TestMinimapZoneRingDimsWhenLatched(t *testing.T) {
	r, screen, _, _ := newTestRenderer(t, 100, 30, nil)

	ring := func() []tcell.Style {
		var styles []tcell.Style
		w, h := screen.Size()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if ch, _, st, _ := screen.GetContent(x, y); ch == '∘' {
					styles = append(styles, st)
				}
			}
		}
		return styles
	}

	r.Render(engine.Frame{})
	armed := ring()
	require.NotEmpty(t, armed)
	for _, st := range armed {
		assert.Equal(t, style(RgbZone, RgbChatBg), st)
	}

	require.True(t, r.zone.Check(mgl64.Vec3{0, 1.6, -4.75}, false))
	r.Render(engine.Frame{})
	latched := ring()
	require.Len(t, latched, len(armed))
	for _, st := range latched {
		assert.Equal(t, style(RgbHUDDim, RgbChatBg), st)
	}
}
