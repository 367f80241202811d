package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-lobby/scene"
)

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Color converts to a tcell true color
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Scale multiplies each channel by factor, saturating at 255
func Scale(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}

// Lerp linearly interpolates between two colors
// t=0 returns a, t=1 returns b
func Lerp(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGB{
		R: uint8(float64(a.R) + t*float64(int(b.R)-int(a.R))),
		G: uint8(float64(a.G) + t*float64(int(b.G)-int(a.G))),
		B: uint8(float64(a.B) + t*float64(int(b.B)-int(a.B))),
	}
}

// Lobby palette, warm hotel tones
var (
	RgbCeiling   = RGB{38, 34, 30}
	RgbFloor     = RGB{92, 74, 56}
	RgbFloorDot  = RGB{120, 98, 76}
	RgbFog       = RGB{24, 22, 20}
	RgbHUD       = RGB{200, 190, 170}
	RgbHUDDim    = RGB{110, 104, 96}
	RgbAccent    = RGB{230, 180, 90}
	RgbChatBg    = RGB{20, 20, 26}
	RgbGuest     = RGB{150, 200, 255}
	RgbConcierge = RGB{240, 210, 150}
	RgbZone      = RGB{200, 160, 60}
	RgbPlayer    = RGB{255, 255, 255}
)

// kindColors maps geometry kinds to their base color
var kindColors = map[scene.Kind]RGB{
	scene.KindFloor:   RgbFloor,
	scene.KindWall:    {196, 184, 160},
	scene.KindDesk:    {120, 72, 40},
	scene.KindSofa:    {70, 90, 130},
	scene.KindTable:   {150, 110, 70},
	scene.KindTrunk:   {96, 64, 40},
	scene.KindFoliage: {60, 130, 70},
}

// KindColor returns the base color for a kind, gray for unknown kinds
func KindColor(k scene.Kind) RGB {
	if c, ok := kindColors[k]; ok {
		return c
	}
	return RGB{128, 128, 128}
}

// style builds a tcell style from foreground and background colors
func style(fg, bg RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(fg.Color()).Background(bg.Color())
}
