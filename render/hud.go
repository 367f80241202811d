package render

import (
	"fmt"
	"math"

	"github.com/lixenwraith/vi-lobby/engine"
	"github.com/lixenwraith/vi-lobby/physics"
)

// HUD status labels
const (
	StatusWalking = "WALKING"
	StatusPaused  = "PAUSED"
	StatusTalking = "CONCIERGE"
)

var hintLines = map[string]string{
	StatusWalking: "w/a/s/d move  q/e turn  esc release  ctrl+c quit",
	StatusPaused:  "enter to walk  ctrl+c quit",
	StatusTalking: "type to chat  enter send  f2 voice  esc leave",
}

// status derives the HUD label from look and conversation state
func (r *Renderer) status() string {
	switch {
	case r.chat != nil && r.chat.IsOpen():
		return StatusTalking
	case r.look.Engaged():
		return StatusWalking
	default:
		return StatusPaused
	}
}

func (r *Renderer) drawHUD(f engine.Frame, w, h int) {
	y := h - hudRows
	if y < 0 {
		return
	}
	bg := style(RgbHUD, RgbChatBg)
	r.fill(0, y, w, h, bg)

	pos := r.state.Body.Position
	yawDeg := int(math.Round(r.look.Yaw * 180 / math.Pi))
	line := fmt.Sprintf(" x %6.2f  z %6.2f  yaw %4d°  speed %.3f",
		pos.X(), pos.Z(), yawDeg, physics.HorizontalSpeed(r.state.Velocity))
	if len(f.Contacts) > 0 {
		line += "  bump"
	}
	x := r.drawText(0, y, w, line, bg)

	st := r.status()
	label := " [" + st + "]"
	if r.Status != "" {
		label += " " + r.Status
	}
	r.drawText(x, y, w, label, style(RgbAccent, RgbChatBg).Bold(true))

	if y+1 < h {
		r.drawText(1, y+1, w, hintLines[st], style(RgbHUDDim, RgbChatBg))
	}
}
