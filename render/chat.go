package render

import (
	"strings"

	"github.com/lixenwraith/vi-lobby/concierge"
)

const chatMaxW = 64

// typingLine sits above the input row while a reply is scheduled
const typingLine = "concierge is typing..."

// wrap splits text into lines of at most width runes, breaking on spaces when possible
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		runes := []rune(para)
		for len(runes) > width {
			cut := width
			for i := width; i > 0; i-- {
				if runes[i] == ' ' {
					cut = i
					break
				}
			}
			lines = append(lines, strings.TrimRight(string(runes[:cut]), " "))
			runes = []rune(strings.TrimLeft(string(runes[cut:]), " "))
		}
		lines = append(lines, string(runes))
	}
	return lines
}

// transcriptLines formats messages into wrapped lines tagged with their speaker
func transcriptLines(msgs []concierge.Message, width int) ([]string, []concierge.Speaker) {
	var lines []string
	var who []concierge.Speaker
	for _, m := range msgs {
		for _, l := range wrap(m.From.String()+": "+m.Text, width) {
			lines = append(lines, l)
			who = append(who, m.From)
		}
	}
	return lines, who
}

func (r *Renderer) drawChat(w, viewH int) {
	bw := min(chatMaxW, w-4)
	bh := min(12, viewH-2)
	if bw < 16 || bh < 5 {
		return
	}
	x0 := (w - bw) / 2
	y0 := viewH - bh - 1

	bg := style(RgbHUD, RgbChatBg)
	r.fill(x0, y0, x0+bw, y0+bh, bg)

	title := " Concierge "
	r.drawText(x0+(bw-len(title))/2, y0, x0+bw, title, style(RgbAccent, RgbChatBg).Bold(true))

	inner := bw - 4
	lines, who := transcriptLines(r.chat.Transcript(), inner)

	// Tail that fits between the title and input rows
	rows := bh - 3
	start := max(len(lines)-rows, 0)
	for i, l := range lines[start:] {
		fg := RgbConcierge
		if who[start+i] == concierge.SpeakerGuest {
			fg = RgbGuest
		}
		r.drawText(x0+2, y0+1+i, x0+bw-2, l, style(fg, RgbChatBg))
	}

	if r.chat.Pending() > 0 {
		r.drawText(x0+2, y0+bh-2, x0+bw-2, typingLine, style(RgbHUDDim, RgbChatBg))
	}

	// Keep the cursor end of long input visible
	input := []rune(r.chat.Line())
	if over := len(input) - (inner - 3); over > 0 {
		input = input[over:]
	}
	r.drawText(x0+2, y0+bh-1, x0+bw-2, "> "+string(input)+"_", style(RgbPlayer, RgbChatBg))
}
