package engine

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/vi-lobby/core"
)

// PollEvents forwards screen events to a buffered channel until the screen
// is finalized. Events are dropped when the frame loop falls behind
func PollEvents(screen tcell.Screen, size int) <-chan tcell.Event {
	ch := make(chan tcell.Event, size)
	core.Go(func() {
		defer close(ch)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case ch <- ev:
			default:
				log.Warn().Msg("input buffer full, dropping event")
			}
		}
	})
	return ch
}
