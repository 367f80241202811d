package modes

import (
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/vi-lobby/concierge"
	"github.com/lixenwraith/vi-lobby/engine"
	"github.com/lixenwraith/vi-lobby/input"
	"github.com/lixenwraith/vi-lobby/scene"
)

// InputHandler routes terminal events to movement, look and the conversation
// It implements engine.Hooks and runs on the frame loop goroutine
type InputHandler struct {
	keys     *input.KeyTable
	hold     *input.Hold
	look     *scene.Look
	conv     *concierge.Conversation
	renderer Renderer
	sound    Sound

	// Turn keys share the hold timeout, index 0 left, 1 right
	turnUntil [2]time.Time
}

// NewInputHandler creates a new input handler
func NewInputHandler(keys *input.KeyTable, hold *input.Hold, look *scene.Look, conv *concierge.Conversation, renderer Renderer) *InputHandler {
	return &InputHandler{
		keys:     keys,
		hold:     hold,
		look:     look,
		conv:     conv,
		renderer: renderer,
	}
}

// SetSound attaches the cue player toggled by the mute key
func (h *InputHandler) SetSound(s Sound) {
	h.sound = s
}

// Mode returns the current routing state
func (h *InputHandler) Mode() Mode {
	switch {
	case h.conv != nil && h.conv.IsOpen():
		return ModeChat
	case h.look.Engaged():
		return ModeWalk
	default:
		return ModePaused
	}
}

// HandleEvent processes a tcell event and returns false if the walkthrough should exit
func (h *InputHandler) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev, now)
	case *tcell.EventResize:
		if h.renderer != nil {
			h.renderer.Sync()
		}
	}
	return true
}

func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey, now time.Time) bool {
	action := h.keys.Lookup(ev)
	if action == input.ActionQuit {
		return false
	}
	if action == input.ActionMute {
		if h.sound != nil {
			muted := !h.sound.Muted()
			h.sound.SetMuted(muted)
			log.Debug().Bool("muted", muted).Msg("sound toggled")
		}
		return true
	}

	switch h.Mode() {
	case ModeChat:
		h.handleChatMode(ev, action, now)
	case ModePaused:
		if action == input.ActionEngage {
			h.look.Engage()
			log.Debug().Msg("look engaged")
		}
	default:
		h.handleWalkMode(action, now)
	}
	return true
}

// handleWalkMode handles movement, turning and release
func (h *InputHandler) handleWalkMode(action input.Action, now time.Time) {
	switch {
	case action.Movement():
		h.hold.PressAt(action, now)
	case action == input.ActionTurnLeft:
		h.turnUntil[0] = now.Add(h.hold.Timeout())
	case action == input.ActionTurnRight:
		h.turnUntil[1] = now.Add(h.hold.Timeout())
	case action == input.ActionDisengage:
		h.release()
		h.look.Disengage()
		log.Debug().Msg("look released")
	}
}

// handleChatMode edits and sends the message line
func (h *InputHandler) handleChatMode(ev *tcell.EventKey, action input.Action, now time.Time) {
	switch ev.Key() {
	case tcell.KeyEscape:
		h.conv.Close()
		return
	case tcell.KeyEnter:
		if err := h.conv.Submit(now); err != nil && !errors.Is(err, concierge.ErrEmpty) {
			log.Warn().Err(err).Stringer("session", h.conv.Session()).Msg("message not sent")
		}
		return
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		h.conv.Backspace()
		return
	case tcell.KeyRune:
		h.conv.Type(ev.Rune())
		return
	}
	if action == input.ActionVoice {
		if err := h.conv.Voice(now); err != nil {
			log.Warn().Err(err).Msg("voice unavailable")
		}
	}
}

// release drops every held key and turn
func (h *InputHandler) release() {
	h.hold.Reset()
	h.turnUntil = [2]time.Time{}
}

// Update expires held keys, applies turning and delivers due replies
func (h *InputHandler) Update(now time.Time) {
	h.hold.Expire(now)

	if h.Mode() != ModeWalk {
		if h.hold.Flags().Any() {
			log.Debug().Str("mode", h.Mode().String()).Msg("held keys released")
		}
		h.release()
	} else {
		if now.Before(h.turnUntil[0]) {
			h.look.Turn(1)
		}
		if now.Before(h.turnUntil[1]) {
			h.look.Turn(-1)
		}
	}

	if h.conv != nil {
		h.conv.Deliver(now)
	}
}

// Render forwards the frame to the renderer
func (h *InputHandler) Render(f engine.Frame) {
	if h.renderer != nil {
		h.renderer.Render(f)
	}
}
