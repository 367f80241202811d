package modes

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-lobby/concierge"
	"github.com/lixenwraith/vi-lobby/engine"
	"github.com/lixenwraith/vi-lobby/input"
	"github.com/lixenwraith/vi-lobby/scene"
)

type countingRenderer struct {
	frames, syncs int
}

func (r *countingRenderer) Render(engine.Frame) { r.frames++ }
func (r *countingRenderer) Sync()               { r.syncs++ }

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func newTestHandler() (*InputHandler, *input.Hold, *scene.Look, *concierge.Conversation, *countingRenderer) {
	hold := input.NewHold(180 * time.Millisecond)
	look := scene.NewLook(0, 0.1)
	conv := concierge.New(look, concierge.Options{ReplyDelayMin: 100 * time.Millisecond, ReplyDelayMax: 100 * time.Millisecond})
	r := &countingRenderer{}
	return NewInputHandler(input.DefaultKeyTable(), hold, look, conv, r), hold, look, conv, r
}

// TestWalkModeMovement verifies movement keys hold until the timeout
func TestWalkModeMovement(t *testing.T) {
	h, hold, _, _, _ := newTestHandler()
	require.Equal(t, ModeWalk, h.Mode())

	assert.True(t, h.HandleEvent(runeKey('w'), t0))
	assert.True(t, h.HandleEvent(key(tcell.KeyLeft), t0))
	assert.Equal(t, input.Flags{Forward: true, Left: true}, hold.Flags())

	h.Update(t0.Add(100 * time.Millisecond))
	assert.True(t, hold.Flags().Forward)

	h.Update(t0.Add(180 * time.Millisecond))
	assert.False(t, hold.Flags().Any())
}

// TestWalkModeTurn verifies turning applies once per frame while held
func TestWalkModeTurn(t *testing.T) {
	h, _, look, _, _ := newTestHandler()

	h.HandleEvent(runeKey('q'), t0)
	h.Update(t0)
	h.Update(t0.Add(50 * time.Millisecond))
	assert.InDelta(t, 0.2, look.Yaw, 1e-12)

	h.Update(t0.Add(200 * time.Millisecond))
	assert.InDelta(t, 0.2, look.Yaw, 1e-12, "turn expired")

	h.HandleEvent(runeKey('e'), t0.Add(time.Second))
	h.Update(t0.Add(time.Second))
	assert.InDelta(t, 0.1, look.Yaw, 1e-12)
}

// TestDisengageAndEngage verifies Esc releases and Enter recaptures
func TestDisengageAndEngage(t *testing.T) {
	h, hold, look, _, _ := newTestHandler()

	h.HandleEvent(runeKey('w'), t0)
	h.HandleEvent(key(tcell.KeyEscape), t0)
	assert.Equal(t, ModePaused, h.Mode())
	assert.False(t, look.Engaged())
	assert.False(t, hold.Flags().Any())

	// Movement is ignored while paused
	h.HandleEvent(runeKey('w'), t0)
	assert.False(t, hold.Flags().Any())

	h.HandleEvent(key(tcell.KeyEnter), t0)
	assert.Equal(t, ModeWalk, h.Mode())
}

// TestQuit verifies quit keys end the loop in every mode
func TestQuit(t *testing.T) {
	h, _, _, conv, _ := newTestHandler()
	assert.False(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), t0))

	conv.Open()
	assert.False(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), t0))
}

// TestChatMode verifies typing, sending, reply delivery and closing
func TestChatMode(t *testing.T) {
	h, hold, look, conv, _ := newTestHandler()
	h.HandleEvent(runeKey('w'), t0)

	conv.EnterZone(scene.ConciergePosition)
	require.Equal(t, ModeChat, h.Mode())
	assert.False(t, look.Engaged())

	h.Update(t0)
	assert.False(t, hold.Flags().Any(), "held keys drop when the overlay opens")

	for _, r := range "hellq" {
		h.HandleEvent(runeKey(r), t0)
	}
	h.HandleEvent(key(tcell.KeyBackspace2), t0)
	h.HandleEvent(runeKey('o'), t0)
	assert.Equal(t, "hello", conv.Line())
	assert.Zero(t, look.Yaw, "q types instead of turning")

	h.HandleEvent(key(tcell.KeyEnter), t0)
	assert.Empty(t, conv.Line())

	// Blank submit is ignored
	h.HandleEvent(key(tcell.KeyEnter), t0)

	h.Update(t0.Add(100 * time.Millisecond))
	tr := conv.Transcript()
	require.Len(t, tr, 2)
	assert.Equal(t, concierge.ReplyGreeting, tr[1].Text)

	h.HandleEvent(key(tcell.KeyF2), t0)
	assert.Equal(t, concierge.VoiceUnsupported, conv.Transcript()[2].Text)

	h.HandleEvent(key(tcell.KeyEscape), t0)
	assert.False(t, conv.IsOpen())
	assert.Equal(t, ModeWalk, h.Mode())
}

// TestResizeAndRender verifies resize syncs and frames are forwarded
func TestResizeAndRender(t *testing.T) {
	h, _, _, _, r := newTestHandler()
	assert.True(t, h.HandleEvent(tcell.NewEventResize(80, 24), t0))
	assert.Equal(t, 1, r.syncs)

	h.Render(engine.Frame{})
	assert.Equal(t, 1, r.frames)
}

// TestModeString covers mode names
func TestModeString(t *testing.T) {
	assert.Equal(t, "walk", ModeWalk.String())
	assert.Equal(t, "chat", ModeChat.String())
	assert.Equal(t, "unknown", Mode(9).String())
}

type fakeSound struct{ muted bool }

func (s *fakeSound) SetMuted(muted bool) { s.muted = muted }
func (s *fakeSound) Muted() bool         { return s.muted }

// TestMuteToggle verifies F3 flips the cue player in walk and chat modes
func TestMuteToggle(t *testing.T) {
	h, _, _, conv, _ := newTestHandler()

	// No sound attached
	assert.True(t, h.HandleEvent(key(tcell.KeyF3), t0))

	s := &fakeSound{}
	h.SetSound(s)
	h.HandleEvent(key(tcell.KeyF3), t0)
	assert.True(t, s.muted)

	conv.Open()
	require.Equal(t, ModeChat, h.Mode())
	h.HandleEvent(key(tcell.KeyF3), t0)
	assert.False(t, s.muted)
	assert.Empty(t, conv.Line(), "mute key is not typed into the chat line")
}
