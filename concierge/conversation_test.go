package concierge

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLook struct{ engaged bool }

func (l *fakeLook) Engage()    { l.engaged = true }
func (l *fakeLook) Disengage() { l.engaged = false }

type countingListener struct {
	opened, closed, sent, replied int
}

func (l *countingListener) Opened()  { l.opened++ }
func (l *countingListener) Closed()  { l.closed++ }
func (l *countingListener) Sent()    { l.sent++ }
func (l *countingListener) Replied() { l.replied++ }

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestConversation() (*Conversation, *fakeLook, *countingListener) {
	look := &fakeLook{engaged: true}
	c := New(look, Options{
		ReplyDelayMin: 600 * time.Millisecond,
		ReplyDelayMax: 1000 * time.Millisecond,
		Rand:          rand.New(rand.NewPCG(1, 2)),
	})
	l := &countingListener{}
	c.SetListener(l)
	return c, look, l
}

// TestOpenClose verifies look toggling, session ids and idempotent transitions
func TestOpenClose(t *testing.T) {
	c, look, l := newTestConversation()
	assert.False(t, c.IsOpen())
	assert.Equal(t, uuid.Nil, c.Session())

	c.EnterZone(mgl64.Vec3{0, 1.6, -4})
	assert.True(t, c.IsOpen())
	assert.False(t, look.engaged)
	first := c.Session()
	assert.NotEqual(t, uuid.Nil, first)

	c.Open()
	assert.Equal(t, 1, l.opened, "second open is ignored")

	c.Close()
	c.Close()
	assert.False(t, c.IsOpen())
	assert.True(t, look.engaged)
	assert.Equal(t, 1, l.closed)

	c.Open()
	assert.NotEqual(t, first, c.Session())
}

// TestSendErrors verifies blank and closed sends are rejected
func TestSendErrors(t *testing.T) {
	c, _, _ := newTestConversation()
	assert.ErrorIs(t, c.Send("hello", t0), ErrClosed)

	c.Open()
	assert.ErrorIs(t, c.Send("   \t", t0), ErrEmpty)
	assert.Empty(t, c.Transcript())
	assert.Zero(t, c.Pending())
}

// TestSendDeliver verifies replies arrive within the delay window
func TestSendDeliver(t *testing.T) {
	c, _, l := newTestConversation()
	c.Open()

	require.NoError(t, c.Send("  thank you  ", t0))
	tr := c.Transcript()
	require.Len(t, tr, 1)
	assert.Equal(t, Message{From: SpeakerGuest, Text: "thank you", At: t0}, tr[0])
	assert.Equal(t, 1, l.sent)

	assert.Zero(t, c.Deliver(t0.Add(599*time.Millisecond)))
	assert.Equal(t, 1, c.Pending())

	assert.Equal(t, 1, c.Deliver(t0.Add(time.Second)))
	tr = c.Transcript()
	require.Len(t, tr, 2)
	assert.Equal(t, SpeakerConcierge, tr[1].From)
	assert.Equal(t, ReplyThanks, tr[1].Text)
	assert.False(t, tr[1].At.Before(t0.Add(600*time.Millisecond)))
	assert.False(t, tr[1].At.After(t0.Add(time.Second)))
	assert.Equal(t, 1, l.replied)
	assert.Zero(t, c.Pending())
}

// TestCloseDropsPending verifies a reply scheduled before close never appears
func TestCloseDropsPending(t *testing.T) {
	c, _, l := newTestConversation()
	c.Open()
	require.NoError(t, c.Send("hello", t0))
	c.Close()
	c.Open()

	assert.Zero(t, c.Deliver(t0.Add(2*time.Second)))
	assert.Len(t, c.Transcript(), 1)
	assert.Zero(t, l.replied)
}

// TestLineEditing verifies typing, backspace and submit
func TestLineEditing(t *testing.T) {
	c, _, _ := newTestConversation()
	c.Open()

	for _, r := range "helpx" {
		c.Type(r)
	}
	c.Backspace()
	assert.Equal(t, "help", c.Line())

	require.NoError(t, c.Submit(t0))
	assert.Empty(t, c.Line())
	assert.Equal(t, "help", c.Transcript()[0].Text)

	c.Backspace()
	assert.Empty(t, c.Line())

	c.Type(' ')
	assert.ErrorIs(t, c.Submit(t0), ErrEmpty)
	assert.Equal(t, " ", c.Line())
}

// TestVoice verifies the unsupported-voice notice
func TestVoice(t *testing.T) {
	c, _, _ := newTestConversation()
	assert.ErrorIs(t, c.Voice(t0), ErrClosed)

	c.Open()
	require.NoError(t, c.Voice(t0))
	tr := c.Transcript()
	require.Len(t, tr, 1)
	assert.Equal(t, VoiceUnsupported, tr[0].Text)
	assert.Equal(t, SpeakerConcierge, tr[0].From)
}

// TestTranscriptBounded verifies old messages are dropped past the cap
func TestTranscriptBounded(t *testing.T) {
	c, _, _ := newTestConversation()
	c.Open()
	for i := 0; i < maxTranscript+10; i++ {
		require.NoError(t, c.Voice(t0))
	}
	assert.Len(t, c.Transcript(), maxTranscript)
}

// TestFixedDelay verifies equal bounds give a deterministic delay
func TestFixedDelay(t *testing.T) {
	c := New(nil, Options{ReplyDelayMin: 500 * time.Millisecond, ReplyDelayMax: 100 * time.Millisecond})
	c.Open()
	require.NoError(t, c.Send("hi", t0))
	assert.Zero(t, c.Deliver(t0.Add(499*time.Millisecond)))
	assert.Equal(t, 1, c.Deliver(t0.Add(500*time.Millisecond)))
}
