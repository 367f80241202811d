package concierge

import (
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrClosed = errors.New("concierge: conversation closed")
	ErrEmpty  = errors.New("concierge: empty message")
)

// maxTranscript bounds the retained message history
const maxTranscript = 200

// Speaker identifies a transcript line's author
type Speaker uint8

const (
	SpeakerGuest Speaker = iota
	SpeakerConcierge
)

func (s Speaker) String() string {
	if s == SpeakerGuest {
		return "you"
	}
	return "concierge"
}

// Message is one transcript line
type Message struct {
	From Speaker
	Text string
	At   time.Time
}

// LookToggle is the look control released while a conversation is open
type LookToggle interface {
	Engage()
	Disengage()
}

// Listener observes conversation lifecycle, used for audio cues
type Listener interface {
	Opened()
	Closed()
	Sent()
	Replied()
}

// Options configures reply timing
type Options struct {
	ReplyDelayMin time.Duration
	ReplyDelayMax time.Duration
	Rand          *rand.Rand // nil uses the global source
}

// DefaultOptions matches the walkthrough's 600-1000ms typing delay
var DefaultOptions = Options{
	ReplyDelayMin: 600 * time.Millisecond,
	ReplyDelayMax: 1000 * time.Millisecond,
}

type pendingReply struct {
	due     time.Time
	text    string
	session uuid.UUID
}

// Conversation is the modal concierge chat opened by the proximity zone
type Conversation struct {
	mu sync.Mutex

	opts     Options
	look     LookToggle
	listener Listener

	open       bool
	session    uuid.UUID
	transcript []Message
	pending    []pendingReply
	line       []rune
}

// New creates a closed conversation bound to a look control, look may be nil
func New(look LookToggle, opts Options) *Conversation {
	if opts.ReplyDelayMax < opts.ReplyDelayMin {
		opts.ReplyDelayMax = opts.ReplyDelayMin
	}
	return &Conversation{opts: opts, look: look}
}

// SetListener installs the lifecycle listener
func (c *Conversation) SetListener(l Listener) {
	c.mu.Lock()
	c.listener = l
	c.mu.Unlock()
}

// EnterZone opens the conversation, ignored when already open
func (c *Conversation) EnterZone(pos mgl64.Vec3) {
	log.Debug().Float64("x", pos.X()).Float64("z", pos.Z()).Msg("concierge approached")
	c.Open()
}

// Open starts a new session and releases the look control
func (c *Conversation) Open() {
	c.mu.Lock()
	if c.open {
		c.mu.Unlock()
		return
	}
	c.open = true
	c.session = uuid.New()
	c.line = c.line[:0]
	l := c.listener
	id := c.session
	c.mu.Unlock()

	if c.look != nil {
		c.look.Disengage()
	}
	log.Info().Str("session", id.String()).Msg("conversation opened")
	if l != nil {
		l.Opened()
	}
}

// Close ends the session and re-engages the look control
// Replies still pending for the closed session are discarded
func (c *Conversation) Close() {
	c.mu.Lock()
	if !c.open {
		c.mu.Unlock()
		return
	}
	c.open = false
	id := c.session
	c.pending = c.pending[:0]
	c.line = c.line[:0]
	l := c.listener
	c.mu.Unlock()

	if c.look != nil {
		c.look.Engage()
	}
	log.Info().Str("session", id.String()).Msg("conversation closed")
	if l != nil {
		l.Closed()
	}
}

// IsOpen reports whether the overlay is open
func (c *Conversation) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// Session returns the current or last session id, uuid.Nil before the first open
func (c *Conversation) Session() uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Send appends a guest message and schedules the concierge reply
func (c *Conversation) Send(text string, now time.Time) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmpty
	}

	c.mu.Lock()
	if !c.open {
		c.mu.Unlock()
		return ErrClosed
	}
	c.appendLocked(Message{From: SpeakerGuest, Text: text, At: now})
	c.pending = append(c.pending, pendingReply{
		due:     now.Add(c.delay()),
		text:    Reply(text),
		session: c.session,
	})
	l := c.listener
	c.mu.Unlock()

	log.Debug().Str("text", text).Msg("guest message")
	if l != nil {
		l.Sent()
	}
	return nil
}

// Voice reports that speech input is unavailable
func (c *Conversation) Voice(now time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open {
		return ErrClosed
	}
	c.appendLocked(Message{From: SpeakerConcierge, Text: VoiceUnsupported, At: now})
	return nil
}

// Deliver moves due replies into the transcript, returns the number delivered
func (c *Conversation) Deliver(now time.Time) int {
	c.mu.Lock()
	n := 0
	keep := c.pending[:0]
	for _, p := range c.pending {
		if now.Before(p.due) {
			keep = append(keep, p)
			continue
		}
		if p.session == c.session && c.open {
			c.appendLocked(Message{From: SpeakerConcierge, Text: p.text, At: p.due})
			n++
		}
	}
	c.pending = keep
	l := c.listener
	c.mu.Unlock()

	if n > 0 && l != nil {
		l.Replied()
	}
	return n
}

// Pending returns the number of scheduled replies
func (c *Conversation) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Transcript returns a copy of the message history
func (c *Conversation) Transcript() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.transcript))
	copy(out, c.transcript)
	return out
}

// Type appends a rune to the input line
func (c *Conversation) Type(r rune) {
	c.mu.Lock()
	c.line = append(c.line, r)
	c.mu.Unlock()
}

// Backspace removes the last rune of the input line
func (c *Conversation) Backspace() {
	c.mu.Lock()
	if n := len(c.line); n > 0 {
		c.line = c.line[:n-1]
	}
	c.mu.Unlock()
}

// Line returns the current input line
func (c *Conversation) Line() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return string(c.line)
}

// Submit sends the input line and clears it, a blank line is kept as is
func (c *Conversation) Submit(now time.Time) error {
	c.mu.Lock()
	text := string(c.line)
	c.mu.Unlock()

	if err := c.Send(text, now); err != nil {
		return err
	}

	c.mu.Lock()
	c.line = c.line[:0]
	c.mu.Unlock()
	return nil
}

func (c *Conversation) appendLocked(m Message) {
	c.transcript = append(c.transcript, m)
	if over := len(c.transcript) - maxTranscript; over > 0 {
		c.transcript = append(c.transcript[:0], c.transcript[over:]...)
	}
}

// delay picks a uniform reply delay in [min, max]
func (c *Conversation) delay() time.Duration {
	span := c.opts.ReplyDelayMax - c.opts.ReplyDelayMin
	if span <= 0 {
		return c.opts.ReplyDelayMin
	}
	var f float64
	if c.opts.Rand != nil {
		f = c.opts.Rand.Float64()
	} else {
		f = rand.Float64()
	}
	return c.opts.ReplyDelayMin + time.Duration(f*float64(span))
}
