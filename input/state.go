package input

import "time"

// Flags is the per-frame movement input snapshot
type Flags struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Any reports whether any movement flag is set
func (f Flags) Any() bool {
	return f.Forward || f.Backward || f.Left || f.Right
}

// State tracks the four movement flags; key-down sets, key-up clears
// Non-movement actions are ignored
type State struct {
	flags Flags
}

// Press sets the flag for a movement action, returns false for other actions
func (s *State) Press(a Action) bool {
	return s.set(a, true)
}

// Release clears the flag for a movement action
func (s *State) Release(a Action) bool {
	return s.set(a, false)
}

// Flags returns the current snapshot
func (s *State) Flags() Flags {
	return s.flags
}

// Reset clears all flags
func (s *State) Reset() {
	s.flags = Flags{}
}

func (s *State) set(a Action, v bool) bool {
	switch a {
	case ActionForward:
		s.flags.Forward = v
	case ActionBackward:
		s.flags.Backward = v
	case ActionLeft:
		s.flags.Left = v
	case ActionRight:
		s.flags.Right = v
	default:
		return false
	}
	return true
}

// Hold adapts State to terminals, which report key presses and auto-repeats
// but never releases. Every press refreshes the action's deadline, Expire
// releases actions whose deadline has passed
type Hold struct {
	State
	timeout   time.Duration
	deadlines [ActionRight + 1]time.Time
}

// NewHold creates a hold tracker, timeout should exceed the terminal repeat interval
func NewHold(timeout time.Duration) *Hold {
	return &Hold{timeout: timeout}
}

// Timeout returns the hold timeout
func (h *Hold) Timeout() time.Duration {
	return h.timeout
}

// PressAt sets the flag and arms its release deadline
func (h *Hold) PressAt(a Action, now time.Time) bool {
	if !h.Press(a) {
		return false
	}
	h.deadlines[a] = now.Add(h.timeout)
	return true
}

// Release clears the flag and its deadline
func (h *Hold) Release(a Action) bool {
	if !h.State.Release(a) {
		return false
	}
	h.deadlines[a] = time.Time{}
	return true
}

// Expire releases every held action whose deadline is not after now
func (h *Hold) Expire(now time.Time) {
	for a := ActionForward; a <= ActionRight; a++ {
		d := h.deadlines[a]
		if !d.IsZero() && !now.Before(d) {
			h.Release(a)
		}
	}
}

// Reset clears all flags and deadlines
func (h *Hold) Reset() {
	h.State.Reset()
	h.deadlines = [ActionRight + 1]time.Time{}
}
