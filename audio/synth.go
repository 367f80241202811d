package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// Buffer is a mono sample buffer in [-1, 1]
type Buffer []float64

// Duration returns the playback length at rate
func (b Buffer) Duration(rate beep.SampleRate) float64 {
	return float64(len(b)) / float64(rate)
}

// Peak returns the largest absolute sample
func (b Buffer) Peak() float64 {
	var p float64
	for _, s := range b {
		p = math.Max(p, math.Abs(s))
	}
	return p
}

// Streamer plays the buffer once, duplicating the mono channel to stereo
func (b Buffer) Streamer() beep.StreamSeeker {
	return &bufferStreamer{buf: b}
}

type bufferStreamer struct {
	buf Buffer
	pos int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.buf) {
			return i, true
		}
		v := s.buf[s.pos]
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *bufferStreamer) Err() error { return nil }

func (s *bufferStreamer) Len() int { return len(s.buf) }

func (s *bufferStreamer) Position() int { return s.pos }

func (s *bufferStreamer) Seek(p int) error {
	s.pos = max(0, min(p, len(s.buf)))
	return nil
}

// LowPass is a centered moving average over ±window samples, shrinking at the edges
func LowPass(in Buffer, window int) Buffer {
	out := make(Buffer, len(in))
	if len(in) == 0 {
		return out
	}
	if window <= 0 {
		copy(out, in)
		return out
	}

	// Prefix sums keep the pass linear for long pads
	prefix := make([]float64, len(in)+1)
	for i, s := range in {
		prefix[i+1] = prefix[i] + s
	}
	for i := range in {
		lo := max(0, i-window)
		hi := min(len(in)-1, i+window)
		out[i] = (prefix[hi+1] - prefix[lo]) / float64(hi-lo+1)
	}
	return out
}

// Reverb adds a single feedback echo line and mixes it with the dry signal
func Reverb(in Buffer, rate beep.SampleRate, delayMs, decay, mix float64) Buffer {
	d := int(delayMs * float64(rate) / 1000)
	wet := make(Buffer, len(in))
	for i, s := range in {
		wet[i] = s
		if d > 0 && i >= d {
			wet[i] += wet[i-d] * decay
		}
	}
	out := make(Buffer, len(in))
	for i, s := range in {
		out[i] = s*(1-mix) + wet[i]*mix
	}
	return out
}

// SmoothEnvelope applies linear attack and release ramps to remove clicks
func SmoothEnvelope(in Buffer, rate beep.SampleRate, attackMs, releaseMs float64) Buffer {
	a := int(attackMs * float64(rate) / 1000)
	r := int(releaseMs * float64(rate) / 1000)
	n := len(in)
	out := make(Buffer, n)
	for i, s := range in {
		e := 1.0
		if i < a {
			e = float64(i) / float64(a)
		}
		if r > 0 && i > n-r {
			e = float64(n-i) / float64(r)
		}
		out[i] = s * e
	}
	return out
}
