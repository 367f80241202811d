package audio

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/gopxl/beep"
)

var ErrUnknownEffect = errors.New("audio: unknown effect")

// Effect names a synthesized cue
type Effect uint8

const (
	EffectSwoosh Effect = iota
	EffectWhoosh
	EffectPop
	EffectDing
	EffectSuccess
	EffectAmbient
	effectCount
)

var effectNames = [effectCount]string{"swoosh", "whoosh", "pop", "ding", "success", "ambient"}

func (e Effect) String() string {
	if e < effectCount {
		return effectNames[e]
	}
	return fmt.Sprintf("effect(%d)", uint8(e))
}

// ParseEffect resolves an effect by name
func ParseEffect(name string) (Effect, error) {
	for i, n := range effectNames {
		if n == name {
			return Effect(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEffect, name)
}

// Effects lists all effects in export order
func Effects() []Effect {
	out := make([]Effect, effectCount)
	for i := range out {
		out[i] = Effect(i)
	}
	return out
}

// effectDurations are the exported cue lengths
var effectDurations = [effectCount]time.Duration{
	EffectSwoosh:  400 * time.Millisecond,
	EffectWhoosh:  500 * time.Millisecond,
	EffectPop:     80 * time.Millisecond,
	EffectDing:    550 * time.Millisecond,
	EffectSuccess: 700 * time.Millisecond,
	EffectAmbient: 32 * time.Second,
}

// Duration returns the effect's rendered length
func (e Effect) Duration() time.Duration {
	if e < effectCount {
		return effectDurations[e]
	}
	return 0
}

// Render synthesizes an effect at rate
func Render(e Effect, rate beep.SampleRate) (Buffer, error) {
	if e >= effectCount {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEffect, uint8(e))
	}
	d := e.Duration()
	switch e {
	case EffectSwoosh, EffectWhoosh:
		return Swoosh(d, rate, noiseSource(e)), nil
	case EffectPop:
		return Click(d, rate), nil
	case EffectDing:
		return Notification(d, rate), nil
	case EffectSuccess:
		return SuccessChord(d, rate), nil
	default:
		return AmbientPad(d, rate), nil
	}
}

// noiseSource seeds noise per effect so renders are reproducible
func noiseSource(e Effect) *rand.Rand {
	return rand.New(rand.NewPCG(0x10bb1e, uint64(e)+1))
}

func samplesFor(d time.Duration, rate beep.SampleRate) int {
	return int(math.Round(d.Seconds() * float64(rate)))
}

// Swoosh is a band-swept noise burst with a sub thump, used for transitions
func Swoosh(d time.Duration, rate beep.SampleRate, rng *rand.Rand) Buffer {
	n := samplesFor(d, rate)
	raw := make(Buffer, n)
	sr := float64(rate)
	for i := range raw {
		t := float64(i) / sr
		p := float64(i) / float64(n)

		env := math.Pow(math.Sin(p*math.Pi), 2.2) * 0.22
		noise := rng.Float64()*2 - 1
		sweep := math.Sin(2*math.Pi*(80+p*350)*t) * 0.12
		sub := math.Sin(2*math.Pi*45*t) * math.Exp(-t*5) * 0.15
		shimmer := math.Sin(2*math.Pi*(800+p*400)*t) * math.Exp(-t*12) * 0.03

		raw[i] = (noise*0.15 + sweep + sub + shimmer) * env
	}
	return Reverb(SmoothEnvelope(LowPass(raw, 12), rate, 8, 30), rate, 55, 0.22, 0.35)
}

// Click is a soft tap
func Click(d time.Duration, rate beep.SampleRate) Buffer {
	n := samplesFor(d, rate)
	raw := make(Buffer, n)
	sr := float64(rate)
	for i := range raw {
		t := float64(i) / sr
		env := math.Exp(-t * 40)
		body := math.Sin(2*math.Pi*800*t) * 0.2
		warmth := math.Sin(2*math.Pi*400*t) * 0.12
		air := math.Sin(2*math.Pi*1600*t) * math.Exp(-t*80) * 0.04
		raw[i] = (body + warmth + air) * env
	}
	return Reverb(SmoothEnvelope(raw, rate, 2, 12), rate, 35, 0.18, 0.25)
}

// chimeNote is one voice of a staggered chord
type chimeNote struct {
	freq  float64
	start float64 // seconds
	gain  float64
}

// chime sums decaying sines with a faint octave, each entering at its start
func chime(n int, rate beep.SampleRate, notes []chimeNote, decay, attack, harmonic float64) Buffer {
	raw := make(Buffer, n)
	sr := float64(rate)
	for i := range raw {
		t := float64(i) / sr
		var s float64
		for _, note := range notes {
			if t < note.start {
				continue
			}
			lt := t - note.start
			env := math.Exp(-lt*decay) * math.Min(lt*attack, 1)
			tone := math.Sin(2*math.Pi*note.freq*lt) + math.Sin(2*math.Pi*note.freq*2*lt)*harmonic
			s += tone * env * note.gain
		}
		raw[i] = s
	}
	return raw
}

// C major triad
var notificationNotes = []chimeNote{
	{523.25, 0, 0.18},
	{659.25, 0.06, 0.14},
	{784, 0.10, 0.06},
}

// G major seventh
var successNotes = []chimeNote{
	{392, 0, 0.16},
	{493.88, 0.05, 0.14},
	{587.33, 0.10, 0.12},
	{739.99, 0.14, 0.09},
	{987.77, 0.18, 0.04},
}

// Notification is a short rising chime
func Notification(d time.Duration, rate beep.SampleRate) Buffer {
	raw := chime(samplesFor(d, rate), rate, notificationNotes, 3.2, 250, 0.04)
	return Reverb(SmoothEnvelope(raw, rate, 4, 40), rate, 70, 0.25, 0.35)
}

// SuccessChord is an arpeggiated major seventh
func SuccessChord(d time.Duration, rate beep.SampleRate) Buffer {
	raw := chime(samplesFor(d, rate), rate, successNotes, 2.2, 300, 0.03)
	return Reverb(SmoothEnvelope(raw, rate, 4, 50), rate, 80, 0.25, 0.4)
}

type padLayer struct {
	freq, detune, gain float64
}

var padLayers = []padLayer{
	{55, 0.3, 0.30},
	{82.41, 0.2, 0.22},
	{110, 0.4, 0.18},
	{164.81, 0.3, 0.10},
	{220, 0.5, 0.06},
	{329.63, 0.2, 0.03},
	{440, 0.15, 0.015},
}

// AmbientPad is a slow detuned drone with 4s fades, suitable for looping
func AmbientPad(d time.Duration, rate beep.SampleRate) Buffer {
	n := samplesFor(d, rate)
	raw := make(Buffer, n)
	sr := float64(rate)
	total := d.Seconds()
	for i := range raw {
		t := float64(i) / sr
		fadeIn := math.Min(t/4, 1)
		fadeOut := math.Min((total-t)/4, 1)
		master := fadeIn * fadeOut * 0.05
		swell := 1 + math.Sin(t*0.08)*0.15

		var s float64
		for _, l := range padLayers {
			wobble := math.Sin(t*0.1+l.freq*0.008) * l.detune
			main := math.Sin(2 * math.Pi * (l.freq + wobble) * t)
			chorus := math.Sin(2*math.Pi*(l.freq+wobble+0.7)*t) * 0.4
			s += (main + chorus) * l.gain
		}
		raw[i] = s * master * swell
	}
	return LowPass(raw, 10)
}

// EffectNames returns the sorted effect names
func EffectNames() []string {
	out := append([]string(nil), effectNames[:]...)
	sort.Strings(out)
	return out
}
