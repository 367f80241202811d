package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog/log"
)

// Output is the playback sink, speakerOutput in production
type Output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Close()
}

type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}

func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }

func (speakerOutput) Close() { speaker.Close() }

// SoundManager plays lobby cues through a single mixer
// A failed output init leaves the manager silent, every Play becomes a no-op
type SoundManager struct {
	mu          sync.Mutex
	out         Output
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	ambient     *beep.Ctrl
	cache       map[Effect]Buffer
	initialized bool
	muted       bool
}

// NewSoundManager creates a manager for the system speaker
func NewSoundManager(rate int, volume float64) *SoundManager {
	return NewSoundManagerWithOutput(speakerOutput{}, rate, volume)
}

// NewSoundManagerWithOutput creates a manager for an arbitrary output
func NewSoundManagerWithOutput(out Output, rate int, volume float64) *SoundManager {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	return &SoundManager{
		out:    out,
		rate:   beep.SampleRate(rate),
		volume: volume,
		mixer:  &beep.Mixer{},
		cache:  make(map[Effect]Buffer),
	}
}

// DefaultSampleRate matches the exported WAV files
const DefaultSampleRate = 44100

// Initialize opens the output and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := sm.out.Init(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	sm.out.Play(sm.mixer)
	sm.initialized = true
	log.Info().Int("rate", int(sm.rate)).Msg("audio initialized")
	return nil
}

// Cleanup stops all sounds and releases the output
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	// The speaker goroutine reads the Ctrl and the mixer under its lock
	speaker.Lock()
	if sm.ambient != nil {
		sm.ambient.Paused = true
		sm.ambient = nil
	}
	sm.mixer.Clear()
	speaker.Unlock()
	sm.out.Close()
	sm.initialized = false
}

// SetMuted silences new cues and pauses the ambient loop
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
	if sm.ambient != nil {
		speaker.Lock()
		sm.ambient.Paused = muted
		speaker.Unlock()
	}
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues a one-shot effect
func (sm *SoundManager) Play(e Effect) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	buf, ok := sm.bufferLocked(e)
	if !ok {
		return
	}
	speaker.Lock()
	sm.mixer.Add(newVolume(buf.Streamer(), sm.volume))
	speaker.Unlock()
}

// StartAmbient loops the ambient pad until Cleanup
func (sm *SoundManager) StartAmbient() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.ambient != nil {
		return
	}
	buf, ok := sm.bufferLocked(EffectAmbient)
	if !ok {
		return
	}
	sm.ambient = &beep.Ctrl{Streamer: newVolume(beep.Loop(-1, buf.Streamer()), sm.volume), Paused: sm.muted}
	speaker.Lock()
	sm.mixer.Add(sm.ambient)
	speaker.Unlock()
}

func (sm *SoundManager) bufferLocked(e Effect) (Buffer, bool) {
	if buf, ok := sm.cache[e]; ok {
		return buf, true
	}
	buf, err := Render(e, sm.rate)
	if err != nil {
		log.Warn().Err(err).Msg("effect render failed")
		return nil, false
	}
	sm.cache[e] = buf
	return buf, true
}

// Conversation cues

// Opened plays the success chord
func (sm *SoundManager) Opened() { sm.Play(EffectSuccess) }

// Closed plays the swoosh
func (sm *SoundManager) Closed() { sm.Play(EffectSwoosh) }

// Sent plays the pop
func (sm *SoundManager) Sent() { sm.Play(EffectPop) }

// Replied plays the ding
func (sm *SoundManager) Replied() { sm.Play(EffectDing) }

// newVolume scales a stream linearly, 0 or below is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
