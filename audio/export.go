package audio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/rs/zerolog/log"
)

// Format returns the 16-bit mono WAV format for rate
func Format(rate int) beep.Format {
	return beep.Format{SampleRate: beep.SampleRate(rate), NumChannels: 1, Precision: 2}
}

// WriteWAV encodes one effect to path
func WriteWAV(path string, e Effect, rate int) error {
	buf, err := Render(e, beep.SampleRate(rate))
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := wav.Encode(f, buf.Streamer(), Format(rate)); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", e, err)
	}
	log.Debug().Str("effect", e.String()).Float64("peak", buf.Peak()).Float64("seconds", buf.Duration(beep.SampleRate(rate))).Msg("wav written")
	return f.Close()
}

// Export writes every effect as <name>.wav into dir, creating it if needed
// Returns the written paths in effect order
func Export(dir string, rate int) ([]string, error) {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	paths := make([]string, 0, effectCount)
	for _, e := range Effects() {
		path := filepath.Join(dir, e.String()+".wav")
		if err := WriteWAV(path, e, rate); err != nil {
			return paths, err
		}
		log.Info().Str("file", path).Dur("duration", e.Duration()).Msg("effect exported")
		paths = append(paths, path)
	}
	return paths, nil
}
