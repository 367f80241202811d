// Package logging routes zerolog output to a rotating file. The terminal owns
// stdout and stderr while the walkthrough runs, so nothing is written there
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// FileName is the active log file inside the log directory
const FileName = "lobby.log"

// Options controls log destination and verbosity
type Options struct {
	Dir       string
	Level     string
	MaxSizeMB int
	Debug     bool // Logging is disabled unless set
}

// Setup installs the global logger. With Debug off the logger discards
// everything and the returned closer is a no-op
func Setup(opts Options) (io.Closer, error) {
	if !opts.Debug {
		log.Logger = zerolog.New(io.Discard)
		zerolog.SetGlobalLevel(zerolog.Disabled)
		return nopCloser{}, nil
	}

	level, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.DebugLevel
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(opts.Dir, FileName)
	if err := rotate(path, int64(opts.MaxSizeMB)*1024*1024, time.Now()); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f, nil
}

// rotate renames an oversized log to lobby_<timestamp>.log
func rotate(path string, maxSize int64, now time.Time) error {
	if maxSize <= 0 {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() <= maxSize {
		return nil
	}

	ext := filepath.Ext(path)
	rotated := strings.TrimSuffix(path, ext) + "_" + now.Format("20060102_150405") + ext
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
