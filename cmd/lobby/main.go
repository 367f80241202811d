package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/vi-lobby/audio"
	"github.com/lixenwraith/vi-lobby/concierge"
	"github.com/lixenwraith/vi-lobby/config"
	"github.com/lixenwraith/vi-lobby/core"
	"github.com/lixenwraith/vi-lobby/engine"
	"github.com/lixenwraith/vi-lobby/logging"
)

var CLI struct {
	ConfigFile string `help:"TOML config file (default ./lobby.toml if present)." name:"config" short:"c" type:"path"`
	Debug      bool   `help:"Write debug logs to the log directory."`
	NoAudio    bool   `help:"Disable audio cues." name:"no-audio"`
	FPS        int    `help:"Frame rate, overrides loop.fps." name:"fps"`

	Walk struct{} `cmd:"" default:"1" help:"Walk the lobby (default)."`

	Sfx struct {
		Out  string `help:"Output directory." default:"./sfx" type:"path"`
		Rate int    `help:"Sample rate in Hz." default:"44100"`
	} `cmd:"" help:"Export the lobby sound effects as 16-bit mono WAV files."`

	ShowConfig struct{} `cmd:"" name:"config" help:"Write the default configuration to standard output."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

// overrides maps CLI flags onto config keys, unset flags do not override
func overrides() map[string]any {
	o := make(map[string]any)
	if CLI.Debug {
		o["debug"] = true
	}
	if CLI.NoAudio {
		o["audio.enabled"] = false
	}
	if CLI.FPS > 0 {
		o["loop.fps"] = CLI.FPS
	}
	return o
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the walkthrough crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	ctx := kong.Parse(&CLI,
		kong.Name("lobby"),
		kong.Description("a first-person terminal walkthrough of a hotel lobby"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	var err error
	switch ctx.Command() {
	case "walk":
		err = walkCommand()
	case "sfx":
		_, err = audio.Export(CLI.Sfx.Out, CLI.Sfx.Rate)
	case "config":
		var data []byte
		if data, err = config.DefaultTOML(); err == nil {
			_, err = os.Stdout.Write(data)
		}
	}
	if err != nil {
		writeError(err)
	}
}

func walkCommand() error {
	cfg, err := config.Load(CLI.ConfigFile, overrides())
	if err != nil {
		return err
	}

	logCloser, err := logging.Setup(logging.Options{
		Dir:       cfg.Logs.Dir,
		Level:     cfg.Logs.Level,
		MaxSizeMB: cfg.Logs.MaxSizeMB,
		Debug:     cfg.Debug,
	})
	if err != nil {
		return err
	}
	defer logCloser.Close()

	log.Info().
		Str("config", cfg.File).
		Int("fps", cfg.Loop.FPS).
		Bool("audio", cfg.Audio.Enabled).
		Msg("lobby starting")

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	core.RegisterScreen(screen)
	// Normal exit terminal cleanup
	defer func() {
		core.RegisterScreen(nil)
		screen.Fini()
	}()
	screen.HideCursor()

	var (
		cues   concierge.Listener
		sound  *audio.SoundManager
		status string
	)
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.SampleRate, cfg.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio initialization failed, continuing without audio")
			status = "audio off"
		} else {
			defer sm.Cleanup()
			if cfg.Audio.Ambient {
				sm.StartAmbient()
			}
			cues = sm
			sound = sm
		}
	} else {
		status = "audio off"
	}

	s, err := newSession(cfg, screen, cues, engine.SystemClock{})
	if err != nil {
		return err
	}
	s.renderer.Status = status
	if sound != nil {
		s.handler.SetSound(sound)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Debug().Dur("interval", s.loop.Interval()).Msg("frame loop running")
	err = s.loop.Run(runCtx, engine.PollEvents(screen, 64))
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	log.Info().Err(err).Msg("lobby stopped")
	return err
}
