package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/vi-lobby/concierge"
	"github.com/lixenwraith/vi-lobby/config"
	"github.com/lixenwraith/vi-lobby/engine"
	"github.com/lixenwraith/vi-lobby/input"
	"github.com/lixenwraith/vi-lobby/modes"
	"github.com/lixenwraith/vi-lobby/physics"
	"github.com/lixenwraith/vi-lobby/render"
	"github.com/lixenwraith/vi-lobby/scene"
)

// session is one wired walkthrough: scene, state, conversation, renderer and loop
type session struct {
	scene    *scene.Scene
	look     *scene.Look
	state    *engine.State
	conv     *concierge.Conversation
	driver   *engine.Driver
	handler  *modes.InputHandler
	renderer *render.Renderer
	loop     *engine.Loop
}

// newSession wires a walkthrough from config, cues may be nil
func newSession(cfg *config.Config, screen tcell.Screen, cues concierge.Listener, clock engine.Clock) (*session, error) {
	keys := input.DefaultKeyTable()
	if len(cfg.Keys) > 0 {
		override, err := input.LoadKeyConfig(cfg.Keys)
		if err != nil {
			return nil, fmt.Errorf("load key bindings: %w", err)
		}
		keys.Merge(override)
	}

	room := physics.Room{
		MinX: cfg.Room.MinX, MaxX: cfg.Room.MaxX,
		MinZ: cfg.Room.MinZ, MaxZ: cfg.Room.MaxZ,
	}
	if !room.Contains(cfg.Spawn.X, cfg.Spawn.Z) {
		return nil, fmt.Errorf("spawn (%g, %g) lies outside the room", cfg.Spawn.X, cfg.Spawn.Z)
	}

	sc := scene.Lobby()
	log.Debug().Int("obstacles", sc.Registry.Len()).Int("landmarks", len(sc.Landmarks)).Msg("lobby built")

	look := scene.NewLook(cfg.Spawn.Yaw, cfg.Look.TurnRate)
	state := engine.NewState(cfg.Spawn.X, cfg.Spawn.Z, physics.BodyProfile{
		EyeHeight: cfg.Body.EyeHeight,
		HalfWidth: cfg.Body.HalfWidth,
		Height:    cfg.Body.Height,
	}, cfg.Input.HoldTimeout)
	zone := scene.NewZone(mgl64.Vec3{cfg.Zone.X, cfg.Zone.Y, cfg.Zone.Z}, cfg.Zone.Radius, cfg.Zone.RequireExit)

	conv := concierge.New(look, concierge.Options{
		ReplyDelayMin: cfg.Concierge.ReplyDelayMin,
		ReplyDelayMax: cfg.Concierge.ReplyDelayMax,
	})
	if cues != nil {
		conv.SetListener(cues)
	}

	resolver := physics.NewResolver(room)
	resolver.MaxPasses = cfg.Resolver.MaxPasses

	driver := engine.NewDriver(engine.DriverConfig{
		State: state,
		Integrator: physics.NewIntegrator(physics.MovementProfile{
			Speed:   cfg.Movement.Speed,
			Damping: cfg.Movement.Damping,
		}),
		Resolver:     resolver,
		Obstacles:    sc.Registry.Obstacles(),
		Zone:         zone,
		Look:         look,
		Listener:     conv,
		Conversation: conv,
	})

	renderer := render.NewRenderer(screen, sc, look, state, zone, conv)
	handler := modes.NewInputHandler(keys, state.Input, look, conv, renderer)

	return &session{
		scene:    sc,
		look:     look,
		state:    state,
		conv:     conv,
		driver:   driver,
		handler:  handler,
		renderer: renderer,
		loop:     engine.NewLoop(driver, handler, clock, cfg.Loop.FPS),
	}, nil
}
