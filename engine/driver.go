package engine

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/vi-lobby/physics"
	"github.com/lixenwraith/vi-lobby/scene"
)

// LookControl moves the viewpoint relative to its facing direction
type LookControl interface {
	Engaged() bool
	MoveForward(b *physics.Body, d float64)
	MoveRight(b *physics.Body, d float64)
}

// ZoneListener is signaled when the viewpoint enters the proximity zone
type ZoneListener interface {
	EnterZone(pos mgl64.Vec3)
}

// Conversation reports whether a modal conversation overlay is open
type Conversation interface {
	IsOpen() bool
}

// Frame summarizes one driver step
type Frame struct {
	Number   uint64
	Active   bool              // Integration and collision ran
	Contacts []physics.Contact // Pushes applied by the resolver
	Entered  bool              // Proximity zone signaled
}

// DriverConfig wires the driver's collaborators
type DriverConfig struct {
	State        *State
	Integrator   *physics.Integrator
	Resolver     *physics.Resolver
	Obstacles    []physics.Obstacle
	Zone         *scene.Zone
	Look         LookControl
	Listener     ZoneListener
	Conversation Conversation
}

// Driver runs the per-frame walkthrough sequence
type Driver struct {
	state        *State
	integrator   *physics.Integrator
	resolver     *physics.Resolver
	obstacles    []physics.Obstacle
	zone         *scene.Zone
	look         LookControl
	listener     ZoneListener
	conversation Conversation

	frame uint64
}

// NewDriver creates a frame driver, State, Integrator, Resolver and Look are required
func NewDriver(cfg DriverConfig) *Driver {
	return &Driver{
		state:        cfg.State,
		integrator:   cfg.Integrator,
		resolver:     cfg.Resolver,
		obstacles:    cfg.Obstacles,
		zone:         cfg.Zone,
		look:         cfg.Look,
		listener:     cfg.Listener,
		conversation: cfg.Conversation,
	}
}

// State returns the driven state
func (d *Driver) State() *State {
	return d.state
}

// Active reports whether movement control is live: look engaged and no conversation open
func (d *Driver) Active() bool {
	return d.look.Engaged() && !d.conversationOpen()
}

// Step advances one frame. When inactive the state is left untouched
func (d *Driver) Step() Frame {
	d.frame++
	f := Frame{Number: d.frame}
	if !d.Active() {
		return f
	}
	f.Active = true

	s := d.state

	// Decay, direction, acceleration
	s.Velocity = d.integrator.Step(s.Velocity, s.Input.Flags())

	// Translate along the facing basis
	right, forward := physics.Displacement(s.Velocity)
	d.look.MoveRight(s.Body, right)
	d.look.MoveForward(s.Body, forward)
	s.Body.PinHeight()

	f.Contacts = d.resolver.Resolve(s.Body, d.obstacles)
	for _, c := range f.Contacts {
		log.Trace().
			Uint64("frame", f.Number).
			Int("obstacle", c.Index).
			Stringer("axis", c.Axis).
			Float64("push", c.Push).
			Msg("contact")
	}

	if d.zone != nil && d.zone.Check(s.Body.Position, d.conversationOpen()) {
		f.Entered = true
		log.Debug().
			Uint64("frame", f.Number).
			Float64("x", s.Body.Position.X()).
			Float64("z", s.Body.Position.Z()).
			Msg("proximity zone entered")
		if d.listener != nil {
			d.listener.EnterZone(s.Body.Position)
		}
	}
	return f
}

func (d *Driver) conversationOpen() bool {
	return d.conversation != nil && d.conversation.IsOpen()
}
