package main

import (
	"fmt"
	"log"
)

// ReservedEmitterName is the name the live emitter carries in the world. The
// controller finds and removes its emitter by this name.
const ReservedEmitterName = "explosion-emitter"

// SimulationWorld is what the controller needs from the world that emitters
// live in.
type SimulationWorld interface {
	AddChild(e *Emitter) error
	RemoveChild(e *Emitter)
	GetChildByName(name string) []*Emitter
}

// EmitterController owns the single live emitter of a panel. It is the only
// code that creates, removes or reconfigures that emitter, which is what keeps
// the world from ever holding two of them.
//
// Rules:
// - CreateAt always resets first. After CreateAt or Reset, the world holds at
// most one emitter named ReservedEmitterName.
// - Reconfigure changes the live emitter in place. It never adds or removes
// anything from the world.
// - Engine errors are returned to the caller as they are, nothing is retried.
type EmitterController struct {
	world SimulationWorld
	kind  EmitterKind
	live  *Emitter
}

func NewEmitterController(world SimulationWorld, kind EmitterKind) *EmitterController {
	return &EmitterController{world: world, kind: kind}
}

// Live returns the live emitter, or nil if there is none.
func (c *EmitterController) Live() *Emitter {
	return c.live
}

func (c *EmitterController) Kind() EmitterKind {
	return c.kind
}

// Reset removes the live emitter from the world. It is safe to call when
// there is no live emitter.
func (c *EmitterController) Reset() {
	// Look the emitter up by name rather than trusting the local reference,
	// so that nothing carrying the reserved name survives a reset.
	for _, e := range c.world.GetChildByName(ReservedEmitterName) {
		c.world.RemoveChild(e)
	}
	c.live = nil
}

// CreateAt replaces the live emitter with a new one at (x, y), configured from
// settings, and immediately bursts settings.TotalParticles particles.
func (c *EmitterController) CreateAt(x, y float64, settings ParticleSettings) error {
	e, err := c.create(x, y, settings)
	if err != nil {
		return err
	}
	e.BurstParticles(settings.TotalParticles)
	return nil
}

// Place replaces the live emitter with a new one at (x, y) but doesn't burst.
func (c *EmitterController) Place(x, y float64, settings ParticleSettings) error {
	_, err := c.create(x, y, settings)
	return err
}

func (c *EmitterController) create(x, y float64, settings ParticleSettings) (*Emitter, error) {
	c.Reset()

	e, err := NewEmitter(Vec{x, y}, ToEngineConfig(c.kind, settings))
	if err != nil {
		return nil, fmt.Errorf("creating emitter at (%.1f, %.1f): %w", x, y, err)
	}
	e.Name = ReservedEmitterName
	if err = c.world.AddChild(e); err != nil {
		return nil, fmt.Errorf("adding emitter to world: %w", err)
	}
	c.live = e
	Assert(len(c.world.GetChildByName(ReservedEmitterName)) == 1)
	return e, nil
}

// Reconfigure pushes settings onto a live emitter. Only what the engine can
// change on a live emitter is updated: particle count, life, speed, gravity
// and colors. Blending, texture, scale and angles take effect on the next
// CreateAt.
// A nil emitter is not an error, there is simply nothing to update.
func (c *EmitterController) Reconfigure(e *Emitter, settings ParticleSettings) error {
	if e == nil {
		return nil
	}
	next := e.Config().WithLiveFields(ToEngineConfig(c.kind, settings))
	if err := e.Apply(next); err != nil {
		return fmt.Errorf("reconfiguring emitter: %w", err)
	}
	return nil
}

// SettingsChanged is called every time the panel produces new settings. Both
// kinds of emitter patch the live emitter in place rather than rebuilding it,
// so that particles already in flight are not thrown away while the user drags
// a slider.
func (c *EmitterController) SettingsChanged(settings ParticleSettings) error {
	err := c.Reconfigure(c.live, settings)
	if err != nil {
		log.Printf("[EmitterController] Warning: %v", err)
	}
	return err
}
