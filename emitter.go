package main

import (
	"fmt"
	"math"
)

// particle is the state of a single particle. Emitter owns and recycles them.
type particle struct {
	Pos        Vec
	Vel        Vec
	Life       float64 // ms left
	MaxLife    float64 // ms at birth
	StartScale float64
	EndScale   float64
	Scale      float64
	Rotation   float64
	Color      Tint
}

// Emitter is the engine's particle emitter entity. It owns its particles and
// moves them every frame once it is added to a ParticleWorld.
//
// Whoever creates an emitter sets Name before adding it to the world. The
// world uses the name to find the emitter again.
type Emitter struct {
	Name string
	Pos  Vec

	config     EngineEmitterConfig
	startColor Tint
	endColor   Tint
	particles  []particle
	rng        *Rand

	// Total number of particles this emitter has released, by bursts or by
	// streaming.
	nLaunched int64
	// The size of the last burst that was requested.
	lastBurst int64

	streaming     bool
	streamElapsed float64
	streamAccum   float64

	world *ParticleWorld
}

// NewEmitter builds an emitter at pos. It fails if the config is one the
// engine cannot simulate, such as a negative life or an inverted range.
func NewEmitter(pos Vec, config EngineEmitterConfig) (*Emitter, error) {
	e := &Emitter{Pos: pos}
	if err := e.Apply(config); err != nil {
		return nil, err
	}
	// Until the emitter joins a world it uses its own generator. The world
	// replaces it with the world's generator, seeded from the session.
	r := NewRand(0)
	e.rng = &r
	return e, nil
}

// Config returns a copy of the emitter's current config.
func (e *Emitter) Config() EngineEmitterConfig {
	return e.config
}

// Apply replaces the emitter's config. The new config is validated first and,
// if it is valid, swapped in as a whole. Particles already alive keep the
// values they were born with.
func (e *Emitter) Apply(config EngineEmitterConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	start, err := ParseColor(config.StartColor)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	end, err := ParseColor(config.EndColor)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	e.config = config
	e.startColor = start
	e.endColor = end
	return nil
}

// BurstParticles releases n particles at once, regardless of MaxParticles.
func (e *Emitter) BurstParticles(n int64) {
	e.lastBurst = n
	for range n {
		e.spawn()
	}
}

// StreamParticles starts releasing particles every Frequency ms for
// durationMs, keeping at most MaxParticles alive. A durationMs of zero uses
// the configured Duration.
func (e *Emitter) StreamParticles(durationMs float64) {
	if durationMs <= 0 {
		durationMs = e.config.Duration
	}
	e.streaming = durationMs > 0 && e.config.Frequency > 0
	e.streamElapsed = 0
	e.streamAccum = 0
	e.config.Duration = durationMs
}

func (e *Emitter) StopStream() {
	e.streaming = false
}

func (e *Emitter) IsStreaming() bool {
	return e.streaming
}

func (e *Emitter) AliveCount() int64 {
	return int64(len(e.particles))
}

func (e *Emitter) LaunchedCount() int64 {
	return e.nLaunched
}

func (e *Emitter) LastBurst() int64 {
	return e.lastBurst
}

// InWorld reports whether the emitter is currently a child of a world.
func (e *Emitter) InWorld() bool {
	return e.world != nil
}

func (e *Emitter) spawn() {
	c := &e.config
	var p particle

	// Particles start anywhere inside the emitter's bounding box.
	p.Pos = e.Pos
	p.Pos.X += e.rng.RFloat(-c.Width/2, c.Width/2)
	p.Pos.Y += e.rng.RFloat(-c.Height/2, c.Height/2)

	angle := c.Angle + e.rng.RFloat(-c.AngleVariation, c.AngleVariation)
	speed := e.rng.RFloat(c.MinSpeed, c.MaxSpeed)
	p.Vel = FromAngle(angle, speed)

	p.Life = e.rng.RFloat(c.MinLife, c.MaxLife)
	p.MaxLife = p.Life
	p.StartScale = e.rng.RFloat(c.MinStartScale, c.MaxStartScale)
	p.EndScale = e.rng.RFloat(c.MinEndScale, c.MaxEndScale)
	p.Scale = p.StartScale
	p.Rotation = e.rng.RFloat(c.MinRotation, c.MaxRotation)
	p.Color = e.startColor

	e.particles = append(e.particles, p)
	e.nLaunched++
}

// Step advances the emitter and its particles by one frame.
func (e *Emitter) Step() {
	c := &e.config

	// Update existing particles, remove dead ones in place.
	n := 0
	for i := range e.particles {
		p := e.particles[i]
		p.Life -= FrameMs
		if p.Life <= 0 {
			continue
		}
		p.Vel.Add(c.Gravity)
		p.Pos.Add(p.Vel)
		if c.FollowTrajectory {
			p.Rotation = math.Atan2(p.Vel.Y, p.Vel.X)
		}

		t := 1 - p.Life/p.MaxLife
		p.Scale = lerp(p.StartScale, p.EndScale, t)
		p.Color = e.startColor.Blend(e.endColor, t)
		// Fade out over the particle's life.
		p.Color.Alpha *= p.Life / p.MaxLife

		e.particles[n] = p
		n++
	}
	e.particles = e.particles[:n]

	if !e.streaming {
		return
	}
	e.streamElapsed += FrameMs
	if e.streamElapsed > c.Duration {
		e.streaming = false
		return
	}
	e.streamAccum += FrameMs
	for e.streamAccum >= c.Frequency {
		e.streamAccum -= c.Frequency
		if int64(len(e.particles)) < c.MaxParticles {
			e.spawn()
		}
	}
}
