package main

import (
	"errors"
	"fmt"
	"math"
)

// EmitterKind selects how a panel's settings map onto the engine and which
// policy the controller follows when the settings change.
type EmitterKind string

const (
	// ExplosionKind is a one-shot burst, created lazily and recreated on
	// every trigger. Speeds are in pixels per frame.
	ExplosionKind EmitterKind = "explosion"
	// AmbientKind is an emitter that exists for as long as the panel is
	// mounted. Speeds and accelerations are tuned in pixels per second.
	AmbientKind EmitterKind = "ambient"
)

// FramesPerSecond is ebitengine's default TPS. The particle simulation
// advances by one frame per Update() call.
const FramesPerSecond = 60

// FrameMs is how much of a particle's life, in milliseconds, one frame uses.
const FrameMs = 1000.0 / FramesPerSecond

var ErrInvalidConfig = errors.New("invalid emitter config")

// EngineEmitterConfig is everything the engine needs to build an emitter.
// Part of it comes from the user's ParticleSettings, the rest are fixed
// engine values that the panel never exposes. ToEngineConfig is the only place
// where the two meet.
type EngineEmitterConfig struct {
	// Tunable.
	TotalParticles int64
	StartColor     string
	EndColor       string
	Angle          float64 // radians
	AngleVariation float64 // radians
	MinLife        float64 // ms
	MaxLife        float64 // ms
	MinSpeed       float64 // pixels per frame
	MaxSpeed       float64 // pixels per frame
	Gravity        Vec     // pixels per frame per frame
	MinStartScale  float64
	MaxStartScale  float64
	MinEndScale    float64
	MaxEndScale    float64
	Additive       bool

	// Fixed by the engine.
	Width            float64
	Height           float64
	TextureSize      float64
	MinRotation      float64
	MaxRotation      float64
	FollowTrajectory bool
	OnlyInViewport   bool
	Floating         bool
	MaxParticles     int64
	Frequency        float64 // ms between streamed particles
	Duration         float64 // ms of streaming, +Inf for no limit
	FramesToSkip     int64
}

// ToEngineConfig converts the user's settings for an emitter of the given kind
// into the engine's config.
func ToEngineConfig(kind EmitterKind, s ParticleSettings) (c EngineEmitterConfig) {
	c.TotalParticles = s.TotalParticles
	c.Angle = s.Angle
	c.AngleVariation = s.AngleVariation
	c.MinLife = float64(s.MinLife)
	c.MaxLife = float64(s.MaxLife)
	c.MinStartScale = s.MinStartScale
	c.MaxStartScale = s.MaxStartScale
	c.MinEndScale = s.MinEndScale
	c.MaxEndScale = s.MaxEndScale
	c.Additive = s.TextureAdditive
	c.MinRotation = 0
	c.MaxRotation = 2 * math.Pi
	c.FollowTrajectory = false
	c.OnlyInViewport = true
	c.Floating = false
	c.FramesToSkip = 0

	switch kind {
	case AmbientKind:
		c.StartColor = s.StartColor
		c.EndColor = s.EndColor
		c.MinSpeed = s.MinSpeed / FramesPerSecond
		c.MaxSpeed = s.MaxSpeed / FramesPerSecond
		c.Gravity = Vec{s.GravityX, s.GravityY}.Times(1.0 / (FramesPerSecond * FramesPerSecond))
		c.Width = 0
		c.Height = 0
		c.TextureSize = 16
		c.MaxParticles = s.TotalParticles
		c.Frequency = 0
		c.Duration = 0
	default:
		// The explosion has a single tint for the whole life of a particle.
		c.StartColor = s.StartColor
		c.EndColor = s.StartColor
		c.MinSpeed = math.Max(0, s.Speed-s.SpeedVariation)
		c.MaxSpeed = s.Speed + s.SpeedVariation
		c.Gravity = Vec{s.Wind, s.GravityY}
		c.Width = 32
		c.Height = 32
		c.TextureSize = 8
		c.MaxParticles = 10
		c.Frequency = 100
		c.Duration = math.Inf(1)
	}
	return
}

// Validate checks what the engine cannot work with. It is the engine's
// construction check, so it also rejects what a widget would never produce.
func (c *EngineEmitterConfig) Validate() error {
	if c.TotalParticles < 0 {
		return fmt.Errorf("%w: totalParticles %d is negative", ErrInvalidConfig, c.TotalParticles)
	}
	if c.MaxParticles < 0 {
		return fmt.Errorf("%w: maxParticles %d is negative", ErrInvalidConfig, c.MaxParticles)
	}
	if c.MinLife < 0 {
		return fmt.Errorf("%w: minLife %v is negative", ErrInvalidConfig, c.MinLife)
	}
	type bounds struct {
		name     string
		min, max float64
	}
	for _, b := range []bounds{
		{"life", c.MinLife, c.MaxLife},
		{"speed", c.MinSpeed, c.MaxSpeed},
		{"start scale", c.MinStartScale, c.MaxStartScale},
		{"end scale", c.MinEndScale, c.MaxEndScale},
		{"rotation", c.MinRotation, c.MaxRotation},
	} {
		if math.IsNaN(b.min) || math.IsNaN(b.max) {
			return fmt.Errorf("%w: %s is not a number", ErrInvalidConfig, b.name)
		}
		if b.min > b.max {
			return fmt.Errorf("%w: %s range [%v, %v] is inverted",
				ErrInvalidConfig, b.name, b.min, b.max)
		}
	}
	if _, err := ParseColor(c.StartColor); err != nil {
		return fmt.Errorf("%w: start color: %w", ErrInvalidConfig, err)
	}
	if _, err := ParseColor(c.EndColor); err != nil {
		return fmt.Errorf("%w: end color: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ValidateSettings reports whether an emitter of the given kind can be built
// from s. Settings that don't come from the widgets, like the defaults in the
// config file, must pass it before they are used.
func ValidateSettings(kind EmitterKind, s ParticleSettings) error {
	c := ToEngineConfig(kind, s)
	return c.Validate()
}

// WithLiveFields returns a copy of c in which only the fields that a live
// emitter can change without being rebuilt are taken from other: particle
// count, life bounds, speed bounds, gravity and colors. Blending, texture,
// scale and angles stay as c has them, they take effect on the next emitter.
func (c EngineEmitterConfig) WithLiveFields(other EngineEmitterConfig) EngineEmitterConfig {
	c.TotalParticles = other.TotalParticles
	c.MinLife = other.MinLife
	c.MaxLife = other.MaxLife
	c.MinSpeed = other.MinSpeed
	c.MaxSpeed = other.MaxSpeed
	c.Gravity = other.Gravity
	c.StartColor = other.StartColor
	c.EndColor = other.EndColor
	return c
}
