package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func TestToEngineConfig_Explosion(t *testing.T) {
	s := defaultExplosionSettings
	s.Speed = 1
	s.SpeedVariation = 2
	s.Wind = -0.5

	c := ToEngineConfig(ExplosionKind, s)

	assert.Equal(t, 0.0, c.MinSpeed)
	assert.Equal(t, 3.0, c.MaxSpeed)
	assert.Equal(t, Vec{-0.5, 0.5}, c.Gravity)
	assert.Equal(t, s.StartColor, c.StartColor)
	assert.Equal(t, s.StartColor, c.EndColor)
	assert.Equal(t, 1000.0, c.MinLife)
	assert.Equal(t, 3000.0, c.MaxLife)
	assert.Equal(t, 32.0, c.Width)
	assert.Equal(t, 32.0, c.Height)
	assert.Equal(t, 8.0, c.TextureSize)
	assert.Equal(t, int64(10), c.MaxParticles)
	assert.Equal(t, 100.0, c.Frequency)
	assert.True(t, math.IsInf(c.Duration, 1))
	assert.True(t, c.Additive)
	assert.True(t, c.OnlyInViewport)
	assert.False(t, c.FollowTrajectory)
	assert.False(t, c.Floating)
	assert.Equal(t, 2*math.Pi, c.MaxRotation)
	assert.NoError(t, c.Validate())
}

func TestToEngineConfig_Ambient(t *testing.T) {
	s := defaultAmbientSettings
	s.GravityX = 360
	s.GravityY = -3600

	c := ToEngineConfig(AmbientKind, s)

	assert.InDelta(t, 100.0/60, c.MinSpeed, 1e-9)
	assert.InDelta(t, 500.0/60, c.MaxSpeed, 1e-9)
	assert.InDelta(t, 0.1, c.Gravity.X, 1e-9)
	assert.InDelta(t, -1, c.Gravity.Y, 1e-9)
	assert.Equal(t, "#ff6600", c.StartColor)
	assert.Equal(t, "#ff0000", c.EndColor)
	assert.Equal(t, 0.0, c.Width)
	assert.Equal(t, 16.0, c.TextureSize)
	assert.Equal(t, s.TotalParticles, c.MaxParticles)
	assert.Equal(t, 0.0, c.Frequency)
	assert.Equal(t, 0.0, c.Duration)
	assert.NoError(t, c.Validate())
}

func TestEngineEmitterConfig_Validate(t *testing.T) {
	valid := ToEngineConfig(ExplosionKind, defaultExplosionSettings)
	require.NoError(t, valid.Validate())

	broken := []func(c *EngineEmitterConfig){
		func(c *EngineEmitterConfig) { c.TotalParticles = -1 },
		func(c *EngineEmitterConfig) { c.MinLife = -1 },
		func(c *EngineEmitterConfig) { c.MinLife, c.MaxLife = 10, 5 },
		func(c *EngineEmitterConfig) { c.MinSpeed = math.NaN() },
		func(c *EngineEmitterConfig) { c.MinStartScale, c.MaxStartScale = 3, 1 },
		func(c *EngineEmitterConfig) { c.EndColor = "#zzz" },
	}
	for i, breakIt := range broken {
		c := valid
		breakIt(&c)
		assert.ErrorIs(t, c.Validate(), ErrInvalidConfig, i)
	}
}

func TestEngineEmitterConfig_WithLiveFields(t *testing.T) {
	old := ToEngineConfig(ExplosionKind, defaultExplosionSettings)
	s := defaultExplosionSettings
	s.TotalParticles = 10
	s.MaxLife = 9000
	s.MinStartScale = 3
	s.MaxStartScale = 4
	s.Angle = 0
	s.TextureAdditive = false
	s.StartColor = "#ffffff"

	c := old.WithLiveFields(ToEngineConfig(ExplosionKind, s))

	assert.Equal(t, int64(10), c.TotalParticles)
	assert.Equal(t, 9000.0, c.MaxLife)
	assert.Equal(t, "#ffffff", c.StartColor)
	assert.Equal(t, old.MinStartScale, c.MinStartScale)
	assert.Equal(t, old.MaxStartScale, c.MaxStartScale)
	assert.Equal(t, old.Angle, c.Angle)
	assert.Equal(t, old.Additive, c.Additive)
}
