package main

import (
	"fmt"
	"log"
	"math"
)

// DemoProfile is everything that differs between the two demos: which
// parameters the panel exposes, their bounds, the default settings and how
// the emitter comes to life.
type DemoProfile struct {
	Kind     EmitterKind
	Title    string
	Widgets  []Widget
	Defaults ParticleSettings
	// DeferredExplosion creates the first emitter, with a burst, at the center
	// of the viewport a while after the demo is mounted.
	DeferredExplosion bool
	// PlaceOnMount creates the emitter at the center of the viewport as soon
	// as the demo is mounted, without a burst.
	PlaceOnMount bool
	// PointerTriggers makes clicks on the canvas trigger explosions.
	PointerTriggers bool
}

// The colors a color widget cycles through.
var firePalette = []string{
	"#ff6600", "#ff0000", "#ffcc00", "#ffffff", "#66ccff", "#9933ff", "#33ff66",
}

var defaultExplosionSettings = ParticleSettings{
	TotalParticles:  300,
	StartColor:      "#ff6600",
	EndColor:        "#ff6600",
	Angle:           math.Pi / 2,
	AngleVariation:  math.Pi * 2,
	MinLife:         1000,
	MaxLife:         3000,
	Speed:           3,
	SpeedVariation:  2,
	GravityY:        0.5,
	Wind:            0,
	MinStartScale:   0.5,
	MaxStartScale:   1.5,
	MinEndScale:     0,
	MaxEndScale:     0,
	TextureAdditive: true,
}

var defaultAmbientSettings = ParticleSettings{
	TotalParticles:  200,
	StartColor:      "#ff6600",
	EndColor:        "#ff0000",
	Angle:           0,
	AngleVariation:  math.Pi * 2,
	MinLife:         1000,
	MaxLife:         3000,
	MinSpeed:        100,
	MaxSpeed:        500,
	GravityX:        0,
	GravityY:        0,
	MinStartScale:   0.5,
	MaxStartScale:   1.5,
	MinEndScale:     0.5,
	MaxEndScale:     1.5,
	TextureAdditive: true,
}

func ExplosionProfile(defaults ParticleSettings) DemoProfile {
	return DemoProfile{
		Kind:     ExplosionKind,
		Title:    "Particle system controls",
		Defaults: defaults,
		Widgets: []Widget{
			{Key: "totalParticles", Label: "Total particles", Kind: WidgetSlider, Min: 10, Max: 1500, Step: 1},
			{Key: "startColor", Label: "Tint", Kind: WidgetColor, Palette: firePalette},
			{Key: "textureAdditive", Label: "Additive blending", Kind: WidgetCheckbox},
			{Key: "speed", Label: "Speed", Kind: WidgetSlider, Min: 0, Max: 10, Step: 0.1},
			{Key: "speedVariation", Label: "Speed variation", Kind: WidgetSlider, Min: 0, Max: 5, Step: 0.1},
			{Key: "gravityY", Label: "Gravity", Kind: WidgetSlider, Min: 0, Max: 2, Step: 0.1},
			{Key: "wind", Label: "Wind", Kind: WidgetSlider, Min: -2, Max: 2, Step: 0.1},
			{Key: "minLife", Label: "Min life", Unit: "ms", Kind: WidgetSlider, Min: 500, Max: 5000, Step: 1, UpperKey: "maxLife"},
			{Key: "maxLife", Label: "Max life", Unit: "ms", Kind: WidgetSlider, Min: 1000, Max: 10000, Step: 1, LowerKey: "minLife"},
			{Key: "minStartScale", Label: "Min start scale", Kind: WidgetSlider, Min: 0.1, Max: 3, Step: 0.1, UpperKey: "maxStartScale"},
			{Key: "maxStartScale", Label: "Max start scale", Kind: WidgetSlider, Min: 0.5, Max: 5, Step: 0.1, LowerKey: "minStartScale"},
		},
		DeferredExplosion: true,
		PointerTriggers:   true,
	}
}

func AmbientProfile(defaults ParticleSettings) DemoProfile {
	return DemoProfile{
		Kind:     AmbientKind,
		Title:    "Particle emitter controls",
		Defaults: defaults,
		Widgets: []Widget{
			{Key: "totalParticles", Label: "Total particles", Kind: WidgetSlider, Min: 100, Max: 2000, Step: 1},
			{Key: "minSpeed", Label: "Min speed", Kind: WidgetSlider, Min: 0, Max: 500, Step: 1, UpperKey: "maxSpeed"},
			{Key: "maxSpeed", Label: "Max speed", Kind: WidgetSlider, Min: 50, Max: 1000, Step: 1, LowerKey: "minSpeed"},
			{Key: "minLife", Label: "Min life", Unit: "ms", Kind: WidgetSlider, Min: 500, Max: 3000, Step: 1, UpperKey: "maxLife"},
			{Key: "maxLife", Label: "Max life", Unit: "ms", Kind: WidgetSlider, Min: 1000, Max: 5000, Step: 1, LowerKey: "minLife"},
			{Key: "gravityX", Label: "Gravity X", Kind: WidgetSlider, Min: -500, Max: 500, Step: 1},
			{Key: "gravityY", Label: "Gravity Y", Kind: WidgetSlider, Min: -500, Max: 500, Step: 1},
			{Key: "startColor", Label: "Start color", Kind: WidgetColor, Palette: firePalette},
			{Key: "endColor", Label: "End color", Kind: WidgetColor, Palette: firePalette},
		},
		PlaceOnMount:    true,
		PointerTriggers: true,
	}
}

// Profiles builds the profile of every demo with the given default settings,
// usually the ones from the config file. Defaults that no emitter could be
// built from are replaced by the built-in ones.
func Profiles(explosionDefaults, ambientDefaults ParticleSettings) map[EmitterKind]DemoProfile {
	return map[EmitterKind]DemoProfile{
		ExplosionKind: ExplosionProfile(checkedDefaults(ExplosionKind, explosionDefaults, defaultExplosionSettings)),
		AmbientKind:   AmbientProfile(checkedDefaults(AmbientKind, ambientDefaults, defaultAmbientSettings)),
	}
}

func checkedDefaults(kind EmitterKind, s ParticleSettings, fallback ParticleSettings) ParticleSettings {
	if err := ValidateSettings(kind, s); err != nil {
		log.Printf("[Config] Warning: %s defaults rejected, using built-in ones: %v", kind, err)
		return fallback
	}
	return s
}

func ParseEmitterKind(s string) (EmitterKind, error) {
	switch EmitterKind(s) {
	case ExplosionKind, AmbientKind:
		return EmitterKind(s), nil
	}
	return "", fmt.Errorf("invalid demo: %q", s)
}

// Next returns the demo that follows k when the user switches demos.
func (k EmitterKind) Next() EmitterKind {
	if k == ExplosionKind {
		return AmbientKind
	}
	return ExplosionKind
}
