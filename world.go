package main

import (
	"log"
	"math"
	"time"
)

// PlayerInput is everything the player did during one frame, already
// converted to screen coordinates.
type PlayerInput struct {
	Pos          Pt
	Pressed      bool
	JustPressed  bool
	JustReleased bool
	// TriggerCenter asks for an explosion at the center of the viewport.
	TriggerCenter bool
	ResetEmitter  bool
	SwitchDemo    bool
}

// World is the deterministic part of the application: the demo currently
// shown and everything needed to switch to the other one. Given the same
// Playthrough, it goes through the same states, frame by frame.
//
// While playing, World turns input into host events and records them in its
// Playthrough. During playback it ignores input and applies the recorded
// events instead, at the frames they were recorded at.
type World struct {
	Profiles     map[EmitterKind]DemoProfile
	Kind         EmitterKind
	Demo         *Demo
	FrameIdx     int64
	InitialDelay time.Duration
	Layout       *ScreenLayout
	// Playback makes Step apply recorded events and ignore input.
	Playback    bool
	playthrough *Playthrough
	rng         Rand
}

func NewWorld(p *Playthrough, layout *ScreenLayout, playback bool) *World {
	kind, err := ParseEmitterKind(p.StartDemo)
	Check(err)

	w := &World{
		Profiles:     Profiles(p.ExplosionDefaults, p.AmbientDefaults),
		Kind:         kind,
		InitialDelay: time.Duration(p.InitialDelayMs) * time.Millisecond,
		Layout:       layout,
		Playback:     playback,
		playthrough:  p,
		rng:          NewRand(p.Seed),
	}
	w.mount()
	return w
}

func (w *World) mount() {
	seed := w.rng.RInt(0, math.MaxInt64-1)
	w.Demo = NewDemo(w.Profiles[w.Kind], w.Layout, seed, w.InitialDelay)
	if !w.Playback {
		w.Demo.Record = w.record
	}
	w.Demo.Mount()
}

func (w *World) record(ev SessionEvent) {
	if w.Playback {
		return
	}
	ev.Frame = w.FrameIdx
	w.playthrough.Events = append(w.playthrough.Events, ev)
}

// Step advances the world by one frame.
func (w *World) Step(input PlayerInput) {
	if w.Playback {
		for _, ev := range w.playthrough.EventsAt(w.FrameIdx) {
			w.Apply(ev)
		}
	} else {
		w.HandleInput(input)
	}
	w.Demo.Step()
	w.FrameIdx++
	if !w.Playback {
		w.playthrough.NFrames = w.FrameIdx
	}
}

func (w *World) HandleInput(input PlayerInput) {
	if input.SwitchDemo {
		w.record(SessionEvent{Kind: EventSwitchDemo})
		w.switchDemo()
		return
	}
	w.Demo.HandleInput(input)
}

// Apply executes a recorded event without recording it again.
func (w *World) Apply(ev SessionEvent) {
	switch ev.Kind {
	case EventSwitchDemo:
		w.switchDemo()
	case EventDefaults:
		w.setDefaults(ev.Demo, *ev.Settings)
	default:
		w.Demo.Apply(ev)
	}
}

func (w *World) switchDemo() {
	w.Demo.Unmount()
	w.Kind = w.Kind.Next()
	w.mount()
}

// SetDefaults replaces the default settings of every demo, for example after
// the config file changed on disk. The demo currently shown receives its new
// defaults as a settings change, the other demo uses them the next time it is
// mounted.
// Defaults no emitter could be built from are ignored and the demo keeps the
// ones it has.
func (w *World) SetDefaults(explosionDefaults, ambientDefaults ParticleSettings) {
	for _, kind := range []EmitterKind{ExplosionKind, AmbientKind} {
		defaults := explosionDefaults
		if kind == AmbientKind {
			defaults = ambientDefaults
		}
		if defaults == w.Profiles[kind].Defaults {
			continue
		}
		if err := ValidateSettings(kind, defaults); err != nil {
			log.Printf("[World] Warning: ignoring %s defaults: %v", kind, err)
			continue
		}
		w.record(SessionEvent{Kind: EventDefaults, Demo: kind, Settings: &defaults})
		w.setDefaults(kind, defaults)
	}
}

func (w *World) setDefaults(kind EmitterKind, defaults ParticleSettings) {
	p := w.Profiles[kind]
	p.Defaults = defaults
	w.Profiles[kind] = p
	if kind == w.Kind {
		w.Demo.applySettings(defaults)
	}
}
