package main

import (
	"slices"
	"time"
)

// InitialExplosionDelay is how long the explosion demo waits after mounting
// before it creates its first emitter.
const InitialExplosionDelay = 500 * time.Millisecond

// Demo is one particle demo: a world with a single live emitter, the panel
// that tunes it and the trigger that recreates it. It is the host the panel
// talks to.
//
// Everything the user does goes through the PanelHost methods, which record
// the event and then apply it. Recorded events are applied again, without
// being recorded, during playback.
type Demo struct {
	Profile    DemoProfile
	World      *ParticleWorld
	Controller *EmitterController
	Panel      *ControlPanel
	Trigger    ExplosionTrigger
	Scheduler  Scheduler
	Notices    Notices
	// Record receives every event before it is applied. It can be nil.
	Record func(ev SessionEvent)

	settings         ParticleSettings
	layout           *ScreenLayout
	seed             int64
	initialDelay     time.Duration
	initialExplosion *ScheduledTask
	mounted          bool
	tornDown         bool
}

func NewDemo(profile DemoProfile, layout *ScreenLayout, seed int64, initialDelay time.Duration) *Demo {
	if initialDelay <= 0 {
		initialDelay = InitialExplosionDelay
	}
	return &Demo{
		Profile:      profile,
		settings:     profile.Defaults,
		layout:       layout,
		seed:         seed,
		initialDelay: initialDelay,
	}
}

// Mount builds the world, the controller, the panel and the trigger and
// brings the first emitter to life the way the profile asks for.
func (d *Demo) Mount() {
	if d.mounted {
		return
	}
	d.mounted = true

	d.World = NewParticleWorld(d.seed, d.layout.Viewport)
	d.Controller = NewEmitterController(d.World, d.Profile.Kind)
	d.Notices = NewNotices()
	d.Panel = NewControlPanel(d, d.Profile.Title, slices.Clone(d.Profile.Widgets), &d.Notices)
	d.Panel.Area = d.layout.PanelArea()
	d.Panel.ViewportCenter = d.layout.ViewportCenter
	d.Trigger = ExplosionTrigger{Layout: d.layout, Fire: d.OnTriggerExplosion}

	center := d.layout.ViewportCenter()
	if d.Profile.PlaceOnMount {
		d.Notices.Error(d.Controller.Place(center.X, center.Y, d.settings))
	}
	if d.Profile.DeferredExplosion {
		d.initialExplosion = d.Scheduler.After(DurationToFrames(d.initialDelay), func() {
			d.Notices.Error(d.Controller.CreateAt(center.X, center.Y, d.settings))
		})
	}
}

// Unmount tears the demo down. Pending tasks are cancelled before anything
// else so that none of them can run against the world being closed.
func (d *Demo) Unmount() {
	if !d.mounted || d.tornDown {
		return
	}
	d.Scheduler.CancelAll()
	d.Controller.Reset()
	d.World.Close()
	d.tornDown = true
}

func (d *Demo) TornDown() bool {
	return d.tornDown
}

// InitialExplosion returns the task that creates the first explosion, or nil
// if the profile doesn't have one.
func (d *Demo) InitialExplosion() *ScheduledTask {
	return d.initialExplosion
}

// HandleInput passes this frame's input to the panel and, if the panel
// didn't take it, to the trigger.
func (d *Demo) HandleInput(input PlayerInput) {
	if d.tornDown {
		return
	}
	d.Panel.Area = d.layout.PanelArea()
	consumed := d.Panel.Update(input)

	if input.TriggerCenter {
		d.Notices.Error(d.Trigger.FireAtCenter())
	}
	if input.ResetEmitter {
		d.OnReset()
	}
	if consumed || !d.Profile.PointerTriggers {
		return
	}
	_, err := d.Trigger.HandlePointer(input)
	d.Notices.Error(err)
}

func (d *Demo) Step() {
	if d.tornDown {
		return
	}
	d.Scheduler.Step()
	d.World.Step()
	d.Notices.Step()
}

func (d *Demo) Settings() ParticleSettings {
	return d.settings
}

func (d *Demo) OnSettingsChange(s ParticleSettings) {
	d.record(SessionEvent{Kind: EventSettings, Settings: &s})
	d.applySettings(s)
}

func (d *Demo) OnReset() {
	d.record(SessionEvent{Kind: EventReset})
	d.Controller.Reset()
}

func (d *Demo) OnTriggerExplosion(x, y float64) error {
	d.record(SessionEvent{Kind: EventTrigger, X: x, Y: y})
	return d.explodeAt(x, y)
}

// Apply executes a recorded event.
func (d *Demo) Apply(ev SessionEvent) {
	switch ev.Kind {
	case EventSettings:
		d.applySettings(*ev.Settings)
	case EventReset:
		d.Controller.Reset()
	case EventTrigger:
		d.Notices.Error(d.explodeAt(ev.X, ev.Y))
	}
}

func (d *Demo) record(ev SessionEvent) {
	if d.Record != nil {
		d.Record(ev)
	}
}

func (d *Demo) applySettings(s ParticleSettings) {
	d.settings = s
	d.Notices.Error(d.Controller.SettingsChanged(s))
}

func (d *Demo) explodeAt(x, y float64) error {
	// An explicit trigger replaces the initial explosion.
	if d.initialExplosion != nil {
		d.initialExplosion.Cancel()
	}
	return d.Controller.CreateAt(x, y, d.settings)
}
