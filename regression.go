package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// StateBytes is an array of bytes that represent the current state of the
// World, as perceived by the outside. If two Worlds have the same StateBytes()
// they are considered "the same", even though they may be implemented
// differently.
//
// The world is "the same" if it shows:
// - the same demo, with the same settings
// - the same emitters, at the same positions, with the same configs
// - the same particles, at the same positions, with the same size and color
//
// Notices and the state of the panel are not included. They follow from the
// events and they are not part of the simulation.
func (w *World) StateBytes() []byte {
	buf := new(bytes.Buffer)
	Serialize(buf, w.FrameIdx)
	SerializeString(buf, string(w.Kind))
	settings := w.Demo.Settings()
	for _, key := range FieldKeys() {
		v, err := settings.FieldValue(key)
		Check(err)
		SerializeString(buf, key+"="+v)
	}

	emitters := w.Demo.World.Children()
	Serialize(buf, int64(len(emitters)))
	for _, e := range emitters {
		SerializeString(buf, e.Name)
		Serialize(buf, e.Pos)
		Serialize(buf, e.nLaunched)
		Serialize(buf, e.lastBurst)
		Serialize(buf, e.config.MaxParticles)
		Serialize(buf, e.config.MinSpeed)
		Serialize(buf, e.config.MaxSpeed)
		Serialize(buf, e.config.Gravity)
		Serialize(buf, int64(len(e.particles)))
		for i := range e.particles {
			p := &e.particles[i]
			Serialize(buf, p.Pos)
			Serialize(buf, p.Life)
			Serialize(buf, p.Scale)
			Serialize(buf, p.Color.NRGBA())
		}
	}
	return buf.Bytes()
}

// RegressionId returns a string which uniquely identifies the playthrough.
// It is a hash of all the states of the World. It is meant to check if the
// state of the World at each frame in the playthrough is the same after a
// refactorization of the World.
//
// RegressionId is meant to be used this way:
// - Compute the RegressionId for a playthrough.
// - Refactor the particle engine, the controller or the demos.
// - Compute the RegressionId for the same playthrough. It uses the exact same
// setup and events, but the new implementation.
// - If the RegressionId hasn't changed, the playthroughs are (pretty much)
// identical. The refactoring did not alter what the user sees.
// - If the RegressionId has changed, something in the refactoring is now
// causing the particles to behave differently.
func RegressionId(p *Playthrough) string {
	hash := sha256.New()

	// Replay headless, with the default layout. Events carry world
	// coordinates so the size of the window doesn't matter.
	w := NewWorld(p, NewScreenLayout(), true)
	hash.Write(w.StateBytes())

	for range p.NFrames {
		w.Step(PlayerInput{})
		hash.Write(w.StateBytes())
	}

	return hex.EncodeToString(hash.Sum(nil))
}
