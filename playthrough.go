package main

import (
	"cmp"
	"fmt"
	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	"slices"
)

// InputVersion is the version of the Playthrough format. If a change to
// Playthrough or SessionEvent means that old recordings can't be read anymore
// or don't replay the same way, InputVersion must change as well.
const InputVersion = 2

type EventKind string

const (
	EventSettings   EventKind = "settings"
	EventReset      EventKind = "reset"
	EventTrigger    EventKind = "trigger"
	EventSwitchDemo EventKind = "switch-demo"
	// EventDefaults replaces the default settings of a demo.
	EventDefaults EventKind = "defaults"
)

// SessionEvent is one thing the host did to its demo, at a given frame.
type SessionEvent struct {
	Frame    int64             `yaml:"frame"`
	Kind     EventKind         `yaml:"kind"`
	X        float64           `yaml:"x,omitempty"`
	Y        float64           `yaml:"y,omitempty"`
	Demo     EmitterKind       `yaml:"demo,omitempty"`
	Settings *ParticleSettings `yaml:"settings,omitempty"`
}

// Playthrough represents everything needed to replay a session: how the
// world was set up and every event sent to it. Given a Playthrough and the
// same simulation, the same world states are produced.
type Playthrough struct {
	InputVersion      int64            `yaml:"inputVersion"`
	ReleaseVersion    int64            `yaml:"releaseVersion"`
	Id                uuid.UUID        `yaml:"id"`
	User              string           `yaml:"user"`
	Seed              int64            `yaml:"seed"`
	NFrames           int64            `yaml:"nFrames"`
	StartDemo         string           `yaml:"startDemo"`
	InitialDelayMs    int64            `yaml:"initialDelayMs"`
	ExplosionDefaults ParticleSettings `yaml:"explosionDefaults"`
	AmbientDefaults   ParticleSettings `yaml:"ambientDefaults"`
	Events            []SessionEvent   `yaml:"events"`
}

// NewPlaythrough starts an empty recording of a session set up by cfg.
func NewPlaythrough(cfg Config, user string, seed int64) Playthrough {
	return Playthrough{
		InputVersion:      InputVersion,
		ReleaseVersion:    ReleaseVersion,
		Id:                uuid.New(),
		User:              user,
		Seed:              seed,
		StartDemo:         cfg.StartDemo,
		InitialDelayMs:    cfg.InitialExplosionDelayMs,
		ExplosionDefaults: cfg.ExplosionDefaults,
		AmbientDefaults:   cfg.AmbientDefaults,
	}
}

func (p *Playthrough) Serialize() []byte {
	data, err := yaml.Marshal(p)
	Check(err)
	return data
}

func (p *Playthrough) Clone() *Playthrough {
	clone := *p
	clone.Events = slices.Clone(p.Events)
	return &clone
}

// EventsAt returns the events recorded at frame, in the order they happened.
func (p *Playthrough) EventsAt(frame int64) []SessionEvent {
	start, _ := slices.BinarySearchFunc(p.Events, frame, func(ev SessionEvent, f int64) int {
		return cmp.Compare(ev.Frame, f)
	})
	end := start
	for end < len(p.Events) && p.Events[end].Frame == frame {
		end++
	}
	return p.Events[start:end]
}

func DeserializePlaythrough(data []byte) (p Playthrough) {
	Check(yaml.Unmarshal(data, &p))
	if p.InputVersion != InputVersion {
		Check(fmt.Errorf("can't deserialize this playthrough - we are at "+
			"InputVersion %d and playthrough was generated with InputVersion "+
			"version %d",
			InputVersion, p.InputVersion))
	}
	for _, ev := range p.Events {
		if (ev.Kind == EventSettings || ev.Kind == EventDefaults) && ev.Settings == nil {
			Check(fmt.Errorf("playthrough event at frame %d has no settings", ev.Frame))
		}
	}
	return
}
