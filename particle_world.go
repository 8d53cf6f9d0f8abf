package main

import (
	"errors"
	"fmt"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
	"slices"
)

var ErrWorldClosed = errors.New("particle world is closed")
var ErrAlreadyInWorld = errors.New("emitter is already in a world")

// NameData is the name under which an entity can be found in the world.
type NameData struct {
	Name string
}

// EmitterData links an ECS entity to the emitter it simulates.
type EmitterData struct {
	Emitter *Emitter
	// Order is the position of the emitter in the sequence of additions to
	// the world. Queries return entities in storage order, which changes
	// when entities are removed, and the world needs a stable order to stay
	// deterministic.
	Order int64
}

var NameComponent = donburi.NewComponentType[NameData]()
var EmitterComponent = donburi.NewComponentType[EmitterData]()

var emittersQuery = query.NewQuery(filter.Contains(NameComponent, EmitterComponent))

// ParticleWorld is the simulation world that emitters live in. It holds the
// emitters as entities of an ECS world, steps them every frame and draws
// them.
type ParticleWorld struct {
	ecs      donburi.World
	rng      Rand
	entities map[*Emitter]donburi.Entity
	nAdded   int64
	closed   bool
	// Viewport is the part of the world that is visible, in world
	// coordinates.
	Viewport Rectangle
}

func NewParticleWorld(seed int64, viewport Rectangle) *ParticleWorld {
	return &ParticleWorld{
		ecs:      donburi.NewWorld(),
		rng:      NewRand(seed),
		entities: map[*Emitter]donburi.Entity{},
		Viewport: viewport,
	}
}

// AddChild makes the emitter part of the world. From now on it is stepped and
// drawn with the world.
func (w *ParticleWorld) AddChild(e *Emitter) error {
	if w.closed {
		return ErrWorldClosed
	}
	if e.world != nil {
		return fmt.Errorf("%w: %q", ErrAlreadyInWorld, e.Name)
	}
	entity := w.ecs.Create(NameComponent, EmitterComponent)
	entry := w.ecs.Entry(entity)
	NameComponent.SetValue(entry, NameData{Name: e.Name})
	EmitterComponent.SetValue(entry, EmitterData{Emitter: e, Order: w.nAdded})
	w.nAdded++
	w.entities[e] = entity
	e.world = w
	e.rng = &w.rng
	return nil
}

// RemoveChild takes the emitter out of the world, along with all its
// particles. Removing an emitter that isn't in the world does nothing.
func (w *ParticleWorld) RemoveChild(e *Emitter) {
	entity, ok := w.entities[e]
	if !ok {
		return
	}
	if w.ecs.Valid(entity) {
		w.ecs.Remove(entity)
	}
	delete(w.entities, e)
	e.world = nil
}

// GetChildByName returns every emitter with the given name, in the order in
// which they were added.
func (w *ParticleWorld) GetChildByName(name string) []*Emitter {
	var found []EmitterData
	emittersQuery.Each(w.ecs, func(entry *donburi.Entry) {
		if NameComponent.Get(entry).Name == name {
			found = append(found, *EmitterComponent.Get(entry))
		}
	})
	return sortedEmitters(found)
}

// Children returns every emitter in the world, in the order in which they
// were added.
func (w *ParticleWorld) Children() []*Emitter {
	var found []EmitterData
	emittersQuery.Each(w.ecs, func(entry *donburi.Entry) {
		found = append(found, *EmitterComponent.Get(entry))
	})
	return sortedEmitters(found)
}

func sortedEmitters(data []EmitterData) []*Emitter {
	slices.SortFunc(data, func(a, b EmitterData) int {
		return int(a.Order - b.Order)
	})
	emitters := make([]*Emitter, len(data))
	for i := range data {
		emitters[i] = data[i].Emitter
	}
	return emitters
}

// Len is the number of entities in the world.
func (w *ParticleWorld) Len() int64 {
	return int64(emittersQuery.Count(w.ecs))
}

// Step advances every emitter by one frame.
func (w *ParticleWorld) Step() {
	if w.closed {
		return
	}
	for _, e := range w.Children() {
		e.Step()
	}
}

// Close tears the world down. Every emitter is removed and the world refuses
// new ones, so that late callbacks can't bring a torn-down world back to
// life.
func (w *ParticleWorld) Close() {
	for _, e := range w.Children() {
		w.RemoveChild(e)
	}
	w.closed = true
}

func (w *ParticleWorld) Closed() bool {
	return w.closed
}
