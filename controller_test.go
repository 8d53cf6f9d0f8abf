package main

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// fakeWorld records every call the controller makes.
type fakeWorld struct {
	children []*Emitter
	nAdds    int64
	nRemoves int64
	addErr   error
}

func (w *fakeWorld) AddChild(e *Emitter) error {
	if w.addErr != nil {
		return w.addErr
	}
	w.nAdds++
	w.children = append(w.children, e)
	return nil
}

func (w *fakeWorld) RemoveChild(e *Emitter) {
	for i, c := range w.children {
		if c == e {
			w.nRemoves++
			w.children = append(w.children[:i], w.children[i+1:]...)
			return
		}
	}
}

func (w *fakeWorld) GetChildByName(name string) (found []*Emitter) {
	for _, c := range w.children {
		if c.Name == name {
			found = append(found, c)
		}
	}
	return
}

func (w *fakeWorld) nMutations() int64 {
	return w.nAdds + w.nRemoves
}

func TestController_CreateAtWithDefaults(t *testing.T) {
	w := &fakeWorld{}
	c := NewEmitterController(w, ExplosionKind)

	require.NoError(t, c.CreateAt(100, 100, defaultExplosionSettings))

	named := w.GetChildByName(ReservedEmitterName)
	require.Len(t, named, 1)
	e := named[0]
	assert.Same(t, e, c.Live())
	assert.Equal(t, Vec{100, 100}, e.Pos)
	assert.Equal(t, int64(300), e.Config().TotalParticles)
	assert.Equal(t, int64(300), e.LastBurst())
	assert.Equal(t, int64(300), e.AliveCount())
}

func TestController_CreateAtReplacesPrevious(t *testing.T) {
	w := &fakeWorld{}
	c := NewEmitterController(w, ExplosionKind)
	require.NoError(t, c.CreateAt(100, 100, defaultExplosionSettings))
	old := c.Live()

	s := defaultExplosionSettings
	s.TotalParticles = 42
	require.NoError(t, c.CreateAt(50, 50, s))

	named := w.GetChildByName(ReservedEmitterName)
	require.Len(t, named, 1)
	assert.NotSame(t, old, named[0])
	assert.Equal(t, Vec{50, 50}, named[0].Pos)
	assert.Equal(t, int64(42), named[0].Config().TotalParticles)
	assert.Equal(t, int64(1), w.nRemoves)
}

func TestController_ResetWithoutEmitter(t *testing.T) {
	w := &fakeWorld{}
	c := NewEmitterController(w, ExplosionKind)

	c.Reset()

	assert.Nil(t, c.Live())
	assert.Equal(t, int64(0), w.nMutations())
}

func TestController_ResetIsIdempotent(t *testing.T) {
	w := &fakeWorld{}
	c := NewEmitterController(w, ExplosionKind)
	require.NoError(t, c.CreateAt(1, 2, defaultExplosionSettings))

	c.Reset()
	once := len(w.children)
	nRemoves := w.nRemoves
	c.Reset()

	assert.Equal(t, once, len(w.children))
	assert.Equal(t, nRemoves, w.nRemoves)
	assert.Nil(t, c.Live())
}

func TestController_ResetRemovesStrayEmitters(t *testing.T) {
	w := &fakeWorld{}
	stray, err := NewEmitter(Vec{}, ToEngineConfig(ExplosionKind, defaultExplosionSettings))
	require.NoError(t, err)
	stray.Name = ReservedEmitterName
	require.NoError(t, w.AddChild(stray))

	c := NewEmitterController(w, ExplosionKind)
	require.NoError(t, c.CreateAt(5, 5, defaultExplosionSettings))

	assert.Len(t, w.GetChildByName(ReservedEmitterName), 1)
	assert.Same(t, c.Live(), w.GetChildByName(ReservedEmitterName)[0])
}

func TestController_AtMostOneEmitterInAnySequence(t *testing.T) {
	w := &fakeWorld{}
	c := NewEmitterController(w, ExplosionKind)
	r := NewRand(7)
	for range 200 {
		if r.RInt(0, 2) == 0 {
			c.Reset()
		} else {
			x := r.RFloat(0, 1000)
			y := r.RFloat(0, 1000)
			require.NoError(t, c.CreateAt(x, y, defaultExplosionSettings))
		}
		assert.LessOrEqual(t, len(w.GetChildByName(ReservedEmitterName)), 1)
	}
}

func TestController_ReconfigureKeepsInstance(t *testing.T) {
	w := &fakeWorld{}
	c := NewEmitterController(w, ExplosionKind)
	require.NoError(t, c.CreateAt(10, 10, defaultExplosionSettings))
	live := c.Live()
	before := w.nMutations()

	s := defaultExplosionSettings
	s.TotalParticles = 500
	s.Speed = 7
	s.GravityY = 1.5
	s.Wind = -1
	s.StartColor = "#66ccff"
	s.MinStartScale = 2
	s.MaxStartScale = 4
	s.TextureAdditive = false
	require.NoError(t, c.Reconfigure(live, s))

	assert.Same(t, live, c.Live())
	assert.Equal(t, before, w.nMutations())
	cfg := live.Config()
	assert.Equal(t, int64(500), cfg.TotalParticles)
	assert.Equal(t, 5.0, cfg.MinSpeed)
	assert.Equal(t, 9.0, cfg.MaxSpeed)
	assert.Equal(t, Vec{-1, 1.5}, cfg.Gravity)
	assert.Equal(t, "#66ccff", cfg.StartColor)
	assert.Equal(t, "#66ccff", cfg.EndColor)
	// Not live-patchable, these wait for the next emitter.
	assert.Equal(t, 0.5, cfg.MinStartScale)
	assert.Equal(t, 1.5, cfg.MaxStartScale)
	assert.True(t, cfg.Additive)
}

func TestController_ReconfigureNilIsNoOp(t *testing.T) {
	w := &fakeWorld{}
	c := NewEmitterController(w, ExplosionKind)

	assert.NoError(t, c.Reconfigure(nil, defaultExplosionSettings))
	assert.Equal(t, int64(0), w.nMutations())
}

func TestController_ReconfigureInvalidAppliesNothing(t *testing.T) {
	w := &fakeWorld{}
	c := NewEmitterController(w, AmbientKind)
	require.NoError(t, c.Place(0, 0, defaultAmbientSettings))
	before := c.Live().Config()

	s := defaultAmbientSettings
	s.TotalParticles = 999
	s.StartColor = "not-a-color"
	err := c.Reconfigure(c.Live(), s)

	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, before, c.Live().Config())
}

func TestController_SettingsChangedPatchesLive(t *testing.T) {
	w := &fakeWorld{}
	c := NewEmitterController(w, AmbientKind)
	require.NoError(t, c.Place(0, 0, defaultAmbientSettings))
	live := c.Live()

	s := defaultAmbientSettings
	s.MaxSpeed = 600
	require.NoError(t, c.SettingsChanged(s))

	assert.Same(t, live, c.Live())
	assert.Equal(t, 10.0, live.Config().MaxSpeed)
}

func TestController_ConstructionErrorPropagates(t *testing.T) {
	w := &fakeWorld{}
	c := NewEmitterController(w, ExplosionKind)

	s := defaultExplosionSettings
	s.MinLife = -5
	err := c.CreateAt(10, 10, s)

	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Nil(t, c.Live())
	assert.Empty(t, w.GetChildByName(ReservedEmitterName))
}

func TestController_AddErrorPropagates(t *testing.T) {
	w := &fakeWorld{addErr: ErrWorldClosed}
	c := NewEmitterController(w, ExplosionKind)

	err := c.CreateAt(10, 10, defaultExplosionSettings)

	assert.True(t, errors.Is(err, ErrWorldClosed))
	assert.Nil(t, c.Live())
}

func TestController_PlaceDoesNotBurst(t *testing.T) {
	w := &fakeWorld{}
	c := NewEmitterController(w, AmbientKind)

	require.NoError(t, c.Place(3, 4, defaultAmbientSettings))

	require.NotNil(t, c.Live())
	assert.Equal(t, int64(0), c.Live().AliveCount())
	assert.Equal(t, Vec{3, 4}, c.Live().Pos)
}
