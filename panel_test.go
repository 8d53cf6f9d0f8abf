package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// fakeHost keeps the settings the panel hands over, like a real host would.
type fakeHost struct {
	settings ParticleSettings
	changes  []ParticleSettings
	nResets  int64
	triggers []Vec
}

func (h *fakeHost) Settings() ParticleSettings {
	return h.settings
}

func (h *fakeHost) OnSettingsChange(s ParticleSettings) {
	h.changes = append(h.changes, s)
	h.settings = s
}

func (h *fakeHost) OnReset() {
	h.nResets++
}

func (h *fakeHost) OnTriggerExplosion(x, y float64) error {
	h.triggers = append(h.triggers, Vec{x, y})
	return nil
}

func newTestPanel(profile DemoProfile) (*ControlPanel, *fakeHost) {
	host := &fakeHost{settings: profile.Defaults}
	notices := NewNotices()
	p := NewControlPanel(host, profile.Title, profile.Widgets, &notices)
	layout := NewScreenLayout()
	p.Area = layout.PanelArea()
	p.ViewportCenter = layout.ViewportCenter
	return p, host
}

func widgetIndex(t *testing.T, p *ControlPanel, key string) int {
	for i := range p.Widgets {
		if p.Widgets[i].Key == key {
			return i
		}
	}
	require.Fail(t, "no widget for "+key)
	return -1
}

// screenPos returns the screen position of a point inside a widget's control,
// t = 0 being its left edge and t = 1 its right edge.
func screenPos(p *ControlPanel, i int, t float64) Pt {
	r := p.rows[i].control
	x := r.Min.X + int64(t*float64(r.Width()-1))
	return Pt{x, r.Center().Y}.Plus(p.Area.Min)
}

func TestControlPanel_SliderChangesLiveValue(t *testing.T) {
	p, host := newTestPanel(ExplosionProfile(defaultExplosionSettings))
	before := host.settings

	p.SetValue("totalParticles", 500)

	require.Len(t, host.changes, 1)
	assert.Equal(t, int64(500), host.settings.TotalParticles)
	assert.Equal(t, int64(300), before.TotalParticles)
}

func TestControlPanel_SnapsAndClamps(t *testing.T) {
	p, host := newTestPanel(ExplosionProfile(defaultExplosionSettings))

	p.SetValue("speed", 3.14159)
	assert.InDelta(t, 3.1, host.settings.Speed, 1e-9)

	p.SetValue("speed", 99)
	assert.Equal(t, 10.0, host.settings.Speed)

	p.SetValue("totalParticles", -50)
	assert.Equal(t, int64(10), host.settings.TotalParticles)

	p.SetValue("wind", -7)
	assert.Equal(t, -2.0, host.settings.Wind)
}

func TestControlPanel_LinkedRangesStayOrdered(t *testing.T) {
	p, host := newTestPanel(ExplosionProfile(defaultExplosionSettings))

	// minLife can't go above maxLife.
	p.SetValue("minLife", 4500)
	assert.Equal(t, int64(3000), host.settings.MinLife)

	// maxLife can't go below minLife.
	p.SetValue("maxLife", 1000)
	assert.Equal(t, int64(3000), host.settings.MaxLife)

	p.SetValue("maxStartScale", 0.5)
	assert.Equal(t, 0.5, host.settings.MinStartScale)
	assert.Equal(t, 0.5, host.settings.MaxStartScale)

	p.SetValue("minStartScale", 2)
	assert.Equal(t, 0.5, host.settings.MinStartScale)
}

func TestControlPanel_RandomDragsKeepRangesOrdered(t *testing.T) {
	for _, profile := range []DemoProfile{
		ExplosionProfile(defaultExplosionSettings),
		AmbientProfile(defaultAmbientSettings),
	} {
		p, host := newTestPanel(profile)
		r := NewRand(3)
		for range 500 {
			w := &p.Widgets[r.RInt(0, int64(len(p.Widgets))-1)]
			if w.Kind != WidgetSlider {
				continue
			}
			p.SetValue(w.Key, r.RFloat(w.Min-100, w.Max+100))

			s := host.settings
			assert.LessOrEqual(t, s.MinLife, s.MaxLife)
			assert.LessOrEqual(t, s.MinStartScale, s.MaxStartScale)
			assert.LessOrEqual(t, s.MinEndScale, s.MaxEndScale)
			assert.LessOrEqual(t, s.MinSpeed, s.MaxSpeed)
		}
	}
}

func TestControlPanel_BoundsFollowLinkedField(t *testing.T) {
	p, host := newTestPanel(AmbientProfile(defaultAmbientSettings))
	minSpeed := &p.Widgets[widgetIndex(t, p, "minSpeed")]
	maxSpeed := &p.Widgets[widgetIndex(t, p, "maxSpeed")]

	lo, hi := p.Bounds(minSpeed, host.settings)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 500.0, hi)

	lo, hi = p.Bounds(maxSpeed, host.settings)
	assert.Equal(t, 100.0, lo)
	assert.Equal(t, 1000.0, hi)
}

func TestControlPanel_ClickAndDragSlider(t *testing.T) {
	p, host := newTestPanel(ExplosionProfile(defaultExplosionSettings))
	i := widgetIndex(t, p, "totalParticles")

	consumed := p.Update(PlayerInput{Pos: screenPos(p, i, 0), Pressed: true, JustPressed: true})
	assert.True(t, consumed)
	assert.Equal(t, int64(10), host.settings.TotalParticles)

	// The drag continues even outside the panel.
	consumed = p.Update(PlayerInput{Pos: Pt{p.Area.Max.X + 50, 0}, Pressed: true})
	assert.True(t, consumed)
	assert.Equal(t, int64(1500), host.settings.TotalParticles)

	// After release, the slider doesn't follow the pointer anymore.
	p.Update(PlayerInput{Pos: screenPos(p, i, 0.5), JustReleased: true})
	n := len(host.changes)
	p.Update(PlayerInput{Pos: screenPos(p, i, 0)})
	assert.Len(t, host.changes, n)
}

func TestControlPanel_CheckboxAndColor(t *testing.T) {
	p, host := newTestPanel(ExplosionProfile(defaultExplosionSettings))

	check := widgetIndex(t, p, "textureAdditive")
	p.Update(PlayerInput{Pos: screenPos(p, check, 0.5), Pressed: true, JustPressed: true})
	assert.False(t, host.settings.TextureAdditive)

	color := widgetIndex(t, p, "startColor")
	p.Update(PlayerInput{Pos: screenPos(p, color, 0.5), Pressed: true, JustPressed: true})
	assert.Equal(t, firePalette[1], host.settings.StartColor)
}

func TestControlPanel_Buttons(t *testing.T) {
	p, host := newTestPanel(ExplosionProfile(defaultExplosionSettings))

	p.Update(PlayerInput{Pos: p.triggerButton.Center().Plus(p.Area.Min), Pressed: true, JustPressed: true})
	p.Update(PlayerInput{Pos: p.resetButton.Center().Plus(p.Area.Min), Pressed: true, JustPressed: true})

	assert.Equal(t, []Vec{{float64(CanvasWidth / 2), float64(CanvasHeight / 2)}}, host.triggers)
	assert.Equal(t, int64(1), host.nResets)
	assert.Empty(t, host.changes)
}

func TestControlPanel_IgnoresPointerElsewhere(t *testing.T) {
	p, host := newTestPanel(ExplosionProfile(defaultExplosionSettings))

	consumed := p.Update(PlayerInput{Pos: Pt{10, 10}, Pressed: true, JustPressed: true})

	assert.False(t, consumed)
	assert.Empty(t, host.changes)
}

func TestControlPanel_ValueText(t *testing.T) {
	p, _ := newTestPanel(ExplosionProfile(defaultExplosionSettings))

	assert.Equal(t, "300", p.ValueText(&p.Widgets[widgetIndex(t, p, "totalParticles")]))
	assert.Equal(t, "3000 ms", p.ValueText(&p.Widgets[widgetIndex(t, p, "maxLife")]))
	assert.Equal(t, "0.5", p.ValueText(&p.Widgets[widgetIndex(t, p, "gravityY")]))
	assert.Equal(t, "true", p.ValueText(&p.Widgets[widgetIndex(t, p, "textureAdditive")]))
}
