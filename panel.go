package main

import (
	"math"
	"slices"
	"strconv"
)

// PanelHost is what the control panel needs from the component that owns the
// settings and the emitter.
type PanelHost interface {
	Settings() ParticleSettings
	OnSettingsChange(s ParticleSettings)
	OnReset()
	OnTriggerExplosion(x, y float64) error
}

type WidgetKind int64

const (
	WidgetSlider WidgetKind = iota
	WidgetCheckbox
	WidgetColor
)

// Widget describes the input for one field of ParticleSettings.
// For sliders, values are snapped to Step and kept inside [Min, Max].
// UpperKey and LowerKey link the two halves of a range: a widget with
// UpperKey never goes above the current value of that field, a widget with
// LowerKey never goes below it. This keeps every min <= max.
type Widget struct {
	Key      string
	Label    string
	Unit     string
	Kind     WidgetKind
	Min      float64
	Max      float64
	Step     float64
	UpperKey string
	LowerKey string
	Palette  []string
}

// Panel layout, relative to the panel's top-left corner.
const (
	PanelWidth         = 320
	panelPadding       = 12
	panelHeaderHeight  = 36
	panelRowHeight     = 38
	panelLabelHeight   = 18
	panelControlHeight = 14
	panelButtonHeight  = 30
	panelButtonGap     = 8
	panelNoticeHeight  = 18
)

type widgetRow struct {
	top     int64
	control Rectangle
}

// ControlPanel shows one widget per parameter and turns clicks and drags into
// new settings for its host. It never changes the host's settings value, it
// always builds a new one with Replace and hands it over.
type ControlPanel struct {
	Title   string
	Widgets []Widget
	// Area is where the panel is on the screen.
	Area Rectangle
	// ViewportCenter returns the world position used by the trigger button.
	ViewportCenter func() Vec
	Notices        *Notices

	host          PanelHost
	rows          []widgetRow
	triggerButton Rectangle
	resetButton   Rectangle
	noticesTop    int64
	dragging      int
}

func NewControlPanel(host PanelHost, title string, widgets []Widget, notices *Notices) *ControlPanel {
	p := &ControlPanel{
		Title:    title,
		Widgets:  widgets,
		Notices:  notices,
		host:     host,
		dragging: -1,
	}
	p.layout()
	return p
}

func (p *ControlPanel) layout() {
	p.rows = make([]widgetRow, len(p.Widgets))
	top := int64(panelHeaderHeight)
	for i, w := range p.Widgets {
		row := widgetRow{top: top}
		controlTop := top + panelLabelHeight
		switch w.Kind {
		case WidgetSlider:
			row.control = NewRectangleI(panelPadding, controlTop,
				PanelWidth-2*panelPadding, panelControlHeight)
		default:
			// Checkboxes and color swatches sit to the right of the label.
			row.control = NewRectangleI(PanelWidth-panelPadding-40, top+2, 40,
				panelLabelHeight+panelControlHeight-4)
		}
		p.rows[i] = row
		top += panelRowHeight
	}
	top += panelButtonGap
	buttonWidth := int64(PanelWidth-2*panelPadding-panelButtonGap) / 2
	p.triggerButton = NewRectangleI(panelPadding, top, buttonWidth, panelButtonHeight)
	p.resetButton = NewRectangleI(panelPadding+buttonWidth+panelButtonGap, top,
		buttonWidth, panelButtonHeight)
	p.noticesTop = top + panelButtonHeight + panelButtonGap
}

// Update handles this frame's input. It returns true if the pointer was over
// the panel, in which case the input belongs to the panel and nothing else
// should react to it.
func (p *ControlPanel) Update(input PlayerInput) (consumed bool) {
	if !input.Pressed {
		p.dragging = -1
	}
	pos := input.Pos.Minus(p.Area.Min)
	over := p.Area.ContainsPt(input.Pos)

	// Keep following a slider being dragged, even if the pointer leaves
	// the panel.
	if p.dragging >= 0 && input.Pressed && !input.JustPressed {
		p.setSliderFromX(p.dragging, pos.X)
		return true
	}

	if !input.JustPressed || !over {
		return over
	}

	if p.triggerButton.ContainsPt(pos) {
		c := p.ViewportCenter()
		p.Notices.Error(p.host.OnTriggerExplosion(c.X, c.Y))
		return true
	}
	if p.resetButton.ContainsPt(pos) {
		p.host.OnReset()
		return true
	}

	for i := range p.Widgets {
		if !p.rows[i].control.ContainsPt(pos) {
			continue
		}
		w := &p.Widgets[i]
		switch w.Kind {
		case WidgetSlider:
			p.dragging = i
			p.setSliderFromX(i, pos.X)
		case WidgetCheckbox:
			v, _ := p.host.Settings().FieldValue(w.Key)
			b, _ := strconv.ParseBool(v)
			p.change(w.Key, strconv.FormatBool(!b))
		case WidgetColor:
			p.change(w.Key, p.nextColor(w))
		}
		break
	}
	return true
}

// setSliderFromX converts a pointer position on the slider bar to a value and
// sends it to the host.
func (p *ControlPanel) setSliderFromX(i int, x int64) {
	bar := p.rows[i].control
	t := Clamp(float64(x-bar.Min.X)/float64(bar.Width()), 0, 1)
	w := &p.Widgets[i]
	p.SetValue(w.Key, lerp(w.Min, w.Max, t))
}

// SetValue is what every slider does with the value under the pointer: snap
// it to the widget's step, keep it inside the widget's bounds and inside the
// linked range, then hand the result to the host.
func (p *ControlPanel) SetValue(key string, v float64) {
	idx := slices.IndexFunc(p.Widgets, func(w Widget) bool { return w.Key == key })
	if idx < 0 {
		return
	}
	w := &p.Widgets[idx]
	current := p.host.Settings()

	if w.Step > 0 {
		v = w.Min + math.Round((v-w.Min)/w.Step)*w.Step
	}
	lo, hi := p.Bounds(w, current)
	v = Clamp(v, lo, hi)

	t, _ := FieldTypeOf(key)
	var raw string
	if t == FieldInt {
		raw = strconv.FormatInt(int64(math.Round(v)), 10)
	} else {
		raw = strconv.FormatFloat(v, 'f', stepPrecision(w.Step), 64)
	}
	p.change(key, raw)
}

// Bounds returns the interval the widget's value must stay in, given the
// other values in s.
func (p *ControlPanel) Bounds(w *Widget, s ParticleSettings) (lo, hi float64) {
	lo, hi = w.Min, w.Max
	if w.UpperKey != "" {
		if upper, err := s.FieldFloat(w.UpperKey); err == nil {
			hi = math.Min(hi, upper)
		}
	}
	if w.LowerKey != "" {
		if lower, err := s.FieldFloat(w.LowerKey); err == nil {
			lo = math.Max(lo, lower)
		}
	}
	return
}

func (p *ControlPanel) change(key string, raw string) {
	current := p.host.Settings()
	next, err := Replace(current, map[string]string{key: raw})
	if err != nil {
		p.Notices.Error(err)
		return
	}
	if next == current {
		return
	}
	p.host.OnSettingsChange(next)
}

func (p *ControlPanel) nextColor(w *Widget) string {
	current, _ := p.host.Settings().FieldValue(w.Key)
	if len(w.Palette) == 0 {
		return current
	}
	i := slices.Index(w.Palette, current)
	return w.Palette[(i+1)%len(w.Palette)]
}

// stepPrecision is the number of decimals needed to show a multiple of step.
func stepPrecision(step float64) int {
	switch {
	case step <= 0 || step >= 1:
		return 0
	case step >= 0.1:
		return 1
	case step >= 0.01:
		return 2
	default:
		return 3
	}
}

// ValueText is the value of a widget as it is shown next to its label.
func (p *ControlPanel) ValueText(w *Widget) string {
	s := p.host.Settings()
	if w.Kind != WidgetSlider {
		v, _ := s.FieldValue(w.Key)
		return v
	}
	v, err := s.FieldFloat(w.Key)
	if err != nil {
		return "--"
	}
	text := strconv.FormatFloat(v, 'f', stepPrecision(w.Step), 64)
	if w.Unit != "" {
		text += " " + w.Unit
	}
	return text
}
