package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"image/color"
)

var (
	panelBackground = color.NRGBA{R: 20, G: 20, B: 30, A: 242}
	panelBorder     = color.NRGBA{R: 68, G: 68, B: 68, A: 255}
	panelText       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	panelAccent     = color.NRGBA{R: 255, G: 102, B: 0, A: 255}
	panelMuted      = color.NRGBA{R: 136, G: 136, B: 136, A: 255}
	panelTrack      = color.NRGBA{R: 51, G: 51, B: 51, A: 255}
	panelError      = color.NRGBA{R: 255, G: 90, B: 90, A: 255}
)

// Draw paints the panel. screen is the whole screen, the panel draws itself
// inside Area.
func (p *ControlPanel) Draw(screen *ebiten.Image, face font.Face) {
	panel := SubImage(screen, p.Area.ToImageRectangle())
	panel.Fill(panelBackground)
	FillRect(panel, NewRectangleI(0, 0, 2, p.Area.Height()), panelBorder)

	DrawText(panel, p.Title, face, panelPadding, 24, panelAccent)

	for i := range p.Widgets {
		w := &p.Widgets[i]
		row := p.rows[i]
		labelY := int(row.top + panelLabelHeight - 4)
		DrawText(panel, w.Label, face, panelPadding, labelY, panelText)

		switch w.Kind {
		case WidgetSlider:
			value := p.ValueText(w)
			width := font.MeasureString(face, value).Ceil()
			DrawText(panel, value, face, PanelWidth-panelPadding-width, labelY, panelAccent)
			p.drawSlider(panel, w, row.control)
		case WidgetCheckbox:
			FillRect(panel, row.control, panelTrack)
			if p.ValueText(w) == "true" {
				inner := Rectangle{row.control.Min.Plus(Pt{4, 4}), row.control.Max.Minus(Pt{4, 4})}
				FillRect(panel, inner, panelAccent)
			}
		case WidgetColor:
			swatch := panelMuted
			if t, err := ParseColor(p.ValueText(w)); err == nil {
				swatch = t.NRGBA()
			}
			FillRect(panel, row.control, swatch)
		}
	}

	p.drawButton(panel, p.triggerButton, "Trigger explosion", face)
	p.drawButton(panel, p.resetButton, "Reset emitter", face)

	y := p.noticesTop + panelNoticeHeight
	if len(p.Notices.Active) == 0 {
		DrawText(panel, "Click anywhere on the canvas", face, panelPadding, int(y), panelMuted)
		return
	}
	for _, n := range p.Notices.Active {
		clr := panelMuted
		if n.IsError {
			clr = panelError
		}
		DrawText(panel, n.Text, face, panelPadding, int(y), clr)
		y += panelNoticeHeight
	}
}

func (p *ControlPanel) drawSlider(panel *ebiten.Image, w *Widget, bar Rectangle) {
	track := NewRectangleI(bar.Min.X, bar.Center().Y-2, bar.Width(), 4)
	FillRect(panel, track, panelTrack)

	v, err := p.host.Settings().FieldFloat(w.Key)
	if err != nil || w.Max <= w.Min {
		return
	}
	t := Clamp((v-w.Min)/(w.Max-w.Min), 0, 1)
	x := float32(bar.Min.X) + float32(t)*float32(bar.Width())
	filled := NewRectangleI(bar.Min.X, track.Min.Y, int64(x)-bar.Min.X, 4)
	FillRect(panel, filled, panelAccent)
	FillCircle(panel, float64(x), float64(bar.Center().Y), float64(bar.Height())/2, panelText)
}

func (p *ControlPanel) drawButton(panel *ebiten.Image, r Rectangle, label string, face font.Face) {
	FillRect(panel, r, panelAccent)
	width := font.MeasureString(face, label).Ceil()
	x := r.Min.X + (r.Width()-int64(width))/2
	y := r.Min.Y + r.Height()/2 + 5
	DrawText(panel, label, face, int(x), int(y), panelText)
}
