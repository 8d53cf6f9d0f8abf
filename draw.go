package main

import (
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"image/color"
)

var (
	marginColor     = color.NRGBA{R: 10, G: 10, B: 14, A: 255}
	canvasColor     = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	playBarColor    = color.NRGBA{R: 80, G: 80, B: 90, A: 200}
	playBarProgress = color.NRGBA{R: 255, G: 102, B: 0, A: 220}
	cursorColor     = color.NRGBA{R: 255, G: 255, B: 255, A: 200}
)

const playBarHeight = int64(10)

func (g *Gui) Draw(screen *ebiten.Image) {
	// The screen bitmap has the aspect ratio of the application window. We
	// fill it with some background, then draw the canvas and the panel inside
	// the game area.
	screen.Fill(marginColor)

	canvas := SubImage(screen, g.layout.CanvasArea().ToImageRectangle())
	canvas.Fill(canvasColor)
	g.world.Demo.World.Draw(canvas)

	g.world.Demo.Panel.Draw(screen, g.defaultFont)

	info := fmt.Sprintf("%s   emitters: %d   TPS: %.0f   [Space] explode  [R] reset  [Tab] switch demo",
		g.world.Kind, g.world.Demo.World.Len(), ebiten.ActualTPS())
	DrawText(canvas, info, g.defaultFont, 8, 18, panelMuted)

	if g.state == Playback {
		g.DrawPlayback(screen)
	}
}

// PlayBarArea is where the play bar is during playback: a strip at the bottom
// of the canvas.
func (g *Gui) PlayBarArea() Rectangle {
	canvas := g.layout.CanvasArea()
	return Rectangle{
		Min: Pt{canvas.Min.X, canvas.Max.Y - playBarHeight},
		Max: canvas.Max,
	}
}

func (g *Gui) DrawPlayback(screen *ebiten.Image) {
	bar := g.PlayBarArea()
	FillRect(screen, bar, playBarColor)
	if g.playthrough.NFrames > 0 {
		progress := bar
		progress.Max.X = bar.Min.X + bar.Width()*g.world.FrameIdx/g.playthrough.NFrames
		FillRect(screen, progress, playBarProgress)
	}

	status := fmt.Sprintf("playback %d/%d", g.world.FrameIdx, g.playthrough.NFrames)
	if g.playbackPaused {
		status += " (paused)"
	}
	DrawText(screen, status, g.defaultFont, int(bar.Min.X+8), int(bar.Min.Y-8), panelText)

	// Recordings hold events, not pointer positions. Show the position of the
	// last trigger instead of a cursor.
	events := g.playthrough.Events
	for i := len(events) - 1; i >= 0; i-- {
		ev := events[i]
		if ev.Frame >= g.world.FrameIdx || ev.Kind != EventTrigger {
			continue
		}
		pos := g.layout.WorldToScreen(Vec{ev.X, ev.Y})
		FillCircle(screen, float64(pos.X), float64(pos.Y), 4, cursorColor)
		break
	}
}
