package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"log"
	"slices"
)

func (g *Gui) Update() error {
	g.pressedKeys = g.pressedKeys[:0]
	g.pressedKeys = inpututil.AppendPressedKeys(g.pressedKeys)
	g.justPressedKeys = g.justPressedKeys[:0]
	g.justPressedKeys = inpututil.AppendJustPressedKeys(g.justPressedKeys)

	switch g.state {
	case PlayScreen:
		g.UpdatePlayScreen()
	case Playback:
		g.UpdatePlayback()
	default:
		panic("unhandled default case")
	}

	return nil
}

// PointerInput reads the mouse, or the first finger on a touch screen, as a
// single pointer.
func (g *Gui) PointerInput() (input PlayerInput) {
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	if !g.touching && len(g.touchIDs) > 0 {
		g.activeTouch = g.touchIDs[0]
		g.touching = true
	}

	if g.touching {
		if inpututil.IsTouchJustReleased(g.activeTouch) {
			// A released touch has no position, keep the last one.
			input.Pos = g.virtualPointerPos
			input.JustReleased = true
			g.touching = false
			return
		}
		x, y := ebiten.TouchPosition(g.activeTouch)
		input.Pos = Pt{int64(x), int64(y)}
		input.Pressed = true
		input.JustPressed = inpututil.IsTouchJustPressed(g.activeTouch)
		return
	}

	x, y := ebiten.CursorPosition()
	input.Pos = Pt{int64(x), int64(y)}
	input.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	input.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	input.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	return
}

func (g *Gui) UpdatePlayScreen() {
	if g.folderWatcher.FolderContentsChanged() {
		g.LoadConfig()
		g.world.SetDefaults(g.ExplosionDefaults, g.AmbientDefaults)
	}

	// Get the player input.
	input := g.PointerInput()
	input.TriggerCenter = g.JustPressed(ebiten.KeySpace)
	input.ResetEmitter = g.JustPressed(ebiten.KeyR)
	input.SwitchDemo = g.JustPressed(ebiten.KeyTab)

	// Remember pointer position in order to draw the virtual cursor during
	// Draw().
	g.virtualPointerPos = input.Pos
	g.world.Step(input)

	if g.RecordToFile && g.RecordingFile != "" {
		// Save when something was recorded, and every second anyway so that
		// the frame count stays close to the truth if the program crashes.
		nEvents := len(g.playthrough.Events)
		if nEvents != g.nRecordedEvents || g.world.FrameIdx%FramesPerSecond == 0 {
			WriteFile(g.RecordingFile, g.playthrough.Serialize())
			g.nRecordedEvents = nEvents
		}
	}
}

func (g *Gui) Pressed(key ebiten.Key) bool {
	return slices.Contains(g.pressedKeys, key)
}

func (g *Gui) JustPressed(key ebiten.Key) bool {
	return slices.Contains(g.justPressedKeys, key)
}

func (g *Gui) LeftClickPressedOn(r Rectangle) bool {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return r.ContainsPt(Pt{int64(x), int64(y)})
}

func (g *Gui) UpdatePlayback() {
	nFrames := g.playthrough.NFrames

	if g.JustPressed(ebiten.KeySpace) {
		g.playbackPaused = !g.playbackPaused
	}

	// Choose target frame.
	targetFrameIdx := g.world.FrameIdx

	// Compute the target frame index based on where on the play bar the user
	// clicked.
	bar := g.PlayBarArea()
	if g.LeftClickPressedOn(bar) && nFrames > 0 {
		x, _ := ebiten.CursorPosition()
		dx := int64(x) - bar.Min.X
		targetFrameIdx = dx * nFrames / bar.Width()
	}

	if g.Pressed(ebiten.KeyLeft) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx -= g.FrameSkipShiftArrow
	}

	if g.Pressed(ebiten.KeyRight) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipShiftArrow
	}

	if g.JustPressed(ebiten.KeyLeft) && !g.Pressed(ebiten.KeyShift) {
		targetFrameIdx -= g.FrameSkipArrow
	}

	if g.JustPressed(ebiten.KeyRight) && !g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipArrow
	}

	if g.JustPressed(ebiten.KeyX) {
		log.Printf("[Playback] RegressionId: %s", RegressionId(&g.playthrough))
	}

	targetFrameIdx = max(0, min(targetFrameIdx, nFrames))

	if targetFrameIdx != g.world.FrameIdx {
		// Rewind. The world can only go forward, so going to any frame means
		// replaying everything from the beginning.
		g.world = NewWorld(&g.playthrough, g.layout, true)
		for g.world.FrameIdx < targetFrameIdx {
			g.world.Step(PlayerInput{})
		}
	}

	if !g.playbackPaused && g.world.FrameIdx < nFrames {
		g.world.Step(PlayerInput{})
	}
}
