package main

// Visual areas
// ------------
//
// - The canvas: the part of the screen that shows the particle world. The
// world's viewport has the same size as the canvas, so one world unit is one
// canvas pixel. Has a fixed size, known at compile time.
// - The panel: the controls, to the right of the canvas. Has a fixed size,
// known at compile time.
// - The game area: the canvas and the panel, side by side.
// - The screen: contains the game area and any margins necessary to fill in
// the application window on the OS. Its size is known only at run time.

const CanvasWidth = int64(1218)
const CanvasHeight = int64(562)
const GameWidth = CanvasWidth + PanelWidth
const GameHeight = CanvasHeight

// ScreenLayout knows where each area currently is on the screen.
type ScreenLayout struct {
	GameArea Rectangle
	// Viewport is the area of the world shown on the canvas.
	Viewport Rectangle
}

func NewScreenLayout() *ScreenLayout {
	l := &ScreenLayout{}
	l.Viewport = NewRectangleI(0, 0, CanvasWidth, CanvasHeight)
	l.Resize(int(GameWidth), int(GameHeight))
	return l
}

// Resize receives the size of the application window and returns the size of
// the screen bitmap that Draw() will get.
//
// The screen bitmap keeps the aspect ratio of the window, and the game area is
// as large as possible while still fitting inside it. Whatever is left over
// becomes margins, left and right or top and bottom. Ebitengine scales the
// screen bitmap to fit the window and reports the cursor position in screen
// bitmap pixels, so input coordinates are always screen coordinates.
func (l *ScreenLayout) Resize(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		outsideWidth, outsideHeight = int(GameWidth), int(GameHeight)
	}
	screenAspectRatio := float64(outsideWidth) / float64(outsideHeight)
	gameAspectRatio := float64(GameWidth) / float64(GameHeight)
	if screenAspectRatio < gameAspectRatio {
		screenWidth = int(GameWidth)
		screenHeight = int(float64(screenWidth) / screenAspectRatio)
	} else {
		screenHeight = int(GameHeight)
		screenWidth = int(float64(screenHeight) * screenAspectRatio)
	}

	l.GameArea.Min.X = (int64(screenWidth) - GameWidth) / 2
	l.GameArea.Min.Y = (int64(screenHeight) - GameHeight) / 2
	l.GameArea.Max.X = l.GameArea.Min.X + GameWidth
	l.GameArea.Max.Y = l.GameArea.Min.Y + GameHeight
	return
}

func (l *ScreenLayout) CanvasArea() Rectangle {
	return NewRectangleI(0, 0, CanvasWidth, CanvasHeight).Translate(l.GameArea.Min)
}

func (l *ScreenLayout) PanelArea() Rectangle {
	return NewRectangleI(CanvasWidth, 0, PanelWidth, CanvasHeight).Translate(l.GameArea.Min)
}

// ScreenToWorld converts a position on the screen to the position in the
// world that is drawn there.
func (l *ScreenLayout) ScreenToWorld(pt Pt) Vec {
	canvasPos := pt.Minus(l.CanvasArea().Min)
	return PtToVec(canvasPos.Plus(l.Viewport.Min))
}

func (l *ScreenLayout) WorldToScreen(v Vec) Pt {
	canvasPos := Vec{v.X - float64(l.Viewport.Min.X), v.Y - float64(l.Viewport.Min.Y)}
	return Pt{int64(canvasPos.X), int64(canvasPos.Y)}.Plus(l.CanvasArea().Min)
}

// ViewportCenter is the world position in the middle of the canvas.
func (l *ScreenLayout) ViewportCenter() Vec {
	return PtToVec(l.Viewport.Center())
}

// Layout is called by Ebitengine with the size of the window.
func (g *Gui) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.layout.Resize(outsideWidth, outsideHeight)
}
