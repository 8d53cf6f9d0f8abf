package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"image"
	"image/color"
)

// The functions in this file take coordinates in the following system:
// - The top-left pixel of dst has coordinates (0, 0).
// - The bottom-right pixel of dst has coordinates
// (dstWidth - 1, dstHeight - 1).
// Ebitengine keeps the coordinates of the parent image for sub-images, so
// these functions add dst.Bounds().Min to everything before drawing.

// SubImage returns a sub-region of screen.
func SubImage(screen *ebiten.Image, r image.Rectangle) *ebiten.Image {
	minPt := screen.Bounds().Min
	r.Min = r.Min.Add(minPt)
	r.Max = r.Max.Add(minPt)
	return screen.SubImage(r).(*ebiten.Image)
}

func FillRect(dst *ebiten.Image, r Rectangle, clr color.Color) {
	if r.Width() <= 0 || r.Height() <= 0 {
		return
	}
	minPt := dst.Bounds().Min
	vector.DrawFilledRect(dst,
		float32(int64(minPt.X)+r.Min.X),
		float32(int64(minPt.Y)+r.Min.Y),
		float32(r.Width()),
		float32(r.Height()),
		clr, false)
}

func FillCircle(dst *ebiten.Image, x, y, radius float64, clr color.Color) {
	minPt := dst.Bounds().Min
	vector.DrawFilledCircle(dst,
		float32(float64(minPt.X)+x),
		float32(float64(minPt.Y)+y),
		float32(radius), clr, true)
}

// DrawText draws str with its baseline starting at (x, y).
func DrawText(dst *ebiten.Image, str string, face font.Face, x, y int, clr color.Color) {
	minPt := dst.Bounds().Min
	text.Draw(dst, str, face, minPt.X+x, minPt.Y+y, clr)
}
