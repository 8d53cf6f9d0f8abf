package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"image/color"
	"math"
)

// particleTextures caches one round particle image per texture size.
var particleTextures = map[float64]*ebiten.Image{}

func particleTexture(size float64) *ebiten.Image {
	if img, ok := particleTextures[size]; ok {
		return img
	}
	sz := int(math.Max(1, math.Ceil(size)))
	img := ebiten.NewImage(sz, sz)
	r := float32(sz) / 2
	vector.DrawFilledCircle(img, r, r, r, color.White, true)
	particleTextures[size] = img
	return img
}

// Draw paints every particle of every emitter on screen. screen shows the
// world's viewport.
func (w *ParticleWorld) Draw(screen *ebiten.Image) {
	for _, e := range w.Children() {
		e.draw(screen, w.Viewport)
	}
}

func (e *Emitter) draw(screen *ebiten.Image, viewport Rectangle) {
	c := &e.config
	img := particleTexture(c.TextureSize)
	half := float64(img.Bounds().Dx()) / 2
	origin := PtToVec(viewport.Min)
	if c.Floating {
		origin = Vec{}
	}
	for i := range e.particles {
		p := &e.particles[i]
		if c.OnlyInViewport && !viewport.ContainsPt(Pt{int64(p.Pos.X), int64(p.Pos.Y)}) {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-half, -half)
		op.GeoM.Scale(p.Scale, p.Scale)
		op.GeoM.Rotate(p.Rotation)
		op.GeoM.Translate(p.Pos.X-origin.X, p.Pos.Y-origin.Y)
		op.GeoM.Translate(float64(screen.Bounds().Min.X), float64(screen.Bounds().Min.Y))
		op.ColorScale.ScaleWithColor(p.Color.NRGBA())
		if c.Additive {
			op.Blend = ebiten.BlendLighter
		}
		screen.DrawImage(img, op)
	}
}
