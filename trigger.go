package main

// ExplosionTrigger turns pointer presses on the canvas into explosions at the
// matching world position.
type ExplosionTrigger struct {
	Layout *ScreenLayout
	// Fire is called once per explosion, with world coordinates.
	Fire func(x, y float64) error
}

// HandlePointer fires an explosion if the pointer was just pressed over the
// canvas. Only the frame in which the press starts counts, so holding the
// button down or dragging never produces a second explosion.
func (t *ExplosionTrigger) HandlePointer(input PlayerInput) (fired bool, err error) {
	if !input.JustPressed {
		return false, nil
	}
	if !t.Layout.CanvasArea().ContainsPt(input.Pos) {
		return false, nil
	}
	pos := t.Layout.ScreenToWorld(input.Pos)
	return true, t.Fire(pos.X, pos.Y)
}

// FireAtCenter fires an explosion at the center of the viewport, for triggers
// that have no position of their own, like a button or a key.
func (t *ExplosionTrigger) FireAtCenter() error {
	c := t.Layout.ViewportCenter()
	return t.Fire(c.X, c.Y)
}
