package main

import "math"

// Pt is a position on the screen, in pixels.
type Pt struct {
	X int64
	Y int64
}

func (p *Pt) Add(other Pt) {
	p.X = p.X + other.X
	p.Y = p.Y + other.Y
}

func (p Pt) Plus(other Pt) Pt {
	return Pt{p.X + other.X, p.Y + other.Y}
}

func (p Pt) Minus(other Pt) Pt {
	return Pt{p.X - other.X, p.Y - other.Y}
}

func (p Pt) DivBy(divide int64) Pt {
	return Pt{p.X / divide, p.Y / divide}
}

// Vec is a position or a direction in the particle world. Unlike the screen,
// the world is continuous, so it uses floats.
type Vec struct {
	X float64 `yaml:"X"`
	Y float64 `yaml:"Y"`
}

func (v Vec) Plus(other Vec) Vec {
	return Vec{v.X + other.X, v.Y + other.Y}
}

func (v *Vec) Add(other Vec) {
	v.X += other.X
	v.Y += other.Y
}

func (v Vec) Times(f float64) Vec {
	return Vec{v.X * f, v.Y * f}
}

// FromAngle returns a vector of length l pointing in the direction of angle.
// Angles follow the screen convention: Y grows downwards, so an angle of π/2
// points up.
func FromAngle(angle float64, l float64) Vec {
	return Vec{math.Cos(angle) * l, -math.Sin(angle) * l}
}

func PtToVec(p Pt) Vec {
	return Vec{float64(p.X), float64(p.Y)}
}
