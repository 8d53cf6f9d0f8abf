package main

import (
	"errors"
	"fmt"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"image/color"
	"strconv"
	"strings"
)

var ErrInvalidColor = errors.New("invalid color")

// Tint is a parsed CSS color.
type Tint struct {
	C     colorful.Color
	Alpha float64
}

// ParseColor accepts the CSS color syntaxes that a color input or a config
// file can produce: #rgb, #rrggbb, #rrggbbaa, named colors, rgb()/rgba() and
// hsl()/hsla().
func ParseColor(css string) (Tint, error) {
	s := strings.ToLower(strings.TrimSpace(css))
	if s == "" {
		return Tint{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}

	if strings.HasPrefix(s, "#") {
		if len(s) == 9 {
			c, err := colorful.Hex(s[:7])
			if err != nil {
				return Tint{}, fmt.Errorf("%w: %q", ErrInvalidColor, css)
			}
			a, err := strconv.ParseUint(s[7:], 16, 8)
			if err != nil {
				return Tint{}, fmt.Errorf("%w: %q", ErrInvalidColor, css)
			}
			return Tint{c, float64(a) / 255}, nil
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return Tint{}, fmt.Errorf("%w: %q", ErrInvalidColor, css)
		}
		return Tint{c, 1}, nil
	}

	if name, args, ok := splitCssFunction(s); ok {
		return parseCssFunction(css, name, args)
	}

	if rgba, ok := colornames.Map[s]; ok {
		c, _ := colorful.MakeColor(rgba)
		return Tint{c, 1}, nil
	}
	if s == "transparent" {
		return Tint{colorful.Color{}, 0}, nil
	}
	return Tint{}, fmt.Errorf("%w: %q", ErrInvalidColor, css)
}

// MustParseColor is for colors that are part of the program, not user input.
func MustParseColor(css string) Tint {
	t, err := ParseColor(css)
	Check(err)
	return t
}

func splitCssFunction(s string) (name string, args []string, ok bool) {
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return "", nil, false
	}
	name = strings.TrimSpace(s[:open])
	inner := s[open+1 : len(s)-1]
	inner = strings.ReplaceAll(inner, "/", " ")
	inner = strings.ReplaceAll(inner, ",", " ")
	return name, strings.Fields(inner), true
}

func parseCssFunction(css string, name string, args []string) (Tint, error) {
	if len(args) != 3 && len(args) != 4 {
		return Tint{}, fmt.Errorf("%w: %q", ErrInvalidColor, css)
	}
	alpha := 1.0
	if len(args) == 4 {
		a, err := parseCssNumber(args[3], 1)
		if err != nil {
			return Tint{}, fmt.Errorf("%w: %q", ErrInvalidColor, css)
		}
		alpha = Clamp(a, 0, 1)
	}

	switch name {
	case "rgb", "rgba":
		var ch [3]float64
		for i := range ch {
			v, err := parseCssNumber(args[i], 255)
			if err != nil {
				return Tint{}, fmt.Errorf("%w: %q", ErrInvalidColor, css)
			}
			ch[i] = Clamp(v, 0, 255) / 255
		}
		return Tint{colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, alpha}, nil
	case "hsl", "hsla":
		h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
		if err != nil {
			return Tint{}, fmt.Errorf("%w: %q", ErrInvalidColor, css)
		}
		sat, err1 := parseCssNumber(args[1], 100)
		l, err2 := parseCssNumber(args[2], 100)
		if err1 != nil || err2 != nil {
			return Tint{}, fmt.Errorf("%w: %q", ErrInvalidColor, css)
		}
		for h < 0 {
			h += 360
		}
		for h >= 360 {
			h -= 360
		}
		c := colorful.Hsl(h, Clamp(sat/100, 0, 1), Clamp(l/100, 0, 1))
		return Tint{c.Clamped(), alpha}, nil
	}
	return Tint{}, fmt.Errorf("%w: %q", ErrInvalidColor, css)
}

// parseCssNumber parses a plain number or a percentage. Percentages are
// scaled so that 100% equals full.
func parseCssNumber(s string, full float64) (float64, error) {
	if strings.HasSuffix(s, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return 0, err
		}
		return v / 100 * full, nil
	}
	return strconv.ParseFloat(s, 64)
}

// Blend interpolates between two tints, t = 0 being t1 and t = 1 being t2.
func (t1 Tint) Blend(t2 Tint, t float64) Tint {
	return Tint{t1.C.BlendRgb(t2.C, t).Clamped(), lerp(t1.Alpha, t2.Alpha, t)}
}

func (t1 Tint) NRGBA() color.NRGBA {
	r, g, b := t1.C.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(Clamp(t1.Alpha, 0, 1) * 255)}
}
