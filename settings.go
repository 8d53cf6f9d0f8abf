package main

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// ParticleSettings is the desired behavior of the emitter, as tuned by the
// user. It is a value: every change produces a new ParticleSettings through
// Replace, the old one is never touched. This way whoever holds the current
// value can compare it to the previous one, record it or hand it to the
// emitter without worrying that the panel will change it later.
type ParticleSettings struct {
	TotalParticles  int64   `yaml:"totalParticles"`
	StartColor      string  `yaml:"startColor"`
	EndColor        string  `yaml:"endColor"`
	Angle           float64 `yaml:"angle"`
	AngleVariation  float64 `yaml:"angleVariation"`
	MinLife         int64   `yaml:"minLife"`
	MaxLife         int64   `yaml:"maxLife"`
	Speed           float64 `yaml:"speed"`
	SpeedVariation  float64 `yaml:"speedVariation"`
	MinSpeed        float64 `yaml:"minSpeed"`
	MaxSpeed        float64 `yaml:"maxSpeed"`
	GravityX        float64 `yaml:"gravityX"`
	GravityY        float64 `yaml:"gravityY"`
	Wind            float64 `yaml:"wind"`
	MinStartScale   float64 `yaml:"minStartScale"`
	MaxStartScale   float64 `yaml:"maxStartScale"`
	MinEndScale     float64 `yaml:"minEndScale"`
	MaxEndScale     float64 `yaml:"maxEndScale"`
	TextureAdditive bool    `yaml:"textureAdditive"`
}

type FieldType int64

const (
	FieldInt FieldType = iota
	FieldFloat
	FieldColor
	FieldBool
)

var ErrUnknownField = errors.New("unknown settings field")

// settingsField describes how a named field of ParticleSettings is read and
// written from the raw string values that the widgets produce.
type settingsField struct {
	Type FieldType
	get  func(s *ParticleSettings) string
	set  func(s *ParticleSettings, raw string) error
}

func intField(p func(s *ParticleSettings) *int64) settingsField {
	return settingsField{
		Type: FieldInt,
		get: func(s *ParticleSettings) string {
			return strconv.FormatInt(*p(s), 10)
		},
		set: func(s *ParticleSettings, raw string) error {
			v, err := ParseInt(raw)
			if err != nil {
				return err
			}
			*p(s) = v
			return nil
		},
	}
}

func floatField(p func(s *ParticleSettings) *float64) settingsField {
	return settingsField{
		Type: FieldFloat,
		get: func(s *ParticleSettings) string {
			return strconv.FormatFloat(*p(s), 'f', -1, 64)
		},
		set: func(s *ParticleSettings, raw string) error {
			v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return err
			}
			if math.IsNaN(v) {
				return fmt.Errorf("not a number: %q", raw)
			}
			*p(s) = v
			return nil
		},
	}
}

func colorField(p func(s *ParticleSettings) *string) settingsField {
	return settingsField{
		Type: FieldColor,
		get: func(s *ParticleSettings) string {
			return *p(s)
		},
		set: func(s *ParticleSettings, raw string) error {
			*p(s) = raw
			return nil
		},
	}
}

func boolField(p func(s *ParticleSettings) *bool) settingsField {
	return settingsField{
		Type: FieldBool,
		get: func(s *ParticleSettings) string {
			return strconv.FormatBool(*p(s))
		},
		set: func(s *ParticleSettings, raw string) error {
			v, err := strconv.ParseBool(strings.TrimSpace(raw))
			if err != nil {
				return err
			}
			*p(s) = v
			return nil
		},
	}
}

// settingsFields is keyed by the same names as the yaml tags, which are also
// the names the widgets use.
var settingsFields = map[string]settingsField{
	"totalParticles":  intField(func(s *ParticleSettings) *int64 { return &s.TotalParticles }),
	"startColor":      colorField(func(s *ParticleSettings) *string { return &s.StartColor }),
	"endColor":        colorField(func(s *ParticleSettings) *string { return &s.EndColor }),
	"angle":           floatField(func(s *ParticleSettings) *float64 { return &s.Angle }),
	"angleVariation":  floatField(func(s *ParticleSettings) *float64 { return &s.AngleVariation }),
	"minLife":         intField(func(s *ParticleSettings) *int64 { return &s.MinLife }),
	"maxLife":         intField(func(s *ParticleSettings) *int64 { return &s.MaxLife }),
	"speed":           floatField(func(s *ParticleSettings) *float64 { return &s.Speed }),
	"speedVariation":  floatField(func(s *ParticleSettings) *float64 { return &s.SpeedVariation }),
	"minSpeed":        floatField(func(s *ParticleSettings) *float64 { return &s.MinSpeed }),
	"maxSpeed":        floatField(func(s *ParticleSettings) *float64 { return &s.MaxSpeed }),
	"gravityX":        floatField(func(s *ParticleSettings) *float64 { return &s.GravityX }),
	"gravityY":        floatField(func(s *ParticleSettings) *float64 { return &s.GravityY }),
	"wind":            floatField(func(s *ParticleSettings) *float64 { return &s.Wind }),
	"minStartScale":   floatField(func(s *ParticleSettings) *float64 { return &s.MinStartScale }),
	"maxStartScale":   floatField(func(s *ParticleSettings) *float64 { return &s.MaxStartScale }),
	"minEndScale":     floatField(func(s *ParticleSettings) *float64 { return &s.MinEndScale }),
	"maxEndScale":     floatField(func(s *ParticleSettings) *float64 { return &s.MaxEndScale }),
	"textureAdditive": boolField(func(s *ParticleSettings) *bool { return &s.TextureAdditive }),
}

// ParseInt parses counts and durations. Fractional input is truncated
// towards zero, so "2.9" is 2, the way a range input reports an integer.
func ParseInt(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number: %q", raw)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("out of range: %q", raw)
	}
	return int64(f), nil
}

// Replace returns a copy of current in which every field named in patch has
// been overridden with the patch value, converted to the field's type.
// Replace does not validate ranges. Keeping values inside their bounds is the
// job of the widgets that produce the patch.
// If any entry of the patch cannot be applied, current is returned unchanged
// together with the error, so a bad widget value never half-applies a patch.
func Replace(current ParticleSettings, patch map[string]string) (ParticleSettings, error) {
	next := current
	// Apply keys in a stable order so that errors are reported the same way
	// every time.
	keys := make([]string, 0, len(patch))
	for k := range patch {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		f, ok := settingsFields[k]
		if !ok {
			return current, fmt.Errorf("%w: %q", ErrUnknownField, k)
		}
		if err := f.set(&next, patch[k]); err != nil {
			return current, fmt.Errorf("invalid value for %s: %w", k, err)
		}
	}
	return next, nil
}

// FieldValue returns the current value of a named field, formatted the same
// way Replace expects to receive it.
func (s ParticleSettings) FieldValue(key string) (string, error) {
	f, ok := settingsFields[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	return f.get(&s), nil
}

// FieldFloat returns a numeric field as a float64, for the widgets that need
// to position a slider knob or compare two bounds.
func (s ParticleSettings) FieldFloat(key string) (float64, error) {
	raw, err := s.FieldValue(key)
	if err != nil {
		return 0, err
	}
	switch settingsFields[key].Type {
	case FieldInt, FieldFloat:
		return strconv.ParseFloat(raw, 64)
	default:
		return 0, fmt.Errorf("field %s is not numeric", key)
	}
}

// FieldKeys returns the names of every field, sorted.
func FieldKeys() []string {
	keys := make([]string, 0, len(settingsFields))
	for k := range settingsFields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func FieldTypeOf(key string) (FieldType, bool) {
	f, ok := settingsFields[key]
	return f.Type, ok
}
