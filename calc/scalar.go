package calc

import (
	"log/slog"
	"math"
	"strconv"
)

// Mode selects the arithmetic used for a whole expression.
type Mode uint8

const (
	ModeInteger  Mode = iota // integer
	ModeFloating             // floating
)

// MarshalText implements [encoding.TextMarshaler].
func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// Scalar is a numeric value that is either an exact integer or a float.
//
// The zero value is the integer 0.
type Scalar struct {
	f    float64
	i    int64
	mode Mode
}

// Int returns an integer [Scalar].
func Int(v int64) Scalar { return Scalar{i: v, mode: ModeInteger} }

// Float returns a floating [Scalar]. Negative zero is stored as zero.
func Float(v float64) Scalar {
	if v == 0 {
		v = 0
	}

	return Scalar{f: v, mode: ModeFloating}
}

// Mode reports the representation of s.
func (s Scalar) Mode() Mode { return s.mode }

// In converts s to mode m. Converting a float to an integer truncates
// toward zero.
func (s Scalar) In(m Mode) Scalar {
	if s.mode == m {
		return s
	}

	if m == ModeFloating {
		return Float(float64(s.i))
	}

	return Int(int64(s.f))
}

// Int64 returns s as an int64, truncating a float toward zero.
func (s Scalar) Int64() int64 { return s.In(ModeInteger).i }

// Float64 returns s as a float64.
func (s Scalar) Float64() float64 { return s.In(ModeFloating).f }

// IsZero reports whether s is numerically zero.
func (s Scalar) IsZero() bool {
	if s.mode == ModeFloating {
		return s.f == 0
	}

	return s.i == 0
}

// String formats s as a decimal literal that [Validate] accepts.
// Integers have no leading zeros; floats use the shortest representation
// that round-trips and never use an exponent. A whole float too large to be
// exact as an integer keeps a radix point so that it re-evaluates as
// floating.
func (s Scalar) String() string {
	if s.mode == ModeFloating {
		text := strconv.FormatFloat(s.f, 'f', -1, 64)
		if math.Abs(s.f) >= 1<<53 {
			text += ".0"
		}

		return text
	}

	return strconv.FormatInt(s.i, 10)
}

// MarshalJSON encodes s as a JSON number.
func (s Scalar) MarshalJSON() ([]byte, error) {
	if s.mode == ModeFloating && (math.IsNaN(s.f) || math.IsInf(s.f, 0)) {
		return strconv.AppendQuote(nil, s.String()), nil
	}

	return []byte(s.String()), nil
}

// MarshalYAML encodes s as a YAML number.
func (s Scalar) MarshalYAML() (any, error) {
	if s.mode == ModeFloating {
		return s.f, nil
	}

	return s.Int64(), nil
}

// LogValue implements [slog.LogValuer].
func (s Scalar) LogValue() slog.Value {
	if s.mode == ModeFloating {
		return slog.Float64Value(s.f)
	}

	return slog.Int64Value(s.Int64())
}
