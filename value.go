package tween

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindNumber Kind = iota // absolute numeric end value
	KindText               // numeric string, absolute or relative ("+10", "-3")
	KindPath               // control points fed to the interpolation function
)

// Value is one end-value specification. Build it with Number, Text or Path.
type Value struct {
	kind     Kind
	num      float64
	numeric  bool // Text parsed to a number
	relative bool // Text starts with '+' or '-'
	text     string
	path     []float64
}

// Values maps property names to end values.
type Values map[string]Value

// Number returns an absolute numeric end value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f, numeric: true}
}

// Text returns a string end value. A leading '+' or '-' makes it relative
// to the captured start value; otherwise it is absolute. The numeric part
// is read like a float prefix ("12px" is 12). Text with no numeric prefix
// leaves the property untouched on every tick.
func Text(s string) Value {
	v := Value{kind: KindText, text: s}
	v.num, v.numeric = parseNumber(s)
	v.relative = strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-")
	return v
}

// Path returns a control-point end value. At start the target's current
// value is prepended as the first point. An empty path leaves the property
// untouched.
func Path(points ...float64) Value {
	return Value{kind: KindPath, path: append([]float64(nil), points...)}
}

// Kind reports the variant.
func (v Value) Kind() Kind { return v.kind }

// Points returns a copy of the configured control points.
func (v Value) Points() []float64 {
	return append([]float64(nil), v.path...)
}

// resolve returns the absolute end value for a property whose captured
// start value is start.
func (v Value) resolve(start float64) (float64, bool) {
	if !v.numeric {
		return 0, false
	}
	if v.kind == KindText && v.relative {
		return start + v.num, true
	}
	return v.num, true
}

func (v Value) String() string {
	switch v.kind {
	case KindText:
		return strconv.Quote(v.text)
	case KindPath:
		return fmt.Sprint(v.path)
	default:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	}
}

// UnmarshalJSON decodes a number as Number, a string as Text and an array
// of numbers as Path.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case float64:
		*v = Number(x)
	case string:
		*v = Text(x)
	case []any:
		points := make([]float64, len(x))
		for i, p := range x {
			f, ok := p.(float64)
			if !ok {
				return fmt.Errorf("control point %d is %T, want number", i, p)
			}
			points[i] = f
		}
		*v = Path(points...)
	default:
		return fmt.Errorf("unsupported end value %s", data)
	}
	return nil
}

// parseNumber reads the longest float prefix of s after leading
// whitespace.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	for end := len(s); end > 0; end-- {
		f, err := strconv.ParseFloat(s[:end], 64)
		if err == nil && !math.IsNaN(f) {
			return f, true
		}
	}
	return 0, false
}
