package tween

import (
	"encoding/json"
	"slices"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12", 12, true},
		{"+10", 10, true},
		{"-3", -3, true},
		{"  7.5", 7.5, true},
		{"40px", 40, true},
		{"1e3ms", 1000, true},
		{".5", 0.5, true},
		{"abc", 0, false},
		{"", 0, false},
		{"+", 0, false},
		{"nan", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseNumber(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseNumber(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestValueResolve(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want float64
		ok   bool
	}{
		{"number", Number(3), 3, true},
		{"absolute text", Text("8"), 8, true},
		{"relative plus", Text("+2"), 12, true},
		{"relative minus", Text("-2"), 8, true},
		{"garbage", Text("left"), 0, false},
	}

	for _, tt := range tests {
		got, ok := tt.v.resolve(10)
		if ok != tt.ok || got != tt.want {
			t.Errorf("%s: resolve(10) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestValuePathCopies(t *testing.T) {
	points := []float64{1, 2, 3}
	v := Path(points...)
	points[0] = 99

	got := v.Points()
	if !slices.Equal(got, []float64{1, 2, 3}) {
		t.Errorf("points = %v, caller's slice leaked in", got)
	}
	got[1] = 99
	if v.Points()[1] != 2 {
		t.Error("Points should return a copy")
	}
	if v.Kind() != KindPath {
		t.Errorf("kind = %v, want KindPath", v.Kind())
	}
}

func TestValueString(t *testing.T) {
	if s := Number(1.5).String(); s != "1.5" {
		t.Errorf("Number string = %q", s)
	}
	if s := Text("+3").String(); s != `"+3"` {
		t.Errorf("Text string = %q", s)
	}
	if s := Path(1, 2).String(); s != "[1 2]" {
		t.Errorf("Path string = %q", s)
	}
}

func TestValuesUnmarshalJSON(t *testing.T) {
	var vs Values
	err := json.Unmarshal([]byte(`{"x": 100, "y": "+20", "alpha": [0.5, 0]}`), &vs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if vs["x"].Kind() != KindNumber || vs["x"].num != 100 {
		t.Errorf("x = %v", vs["x"])
	}
	if vs["y"].Kind() != KindText || !vs["y"].relative {
		t.Errorf("y = %v, want relative text", vs["y"])
	}
	if vs["alpha"].Kind() != KindPath || !slices.Equal(vs["alpha"].Points(), []float64{0.5, 0}) {
		t.Errorf("alpha = %v", vs["alpha"])
	}
}

func TestValueUnmarshalJSON_Invalid(t *testing.T) {
	for _, in := range []string{`true`, `null`, `{"a": 1}`, `[1, "two"]`} {
		var v Value
		if err := json.Unmarshal([]byte(in), &v); err == nil {
			t.Errorf("expected error for %s", in)
		}
	}
}
