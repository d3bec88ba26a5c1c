package knight

import (
	"math"
	"testing"
)

func TestMulOverflows64(t *testing.T) {
	cases := []struct {
		a, b     int64
		overflow bool
	}{
		{2, 3, false},
		{math.MaxInt64, 2, true},
		{math.MinInt64, -1, true},
		{-1, math.MinInt64, true},
		{0, math.MinInt64, false},
		{math.MinInt64, 1, false},
	}
	f := Flags{}
	for _, c := range cases {
		_, overflow := mulOverflows(f, c.a, c.b)
		if overflow != c.overflow {
			t.Errorf("mulOverflows(%d, %d) overflow = %v, want %v", c.a, c.b, overflow, c.overflow)
		}
	}
}

func TestMulOverflows32(t *testing.T) {
	f := Flags{I32Integer: true}
	_, overflow := mulOverflows(f, math.MaxInt32, 2)
	if !overflow {
		t.Error("expected overflow under i32_integer")
	}
	v, overflow := mulOverflows(f, 3, 4)
	if overflow || v != 12 {
		t.Errorf("mulOverflows(3, 4) = %d, overflow %v, want 12, false", v, overflow)
	}
}

func TestParseIntegerText(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"123", 123},
		{"  +42", 42},
		{"-7 trailing text", -7},
		{"", 0},
		{"no digits here", 0},
		{"\t\n 5", 5},
	}
	f := Flags{}
	for _, c := range cases {
		got, err := parseIntegerText(f, c.in)
		if err != nil {
			t.Fatalf("parseIntegerText(%q): %v", c.in, err)
		}
		if got.Value != c.want {
			t.Errorf("parseIntegerText(%q) = %d, want %d", c.in, got.Value, c.want)
		}
	}
}

func TestDigitLength(t *testing.T) {
	cases := []struct {
		n    int64
		want int
	}{
		{0, 1}, {5, 1}, {42, 2}, {-42, 2}, {1000, 4},
	}
	for _, c := range cases {
		if got := (Integer{c.n}).DigitLength(); got != c.want {
			t.Errorf("DigitLength(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}
