package fp

import (
	"math"
	"testing"
)

func TestIntervalContains(t *testing.T) {
	tests := []struct {
		name string
		i    Interval
		x    float64
		want bool
	}{
		{"inside", NewInterval(0, 1), 0.5, true},
		{"lo endpoint", NewInterval(0, 1), 0, true},
		{"hi endpoint", NewInterval(0, 1), 1, true},
		{"below", NewInterval(0, 1), -0.1, false},
		{"above", NewInterval(0, 1), 1.1, false},
		{"point hit", Point(3), 3, true},
		{"point miss", Point(3), 3.0000001, false},
		{"nan outside bounded", NewInterval(0, 1), math.NaN(), false},
		{"nan inside unbounded", Any(), math.NaN(), true},
		{"infinity inside unbounded", Any(), math.Inf(1), true},
		{"half open infinite", NewInterval(0, math.Inf(1)), 1e300, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.i.Contains(tt.x); got != tt.want {
				t.Errorf("%v.Contains(%v) = %v, want %v", tt.i, tt.x, got, tt.want)
			}
		})
	}
}

func TestNewIntervalPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("reversed endpoints should panic")
		}
	}()
	NewInterval(1, 0)
}

func TestSpan(t *testing.T) {
	got := Span(NewInterval(0, 1), NewInterval(-2, 0.5), Point(4))
	if got.Lo != -2 || got.Hi != 4 {
		t.Errorf("Span = %v, want [-2, 4]", got)
	}
}

func TestIntervalString(t *testing.T) {
	if got := Point(1).String(); got != "{1}" {
		t.Errorf("Point(1).String() = %q", got)
	}
	if got := NewInterval(0, 2).String(); got != "[0, 2]" {
		t.Errorf("String() = %q", got)
	}
}
