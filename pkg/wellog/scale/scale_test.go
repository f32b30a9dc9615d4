package scale

import (
	"math"
	"testing"
)

func TestMapEndpoints(t *testing.T) {
	s := NewLinear(100, 500, 40, 760)

	if got := s.Map(100); got != 40 {
		t.Errorf("Map(domainMin) = %v, want 40", got)
	}
	if got := s.Map(500); got != 800 {
		t.Errorf("Map(domainMax) = %v, want 800", got)
	}
}

func TestMapInterpolation(t *testing.T) {
	tests := []struct {
		name  string
		scale Linear
		in    float64
		want  float64
	}{
		{
			name:  "midpoint",
			scale: NewLinear(0, 10, 0, 100),
			in:    5,
			want:  50,
		},
		{
			name:  "offset range",
			scale: NewLinear(0, 10, 200, 100),
			in:    2.5,
			want:  225,
		},
		{
			name:  "negative domain",
			scale: NewLinear(-20, 20, 0, 400),
			in:    0,
			want:  200,
		},
		{
			name:  "value below domain extrapolates",
			scale: NewLinear(10, 20, 0, 100),
			in:    5,
			want:  -50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.scale.Map(tt.in); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Map(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMapDegenerateDomain(t *testing.T) {
	s := NewLinear(42, 42, 100, 60)

	// Every input maps to the midpoint of the pixel range.
	for _, v := range []float64{0, 42, 1000, -5} {
		if got := s.Map(v); got != 130 {
			t.Errorf("Map(%v) = %v, want 130 (range midpoint)", v, got)
		}
	}
}

func TestRangeEnd(t *testing.T) {
	s := NewLinear(0, 1, 25, 50)
	if got := s.RangeEnd(); got != 75 {
		t.Errorf("RangeEnd() = %v, want 75", got)
	}
}
