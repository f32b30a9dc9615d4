// Package scale provides the affine data-to-pixel mappings used by the
// track compositor.
package scale

// Linear maps a data-domain interval onto a pixel-range interval with an
// affine function. It is a small value type so the degenerate-range guard
// lives next to the four numbers it protects.
type Linear struct {
	DomainMin  float64
	DomainMax  float64
	RangeStart float64
	RangeSpan  float64
}

// NewLinear builds a linear scale mapping [domainMin, domainMax] onto
// [rangeStart, rangeStart+rangeSpan].
func NewLinear(domainMin, domainMax, rangeStart, rangeSpan float64) Linear {
	return Linear{
		DomainMin:  domainMin,
		DomainMax:  domainMax,
		RangeStart: rangeStart,
		RangeSpan:  rangeSpan,
	}
}

// Map converts a data value to its pixel coordinate.
//
// When the domain span is zero (all samples identical) every input maps to
// the midpoint of the pixel range. This keeps constant curves renderable
// instead of dividing by zero.
func (s Linear) Map(v float64) float64 {
	span := s.DomainMax - s.DomainMin
	if span == 0 {
		return s.RangeStart + s.RangeSpan/2
	}
	return s.RangeStart + (v-s.DomainMin)/span*s.RangeSpan
}

// RangeEnd returns the pixel coordinate the domain maximum maps to.
func (s Linear) RangeEnd() float64 { return s.RangeStart + s.RangeSpan }
