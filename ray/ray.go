package ray

import "spheretrace/vmath/vec3"

// Span is an interval of ray parameters.
type Span struct {
	Lo, Hi float64
}

// Surrounds reports whether t lies strictly inside the span.
func (s Span) Surrounds(t float64) bool {
	return s.Lo < t && t < s.Hi
}

// Ray is the half-line Point + t*Slope.  Slope need not be unit length.
type Ray struct {
	Point vec3.T
	Slope vec3.T
}

func (r Ray) Eval(t float64) vec3.T {
	return vec3.T{
		r.Point[0] + t*r.Slope[0],
		r.Point[1] + t*r.Slope[1],
		r.Point[2] + t*r.Slope[2],
	}
}
