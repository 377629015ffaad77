package camera

import (
	"errors"
	"fmt"
	"math"

	"spheretrace/ray"
	"spheretrace/vmath/vec3"
)

// Camera maps normalized image coordinates to primary rays.  u runs left to
// right and v runs bottom to top, both over [0, 1].
type Camera interface {
	Ray(u, v float64) ray.Ray
}

// PinholeCamera projects through a single point onto a rectangular viewport.
type PinholeCamera struct {
	Origin     vec3.T
	LowerLeft  vec3.T
	Horizontal vec3.T
	Vertical   vec3.T
}

// NewDefaultCamera sits at the origin looking down -z, with a viewport two
// units tall at focal length one.
func NewDefaultCamera(aspect float64) *PinholeCamera {
	const viewportHeight = 2.0
	const focalLength = 1.0
	viewportWidth := aspect * viewportHeight

	c := &PinholeCamera{
		Origin:     vec3.T{0, 0, 0},
		Horizontal: vec3.T{viewportWidth, 0, 0},
		Vertical:   vec3.T{0, viewportHeight, 0},
	}
	c.LowerLeft = vec3.SubVV(
		vec3.SubVV(c.Origin, vec3.DivVS(c.Horizontal, 2)),
		vec3.AddVV(vec3.DivVS(c.Vertical, 2), vec3.T{0, 0, focalLength}),
	)
	return c
}

// ErrDegenerateView is returned for camera placements that do not determine
// an orientation.
var ErrDegenerateView = errors.New("degenerate camera view")

// NewPinholeCamera places a camera at lookFrom aimed at lookAt.  vfov is the
// vertical field of view in degrees.  up must not be parallel to the view
// direction.
func NewPinholeCamera(lookFrom, lookAt, up vec3.T, vfov, aspect float64) (*PinholeCamera, error) {
	if !(vfov > 0 && vfov < 180) {
		return nil, fmt.Errorf("%w: vertical field of view must be in (0, 180), got %v", ErrDegenerateView, vfov)
	}
	if !(aspect > 0) || math.IsInf(aspect, 0) {
		return nil, fmt.Errorf("%w: aspect must be positive and finite, got %v", ErrDegenerateView, aspect)
	}

	back := vec3.SubVV(lookFrom, lookAt)
	if back.NearZero() {
		return nil, fmt.Errorf("%w: look-from %v and look-at %v coincide", ErrDegenerateView, lookFrom, lookAt)
	}
	w := vec3.Normalize(back)

	side := vec3.CProd(up, w)
	if side.Norm() < 1e-8*up.Norm() || up.NearZero() {
		return nil, fmt.Errorf("%w: up %v is parallel to the view direction %v", ErrDegenerateView, up, vec3.Neg(w))
	}
	u := vec3.Normalize(side)
	v := vec3.CProd(w, u)

	theta := vfov * math.Pi / 180
	viewportHeight := 2 * math.Tan(theta/2)
	viewportWidth := aspect * viewportHeight

	c := &PinholeCamera{
		Origin:     lookFrom,
		Horizontal: vec3.MulVS(u, viewportWidth),
		Vertical:   vec3.MulVS(v, viewportHeight),
	}
	c.LowerLeft = vec3.SubVV(
		vec3.SubVV(c.Origin, vec3.DivVS(c.Horizontal, 2)),
		vec3.AddVV(vec3.DivVS(c.Vertical, 2), w),
	)
	return c, nil
}

func (c *PinholeCamera) Ray(u, v float64) ray.Ray {
	target := vec3.AddVV(c.LowerLeft, vec3.AddVV(vec3.MulVS(c.Horizontal, u), vec3.MulVS(c.Vertical, v)))
	return ray.Ray{
		Point: c.Origin,
		Slope: vec3.SubVV(target, c.Origin),
	}
}
