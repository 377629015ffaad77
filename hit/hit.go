// Package hit defines ray/surface intersection results and the interfaces
// that primitives and materials implement.
package hit

import (
	"math/rand"

	"spheretrace/ray"
	"spheretrace/vmath/vec3"
)

// Record describes where a ray struck a surface.
type Record struct {
	// P is the point of intersection.
	P vec3.T

	// N is the unit surface normal, always pointing against the incoming ray.
	N vec3.T

	// T is the ray parameter at P.
	T float64

	// FrontFace is true if the ray arrived from outside the surface.
	FrontFace bool

	Material Material
}

// SetFaceNormal orients N against r, given the geometry's outward unit normal.
func (rec *Record) SetFaceNormal(r ray.Ray, outward vec3.T) {
	rec.FrontFace = vec3.IProd(r.Slope, outward) < 0
	if rec.FrontFace {
		rec.N = outward
	} else {
		rec.N = vec3.Neg(outward)
	}
}

// Hittable is anything a ray can be tested against.
//
// Hit returns false if r does not intersect the object with a parameter
// strictly inside (tMin, tMax).
type Hittable interface {
	Hit(r ray.Ray, tMin, tMax float64) (Record, bool)
}

// Material decides what happens to a ray after it strikes a surface.
//
// ok is false if the ray is absorbed.  Otherwise the color carried back along
// scattered is multiplied by attenuation.
type Material interface {
	Scatter(in ray.Ray, rec *Record, rng *rand.Rand) (attenuation vec3.T, scattered ray.Ray, ok bool)
}
