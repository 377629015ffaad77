package geometry

import (
	"math"

	"spheretrace/hit"
	"spheretrace/ray"
	"spheretrace/vmath/vec3"
)

// Sphere is a sphere with a material.  A negative radius flips the outward
// normal, turning the sphere inside out: hits from outside report back faces.
type Sphere struct {
	Center   vec3.T
	Radius   float64
	Material hit.Material
}

func NewSphere(center vec3.T, radius float64, mtl hit.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mtl,
	}
}

func (s *Sphere) Hit(r ray.Ray, tMin, tMax float64) (hit.Record, bool) {
	// A point has no surface, and a zero direction has no parameterization.
	if s.Radius == 0 {
		return hit.Record{}, false
	}

	oc := vec3.SubVV(r.Point, s.Center)
	a := vec3.IProd(r.Slope, r.Slope)
	if a == 0 {
		return hit.Record{}, false
	}
	b := 2 * vec3.IProd(oc, r.Slope)
	c := vec3.IProd(oc, oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return hit.Record{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	span := ray.Span{Lo: tMin, Hi: tMax}
	root := (-b - sqrtD) / (2 * a)
	if !span.Surrounds(root) {
		root = (-b + sqrtD) / (2 * a)
		if !span.Surrounds(root) {
			return hit.Record{}, false
		}
	}

	rec := hit.Record{
		T:        root,
		P:        r.Eval(root),
		Material: s.Material,
	}
	outward := vec3.DivVS(vec3.SubVV(rec.P, s.Center), s.Radius)
	rec.SetFaceNormal(r, outward)
	return rec, true
}
