// Package material holds the surface scattering models.
package material

import (
	"math/rand"

	"spheretrace/hit"
	"spheretrace/ray"
	"spheretrace/vmath/vec3"
)

// Lambertian is an ideal diffuse reflector.  It always scatters, toward the
// normal plus a random unit vector, which yields a cosine-weighted lobe.
type Lambertian struct {
	Albedo vec3.T
}

func NewLambertian(albedo vec3.T) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

func (l *Lambertian) Scatter(in ray.Ray, rec *hit.Record, rng *rand.Rand) (vec3.T, ray.Ray, bool) {
	scattered := ray.Ray{
		Point: rec.P,
		Slope: scatterDirection(rec.N, vec3.UniformUnitDistribution(rng)),
	}
	return l.Albedo, scattered, true
}

// scatterDirection falls back to the normal when the random vector nearly
// cancels it.
func scatterDirection(normal, unit vec3.T) vec3.T {
	dir := vec3.AddVV(normal, unit)
	if dir.NearZero() {
		return normal
	}
	return dir
}

// Absorber swallows every ray that reaches it.
type Absorber struct{}

func (Absorber) Scatter(in ray.Ray, rec *hit.Record, rng *rand.Rand) (vec3.T, ray.Ray, bool) {
	return vec3.T{}, ray.Ray{}, false
}
