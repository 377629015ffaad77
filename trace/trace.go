// Package trace resolves the color seen along a ray by following it through
// a world of scattering surfaces.
package trace

import (
	"math"
	"math/rand"

	"spheretrace/hit"
	"spheretrace/ray"
	"spheretrace/vmath/vec3"
)

// Epsilon is the minimum accepted hit parameter.  It keeps scattered rays
// from re-hitting the surface they just left.
const Epsilon = 0.001

// Sky is a vertical gradient shown wherever a ray escapes the world.
type Sky struct {
	Horizon vec3.T
	Zenith  vec3.T
}

var DefaultSky = Sky{
	Horizon: vec3.T{1.0, 1.0, 1.0},
	Zenith:  vec3.T{0.5, 0.7, 1.0},
}

// Color blends from Horizon (straight down) to Zenith (straight up) based on
// the height of the direction.
func (s Sky) Color(dir vec3.T) vec3.T {
	unit := vec3.Normalize(dir)
	t := 0.5 * (unit[1] + 1.0)
	return vec3.Lerp(s.Horizon, s.Zenith, t)
}

// Resolver computes ray colors against a fixed world.
type Resolver struct {
	World   hit.Hittable
	Sky     Sky
	Epsilon float64
}

func NewResolver(world hit.Hittable) *Resolver {
	return &Resolver{
		World:   world,
		Sky:     DefaultSky,
		Epsilon: Epsilon,
	}
}

// RayColor follows r for at most depth surface interactions.  Running out of
// depth or being absorbed contributes black.
func (s *Resolver) RayColor(r ray.Ray, depth int, rng *rand.Rand) vec3.T {
	throughput := vec3.T{1, 1, 1}
	curRay := r

	for remaining := depth; remaining > 0; remaining-- {
		rec, ok := s.World.Hit(curRay, s.Epsilon, math.Inf(1))
		if !ok {
			return vec3.MulVV(throughput, s.Sky.Color(curRay.Slope))
		}

		if rec.Material == nil {
			return vec3.T{}
		}
		attenuation, scattered, ok := rec.Material.Scatter(curRay, &rec, rng)
		if !ok {
			return vec3.T{}
		}

		throughput = vec3.MulVV(throughput, attenuation)
		curRay = scattered
	}

	return vec3.T{}
}

// RayColor resolves r against world with the default sky.
func RayColor(r ray.Ray, world hit.Hittable, depth int, rng *rand.Rand) vec3.T {
	return NewResolver(world).RayColor(r, depth, rng)
}
