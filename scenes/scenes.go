// Package scenes builds the worlds the renderer ships with.
package scenes

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"spheretrace/geometry"
	"spheretrace/hit"
	"spheretrace/material"
	"spheretrace/vmath/vec3"
)

var ErrUnknownScene = errors.New("unknown scene")

type builder func(rng *rand.Rand) *hit.World

var builders = map[string]builder{
	"single":   single,
	"shared":   shared,
	"random":   random,
	"inverted": inverted,
}

// Names lists the built-in scenes in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs the named scene.  rng is only consulted by scenes with
// random layouts.
func Build(name string, rng *rand.Rand) (*hit.World, error) {
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownScene, name, Names())
	}
	return b(rng), nil
}

func ground() *geometry.Sphere {
	return geometry.NewSphere(vec3.T{0, -100.5, -1}, 100, material.NewLambertian(vec3.T{0.5, 0.5, 0.5}))
}

// single is one diffuse sphere resting on a huge ground sphere.
func single(*rand.Rand) *hit.World {
	world := &hit.World{}
	world.Add(geometry.NewSphere(vec3.T{0, 0, -1}, 0.5, material.NewLambertian(vec3.T{0.5, 0.5, 0.5})))
	world.Add(ground())
	return world
}

// shared lines up spheres that all reference one material.
func shared(*rand.Rand) *hit.World {
	clay := material.NewLambertian(vec3.T{0.7, 0.3, 0.3})

	world := &hit.World{}
	for i := -2; i <= 2; i++ {
		world.Add(geometry.NewSphere(vec3.T{float64(i) * 0.6, -0.25, -1.5}, 0.25, clay))
	}
	world.Add(geometry.NewSphere(vec3.T{0, 0.35, -1.5}, 0.2, material.Absorber{}))
	world.Add(ground())
	return world
}

// random scatters small diffuse spheres over the ground.
func random(rng *rand.Rand) *hit.World {
	world := &hit.World{}
	world.Add(ground())

	placed := []*geometry.Sphere{}
	for attempt := 0; attempt < 400 && len(placed) < 60; attempt++ {
		radius := 0.05 + 0.1*rng.Float64()
		center := vec3.T{
			4*rng.Float64() - 2,
			-0.5 + radius,
			-0.5 - 3*rng.Float64(),
		}

		free := true
		for _, s := range placed {
			if vec3.SubVV(s.Center, center).Norm() < s.Radius+radius {
				free = false
				break
			}
		}
		if !free {
			continue
		}

		albedo := vec3.MulVV(
			vec3.T{rng.Float64(), rng.Float64(), rng.Float64()},
			vec3.T{rng.Float64(), rng.Float64(), rng.Float64()},
		)
		s := geometry.NewSphere(center, radius, material.NewLambertian(albedo))
		placed = append(placed, s)
		world.Add(s)
	}
	return world
}

// inverted pairs a sphere with an inside-out twin (negative radius).  Both
// render alike, since normals always face the incoming ray, but hits on the
// twin report back faces.
func inverted(*rand.Rand) *hit.World {
	world := &hit.World{}
	world.Add(geometry.NewSphere(vec3.T{-0.55, 0, -1}, 0.5, material.NewLambertian(vec3.T{0.8, 0.3, 0.3})))
	world.Add(geometry.NewSphere(vec3.T{0.55, 0, -1}, -0.5, material.NewLambertian(vec3.T{0.3, 0.3, 0.8})))
	world.Add(ground())
	return world
}
