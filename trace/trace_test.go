package trace

import (
	"math"
	"math/rand"
	"testing"

	"spheretrace/geometry"
	"spheretrace/hit"
	"spheretrace/material"
	"spheretrace/ray"
	"spheretrace/vmath/vec3"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSkyStraightUpIsZenith(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	r := ray.Ray{Point: vec3.T{0, 0, 0}, Slope: vec3.T{0, 1, 0}}
	got := RayColor(r, &hit.World{}, 50, rng)
	if diff := cmp.Diff(got, vec3.T{0.5, 0.7, 1.0}); diff != "" {
		t.Errorf("Wrong sky color; diff (-got +want)\n%s", diff)
	}
}

func TestSkyGradient(t *testing.T) {
	testCases := []struct {
		desc string
		dir  vec3.T
		want vec3.T
	}{
		{"down", vec3.T{0, -3, 0}, vec3.T{1, 1, 1}},
		{"level", vec3.T{0, 0, -1}, vec3.T{0.75, 0.85, 1.0}},
		{"up-long", vec3.T{0, 10, 0}, vec3.T{0.5, 0.7, 1.0}},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got := DefaultSky.Color(tc.dir)
			if diff := cmp.Diff(got, tc.want, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("Wrong sky color; diff (-got +want)\n%s", diff)
			}
		})
	}
}

func TestDepthZeroIsBlack(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	r := ray.Ray{Point: vec3.T{0, 0, 0}, Slope: vec3.T{0, 1, 0}}
	for _, depth := range []int{0, -1} {
		if diff := cmp.Diff(RayColor(r, &hit.World{}, depth, rng), vec3.T{}); diff != "" {
			t.Errorf("depth %d should be black; diff (-got +want)\n%s", depth, diff)
		}
	}
}

func TestAbsorbedIsBlack(t *testing.T) {
	world := &hit.World{}
	world.Add(geometry.NewSphere(vec3.T{0, 0, -1}, 0.5, material.Absorber{}))
	world.Add(geometry.NewSphere(vec3.T{0, 0, 1}, 0.5, nil))

	rng := rand.New(rand.NewSource(1))
	for _, dir := range []vec3.T{{0, 0, -1}, {0, 0, 1}} {
		r := ray.Ray{Point: vec3.T{0, 0, 0}, Slope: dir}
		if diff := cmp.Diff(RayColor(r, world, 10, rng), vec3.T{}); diff != "" {
			t.Errorf("ray toward %v should be black; diff (-got +want)\n%s", dir, diff)
		}
	}
}

func TestDepthExhaustedOnHitIsBlack(t *testing.T) {
	world := &hit.World{}
	world.Add(geometry.NewSphere(vec3.T{0, 0, -1}, 0.5, material.NewLambertian(vec3.T{1, 1, 1})))

	rng := rand.New(rand.NewSource(1))
	r := ray.Ray{Point: vec3.T{0, 0, 0}, Slope: vec3.T{0, 0, -1}}
	if diff := cmp.Diff(RayColor(r, world, 1, rng), vec3.T{}); diff != "" {
		t.Errorf("one bounce of depth should be spent on the hit; diff (-got +want)\n%s", diff)
	}
}

func TestSingleBounceAttenuatesSky(t *testing.T) {
	albedo := vec3.T{0.5, 0.25, 1}
	world := &hit.World{}
	world.Add(geometry.NewSphere(vec3.T{0, 0, -1}, 0.5, material.NewLambertian(albedo)))

	r := ray.Ray{Point: vec3.T{0, 0, 0}, Slope: vec3.T{0, 0, -1}}
	for seed := int64(0); seed < 20; seed++ {
		got := RayColor(r, world, 2, rand.New(rand.NewSource(seed)))

		// Replay the bounce with the same random stream.
		rng := rand.New(rand.NewSource(seed))
		rec, _ := world.Hit(r, Epsilon, math.Inf(1))
		_, scattered, _ := rec.Material.Scatter(r, &rec, rng)
		want := vec3.MulVV(albedo, DefaultSky.Color(scattered.Slope))

		if diff := cmp.Diff(got, want); diff != "" {
			t.Errorf("seed %d: wrong color; diff (-got +want)\n%s", seed, diff)
		}
	}
}

// recursiveRayColor is the textbook recursive formulation.
func recursiveRayColor(r ray.Ray, world hit.Hittable, depth int, rng *rand.Rand) vec3.T {
	if depth <= 0 {
		return vec3.T{}
	}
	rec, ok := world.Hit(r, Epsilon, math.Inf(1))
	if !ok {
		return DefaultSky.Color(r.Slope)
	}
	attenuation, scattered, ok := rec.Material.Scatter(r, &rec, rng)
	if !ok {
		return vec3.T{}
	}
	return vec3.MulVV(attenuation, recursiveRayColor(scattered, world, depth-1, rng))
}

func TestMatchesRecursiveFormulation(t *testing.T) {
	world := &hit.World{}
	world.Add(geometry.NewSphere(vec3.T{0, 0, -1}, 0.5, material.NewLambertian(vec3.T{0.7, 0.3, 0.3})))
	world.Add(geometry.NewSphere(vec3.T{0, -100.5, -1}, 100, material.NewLambertian(vec3.T{0.8, 0.8, 0})))
	world.Add(geometry.NewSphere(vec3.T{1, 0, -1}, 0.5, material.Absorber{}))

	dirRNG := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		r := ray.Ray{Point: vec3.T{0, 0, 0}, Slope: vec3.UniformUnitDistribution(dirRNG)}
		seed := dirRNG.Int63()
		depth := dirRNG.Intn(8)

		got := RayColor(r, world, depth, rand.New(rand.NewSource(seed)))
		want := recursiveRayColor(r, world, depth, rand.New(rand.NewSource(seed)))

		// Products associate differently, so allow rounding slop.
		if diff := cmp.Diff(got, want, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
			t.Fatalf("ray %d: loop and recursion disagree; diff (-got +want)\n%s", i, diff)
		}
	}
}

func TestResolverCustomSky(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := NewResolver(&hit.World{})
	s.Sky = Sky{Horizon: vec3.T{1, 0, 0}, Zenith: vec3.T{0, 0, 1}}

	got := s.RayColor(ray.Ray{Slope: vec3.T{0, -1, 0}}, 5, rng)
	if diff := cmp.Diff(got, vec3.T{1, 0, 0}); diff != "" {
		t.Errorf("Wrong color; diff (-got +want)\n%s", diff)
	}
}
