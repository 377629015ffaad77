package material

import (
	"math/rand"
	"testing"

	"spheretrace/hit"
	"spheretrace/ray"
	"spheretrace/vmath/vec3"

	"github.com/google/go-cmp/cmp"
)

func TestLambertianAlwaysScatters(t *testing.T) {
	albedo := vec3.T{0.5, 0.25, 0.125}
	mtl := NewLambertian(albedo)
	rng := rand.New(rand.NewSource(1))

	rec := &hit.Record{
		P:         vec3.T{1, 2, 3},
		N:         vec3.T{0, 1, 0},
		T:         4,
		FrontFace: true,
		Material:  mtl,
	}
	in := ray.Ray{Point: vec3.T{1, 6, 3}, Slope: vec3.T{0, -1, 0}}

	for i := 0; i < 1000; i++ {
		attenuation, scattered, ok := mtl.Scatter(in, rec, rng)
		if !ok {
			t.Fatalf("Lambertian absorbed a ray")
		}
		if diff := cmp.Diff(attenuation, albedo); diff != "" {
			t.Fatalf("attenuation should be the albedo; diff (-got +want)\n%s", diff)
		}
		if diff := cmp.Diff(scattered.Point, rec.P); diff != "" {
			t.Fatalf("scattered ray should start at the hit point; diff (-got +want)\n%s", diff)
		}
		if scattered.Slope.NearZero() {
			t.Fatalf("scattered direction is degenerate: %v", scattered.Slope)
		}
		// normal + unit vector never points into the surface.
		if vec3.IProd(scattered.Slope, rec.N) < 0 {
			t.Fatalf("scattered direction %v points below the surface", scattered.Slope)
		}
	}
}

func TestScatterDirectionDegenerate(t *testing.T) {
	normal := vec3.T{0, 0, 1}
	got := scatterDirection(normal, vec3.T{0, 0, -1})
	if diff := cmp.Diff(got, normal); diff != "" {
		t.Errorf("cancelled direction should fall back to the normal; diff (-got +want)\n%s", diff)
	}

	got = scatterDirection(normal, vec3.T{1, 0, 0})
	if diff := cmp.Diff(got, vec3.T{1, 0, 1}); diff != "" {
		t.Errorf("Wrong direction; diff (-got +want)\n%s", diff)
	}
}

func TestAbsorber(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, _, ok := (Absorber{}).Scatter(ray.Ray{}, &hit.Record{}, rng); ok {
		t.Errorf("Absorber scattered a ray")
	}
}
