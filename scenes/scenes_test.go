package scenes

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"spheretrace/camera"
	"spheretrace/geometry"
	"spheretrace/hit"
	"spheretrace/ray"
	"spheretrace/render"
	"spheretrace/sampleimage"
	"spheretrace/vmath/vec3"

	"github.com/google/go-cmp/cmp"
)

func TestNames(t *testing.T) {
	if diff := cmp.Diff(Names(), []string{"inverted", "random", "shared", "single"}); diff != "" {
		t.Errorf("Wrong scene names; diff (-got +want)\n%s", diff)
	}
}

func TestBuildAll(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			world, err := Build(name, rand.New(rand.NewSource(1)))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if world.Len() == 0 {
				t.Fatalf("scene is empty")
			}
			for i, obj := range world.Objects {
				s, ok := obj.(*geometry.Sphere)
				if !ok {
					t.Fatalf("object %d is a %T, want *geometry.Sphere", i, obj)
				}
				if s.Material == nil {
					t.Errorf("object %d has no material", i)
				}
			}
		})
	}
}

func TestBuildUnknown(t *testing.T) {
	if _, err := Build("teapot", rand.New(rand.NewSource(1))); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Build error = %v, want ErrUnknownScene", err)
	}
}

func TestSingleHitFromCamera(t *testing.T) {
	world, err := Build("single", nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	rec, ok := world.Hit(ray.Ray{Slope: vec3.T{0, 0, -1}}, 0.001, math.Inf(1))
	if !ok {
		t.Fatalf("center ray missed")
	}
	if rec.T != 0.5 {
		t.Errorf("T = %v, want 0.5", rec.T)
	}
}

func TestSharedMaterial(t *testing.T) {
	world, err := Build("shared", nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	first := world.Objects[0].(*geometry.Sphere).Material
	for i := 1; i < 5; i++ {
		if world.Objects[i].(*geometry.Sphere).Material != first {
			t.Errorf("sphere %d does not share the first sphere's material", i)
		}
	}
}

func TestRandomDeterministic(t *testing.T) {
	a, _ := Build("random", rand.New(rand.NewSource(3)))
	b, _ := Build("random", rand.New(rand.NewSource(3)))
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed built different scenes; diff (-got +want)\n%s", diff)
	}
}

func TestRandomNonOverlapping(t *testing.T) {
	world, _ := Build("random", rand.New(rand.NewSource(4)))
	// Skip the ground at index 0.
	for i := 1; i < world.Len(); i++ {
		for j := i + 1; j < world.Len(); j++ {
			a := world.Objects[i].(*geometry.Sphere)
			b := world.Objects[j].(*geometry.Sphere)
			if vec3.SubVV(a.Center, b.Center).Norm() < a.Radius+b.Radius {
				t.Errorf("spheres %d and %d overlap", i, j)
			}
		}
	}
}

func renderWorld(t *testing.T, world *hit.World) *sampleimage.SampleImage {
	t.Helper()
	im := sampleimage.New(10, 20)
	opts := &render.Options{MaxDepth: 8, TargetSamples: 2, Workers: 1, RowsPerChunk: 4, Seed: 11}
	if err := render.RenderScene(context.Background(), world, camera.NewDefaultCamera(2), opts, im, nil); err != nil {
		t.Fatalf("Unexpected error from RenderScene: %v", err)
	}
	return im
}

func TestInvertedSphereIsVisible(t *testing.T) {
	world, err := Build("inverted", nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	withoutTwin := &hit.World{}
	withoutTwin.Add(world.Objects[0])
	withoutTwin.Add(world.Objects[2])

	if diff := cmp.Diff(renderWorld(t, world), renderWorld(t, withoutTwin)); diff == "" {
		t.Errorf("removing the inverted sphere did not change the render")
	}
}

func TestInvertedSphereReportsBackFaces(t *testing.T) {
	world, err := Build("inverted", nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	twin := world.Objects[1].(*geometry.Sphere)

	r := ray.Ray{Slope: vec3.SubVV(twin.Center, vec3.T{})}
	rec, ok := world.Hit(r, 0.001, math.Inf(1))
	if !ok {
		t.Fatalf("ray toward the inverted sphere missed")
	}
	if rec.Material != twin.Material {
		t.Fatalf("ray toward the inverted sphere hit something else")
	}
	if rec.FrontFace {
		t.Errorf("hit on the inverted sphere reported a front face")
	}
	if vec3.IProd(rec.N, r.Slope) >= 0 {
		t.Errorf("normal %v does not oppose ray %v", rec.N, r.Slope)
	}
}

func TestInvertedSphereRendersLikeRegular(t *testing.T) {
	world, err := Build("inverted", nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	twin := world.Objects[1].(*geometry.Sphere)

	flipped := &hit.World{}
	flipped.Add(world.Objects[0])
	flipped.Add(geometry.NewSphere(twin.Center, -twin.Radius, twin.Material))
	flipped.Add(world.Objects[2])

	if diff := cmp.Diff(renderWorld(t, world), renderWorld(t, flipped)); diff != "" {
		t.Errorf("radius sign changed the render; diff (-got +want)\n%s", diff)
	}
}
