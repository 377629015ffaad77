// Package vec3 holds the 3-vector type used for points, directions, and
// linear RGB colors.
package vec3

import (
	"fmt"
	"math"
	"math/rand"
)

type T [3]float64

func (v T) Norm() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

func (v T) NormSquared() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// NearZero reports whether every component is within 1e-8 of zero.
func (v T) NearZero() bool {
	const s = 1e-8
	return math.Abs(v[0]) < s && math.Abs(v[1]) < s && math.Abs(v[2]) < s
}

func (v T) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v[0], v[1], v[2])
}

func Normalize(v T) T {
	l := v.Norm()
	return T{
		v[0] / l,
		v[1] / l,
		v[2] / l,
	}
}

func Neg(v T) T {
	return T{-v[0], -v[1], -v[2]}
}

func AddVV(a, b T) T {
	return T{
		a[0] + b[0],
		a[1] + b[1],
		a[2] + b[2],
	}
}

func SubVV(a, b T) T {
	return T{
		a[0] - b[0],
		a[1] - b[1],
		a[2] - b[2],
	}
}

// MulVV is the component-wise (Hadamard) product, used to attenuate colors.
func MulVV(a, b T) T {
	return T{
		a[0] * b[0],
		a[1] * b[1],
		a[2] * b[2],
	}
}

func MulVS(a T, b float64) T {
	return T{
		a[0] * b,
		a[1] * b,
		a[2] * b,
	}
}

func DivVS(a T, b float64) T {
	return T{
		a[0] / b,
		a[1] / b,
		a[2] / b,
	}
}

func IProd(a, b T) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func CProd(a, b T) T {
	return T{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Lerp blends from a (t=0) to b (t=1).
func Lerp(a, b T, t float64) T {
	return AddVV(MulVS(a, 1-t), MulVS(b, t))
}

// UniformInUnitBall rejection-samples a nonzero point inside the unit ball.
func UniformInUnitBall(rng *rand.Rand) T {
	result := T{}
	for {
		result[0] = 2 * (rng.Float64() - 0.5)
		result[1] = 2 * (rng.Float64() - 0.5)
		result[2] = 2 * (rng.Float64() - 0.5)
		normSquared := result.NormSquared()
		if normSquared <= 1.0 && normSquared != 0.0 {
			return result
		}
	}
}

// UniformUnitDistribution returns a direction distributed uniformly over the
// unit sphere.
func UniformUnitDistribution(rng *rand.Rand) T {
	return Normalize(UniformInUnitBall(rng))
}
