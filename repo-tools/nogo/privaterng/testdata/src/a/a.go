package a

import "math/rand"

func global() float64 {
	return rand.Float64() // want `use of global math/rand.Float64`
}

func seed() {
	rand.Seed(1) // want `use of global math/rand.Seed`
}

func methodValue() func(int) int {
	return rand.Intn // want `use of global math/rand.Intn`
}

func private(rng *rand.Rand) float64 {
	r := rand.New(rand.NewSource(1))
	return rng.Float64() + r.Float64() + float64(r.Intn(3))
}
