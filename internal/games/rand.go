package games

import "math/rand"

// Rand is the uniform random source injected into the engine.
// Tests supply deterministic implementations.
type Rand interface {
	Float64() float64
	Intn(n int) int
	Perm(n int) []int
}

// systemRand delegates to the package-level math/rand source,
// which is safe for concurrent use.
type systemRand struct{}

func (systemRand) Float64() float64 { return rand.Float64() }
func (systemRand) Intn(n int) int   { return rand.Intn(n) }
func (systemRand) Perm(n int) []int { return rand.Perm(n) }
