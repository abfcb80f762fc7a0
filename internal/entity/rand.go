package entity

// Rand is the randomness the simulation consumes. *math/rand.Rand
// satisfies it; tests substitute scripted values.
type Rand interface {
	Float64() float64
	Intn(n int) int
}
