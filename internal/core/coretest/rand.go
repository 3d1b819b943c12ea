// Package coretest provides deterministic helpers for simulation tests.
package coretest

// Rand replays scripted values. When a script runs out it falls back to
// the zero value (0 for Intn, 0.99 for Float64 so stochastic events stay off).
type Rand struct {
	Ints   []int
	Floats []float64
}

// Intn returns the next scripted integer, reduced modulo n.
func (r *Rand) Intn(n int) int {
	if len(r.Ints) == 0 {
		return 0
	}
	v := r.Ints[0]
	r.Ints = r.Ints[1:]
	if n <= 0 {
		return 0
	}
	return ((v % n) + n) % n
}

// Float64 returns the next scripted float.
func (r *Rand) Float64() float64 {
	if len(r.Floats) == 0 {
		return 0.99
	}
	v := r.Floats[0]
	r.Floats = r.Floats[1:]
	return v
}
