// Package testutil holds slice generators and assertions shared by the
// kernel and harness tests.
package testutil

import "math/rand"

// Number matches the element types exercised by the tests.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Ramp returns [start, start+step, start+2*step, ...] of length n.
func Ramp[T Number](n int, start, step T) []T {
	out := make([]T, n)
	v := start
	for i := range out {
		out[i] = v
		v += step
	}
	return out
}

// DC returns a slice of length n filled with value.
func DC[T Number](value T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// DeterministicInts returns n pseudo-random values in [-limit, limit) drawn
// from a fixed seed.
func DeterministicInts[T ~int32 | ~int64](seed int64, limit int64, n int) []T {
	rng := rand.New(rand.NewSource(seed))
	out := make([]T, n)
	for i := range out {
		out[i] = T(rng.Int63n(2*limit) - limit)
	}
	return out
}
