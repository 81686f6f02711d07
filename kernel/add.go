package kernel

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch is returned by Add when its inputs differ in length.
var ErrLengthMismatch = errors.New("kernel: slice length mismatch")

// Add returns a new slice holding a[i] + b[i].
// Unlike the in-place kernels it reports mismatched lengths as an error.
func Add[T Element](a, b []T) ([]T, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	dst := make([]T, len(a))
	Unrolled(dst, a, b)
	return dst, nil
}

func checkLengths(dst, a, b int) {
	if a != b || dst != a {
		panic("kernel: slice length mismatch")
	}
}
