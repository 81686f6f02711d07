package kernel

import "github.com/cwbudde/algo-vecmath"

// VecFloat64 performs element-wise addition: dst[i] = a[i] + b[i] using
// algo-vecmath, which picks AVX2, SSE2, NEON or a pure Go path at runtime.
// Slices must have equal length. Panics if lengths differ.
func VecFloat64(dst, a, b []float64) {
	checkLengths(len(dst), len(a), len(b))
	if len(dst) == 0 {
		return
	}
	vecmath.AddBlock(dst, a, b)
}
