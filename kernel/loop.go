package kernel

// Loop performs element-wise addition: dst[i] = a[i] + b[i], one element per
// iteration. Slices must have equal length. Panics if lengths differ.
func Loop[T Element](dst, a, b []T) {
	checkLengths(len(dst), len(a), len(b))
	for i := 0; i < len(dst); i++ {
		dst[i] = a[i] + b[i]
	}
}
