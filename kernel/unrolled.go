package kernel

const lanes = 8

// Unrolled performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
//
// The body handles eight elements per step on fixed-capacity subslices so
// the compiler drops the per-element bounds checks; the remainder is added
// one element at a time.
func Unrolled[T Element](dst, a, b []T) {
	checkLengths(len(dst), len(a), len(b))

	n := len(dst)
	a = a[:n]
	b = b[:n]

	i := 0
	for ; i+lanes <= n; i += lanes {
		d := dst[i : i+lanes : i+lanes]
		x := a[i : i+lanes : i+lanes]
		y := b[i : i+lanes : i+lanes]

		d[0] = x[0] + y[0]
		d[1] = x[1] + y[1]
		d[2] = x[2] + y[2]
		d[3] = x[3] + y[3]
		d[4] = x[4] + y[4]
		d[5] = x[5] + y[5]
		d[6] = x[6] + y[6]
		d[7] = x[7] + y[7]
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}
