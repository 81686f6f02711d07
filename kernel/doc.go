// Package kernel provides element-wise addition kernels and the registry
// that selects one for a given element type and CPU.
//
// # Kernels
//
//   - Loop: plain indexed loop, one element per iteration
//   - Unrolled: eight lanes per step with bounds checks hoisted out of the body
//   - VecFloat64: float64 addition through algo-vecmath's SIMD block kernels
//
// All kernels compute dst[i] = a[i] + b[i], allocate nothing and keep no
// state between calls. Integer overflow wraps. Slices must have equal
// length; the kernels panic otherwise. Add is the allocating form and
// reports a mismatch as ErrLengthMismatch.
//
// # Dispatch
//
// Kernels register an Entry with the Global registry from init functions.
// Lookup returns the highest-priority entry that the CPU supports and that
// implements the requested element type:
//
//	entry := kernel.Global.Lookup(cpu.DetectFeatures(), kernel.Int32)
//	entry.Int32(dst, a, b)
package kernel
