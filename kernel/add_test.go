package kernel

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-addperf/internal/testutil"
)

var testSizes = []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 15, 16, 17, 31, 32, 33, 63, 64, 100, 1000}

// addRef is the reference every kernel is checked against.
func addRef[T Element](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

type kernelFunc[T Element] struct {
	name string
	fn   func(dst, a, b []T)
}

func checkKernels[T Element](t *testing.T, kernels []kernelFunc[T], gen func(n int) (a, b []T)) {
	t.Helper()
	for _, k := range kernels {
		for _, n := range testSizes {
			t.Run(k.name+"/"+testutil.SizeName(n), func(t *testing.T) {
				a, b := gen(n)
				want := make([]T, n)
				addRef(want, a, b)

				got := make([]T, n)
				k.fn(got, a, b)
				testutil.RequireSliceEqual(t, got, want)
			})
		}
	}
}

func TestKernelsInt32(t *testing.T) {
	checkKernels(t, []kernelFunc[int32]{
		{"Loop", Loop[int32]},
		{"Unrolled", Unrolled[int32]},
	}, func(n int) ([]int32, []int32) {
		return testutil.DeterministicInts[int32](1, 1<<20, n), testutil.DeterministicInts[int32](2, 1<<20, n)
	})
}

func TestKernelsInt64(t *testing.T) {
	checkKernels(t, []kernelFunc[int64]{
		{"Loop", Loop[int64]},
		{"Unrolled", Unrolled[int64]},
	}, func(n int) ([]int64, []int64) {
		return testutil.DeterministicInts[int64](3, 1<<40, n), testutil.DeterministicInts[int64](4, 1<<40, n)
	})
}

func TestKernelsFloat32(t *testing.T) {
	checkKernels(t, []kernelFunc[float32]{
		{"Loop", Loop[float32]},
		{"Unrolled", Unrolled[float32]},
	}, func(n int) ([]float32, []float32) {
		return testutil.Ramp[float32](n, 0.5, 1), testutil.Ramp[float32](n, float32(n), -0.25)
	})
}

func TestKernelsFloat64(t *testing.T) {
	checkKernels(t, []kernelFunc[float64]{
		{"Loop", Loop[float64]},
		{"Unrolled", Unrolled[float64]},
		{"VecFloat64", VecFloat64},
	}, func(n int) ([]float64, []float64) {
		return testutil.Ramp(n, 0.5, 1.0), testutil.Ramp(n, float64(n)*0.1, -0.1)
	})
}

func TestKernelsSmallTypes(t *testing.T) {
	a := []uint8{250, 1, 2, 3, 4, 5, 6, 7, 8}
	b := []uint8{10, 1, 1, 1, 1, 1, 1, 1, 1}
	want := []uint8{4, 2, 3, 4, 5, 6, 7, 8, 9}

	got := make([]uint8, len(a))
	Unrolled(got, a, b)
	testutil.RequireSliceEqual(t, got, want)

	Loop(got, a, b)
	testutil.RequireSliceEqual(t, got, want)
}

func TestKernelScenarios(t *testing.T) {
	tests := []struct {
		name string
		a, b []int32
		want []int32
	}{
		{"zeros", make([]int32, 5), make([]int32, 5), []int32{0, 0, 0, 0, 0}},
		{"small", []int32{1, 2, 3}, []int32{4, 5, 6}, []int32{5, 7, 9}},
		{"empty", []int32{}, []int32{}, []int32{}},
		{"wrap", []int32{math.MaxInt32}, []int32{1}, []int32{math.MinInt32}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []kernelFunc[int32]{{"Loop", Loop[int32]}, {"Unrolled", Unrolled[int32]}} {
				got := make([]int32, len(tt.a))
				k.fn(got, tt.a, tt.b)
				testutil.RequireSliceEqual(t, got, tt.want)
			}

			got, err := Add(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Add: %v", err)
			}
			testutil.RequireSliceEqual(t, got, tt.want)
		})
	}
}

func TestKernelsIdempotent(t *testing.T) {
	a := testutil.DeterministicInts[int32](7, 1000, 257)
	b := testutil.DeterministicInts[int32](8, 1000, 257)

	first := make([]int32, len(a))
	second := make([]int32, len(a))
	Unrolled(first, a, b)
	Unrolled(second, a, b)
	testutil.RequireSliceEqual(t, second, first)

	aCopy := append([]int32(nil), a...)
	Unrolled(first, a, b)
	testutil.RequireSliceEqual(t, a, aCopy)
}

func TestKernelsAliasedDestination(t *testing.T) {
	a := testutil.Ramp[int64](33, 0, 1)
	b := testutil.Ramp[int64](33, 100, 1)
	want := make([]int64, len(a))
	addRef(want, a, b)

	Unrolled(a, a, b)
	testutil.RequireSliceEqual(t, a, want)
}

func TestKernelsPanicOnMismatch(t *testing.T) {
	testutil.RequirePanic(t, "Loop", func() {
		Loop(make([]int32, 5), make([]int32, 5), make([]int32, 6))
	})
	testutil.RequirePanic(t, "Unrolled", func() {
		Unrolled(make([]int32, 5), make([]int32, 6), make([]int32, 6))
	})
	testutil.RequirePanic(t, "VecFloat64", func() {
		VecFloat64(make([]float64, 4), make([]float64, 5), make([]float64, 5))
	})
}

func TestAddLengthMismatch(t *testing.T) {
	_, err := Add([]int32{1, 2}, []int32{1})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("Add error = %v, want ErrLengthMismatch", err)
	}
}
