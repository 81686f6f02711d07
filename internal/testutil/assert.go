package testutil

import (
	"fmt"
	"testing"
)

// RequireSliceEqual fails t if got and want differ in length or in any element.
func RequireSliceEqual[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// RequirePanic fails t unless fn panics.
func RequirePanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s should panic", name)
		}
	}()
	fn()
}

// SizeName formats a slice length for subtest names.
func SizeName(n int) string {
	return fmt.Sprintf("n=%d", n)
}
