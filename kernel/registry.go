package kernel

import (
	"slices"
	"sync"

	"github.com/cwbudde/algo-addperf/internal/cpu"
)

// Entry is one registered kernel variant. Only the element types the variant
// implements carry a function; the rest stay nil.
type Entry struct {
	// Name identifies the variant on the command line ("loop", "unrolled", ...).
	Name string

	// SIMDLevel is the instruction set the variant needs.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible variants; higher wins.
	//   - portable loop: 0
	//   - portable unrolled: 10
	//   - SIMD library kernels: 20
	Priority int

	Int32   func(dst, a, b []int32)
	Int64   func(dst, a, b []int64)
	Float32 func(dst, a, b []float32)
	Float64 func(dst, a, b []float64)
}

// Implements reports whether the entry has a kernel for t.
func (e *Entry) Implements(t Type) bool {
	switch t {
	case Int32:
		return e.Int32 != nil
	case Int64:
		return e.Int64 != nil
	case Float32:
		return e.Float32 != nil
	case Float64:
		return e.Float64 != nil
	default:
		return false
	}
}

// Registry holds kernel variants and selects among them.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	sorted  bool
}

// Global is the registry the init functions of this package populate.
var Global = &Registry{}

// Register adds a variant. A later registration with the same name replaces
// the earlier one.
func (r *Registry) Register(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = slices.DeleteFunc(r.entries, func(e Entry) bool {
		return e.Name == entry.Name
	})
	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry that features support and that
// implements t, or nil if there is none.
func (r *Registry) Lookup(features cpu.Features, t Type) *Entry {
	r.sort()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		e := &r.entries[i]
		if cpu.Supports(features, e.SIMDLevel) && e.Implements(t) {
			return e
		}
	}
	return nil
}

// LookupName returns the entry registered under name, or nil.
func (r *Registry) LookupName(name string) *Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			return &r.entries[i]
		}
	}
	return nil
}

// ListEntries returns a copy of all entries sorted by descending priority.
func (r *Registry) ListEntries() []Entry {
	r.sort()

	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.entries)
}

// Reset removes every entry. Intended for tests.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

func (r *Registry) sort() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sorted {
		return
	}
	slices.SortStableFunc(r.entries, func(a, b Entry) int {
		return b.Priority - a.Priority
	})
	r.sorted = true
}
