// Package cpu detects the SIMD extensions that decide which add kernels are
// eligible on the running machine.
//
// Detection runs lazily on the first call to DetectFeatures and is cached
// behind a sync.Once. Tests may replace the detected features with
// SetForcedFeatures.
package cpu

import (
	"strings"
	"sync"
)

// SIMDLevel names the instruction set extension a kernel requires.
// Levels are not comparable across architectures (AVX2 vs NEON).
type SIMDLevel int

const (
	// SIMDNone marks portable Go kernels.
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 is the x86-64 baseline.
	SIMDSSE2

	// SIMDAVX2 is x86-64 AVX2 (256-bit lanes).
	SIMDAVX2

	// SIMDAVX512 is x86-64 AVX-512 foundation.
	SIMDAVX512

	// SIMDNEON is ARM Advanced SIMD.
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "none"
	case SIMDSSE2:
		return "sse2"
	case SIMDAVX2:
		return "avx2"
	case SIMDAVX512:
		return "avx512"
	case SIMDNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Features describes the CPU capabilities relevant to kernel selection.
type Features struct {
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool
	HasNEON   bool

	// ForceGeneric restricts dispatch to SIMDNone kernels.
	ForceGeneric bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

// Best returns the most capable SIMD level the features allow.
func (f Features) Best() SIMDLevel {
	switch {
	case f.ForceGeneric:
		return SIMDNone
	case f.HasAVX512:
		return SIMDAVX512
	case f.HasAVX2:
		return SIMDAVX2
	case f.HasSSE2:
		return SIMDSSE2
	case f.HasNEON:
		return SIMDNEON
	default:
		return SIMDNone
	}
}

// String lists the detected extensions, e.g. "amd64[sse2 avx avx2]".
func (f Features) String() string {
	var flags []string
	if f.HasSSE2 {
		flags = append(flags, "sse2")
	}
	if f.HasAVX {
		flags = append(flags, "avx")
	}
	if f.HasAVX2 {
		flags = append(flags, "avx2")
	}
	if f.HasAVX512 {
		flags = append(flags, "avx512")
	}
	if f.HasNEON {
		flags = append(flags, "neon")
	}
	if f.ForceGeneric {
		flags = append(flags, "force-generic")
	}
	return f.Architecture + "[" + strings.Join(flags, " ") + "]"
}

var (
	detected    Features
	detectOnce  sync.Once
	detectMutex sync.Mutex

	forced      *Features
	forcedMutex sync.RWMutex
)

// DetectFeatures returns the CPU features of the current system, or the
// forced features when SetForcedFeatures is in effect. Safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	f := forced
	forcedMutex.RUnlock()

	if f != nil {
		return *f
	}

	detectMutex.Lock()
	defer detectMutex.Unlock()
	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
	})
	return detected
}

// SetForcedFeatures overrides hardware detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced = &f
}

// ResetDetection clears forced features and the detection cache.
func ResetDetection() {
	forcedMutex.Lock()
	forced = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detected = Features{}
	detectMutex.Unlock()
}

// Supports reports whether a kernel requiring level may run on features.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDAVX512:
		return features.HasAVX512
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
