//go:build arm64 && !purego

package kernel

import "github.com/cwbudde/algo-addperf/internal/cpu"

func init() {
	Global.Register(Entry{
		Name:      "vecmath",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  20,
		Float64:   VecFloat64,
	})
}
