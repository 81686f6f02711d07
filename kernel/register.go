package kernel

import "github.com/cwbudde/algo-addperf/internal/cpu"

func init() {
	Global.Register(Entry{
		Name:      "loop",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Int32:     Loop[int32],
		Int64:     Loop[int64],
		Float32:   Loop[float32],
		Float64:   Loop[float64],
	})

	Global.Register(Entry{
		Name:      "unrolled",
		SIMDLevel: cpu.SIMDNone,
		Priority:  10,
		Int32:     Unrolled[int32],
		Int64:     Unrolled[int64],
		Float32:   Unrolled[float32],
		Float64:   Unrolled[float64],
	})
}
