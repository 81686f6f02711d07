package bench

import (
	"fmt"
	"math"
	"time"

	"github.com/cwbudde/algo-addperf/kernel"
)

// Result is the outcome of a single timed addition pass.
type Result struct {
	Kernel  string
	Type    kernel.Type
	Size    int
	Bytes   int64
	Elapsed time.Duration
}

// Throughput returns the measured bandwidth in GB/s.
func (r Result) Throughput() float64 {
	return GBPerSecond(r.Bytes, r.Elapsed)
}

// String formats the throughput as "<value> GB/s" with two decimals.
func (r Result) String() string {
	return FormatThroughput(r.Throughput())
}

// GBPerSecond converts a byte count and a duration into GB/s (1 GB = 1e9 bytes).
// The result is always finite and non-negative; a non-positive byte count or
// duration yields 0.
func GBPerSecond(bytes int64, elapsed time.Duration) float64 {
	if bytes <= 0 || elapsed <= 0 {
		return 0
	}
	gbps := float64(bytes) / 1e9 / elapsed.Seconds()
	if math.IsInf(gbps, 0) || math.IsNaN(gbps) {
		return 0
	}
	return gbps
}

// FormatThroughput renders gbps as "%.2f GB/s".
func FormatThroughput(gbps float64) string {
	return fmt.Sprintf("%.2f GB/s", gbps)
}
