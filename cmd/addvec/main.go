// Command addvec measures element-wise addition throughput with the best
// kernel registered for the CPU over 1 billion int32 elements.
//
// The default run allocates three arrays of 4 GB each. Use -size to shrink it
// on smaller machines.
//
// Usage:
//
//	addvec [flags]
//
// Examples:
//
//	addvec
//	addvec -size 100000000 -type float64
//	addvec -list
package main

import (
	"os"

	"github.com/cwbudde/algo-addperf/bench"
	"github.com/cwbudde/algo-addperf/internal/cli"
)

func main() {
	cfg := bench.DefaultConfig()
	cfg.Size = bench.VecSize
	cfg.Kernel = bench.KernelAuto

	cmd := cli.Command{
		Name:     "addvec",
		Summary:  "Measures a + b -> c throughput using the fastest registered kernel.",
		Defaults: cfg,
	}
	os.Exit(cmd.Main(os.Args[1:], os.Stdout, os.Stderr))
}
