// Command addloop measures element-wise addition throughput with a plain
// indexed loop over 10 million int32 elements.
//
// Usage:
//
//	addloop [flags]
//
// Without flags it prints:
//
//	enter main
//	start
//	1.23 GB/s
//
// Examples:
//
//	addloop
//	addloop -size 50000000 -type int64
//	addloop -config bench.yaml -v
package main

import (
	"os"

	"github.com/cwbudde/algo-addperf/bench"
	"github.com/cwbudde/algo-addperf/internal/cli"
)

func main() {
	cfg := bench.DefaultConfig()
	cfg.Size = bench.LoopSize
	cfg.Kernel = "loop"

	cmd := cli.Command{
		Name:     "addloop",
		Summary:  "Measures a + b -> c throughput using a plain element-by-element loop.",
		Defaults: cfg,
	}
	os.Exit(cmd.Main(os.Args[1:], os.Stdout, os.Stderr))
}
