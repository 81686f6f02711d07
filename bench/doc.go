// Package bench measures the memory throughput of one element-wise addition
// pass.
//
// A run is strictly linear: allocate three arrays of the configured size,
// write "start" to the progress writer, read the clock, add the first two
// arrays into the third exactly once, read the clock again and report the
// throughput as
//
//	GB/s = N * element_size / elapsed_seconds / 1e9
//
// There are no repetitions and no statistics; a Result is a single sample.
// Allocation failures are not recovered.
//
// # Usage
//
//	cfg := bench.DefaultConfig()
//	cfg.Size = 50_000_000
//	res, err := bench.Run(cfg, bench.WithOutput(os.Stdout))
//	if err != nil {
//		return err
//	}
//	fmt.Println(res) // "12.34 GB/s"
package bench
