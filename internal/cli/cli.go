// Package cli implements the shared command line of the addloop and addvec
// benchmarks.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-addperf/bench"
	"github.com/cwbudde/algo-addperf/internal/config"
	"github.com/cwbudde/algo-addperf/internal/cpu"
	"github.com/cwbudde/algo-addperf/kernel"
)

// Exit codes returned by Main.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Command describes one benchmark binary.
type Command struct {
	// Name is the program name shown in usage text.
	Name string

	// Summary is the one-line description under the usage line.
	Summary string

	// Defaults is the configuration used when no flag or file overrides it.
	Defaults bench.Config
}

type flags struct {
	size    int
	typ     string
	kernel  string
	fill    string
	verify  bool
	config  string
	list    bool
	verbose bool
}

// Main runs the command with args (without the program name) and returns the
// process exit code. Results go to stdout, diagnostics to stderr.
func (c Command) Main(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(c.Name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	var f flags
	fs.IntVar(&f.size, "size", c.Defaults.Size, "number of elements per array")
	fs.StringVar(&f.typ, "type", c.Defaults.Type.String(), "element type: int32, int64, float32, float64")
	fs.StringVar(&f.kernel, "kernel", c.Defaults.Kernel, "kernel name or \"auto\" (see -list)")
	fs.StringVar(&f.fill, "fill", string(c.Defaults.Fill), "input pattern: zero or ramp")
	fs.BoolVar(&f.verify, "verify", c.Defaults.Verify, "check the output after the timed pass")
	fs.StringVar(&f.config, "config", "", "YAML file with benchmark settings")
	fs.BoolVar(&f.list, "list", false, "list registered kernels and exit")
	fs.BoolVar(&f.verbose, "v", false, "enable debug logging")
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: %s [flags]\n\n", c.Name)
		fmt.Fprintf(out, "%s\n", c.Summary)
		fmt.Fprintf(out, "Without flags it prints \"enter main\", \"start\" and the throughput in GB/s.\n\n")
		fmt.Fprintf(out, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  %s\n", c.Name)
		fmt.Fprintf(out, "  %s -size 100000000 -type float64\n", c.Name)
		fmt.Fprintf(out, "  %s -fill ramp -verify -v\n", c.Name)
		fmt.Fprintf(out, "  %s -list\n", c.Name)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "error: unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return ExitUsage
	}

	cfg, level, err := c.resolve(fs, f)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitUsage
	}
	logger := newLogger(stderr, level)

	if f.list {
		if err := printKernels(stdout, cfg.Type); err != nil {
			logger.Error().Err(err).Msg("failed to write kernel list")
			return ExitError
		}
		return ExitOK
	}

	fmt.Fprintln(stdout, "enter main")

	res, err := bench.Run(cfg, bench.WithOutput(stdout), bench.WithLogger(logger))
	if err != nil {
		logger.Error().Err(err).Msg("benchmark failed")
		return ExitError
	}
	if res.Bytes > 0 && res.Elapsed <= 0 {
		logger.Warn().Msg("elapsed time below clock resolution; reporting 0 GB/s")
	}

	logger.Info().
		Str("kernel", res.Kernel).
		Stringer("type", res.Type).
		Int("size", res.Size).
		Dur("elapsed", res.Elapsed).
		Msg("done")

	fmt.Fprintln(stdout, res)
	return ExitOK
}

// resolve layers defaults, the optional config file and explicitly set flags,
// in that order.
func (c Command) resolve(fs *flag.FlagSet, f flags) (bench.Config, zerolog.Level, error) {
	cfg := c.Defaults
	level := zerolog.InfoLevel

	if f.config != "" {
		file, err := config.Load(f.config)
		if err != nil {
			return cfg, level, err
		}
		if cfg, err = file.Apply(cfg); err != nil {
			return cfg, level, err
		}
		if level, err = file.Level(level); err != nil {
			return cfg, level, err
		}
	}

	var errs []error
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "size":
			cfg.Size = f.size
		case "type":
			t, err := kernel.ParseType(f.typ)
			if err != nil {
				errs = append(errs, err)
				return
			}
			cfg.Type = t
		case "kernel":
			cfg.Kernel = f.kernel
		case "fill":
			fill, err := bench.ParseFill(f.fill)
			if err != nil {
				errs = append(errs, err)
				return
			}
			cfg.Fill = fill
		case "verify":
			cfg.Verify = f.verify
		}
	})
	if f.verbose {
		level = zerolog.DebugLevel
	}

	return cfg, level, errors.Join(errs...)
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: noColor, TimeFormat: time.TimeOnly}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func printKernels(w io.Writer, typ kernel.Type) error {
	best := kernel.Global.Lookup(cpu.DetectFeatures(), typ)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Kernel\tSIMD\tPriority\tTypes\tAuto (%v)\n", typ); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "------\t----\t--------\t-----\t-----\n"); err != nil {
		return err
	}

	for _, e := range kernel.Global.ListEntries() {
		var types []string
		for _, t := range kernel.Types {
			if e.Implements(t) {
				types = append(types, t.String())
			}
		}
		mark := ""
		if best != nil && best.Name == e.Name {
			mark = "*"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			e.Name, e.SIMDLevel, e.Priority, strings.Join(types, ","), mark); err != nil {
			return err
		}
	}
	return tw.Flush()
}
