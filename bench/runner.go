package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-addperf/internal/cpu"
	"github.com/cwbudde/algo-addperf/kernel"
)

// Runner executes one benchmark pass for a validated Config.
type Runner struct {
	cfg Config
	out io.Writer
	log zerolog.Logger
	now func() time.Time
	reg *kernel.Registry
}

// NewRunner validates cfg and applies opts.
func NewRunner(cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Runner{
		cfg: cfg,
		out: io.Discard,
		log: zerolog.Nop(),
		now: time.Now,
		reg: kernel.Global,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r, nil
}

// Run is shorthand for NewRunner followed by Runner.Run.
func Run(cfg Config, opts ...Option) (Result, error) {
	r, err := NewRunner(cfg, opts...)
	if err != nil {
		return Result{}, err
	}
	return r.Run()
}

// Config returns the configuration the runner was built with.
func (r *Runner) Config() Config {
	return r.cfg
}

// Kernel resolves the kernel entry the run will use.
func (r *Runner) Kernel() (*kernel.Entry, error) {
	features := cpu.DetectFeatures()

	if r.cfg.Kernel == KernelAuto {
		e := r.reg.Lookup(features, r.cfg.Type)
		if e == nil {
			return nil, fmt.Errorf("%w: no kernel for %v on %v", ErrUnknownKernel, r.cfg.Type, features)
		}
		return e, nil
	}

	e := r.reg.LookupName(r.cfg.Kernel)
	switch {
	case e == nil:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKernel, r.cfg.Kernel)
	case !e.Implements(r.cfg.Type):
		return nil, fmt.Errorf("kernel %q: %w: %v", e.Name, kernel.ErrUnsupportedType, r.cfg.Type)
	case !cpu.Supports(features, e.SIMDLevel):
		return nil, fmt.Errorf("%w: %q needs %v, cpu has %v", ErrUnknownKernel, e.Name, e.SIMDLevel, features)
	}
	return e, nil
}

// Run allocates the arrays, times one addition pass and returns the sample.
func (r *Runner) Run() (Result, error) {
	e, err := r.Kernel()
	if err != nil {
		return Result{}, err
	}

	r.log.Debug().
		Str("kernel", e.Name).
		Str("simd", e.SIMDLevel.String()).
		Stringer("cpu", cpu.DetectFeatures()).
		Msg("kernel selected")

	switch r.cfg.Type {
	case kernel.Int32:
		return run(r, e.Name, e.Int32)
	case kernel.Int64:
		return run(r, e.Name, e.Int64)
	case kernel.Float32:
		return run(r, e.Name, e.Float32)
	case kernel.Float64:
		return run(r, e.Name, e.Float64)
	default:
		return Result{}, fmt.Errorf("%w: %v", kernel.ErrUnsupportedType, r.cfg.Type)
	}
}

func run[T kernel.Element](r *Runner, name string, add func(dst, a, b []T)) (Result, error) {
	n := r.cfg.Size

	r.log.Debug().
		Int("size", n).
		Stringer("type", r.cfg.Type).
		Int64("bytes_per_array", r.cfg.Bytes()).
		Str("fill", string(r.cfg.Fill)).
		Msg("allocating arrays")

	array0 := make([]T, n)
	array1 := make([]T, n)
	array2 := make([]T, n)
	if r.cfg.Fill == FillRamp {
		ramp(array0, 1)
		ramp(array1, 2)
	}

	if _, err := fmt.Fprintln(r.out, "start"); err != nil {
		return Result{}, fmt.Errorf("bench: write progress: %w", err)
	}

	t0 := r.now()
	add(array2, array0, array1)
	t1 := r.now()

	res := Result{
		Kernel:  name,
		Type:    r.cfg.Type,
		Size:    n,
		Bytes:   r.cfg.Bytes(),
		Elapsed: t1.Sub(t0),
	}

	r.log.Debug().
		Dur("elapsed", res.Elapsed).
		Float64("gb_per_s", res.Throughput()).
		Msg("pass complete")

	if r.cfg.Verify {
		if err := verify(array2, array0, array1); err != nil {
			return res, err
		}
		r.log.Debug().Int("elements", n).Msg("output verified")
	}
	return res, nil
}

func ramp[T kernel.Element](dst []T, step int) {
	for i := range dst {
		dst[i] = T(i) * T(step)
	}
}

func verify[T kernel.Element](dst, a, b []T) error {
	for i := range dst {
		if want := a[i] + b[i]; dst[i] != want {
			return fmt.Errorf("%w: index %d: got %v, want %v", ErrVerify, i, dst[i], want)
		}
	}
	return nil
}
