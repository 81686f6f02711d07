package bench

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-addperf/kernel"
)

const (
	// LoopSize is the array length used by the plain loop benchmark.
	LoopSize = 10_000_000

	// VecSize is the array length used by the vectorized benchmark.
	VecSize = 1_000_000_000

	// KernelAuto selects the best registered kernel for the CPU.
	KernelAuto = "auto"
)

var (
	// ErrInvalidConfig wraps every Config validation failure.
	ErrInvalidConfig = errors.New("bench: invalid config")

	// ErrUnknownKernel is returned when no kernel matches the configured name.
	ErrUnknownKernel = errors.New("bench: unknown kernel")

	// ErrVerify is returned when the output does not equal the element-wise sum.
	ErrVerify = errors.New("bench: verification failed")
)

// Fill selects how the two input arrays are initialised.
type Fill string

const (
	// FillZero leaves all inputs at zero.
	FillZero Fill = "zero"

	// FillRamp sets array0[i] = i and array1[i] = 2i, wrapped to the element type.
	FillRamp Fill = "ramp"
)

// ParseFill maps "zero" or "ramp" to a Fill.
func ParseFill(s string) (Fill, error) {
	switch f := Fill(strings.ToLower(strings.TrimSpace(s))); f {
	case FillZero, FillRamp:
		return f, nil
	default:
		return "", fmt.Errorf("unknown fill %q (want zero or ramp)", s)
	}
}

// Config describes one benchmark run.
type Config struct {
	// Size is the length N of each of the three arrays.
	Size int

	// Type is the element type.
	Type kernel.Type

	// Kernel is a registered kernel name or KernelAuto.
	Kernel string

	// Fill selects the input pattern.
	Fill Fill

	// Verify checks the output after the timed pass.
	Verify bool
}

// DefaultConfig returns the plain loop benchmark settings: LoopSize int32
// elements, automatic kernel selection, zero inputs, no verification.
func DefaultConfig() Config {
	return Config{
		Size:   LoopSize,
		Type:   kernel.Int32,
		Kernel: KernelAuto,
		Fill:   FillZero,
	}
}

// Bytes returns the number of bytes one input array occupies.
func (c Config) Bytes() int64 {
	return int64(c.Size) * int64(c.Type.Size())
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error

	elem := c.Type.Size()
	if elem == 0 {
		errs = append(errs, fmt.Errorf("type %v is not supported", c.Type))
	}

	if c.Size < 0 {
		errs = append(errs, fmt.Errorf("size %d must be >= 0", c.Size))
	} else if elem > 0 && c.Size > math.MaxInt/elem/3 {
		errs = append(errs, fmt.Errorf("size %d overflows the addressable byte count for %v", c.Size, c.Type))
	}

	if strings.TrimSpace(c.Kernel) == "" {
		errs = append(errs, errors.New("kernel is required"))
	}

	if _, err := ParseFill(string(c.Fill)); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
