package kernel

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedType is returned by ParseType for unknown element type names.
var ErrUnsupportedType = errors.New("kernel: unsupported element type")

// Element is the set of fixed-width numeric types the kernels accept.
type Element interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Type identifies an element type the registry dispatches on.
type Type int

const (
	Int32 Type = iota
	Int64
	Float32
	Float64
)

// Types lists every dispatchable element type.
var Types = []Type{Int32, Int64, Float32, Float64}

// Size returns the width of one element in bytes.
func (t Type) Size() int {
	switch t {
	case Int32, Float32:
		return 4
	case Int64, Float64:
		return 8
	default:
		return 0
	}
}

func (t Type) String() string {
	switch t {
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType maps a name such as "int32" to its Type. Matching ignores case
// and surrounding whitespace.
func ParseType(s string) (Type, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, t := range Types {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedType, s)
}
