package rf

import (
	"errors"
	"fmt"
)

// Domain errors for calculator operations.
var (
	// ErrUnknownMaterial indicates a material name missing from the built-in table.
	ErrUnknownMaterial = errors.New("rf: unknown material")

	// ErrUnknownConstant indicates a constant name missing from the constant table.
	ErrUnknownConstant = errors.New("rf: unknown physical constant")

	// ErrInvalidFrequency indicates a frequency outside the range a formula accepts.
	ErrInvalidFrequency = errors.New("rf: invalid frequency")

	// ErrUndefinedQuantity indicates a formula that divides by a zero material
	// parameter, such as skin depth of a non-conductor.
	ErrUndefinedQuantity = errors.New("rf: quantity undefined for this medium")

	// ErrNumericalInstability indicates an evaluation that produced NaN or Inf.
	ErrNumericalInstability = errors.New("rf: numerically unstable result (NaN or Inf)")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("rf: parameter out of valid bounds")
)

// CalcError wraps an error with the operation context it occurred in.
type CalcError struct {
	Op        string
	Material  string
	Frequency float64
	Wrapped   error
}

func (e *CalcError) Error() string {
	if e.Material == "" {
		return fmt.Sprintf("%s (f=%g Hz): %v", e.Op, e.Frequency, e.Wrapped)
	}
	return fmt.Sprintf("%s %q (f=%g Hz): %v", e.Op, e.Material, e.Frequency, e.Wrapped)
}

func (e *CalcError) Unwrap() error {
	return e.Wrapped
}
