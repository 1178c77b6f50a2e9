package measure

import (
	"errors"
	"fmt"

	"github.com/hupe1980/unitgo/dimension"
)

var (
	// ErrMismatch is matched by every *ErrDimensionMismatch via errors.Is.
	ErrMismatch = errors.New("dimension mismatch")

	// ErrIncompatible is matched by every *ErrIncompatibleUnit via errors.Is.
	ErrIncompatible = errors.New("incompatible unit")
)

// ErrDimensionMismatch reports an attempt to combine measurements whose
// dimension vectors differ.
type ErrDimensionMismatch struct {
	Op       string
	Expected dimension.Vector
	Actual   dimension.Vector
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("%s: dimension mismatch: expected %s, got %s", e.Op, e.Expected, e.Actual)
}

// Is reports whether target is ErrMismatch.
func (e *ErrDimensionMismatch) Is(target error) bool { return target == ErrMismatch }

// ErrIncompatibleUnit reports a conversion into a unit of another dimension.
type ErrIncompatibleUnit struct {
	Unit     string
	Expected dimension.Vector
	Actual   dimension.Vector
}

func (e *ErrIncompatibleUnit) Error() string {
	return fmt.Sprintf("incompatible unit %q: expected %s, got %s", e.Unit, e.Expected, e.Actual)
}

// Is reports whether target is ErrIncompatible.
func (e *ErrIncompatibleUnit) Is(target error) bool { return target == ErrIncompatible }
