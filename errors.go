package unitgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/unitgo/blobstore"
	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/measure"
)

var (
	// ErrDuplicateUnit is returned when a name or symbol is already taken by a
	// different unit.
	ErrDuplicateUnit = errors.New("duplicate unit")

	// ErrInvalidName is returned for empty names, names containing whitespace
	// and units without a symbol.
	ErrInvalidName = errors.New("invalid unit name")

	// ErrNoStore is returned by Save and Load when no blob store is configured.
	ErrNoStore = errors.New("no blob store configured")

	// ErrSnapshotNotFound is returned by Load when the named snapshot does not exist.
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// ErrUnknownUnit indicates that no unit is registered under a name or symbol.
type ErrUnknownUnit struct {
	Name string
}

func (e *ErrUnknownUnit) Error() string {
	return fmt.Sprintf("unknown unit %q", e.Name)
}

// ErrIncompatibleUnit indicates a conversion between units of different dimensions.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrIncompatibleUnit struct {
	From     string
	To       string
	Expected dimension.Vector
	Actual   dimension.Vector
	cause    error
}

func (e *ErrIncompatibleUnit) Error() string {
	return fmt.Sprintf("cannot convert %s to %s: expected %s, got %s", e.From, e.To, e.Expected, e.Actual)
}

func (e *ErrIncompatibleUnit) Unwrap() error { return e.cause }

// ErrDimensionMismatch indicates arithmetic on measurements of different dimensions.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Op       string
	Expected dimension.Vector
	Actual   dimension.Vector
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("%s: dimension mismatch: expected %s, got %s", e.Op, e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// translateError maps engine errors onto the registry's error types.
// from and to name the units involved, if any.
func translateError(err error, from, to string) error {
	if err == nil {
		return nil
	}

	var iu *measure.ErrIncompatibleUnit
	if errors.As(err, &iu) {
		return &ErrIncompatibleUnit{From: from, To: to, Expected: iu.Expected, Actual: iu.Actual, cause: err}
	}
	var dm *measure.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Op: dm.Op, Expected: dm.Expected, Actual: dm.Actual, cause: err}
	}
	if errors.Is(err, blobstore.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrSnapshotNotFound, err)
	}

	return err
}
