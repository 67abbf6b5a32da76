package kmeanstree

import (
	"errors"
	"fmt"

	"kmeanstree/kmeans"
)

// ErrInvalidK is returned when a requested neighbor or cluster count isn't
// positive.
var ErrInvalidK = errors.New("kmeanstree: k must be positive")

// ErrDimensionMismatch indicates a query or inserted row whose length
// doesn't match the index's dataset. The original error is available via
// errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("kmeanstree: dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrNotBuilt indicates an operation that requires a built tree (search,
// insert, cut) was attempted before Build completed.
var ErrNotBuilt = errors.New("kmeanstree: index has not been built")

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var dm *kmeans.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Expected: dm.Expected, Actual: dm.Actual, cause: err}
	}
	var iv *kmeans.ErrInvariantViolation
	if errors.As(err, &iv) {
		return fmt.Errorf("%w: %w", ErrNotBuilt, err)
	}
	if errors.Is(err, kmeans.ErrInvalidK) {
		return fmt.Errorf("%w: %w", ErrInvalidK, err)
	}

	return err
}
