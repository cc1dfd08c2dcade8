// SPDX-License-Identifier: MIT

package parametric

import (
	"errors"
	"fmt"
)

// Sentinel errors for container construction and indexing. Callers match
// them with errors.Is; constructors wrap them once with an operation tag.
var (
	// ErrEmpty is returned for zero rows, zero-length rows or an empty subset.
	ErrEmpty = errors.New("parametric: empty input")

	// ErrDimensionMismatch indicates ragged rows or a weight vector whose
	// length differs from the snapshot dimension.
	ErrDimensionMismatch = errors.New("parametric: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf coordinate, snapshot entry or weight.
	ErrNaNInf = errors.New("parametric: NaN or Inf encountered")

	// ErrNegativeWeight signals a weight below zero.
	ErrNegativeWeight = errors.New("parametric: negative weight")

	// ErrOutOfRange indicates an index outside [0, Size()).
	ErrOutOfRange = errors.New("parametric: index out of range")
)

// parametricErrorf tags err with the failing operation.
func parametricErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
