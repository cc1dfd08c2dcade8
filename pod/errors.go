// SPDX-License-Identifier: MIT
// Package pod: sentinel error set.
// Every error returned by this package matches one of these via errors.Is.
// Collaborator failures (interpolator fit/evaluate) are wrapped twice, so
// both the pod sentinel and the collaborator's own error stay in the chain.

package pod

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRank is returned when truncate is outside [1, r_max].
	ErrInvalidRank = errors.New("pod: truncation rank out of range")

	// ErrNotFitted is returned by evaluation before a successful Generate.
	ErrNotFitted = errors.New("pod: builder not fitted")

	// ErrDegenerateFold is returned by LOOError for fewer than two snapshots.
	ErrDegenerateFold = errors.New("pod: leave-one-out needs at least two snapshots")

	// ErrInterpolationFit wraps a failure of the injected interp.Factory.
	ErrInterpolationFit = errors.New("pod: interpolator fit failed")

	// ErrInterpolationEval wraps a failure of the fitted interpolator.
	ErrInterpolationEval = errors.New("pod: interpolator evaluation failed")

	// ErrSVDFailed indicates the singular value decomposition did not converge.
	ErrSVDFailed = errors.New("pod: SVD factorization failed")

	// ErrSizeMismatch indicates points and snapshots of different sizes.
	ErrSizeMismatch = errors.New("pod: points and snapshots differ in size")

	// ErrDimensionMismatch indicates an evaluation input or interpolator
	// output whose width disagrees with the fitted model.
	ErrDimensionMismatch = errors.New("pod: dimension mismatch")

	// ErrNilInput indicates a nil points, snapshots or evaluation matrix.
	ErrNilInput = errors.New("pod: nil input")

	// ErrNilFactory indicates a nil interp.Factory.
	ErrNilFactory = errors.New("pod: nil interpolator factory")

	// ErrZeroReference is returned by LOOError when the metric of the first
	// snapshot, used as the normalization reference, is zero.
	ErrZeroReference = errors.New("pod: zero reference norm")

	// ErrUnknownMetric is returned by MetricByName for an unrecognized name.
	ErrUnknownMetric = errors.New("pod: unknown metric")
)

// Operation tags used for uniform wrapping.
const (
	opGenerate    = "Generate"
	opEvaluate    = "Evaluate"
	opReconstruct = "Reconstruct"
	opLOO         = "LOOError"
)

// podErrorf tags err with op. Use only when err != nil.
func podErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// collaboratorErrorf keeps both the pod sentinel and the collaborator error
// matchable with errors.Is.
func collaboratorErrorf(op string, sentinel, err error) error {
	return fmt.Errorf("%s: %w: %w", op, sentinel, err)
}
