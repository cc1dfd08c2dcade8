package interp

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrEmpty indicates a nil or zero-sized points/values matrix.
	ErrEmpty = errors.New("interp: empty input")

	// ErrDimensionMismatch indicates points and values disagree on N, or
	// evaluation points disagree on d_p with the fitted nodes.
	ErrDimensionMismatch = errors.New("interp: dimension mismatch")

	// ErrUnsupportedDim is returned by strategies restricted to one parameter.
	ErrUnsupportedDim = errors.New("interp: unsupported parameter dimension")

	// ErrDuplicateNode indicates two identical nodes in a 1-D fit.
	ErrDuplicateNode = errors.New("interp: duplicate node")

	// ErrSmoothingUnsupported is returned when a non-zero smoothness is passed
	// to an exact-only strategy.
	ErrSmoothingUnsupported = errors.New("interp: smoothing not supported")

	// ErrSingularSystem indicates the interpolation system could not be solved.
	ErrSingularSystem = errors.New("interp: singular interpolation system")
)

const (
	panicSmoothnessInvalid = "interp: WithSmoothness: smoothness must be finite, non-negative"
	panicShapeInvalid      = "interp: WithShape: shape must be finite, positive"
)

// Interpolator predicts k output values at each of M query points.
type Interpolator interface {
	// Evaluate maps an M×Dim() matrix of points to an M×Outputs() matrix.
	Evaluate(points mat.Matrix) (*mat.Dense, error)
	// Dim is the parameter dimension the interpolator was fitted on.
	Dim() int
	// Outputs is the number of predicted values per point.
	Outputs() int
}

// Factory fits an Interpolator to N points (N×d_p) and their values (N×k).
// Callers pass WithSmoothness only when smoothing is requested, so every
// Factory must accept being called with no options.
type Factory func(points, values mat.Matrix, opts ...FitOption) (Interpolator, error)

// FitOption configures a single Factory call.
type FitOption func(*FitOptions)

// FitOptions is the resolved set of fit options.
type FitOptions struct {
	smoothness float64
}

// Smoothness returns the requested smoothing strength (0 ⇒ exact fit).
func (o FitOptions) Smoothness() float64 { return o.smoothness }

// WithSmoothness requests a smoothed rather than exact fit.
// Panics if s is negative or non-finite.
func WithSmoothness(s float64) FitOption {
	if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
		panic(panicSmoothnessInvalid)
	}

	return func(o *FitOptions) { o.smoothness = s }
}

// GatherFitOptions resolves opts over the defaults. Custom Factory
// implementations use it to read the options they were called with.
func GatherFitOptions(opts ...FitOption) FitOptions {
	var o FitOptions
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func interpErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateFit checks a (points, values) pair and returns N, d_p and k.
func validateFit(points, values mat.Matrix) (n, dim, k int, err error) {
	if points == nil || values == nil {
		return 0, 0, 0, ErrEmpty
	}
	n, dim = points.Dims()
	vn, k := values.Dims()
	if n == 0 || dim == 0 || k == 0 {
		return 0, 0, 0, ErrEmpty
	}
	if vn != n {
		return 0, 0, 0, ErrDimensionMismatch
	}

	return n, dim, k, nil
}

// validateQuery checks an evaluation matrix against the fitted dimension
// and returns M.
func validateQuery(points mat.Matrix, dim int) (int, error) {
	if points == nil {
		return 0, ErrEmpty
	}
	m, c := points.Dims()
	if m == 0 {
		return 0, ErrEmpty
	}
	if c != dim {
		return 0, ErrDimensionMismatch
	}

	return m, nil
}
