// SPDX-License-Identifier: MIT

package pod

import (
	"fmt"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/reducedbasis/interp"
	"github.com/katalvlaran/reducedbasis/parametric"
)

// Builder is the weighted-POD reduced-basis model.
//
// The zero value is ready to use. Before Generate succeeds the builder is
// unfitted: PODBasis returns nil and Evaluate fails with ErrNotFitted. Each
// Generate replaces the whole model; there is no incremental update.
//
// A Builder must not be used from several goroutines at once.
type Builder struct {
	log *zerolog.Logger

	basis    *mat.Dense // d_s×r_max, sqrt(w) ∘ U
	sigma    []float64  // r_max singular values, descending
	coefs    *mat.Dense // truncate×N modal coefficients of the training set
	ip       interp.Interpolator
	truncate int
	pointDim int
}

// NewBuilder returns an unfitted Builder configured by opts.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

func (b *Builder) logger() *zerolog.Logger {
	if b.log == nil {
		nop := zerolog.Nop()
		return &nop
	}

	return b.log
}

// Generate builds the reduced basis and fits the coefficient interpolator.
//
// Implementation:
//   - Stage 1: validate inputs and resolve truncate (default r_max = min(d_s, N)).
//   - Stage 2: thin SVD of the d_s×N weighted snapshot matrix: W = U Σ Vᵀ.
//   - Stage 3: basis = sqrt(w) ∘ U (row scaling).
//   - Stage 4: coefs = basis[:, :r]ᵀ · W, an r×N matrix.
//   - Stage 5: factory(points N×d_p, coefsᵀ N×r), with WithSmoothness only if s ≠ 0.
//   - Stage 6: commit basis, singular values, coefficients, interpolator and truncate.
//
// Errors:
//   - ErrNilInput, ErrNilFactory, ErrSizeMismatch — malformed arguments.
//   - ErrInvalidRank      — truncate < 1 or truncate > r_max.
//   - ErrSVDFailed        — numerical backend did not converge.
//   - ErrInterpolationFit — the factory failed; its error stays in the chain.
//
// On error the builder keeps its previous state.
func (b *Builder) Generate(points *parametric.Points, snaps *parametric.Snapshots, factory interp.Factory, opts ...GenerateOption) error {
	if points == nil || snaps == nil {
		return podErrorf(opGenerate, ErrNilInput)
	}
	if factory == nil {
		return podErrorf(opGenerate, ErrNilFactory)
	}
	n := snaps.Size()
	if points.Size() != n {
		return podErrorf(opGenerate, ErrSizeMismatch)
	}

	o := gatherGenerateOptions(opts...)
	dim := snaps.Dim()
	rmax := min(dim, n)
	r := rmax
	if o.hasTruncate {
		r = o.truncate
	}
	if r < 1 || r > rmax {
		return podErrorf(opGenerate, fmt.Errorf("%w: truncate=%d, want 1..%d", ErrInvalidRank, r, rmax))
	}

	weighted := snaps.Weighted()
	u, sigma, err := thinSVD(weighted)
	if err != nil {
		return podErrorf(opGenerate, err)
	}
	basis := unweight(u, snaps.SqrtWeights())

	coefs := mat.NewDense(r, n, nil)
	coefs.Mul(leading(basis, r).T(), weighted)

	var fitOpts []interp.FitOption
	if o.smoothness != 0 {
		fitOpts = append(fitOpts, interp.WithSmoothness(o.smoothness))
	}
	ip, err := factory(points.Values(), mat.DenseCopyOf(coefs.T()), fitOpts...)
	if err != nil {
		return collaboratorErrorf(opGenerate, ErrInterpolationFit, err)
	}
	if ip == nil {
		return podErrorf(opGenerate, fmt.Errorf("%w: factory returned nil", ErrInterpolationFit))
	}

	b.basis, b.sigma, b.coefs, b.ip = basis, sigma, coefs, ip
	b.truncate, b.pointDim = r, points.Dim()

	b.logger().Debug().
		Int("snapshots", n).
		Int("dim", dim).
		Int("rank", rmax).
		Int("truncate", r).
		Float64("smoothness", o.smoothness).
		Msg("pod basis generated")

	return nil
}

// Evaluate approximates the snapshots at M parametric points.
// value is M×d_p; the result is d_s×M with column m the approximation at
// point m: basis[:, :r] · interpolator(value)ᵀ.
//
// Errors:
//   - ErrNotFitted         — no successful Generate yet.
//   - ErrNilInput          — value is nil.
//   - ErrDimensionMismatch — value width ≠ d_p, or interpolator output width ≠ truncate.
//   - ErrInterpolationEval — the interpolator failed; its error stays in the chain.
func (b *Builder) Evaluate(value mat.Matrix) (*mat.Dense, error) {
	if !b.Fitted() {
		return nil, podErrorf(opEvaluate, ErrNotFitted)
	}
	if value == nil {
		return nil, podErrorf(opEvaluate, ErrNilInput)
	}
	if _, c := value.Dims(); c != b.pointDim {
		return nil, podErrorf(opEvaluate, ErrDimensionMismatch)
	}

	pred, err := b.ip.Evaluate(value)
	if err != nil {
		return nil, collaboratorErrorf(opEvaluate, ErrInterpolationEval, err)
	}

	return b.Reconstruct(pred)
}

// EvaluatePoint is Evaluate for a single point; it returns a length-d_s vector.
func (b *Builder) EvaluatePoint(p []float64) ([]float64, error) {
	if !b.Fitted() {
		return nil, podErrorf(opEvaluate, ErrNotFitted)
	}
	if len(p) != b.pointDim {
		return nil, podErrorf(opEvaluate, ErrDimensionMismatch)
	}

	out, err := b.Evaluate(mat.NewDense(1, len(p), append([]float64(nil), p...)))
	if err != nil {
		return nil, err
	}

	return mat.Col(nil, 0, out), nil
}

// Reconstruct lifts M×truncate modal coefficients back to the snapshot
// space, returning basis[:, :r] · coefsᵀ (d_s×M). Passing Coefficients()ᵀ
// reconstructs the training set directly, bypassing the interpolator.
func (b *Builder) Reconstruct(coefs mat.Matrix) (*mat.Dense, error) {
	if !b.Fitted() {
		return nil, podErrorf(opReconstruct, ErrNotFitted)
	}
	if coefs == nil {
		return nil, podErrorf(opReconstruct, ErrNilInput)
	}
	m, k := coefs.Dims()
	if k != b.truncate || m == 0 {
		return nil, podErrorf(opReconstruct, ErrDimensionMismatch)
	}

	dim, _ := b.basis.Dims()
	out := mat.NewDense(dim, m, nil)
	out.Mul(leading(b.basis, b.truncate), coefs.T())

	return out, nil
}

// Fitted reports whether Generate has succeeded at least once.
func (b *Builder) Fitted() bool { return b.basis != nil }

// PODBasis returns a copy of the full d_s×r_max basis, or nil before Generate.
// Columns are ordered by descending singular value; only the first
// Truncate() are used by the model.
func (b *Builder) PODBasis() *mat.Dense {
	if b.basis == nil {
		return nil
	}

	return mat.DenseCopyOf(b.basis)
}

// Truncate returns the truncation rank in use; ok is false before Generate.
func (b *Builder) Truncate() (r int, ok bool) {
	return b.truncate, b.Fitted()
}

// SingularValues returns a copy of the weighted snapshot matrix's singular
// values (descending), or nil before Generate.
func (b *Builder) SingularValues() []float64 {
	if b.sigma == nil {
		return nil
	}

	return append([]float64(nil), b.sigma...)
}

// Coefficients returns a copy of the truncate×N training coefficients, or
// nil before Generate.
func (b *Builder) Coefficients() *mat.Dense {
	if b.coefs == nil {
		return nil
	}

	return mat.DenseCopyOf(b.coefs)
}

// Interpolator returns the fitted coefficient interpolator, or nil.
func (b *Builder) Interpolator() interp.Interpolator { return b.ip }
