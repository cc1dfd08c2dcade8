// SPDX-License-Identifier: MIT

package pod

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/reducedbasis/parametric"
)

// LOOError estimates the reconstruction error at every training point by
// leave-one-out.
//
// Algorithm, for each j in 0..N-1:
//  1. fold = snapshots without j (order preserved);
//  2. U = thin SVD of fold.Weighted(), full rank, no truncation;
//  3. B = sqrt(w) ∘ U;
//  4. p = Σ_k (weighted_j · B[:,k]) B[:,k];
//  5. e_j = metric((value_j − p) ∘ w) / metric(value_0).
//
// Step 4 treats the columns of B as orthonormal under the plain dot
// product, although they are orthonormal only after dividing by sqrt(w).
// With uniform unit weights this is the exact orthogonal projection; with
// other weights the estimate carries that bias. The normalization in step 5
// uses the first snapshot for every fold.
//
// Errors:
//   - ErrNilInput, ErrSizeMismatch — malformed arguments.
//   - ErrDegenerateFold            — fewer than two snapshots.
//   - ErrZeroReference             — metric(value_0) == 0.
//   - ErrSVDFailed                 — a fold's SVD did not converge.
//
// Complexity: N thin SVDs of d_s×(N−1) matrices plus O(N·d_s·N) projections.
func LOOError(points *parametric.Points, snaps *parametric.Snapshots, opts ...LOOOption) ([]float64, error) {
	if points == nil || snaps == nil {
		return nil, podErrorf(opLOO, ErrNilInput)
	}
	n := snaps.Size()
	if points.Size() != n {
		return nil, podErrorf(opLOO, ErrSizeMismatch)
	}
	if n < 2 {
		return nil, podErrorf(opLOO, ErrDegenerateFold)
	}

	o := gatherLOOOptions(opts...)
	first, err := snaps.Value(0)
	if err != nil {
		return nil, podErrorf(opLOO, err)
	}
	ref := o.metric(first)
	if ref == 0 {
		return nil, podErrorf(opLOO, ErrZeroReference)
	}

	weights := snaps.Weights()
	dim := snaps.Dim()
	out := make([]float64, n)
	proj := make([]float64, dim)
	resid := make([]float64, dim)
	col := make([]float64, dim)
	for j := 0; j < n; j++ {
		fold, err := snaps.Subset(parametric.Without(n, j))
		if err != nil {
			return nil, podErrorf(opLOO, err)
		}
		u, _, err := thinSVD(fold.Weighted())
		if err != nil {
			return nil, podErrorf(opLOO, err)
		}
		basis := unweight(u, fold.SqrtWeights())

		held, _ := snaps.WeightedValue(j)
		value, _ := snaps.Value(j)

		for i := range proj {
			proj[i] = 0
		}
		_, cols := basis.Dims()
		for k := 0; k < cols; k++ {
			mat.Col(col, k, basis)
			floats.AddScaled(proj, floats.Dot(held, col), col)
		}

		floats.SubTo(resid, value, proj)
		floats.Mul(resid, weights)
		out[j] = o.metric(resid) / ref

		o.log.Debug().Int("fold", j).Int("rank", cols).Float64("error", out[j]).Msg("loo fold evaluated")
	}

	return out, nil
}
