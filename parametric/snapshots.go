// SPDX-License-Identifier: MIT

package parametric

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Snapshots is an ordered, immutable set of N output vectors of dimension d_s
// together with a per-component weight vector of length d_s.
//
// Layout:
//   - values   — N×d_s, row i is the raw snapshot i.
//   - weighted — d_s×N, column i is sqrt(weights) ∘ values[i]; this is the
//     snapshot matrix handed to the SVD.
type Snapshots struct {
	values   *mat.Dense
	weights  []float64
	sqrtW    []float64
	weighted *mat.Dense
}

// NewSnapshots copies rows and weights into a new Snapshots set.
// A nil weights slice means uniform weights of one.
//
// Errors:
//   - ErrEmpty             — no rows, or rows of length zero.
//   - ErrDimensionMismatch — ragged rows or len(weights) != d_s.
//   - ErrNaNInf            — a non-finite entry or weight.
//   - ErrNegativeWeight    — a weight below zero.
//
// Complexity: O(N·d_s).
func NewSnapshots(rows [][]float64, weights []float64) (*Snapshots, error) {
	cols, err := validateRows(rows)
	if err != nil {
		return nil, parametricErrorf("NewSnapshots", err)
	}
	if weights == nil {
		weights = make([]float64, cols)
		for i := range weights {
			weights[i] = 1
		}
	} else {
		if err = validateWeights(weights, cols); err != nil {
			return nil, parametricErrorf("NewSnapshots", err)
		}
		weights = append([]float64(nil), weights...)
	}

	return newSnapshots(denseFromRows(rows, cols), weights), nil
}

// newSnapshots takes ownership of values and weights and derives the
// weighted matrix. Every constructor and subset goes through here.
func newSnapshots(values *mat.Dense, weights []float64) *Snapshots {
	n, dim := values.Dims()
	sqrtW := make([]float64, dim)
	for i, w := range weights {
		sqrtW[i] = math.Sqrt(w)
	}

	weighted := mat.NewDense(dim, n, nil)
	for j := 0; j < n; j++ {
		row := values.RawRowView(j)
		for i := 0; i < dim; i++ {
			weighted.Set(i, j, sqrtW[i]*row[i])
		}
	}

	return &Snapshots{values: values, weights: weights, sqrtW: sqrtW, weighted: weighted}
}

// Size returns N, the number of snapshots.
func (s *Snapshots) Size() int {
	r, _ := s.values.Dims()
	return r
}

// Dim returns d_s, the snapshot dimension.
func (s *Snapshots) Dim() int {
	_, c := s.values.Dims()
	return c
}

// Values returns a fresh N×d_s copy of the raw snapshots.
func (s *Snapshots) Values() *mat.Dense {
	return mat.DenseCopyOf(s.values)
}

// Value returns a copy of raw snapshot i.
func (s *Snapshots) Value(i int) ([]float64, error) {
	if i < 0 || i >= s.Size() {
		return nil, parametricErrorf("Snapshots.Value", ErrOutOfRange)
	}

	return mat.Row(nil, i, s.values), nil
}

// Weights returns a copy of the weight vector.
func (s *Snapshots) Weights() []float64 {
	return append([]float64(nil), s.weights...)
}

// SqrtWeights returns a copy of the element-wise square root of the weights.
func (s *Snapshots) SqrtWeights() []float64 {
	return append([]float64(nil), s.sqrtW...)
}

// Weighted returns a fresh d_s×N copy of the weighted snapshot matrix.
func (s *Snapshots) Weighted() *mat.Dense {
	return mat.DenseCopyOf(s.weighted)
}

// WeightedValue returns a copy of column i of the weighted matrix.
func (s *Snapshots) WeightedValue(i int) ([]float64, error) {
	if i < 0 || i >= s.Size() {
		return nil, parametricErrorf("Snapshots.WeightedValue", ErrOutOfRange)
	}

	return mat.Col(nil, i, s.weighted), nil
}

// Subset returns the snapshots at idx, in the order given. The subset keeps
// the parent's weights and recomputes its own weighted matrix.
func (s *Snapshots) Subset(idx []int) (*Snapshots, error) {
	if err := validateIndices(idx, s.Size()); err != nil {
		return nil, parametricErrorf("Snapshots.Subset", err)
	}

	return newSnapshots(selectRows(s.values, idx), s.Weights()), nil
}
