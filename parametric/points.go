// SPDX-License-Identifier: MIT

package parametric

import "gonum.org/v1/gonum/mat"

// Points is an ordered, immutable set of N parameter vectors of dimension d_p.
// Row i of the backing N×d_p matrix is the i-th parametric point.
type Points struct {
	values *mat.Dense
}

// NewPoints copies rows into a new Points set.
//
// Errors:
//   - ErrEmpty             — no rows, or rows of length zero.
//   - ErrDimensionMismatch — ragged rows.
//   - ErrNaNInf            — a non-finite coordinate.
//
// Complexity: O(N·d_p).
func NewPoints(rows [][]float64) (*Points, error) {
	cols, err := validateRows(rows)
	if err != nil {
		return nil, parametricErrorf("NewPoints", err)
	}

	return &Points{values: denseFromRows(rows, cols)}, nil
}

// Size returns N, the number of points.
func (p *Points) Size() int {
	r, _ := p.values.Dims()
	return r
}

// Dim returns d_p, the parameter-space dimension.
func (p *Points) Dim() int {
	_, c := p.values.Dims()
	return c
}

// Values returns a fresh N×d_p copy of the coordinates.
func (p *Points) Values() *mat.Dense {
	return mat.DenseCopyOf(p.values)
}

// At returns a copy of the i-th point.
func (p *Points) At(i int) ([]float64, error) {
	if i < 0 || i >= p.Size() {
		return nil, parametricErrorf("Points.At", ErrOutOfRange)
	}

	return mat.Row(nil, i, p.values), nil
}

// Subset returns the points at idx, in the order given.
func (p *Points) Subset(idx []int) (*Points, error) {
	if err := validateIndices(idx, p.Size()); err != nil {
		return nil, parametricErrorf("Points.Subset", err)
	}

	return &Points{values: selectRows(p.values, idx)}, nil
}

// denseFromRows flattens a validated rectangular table into a row-major Dense.
func denseFromRows(rows [][]float64, cols int) *mat.Dense {
	data := make([]float64, 0, len(rows)*cols)
	for _, row := range rows {
		data = append(data, row...)
	}

	return mat.NewDense(len(rows), cols, data)
}

// selectRows copies the rows of m listed in idx into a new matrix.
func selectRows(m *mat.Dense, idx []int) *mat.Dense {
	_, cols := m.Dims()
	out := mat.NewDense(len(idx), cols, nil)
	for k, i := range idx {
		out.SetRow(k, m.RawRowView(i))
	}

	return out
}
