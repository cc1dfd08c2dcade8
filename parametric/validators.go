// SPDX-License-Identifier: MIT
// Package: parametric
//
// Purpose:
//   - One place for the shape and finiteness checks shared by Points and Snapshots.
//   - Return plain sentinels; constructors add the operation tag.

package parametric

import "math"

// validateRows checks that rows is a non-empty rectangular table of finite
// values and returns its column count.
// Complexity: O(r*c).
func validateRows(rows [][]float64) (int, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, ErrEmpty
	}
	cols := len(rows[0])
	for _, row := range rows {
		if len(row) != cols {
			return 0, ErrDimensionMismatch
		}
		for _, v := range row {
			if isNonFinite(v) {
				return 0, ErrNaNInf
			}
		}
	}

	return cols, nil
}

// validateWeights checks length and sign of a weight vector.
func validateWeights(weights []float64, dim int) error {
	if len(weights) != dim {
		return ErrDimensionMismatch
	}
	for _, w := range weights {
		if isNonFinite(w) {
			return ErrNaNInf
		}
		if w < 0 {
			return ErrNegativeWeight
		}
	}

	return nil
}

// validateIndices checks every index against [0, n).
func validateIndices(idx []int, n int) error {
	if len(idx) == 0 {
		return ErrEmpty
	}
	for _, i := range idx {
		if i < 0 || i >= n {
			return ErrOutOfRange
		}
	}

	return nil
}

func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// Without returns the order-preserving index list 0..n-1 with j removed.
// It is the index set of the leave-one-out fold that holds out j.
// An out-of-range j yields the full list.
func Without(n, j int) []int {
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if i != j {
			out = append(out, i)
		}
	}

	return out
}
