// SPDX-License-Identifier: MIT

package pod

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/reducedbasis/parametric"
)

// thinSVD factorizes a (d_s×N) and returns U (d_s×min(d_s, N)) and the
// singular values in descending order.
func thinSVD(a mat.Matrix) (*mat.Dense, []float64, error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, nil, ErrSVDFailed
	}

	var u mat.Dense
	svd.UTo(&u)

	return &u, svd.Values(nil), nil
}

// unweight returns sqrtW ∘ u, scaling row i of u by sqrtW[i]. u is not modified.
func unweight(u *mat.Dense, sqrtW []float64) *mat.Dense {
	basis := mat.DenseCopyOf(u)
	r, _ := basis.Dims()
	for i := 0; i < r; i++ {
		floats.Scale(sqrtW[i], basis.RawRowView(i))
	}

	return basis
}

// leading returns a view of the first r columns of basis.
func leading(basis *mat.Dense, r int) mat.Matrix {
	rows, _ := basis.Dims()
	return basis.Slice(0, rows, 0, r)
}

// Spectrum returns the singular values of snaps.Weighted() in descending
// order, the same values Builder.SingularValues reports after Generate.
func Spectrum(snaps *parametric.Snapshots) ([]float64, error) {
	if snaps == nil {
		return nil, podErrorf("Spectrum", ErrNilInput)
	}
	var svd mat.SVD
	if ok := svd.Factorize(snaps.Weighted(), mat.SVDNone); !ok {
		return nil, podErrorf("Spectrum", ErrSVDFailed)
	}

	return svd.Values(nil), nil
}
