// SPDX-License-Identifier: MIT
// Package pod_test contains shared fixtures.
//
// Purpose:
//   - Deterministic snapshot families (fixed seeds) for property checks.
//   - Stub interpolators and factories that record how they were called.

package pod_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/reducedbasis/interp"
	"github.com/katalvlaran/reducedbasis/parametric"
)

// tol is the floating tolerance for SVD-based identities on small problems.
const tol = 1e-9

var errBoom = errors.New("stub: boom")

// mustPoints builds Points or fails the test.
func mustPoints(t testing.TB, rows [][]float64) *parametric.Points {
	t.Helper()
	p, err := parametric.NewPoints(rows)
	require.NoError(t, err)

	return p
}

// mustSnapshots builds Snapshots or fails the test.
func mustSnapshots(t testing.TB, rows [][]float64, weights []float64) *parametric.Snapshots {
	t.Helper()
	s, err := parametric.NewSnapshots(rows, weights)
	require.NoError(t, err)

	return s
}

// linePoints returns n one-dimensional points 0, 1, ..., n-1.
func linePoints(t testing.TB, n int) *parametric.Points {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = []float64{float64(i)}
	}

	return mustPoints(t, rows)
}

// randomRows returns an n×d table of uniform values in [-1, 1).
func randomRows(seed int64, n, d int) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, d)
		for j := range rows[i] {
			rows[i][j] = 2*rng.Float64() - 1
		}
	}

	return rows
}

// frobenius returns ‖a − b‖_F.
func frobenius(a, b mat.Matrix) float64 {
	var d mat.Dense
	d.Sub(a, b)

	return mat.Norm(&d, 2)
}

// clean maps tiny magnitudes to +0 so examples never print "-0.000".
func clean(v float64) float64 {
	if math.Abs(v) < 1e-9 {
		return 0
	}

	return v
}

// stubInterpolator returns fixed-width zero predictions or a fixed error.
type stubInterpolator struct {
	dim, outputs int
	err          error
}

func (s *stubInterpolator) Evaluate(points mat.Matrix) (*mat.Dense, error) {
	if s.err != nil {
		return nil, s.err
	}
	m, _ := points.Dims()

	return mat.NewDense(m, s.outputs, nil), nil
}

func (s *stubInterpolator) Dim() int     { return s.dim }
func (s *stubInterpolator) Outputs() int { return s.outputs }

// spyFactory records the options and shapes of every call.
type spyFactory struct {
	calls      int
	optCount   int
	smoothness float64
	rows, cols int

	fitErr  error
	evalErr error
	widen   int  // extra output columns reported by the stub
	nilOut  bool // return a nil interpolator
}

func (f *spyFactory) fit(points, values mat.Matrix, opts ...interp.FitOption) (interp.Interpolator, error) {
	f.calls++
	f.optCount = len(opts)
	f.smoothness = interp.GatherFitOptions(opts...).Smoothness()
	f.rows, f.cols = values.Dims()
	if f.fitErr != nil {
		return nil, f.fitErr
	}
	if f.nilOut {
		return nil, nil
	}
	_, d := points.Dims()

	return &stubInterpolator{dim: d, outputs: f.cols + f.widen, err: f.evalErr}, nil
}
