// SPDX-License-Identifier: MIT

package pod_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reducedbasis/pod"
)

// TestLOOError_RankOne: snapshots on a line are reproduced exactly by every
// fold, so all errors vanish.
func TestLOOError_RankOne(t *testing.T) {
	base := []float64{1, 2, 3, 4}
	rows := make([][]float64, 3)
	for i := range rows {
		c := float64(i + 1)
		rows[i] = []float64{c * base[0], c * base[1], c * base[2], c * base[3]}
	}

	errs, err := pod.LOOError(linePoints(t, 3), mustSnapshots(t, rows, nil))
	require.NoError(t, err)
	require.Len(t, errs, 3)
	for j, e := range errs {
		assert.InDelta(t, 0.0, e, 1e-12, "fold %d", j)
	}
}

// TestLOOError_Orthogonal: each unit vector is orthogonal to the span of the
// others, so the whole vector is residual; all metrics agree on 1.
func TestLOOError_Orthogonal(t *testing.T) {
	rows := [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	points := linePoints(t, 3)
	snaps := mustSnapshots(t, rows, nil)

	for name, m := range map[string]pod.Metric{
		"euclidean": pod.EuclideanNorm,
		"manhattan": pod.ManhattanNorm,
		"max":       pod.MaxNorm,
	} {
		t.Run(name, func(t *testing.T) {
			errs, err := pod.LOOError(points, snaps, pod.WithMetric(m))
			require.NoError(t, err)
			assert.InDeltaSlice(t, []float64{1, 1, 1}, errs, 1e-12)
		})
	}
}

// TestLOOError_WeightedProjectionIsLiteral pins the plain-dot-product
// projection under non-uniform weights. With w = (4, 1) and snapshots
// c·(1, 0): proj = (weighted_j · B₁) B₁ = (2c·2)(2, 0) = (8c, 0), so the
// residual is (-7c·4, 0) and the error is 28c relative to ‖(1, 0)‖.
func TestLOOError_WeightedProjectionIsLiteral(t *testing.T) {
	rows := [][]float64{{1, 0}, {2, 0}, {3, 0}}
	errs, err := pod.LOOError(linePoints(t, 3), mustSnapshots(t, rows, []float64{4, 1}))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{28, 56, 84}, errs, 1e-9)
}

// TestLOOError_ReferenceIsFirstSnapshot: scaling the first snapshot scales
// every error by the inverse factor.
func TestLOOError_ReferenceIsFirstSnapshot(t *testing.T) {
	rows := [][]float64{{2, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	errs, err := pod.LOOError(linePoints(t, 3), mustSnapshots(t, rows, nil))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 0.5, 0.5}, errs, 1e-12)
}

// TestLOOError_ShapeAndSign runs a random family and checks the contract.
func TestLOOError_ShapeAndSign(t *testing.T) {
	const n = 7
	errs, err := pod.LOOError(linePoints(t, n), mustSnapshots(t, randomRows(21, n, 12), nil))
	require.NoError(t, err)
	require.Len(t, errs, n)
	for _, e := range errs {
		assert.GreaterOrEqual(t, e, 0.0)
	}
}

// TestLOOError_Failures covers degenerate and malformed input.
func TestLOOError_Failures(t *testing.T) {
	_, err := pod.LOOError(linePoints(t, 1), mustSnapshots(t, [][]float64{{1, 2}}, nil))
	assert.ErrorIs(t, err, pod.ErrDegenerateFold)

	_, err = pod.LOOError(linePoints(t, 2), mustSnapshots(t, randomRows(22, 3, 2), nil))
	assert.ErrorIs(t, err, pod.ErrSizeMismatch)

	_, err = pod.LOOError(nil, mustSnapshots(t, randomRows(22, 3, 2), nil))
	assert.ErrorIs(t, err, pod.ErrNilInput)

	_, err = pod.LOOError(linePoints(t, 2), mustSnapshots(t, [][]float64{{0, 0}, {1, 1}}, nil))
	assert.ErrorIs(t, err, pod.ErrZeroReference)
}

// TestLOOError_Logging checks one Debug event per fold.
func TestLOOError_Logging(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf).Level(zerolog.DebugLevel)
	_, err := pod.LOOError(linePoints(t, 4), mustSnapshots(t, randomRows(23, 4, 5), nil), pod.WithLOOLogger(l))
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(buf.String(), "loo fold evaluated"))
}

// TestMetricByName resolves names and aliases.
func TestMetricByName(t *testing.T) {
	v := []float64{3, -4}
	for name, want := range map[string]float64{
		"euclidean": 5, "l2": 5,
		"manhattan": 7, "l1": 7,
		"max": 4, "linf": 4,
	} {
		m, err := pod.MetricByName(name)
		require.NoError(t, err, name)
		assert.InDelta(t, want, m(v), 1e-15, name)
	}
	_, err := pod.MetricByName("cosine")
	assert.ErrorIs(t, err, pod.ErrUnknownMetric)
}
