// SPDX-License-Identifier: MIT

package pod

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Metric reduces an error vector to a non-negative scalar.
type Metric func(v []float64) float64

// EuclideanNorm is the L2 norm. It is the default LOO metric.
func EuclideanNorm(v []float64) float64 { return floats.Norm(v, 2) }

// ManhattanNorm is the L1 norm.
func ManhattanNorm(v []float64) float64 { return floats.Norm(v, 1) }

// MaxNorm is the L∞ norm.
func MaxNorm(v []float64) float64 { return floats.Norm(v, math.Inf(1)) }

// MetricByName resolves "euclidean", "manhattan" or "max".
func MetricByName(name string) (Metric, error) {
	switch name {
	case "euclidean", "l2":
		return EuclideanNorm, nil
	case "manhattan", "l1":
		return ManhattanNorm, nil
	case "max", "linf":
		return MaxNorm, nil
	default:
		return nil, podErrorf("MetricByName "+name, ErrUnknownMetric)
	}
}
