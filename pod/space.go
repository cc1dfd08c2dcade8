// SPDX-License-Identifier: MIT

package pod

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/reducedbasis/interp"
	"github.com/katalvlaran/reducedbasis/parametric"
)

// Space is a reduced parametric-space model: built once from training data,
// then evaluated at new parametric points. Builder is the POD implementation;
// other reduction strategies can satisfy the same interface.
type Space interface {
	// Generate builds the model from aligned points and snapshots.
	Generate(points *parametric.Points, snaps *parametric.Snapshots, factory interp.Factory, opts ...GenerateOption) error
	// Evaluate approximates the snapshots at M points (M×d_p) as a d_s×M matrix.
	Evaluate(value mat.Matrix) (*mat.Dense, error)
}

var _ Space = (*Builder)(nil)
