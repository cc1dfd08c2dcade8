// SPDX-License-Identifier: MIT

// Package parametric holds the two data collaborators of a reduced-basis
// model: the parametric points where an expensive computation was run, and
// the snapshots (full-dimensional outputs) it produced.
//
// 🚀 What lives here?
//
//	Points    — N parameter vectors of dimension d_p, one per row.
//	Snapshots — N output vectors of dimension d_s, aligned index-for-index
//	            with the points, plus a per-component weight vector
//	            (quadrature or mass-matrix diagonal).
//
// ✨ Guarantees:
//   - Containers are immutable once built; every accessor returns a copy.
//   - The weighted snapshot matrix is computed once, at construction:
//     Weighted()[:, i] == sqrt(Weights()) * Value(i) for every i.
//   - Subset views re-derive the weighted matrix from the parent's weights,
//     so leave-one-out folds carry the same weighting explicitly.
//
// ⚙️ Usage:
//
//	pts, err := parametric.NewPoints([][]float64{{0}, {1}, {2}})
//	snaps, err := parametric.NewSnapshots(rows, weights) // nil weights ⇒ all ones
//	fold, err := snaps.Subset(parametric.Without(snaps.Size(), 0))
package parametric
