// SPDX-License-Identifier: MIT

// Package pod builds a weighted Proper Orthogonal Decomposition (POD)
// surrogate over a family of snapshots indexed by parametric points, and
// estimates its reconstruction error by leave-one-out.
//
// 🚀 What does it do?
//
//	Generate — weighted thin SVD of the snapshot matrix, un-weighted reduced
//	           basis, modal coefficients on the leading `truncate` vectors,
//	           and a fitted coefficient interpolator (interp.Factory).
//	Evaluate — interpolate coefficients at new points and lift them back to
//	           the full snapshot space: basis[:, :r] · coefsᵀ.
//	LOOError — for every snapshot j, rebuild the basis without j, project j
//	           onto it and report the weighted residual norm relative to the
//	           first snapshot's norm.
//
// ✨ Properties:
//   - Deterministic: no randomness, no goroutines, fixed loop orders.
//   - All-or-nothing: a failed Generate leaves the previous model intact.
//   - Pluggable: the interpolation strategy is an injected interp.Factory;
//     other reduction strategies implement the same Space interface.
//
// ⚙️ Usage:
//
//	var b pod.Builder
//	err := b.Generate(points, snaps, interp.NewRBF(interp.Multiquadric),
//	    pod.WithTruncate(5), pod.WithSmoothness(1e-4))
//	approx, err := b.Evaluate(mat.NewDense(1, 2, []float64{0.3, 1.7}))
//
//	errs, err := pod.LOOError(points, snaps, pod.WithMetric(pod.MaxNorm))
//
// Concurrency: a Builder is not safe for concurrent Generate/Evaluate;
// serialize access or use one Builder per goroutine. LOOError shares no
// state and may be called concurrently.
//
// Performance:
//
//   - Generate: one thin SVD, O(d_s·N·min(d_s, N)).
//   - LOOError: N thin SVDs of d_s×(N−1) folds, recomputed from scratch.
package pod
