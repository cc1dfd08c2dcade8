// Package reducedbasis is a toolkit for building non-intrusive reduced-order
// surrogates from precomputed snapshots.
//
// 🚀 What is reducedbasis?
//
//	A small, dependency-light set of packages that brings together:
//		• Parametric containers: points and weighted snapshots with validation
//		• Reduced basis: weighted Proper Orthogonal Decomposition via thin SVD
//		• Coefficient interpolation: piecewise linear (1-D) and radial basis functions
//		• Error estimation: leave-one-out relative reconstruction error
//		• Tooling: YAML datasets and the podrb command-line tool
//
// Under the hood everything is organized under these subpackages:
//
//	parametric/ — Points and Snapshots, the immutable training containers
//	interp/     — Interpolator contract, Linear and RBF strategies
//	pod/        — Builder (Generate/Evaluate), Spectrum and LOOError
//	dataset/    — YAML dataset decoding
//	cmd/podrb/  — predict, loo and spectrum subcommands
//
// Quick example:
//
//	points, _ := parametric.NewPoints([][]float64{{0}, {1}, {2}})
//	snaps, _ := parametric.NewSnapshots([][]float64{{1, 0}, {0, 1}, {1, 1}}, nil)
//
//	var b pod.Builder
//	_ = b.Generate(points, snaps, interp.NewLinear, pod.WithTruncate(2))
//	v, _ := b.EvaluatePoint([]float64{0.5}) // ≈ [0.5 0.5]
//
//	go get github.com/katalvlaran/reducedbasis
package reducedbasis
