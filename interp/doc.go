// Package interp defines the coefficient-interpolation contract used by the
// reduced-basis builder, together with two concrete strategies.
//
// 🚀 Contract:
//
//	Factory      — fit(points N×d_p, values N×k[, smoothness]) → Interpolator
//	Interpolator — evaluate(points M×d_p) → M×k predictions
//
// The builder never inspects an interpolator; any regression backend that
// satisfies the two types can be plugged in.
//
// ✨ Strategies:
//   - Linear — exact piecewise-linear interpolation along one parameter.
//   - RBF    — scattered-data radial-basis interpolation in any dimension,
//     with optional smoothing. Kernels: multiquadric (default), inverse
//     multiquadric, gaussian, linear, cubic, quintic, thin-plate.
//
// ⚙️ Usage:
//
//	f := interp.NewRBF(interp.Gaussian, interp.WithShape(0.5))
//	ip, err := f(points, coefs, interp.WithSmoothness(1e-3))
//	pred, err := ip.Evaluate(query)
package interp
