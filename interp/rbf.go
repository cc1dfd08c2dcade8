package interp

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var _ Interpolator = (*RBF)(nil)

// Kernel selects the radial function φ(r) of an RBF interpolant.
// ε is the shape parameter.
type Kernel int

const (
	// Multiquadric: sqrt((r/ε)² + 1).
	Multiquadric Kernel = iota
	// InverseMultiquadric: 1 / sqrt((r/ε)² + 1).
	InverseMultiquadric
	// Gaussian: exp(-(r/ε)²).
	Gaussian
	// LinearKernel: r.
	LinearKernel
	// Cubic: r³.
	Cubic
	// Quintic: r⁵.
	Quintic
	// ThinPlate: r² log r (0 at r = 0).
	ThinPlate
)

var kernelNames = map[Kernel]string{
	Multiquadric:        "multiquadric",
	InverseMultiquadric: "inverse",
	Gaussian:            "gaussian",
	LinearKernel:        "linear",
	Cubic:               "cubic",
	Quintic:             "quintic",
	ThinPlate:           "thin_plate",
}

// ErrUnknownKernel is returned by KernelByName for an unrecognized name.
var ErrUnknownKernel = errors.New("interp: unknown kernel")

// String returns the kernel's configuration name.
func (k Kernel) String() string {
	if s, ok := kernelNames[k]; ok {
		return s
	}

	return "unknown"
}

// KernelByName resolves a configuration name such as "gaussian".
func KernelByName(name string) (Kernel, error) {
	for k, s := range kernelNames {
		if s == name {
			return k, nil
		}
	}

	return 0, interpErrorf("KernelByName "+name, ErrUnknownKernel)
}

func (k Kernel) phi(r, eps float64) float64 {
	switch k {
	case InverseMultiquadric:
		q := r / eps
		return 1 / math.Sqrt(q*q+1)
	case Gaussian:
		q := r / eps
		return math.Exp(-q * q)
	case LinearKernel:
		return r
	case Cubic:
		return r * r * r
	case Quintic:
		return r * r * r * r * r
	case ThinPlate:
		if r == 0 {
			return 0
		}
		return r * r * math.Log(r)
	default:
		q := r / eps
		return math.Sqrt(q*q + 1)
	}
}

// RBFOption configures an RBF factory.
type RBFOption func(*rbfConfig)

type rbfConfig struct {
	shape float64 // 0 ⇒ derive from node spread
}

// WithShape fixes the shape parameter ε instead of deriving it from the
// node bounding box. Panics if eps is not finite and positive.
func WithShape(eps float64) RBFOption {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicShapeInvalid)
	}

	return func(c *rbfConfig) { c.shape = eps }
}

// RBF is a radial-basis-function interpolant over N nodes in d_p dimensions.
// All k output columns share one kernel matrix; each has its own weights.
type RBF struct {
	kernel  Kernel
	eps     float64
	nodes   *mat.Dense // N×d_p
	weights *mat.Dense // N×k
}

// NewRBF returns a Factory that fits RBF interpolants with the given kernel.
//
// The fit solves (Φ − s·I)·W = Y where Φ[i,j] = φ(‖xᵢ − xⱼ‖) and s is the
// smoothness from WithSmoothness (0 ⇒ exact interpolation at the nodes).
// A singular system fails with ErrSingularSystem.
func NewRBF(kernel Kernel, opts ...RBFOption) Factory {
	var cfg rbfConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(points, values mat.Matrix, fitOpts ...FitOption) (Interpolator, error) {
		n, _, _, err := validateFit(points, values)
		if err != nil {
			return nil, interpErrorf("RBF.Fit", err)
		}
		smooth := GatherFitOptions(fitOpts...).Smoothness()

		nodes := mat.DenseCopyOf(points)
		eps := cfg.shape
		if eps == 0 {
			eps = defaultShape(nodes)
		}

		a := mat.NewDense(n, n, nil)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				r := floats.Distance(nodes.RawRowView(i), nodes.RawRowView(j), 2)
				a.Set(i, j, kernel.phi(r, eps))
			}
			a.Set(i, i, a.At(i, i)-smooth)
		}

		var w mat.Dense
		if err := w.Solve(a, values); err != nil {
			var cond mat.Condition
			if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
				return nil, interpErrorf("RBF.Fit", ErrSingularSystem)
			}
		}

		return &RBF{kernel: kernel, eps: eps, nodes: nodes, weights: &w}, nil
	}
}

// defaultShape is (Π edges / N)^(1/len(edges)) over the non-zero extents of
// the node bounding box; 1 when every node coincides.
func defaultShape(nodes *mat.Dense) float64 {
	n, dim := nodes.Dims()
	prod, used := 1.0, 0
	col := make([]float64, n)
	for c := 0; c < dim; c++ {
		mat.Col(col, c, nodes)
		if edge := floats.Max(col) - floats.Min(col); edge > 0 {
			prod *= edge
			used++
		}
	}
	if used == 0 {
		return 1
	}

	return math.Pow(prod/float64(n), 1/float64(used))
}

// Dim returns the node dimension.
func (r *RBF) Dim() int {
	_, d := r.nodes.Dims()
	return d
}

// Outputs returns the number of interpolated columns.
func (r *RBF) Outputs() int {
	_, k := r.weights.Dims()
	return k
}

// Shape returns the shape parameter ε in use.
func (r *RBF) Shape() float64 { return r.eps }

// Evaluate returns Φ(points, nodes)·W for an M×d_p query matrix.
func (r *RBF) Evaluate(points mat.Matrix) (*mat.Dense, error) {
	m, err := validateQuery(points, r.Dim())
	if err != nil {
		return nil, interpErrorf("RBF.Evaluate", err)
	}

	n, _ := r.nodes.Dims()
	phi := mat.NewDense(m, n, nil)
	q := make([]float64, r.Dim())
	for i := 0; i < m; i++ {
		mat.Row(q, i, points)
		for j := 0; j < n; j++ {
			phi.Set(i, j, r.kernel.phi(floats.Distance(q, r.nodes.RawRowView(j), 2), r.eps))
		}
	}

	out := mat.NewDense(m, r.Outputs(), nil)
	out.Mul(phi, r.weights)

	return out, nil
}
