package interp

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

var _ Interpolator = (*Linear)(nil)

// Linear is an exact piecewise-linear interpolant over one parameter.
//
// Between consecutive nodes the prediction is the straight line through the
// two node values; beyond the end nodes the first/last segment is
// extended. A single node gives a constant. At a node the prediction is the
// node value itself, bit for bit.
type Linear struct {
	nodes  []float64  // ascending, distinct
	values *mat.Dense // len(nodes)×k, rows follow nodes
}

// NewLinear fits a Linear interpolant. It satisfies Factory.
//
// Errors:
//   - ErrEmpty, ErrDimensionMismatch — malformed input.
//   - ErrUnsupportedDim              — points have more than one column.
//   - ErrDuplicateNode               — two points share a coordinate.
//   - ErrSmoothingUnsupported        — non-zero WithSmoothness.
func NewLinear(points, values mat.Matrix, opts ...FitOption) (Interpolator, error) {
	n, dim, k, err := validateFit(points, values)
	if err != nil {
		return nil, interpErrorf("NewLinear", err)
	}
	if dim != 1 {
		return nil, interpErrorf("NewLinear", ErrUnsupportedDim)
	}
	if GatherFitOptions(opts...).Smoothness() != 0 {
		return nil, interpErrorf("NewLinear", ErrSmoothingUnsupported)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return points.At(order[a], 0) < points.At(order[b], 0) })

	l := &Linear{nodes: make([]float64, n), values: mat.NewDense(n, k, nil)}
	for r, i := range order {
		l.nodes[r] = points.At(i, 0)
		if r > 0 && l.nodes[r] == l.nodes[r-1] {
			return nil, interpErrorf("NewLinear", ErrDuplicateNode)
		}
		for c := 0; c < k; c++ {
			l.values.Set(r, c, values.At(i, c))
		}
	}

	return l, nil
}

// Dim returns 1.
func (l *Linear) Dim() int { return 1 }

// Outputs returns the number of interpolated columns.
func (l *Linear) Outputs() int {
	_, k := l.values.Dims()
	return k
}

// Evaluate interpolates every row of points (M×1).
func (l *Linear) Evaluate(points mat.Matrix) (*mat.Dense, error) {
	m, err := validateQuery(points, 1)
	if err != nil {
		return nil, interpErrorf("Linear.Evaluate", err)
	}

	k := l.Outputs()
	out := mat.NewDense(m, k, nil)
	for r := 0; r < m; r++ {
		l.at(points.At(r, 0), out.RawRowView(r))
	}

	return out, nil
}

// at writes the prediction for x into dst.
func (l *Linear) at(x float64, dst []float64) {
	n := len(l.nodes)
	i := sort.SearchFloat64s(l.nodes, x)
	if i < n && l.nodes[i] == x {
		copy(dst, l.values.RawRowView(i))
		return
	}
	if n == 1 {
		copy(dst, l.values.RawRowView(0))
		return
	}

	lo := i - 1
	if lo < 0 {
		lo = 0
	}
	if lo > n-2 {
		lo = n - 2
	}
	t := (x - l.nodes[lo]) / (l.nodes[lo+1] - l.nodes[lo])
	a, b := l.values.RawRowView(lo), l.values.RawRowView(lo+1)
	for c := range dst {
		dst[c] = a[c] + t*(b[c]-a[c])
	}
}
