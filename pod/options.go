// SPDX-License-Identifier: MIT

// Package pod: functional options for the builder, a single Generate call
// and the leave-one-out estimator.
//
// Constructors panic only on values that are wrong regardless of the data
// (negative smoothness, nil metric). Data-dependent checks such as the
// truncation rank happen in Generate and surface as errors.
package pod

import (
	"math"

	"github.com/rs/zerolog"
)

// DefaultSmoothness disables smoothing: the factory is called without
// interp.WithSmoothness.
const DefaultSmoothness = 0.0

const (
	panicSmoothnessInvalid = "pod: WithSmoothness: smoothness must be finite, non-negative"
	panicMetricNil         = "pod: WithMetric: metric must be non-nil"
)

// Option configures a Builder.
type Option func(*Builder)

// WithLogger attaches a logger. Builders log at Debug level only.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Builder) { b.log = &l }
}

// GenerateOption configures one Generate call.
type GenerateOption func(*generateOptions)

type generateOptions struct {
	truncate    int
	hasTruncate bool
	smoothness  float64
}

// WithTruncate keeps the leading r basis vectors. Without it Generate keeps
// the full rank. r is validated against the data inside Generate.
func WithTruncate(r int) GenerateOption {
	return func(o *generateOptions) {
		o.truncate = r
		o.hasTruncate = true
	}
}

// WithSmoothness forwards a smoothing strength to the interpolator factory.
// Zero means exact interpolation and is not forwarded.
// Panics if s is negative or non-finite.
func WithSmoothness(s float64) GenerateOption {
	if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
		panic(panicSmoothnessInvalid)
	}

	return func(o *generateOptions) { o.smoothness = s }
}

func gatherGenerateOptions(opts ...GenerateOption) generateOptions {
	o := generateOptions{smoothness: DefaultSmoothness}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// LOOOption configures LOOError.
type LOOOption func(*looOptions)

type looOptions struct {
	metric Metric
	log    zerolog.Logger
}

// WithMetric sets the scalar error reduction. Default EuclideanNorm.
// Panics on a nil metric.
func WithMetric(m Metric) LOOOption {
	if m == nil {
		panic(panicMetricNil)
	}

	return func(o *looOptions) { o.metric = m }
}

// WithLOOLogger attaches a logger for per-fold Debug events.
func WithLOOLogger(l zerolog.Logger) LOOOption {
	return func(o *looOptions) { o.log = l }
}

func gatherLOOOptions(opts ...LOOOption) looOptions {
	o := looOptions{metric: EuclideanNorm, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
