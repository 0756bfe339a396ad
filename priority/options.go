// SPDX-License-Identifier: MIT

package priority

import "math"

// DefaultThreshold is the conventional CR acceptability bound.
const DefaultThreshold = 0.10

const (
	panicThresholdInvalid = "priority: WithThreshold: threshold must be finite and > 0"
	panicFallbackInvalid  = "priority: WithRandomIndexFallback: value must be finite and > 0"
)

// Option configures Compute.
type Option func(*Options)

// Options is the resolved configuration; fields are unexported.
type Options struct {
	threshold  float64
	riFallback float64
}

// WithThreshold sets the CR bound below which a matrix counts as consistent.
// Panics on NaN, ±Inf or non-positive values.
func WithThreshold(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = t }
}

// WithRandomIndexFallback sets the RI used for n beyond the tabulated range.
// Panics on NaN, ±Inf or non-positive values.
func WithRandomIndexFallback(ri float64) Option {
	if math.IsNaN(ri) || math.IsInf(ri, 0) || ri <= 0 {
		panic(panicFallbackInvalid)
	}

	return func(o *Options) { o.riFallback = ri }
}

func gatherOptions(opts ...Option) Options {
	o := Options{threshold: DefaultThreshold, riFallback: DefaultRandomIndexFallback}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
