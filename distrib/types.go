// Package distrib: common distribution surface and construction options.
// This file declares the ContinuousRV interface implemented by every
// distribution in the package, plus the functional Option set consumed by
// the New* constructors.
package distrib

import (
	"fmt"

	"github.com/katalvlaran/randist/randsrc"
)

// ContinuousRV is the surface shared by every continuous distribution in
// this package.
//
// Contracts:
//   - PDF(x) == exp(LogPDF(x)) and CDF(x) == exp(LogCDF(x)) elementwise.
//   - Density/CDF evaluation is total: out-of-support x saturates to
//     -Inf (log scale) rather than erroring.
//   - Quantile performs no domain check on p; inputs outside [0,1]
//     yield NaN (see the per-distribution docs).
//   - Sample draws n independent variates from an explicit source; the
//     caller owns source uniqueness across calls (randsrc.Source.Split).
//   - Implementations are immutable after construction, so concurrent
//     reads need no locking.
type ContinuousRV interface {
	// LogPDF returns the natural log of the density at x, elementwise.
	LogPDF(x Vec) (Vec, error)
	// PDF returns exp(LogPDF(x)).
	PDF(x Vec) (Vec, error)
	// LogCDF returns the natural log of the cumulative distribution at x.
	LogCDF(x Vec) (Vec, error)
	// CDF returns exp(LogCDF(x)).
	CDF(x Vec) (Vec, error)
	// Quantile maps cumulative probabilities back to values (inverse CDF).
	Quantile(p Vec) (Vec, error)
	// Sample draws n variates using src as the random-bit source.
	Sample(src *randsrc.Source, n int) (Vec, error)
	// Mean returns the closed-form expectation, elementwise over parameters.
	Mean() Vec
	// Variance returns the closed-form variance, elementwise over parameters.
	Variance() Vec
	// Validate re-runs the construction-time parameter checks.
	Validate() error

	fmt.Stringer
}

// Option configures optional distribution attributes at construction.
type Option func(*settings)

// settings accumulates Option values; fields are unexported so the only
// way to set them is through the With* constructors.
type settings struct {
	name string
}

// WithName attaches a display label to the distribution, surfaced by
// String(). The label has no effect on any numeric operation.
func WithName(name string) Option {
	return func(s *settings) {
		s.name = name
	}
}

// gatherOptions folds opts into a settings value.
func gatherOptions(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	return s
}
