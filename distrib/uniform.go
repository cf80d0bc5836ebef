package distrib

import (
	"math"
	"strings"

	"github.com/katalvlaran/randist/randsrc"
)

// Uniform is the continuous uniform distribution over [low, high].
//
// Parameters are broadcastable Vecs, immutable after construction, with
// the elementwise invariant low ≤ high.
type Uniform struct {
	low  Vec
	high Vec
	name string
}

var _ ContinuousRV = (*Uniform)(nil)

// NewUniform builds a Uniform distribution from broadcastable low/high
// parameters, copying them. Errors mirror NewTriangular: ErrEmptyVec,
// ErrBroadcast, ErrNonFinite, and ErrParamOrder when low > high for some
// element.
func NewUniform(low, high Vec, opts ...Option) (*Uniform, error) {
	u := &Uniform{
		low:  low.clone(),
		high: high.clone(),
		name: gatherOptions(opts).name,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate re-runs the construction-time parameter checks.
func (u *Uniform) Validate() error {
	n, err := broadcastLen(u.low, u.high)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		lo, hi := u.low.at(i), u.high.at(i)
		if !isFinite(lo) || !isFinite(hi) {
			return ErrNonFinite
		}
		if !(lo <= hi) {
			return ErrParamOrder
		}
	}

	return nil
}

// Low returns a copy of the lower-bound parameter.
func (u *Uniform) Low() Vec { return u.low.clone() }

// High returns a copy of the upper-bound parameter.
func (u *Uniform) High() Vec { return u.high.clone() }

// Name returns the display label, or "" when none was given.
func (u *Uniform) Name() string { return u.name }

// LogPDF returns -ln(high-low) for x in [low, high] and -Inf outside,
// elementwise over the broadcast of x against the parameters.
func (u *Uniform) LogPDF(x Vec) (Vec, error) {
	n, err := broadcastLen(x, u.low, u.high)
	if err != nil {
		return nil, err
	}
	out := make(Vec, n)
	for i := 0; i < n; i++ {
		xi, lo, hi := x.at(i), u.low.at(i), u.high.at(i)
		if xi < lo || xi > hi {
			out[i] = math.Inf(-1)
		} else {
			out[i] = -math.Log(hi - lo)
		}
	}

	return out, nil
}

// PDF returns exp(LogPDF(x)).
func (u *Uniform) PDF(x Vec) (Vec, error) {
	return expVec(u.LogPDF(x))
}

// LogCDF returns the log of the linear ramp (x-low)/(high-low), saturated
// to -Inf below low and 0 at or above high.
func (u *Uniform) LogCDF(x Vec) (Vec, error) {
	n, err := broadcastLen(x, u.low, u.high)
	if err != nil {
		return nil, err
	}
	out := make(Vec, n)
	for i := 0; i < n; i++ {
		xi, lo, hi := x.at(i), u.low.at(i), u.high.at(i)
		switch {
		case xi < lo:
			out[i] = math.Inf(-1)
		case xi >= hi:
			out[i] = 0
		default:
			out[i] = math.Log(xi-lo) - math.Log(hi-lo)
		}
	}

	return out, nil
}

// CDF returns exp(LogCDF(x)).
func (u *Uniform) CDF(x Vec) (Vec, error) {
	return expVec(u.LogCDF(x))
}

// Quantile returns low + p·(high-low) elementwise. As with Triangular,
// no domain check is performed on p; out-of-range p extrapolates linearly
// beyond the support.
func (u *Uniform) Quantile(p Vec) (Vec, error) {
	n, err := broadcastLen(p, u.low, u.high)
	if err != nil {
		return nil, err
	}
	out := make(Vec, n)
	for i := 0; i < n; i++ {
		lo, hi := u.low.at(i), u.high.at(i)
		out[i] = lo + p.at(i)*(hi-lo)
	}

	return out, nil
}

// Sample draws n independent uniform variates using src. Errors mirror
// Triangular.Sample.
func (u *Uniform) Sample(src *randsrc.Source, n int) (Vec, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if n < 1 {
		return nil, ErrSampleCount
	}
	if _, err := broadcastLen(make(Vec, n), u.low, u.high); err != nil {
		return nil, err
	}
	out := make(Vec, n)
	for i := 0; i < n; i++ {
		lo, hi := u.low.at(i), u.high.at(i)
		out[i] = lo + src.Float64()*(hi-lo)
	}

	return out, nil
}

// Mean returns (low + high) / 2 elementwise.
func (u *Uniform) Mean() Vec {
	n, _ := broadcastLen(u.low, u.high) // validated at construction
	out := make(Vec, n)
	for i := 0; i < n; i++ {
		out[i] = (u.low.at(i) + u.high.at(i)) / 2
	}

	return out
}

// Variance returns (high-low)² / 12 elementwise.
func (u *Uniform) Variance() Vec {
	n, _ := broadcastLen(u.low, u.high) // validated at construction
	out := make(Vec, n)
	for i := 0; i < n; i++ {
		d := u.high.at(i) - u.low.at(i)
		out[i] = d * d / 12
	}

	return out
}

// String renders "Uniform(low=…, high=…[, name=…])".
func (u *Uniform) String() string {
	var b strings.Builder
	b.WriteString("Uniform(low=")
	b.WriteString(formatVec(u.low))
	b.WriteString(", high=")
	b.WriteString(formatVec(u.high))
	if u.name != "" {
		b.WriteString(", name=")
		b.WriteString(u.name)
	}
	b.WriteString(")")

	return b.String()
}
