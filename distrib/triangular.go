package distrib

import (
	"math"
	"strings"

	"github.com/katalvlaran/randist/randsrc"
)

// Triangular is the continuous triangular distribution over [low, high]
// with density peaking at mode.
//
// Parameters are broadcastable Vecs (scalars are length-1 Vecs) and are
// immutable after construction. The ordering invariant low ≤ mode ≤ high
// must hold for every broadcast element; NewTriangular enforces it and
// Validate re-checks it on demand.
//
// Degenerate shapes are allowed: low == mode gives the decreasing ramp,
// mode == high the increasing ramp.
type Triangular struct {
	low  Vec
	mode Vec
	high Vec
	name string
}

// Triangular implements the full ContinuousRV surface.
var _ ContinuousRV = (*Triangular)(nil)

// NewTriangular builds a Triangular distribution from broadcastable
// low/mode/high parameters, copying them so later mutation of the
// caller's slices cannot break the validated invariant.
//
// Errors:
//   - ErrEmptyVec    — any parameter has length 0.
//   - ErrBroadcast   — parameter lengths are not mutually broadcastable.
//   - ErrNonFinite   — any parameter element is NaN or ±Inf.
//   - ErrParamOrder  — low ≤ mode ≤ high fails for some element.
func NewTriangular(low, mode, high Vec, opts ...Option) (*Triangular, error) {
	t := &Triangular{
		low:  low.clone(),
		mode: mode.clone(),
		high: high.clone(),
		name: gatherOptions(opts).name,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate re-runs the construction-time parameter checks: broadcast
// compatibility, finiteness, and the elementwise ordering invariant.
func (t *Triangular) Validate() error {
	n, err := broadcastLen(t.low, t.mode, t.high)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		lo, md, hi := t.low.at(i), t.mode.at(i), t.high.at(i)
		if !isFinite(lo) || !isFinite(md) || !isFinite(hi) {
			return ErrNonFinite
		}
		if !(lo <= md && md <= hi) {
			return ErrParamOrder
		}
	}

	return nil
}

// Low returns a copy of the lower-bound parameter.
func (t *Triangular) Low() Vec { return t.low.clone() }

// Mode returns a copy of the mode parameter.
func (t *Triangular) Mode() Vec { return t.mode.clone() }

// High returns a copy of the upper-bound parameter.
func (t *Triangular) High() Vec { return t.high.clone() }

// Name returns the display label, or "" when none was given.
func (t *Triangular) Name() string { return t.name }

// LogPDF returns the natural log of the triangular density at x,
// elementwise over the broadcast of x against the parameters:
//
//	x < low          → -Inf
//	low ≤ x < mode   → ln 2 + ln(x-low)  - ln(high-low) - ln(mode-low)
//	x == mode        → ln 2 - ln(high-low)
//	mode < x ≤ high  → ln 2 + ln(high-x) - ln(high-low) - ln(high-mode)
//	x > high         → -Inf
//
// Out-of-support x is not an error; the -Inf result is the contract.
func (t *Triangular) LogPDF(x Vec) (Vec, error) {
	n, err := broadcastLen(x, t.low, t.mode, t.high)
	if err != nil {
		return nil, err
	}
	out := make(Vec, n)
	for i := 0; i < n; i++ {
		out[i] = triLogPDF(x.at(i), t.low.at(i), t.mode.at(i), t.high.at(i))
	}

	return out, nil
}

// PDF returns exp(LogPDF(x)).
func (t *Triangular) PDF(x Vec) (Vec, error) {
	return expVec(t.LogPDF(x))
}

// LogCDF returns the natural log of the cumulative distribution at x,
// elementwise over the broadcast of x against the parameters:
//
//	x < low          → -Inf
//	low ≤ x < mode   → 2·ln(x-low) - ln(high-low) - ln(mode-low)
//	x == mode        → ln 0.5
//	mode < x < high  → ln(1 - (high-x)²/((high-low)(high-mode)))
//	x ≥ high         → 0
func (t *Triangular) LogCDF(x Vec) (Vec, error) {
	n, err := broadcastLen(x, t.low, t.mode, t.high)
	if err != nil {
		return nil, err
	}
	out := make(Vec, n)
	for i := 0; i < n; i++ {
		out[i] = triLogCDF(x.at(i), t.low.at(i), t.mode.at(i), t.high.at(i))
	}

	return out, nil
}

// CDF returns exp(LogCDF(x)).
func (t *Triangular) CDF(x Vec) (Vec, error) {
	return expVec(t.LogCDF(x))
}

// Quantile returns the inverse CDF at p, elementwise over the broadcast
// of p against the parameters. With Fc = CDF(mode):
//
//	p <  Fc → low  + sqrt(p·(mode-low)·(high-low))
//	p >= Fc → high - sqrt((1-p)·(high-low)·(high-mode))
//
// Quantile performs no domain check: p outside [0,1] feeds a negative
// value to sqrt and yields NaN.
func (t *Triangular) Quantile(p Vec) (Vec, error) {
	n, err := broadcastLen(p, t.low, t.mode, t.high)
	if err != nil {
		return nil, err
	}
	out := make(Vec, n)
	for i := 0; i < n; i++ {
		lo, md, hi := t.low.at(i), t.mode.at(i), t.high.at(i)
		fc := math.Exp(triLogCDF(md, lo, md, hi))
		out[i] = triQuantile(p.at(i), fc, lo, md, hi)
	}

	return out, nil
}

// Sample draws n independent triangular variates by inversion, using src
// as the random-bit source. Vector-valued parameters must broadcast
// against n (length 1 or n).
//
// Errors:
//   - ErrNilSource   — src is nil.
//   - ErrSampleCount — n < 1.
//   - ErrBroadcast   — parameter length is neither 1 nor n.
func (t *Triangular) Sample(src *randsrc.Source, n int) (Vec, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if n < 1 {
		return nil, ErrSampleCount
	}
	if _, err := broadcastLen(make(Vec, n), t.low, t.mode, t.high); err != nil {
		return nil, err
	}
	out := make(Vec, n)
	for i := 0; i < n; i++ {
		lo, md, hi := t.low.at(i), t.mode.at(i), t.high.at(i)
		out[i] = triSample(src.Float64(), lo, md, hi)
	}

	return out, nil
}

// Mean returns (low + mode + high) / 3 elementwise.
func (t *Triangular) Mean() Vec {
	n, _ := broadcastLen(t.low, t.mode, t.high) // validated at construction
	out := make(Vec, n)
	for i := 0; i < n; i++ {
		out[i] = (t.low.at(i) + t.mode.at(i) + t.high.at(i)) / 3
	}

	return out
}

// Variance returns
// (low² + mode² + high² - low·mode - low·high - mode·high) / 18
// elementwise.
func (t *Triangular) Variance() Vec {
	n, _ := broadcastLen(t.low, t.mode, t.high) // validated at construction
	out := make(Vec, n)
	for i := 0; i < n; i++ {
		lo, md, hi := t.low.at(i), t.mode.at(i), t.high.at(i)
		out[i] = (lo*lo + md*md + hi*hi - lo*md - lo*hi - md*hi) / 18
	}

	return out
}

// String renders "Triangular(low=…, mode=…, high=…[, name=…])", omitting
// the name clause when no name was given. Scalar parameters print as bare
// numbers, vector parameters as slices.
func (t *Triangular) String() string {
	var b strings.Builder
	b.WriteString("Triangular(low=")
	b.WriteString(formatVec(t.low))
	b.WriteString(", mode=")
	b.WriteString(formatVec(t.mode))
	b.WriteString(", high=")
	b.WriteString(formatVec(t.high))
	if t.name != "" {
		b.WriteString(", name=")
		b.WriteString(t.name)
	}
	b.WriteString(")")

	return b.String()
}

// triLogPDF evaluates the piecewise log-density at a single point.
// The guards are mutually exclusive; each point is assigned by exactly
// one branch. The x == mode case is checked before the open intervals so
// that degenerate shapes (low == mode or mode == high) still resolve to
// the peak value ln 2 - ln(high-low).
func triLogPDF(x, lo, md, hi float64) float64 {
	switch {
	case x < lo || x > hi:
		return math.Inf(-1)
	case x == md:
		return math.Ln2 - math.Log(hi-lo)
	case x < md:
		return math.Ln2 + math.Log(x-lo) - math.Log(hi-lo) - math.Log(md-lo)
	default: // mode < x ≤ high
		return math.Ln2 + math.Log(hi-x) - math.Log(hi-lo) - math.Log(hi-md)
	}
}

// triLogCDF evaluates the piecewise log-CDF at a single point.
// The x ≥ high saturation is checked before the x == mode anchor so that
// mode == high resolves to 0, matching the priority order of the branch
// table in the LogCDF doc.
func triLogCDF(x, lo, md, hi float64) float64 {
	switch {
	case x < lo:
		return math.Inf(-1)
	case x >= hi:
		return 0
	case x == md:
		return math.Log(0.5)
	case x < md:
		return 2*math.Log(x-lo) - math.Log(hi-lo) - math.Log(md-lo)
	default: // mode < x < high
		d := hi - x

		return math.Log(1 - d*d/((hi-lo)*(hi-md)))
	}
}

// triQuantile evaluates the closed-form inverse CDF at a single
// probability, splitting the two sqrt branches at fc = CDF(mode).
func triQuantile(p, fc, lo, md, hi float64) float64 {
	if p < fc {
		return lo + math.Sqrt(p*(md-lo)*(hi-lo))
	}

	return hi - math.Sqrt((1-p)*(hi-lo)*(hi-md))
}

// triSample maps one uniform draw u ∈ [0,1) to a triangular variate by
// inversion. The branch split uses the mass left of the mode,
// (mode-low)/(high-low); a zero-width support collapses to low.
func triSample(u, lo, md, hi float64) float64 {
	if hi == lo {
		return lo
	}
	if u < (md-lo)/(hi-lo) {
		return lo + math.Sqrt(u*(hi-lo)*(md-lo))
	}

	return hi - math.Sqrt((1-u)*(hi-lo)*(hi-md))
}

// expVec exponentiates a log-scale vector, passing any error through.
func expVec(v Vec, err error) (Vec, error) {
	if err != nil {
		return nil, err
	}
	for i := range v {
		v[i] = math.Exp(v[i])
	}

	return v, nil
}

// isFinite reports whether f is neither NaN nor ±Inf.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
