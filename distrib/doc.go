// Package distrib implements continuous probability distributions with
// log-scale evaluation, closed-form quantiles, broadcastable parameters
// and reproducible inversion sampling.
//
// 🚀 What is distrib?
//
//	One common surface (ContinuousRV) over concrete distributions:
//	  • Triangular — low/mode/high, piecewise-linear density
//	  • Uniform    — low/high, flat density
//
//	Every distribution exposes:
//	  LogPDF / PDF      — (log-)density, elementwise
//	  LogCDF / CDF      — (log-)cumulative distribution, elementwise
//	  Quantile          — closed-form inverse CDF
//	  Sample            — n variates from an explicit *randsrc.Source
//	  Mean / Variance   — closed-form moments
//	  Validate / String — invariant re-check & display form
//
// ✨ Key properties:
//
//   - Log scale first: densities and CDFs are computed in log space for
//     numerical stability; PDF/CDF are thin exp wrappers.
//   - Broadcasting: parameters and inputs are Vec values; a length-1 Vec
//     is a scalar and pairs with any length, equal lengths pair
//     elementwise, anything else is ErrBroadcast.
//   - Total evaluation: out-of-support inputs saturate (-Inf log-density,
//     -Inf/0 log-CDF) instead of erroring.
//   - Construction-time validation: parameter ordering is checked once,
//     up front, and returned as ErrParamOrder — evaluation never re-fails.
//   - Immutability: parameters are copied in and never change, so values
//     are safe for concurrent reads without locks.
//
// ⚠️ Quantile is deliberately unguarded: probabilities outside [0,1]
// produce NaN (Triangular) or linear extrapolation (Uniform) rather than
// an error. Callers that need strict domains must clamp first.
//
// ⚙️ Usage:
//
//	tri, err := distrib.NewTriangular(
//	  distrib.Scalar(0), distrib.Scalar(0.5), distrib.Scalar(1),
//	  distrib.WithName("latency"),
//	)
//	if err != nil {
//	  // ErrParamOrder, ErrBroadcast, …
//	}
//
//	src := randsrc.New(42)
//	xs, _ := tri.Sample(src, 1000)
//	lp, _ := tri.LogPDF(xs)
//
// See example_test.go for runnable walkthroughs and bench_test.go for
// throughput figures.
package distrib
