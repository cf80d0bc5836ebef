package distrib

import "errors"

// Sentinel errors for distribution construction, evaluation and sampling.
// All public APIs return these sentinels (match with errors.Is); none of
// them panics on user-triggered conditions.
var (
	// ErrParamOrder indicates the parameter ordering invariant
	// (e.g. low ≤ mode ≤ high) failed for at least one broadcast element.
	ErrParamOrder = errors.New("distrib: invalid parameter ordering")

	// ErrNonFinite indicates a NaN or ±Inf parameter was supplied at
	// construction, where finite values are required.
	ErrNonFinite = errors.New("distrib: parameter is NaN or Inf")

	// ErrEmptyVec indicates a zero-length parameter or input vector.
	ErrEmptyVec = errors.New("distrib: vector must be non-empty")

	// ErrBroadcast indicates operand vectors of incompatible lengths:
	// every operand must have length 1 or the shared broadcast length.
	ErrBroadcast = errors.New("distrib: incompatible broadcast lengths")

	// ErrNilSource indicates Sample was called with a nil random source.
	ErrNilSource = errors.New("distrib: random source is nil")

	// ErrSampleCount indicates Sample was called with a count below 1.
	ErrSampleCount = errors.New("distrib: sample count must be >= 1")
)
