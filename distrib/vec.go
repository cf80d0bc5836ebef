package distrib

import (
	"fmt"
	"strconv"
)

// Vec is a broadcastable vector of float64 values.
//
// A Vec of length 1 behaves as a scalar: it pairs with an operand of any
// length. Vecs of length > 1 only pair with scalars or operands of the
// same length; anything else is ErrBroadcast. This gives elementwise
// array semantics over plain slices, without a tensor dependency.
type Vec []float64

// Scalar wraps a single value as a Vec.
func Scalar(v float64) Vec {
	return Vec{v}
}

// at returns the broadcast element of v at position i.
// Callers must have established the broadcast length via broadcastLen.
func (v Vec) at(i int) float64 {
	if len(v) == 1 {
		return v[0]
	}

	return v[i]
}

// clone returns an independent copy of v.
func (v Vec) clone() Vec {
	out := make(Vec, len(v))
	copy(out, v)

	return out
}

// broadcastLen returns the common broadcast length of the given operands.
// Every operand must have length 1 or the shared length n; a zero-length
// operand is ErrEmptyVec, a conflicting length is ErrBroadcast.
func broadcastLen(vs ...Vec) (int, error) {
	n := 1
	for _, v := range vs {
		switch {
		case len(v) == 0:
			return 0, ErrEmptyVec
		case len(v) == 1:
			continue
		case n == 1:
			n = len(v)
		case len(v) != n:
			return 0, ErrBroadcast
		}
	}

	return n, nil
}

// formatVec renders a scalar Vec as a bare number and a longer Vec as a
// Go slice literal, for use in String methods.
func formatVec(v Vec) string {
	if len(v) == 1 {
		return strconv.FormatFloat(v[0], 'g', -1, 64)
	}

	return fmt.Sprintf("%v", []float64(v))
}
