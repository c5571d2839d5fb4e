// SPDX-License-Identifier: MIT

package descriptor

import "math"

// Value is the outcome of evaluating one descriptor: either a computed
// result or a missing marker.
type Value struct {
	v    any
	miss *MissingError
}

// Computed wraps a computed result.
func Computed(v any) Value { return Value{v: v} }

// Missing wraps a missing marker.
func Missing(err *MissingError) Value { return Value{miss: err} }

// IsMissing reports whether the value could not be computed.
func (v Value) IsMissing() bool { return v.miss != nil }

// Err returns the *MissingError, or nil for a computed value.
func (v Value) Err() error {
	if v.miss == nil {
		return nil
	}

	return v.miss
}

// Raw returns the computed result (nil when missing).
func (v Value) Raw() any { return v.v }

// Float converts a numeric result to float64. Missing values and
// non-numeric results give NaN.
func (v Value) Float() float64 {
	if v.miss != nil {
		return math.NaN()
	}
	switch x := v.v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	default:
		return math.NaN()
	}
}
