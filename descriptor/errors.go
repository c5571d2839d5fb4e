// SPDX-License-Identifier: MIT

package descriptor

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"strings"
)

// Defects. They are never cached and abort registration or a batch.
var (
	// ErrUnknownKind indicates a descriptor whose kind is not in the Registry.
	ErrUnknownKind = errors.New("descriptor: unknown kind")

	// ErrDuplicateKind indicates a second registration under the same name.
	ErrDuplicateKind = errors.New("descriptor: kind already registered")

	// ErrInvalidKind indicates a Kind with an empty or malformed name.
	ErrInvalidKind = errors.New("descriptor: invalid kind")

	// ErrNotImplemented indicates a kind without a constructor or preset.
	ErrNotImplemented = errors.New("descriptor: not implemented")

	// ErrUnsupported indicates requirements the molecule cannot supply
	// (explicit hydrogens, kekulized form, 3D coordinates).
	ErrUnsupported = errors.New("descriptor: unsupported requirements")

	// ErrDependencyCycle indicates a descriptor that depends on itself.
	ErrDependencyCycle = errors.New("descriptor: dependency cycle")

	// ErrInputType indicates a resolved dependency of an unexpected type.
	ErrInputType = errors.New("descriptor: unexpected input type")

	// ErrParameters indicates a parameter tuple that does not rebuild the
	// descriptor it came from.
	ErrParameters = errors.New("descriptor: bad parameters")

	// ErrNilMolecule indicates a nil molecule passed to the evaluator.
	ErrNilMolecule = errors.New("descriptor: nil molecule")
)

// Missing-value reasons, wrapped by *MissingError.
var (
	ErrZeroDivision      = errors.New("zero division")
	ErrInvalidOperation  = errors.New("invalid operation")
	ErrUndefinedProperty = errors.New("undefined atomic property")
	ErrRankOutOfRange    = errors.New("rank out of range")
	ErrFragmented        = errors.New("molecule is fragmented")
	ErrEmptyMolecule     = errors.New("molecule has no atoms")
	ErrNotConverged      = errors.New("decomposition did not converge")
)

// MissingError marks a value that cannot be computed for one molecule.
// It is cached like any result and shared by every dependent descriptor.
type MissingError struct {
	Reason error  // one of the reason sentinels, or a caller-defined error
	Origin string // Repr of the descriptor that failed first
	Detail string
}

// Error implements error.
func (e *MissingError) Error() string {
	var sb strings.Builder
	sb.WriteString("descriptor: missing value")
	if e.Origin != "" {
		sb.WriteString(" in ")
		sb.WriteString(e.Origin)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Reason.Error())
	if e.Detail != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Detail)
		sb.WriteString(")")
	}

	return sb.String()
}

// Unwrap exposes the reason to errors.Is.
func (e *MissingError) Unwrap() error { return e.Reason }

// Fail returns a missing-value error for reason. Calculate returns it to
// signal that the value is undefined for the current molecule.
func Fail(reason error) error {
	if reason == nil {
		reason = ErrInvalidOperation
	}

	return &MissingError{Reason: reason}
}

// Failf is Fail with a formatted detail message.
func Failf(reason error, format string, args ...any) error {
	if reason == nil {
		reason = ErrInvalidOperation
	}

	return &MissingError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// AsMissing reports whether err carries a *MissingError.
func AsMissing(err error) (*MissingError, bool) {
	var me *MissingError
	if errors.As(err, &me) {
		return me, true
	}

	return nil, false
}

// IsMissing reports whether err is a missing value rather than a defect.
func IsMissing(err error) bool {
	_, ok := AsMissing(err)

	return ok
}

// Numeric runs fn and promotes floating-point faults to missing values:
// ±Inf becomes ErrZeroDivision, NaN becomes ErrInvalidOperation, and an
// integer division by zero inside fn becomes ErrZeroDivision.
// Any other panic is propagated.
func Numeric(fn func() float64) (v float64, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if re, ok := r.(runtime.Error); ok && strings.Contains(re.Error(), "divide by zero") {
			v, err = math.NaN(), Fail(ErrZeroDivision)
			return
		}
		panic(r)
	}()

	v = fn()

	return v, checkFloat(v)
}

// checkFloat maps non-finite values to their missing reason.
func checkFloat(v float64) error {
	switch {
	case math.IsInf(v, 0):
		return Fail(ErrZeroDivision)
	case math.IsNaN(v):
		return Fail(ErrInvalidOperation)
	}

	return nil
}
