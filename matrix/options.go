// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for dense storage and the spectral
// kernel. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - validateNaNInf controls whether Set() rejects NaN/Inf at all.
//   - allowInfDistances is a narrow exception for +Inf as "no path" in distance
//     matrices. Under validation, NaN and -Inf remain rejected even when
//     allowInfDistances=true.
package matrix

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by the symmetry check and
	// the Jacobi convergence test.
	DefaultEpsilon = 1e-10

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true

	// DefaultAllowInfDistances permits +Inf values to represent "no path".
	DefaultAllowInfDistances = false

	// DefaultRotationsPerCell scales the Jacobi rotation budget: n×n matrices
	// get DefaultRotationsPerCell*n*n rotations (never less than minRotations).
	DefaultRotationsPerCell = 30

	minRotations = 100
)

// Option mutates Options. Constructors validate their arguments eagerly and
// panic on programmer errors (negative tolerance, non-positive budgets).
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; consume it
// through the accessor methods.
type Options struct {
	eps               float64 // DefaultEpsilon
	validateNaNInf    bool    // DefaultValidateNaNInf
	allowInfDistances bool    // DefaultAllowInfDistances
	maxRotations      int     // 0 = derive from n
}

// WithEpsilon sets the absolute tolerance for symmetry and convergence checks.
// Panics if eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(fmt.Sprintf("matrix: WithEpsilon(%v): epsilon must be finite and >= 0", eps))
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables finite-only Set (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-only Set policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithAllowInfDistances permits +Inf cells under validation ("no path").
func WithAllowInfDistances() Option {
	return func(o *Options) { o.allowInfDistances = true }
}

// WithMaxRotations caps the number of Jacobi rotations regardless of n.
// Panics if n <= 0.
func WithMaxRotations(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("matrix: WithMaxRotations(%d): budget must be > 0", n))
	}

	return func(o *Options) { o.maxRotations = n }
}

// NewOptions resolves opts on top of the package defaults.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// Epsilon returns the configured tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// MaxRotations returns the rotation budget for an n×n input.
func (o Options) MaxRotations(n int) int {
	if o.maxRotations > 0 {
		return o.maxRotations
	}
	budget := DefaultRotationsPerCell * n * n
	if budget < minRotations {
		budget = minRotations
	}

	return budget
}

func defaultOptions() Options {
	return Options{
		eps:               DefaultEpsilon,
		validateNaNInf:    DefaultValidateNaNInf,
		allowInfDistances: DefaultAllowInfDistances,
	}
}

// gatherOptions applies user options in order; later options win.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
