// SPDX-License-Identifier: MIT
// Package matrix: symmetric eigen-decomposition (Jacobi rotations).
//
// Purpose:
//   - Canonical spectral kernel used by every eigenvalue-based descriptor.
//   - Deterministic pivot scan and update order; fast path on *Dense.
//
// Contract:
//   - Input must be real symmetric within the configured epsilon. Eigenvalues of
//     such matrices are real, so the kernel never produces complex parts.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opEigen         = "Eigen"
	opFloydWarshall = "FloydWarshall"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi rotations.
//
// Implementation:
//   - Stage 1: ValidateSymmetric(m, eps) (not nil, square, finite, symmetric).
//   - Stage 2: Repeatedly pick (p,q) with the largest |A[p,q]| in i→j order and apply a rotation.
//   - Stage 3: Verify convergence, read eigenvalues off the diagonal.
//
// Inputs:
//   - m: symmetric Matrix (within eps); n := m.Rows().
//   - opts: WithEpsilon (default DefaultEpsilon), WithMaxRotations (default 30·n²).
//
// Returns:
//   - []float64: eigenvalues in diagonal order (NOT sorted).
//   - *Dense: Q whose column k is the eigenvector of eigenvalue k.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrAsymmetry (validation).
//   - ErrMatrixEigenFailed (max off-diagonal ≥ eps after the rotation budget).
//
// Determinism:
//   - Fixed i→j pivot search and fixed update order produce stable results.
//
// Complexity:
//   - Time O(rotations · n), Space O(n^2).
//
// AI-Hints:
//   - A rotation is skipped via (c=1,s=0) when |A[p,q]| ≤ eps to avoid numerical blow-ups.
func Eigen(m Matrix, opts ...Option) ([]float64, *Dense, error) {
	o := gatherOptions(opts...)
	tol := o.eps
	// Validate: notNil; Square; Finite; Symmetric.
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	n := m.Rows()
	a, err := toDense(m) // working copy; the input is never mutated
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	// Initialize Q as identity: Q[i,i] = 1
	for i := 0; i < n; i++ {
		q.data[i*n+i] = 1.0
	}

	var (
		iter, i, j, base int
		p, r             int     // current pivot indices (p<r)
		maxOff, off      float64 // current max |A[p,r]|; temporary
		app, arr, apr    float64 // A[p,p], A[r,r], A[p,r]
		aip, air         float64 // A[i,p], A[i,r]
		qip, qir         float64 // Q[i,p], Q[i,r]
		newIP, newIR     float64
		theta, t, c, s   float64
		data             = a.data
		budget           = o.MaxRotations(n)
	)
	for iter = 0; iter < budget; iter++ {
		// J.1: Find pivot (p,r) maximizing |A[p,r]|
		maxOff = NormZero
		for i = 0; i < n; i++ {
			base = i * n
			for j = i + 1; j < n; j++ {
				off = math.Abs(data[base+j])
				if off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}

		// J.2: Converged?
		if maxOff < tol {
			break
		}

		// J.3: Rotation parameters
		app = data[p*n+p]
		arr = data[r*n+r]
		apr = data[p*n+r]
		if math.Abs(apr) <= tol {
			continue
		}
		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// J.4: Apply rotation to A (symmetric updates)
		for i = 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip = data[i*n+p]
			air = data[i*n+r]
			newIP = c*aip - s*air
			newIR = s*aip + c*air
			data[i*n+p], data[p*n+i] = newIP, newIP
			data[i*n+r], data[r*n+i] = newIR, newIR
		}
		data[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
		data[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
		data[p*n+r], data[r*n+p] = 0, 0

		// J.5: Accumulate rotation into Q
		for i = 0; i < n; i++ {
			qip = q.data[i*n+p]
			qir = q.data[i*n+r]
			q.data[i*n+p] = c*qip - s*qir
			q.data[i*n+r] = s*qip + c*qir
		}
	}

	// Final convergence check over the strict upper triangle.
	maxOff = NormZero
	for i = 0; i < n; i++ {
		base = i * n
		for j = i + 1; j < n; j++ {
			if off = math.Abs(data[base+j]); off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff >= tol {
		return nil, nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
	}

	return a.Diagonal(), q, nil
}

// toDense returns an independent *Dense copy of m with the guard disabled,
// so kernels can work on the flat buffer regardless of the source type.
// Complexity: O(r*c).
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		cp := d.Clone().(*Dense)
		cp.validateNaNInf = false

		return cp, nil
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c, WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}
