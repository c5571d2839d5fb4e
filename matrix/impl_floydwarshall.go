// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) implementation with deterministic loop order.
//   - Backs the topological distance matrix of a molecular graph.
//
// Contract:
//   - Square matrix; +Inf means "no path"; diagonal must be 0 before calling.

package matrix

import "math"

// floydWarshallInPlace runs APSP closure on a square *Dense in-place.
//
// Policy (assumed by callers):
//   - +Inf (math.Inf(1)) denotes "no path" off-diagonal.
//   - The diagonal MUST be 0 before calling (distance to self).
//
// Loop order is fixed (k → i → j) for deterministic accumulation.
// Time: O(n^3); Extra space: O(1). No allocations inside the hot loops.
func floydWarshallInPlace(d *Dense) {
	n := d.r

	var (
		k, i, j      int     // loop indices
		baseK, baseI int     // row base offsets for K and I in the flat buffer
		ik, ij, kj   float64 // distances d[i,k], d[i,j], d[k,j]
		cand         float64 // candidate path length via k
	)
	data := d.data

	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) { // if i cannot reach k, no path via k can improve i→j
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				ij = data[baseI+j]
				cand = ik + kj
				if cand < ij { // strict improvement only (deterministic tie rule)
					data[baseI+j] = cand
				}
			}
		}
	}
}

// FloydWarshall computes all-pairs shortest paths in-place on m.
//
// Contract:
//   - m must be square (n×n).
//   - +Inf denotes "no edge" off-diagonal; the diagonal MUST be 0.
//
// Complexity: Time O(n^3), Extra space O(1) on *Dense.
func FloydWarshall(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opFloydWarshall, err)
	}
	if d, ok := m.(*Dense); ok {
		floydWarshallInPlace(d)

		return nil
	}

	// Generic interface fallback: run on a dense copy, then write back.
	d, err := toDense(m)
	if err != nil {
		return matrixErrorf(opFloydWarshall, err)
	}
	floydWarshallInPlace(d)
	n := d.r
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err = m.Set(i, j, d.data[i*n+j]); err != nil {
				return matrixErrorf(opFloydWarshall, err)
			}
		}
	}

	return nil
}

// ShortestPaths converts a 0/weight adjacency matrix into a distance matrix:
// diagonal 0, off-diagonal zero cells become +Inf, then APSP closes the result.
// The input is not mutated. Unreachable pairs stay +Inf.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n^3).
func ShortestPaths(adj Matrix) (*Dense, error) {
	if err := ValidateSquare(adj); err != nil {
		return nil, matrixErrorf(opFloydWarshall, err)
	}
	n := adj.Rows()
	d, err := NewDense(n, n, WithAllowInfDistances())
	if err != nil {
		return nil, matrixErrorf(opFloydWarshall, err)
	}
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				v = 0
			default:
				if v, err = adj.At(i, j); err != nil {
					return nil, matrixErrorf(opFloydWarshall, err)
				}
				if v == 0 {
					v = math.Inf(1) // no direct edge
				}
			}
			d.data[i*n+j] = v
		}
	}
	floydWarshallInPlace(d)

	return d, nil
}
