// Package matrix offers the dense linear-algebra substrate of moldesc.
//
// The matrix package provides:
//
//   - Dense, a row-major Matrix with a configurable numeric policy
//     (finite-only by default, +Inf allowed for distance matrices).
//   - Central validators (nil, square, symmetric) returning sentinel errors.
//   - Eigen, a deterministic Jacobi eigen-decomposition for real symmetric
//     matrices, used by the spectral and BCUT descriptor families.
//   - FloydWarshall / ShortestPaths for topological distance matrices.
//
// Molecular graphs are small (tens to a few hundred atoms), so O(n²) memory
// and O(n³) kernels are the right trade-off over sparse machinery.
package matrix
