// Package bcut implements Burden-CAS-University of Texas eigenvalue
// descriptors.
//
// The family is evaluated in three stages, each a descriptor depending on
// the previous one:
//
//  1. Burden: the weighted adjacency matrix of the hydrogen-suppressed
//     graph. Off-diagonal cells start at 0.001; each bond sets its two
//     cells to order/10 (1.0 when the order is unknown), plus 0.01 when
//     either endpoint is terminal.
//  2. BurdenEigenValues: the Burden matrix with an atomic property on its
//     diagonal, decomposed; eigenvalues sorted from highest to lowest.
//     One undefined property value makes the whole stage missing.
//  3. BCUT: the eigenvalue of the given rank (0 = highest, -1 = lowest).
//
// Stage 1 is shared by every property and stage 2 by both ranks, so the
// preset (every property × highest/lowest) costs one matrix and one
// decomposition per property.
package bcut
