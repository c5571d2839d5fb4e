// Package topomatrix provides the topological matrix descriptors of a
// molecular graph: adjacency, topological distance and Laplacian.
//
// Matrix descriptors return *matrix.Dense values and are not meant to be
// reported directly; scalar families (see package spectral) declare them as
// dependencies, so one matrix is built once per molecule and shared.
//
//	A  Adjacency  1 for every bond, 0 elsewhere
//	D  Distance   shortest-path bond counts, +Inf between fragments
//	L  Laplacian  diag(degree) - A
//
// All three are real symmetric by construction.
package topomatrix
