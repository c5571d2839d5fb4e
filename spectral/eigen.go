// SPDX-License-Identifier: MIT

package spectral

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/moldesc/descriptor"
	"github.com/katalvlaran/moldesc/matrix"
	"github.com/katalvlaran/moldesc/topomatrix"
)

// Tolerance is the off-diagonal threshold of the Jacobi iteration.
const Tolerance = 1e-12

const (
	kindEigen = "Eigen"
	inMatrix  = "matrix"
)

// Eig is the decomposition of a real symmetric matrix.
type Eig struct {
	Values  []float64     // eigenvalues, unsorted
	Vectors *matrix.Dense // column k is the eigenvector of Values[k]
	Min     int           // index of the smallest eigenvalue (first on ties)
	Max     int           // index of the largest eigenvalue (first on ties)
}

// Leading returns the eigenvector of the largest eigenvalue.
func (e *Eig) Leading() []float64 {
	v, _ := e.Vectors.Column(e.Max)

	return v
}

// Eigen decomposes the matrix of the given type. It requires a connected
// molecule.
type Eigen struct {
	Matrix            topomatrix.Type
	ExplicitHydrogens bool
	Kekulize          bool
}

var _ descriptor.Descriptor = Eigen{}

func (Eigen) Kind() string { return kindEigen }

func (e Eigen) Parameters() descriptor.Params {
	return descriptor.Params{e.Matrix.Param(), descriptor.Bool(e.ExplicitHydrogens), descriptor.Bool(e.Kekulize)}
}

func (e Eigen) Requirements() descriptor.Requirements {
	return descriptor.Requirements{ExplicitHydrogens: e.ExplicitHydrogens, Kekulize: e.Kekulize, Connected: true}
}

// Dependencies is empty for an unknown matrix type; Calculate then reports
// the unresolved input.
func (e Eigen) Dependencies() descriptor.Dependencies {
	m, err := e.Matrix.New(e.ExplicitHydrogens, e.Kekulize)
	if err != nil {
		return nil
	}

	return descriptor.Dependencies{inMatrix: m}
}

// Calculate runs the decomposition and records the extreme eigenvalues.
func (e Eigen) Calculate(_ *descriptor.Env, in descriptor.Inputs) (any, error) {
	m, err := descriptor.Input[*matrix.Dense](in, inMatrix)
	if err != nil {
		return nil, err
	}
	vals, vecs, err := matrix.Eigen(m, matrix.WithEpsilon(Tolerance))
	switch {
	case errors.Is(err, matrix.ErrMatrixEigenFailed):
		return nil, descriptor.Failf(descriptor.ErrNotConverged, "%s matrix", e.Matrix)
	case errors.Is(err, matrix.ErrNaNInf):
		return nil, descriptor.Failf(descriptor.ErrInvalidOperation, "non-finite %s matrix", e.Matrix)
	case err != nil:
		return nil, fmt.Errorf("Eigen: %w", err)
	}

	eig := &Eig{Values: vals, Vectors: vecs}
	for i, w := range vals {
		if w < vals[eig.Min] {
			eig.Min = i
		}
		if w > vals[eig.Max] {
			eig.Max = i
		}
	}

	return eig, nil
}

// Description implements descriptor.Describer.
func (e Eigen) Description() string {
	return "eigen decomposition of the " + string(e.Matrix) + " matrix"
}

func newEigen(ps descriptor.Params) (descriptor.Descriptor, error) {
	t, h, k, err := parseCommon(ps)
	if err != nil {
		return nil, err
	}

	return Eigen{Matrix: t, ExplicitHydrogens: h, Kekulize: k}, nil
}

// parseCommon decodes the (matrix, explicit hydrogens, kekulize) tuple.
func parseCommon(ps descriptor.Params) (t topomatrix.Type, h, k bool, err error) {
	if err = ps.Expect(3); err != nil {
		return "", false, false, err
	}
	if t, err = topomatrix.TypeParam(ps, 0); err != nil {
		return "", false, false, err
	}
	if h, err = ps.Bool(1); err != nil {
		return "", false, false, err
	}
	k, err = ps.Bool(2)

	return t, h, k, err
}
