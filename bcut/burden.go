// SPDX-License-Identifier: MIT

package bcut

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/moldesc/atomprop"
	"github.com/katalvlaran/moldesc/descriptor"
	"github.com/katalvlaran/moldesc/matrix"
)

// Burden matrix weights.
const (
	BaselineWeight = 0.001
	TerminalBonus  = 0.01
	UnknownOrder   = 1.0
	OrderScale     = 10.0
)

// Tolerance is the off-diagonal threshold of the Jacobi iteration.
const Tolerance = 1e-12

const (
	kindBurden      = "Burden"
	kindEigenValues = "BurdenEigenValues"
	kindBCUT        = "BCUT"

	inBurden = "burden"
	inValues = "bev"
)

// Burden is the weighted adjacency matrix of stage 1.
type Burden struct{}

var (
	_ descriptor.Descriptor = Burden{}
	_ descriptor.Descriptor = BurdenEigenValues{}
	_ descriptor.Descriptor = BCUT{}
)

func (Burden) Kind() string                          { return kindBurden }
func (Burden) Parameters() descriptor.Params         { return nil }
func (Burden) Requirements() descriptor.Requirements { return descriptor.Requirements{} }
func (Burden) Dependencies() descriptor.Dependencies { return nil }

// Calculate builds the N×N Burden matrix.
func (Burden) Calculate(env *descriptor.Env, _ descriptor.Inputs) (any, error) {
	mol := env.Mol()
	n := mol.NumAtoms()
	if n == 0 {
		return nil, descriptor.Fail(descriptor.ErrEmptyMolecule)
	}
	m, err := matrix.NewFilled(n, n, BaselineWeight)
	if err != nil {
		return nil, fmt.Errorf("Burden: %w", err)
	}

	atoms := mol.Atoms()
	for _, b := range mol.Bonds() {
		i, j := b.Begin(), b.End()
		w := UnknownOrder
		if order, ok := b.Order(); ok {
			w = order / OrderScale
		}
		if atoms[i].Degree() == 1 || atoms[j].Degree() == 1 {
			w += TerminalBonus
		}
		if err = m.Set(i, j, w); err != nil {
			return nil, fmt.Errorf("Burden: %w", err)
		}
		if err = m.Set(j, i, w); err != nil {
			return nil, fmt.Errorf("Burden: %w", err)
		}
	}

	return m, nil
}

// BurdenEigenValues is stage 2: Burden with Prop on the diagonal,
// eigenvalues sorted descending.
type BurdenEigenValues struct {
	Prop atomprop.Property
}

func (b BurdenEigenValues) Kind() string { return kindEigenValues }

// Parameters is (property, gasteiger charges).
func (b BurdenEigenValues) Parameters() descriptor.Params {
	return descriptor.Params{propParam(b.Prop), descriptor.Bool(b.Prop.GasteigerCharges)}
}

func (BurdenEigenValues) Requirements() descriptor.Requirements { return descriptor.Requirements{} }

func (BurdenEigenValues) Dependencies() descriptor.Dependencies {
	return descriptor.Dependencies{inBurden: Burden{}}
}

// Calculate fails with ErrUndefinedProperty before decomposing if the
// property is undefined for any atom.
func (b BurdenEigenValues) Calculate(env *descriptor.Env, in descriptor.Inputs) (any, error) {
	burden, err := descriptor.Input[*matrix.Dense](in, inBurden)
	if err != nil {
		return nil, err
	}
	if b.Prop.Fn == nil {
		return nil, fmt.Errorf("BurdenEigenValues(%s): no property function: %w", b.Prop.Symbol, descriptor.ErrParameters)
	}

	atoms := env.Mol().Atoms()
	diag := make([]float64, len(atoms))
	for i, a := range atoms {
		diag[i] = b.Prop.Fn(a)
		if math.IsNaN(diag[i]) {
			return nil, descriptor.Failf(descriptor.ErrUndefinedProperty, "%s of atom %d (%s)", b.Prop.Symbol, i, a.Symbol())
		}
	}

	m := burden.Clone().(*matrix.Dense)
	if err = m.SetDiagonal(diag); err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return nil, descriptor.Failf(descriptor.ErrInvalidOperation, "non-finite %s", b.Prop.Symbol)
		}
		return nil, fmt.Errorf("BurdenEigenValues: %w", err)
	}

	vals, _, err := matrix.Eigen(m, matrix.WithEpsilon(Tolerance))
	switch {
	case errors.Is(err, matrix.ErrMatrixEigenFailed):
		return nil, descriptor.Fail(descriptor.ErrNotConverged)
	case err != nil:
		return nil, fmt.Errorf("BurdenEigenValues: %w", err)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(vals)))

	return vals, nil
}
