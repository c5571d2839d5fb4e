// SPDX-License-Identifier: MIT

package topomatrix

import (
	"fmt"

	"github.com/katalvlaran/moldesc/descriptor"
	"github.com/katalvlaran/moldesc/matrix"
)

// Input names.
const inAdjacency = "adjacency"

// Adjacency is the bond adjacency matrix: A[i][j] = 1 iff atoms i and j are
// bonded. Bond orders are ignored.
type Adjacency struct {
	ExplicitHydrogens bool
	Kekulize          bool
}

var (
	_ descriptor.Descriptor = Adjacency{}
	_ descriptor.Descriptor = Distance{}
	_ descriptor.Descriptor = Laplacian{}
)

func (Adjacency) Kind() string { return string(TypeAdjacency) }

func (a Adjacency) Parameters() descriptor.Params { return formParams(a.ExplicitHydrogens, a.Kekulize) }

func (a Adjacency) Requirements() descriptor.Requirements {
	return descriptor.Requirements{ExplicitHydrogens: a.ExplicitHydrogens, Kekulize: a.Kekulize}
}

func (Adjacency) Dependencies() descriptor.Dependencies { return nil }

// Calculate builds the n×n 0/1 matrix. An empty molecule is missing.
func (Adjacency) Calculate(env *descriptor.Env, _ descriptor.Inputs) (any, error) {
	n := env.NumAtoms()
	if n == 0 {
		return nil, descriptor.Fail(descriptor.ErrEmptyMolecule)
	}
	a, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Adjacency: %w", err)
	}
	for _, b := range env.Mol().Bonds() {
		if err = a.Set(b.Begin(), b.End(), 1); err != nil {
			return nil, fmt.Errorf("Adjacency: %w", err)
		}
		if err = a.Set(b.End(), b.Begin(), 1); err != nil {
			return nil, fmt.Errorf("Adjacency: %w", err)
		}
	}

	return a, nil
}

// Distance is the topological distance matrix (bond counts along shortest
// paths). Atoms in different fragments are +Inf apart.
type Distance struct {
	ExplicitHydrogens bool
	Kekulize          bool
}

func (Distance) Kind() string { return string(TypeDistance) }

func (d Distance) Parameters() descriptor.Params { return formParams(d.ExplicitHydrogens, d.Kekulize) }

func (d Distance) Requirements() descriptor.Requirements {
	return descriptor.Requirements{ExplicitHydrogens: d.ExplicitHydrogens, Kekulize: d.Kekulize}
}

func (d Distance) Dependencies() descriptor.Dependencies {
	return descriptor.Dependencies{inAdjacency: Adjacency(d)}
}

func (Distance) Calculate(_ *descriptor.Env, in descriptor.Inputs) (any, error) {
	a, err := descriptor.Input[*matrix.Dense](in, inAdjacency)
	if err != nil {
		return nil, err
	}
	dist, err := matrix.ShortestPaths(a)
	if err != nil {
		return nil, fmt.Errorf("Distance: %w", err)
	}

	return dist, nil
}

// Laplacian is the graph Laplacian diag(degree) - A.
type Laplacian struct {
	ExplicitHydrogens bool
	Kekulize          bool
}

func (Laplacian) Kind() string { return string(TypeLaplacian) }

func (l Laplacian) Parameters() descriptor.Params { return formParams(l.ExplicitHydrogens, l.Kekulize) }

func (l Laplacian) Requirements() descriptor.Requirements {
	return descriptor.Requirements{ExplicitHydrogens: l.ExplicitHydrogens, Kekulize: l.Kekulize}
}

func (l Laplacian) Dependencies() descriptor.Dependencies {
	return descriptor.Dependencies{inAdjacency: Adjacency(l)}
}

func (Laplacian) Calculate(_ *descriptor.Env, in descriptor.Inputs) (any, error) {
	a, err := descriptor.Input[*matrix.Dense](in, inAdjacency)
	if err != nil {
		return nil, err
	}
	n := a.Rows()
	l, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Laplacian: %w", err)
	}
	var aij float64
	for i := 0; i < n; i++ {
		deg := 0.0
		for j := 0; j < n; j++ {
			if aij, err = a.At(i, j); err != nil {
				return nil, fmt.Errorf("Laplacian: %w", err)
			}
			if i != j && aij != 0 {
				if err = l.Set(i, j, -aij); err != nil {
					return nil, fmt.Errorf("Laplacian: %w", err)
				}
			}
			deg += aij
		}
		if err = l.Set(i, i, deg); err != nil {
			return nil, fmt.Errorf("Laplacian: %w", err)
		}
	}

	return l, nil
}
