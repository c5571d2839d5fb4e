// File: builders.go
// Role: skeleton constructors (chain, ring, star) for tests, examples and
// quick experiments.
//
// Contract:
//   - Atoms are added in ascending index order; bonds are emitted in stable
//     increasing order, so identical calls give identical molecules.
//   - Returns only sentinel errors; never panics at runtime.
package molecule

import "fmt"

// File-local constants for method tagging and parameter minima.
const (
	methodChain = "Chain"
	methodRing  = "Ring"
	methodStar  = "Star"

	minChainAtoms = 1
	minRingAtoms  = 3
	minStarLeaves = 1
)

// Chain builds an unbranched chain of n atoms of one element with single bonds:
// 0-1-2-...-(n-1).
func Chain(n int, symbol string, opts ...Option) (*Mol, error) {
	if n < minChainAtoms {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainAtoms, ErrTooFewAtoms)
	}
	m := New(opts...)
	if err := addAtoms(m, methodChain, n, symbol); err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if err := m.AddBond(i-1, i); err != nil {
			return nil, fmt.Errorf("%s: %w", methodChain, err)
		}
	}

	return m, nil
}

// Ring builds a ring of n atoms with every bond of the given order
// (1.5 for an aromatic ring).
func Ring(n int, symbol string, order float64, opts ...Option) (*Mol, error) {
	if n < minRingAtoms {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingAtoms, ErrTooFewAtoms)
	}
	m := New(opts...)
	if err := addAtoms(m, methodRing, n, symbol); err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err := m.AddBond(i, (i+1)%n, WithOrder(order)); err != nil {
			return nil, fmt.Errorf("%s: %w", methodRing, err)
		}
	}

	return m, nil
}

// Star builds a center atom (index 0) bonded to the given number of leaves.
func Star(center string, leaves int, leaf string, opts ...Option) (*Mol, error) {
	if leaves < minStarLeaves {
		return nil, fmt.Errorf("%s: leaves=%d < min=%d: %w", methodStar, leaves, minStarLeaves, ErrTooFewAtoms)
	}
	m := New(opts...)
	if err := addAtoms(m, methodStar, 1, center); err != nil {
		return nil, err
	}
	if err := addAtoms(m, methodStar, leaves, leaf); err != nil {
		return nil, err
	}
	for i := 1; i <= leaves; i++ {
		if err := m.AddBond(0, i); err != nil {
			return nil, fmt.Errorf("%s: %w", methodStar, err)
		}
	}

	return m, nil
}

func addAtoms(m *Mol, method string, n int, symbol string) error {
	for i := 0; i < n; i++ {
		if _, err := m.AddAtom(symbol); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}

	return nil
}
