// SPDX-License-Identifier: MIT

package topomatrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/moldesc/descriptor"
)

// ErrUnknownType indicates a matrix type name outside Types().
var ErrUnknownType = errors.New("topomatrix: unknown matrix type")

// Type selects one of the matrix descriptors.
type Type string

// Matrix types.
const (
	TypeAdjacency Type = "Adjacency"
	TypeDistance  Type = "Distance"
	TypeLaplacian Type = "Laplacian"
)

// Types returns every matrix type in a stable order.
func Types() []Type {
	return []Type{TypeAdjacency, TypeDistance, TypeLaplacian}
}

// ParseType resolves a type by name.
func ParseType(name string) (Type, error) {
	for _, t := range Types() {
		if string(t) == name {
			return t, nil
		}
	}

	return "", fmt.Errorf("ParseType(%q): %w", name, ErrUnknownType)
}

// Symbol is the one-letter tag used in descriptor names.
func (t Type) Symbol() string {
	switch t {
	case TypeAdjacency:
		return "A"
	case TypeDistance:
		return "D"
	case TypeLaplacian:
		return "L"
	default:
		return "?"
	}
}

// New returns the matrix descriptor of type t for the given form.
func (t Type) New(explicitHydrogens, kekulize bool) (descriptor.Descriptor, error) {
	switch t {
	case TypeAdjacency:
		return Adjacency{ExplicitHydrogens: explicitHydrogens, Kekulize: kekulize}, nil
	case TypeDistance:
		return Distance{ExplicitHydrogens: explicitHydrogens, Kekulize: kekulize}, nil
	case TypeLaplacian:
		return Laplacian{ExplicitHydrogens: explicitHydrogens, Kekulize: kekulize}, nil
	default:
		return nil, fmt.Errorf("New(%q): %w", string(t), ErrUnknownType)
	}
}

// Param encodes t as a named-function parameter, so a descriptor
// parameterized by a matrix type prints as Eigen(Adjacency, ...).
func (t Type) Param() descriptor.Param {
	return descriptor.Func(string(t), t)
}

// TypeParam decodes parameter i written by Type.Param.
func TypeParam(ps descriptor.Params, i int) (Type, error) {
	name, _, err := ps.Func(i)
	if err != nil {
		return "", err
	}
	t, err := ParseType(name)
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, descriptor.ErrParameters)
	}

	return t, nil
}

// formParams is the (explicit hydrogens, kekulize) tuple shared by all
// matrix descriptors.
func formParams(h, k bool) descriptor.Params {
	return descriptor.Params{descriptor.Bool(h), descriptor.Bool(k)}
}

func parseForm(ps descriptor.Params) (h, k bool, err error) {
	if err = ps.Expect(2); err != nil {
		return false, false, err
	}
	if h, err = ps.Bool(0); err != nil {
		return false, false, err
	}
	k, err = ps.Bool(1)

	return h, k, err
}

// Kinds returns the registration entries of the matrix descriptors.
func Kinds() []descriptor.Kind {
	kinds := make([]descriptor.Kind, 0, len(Types()))
	for _, t := range Types() {
		kinds = append(kinds, descriptor.Kind{
			Name:        string(t),
			Description: string(t) + " matrix",
			New: func(ps descriptor.Params) (descriptor.Descriptor, error) {
				h, k, err := parseForm(ps)
				if err != nil {
					return nil, err
				}
				return t.New(h, k)
			},
		})
	}

	return kinds
}
