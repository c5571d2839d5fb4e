// SPDX-License-Identifier: MIT

package bcut

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/katalvlaran/moldesc/atomprop"
	"github.com/katalvlaran/moldesc/descriptor"
)

// PresetRanks are the ranks enumerated by Preset: highest and lowest.
var PresetRanks = []int{0, -1}

// BCUT selects the eigenvalue of rank Nth from BurdenEigenValues.
// Nth counts from the highest (0, 1, ...) or, when negative, from the
// lowest (-1, -2, ...).
type BCUT struct {
	Prop atomprop.Property
	Nth  int
}

// New resolves the property symbol and returns BCUT(prop, nth).
func New(symbol string, nth int) (BCUT, error) {
	p, err := atomprop.Lookup(symbol)
	if err != nil {
		return BCUT{}, fmt.Errorf("bcut.New: %w", err)
	}

	return BCUT{Prop: p, Nth: nth}, nil
}

func (BCUT) Kind() string { return kindBCUT }

func (b BCUT) Parameters() descriptor.Params {
	return descriptor.Params{propParam(b.Prop), descriptor.Int(b.Nth)}
}

func (BCUT) Requirements() descriptor.Requirements { return descriptor.Requirements{} }

func (b BCUT) Dependencies() descriptor.Dependencies {
	return descriptor.Dependencies{inValues: BurdenEigenValues{Prop: b.Prop}}
}

// Name is BCUT<prop>-<rank>h counting from the highest, or
// BCUT<prop>-<rank>l counting from the lowest.
func (b BCUT) Name() string {
	if b.Nth < 0 {
		return "BCUT" + b.Prop.Symbol + "-" + strconv.Itoa(-b.Nth) + "l"
	}

	return "BCUT" + b.Prop.Symbol + "-" + strconv.Itoa(b.Nth+1) + "h"
}

func (b BCUT) Description() string {
	var which string
	if b.Nth < 0 {
		which = strconv.Itoa(-b.Nth) + "-th lowest"
	} else {
		which = strconv.Itoa(b.Nth+1) + "-th highest"
	}
	desc := b.Prop.Description
	if desc == "" {
		desc = b.Prop.Symbol
	}

	return which + " eigenvalue of Burden matrix weighted by " + desc
}

// Calculate picks the eigenvalue; a rank beyond the atom count is missing.
func (b BCUT) Calculate(_ *descriptor.Env, in descriptor.Inputs) (any, error) {
	ev, err := descriptor.Input[[]float64](in, inValues)
	if err != nil {
		return nil, err
	}
	i := b.Nth
	if i < 0 {
		i += len(ev)
	}
	if i < 0 || i >= len(ev) {
		return nil, descriptor.Failf(descriptor.ErrRankOutOfRange, "rank %d of %d eigenvalues", b.Nth, len(ev))
	}

	return ev[i], nil
}

// ---------- parameters ----------

func propParam(p atomprop.Property) descriptor.Param {
	return descriptor.Func(p.Symbol, p.Fn)
}

// parseProp resolves a property parameter: registered symbols come from
// atomprop, anything else must carry its own atomprop.Func.
func parseProp(ps descriptor.Params, i int) (atomprop.Property, error) {
	name, fn, err := ps.Func(i)
	if err != nil {
		return atomprop.Property{}, err
	}
	if p, err := atomprop.Lookup(name); err == nil {
		return p, nil
	}
	f, ok := fn.(atomprop.Func)
	if !ok || f == nil {
		return atomprop.Property{}, fmt.Errorf("property %q: %w", name, descriptor.ErrParameters)
	}

	return atomprop.Custom(name, f), nil
}

func newBurden(ps descriptor.Params) (descriptor.Descriptor, error) {
	return Burden{}, ps.Expect(0)
}

func newEigenValues(ps descriptor.Params) (descriptor.Descriptor, error) {
	if err := ps.Expect(2); err != nil {
		return nil, err
	}
	p, err := parseProp(ps, 0)
	if err != nil {
		return nil, err
	}
	g, err := ps.Bool(1)
	if err != nil {
		return nil, err
	}
	if g != p.GasteigerCharges {
		return nil, fmt.Errorf("property %q: gasteiger flag %t: %w", p.Symbol, g, descriptor.ErrParameters)
	}

	return BurdenEigenValues{Prop: p}, nil
}

func newBCUT(ps descriptor.Params) (descriptor.Descriptor, error) {
	if err := ps.Expect(2); err != nil {
		return nil, err
	}
	p, err := parseProp(ps, 0)
	if err != nil {
		return nil, err
	}
	nth, err := ps.Int(1)
	if err != nil {
		return nil, err
	}

	return BCUT{Prop: p, Nth: nth}, nil
}

// Preset yields BCUT for every property that needs at most intrinsic
// state and charges, highest and lowest eigenvalue each, property-major.
func Preset() iter.Seq[descriptor.Descriptor] {
	return func(yield func(descriptor.Descriptor) bool) {
		for _, p := range atomprop.Properties(atomprop.Capabilities{IState: true, Charge: true}) {
			for _, n := range PresetRanks {
				if !yield(BCUT{Prop: p, Nth: n}) {
					return
				}
			}
		}
	}
}

// Kinds returns the registration entries of the three stages.
func Kinds() []descriptor.Kind {
	return []descriptor.Kind{
		{Name: kindBurden, New: newBurden, Description: "Burden matrix"},
		{Name: kindEigenValues, New: newEigenValues, Description: "sorted eigenvalues of the property-weighted Burden matrix"},
		{Name: kindBCUT, New: newBCUT, Preset: Preset, Description: "BCUT eigenvalue descriptor"},
	}
}
