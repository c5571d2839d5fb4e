// SPDX-License-Identifier: MIT

package atomprop

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/moldesc/molecule"
)

// ErrUnknownProperty indicates a symbol that is not registered.
var ErrUnknownProperty = errors.New("atomprop: unknown property")

// Func maps an atom to a scalar; NaN means undefined for that atom.
type Func func(a molecule.Atom) float64

// Property is a named per-atom scalar.
//
// GasteigerCharges reports that the function reads partial charges, so the
// molecule must be charge-annotated. IState reports that the property is
// derived from the intrinsic state.
type Property struct {
	Symbol           string
	Description      string
	Fn               Func
	GasteigerCharges bool
	IState           bool
}

// Capabilities filters Properties by what the caller can support.
type Capabilities struct {
	Charge bool
	IState bool
}

// registered is the fixed enumeration order of built-in properties.
var registered = []Property{
	{Symbol: "c", Description: "gasteiger charge", Fn: partialCharge, GasteigerCharges: true},
	{Symbol: "dv", Description: "valence electrons", Fn: valenceDelta},
	{Symbol: "d", Description: "sigma electrons", Fn: sigmaDelta},
	{Symbol: "s", Description: "intrinsic state", Fn: intrinsicState, IState: true},
	{Symbol: "Z", Description: "atomic number", Fn: atomicNumber},
	{Symbol: "m", Description: "mass", Fn: elementField(func(e Element) float64 { return e.Mass })},
	{Symbol: "v", Description: "vdw volume", Fn: elementField(vdwVolume)},
	{Symbol: "se", Description: "sanderson EN", Fn: elementField(func(e Element) float64 { return e.SandersonEN })},
	{Symbol: "pe", Description: "pauling EN", Fn: elementField(func(e Element) float64 { return e.PaulingEN })},
	{Symbol: "are", Description: "allred-rochow EN", Fn: elementField(func(e Element) float64 { return e.AllredRochowEN })},
	{Symbol: "p", Description: "polarizability", Fn: elementField(func(e Element) float64 { return e.Polarizability })},
	{Symbol: "i", Description: "ionization potential", Fn: elementField(func(e Element) float64 { return e.IonizationPotential })},
}

// Lookup resolves a property symbol.
func Lookup(symbol string) (Property, error) {
	for _, p := range registered {
		if p.Symbol == symbol {
			return p, nil
		}
	}

	return Property{}, fmt.Errorf("Lookup(%q): %w", symbol, ErrUnknownProperty)
}

// Custom wraps a caller-supplied function as a Property.
func Custom(symbol string, fn Func) Property {
	return Property{Symbol: symbol, Fn: fn}
}

// Properties returns the registered properties whose requirements are
// covered by caps, in registration order.
func Properties(caps Capabilities) []Property {
	out := make([]Property, 0, len(registered))
	for _, p := range registered {
		if p.GasteigerCharges && !caps.Charge {
			continue
		}
		if p.IState && !caps.IState {
			continue
		}
		out = append(out, p)
	}

	return out
}

// Symbols lists every registered symbol in order.
func Symbols() []string {
	out := make([]string, len(registered))
	for i, p := range registered {
		out[i] = p.Symbol
	}

	return out
}

// ---------- property functions ----------

func element(a molecule.Atom) (Element, bool) {
	e, ok, err := ElementOf(a.AtomicNumber())
	if err != nil || !ok {
		return Element{}, false
	}

	return e, true
}

func elementField(get func(Element) float64) Func {
	return func(a molecule.Atom) float64 {
		e, ok := element(a)
		if !ok {
			return math.NaN()
		}

		return get(e)
	}
}

func vdwVolume(e Element) float64 {
	return 4.0 / 3.0 * math.Pi * e.VdWRadius * e.VdWRadius * e.VdWRadius
}

func atomicNumber(a molecule.Atom) float64 {
	return float64(a.AtomicNumber())
}

func partialCharge(a molecule.Atom) float64 {
	q, ok := a.PartialCharge()
	if !ok {
		return math.NaN()
	}

	return q
}

// valenceDelta is the Kier-Hall valence delta (Zv - h) / (Z - Zv - 1).
// The denominator is taken as 1 for first- and second-period atoms.
func valenceDelta(a molecule.Atom) float64 {
	e, ok := element(a)
	if !ok {
		return math.NaN()
	}
	den := e.Z - e.ValenceElectrons - 1
	if den < 1 {
		den = 1
	}

	return float64(e.ValenceElectrons-a.TotalHydrogens()) / float64(den)
}

func sigmaDelta(a molecule.Atom) float64 {
	return float64(a.Degree())
}

// intrinsicState is ((2/n)^2 * dv + 1) / d with n the principal quantum number.
func intrinsicState(a molecule.Atom) float64 {
	e, ok := element(a)
	if !ok {
		return math.NaN()
	}
	d := sigmaDelta(a)
	if d == 0 {
		return math.NaN()
	}
	f := 2.0 / float64(e.Period)

	return (f*f*valenceDelta(a) + 1) / d
}
