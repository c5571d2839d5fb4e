// SPDX-License-Identifier: MIT

package descriptor

import (
	"fmt"

	"github.com/katalvlaran/moldesc/molecule"
)

// Descriptor is a parameterized computation over one molecule.
//
// A descriptor is an immutable value: Kind and Parameters define its
// identity, and every other method must be a pure function of them.
type Descriptor interface {
	// Kind is the registered name of the descriptor family member.
	Kind() string

	// Parameters returns the tuple that rebuilds an equal descriptor
	// through the Registry.
	Parameters() Params

	// Requirements declares the molecule form the descriptor needs.
	Requirements() Requirements

	// Dependencies maps input names to descriptors (resolved first) or raw
	// values (passed through). Nil entries are omitted.
	Dependencies() Dependencies

	// Calculate computes the value from resolved inputs. Returning an error
	// built by Fail marks the value as missing; any other error is a defect.
	Calculate(env *Env, in Inputs) (any, error)
}

// Namer is implemented by descriptors with a short display name
// (for example "SpMax_A").
type Namer interface {
	Name() string
}

// Describer is implemented by descriptors with a one-line description.
type Describer interface {
	Description() string
}

// Requirements lists the molecule preparation a descriptor needs.
type Requirements struct {
	ExplicitHydrogens bool
	Kekulize          bool
	Connected         bool
	ThreeD            bool
}

// Form returns the molecule form matching r.
func (r Requirements) Form() molecule.Form {
	return molecule.Form{ExplicitHydrogens: r.ExplicitHydrogens, Kekulized: r.Kekulize}
}

// Dependencies is the named dependency mapping of a descriptor.
type Dependencies map[string]any

// Inputs holds resolved dependency values by name.
type Inputs map[string]any

// Input fetches a resolved dependency and asserts its type.
// A missing entry or wrong type is an ErrInputType defect.
func Input[T any](in Inputs, name string) (T, error) {
	var zero T
	raw, ok := in[name]
	if !ok {
		return zero, fmt.Errorf("input %q: not resolved: %w", name, ErrInputType)
	}
	v, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("input %q: got %T, want %T: %w", name, raw, zero, ErrInputType)
	}

	return v, nil
}

// Base supplies the defaults for descriptors without requirements or
// dependencies. Embed it and implement Kind, Parameters and Calculate.
type Base struct{}

// Requirements returns the zero Requirements.
func (Base) Requirements() Requirements { return Requirements{} }

// Dependencies returns nil.
func (Base) Dependencies() Dependencies { return nil }
