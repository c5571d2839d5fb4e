// Package molecule: interfaces, forms, sentinel errors and options.
package molecule

import (
	"errors"
	"fmt"
)

// Sentinel errors for molecule construction and lookup.
var (
	// ErrUnknownElement indicates an element symbol outside the periodic table.
	ErrUnknownElement = errors.New("molecule: unknown element")

	// ErrAtomNotFound indicates a bond endpoint index that does not exist.
	ErrAtomNotFound = errors.New("molecule: atom not found")

	// ErrSelfBond indicates a bond from an atom to itself.
	ErrSelfBond = errors.New("molecule: self bond not allowed")

	// ErrDuplicateBond indicates a second bond between the same atom pair.
	ErrDuplicateBond = errors.New("molecule: duplicate bond")

	// ErrBadOrder indicates a negative or non-finite bond order.
	ErrBadOrder = errors.New("molecule: bad bond order")

	// ErrCoordinates indicates a coordinate set that does not match the atoms.
	ErrCoordinates = errors.New("molecule: coordinates do not match atoms")

	// ErrFormUnavailable indicates that no variant exists in the requested form.
	ErrFormUnavailable = errors.New("molecule: form unavailable")

	// ErrFormConflict indicates that a variant in that form is already attached.
	ErrFormConflict = errors.New("molecule: form already attached")

	// ErrTooFewAtoms indicates a skeleton constructor below its minimum size.
	ErrTooFewAtoms = errors.New("molecule: too few atoms")
)

// Form is the preparation state of a molecular graph.
type Form struct {
	// ExplicitHydrogens is true when hydrogens are graph vertices.
	ExplicitHydrogens bool

	// Kekulized is true when aromatic bonds were assigned alternating 1/2 orders.
	Kekulized bool
}

// String renders the form as e.g. "H+K", "H", "K" or "-".
func (f Form) String() string {
	switch {
	case f.ExplicitHydrogens && f.Kekulized:
		return "H+K"
	case f.ExplicitHydrogens:
		return "H"
	case f.Kekulized:
		return "K"
	default:
		return "-"
	}
}

// Atom is a read-only view of one vertex of a molecular graph.
type Atom interface {
	// Index is the stable position 0..N-1.
	Index() int

	// AtomicNumber is Z (0 for a dummy atom).
	AtomicNumber() int

	// Symbol is the element symbol.
	Symbol() string

	// Degree is the number of bonded neighbors in this graph.
	Degree() int

	// TotalHydrogens counts implicit plus explicit attached hydrogens.
	TotalHydrogens() int

	// PartialCharge returns the (Gasteiger) partial charge if annotated.
	PartialCharge() (float64, bool)
}

// Bond is a read-only view of one edge of a molecular graph.
type Bond interface {
	// Begin is the index of the first atom.
	Begin() int

	// End is the index of the second atom.
	End() int

	// Order is the bond order as a real number (1, 1.5, 2, 3); ok=false when unknown.
	Order() (float64, bool)
}

// Molecule is the interface the descriptor engine requires from a chemistry
// toolkit. Implementations must be safe for concurrent readers and must not
// change while descriptors are evaluated.
type Molecule interface {
	// NumAtoms returns the atom count N.
	NumAtoms() int

	// Atoms enumerates atoms in index order.
	Atoms() []Atom

	// Bonds enumerates bonds in insertion order.
	Bonds() []Bond

	// Connected reports whether the graph has at most one fragment.
	Connected() bool

	// Coordinates returns one 3D point per atom, ok=false if not embedded.
	Coordinates() ([][3]float64, bool)

	// Form reports the preparation state of this graph.
	Form() Form

	// Prepared returns the variant of this structure in form f
	// (itself when f == Form()), or ErrFormUnavailable.
	Prepared(f Form) (Molecule, error)
}

// Option configures a Mol before creation.
type Option func(m *Mol)

// WithExplicitHydrogens marks the Mol as carrying hydrogens as vertices.
func WithExplicitHydrogens() Option {
	return func(m *Mol) { m.form.ExplicitHydrogens = true }
}

// WithKekulized marks the Mol as kekulized.
func WithKekulized() Option {
	return func(m *Mol) { m.form.Kekulized = true }
}

// WithName attaches a human-readable name used in logs and results.
func WithName(name string) Option {
	return func(m *Mol) { m.name = name }
}

// AtomOption configures an atom when added.
type AtomOption func(*atomRecord)

// WithHydrogens sets the implicit hydrogen count of the atom.
func WithHydrogens(n int) AtomOption {
	return func(a *atomRecord) {
		if n > 0 {
			a.implicitH = n
		}
	}
}

// WithPartialCharge annotates the atom with a partial charge.
func WithPartialCharge(q float64) AtomOption {
	return func(a *atomRecord) {
		a.charge = q
		a.hasCharge = true
	}
}

// BondOption configures a bond when added.
type BondOption func(*bondRecord)

// WithOrder sets the bond order (default 1).
func WithOrder(order float64) BondOption {
	return func(b *bondRecord) {
		b.order = order
		b.hasOrder = true
	}
}

// WithUnknownOrder marks the bond order as unavailable.
func WithUnknownOrder() BondOption {
	return func(b *bondRecord) { b.hasOrder = false }
}

// atomErrorf wraps err with the operation and atom index.
func atomErrorf(op string, idx int, err error) error {
	return fmt.Errorf("%s(%d): %w", op, idx, err)
}
