// Package molecule defines the molecular-graph collaborator consumed by the
// descriptor engine, plus an in-memory implementation.
//
// 🚀 What is in here?
//
//   - Molecule / Atom / Bond - the read-only interface descriptors compute on:
//     stable atom indices 0..N-1, bond endpoints, degrees, real-valued bond
//     orders (possibly unknown), optional 3D coordinates and partial charges.
//   - Form - the preparation state of a structure (explicit hydrogens,
//     kekulized). Preparation itself (hydrogen addition, kekulization) is done
//     by an external toolkit; a Mol only carries the forms it was given.
//   - Mol - a thread-safe builder/holder implementing Molecule.
//   - Chain, Ring, Star - skeleton constructors for tests and examples.
//
// Errors:
//
//	ErrUnknownElement   - element symbol not in the periodic table.
//	ErrAtomNotFound     - bond endpoint index is out of range.
//	ErrSelfBond         - bond from an atom to itself.
//	ErrDuplicateBond    - a second bond between the same pair of atoms.
//	ErrBadOrder         - negative, NaN or infinite bond order.
//	ErrCoordinates      - coordinate count does not match the atom count.
//	ErrFormUnavailable  - no variant of the molecule in the requested form.
//	ErrFormConflict     - a variant for that form is already attached.
//	ErrTooFewAtoms      - skeleton constructor called with too few atoms.
//
// Quick ASCII example (ethanol skeleton, hydrogens implicit):
//
//	C───C───O
//
//	m := molecule.New()
//	c1, _ := m.AddAtom("C", molecule.WithHydrogens(3))
//	c2, _ := m.AddAtom("C", molecule.WithHydrogens(2))
//	o, _ := m.AddAtom("O", molecule.WithHydrogens(1))
//	_ = m.AddBond(c1, c2)
//	_ = m.AddBond(c2, o)
package molecule
