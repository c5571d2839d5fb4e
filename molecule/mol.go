// File: mol.go
// Role: in-memory Molecule implementation.
//
// Concurrency:
//   - All state is guarded by one sync.RWMutex; builders take the write lock,
//     every Molecule method takes the read lock.
//   - Once handed to the descriptor engine a Mol must not be mutated; the lock
//     keeps racing builders from corrupting it, it does not make results stable.
//
// Determinism:
//   - Atoms() is index ordered, Bonds() insertion ordered, neighbor lists sorted
//     by insertion.
package molecule

import (
	"fmt"
	"math"
	"sync"
)

// atomRecord stores one atom; it implements Atom through its owning Mol.
type atomRecord struct {
	mol       *Mol
	idx       int
	z         int
	symbol    string
	implicitH int
	charge    float64
	hasCharge bool
}

// bondRecord stores one bond; it implements Bond.
type bondRecord struct {
	begin, end int
	order      float64
	hasOrder   bool
}

// Mol is a thread-safe, in-memory molecular graph.
type Mol struct {
	mu sync.RWMutex

	name   string
	form   Form
	atoms  []*atomRecord
	bonds  []*bondRecord
	adj    [][]int           // adj[i] = neighbor indices of atom i
	pairs  map[[2]int]int    // {min,max} -> bond index
	coords [][3]float64      // nil when not embedded
	forms  map[Form]Molecule // attached variants (never contains m.form)
}

var (
	_ Molecule = (*Mol)(nil)
	_ Atom     = (*atomRecord)(nil)
	_ Bond     = (*bondRecord)(nil)
)

// New creates an empty Mol in the hydrogen-suppressed, aromatic form unless
// options say otherwise.
// Complexity: O(1)
func New(opts ...Option) *Mol {
	m := &Mol{
		pairs: make(map[[2]int]int),
		forms: make(map[Form]Molecule),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Name returns the name given with WithName ("" if none).
func (m *Mol) Name() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.name
}

// AddAtom appends an atom of the given element and returns its index.
// Returns ErrUnknownElement for symbols outside the periodic table.
// Complexity: O(1) amortized.
func (m *Mol) AddAtom(symbol string, opts ...AtomOption) (int, error) {
	z, ok := AtomicNumber(symbol)
	if !ok {
		return -1, fmt.Errorf("AddAtom(%q): %w", symbol, ErrUnknownElement)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	a := &atomRecord{mol: m, idx: len(m.atoms), z: z, symbol: symbol}
	for _, opt := range opts {
		opt(a)
	}
	m.atoms = append(m.atoms, a)
	m.adj = append(m.adj, nil)

	return a.idx, nil
}

// AddBond connects atoms i and j. The default order is 1; use WithOrder or
// WithUnknownOrder to change it.
//
// Errors: ErrAtomNotFound, ErrSelfBond, ErrDuplicateBond, ErrBadOrder.
// Complexity: O(1) amortized.
func (m *Mol) AddBond(i, j int, opts ...BondOption) error {
	b := &bondRecord{begin: i, end: j, order: 1, hasOrder: true}
	for _, opt := range opts {
		opt(b)
	}
	if b.hasOrder && (b.order < 0 || math.IsNaN(b.order) || math.IsInf(b.order, 0)) {
		return fmt.Errorf("AddBond(%d,%d): %w", i, j, ErrBadOrder)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.atoms)
	if i < 0 || i >= n {
		return atomErrorf("AddBond", i, ErrAtomNotFound)
	}
	if j < 0 || j >= n {
		return atomErrorf("AddBond", j, ErrAtomNotFound)
	}
	if i == j {
		return atomErrorf("AddBond", i, ErrSelfBond)
	}
	key := [2]int{min(i, j), max(i, j)}
	if _, dup := m.pairs[key]; dup {
		return fmt.Errorf("AddBond(%d,%d): %w", i, j, ErrDuplicateBond)
	}

	m.pairs[key] = len(m.bonds)
	m.bonds = append(m.bonds, b)
	m.adj[i] = append(m.adj[i], j)
	m.adj[j] = append(m.adj[j], i)

	return nil
}

// SetCoordinates embeds the molecule in 3D, one point per atom.
// Returns ErrCoordinates when the count does not match NumAtoms.
func (m *Mol) SetCoordinates(coords [][3]float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(coords) != len(m.atoms) {
		return fmt.Errorf("SetCoordinates: %d points for %d atoms: %w", len(coords), len(m.atoms), ErrCoordinates)
	}
	m.coords = append([][3]float64(nil), coords...)

	return nil
}

// AddForm attaches a prepared variant of the same structure (for example the
// explicit-hydrogen graph produced by an external toolkit).
// Returns ErrFormConflict if the form equals m's own or is already attached.
func (m *Mol) AddForm(variant Molecule) error {
	if variant == nil {
		return fmt.Errorf("AddForm: nil variant: %w", ErrFormUnavailable)
	}
	f := variant.Form()

	m.mu.Lock()
	defer m.mu.Unlock()

	if f == m.form {
		return fmt.Errorf("AddForm(%s): %w", f, ErrFormConflict)
	}
	if _, dup := m.forms[f]; dup {
		return fmt.Errorf("AddForm(%s): %w", f, ErrFormConflict)
	}
	m.forms[f] = variant

	return nil
}

// NumAtoms returns the atom count.
func (m *Mol) NumAtoms() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.atoms)
}

// Atoms returns all atoms in index order.
func (m *Mol) Atoms() []Atom {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Atom, len(m.atoms))
	for i, a := range m.atoms {
		out[i] = a
	}

	return out
}

// Bonds returns all bonds in insertion order.
func (m *Mol) Bonds() []Bond {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Bond, len(m.bonds))
	for i, b := range m.bonds {
		out[i] = b
	}

	return out
}

// Neighbors returns a copy of the neighbor indices of atom i.
func (m *Mol) Neighbors(i int) ([]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i < 0 || i >= len(m.atoms) {
		return nil, atomErrorf("Neighbors", i, ErrAtomNotFound)
	}

	return append([]int(nil), m.adj[i]...), nil
}

// Coordinates returns the 3D embedding if one was set.
func (m *Mol) Coordinates() ([][3]float64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.coords == nil {
		return nil, false
	}

	return append([][3]float64(nil), m.coords...), true
}

// Form reports the preparation state of m.
func (m *Mol) Form() Form {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.form
}

// Prepared returns m itself for its own form, an attached variant otherwise.
func (m *Mol) Prepared(f Form) (Molecule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if f == m.form {
		return m, nil
	}
	if v, ok := m.forms[f]; ok {
		return v, nil
	}

	return nil, fmt.Errorf("Prepared(%s): %w", f, ErrFormUnavailable)
}

// ---------- Atom ----------

func (a *atomRecord) Index() int        { return a.idx }
func (a *atomRecord) AtomicNumber() int { return a.z }
func (a *atomRecord) Symbol() string    { return a.symbol }

func (a *atomRecord) Degree() int {
	a.mol.mu.RLock()
	defer a.mol.mu.RUnlock()

	return len(a.mol.adj[a.idx])
}

// TotalHydrogens adds explicit hydrogen neighbors to the implicit count.
func (a *atomRecord) TotalHydrogens() int {
	a.mol.mu.RLock()
	defer a.mol.mu.RUnlock()

	h := a.implicitH
	for _, nb := range a.mol.adj[a.idx] {
		if a.mol.atoms[nb].z == 1 {
			h++
		}
	}

	return h
}

func (a *atomRecord) PartialCharge() (float64, bool) { return a.charge, a.hasCharge }

// ---------- Bond ----------

func (b *bondRecord) Begin() int             { return b.begin }
func (b *bondRecord) End() int               { return b.end }
func (b *bondRecord) Order() (float64, bool) { return b.order, b.hasOrder }
