// SPDX-License-Identifier: MIT

package descriptor

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/moldesc/molecule"
)

// observer receives evaluation events; the Calculator feeds them to metrics.
type observer interface {
	computed(d Descriptor)
	missing(d Descriptor, err *MissingError)
	cacheHit(d Descriptor)
}

// Context is the evaluation state of exactly one molecule: the molecule
// reference and a cache from descriptor identity to Value.
//
// A Context is created with NewContext and never rebound to another
// molecule. Evaluate is safe for concurrent use; concurrent requests for
// the same descriptor observe one computation.
type Context struct {
	mol molecule.Molecule
	obs observer

	mu       sync.Mutex
	cache    map[string]Value
	inflight map[string]struct{}
	counts   map[string]int
	hits     int
}

// NewContext binds a fresh, empty cache to mol.
func NewContext(mol molecule.Molecule) *Context {
	return newContext(mol, nil)
}

func newContext(mol molecule.Molecule, obs observer) *Context {
	return &Context{
		mol:      mol,
		obs:      obs,
		cache:    make(map[string]Value),
		inflight: make(map[string]struct{}),
		counts:   make(map[string]int),
	}
}

// Molecule returns the molecule this context belongs to.
func (c *Context) Molecule() molecule.Molecule { return c.mol }

// Evaluate returns the Value of d for this context's molecule.
//
// Dependencies are resolved first, in sorted name order, and every
// descriptor identity is computed at most once. A missing dependency makes
// d missing with the same *MissingError, without calling d.Calculate.
// The returned error is non-nil only for defects.
func (c *Context) Evaluate(d Descriptor) (Value, error) {
	if d == nil {
		return Value{}, fmt.Errorf("Evaluate: nil descriptor: %w", ErrParameters)
	}
	if c.mol == nil {
		return Value{}, fmt.Errorf("Evaluate(%s): %w", Repr(d), ErrNilMolecule)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.evaluate(d)
}

// evaluate is Evaluate without locking; it recurses into dependencies.
func (c *Context) evaluate(d Descriptor) (Value, error) {
	// 1. Memoized result (computed or missing)
	key := Key(d)
	if v, ok := c.cache[key]; ok {
		c.hits++
		if c.obs != nil {
			c.obs.cacheHit(d)
		}
		return v, nil
	}
	// 2. A key already on the stack means d (transitively) depends on itself
	if _, busy := c.inflight[key]; busy {
		return Value{}, fmt.Errorf("Evaluate(%s): %w", Repr(d), ErrDependencyCycle)
	}
	c.inflight[key] = struct{}{}
	defer delete(c.inflight, key)

	// 3. Molecule form
	req := d.Requirements()
	mol, err := c.prepare(req)
	if err != nil {
		return Value{}, fmt.Errorf("Evaluate(%s): %w", Repr(d), err)
	}
	if req.Connected && !mol.Connected() {
		return c.store(key, d, &MissingError{Reason: ErrFragmented}), nil
	}

	// 4. Dependencies
	deps := d.Dependencies()
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	in := make(Inputs, len(names))
	for _, name := range names {
		switch dep := deps[name].(type) {
		case nil:
			continue
		case Descriptor:
			v, err := c.evaluate(dep)
			if err != nil {
				return Value{}, err
			}
			if v.IsMissing() {
				return c.store(key, d, v.miss), nil
			}
			in[name] = v.v
		default:
			in[name] = dep
		}
	}

	// 5. Compute
	c.counts[key]++
	out, err := d.Calculate(&Env{ctx: c, req: req, mol: mol}, in)
	if err == nil {
		if f, ok := out.(float64); ok {
			err = checkFloat(f)
		}
	}
	if err != nil {
		me, ok := AsMissing(err)
		if !ok {
			return Value{}, fmt.Errorf("Evaluate(%s): %w", Repr(d), err)
		}
		if me.Origin == "" {
			cp := *me
			cp.Origin = Repr(d)
			me = &cp
		}
		return c.store(key, d, me), nil
	}
	if c.obs != nil {
		c.obs.computed(d)
	}
	v := Computed(out)
	c.cache[key] = v

	return v, nil
}

func (c *Context) store(key string, d Descriptor, me *MissingError) Value {
	if me.Origin == "" {
		me.Origin = Repr(d)
	}
	if c.obs != nil {
		c.obs.missing(d, me)
	}
	v := Missing(me)
	c.cache[key] = v

	return v
}

// Supports reports whether this context can supply req, ignoring
// connectivity. Unsupported requirements are ErrUnsupported defects.
func (c *Context) Supports(req Requirements) error {
	if c.mol == nil {
		return ErrNilMolecule
	}
	_, err := c.prepare(req)

	return err
}

func (c *Context) prepare(req Requirements) (molecule.Molecule, error) {
	mol, err := c.mol.Prepared(req.Form())
	if err != nil {
		return nil, fmt.Errorf("form %s: %v: %w", req.Form(), err, ErrUnsupported)
	}
	if req.ThreeD {
		if _, ok := mol.Coordinates(); !ok {
			return nil, fmt.Errorf("3D coordinates not available: %w", ErrUnsupported)
		}
	}

	return mol, nil
}

// Computations returns how many times d.Calculate ran in this context
// (0 or 1 for any descriptor).
func (c *Context) Computations(d Descriptor) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.counts[Key(d)]
}

// Len returns the number of cached values.
func (c *Context) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.cache)
}

// Hits returns the number of cache hits so far.
func (c *Context) Hits() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hits
}

// Env is the molecule view handed to Calculate.
type Env struct {
	ctx *Context
	req Requirements
	mol molecule.Molecule
}

// Mol returns the molecule in the form the descriptor requested.
func (e *Env) Mol() molecule.Molecule { return e.mol }

// NumAtoms returns the atom count of Mol.
func (e *Env) NumAtoms() int { return e.mol.NumAtoms() }

// Coordinates returns the 3D embedding. Descriptors that did not declare
// Requirements.ThreeD get an ErrUnsupported defect.
func (e *Env) Coordinates() ([][3]float64, error) {
	if !e.req.ThreeD {
		return nil, fmt.Errorf("Coordinates: 3D not declared: %w", ErrUnsupported)
	}
	xyz, ok := e.mol.Coordinates()
	if !ok {
		return nil, fmt.Errorf("Coordinates: %w", ErrUnsupported)
	}

	return xyz, nil
}
