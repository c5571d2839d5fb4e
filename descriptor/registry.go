// SPDX-License-Identifier: MIT

package descriptor

import (
	"fmt"
	"iter"
	"sort"
	"strings"
	"sync"
)

// Kind is one entry of the registration table.
type Kind struct {
	// Name must equal Descriptor.Kind() of every instance New builds.
	Name string

	// New rebuilds a descriptor from its parameter tuple.
	New func(Params) (Descriptor, error)

	// Preset yields the standard instances of the kind. The returned
	// sequence is finite and may be iterated repeatedly. Optional.
	Preset func() iter.Seq[Descriptor]

	Description string
}

// Registry maps kind names to constructors. It is filled explicitly at
// startup; nothing registers itself.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]Kind
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]Kind)}
}

// Register adds k. Names must be non-empty and free of "(),\" characters.
func (r *Registry) Register(k Kind) error {
	if k.Name == "" || strings.ContainsAny(k.Name, "(),\" \t\n") {
		return fmt.Errorf("Register(%q): %w", k.Name, ErrInvalidKind)
	}
	if k.New == nil {
		return fmt.Errorf("Register(%q): no constructor: %w", k.Name, ErrNotImplemented)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.kinds[k.Name]; dup {
		return fmt.Errorf("Register(%q): %w", k.Name, ErrDuplicateKind)
	}
	r.kinds[k.Name] = k

	return nil
}

// MustRegister is Register that panics on error, for static tables.
func (r *Registry) MustRegister(ks ...Kind) {
	for _, k := range ks {
		if err := r.Register(k); err != nil {
			panic(err)
		}
	}
}

// Lookup returns the kind registered under name.
func (r *Registry) Lookup(name string) (Kind, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	k, ok := r.kinds[name]

	return k, ok
}

// Kinds returns every registered name in ascending order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Rebuild reconstructs d from d.Parameters() through its kind's
// constructor. The result must be Equal to d, otherwise ErrParameters.
func (r *Registry) Rebuild(d Descriptor) (Descriptor, error) {
	if d == nil {
		return nil, fmt.Errorf("Rebuild: nil descriptor: %w", ErrParameters)
	}
	k, ok := r.Lookup(d.Kind())
	if !ok {
		return nil, fmt.Errorf("Rebuild(%s): %w", Repr(d), ErrUnknownKind)
	}
	out, err := k.New(d.Parameters())
	if err != nil {
		return nil, fmt.Errorf("Rebuild(%s): %w", Repr(d), err)
	}
	if !Equal(d, out) {
		return nil, fmt.Errorf("Rebuild(%s): got %s: %w", Repr(d), Repr(out), ErrParameters)
	}

	return out, nil
}

// Preset returns the standard instances of the named kind.
func (r *Registry) Preset(name string) (iter.Seq[Descriptor], error) {
	k, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("Preset(%q): %w", name, ErrUnknownKind)
	}
	if k.Preset == nil {
		return nil, fmt.Errorf("Preset(%q): %w", name, ErrNotImplemented)
	}

	return k.Preset(), nil
}
