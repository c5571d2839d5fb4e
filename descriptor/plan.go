// SPDX-License-Identifier: MIT

package descriptor

import (
	"fmt"
	"sort"
)

// DFS colors.
const (
	white = iota
	gray
	black
)

// planner orders a descriptor set so that every dependency precedes its
// dependents. It walks the static Dependencies() graph depth first.
type planner struct {
	state map[string]int
	order []Descriptor
}

// plan returns the deduplicated dependency-first order of roots and all
// their transitive descriptor dependencies. Roots are visited in the given
// order and dependencies in sorted name order, so the result is
// deterministic. A back edge yields ErrDependencyCycle.
// Complexity: O(V + E) descriptor visits, each computing one Key.
func plan(roots []Descriptor) ([]Descriptor, error) {
	p := &planner{state: make(map[string]int, len(roots))}
	for _, d := range roots {
		if err := p.visit(d); err != nil {
			return nil, err
		}
	}

	return p.order, nil
}

func (p *planner) visit(d Descriptor) error {
	key := Key(d)
	switch p.state[key] {
	case gray:
		return fmt.Errorf("plan(%s): %w", Repr(d), ErrDependencyCycle)
	case black:
		return nil
	}
	p.state[key] = gray

	deps := d.Dependencies()
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		dep, ok := deps[name].(Descriptor)
		if !ok || dep == nil {
			continue
		}
		if err := p.visit(dep); err != nil {
			return err
		}
	}

	p.state[key] = black
	p.order = append(p.order, d)

	return nil
}
