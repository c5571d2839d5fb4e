// SPDX-License-Identifier: MIT

package descriptor

import (
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/moldesc/molecule"
	"github.com/prometheus/client_golang/prometheus"
)

// Calculator evaluates a fixed, validated descriptor set over molecules.
//
// Register and RegisterPreset build the set; Calculate and Batch run it.
// Building and running must not overlap.
type Calculator struct {
	reg     *Registry
	descs   []Descriptor
	keys    map[string]struct{}
	order   []Descriptor
	logger  *slog.Logger
	workers int
	metrics *metrics
	caps    *Requirements
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithLogger sets the structured logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Calculator) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithWorkers bounds the goroutines used by Batch; n <= 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *Calculator) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		c.workers = n
	}
}

// WithMetrics registers the Calculator's collectors against reg.
// It panics if they are already registered there.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Calculator) {
		c.metrics = newMetrics(reg)
	}
}

// WithCapabilities declares the molecule forms and coordinates every input
// will provide. Register then rejects descriptors, dependencies included,
// whose Requirements exceed caps with ErrUnsupported. Connected is ignored:
// a fragmented molecule yields missing values, not a defect.
// Without this option requirements are checked per molecule only.
func WithCapabilities(caps Requirements) Option {
	return func(c *Calculator) {
		c.caps = &caps
	}
}

// NewCalculator returns an empty Calculator bound to reg.
// A nil reg gets an empty Registry, so every Register call will fail.
func NewCalculator(reg *Registry, opts ...Option) *Calculator {
	if reg == nil {
		reg = NewRegistry()
	}
	c := &Calculator{
		reg:     reg,
		keys:    make(map[string]struct{}),
		logger:  slog.Default(),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Register validates ds and appends the new ones to the set.
//
// Each descriptor must belong to a registered kind, rebuild to an equal
// descriptor from its Parameters, and keep the dependency graph acyclic.
// With WithCapabilities, every descriptor of the plan must also fit the
// declared capabilities. Duplicates (by identity) are skipped. On error nothing is added.
func (c *Calculator) Register(ds ...Descriptor) error {
	added := make([]Descriptor, 0, len(ds))
	seen := make(map[string]struct{}, len(ds))
	for _, d := range ds {
		if d == nil {
			return fmt.Errorf("Register: nil descriptor: %w", ErrParameters)
		}
		if _, err := c.reg.Rebuild(d); err != nil {
			return fmt.Errorf("Register: %w", err)
		}
		key := Key(d)
		if _, dup := c.keys[key]; dup {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		added = append(added, d)
	}

	all := append(append([]Descriptor(nil), c.descs...), added...)
	order, err := plan(all)
	if err != nil {
		return fmt.Errorf("Register: %w", err)
	}
	if c.caps != nil {
		for _, d := range order {
			if err = checkCapabilities(d, *c.caps); err != nil {
				return fmt.Errorf("Register: %w", err)
			}
		}
	}

	c.descs = all
	c.order = order
	for key := range seen {
		c.keys[key] = struct{}{}
	}
	c.logger.Debug("descriptors registered", "added", len(added), "total", len(c.descs), "plan", len(order))

	return nil
}

// RegisterPreset registers the preset instances of every named kind.
func (c *Calculator) RegisterPreset(kinds ...string) error {
	var ds []Descriptor
	for _, name := range kinds {
		seq, err := c.reg.Preset(name)
		if err != nil {
			return fmt.Errorf("RegisterPreset: %w", err)
		}
		for d := range seq {
			ds = append(ds, d)
		}
	}

	return c.Register(ds...)
}

// Descriptors returns the registered set in registration order.
func (c *Calculator) Descriptors() []Descriptor {
	return append([]Descriptor(nil), c.descs...)
}

// Len returns the size of the registered set.
func (c *Calculator) Len() int { return len(c.descs) }

// Plan returns every descriptor the set evaluates, dependencies included,
// each once and before its dependents.
func (c *Calculator) Plan() []Descriptor {
	return append([]Descriptor(nil), c.order...)
}

// Calculate evaluates the set for mol in a fresh Context.
// Missing values are reported in the Result; defects are returned.
func (c *Calculator) Calculate(mol molecule.Molecule) (*Result, error) {
	if mol == nil {
		return nil, fmt.Errorf("Calculate: %w", ErrNilMolecule)
	}
	start := time.Now()

	var obs observer
	if c.metrics != nil {
		obs = c.metrics
	}
	ctx := newContext(mol, obs)
	values := make([]Value, len(c.descs))
	for i, d := range c.descs {
		v, err := ctx.Evaluate(d)
		if err != nil {
			return nil, fmt.Errorf("Calculate: %w", err)
		}
		if v.IsMissing() {
			c.logger.Debug("missing value",
				"descriptor", Name(d),
				"id", strconv.FormatUint(Hash(d), 16),
				"reason", v.Err(),
			)
		}
		values[i] = v
	}
	c.metrics.observeDuration(time.Since(start).Seconds())

	return &Result{mol: mol, descs: c.Descriptors(), values: values}, nil
}

// checkCapabilities reports the requirements of d that caps cannot supply.
func checkCapabilities(d Descriptor, caps Requirements) error {
	req := d.Requirements()
	var unmet []string
	if req.ExplicitHydrogens && !caps.ExplicitHydrogens {
		unmet = append(unmet, "explicit hydrogens")
	}
	if req.Kekulize && !caps.Kekulize {
		unmet = append(unmet, "kekulized form")
	}
	if req.ThreeD && !caps.ThreeD {
		unmet = append(unmet, "3D coordinates")
	}
	if len(unmet) > 0 {
		return fmt.Errorf("%s needs %s: %w", Repr(d), strings.Join(unmet, ", "), ErrUnsupported)
	}

	return nil
}
