// SPDX-License-Identifier: MIT

// Package catalog is the static registration table of every descriptor
// family, and builds calculators from a config.Config.
package catalog

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/moldesc/bcut"
	"github.com/katalvlaran/moldesc/config"
	"github.com/katalvlaran/moldesc/descriptor"
	"github.com/katalvlaran/moldesc/spectral"
	"github.com/katalvlaran/moldesc/topomatrix"
	"github.com/prometheus/client_golang/prometheus"
)

// families lists the registration entries of every package, in
// registration order.
var families = []func() []descriptor.Kind{
	topomatrix.Kinds,
	spectral.Kinds,
	bcut.Kinds,
}

// Registry returns a fresh registry holding every known kind.
func Registry() *descriptor.Registry {
	reg := descriptor.NewRegistry()
	for _, kinds := range families {
		reg.MustRegister(kinds()...)
	}

	return reg
}

// PresetKinds returns the kinds of reg that have a preset, ascending.
func PresetKinds(reg *descriptor.Registry) []string {
	var out []string
	for _, name := range reg.Kinds() {
		if k, _ := reg.Lookup(name); k.Preset != nil {
			out = append(out, name)
		}
	}

	return out
}

// NewCalculator builds a calculator over Registry with the presets of
// cfg.Descriptors, or of every PresetKinds entry when the list is empty.
// Metrics are recorded on promReg when cfg.Metrics is set. A nil logger
// is replaced by cfg.Logger(os.Stderr). Inputs are assumed to carry no
// alternate forms or coordinates, so descriptors needing them are rejected.
func NewCalculator(cfg config.Config, promReg prometheus.Registerer, logger *slog.Logger) (*descriptor.Calculator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("catalog.NewCalculator: %w", err)
	}
	if logger == nil {
		logger = cfg.Logger(os.Stderr)
	}
	opts := []descriptor.Option{
		descriptor.WithLogger(logger),
		descriptor.WithWorkers(cfg.Workers),
		descriptor.WithCapabilities(descriptor.Requirements{}),
	}
	if cfg.Metrics && promReg != nil {
		opts = append(opts, descriptor.WithMetrics(promReg))
	}

	reg := Registry()
	calc := descriptor.NewCalculator(reg, opts...)
	kinds := cfg.Descriptors
	if len(kinds) == 0 {
		kinds = PresetKinds(reg)
	}
	if err := calc.RegisterPreset(kinds...); err != nil {
		return nil, fmt.Errorf("catalog.NewCalculator: %w", err)
	}
	logger.Debug("calculator ready", "kinds", len(kinds), "descriptors", calc.Len())

	return calc, nil
}
