// SPDX-License-Identifier: MIT

package atomprop

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrTable indicates a malformed embedded element table.
var ErrTable = errors.New("atomprop: invalid element table")

//go:embed elements.yaml
var elementsYAML []byte

// Element holds the per-element constants of the embedded table.
type Element struct {
	Symbol              string  `yaml:"symbol"`
	Z                   int     `yaml:"z"`
	Mass                float64 `yaml:"mass"`
	VdWRadius           float64 `yaml:"vdw"`
	SandersonEN         float64 `yaml:"se"`
	PaulingEN           float64 `yaml:"pe"`
	AllredRochowEN      float64 `yaml:"are"`
	Polarizability      float64 `yaml:"pol"`
	IonizationPotential float64 `yaml:"ip"`
	ValenceElectrons    int     `yaml:"valence"`
	Period              int     `yaml:"period"`
}

type tableYAML struct {
	Elements []Element `yaml:"elements"`
}

// table is parsed once on first use.
var table = sync.OnceValues(func() (map[int]Element, error) {
	return parseTable(elementsYAML)
})

func parseTable(data []byte) (map[int]Element, error) {
	var doc tableYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTable, err)
	}
	if len(doc.Elements) == 0 {
		return nil, fmt.Errorf("%w: no elements", ErrTable)
	}

	out := make(map[int]Element, len(doc.Elements))
	for _, e := range doc.Elements {
		if e.Z <= 0 || e.Symbol == "" {
			return nil, fmt.Errorf("%w: element %q has Z=%d", ErrTable, e.Symbol, e.Z)
		}
		if e.Period <= 0 {
			return nil, fmt.Errorf("%w: element %s has period %d", ErrTable, e.Symbol, e.Period)
		}
		if _, dup := out[e.Z]; dup {
			return nil, fmt.Errorf("%w: duplicate Z=%d", ErrTable, e.Z)
		}
		out[e.Z] = e
	}

	return out, nil
}

// ElementOf returns the table entry for atomic number z.
// The error is non-nil only if the embedded table itself is broken.
func ElementOf(z int) (Element, bool, error) {
	t, err := table()
	if err != nil {
		return Element{}, false, err
	}
	e, ok := t[z]

	return e, ok, nil
}
