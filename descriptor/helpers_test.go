package descriptor_test

import (
	"errors"
	"iter"

	"github.com/katalvlaran/moldesc/descriptor"
)

// atomCount returns the atom count of the molecule.
type atomCount struct{ descriptor.Base }

func (atomCount) Kind() string                  { return "AtomCount" }
func (atomCount) Parameters() descriptor.Params { return nil }
func (atomCount) Calculate(env *descriptor.Env, _ descriptor.Inputs) (any, error) {
	return float64(env.NumAtoms()), nil
}

// scaled multiplies its base by a factor.
type scaled struct {
	descriptor.Base
	base   descriptor.Descriptor
	factor float64
}

func (scaled) Kind() string { return "Scaled" }
func (s scaled) Parameters() descriptor.Params {
	return descriptor.Params{descriptor.Desc(s.base), descriptor.Float(s.factor)}
}
func (s scaled) Dependencies() descriptor.Dependencies {
	return descriptor.Dependencies{"base": s.base, "unused": nil, "factor": s.factor}
}
func (s scaled) Calculate(_ *descriptor.Env, in descriptor.Inputs) (any, error) {
	b, err := descriptor.Input[float64](in, "base")
	if err != nil {
		return nil, err
	}
	f, err := descriptor.Input[float64](in, "factor")
	if err != nil {
		return nil, err
	}

	return b * f, nil
}

// reciprocal is 1/base, missing when base is zero.
type reciprocal struct {
	descriptor.Base
	base descriptor.Descriptor
}

func (reciprocal) Kind() string { return "Reciprocal" }
func (r reciprocal) Parameters() descriptor.Params {
	return descriptor.Params{descriptor.Desc(r.base)}
}
func (r reciprocal) Dependencies() descriptor.Dependencies {
	return descriptor.Dependencies{"base": r.base}
}
func (r reciprocal) Name() string { return "1/" + descriptor.Name(r.base) }
func (r reciprocal) Calculate(_ *descriptor.Env, in descriptor.Inputs) (any, error) {
	b, err := descriptor.Input[float64](in, "base")
	if err != nil {
		return nil, err
	}

	return descriptor.Numeric(func() float64 { return 1 / b })
}

// sum adds two descriptors.
type sum struct {
	descriptor.Base
	a, b descriptor.Descriptor
}

func (sum) Kind() string { return "Sum" }
func (s sum) Parameters() descriptor.Params {
	return descriptor.Params{descriptor.Desc(s.a), descriptor.Desc(s.b)}
}
func (s sum) Dependencies() descriptor.Dependencies {
	return descriptor.Dependencies{"a": s.a, "b": s.b}
}
func (s sum) Calculate(_ *descriptor.Env, in descriptor.Inputs) (any, error) {
	a, err := descriptor.Input[float64](in, "a")
	if err != nil {
		return nil, err
	}
	b, err := descriptor.Input[float64](in, "b")
	if err != nil {
		return nil, err
	}

	return a + b, nil
}

// loop depends on itself through a chain of the given depth.
type loop struct {
	descriptor.Base
	depth int
}

func (loop) Kind() string { return "Loop" }
func (l loop) Parameters() descriptor.Params {
	return descriptor.Params{descriptor.Int(l.depth)}
}
func (l loop) Dependencies() descriptor.Dependencies {
	return descriptor.Dependencies{"next": loop{depth: (l.depth + 1) % 2}}
}
func (loop) Calculate(*descriptor.Env, descriptor.Inputs) (any, error) { return 0.0, nil }

// requires declares arbitrary requirements and returns 1.
type requires struct {
	descriptor.Base
	req descriptor.Requirements
}

func (requires) Kind() string { return "Requires" }
func (r requires) Parameters() descriptor.Params {
	return descriptor.Params{
		descriptor.Bool(r.req.ExplicitHydrogens),
		descriptor.Bool(r.req.Kekulize),
		descriptor.Bool(r.req.Connected),
		descriptor.Bool(r.req.ThreeD),
	}
}
func (r requires) Requirements() descriptor.Requirements { return r.req }
func (r requires) Calculate(env *descriptor.Env, _ descriptor.Inputs) (any, error) {
	if r.req.ThreeD {
		xyz, err := env.Coordinates()
		if err != nil {
			return nil, err
		}
		return float64(len(xyz)), nil
	}

	return 1.0, nil
}

// errBoom is returned by broken.
var errBoom = errors.New("boom")

// broken fails with a defect.
type broken struct{ descriptor.Base }

func (broken) Kind() string                  { return "Broken" }
func (broken) Parameters() descriptor.Params { return nil }
func (broken) Calculate(*descriptor.Env, descriptor.Inputs) (any, error) {
	return nil, errBoom
}

// peek asks for coordinates without declaring 3D.
type peek struct{ descriptor.Base }

func (peek) Kind() string                  { return "Peek" }
func (peek) Parameters() descriptor.Params { return nil }
func (peek) Calculate(env *descriptor.Env, _ descriptor.Inputs) (any, error) {
	_, err := env.Coordinates()
	return 0.0, err
}

// testRegistry registers every fixture kind.
func testRegistry() *descriptor.Registry {
	reg := descriptor.NewRegistry()
	reg.MustRegister(
		descriptor.Kind{
			Name: "AtomCount",
			New: func(ps descriptor.Params) (descriptor.Descriptor, error) {
				return atomCount{}, ps.Expect(0)
			},
			Preset: func() iter.Seq[descriptor.Descriptor] {
				return func(yield func(descriptor.Descriptor) bool) { yield(atomCount{}) }
			},
		},
		descriptor.Kind{
			Name: "Scaled",
			New: func(ps descriptor.Params) (descriptor.Descriptor, error) {
				if err := ps.Expect(2); err != nil {
					return nil, err
				}
				b, err := ps.Desc(0)
				if err != nil {
					return nil, err
				}
				f, err := ps.Float(1)
				if err != nil {
					return nil, err
				}
				return scaled{base: b, factor: f}, nil
			},
			Preset: func() iter.Seq[descriptor.Descriptor] {
				return func(yield func(descriptor.Descriptor) bool) {
					for _, f := range []float64{1, 2, 3} {
						if !yield(scaled{base: atomCount{}, factor: f}) {
							return
						}
					}
				}
			},
		},
		descriptor.Kind{
			Name: "Reciprocal",
			New: func(ps descriptor.Params) (descriptor.Descriptor, error) {
				b, err := ps.Desc(0)
				return reciprocal{base: b}, err
			},
		},
		descriptor.Kind{
			Name: "Sum",
			New: func(ps descriptor.Params) (descriptor.Descriptor, error) {
				a, err := ps.Desc(0)
				if err != nil {
					return nil, err
				}
				b, err := ps.Desc(1)
				return sum{a: a, b: b}, err
			},
		},
		descriptor.Kind{
			Name: "Loop",
			New: func(ps descriptor.Params) (descriptor.Descriptor, error) {
				d, err := ps.Int(0)
				return loop{depth: d}, err
			},
		},
		descriptor.Kind{
			Name: "Requires",
			New: func(ps descriptor.Params) (descriptor.Descriptor, error) {
				var req descriptor.Requirements
				var err error
				for i, dst := range []*bool{&req.ExplicitHydrogens, &req.Kekulize, &req.Connected, &req.ThreeD} {
					if *dst, err = ps.Bool(i); err != nil {
						return nil, err
					}
				}
				return requires{req: req}, nil
			},
		},
		descriptor.Kind{
			Name: "Broken",
			New:  func(descriptor.Params) (descriptor.Descriptor, error) { return broken{}, nil },
		},
		descriptor.Kind{
			Name: "Peek",
			New:  func(descriptor.Params) (descriptor.Descriptor, error) { return peek{}, nil },
		},
	)

	return reg
}
