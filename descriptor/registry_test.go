package descriptor_test

import (
	"testing"

	"github.com/katalvlaran/moldesc/descriptor"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegister(t *testing.T) {
	reg := descriptor.NewRegistry()
	newAtomCount := func(descriptor.Params) (descriptor.Descriptor, error) { return atomCount{}, nil }

	require.NoError(t, reg.Register(descriptor.Kind{Name: "AtomCount", New: newAtomCount}))
	require.ErrorIs(t, reg.Register(descriptor.Kind{Name: "AtomCount", New: newAtomCount}), descriptor.ErrDuplicateKind)
	require.ErrorIs(t, reg.Register(descriptor.Kind{Name: "", New: newAtomCount}), descriptor.ErrInvalidKind)
	require.ErrorIs(t, reg.Register(descriptor.Kind{Name: "A(b)", New: newAtomCount}), descriptor.ErrInvalidKind)
	require.ErrorIs(t, reg.Register(descriptor.Kind{Name: "Abstract"}), descriptor.ErrNotImplemented)

	k, ok := reg.Lookup("AtomCount")
	require.True(t, ok)
	require.Equal(t, "AtomCount", k.Name)
	_, ok = reg.Lookup("Nope")
	require.False(t, ok)

	require.Panics(t, func() { reg.MustRegister(descriptor.Kind{Name: "AtomCount", New: newAtomCount}) })
}

func TestRegistryKindsSorted(t *testing.T) {
	require.Equal(t,
		[]string{"AtomCount", "Broken", "Loop", "Peek", "Reciprocal", "Requires", "Scaled", "Sum"},
		testRegistry().Kinds())
}

func TestRebuildRoundTrip(t *testing.T) {
	reg := testRegistry()
	for _, d := range []descriptor.Descriptor{
		atomCount{},
		scaled{base: atomCount{}, factor: -0.5},
		reciprocal{base: scaled{base: atomCount{}, factor: 2}},
		sum{a: atomCount{}, b: reciprocal{base: atomCount{}}},
		requires{req: descriptor.Requirements{Kekulize: true, ThreeD: true}},
		loop{depth: 1},
	} {
		t.Run(descriptor.Repr(d), func(t *testing.T) {
			out, err := reg.Rebuild(d)
			require.NoError(t, err)
			require.True(t, descriptor.Equal(d, out))
			require.Equal(t, descriptor.Hash(d), descriptor.Hash(out))
		})
	}
}

func TestRebuildErrors(t *testing.T) {
	reg := testRegistry()

	_, err := reg.Rebuild(label{})
	require.ErrorIs(t, err, descriptor.ErrUnknownKind)

	_, err = reg.Rebuild(nil)
	require.ErrorIs(t, err, descriptor.ErrParameters)

	// A constructor that loses information fails the equality check.
	lossy := descriptor.NewRegistry()
	lossy.MustRegister(descriptor.Kind{
		Name: "Scaled",
		New: func(ps descriptor.Params) (descriptor.Descriptor, error) {
			return scaled{base: atomCount{}, factor: 1}, nil
		},
	})
	_, err = lossy.Rebuild(scaled{base: atomCount{}, factor: 2})
	require.ErrorIs(t, err, descriptor.ErrParameters)

	// Wrong parameter types are rejected by the constructor.
	_, err = reg.Rebuild(fakeKind{kind: "Scaled", ps: descriptor.Params{descriptor.Int(1), descriptor.Int(2)}})
	require.ErrorIs(t, err, descriptor.ErrParameters)
}

// fakeKind impersonates a kind with an arbitrary parameter tuple.
type fakeKind struct {
	descriptor.Base
	kind string
	ps   descriptor.Params
}

func (f fakeKind) Kind() string                  { return f.kind }
func (f fakeKind) Parameters() descriptor.Params { return f.ps }
func (fakeKind) Calculate(*descriptor.Env, descriptor.Inputs) (any, error) {
	return 0.0, nil
}

func TestRegistryPreset(t *testing.T) {
	reg := testRegistry()

	seq, err := reg.Preset("Scaled")
	require.NoError(t, err)
	var first, second []string
	for d := range seq {
		first = append(first, descriptor.Repr(d))
	}
	for d := range seq {
		second = append(second, descriptor.Repr(d))
	}
	require.Equal(t, []string{"Scaled(AtomCount(), 1)", "Scaled(AtomCount(), 2)", "Scaled(AtomCount(), 3)"}, first)
	require.Equal(t, first, second)

	// Early break stops the sequence.
	n := 0
	for range seq {
		n++
		break
	}
	require.Equal(t, 1, n)

	_, err = reg.Preset("Sum")
	require.ErrorIs(t, err, descriptor.ErrNotImplemented)
	_, err = reg.Preset("Nope")
	require.ErrorIs(t, err, descriptor.ErrUnknownKind)
}
