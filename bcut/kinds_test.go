package bcut_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/moldesc/atomprop"
	"github.com/katalvlaran/moldesc/bcut"
	"github.com/katalvlaran/moldesc/descriptor"
	"github.com/katalvlaran/moldesc/molecule"
	"github.com/stretchr/testify/require"
)

func registry(t *testing.T) *descriptor.Registry {
	t.Helper()
	reg := descriptor.NewRegistry()
	reg.MustRegister(bcut.Kinds()...)

	return reg
}

func TestRebuild(t *testing.T) {
	reg := registry(t)
	custom := atomprop.Custom("one", func(molecule.Atom) float64 { return 1 })

	ds := []descriptor.Descriptor{
		bcut.Burden{},
		bcut.BurdenEigenValues{Prop: custom},
		bcut.BCUT{Prop: custom, Nth: 3},
	}
	for d := range bcut.Preset() {
		ds = append(ds, d)
	}
	for _, d := range ds {
		out, err := reg.Rebuild(d)
		require.NoError(t, err, descriptor.Repr(d))
		require.True(t, descriptor.Equal(d, out))
		require.Equal(t, descriptor.Name(d), descriptor.Name(out))
	}
}

func TestRebuildErrors(t *testing.T) {
	reg := registry(t)
	k, _ := reg.Lookup("BurdenEigenValues")

	// "m" does not use charges.
	_, err := k.New(descriptor.Params{descriptor.Func("m", nil), descriptor.Bool(true)})
	require.ErrorIs(t, err, descriptor.ErrParameters)

	// Unregistered symbol without a function.
	_, err = k.New(descriptor.Params{descriptor.Func("zz", nil), descriptor.Bool(false)})
	require.ErrorIs(t, err, descriptor.ErrParameters)

	k, _ = reg.Lookup("BCUT")
	_, err = k.New(descriptor.Params{descriptor.Func("m", nil), descriptor.Float(0)})
	require.ErrorIs(t, err, descriptor.ErrParameters)
	_, err = k.New(descriptor.Params{descriptor.String("m"), descriptor.Int(0)})
	require.ErrorIs(t, err, descriptor.ErrParameters)

	k, _ = reg.Lookup("Burden")
	_, err = k.New(descriptor.Params{descriptor.Int(0)})
	require.ErrorIs(t, err, descriptor.ErrParameters)
}

func TestPresetThroughCalculator(t *testing.T) {
	calc := descriptor.NewCalculator(registry(t))
	require.NoError(t, calc.RegisterPreset("BCUT"))
	require.Equal(t, 24, calc.Len())

	// Plan: Burden, then per property one eigenvalue stage and two ranks.
	plan := calc.Plan()
	require.Len(t, plan, 1+12*3)
	require.Equal(t, "Burden", plan[0].Kind())

	mol, err := molecule.Chain(3, "C")
	require.NoError(t, err)
	res, err := calc.Calculate(mol)
	require.NoError(t, err)

	missing := res.Missing()
	require.Len(t, missing, 2, "only the charge-based pair")
	v, ok := res.Lookup("BCUTm-1h")
	require.True(t, ok)
	require.False(t, math.IsNaN(v.Float()))
}
