package spectral_test

import (
	"testing"

	"github.com/katalvlaran/moldesc/descriptor"
	"github.com/katalvlaran/moldesc/spectral"
	"github.com/katalvlaran/moldesc/topomatrix"
	"github.com/stretchr/testify/require"
)

func registry(t *testing.T) *descriptor.Registry {
	t.Helper()
	reg := descriptor.NewRegistry()
	reg.MustRegister(topomatrix.Kinds()...)
	reg.MustRegister(spectral.Kinds()...)

	return reg
}

func TestMethods(t *testing.T) {
	ms := spectral.Methods()
	require.Len(t, ms, 13)
	require.NotContains(t, ms, spectral.SpMean)
}

func TestKindsRoundTrip(t *testing.T) {
	reg := registry(t)
	require.Len(t, reg.Kinds(), 3+1+14)

	ds := []descriptor.Descriptor{
		spectral.Eigen{Matrix: topomatrix.TypeLaplacian, Kekulize: true},
		spectral.Index{Method: spectral.SpMean, Matrix: topomatrix.TypeDistance, ExplicitHydrogens: true},
	}
	for d := range spectral.Preset() {
		ds = append(ds, d)
	}
	for _, d := range ds {
		out, err := reg.Rebuild(d)
		require.NoError(t, err, descriptor.Repr(d))
		require.Equal(t, d, out)
	}

	k, ok := reg.Lookup("SpMax")
	require.True(t, ok)
	_, err := k.New(descriptor.Params{descriptor.Func("Hessian", nil), descriptor.Bool(false), descriptor.Bool(false)})
	require.ErrorIs(t, err, descriptor.ErrParameters)
	_, err = k.New(descriptor.Params{topomatrix.TypeAdjacency.Param()})
	require.ErrorIs(t, err, descriptor.ErrParameters)
}

func TestPreset(t *testing.T) {
	var names []string
	for d := range spectral.Preset() {
		names = append(names, descriptor.Name(d))
	}
	require.Len(t, names, 26)
	require.Equal(t, []string{"SpAbs_A", "SpAbs_D", "SpMax_A", "SpMax_D"}, names[:4])
	require.Equal(t, "VR3_D", names[25])

	reg := registry(t)
	_, err := reg.Preset("SpMean")
	require.ErrorIs(t, err, descriptor.ErrNotImplemented)
	seq, err := reg.Preset("VE2")
	require.NoError(t, err)
	var got []string
	for d := range seq {
		got = append(got, descriptor.Name(d))
	}
	require.Equal(t, []string{"VE2_A", "VE2_D"}, got)
}

func TestCalculatorPlanSharesEigen(t *testing.T) {
	calc := descriptor.NewCalculator(registry(t))
	require.NoError(t, calc.RegisterPreset("SpMax", "SpDiam", "SpAD"))

	eigens := 0
	for _, d := range calc.Plan() {
		if d.Kind() == "Eigen" {
			eigens++
		}
	}
	require.Equal(t, 2, eigens, "one decomposition per matrix type")
}
