package descriptor_test

import (
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/moldesc/descriptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualityFollowsParameters(t *testing.T) {
	a := scaled{base: atomCount{}, factor: 2}
	b := scaled{base: atomCount{}, factor: 2}
	c := scaled{base: atomCount{}, factor: 3}
	d := scaled{base: scaled{base: atomCount{}, factor: 1}, factor: 2}

	assert.True(t, descriptor.Equal(a, b))
	assert.False(t, descriptor.Equal(a, c))
	assert.False(t, descriptor.Equal(a, d))
	assert.Equal(t, descriptor.Key(a), descriptor.Key(b))
	assert.NotEqual(t, descriptor.Key(a), descriptor.Key(d))
	assert.Equal(t, descriptor.Hash(a), descriptor.Hash(b))
	assert.NotEqual(t, descriptor.Hash(a), descriptor.Hash(c))
}

func TestFuncParamsCompareByName(t *testing.T) {
	f := func() {}
	g := func() {}
	a := descriptor.Func("mass", f)
	b := descriptor.Func("mass", g)
	c := descriptor.Func("charge", f)

	ra := requiresFunc{p: a}
	rb := requiresFunc{p: b}
	rc := requiresFunc{p: c}
	assert.True(t, descriptor.Equal(ra, rb))
	assert.False(t, descriptor.Equal(ra, rc))
	assert.Equal(t, "Fn(mass)", descriptor.Repr(ra))
}

// requiresFunc holds a single Func parameter.
type requiresFunc struct {
	descriptor.Base
	p descriptor.Param
}

func (requiresFunc) Kind() string                    { return "Fn" }
func (r requiresFunc) Parameters() descriptor.Params { return descriptor.Params{r.p} }
func (requiresFunc) Calculate(*descriptor.Env, descriptor.Inputs) (any, error) {
	return 0.0, nil
}

func TestZeroSignIsIgnored(t *testing.T) {
	a := scaled{base: atomCount{}, factor: 0}
	b := scaled{base: atomCount{}, factor: math.Copysign(0, -1)}
	require.True(t, descriptor.Equal(a, b))
	require.Equal(t, descriptor.Key(a), descriptor.Key(b))
}

func TestCompareIsTotalOrder(t *testing.T) {
	ds := []descriptor.Descriptor{
		scaled{base: atomCount{}, factor: 3},
		atomCount{},
		scaled{base: atomCount{}, factor: -1},
		reciprocal{base: atomCount{}},
		scaled{base: scaled{base: atomCount{}, factor: 1}, factor: 1},
		sum{a: atomCount{}, b: atomCount{}},
		loop{depth: 1},
		loop{depth: 0},
	}
	slices.SortFunc(ds, descriptor.Compare)

	got := make([]string, len(ds))
	for i, d := range ds {
		got[i] = descriptor.Repr(d)
	}
	require.Equal(t, []string{
		"AtomCount()",
		"Loop(0)",
		"Loop(1)",
		"Reciprocal(AtomCount())",
		"Scaled(AtomCount(), -1)",
		"Scaled(AtomCount(), 3)",
		"Scaled(Scaled(AtomCount(), 1), 1)",
		"Sum(AtomCount(), AtomCount())",
	}, got)

	for i := range ds {
		for j := range ds {
			c := descriptor.Compare(ds[i], ds[j])
			assert.Equal(t, -c, descriptor.Compare(ds[j], ds[i]))
			assert.Equal(t, i == j, c == 0)
			if i < j {
				assert.Negative(t, c)
			}
		}
	}
}

func TestReprAndName(t *testing.T) {
	d := reciprocal{base: scaled{base: atomCount{}, factor: 0.5}}
	require.Equal(t, "Reciprocal(Scaled(AtomCount(), 0.5))", descriptor.Repr(d))
	require.Equal(t, "1/Scaled(AtomCount(), 0.5)", descriptor.Name(d))

	r := requires{req: descriptor.Requirements{Connected: true}}
	require.Equal(t, "Requires(false, false, true, false)", descriptor.Repr(r))
	require.Equal(t, `"x"`, descriptor.String("x").String())
	require.Equal(t, "<nil>", descriptor.Repr(nil))
}

func TestParamAccessors(t *testing.T) {
	ps := descriptor.Params{
		descriptor.Bool(true),
		descriptor.Int(-1),
		descriptor.Float(0.25),
		descriptor.String("c"),
		descriptor.Func("m", 42),
		descriptor.Desc(atomCount{}),
	}

	b, err := ps.Bool(0)
	require.NoError(t, err)
	require.True(t, b)
	i, err := ps.Int(1)
	require.NoError(t, err)
	require.Equal(t, -1, i)
	f, err := ps.Float(2)
	require.NoError(t, err)
	require.Equal(t, 0.25, f)
	s, err := ps.Str(3)
	require.NoError(t, err)
	require.Equal(t, "c", s)
	name, fn, err := ps.Func(4)
	require.NoError(t, err)
	require.Equal(t, "m", name)
	require.Equal(t, 42, fn)
	d, err := ps.Desc(5)
	require.NoError(t, err)
	require.Equal(t, "AtomCount", d.Kind())

	_, err = ps.Int(0)
	require.ErrorIs(t, err, descriptor.ErrParameters)
	_, err = ps.Bool(9)
	require.ErrorIs(t, err, descriptor.ErrParameters)
	require.ErrorIs(t, ps.Expect(2), descriptor.ErrParameters)
	require.NoError(t, ps.Expect(6))

	_, err = descriptor.Params{descriptor.Desc(nil)}.Desc(0)
	require.ErrorIs(t, err, descriptor.ErrParameters)

	require.Equal(t, descriptor.ParamFunc, ps[4].Type())
	require.Equal(t, "descriptor", ps[5].Type().String())
}
