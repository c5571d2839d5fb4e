// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/moldesc/descriptor"
	"github.com/katalvlaran/moldesc/topomatrix"
)

// Method names one spectral index; it is also the descriptor kind.
type Method string

// Spectral methods.
const (
	SpAbs  Method = "SpAbs"
	SpMax  Method = "SpMax"
	SpDiam Method = "SpDiam"
	SpMean Method = "SpMean"
	SpAD   Method = "SpAD"
	SpMAD  Method = "SpMAD"
	LogEE  Method = "LogEE"
	SM1    Method = "SM1"
	VE1    Method = "VE1"
	VE2    Method = "VE2"
	VE3    Method = "VE3"
	VR1    Method = "VR1"
	VR2    Method = "VR2"
	VR3    Method = "VR3"
)

var descriptions = map[Method]string{
	SpAbs:  "graph energy",
	SpMax:  "leading eigenvalue",
	SpDiam: "spectral diameter",
	SpMean: "mean of eigenvalues",
	SpAD:   "spectral absolute deviation",
	SpMAD:  "spectral mean absolute deviation",
	LogEE:  "Estrada-like index",
	SM1:    "spectral moment",
	VE1:    "coefficient sum of the last eigenvector",
	VE2:    "average coefficient of the last eigenvector",
	VE3:    "logarithmic coefficient sum of the last eigenvector",
	VR1:    "Randic-like eigenvector-based index",
	VR2:    "normalized Randic-like eigenvector-based index",
	VR3:    "logarithmic Randic-like eigenvector-based index",
}

// Methods returns the public methods in stable order. SpMean is a helper
// of SpAD and is not listed.
func Methods() []Method {
	return []Method{SpAbs, SpMax, SpDiam, SpAD, SpMAD, LogEE, SM1, VE1, VE2, VE3, VR1, VR2, VR3}
}

// allMethods adds the helpers to Methods.
func allMethods() []Method {
	return append(Methods(), SpMean)
}

// PresetMatrices are the matrix types enumerated by presets.
var PresetMatrices = []topomatrix.Type{topomatrix.TypeAdjacency, topomatrix.TypeDistance}

// Input names.
const (
	inEig = "eig"
	inDep = "dep"
)

// Index is one spectral index over the matrix of the given type.
type Index struct {
	Method            Method
	Matrix            topomatrix.Type
	ExplicitHydrogens bool
	Kekulize          bool
}

var (
	_ descriptor.Descriptor = Index{}
	_ descriptor.Namer      = Index{}
	_ descriptor.Describer  = Index{}
)

// New returns the index of method m over matrix t in the default form.
func New(m Method, t topomatrix.Type) Index {
	return Index{Method: m, Matrix: t}
}

func (x Index) Kind() string { return string(x.Method) }

func (x Index) Parameters() descriptor.Params {
	return descriptor.Params{x.Matrix.Param(), descriptor.Bool(x.ExplicitHydrogens), descriptor.Bool(x.Kekulize)}
}

func (x Index) Requirements() descriptor.Requirements {
	return descriptor.Requirements{ExplicitHydrogens: x.ExplicitHydrogens, Kekulize: x.Kekulize, Connected: true}
}

func (x Index) eig() Eigen {
	return Eigen{Matrix: x.Matrix, ExplicitHydrogens: x.ExplicitHydrogens, Kekulize: x.Kekulize}
}

func (x Index) with(m Method) Index {
	x.Method = m

	return x
}

// Dependencies returns the Eigen base, plus the index each derived method
// builds on.
func (x Index) Dependencies() descriptor.Dependencies {
	deps := descriptor.Dependencies{inEig: x.eig()}
	switch x.Method {
	case SpDiam:
		deps[inDep] = x.with(SpMax)
	case SpAD:
		deps[inDep] = x.with(SpMean)
	case SpMAD:
		deps[inDep] = x.with(SpAD)
	case VE2, VE3:
		deps[inDep] = x.with(VE1)
	case VR2, VR3:
		deps[inDep] = x.with(VR1)
	}

	return deps
}

// Name is <Method>_<matrix symbol> with K and H suffixes for the kekulized
// and explicit-hydrogen forms, e.g. SpMax_A or VR1_DKH.
func (x Index) Name() string {
	n := string(x.Method) + "_" + x.Matrix.Symbol()
	if x.Kekulize {
		n += "K"
	}
	if x.ExplicitHydrogens {
		n += "H"
	}

	return n
}

func (x Index) Description() string {
	return descriptions[x.Method] + " from " + string(x.Matrix) + " matrix"
}

// Calculate evaluates the method formula.
func (x Index) Calculate(env *descriptor.Env, in descriptor.Inputs) (any, error) {
	eig, err := descriptor.Input[*Eig](in, inEig)
	if err != nil {
		return nil, err
	}
	w := eig.Values
	n := float64(env.NumAtoms())

	switch x.Method {
	case SpAbs:
		s := 0.0
		for _, v := range w {
			s += math.Abs(v)
		}
		return s, nil

	case SpMax:
		return w[eig.Max], nil

	case SpMean:
		return sum(w) / float64(len(w)), nil

	case SM1:
		return sum(w), nil

	case LogEE:
		// log(sum exp(w) + 1) shifted by a = max(w_max, 0) to avoid overflow.
		a := math.Max(w[eig.Max], 0)
		sx := math.Exp(-a)
		for _, v := range w {
			sx += math.Exp(v - a)
		}
		return a + math.Log(sx), nil

	case VE1:
		s := 0.0
		for _, c := range eig.Leading() {
			s += math.Abs(c)
		}
		return s, nil

	case VR1:
		lead := eig.Leading()
		return descriptor.Numeric(func() float64 {
			s := 0.0
			for _, b := range env.Mol().Bonds() {
				s += math.Pow(lead[b.Begin()]*lead[b.End()], -0.5)
			}
			return s
		})
	}

	dep, err := descriptor.Input[float64](in, inDep)
	if err != nil {
		return nil, err
	}
	switch x.Method {
	case SpDiam:
		return dep - w[eig.Min], nil
	case SpAD:
		s := 0.0
		for _, v := range w {
			s += math.Abs(v - dep)
		}
		return s, nil
	case SpMAD, VE2, VR2:
		return descriptor.Numeric(func() float64 { return dep / n })
	case VE3, VR3:
		return descriptor.Numeric(func() float64 { return math.Log(0.1 * n * dep) })
	}

	return nil, fmt.Errorf("%s: %w", x.Method, descriptor.ErrNotImplemented)
}

func sum(w []float64) float64 {
	s := 0.0
	for _, v := range w {
		s += v
	}

	return s
}

// Kinds returns the registration entries: Eigen and one kind per method.
func Kinds() []descriptor.Kind {
	kinds := []descriptor.Kind{{
		Name:        kindEigen,
		New:         newEigen,
		Description: "eigen decomposition of a topological matrix",
	}}
	for _, m := range allMethods() {
		k := descriptor.Kind{
			Name:        string(m),
			Description: descriptions[m],
			New: func(ps descriptor.Params) (descriptor.Descriptor, error) {
				t, h, kek, err := parseCommon(ps)
				if err != nil {
					return nil, err
				}
				return Index{Method: m, Matrix: t, ExplicitHydrogens: h, Kekulize: kek}, nil
			},
		}
		if m != SpMean {
			k.Preset = presetOf(m)
		}
		kinds = append(kinds, k)
	}

	return kinds
}

func presetOf(m Method) func() iter.Seq[descriptor.Descriptor] {
	return func() iter.Seq[descriptor.Descriptor] {
		return func(yield func(descriptor.Descriptor) bool) {
			for _, t := range PresetMatrices {
				if !yield(New(m, t)) {
					return
				}
			}
		}
	}
}

// Preset yields every public method over every preset matrix, method-major.
func Preset() iter.Seq[descriptor.Descriptor] {
	return func(yield func(descriptor.Descriptor) bool) {
		for _, m := range Methods() {
			for d := range presetOf(m)() {
				if !yield(d) {
					return
				}
			}
		}
	}
}
