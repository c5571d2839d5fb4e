// SPDX-License-Identifier: MIT

package descriptor

import "github.com/katalvlaran/moldesc/molecule"

// Result holds the values of a Calculator's descriptors for one molecule,
// index aligned with Descriptors().
type Result struct {
	mol    molecule.Molecule
	descs  []Descriptor
	values []Value
}

// NewResult pairs descriptors with values. It panics if the lengths differ.
func NewResult(mol molecule.Molecule, descs []Descriptor, values []Value) *Result {
	if len(descs) != len(values) {
		panic("descriptor: NewResult: length mismatch")
	}

	return &Result{
		mol:    mol,
		descs:  append([]Descriptor(nil), descs...),
		values: append([]Value(nil), values...),
	}
}

// Molecule returns the molecule the values were computed for.
func (r *Result) Molecule() molecule.Molecule { return r.mol }

// Len returns the number of values.
func (r *Result) Len() int { return len(r.values) }

// Descriptors returns a copy of the descriptor list.
func (r *Result) Descriptors() []Descriptor { return append([]Descriptor(nil), r.descs...) }

// Values returns a copy of the value list.
func (r *Result) Values() []Value { return append([]Value(nil), r.values...) }

// Value returns the i-th value.
func (r *Result) Value(i int) Value { return r.values[i] }

// Float returns the i-th value as float64. It is NaN when the value is
// missing and also when it is computed but not a scalar (a matrix or an
// eigenvalue list); use Value(i).IsMissing to tell them apart.
func (r *Result) Float(i int) float64 { return r.values[i].Float() }

// Floats returns every value as float64, NaN for missing ones and for
// non-scalar results. Only missing values are listed by Missing.
func (r *Result) Floats() []float64 {
	out := make([]float64, len(r.values))
	for i, v := range r.values {
		out[i] = v.Float()
	}

	return out
}

// Lookup finds a value by descriptor display name.
func (r *Result) Lookup(name string) (Value, bool) {
	for i, d := range r.descs {
		if Name(d) == name {
			return r.values[i], true
		}
	}

	return Value{}, false
}

// Missing maps the index of every missing value to its error.
func (r *Result) Missing() map[int]error {
	out := make(map[int]error)
	for i, v := range r.values {
		if v.IsMissing() {
			out[i] = v.Err()
		}
	}

	return out
}

// FillMissing returns a copy with every missing value replaced by x.
func (r *Result) FillMissing(x float64) *Result {
	values := make([]Value, len(r.values))
	for i, v := range r.values {
		if v.IsMissing() {
			v = Computed(x)
		}
		values[i] = v
	}

	return &Result{mol: r.mol, descs: r.Descriptors(), values: values}
}

// DropMissing returns a copy without the missing values.
func (r *Result) DropMissing() *Result {
	out := &Result{mol: r.mol}
	for i, v := range r.values {
		if v.IsMissing() {
			continue
		}
		out.descs = append(out.descs, r.descs[i])
		out.values = append(out.values, v)
	}

	return out
}

// AsMap returns display name -> float64. As in Floats, NaN stands for a
// missing value or a non-scalar result.
func (r *Result) AsMap() map[string]float64 {
	out := make(map[string]float64, len(r.values))
	for i, d := range r.descs {
		out[Name(d)] = r.values[i].Float()
	}

	return out
}

// countMissing is used for batch summaries.
func (r *Result) countMissing() int {
	n := 0
	for _, v := range r.values {
		if v.IsMissing() {
			n++
		}
	}

	return n
}
