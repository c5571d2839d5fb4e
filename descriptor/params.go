// SPDX-License-Identifier: MIT

package descriptor

import (
	"fmt"
	"strconv"
)

// ParamType tags the value held by a Param.
type ParamType uint8

// Param types, in their sort order.
const (
	ParamBool ParamType = iota + 1
	ParamInt
	ParamFloat
	ParamString
	ParamFunc
	ParamDesc
)

// String returns the lower-case type name.
func (t ParamType) String() string {
	switch t {
	case ParamBool:
		return "bool"
	case ParamInt:
		return "int"
	case ParamFloat:
		return "float"
	case ParamString:
		return "string"
	case ParamFunc:
		return "func"
	case ParamDesc:
		return "descriptor"
	default:
		return "invalid"
	}
}

// Param is one construction parameter of a descriptor.
//
// Func parameters carry an arbitrary value (usually a function) but are
// identified by name alone: two Func params with the same name are equal.
type Param struct {
	typ ParamType
	b   bool
	i   int
	f   float64
	s   string // String value, or Func name
	fn  any
	d   Descriptor
}

// Params is the ordered parameter tuple of a descriptor.
type Params []Param

// Bool builds a boolean parameter.
func Bool(v bool) Param { return Param{typ: ParamBool, b: v} }

// Int builds an integer parameter.
func Int(v int) Param { return Param{typ: ParamInt, i: v} }

// Float builds a float parameter; -0 and +0 are the same identity.
func Float(v float64) Param { return Param{typ: ParamFloat, f: v} }

// String builds a string parameter.
func String(v string) Param { return Param{typ: ParamString, s: v} }

// Desc builds a nested-descriptor parameter.
func Desc(d Descriptor) Param { return Param{typ: ParamDesc, d: d} }

// Func builds a named-function parameter.
func Func(name string, fn any) Param { return Param{typ: ParamFunc, s: name, fn: fn} }

// Type returns the tag of p.
func (p Param) Type() ParamType { return p.typ }

// Bool returns the value of a ParamBool.
func (p Param) Bool() (bool, bool) { return p.b, p.typ == ParamBool }

// Int returns the value of a ParamInt.
func (p Param) Int() (int, bool) { return p.i, p.typ == ParamInt }

// Float returns the value of a ParamFloat.
func (p Param) Float() (float64, bool) { return p.f, p.typ == ParamFloat }

// Str returns the value of a ParamString.
func (p Param) Str() (string, bool) { return p.s, p.typ == ParamString }

// Func returns the name and value of a ParamFunc.
func (p Param) Func() (string, any, bool) { return p.s, p.fn, p.typ == ParamFunc }

// Desc returns the descriptor of a ParamDesc.
func (p Param) Desc() (Descriptor, bool) { return p.d, p.typ == ParamDesc && p.d != nil }

// String renders p the way Repr prints it.
func (p Param) String() string {
	switch p.typ {
	case ParamBool:
		return strconv.FormatBool(p.b)
	case ParamInt:
		return strconv.Itoa(p.i)
	case ParamFloat:
		return strconv.FormatFloat(p.f, 'g', -1, 64)
	case ParamString:
		return strconv.Quote(p.s)
	case ParamFunc:
		return p.s
	case ParamDesc:
		if p.d == nil {
			return "<nil>"
		}
		return Repr(p.d)
	default:
		return "<invalid>"
	}
}

// ---------- typed access for constructors ----------

// Expect fails with ErrParameters unless ps has exactly n entries.
func (ps Params) Expect(n int) error {
	if len(ps) != n {
		return fmt.Errorf("got %d parameters, want %d: %w", len(ps), n, ErrParameters)
	}

	return nil
}

func (ps Params) at(i int, want ParamType) (Param, error) {
	if i < 0 || i >= len(ps) {
		return Param{}, fmt.Errorf("parameter %d: out of range: %w", i, ErrParameters)
	}
	if ps[i].typ != want {
		return Param{}, fmt.Errorf("parameter %d: %s, want %s: %w", i, ps[i].typ, want, ErrParameters)
	}

	return ps[i], nil
}

// Bool returns parameter i as bool.
func (ps Params) Bool(i int) (bool, error) {
	p, err := ps.at(i, ParamBool)

	return p.b, err
}

// Int returns parameter i as int.
func (ps Params) Int(i int) (int, error) {
	p, err := ps.at(i, ParamInt)

	return p.i, err
}

// Float returns parameter i as float64.
func (ps Params) Float(i int) (float64, error) {
	p, err := ps.at(i, ParamFloat)

	return p.f, err
}

// Str returns parameter i as string.
func (ps Params) Str(i int) (string, error) {
	p, err := ps.at(i, ParamString)

	return p.s, err
}

// Func returns parameter i as a named function value.
func (ps Params) Func(i int) (string, any, error) {
	p, err := ps.at(i, ParamFunc)

	return p.s, p.fn, err
}

// Desc returns parameter i as a descriptor.
func (ps Params) Desc(i int) (Descriptor, error) {
	p, err := ps.at(i, ParamDesc)
	if err == nil && p.d == nil {
		err = fmt.Errorf("parameter %d: nil descriptor: %w", i, ErrParameters)
	}

	return p.d, err
}
