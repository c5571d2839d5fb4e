// SPDX-License-Identifier: MIT

package descriptor

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Key returns the canonical identity of d: its kind and every parameter,
// nested descriptors included, encoded so that Key(a) == Key(b) iff
// Equal(a, b). It is the Context cache key.
// Complexity: O(size of the parameter tree).
func Key(d Descriptor) string {
	var sb strings.Builder
	writeKey(&sb, d)

	return sb.String()
}

func writeKey(sb *strings.Builder, d Descriptor) {
	if d == nil {
		sb.WriteString("<nil>")
		return
	}
	sb.WriteString(d.Kind())
	sb.WriteByte('(')
	for i, p := range d.Parameters() {
		if i > 0 {
			sb.WriteByte(',')
		}
		switch p.typ {
		case ParamBool:
			sb.WriteString("b:")
			sb.WriteString(strconv.FormatBool(p.b))
		case ParamInt:
			sb.WriteString("i:")
			sb.WriteString(strconv.Itoa(p.i))
		case ParamFloat:
			f := p.f
			if f == 0 {
				f = 0 // -0 and +0 compare equal
			}
			sb.WriteString("f:")
			sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
		case ParamString:
			sb.WriteString("s:")
			sb.WriteString(strconv.Quote(p.s))
		case ParamFunc:
			sb.WriteString("fn:")
			sb.WriteString(strconv.Quote(p.s))
		case ParamDesc:
			sb.WriteString("d:")
			writeKey(sb, p.d)
		default:
			sb.WriteString("?")
		}
	}
	sb.WriteByte(')')
}

// Equal reports whether a and b have the same kind and parameter tuple.
func Equal(a, b Descriptor) bool {
	return Compare(a, b) == 0
}

// Compare orders descriptors by kind name, then parameters left to right;
// a shorter tuple that is a prefix of a longer one sorts first.
// Parameters compare by type tag, then value. It is a strict total order
// consistent with Equal.
func Compare(a, b Descriptor) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if c := cmp.Compare(a.Kind(), b.Kind()); c != 0 {
		return c
	}
	pa, pb := a.Parameters(), b.Parameters()
	for i := 0; i < len(pa) && i < len(pb); i++ {
		if c := compareParam(pa[i], pb[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(pa), len(pb))
}

func compareParam(x, y Param) int {
	if c := cmp.Compare(x.typ, y.typ); c != 0 {
		return c
	}
	switch x.typ {
	case ParamBool:
		return cmp.Compare(boolRank(x.b), boolRank(y.b))
	case ParamInt:
		return cmp.Compare(x.i, y.i)
	case ParamFloat:
		return cmp.Compare(x.f, y.f)
	case ParamString, ParamFunc:
		return cmp.Compare(x.s, y.s)
	case ParamDesc:
		return Compare(x.d, y.d)
	}

	return 0
}

func boolRank(b bool) int {
	if b {
		return 1
	}

	return 0
}

// Hash returns a 64-bit hash of Key(d), consistent with Equal.
func Hash(d Descriptor) uint64 {
	return xxhash.Sum64String(Key(d))
}

// Repr renders d as Kind(p1, p2, ...), nested descriptors included.
func Repr(d Descriptor) string {
	if d == nil {
		return "<nil>"
	}
	ps := d.Parameters()
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}

	return d.Kind() + "(" + strings.Join(parts, ", ") + ")"
}

// Name returns the display name of d: Namer.Name when implemented,
// Repr otherwise.
func Name(d Descriptor) string {
	if n, ok := d.(Namer); ok {
		return n.Name()
	}

	return Repr(d)
}
