// Package value implements the eight-variant tagged dynamic value of
// spec.md §3.2, grounded on the teacher's own Value interface
// (internal/interp/value.go: "All runtime values must implement this
// interface... This interface does NOT use interface{} to ensure type
// safety") and on the original's DynamicObject
// (original_source/include/n8/core/DynamicObject.hpp), whose seven
// payload fields plus isLocked/owner correspond to this package's
// eight concrete variants plus the lock metadata symtab's binding keeps
// separately (see internal/symtab's package doc for why).
package value

import (
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// Value is the tagged dynamic value every expression evaluates to.
type Value interface {
	// Type returns the variant name used by the `type` operator and by
	// diagnostics ("nil", "bool", "number", "string", "regex", "array",
	// "function", "native").
	Type() string
	// String renders the value the way `render` prints it.
	String() string
}

// Nil is the sole Nil value; all Nil values are identical, so a single
// shared instance is returned by every constructor path rather than a
// struct users must remember to allocate.
var Nil Value = nilValue{}

type nilValue struct{}

func (nilValue) Type() string   { return "nil" }
func (nilValue) String() string { return "nil" }

// Bool wraps a boolean.
type Bool bool

func (Bool) Type() string     { return "bool" }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// Number is the sole numeric type: a 64-bit float (spec.md §3.2).
type Number float64

func (Number) Type() string { return "number" }

// String renders with six digits after the decimal point, matching the
// original's printf("%f", ...) rendering (spec.md §8 scenario 1: "[11.000000,
// 12.000000, 13.000000]").
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', 6, 64)
}

// String is a UTF-8 text value.
type String string

func (String) Type() string     { return "string" }
func (s String) String() string { return string(s) }

// New wraps a Go string into the dynamic String variant. A free
// function (rather than a bare conversion) exists alongside the type
// itself so call sites that build values generically read the same
// way regardless of variant (value.NewNumber, value.NewBool, ...).
func NewString(s string) Value { return String(s) }

// NewNumber wraps a float64.
func NewNumber(n float64) Value { return Number(n) }

// NewBool wraps a bool.
func NewBool(b bool) Value { return Bool(b) }

// Truthy implements the per-variant truthiness rule of spec.md §3.2.
// Note the deliberately-preserved bug: only NEGATIVE numbers are
// truthy; zero and positive numbers are falsy (flagged as an Open
// Question in spec.md §9 and DESIGN.md, not silently fixed).
func Truthy(v Value) bool {
	switch t := v.(type) {
	case nilValue:
		return false
	case Bool:
		return bool(t)
	case Number:
		return float64(t) < 0.0
	case String:
		return len(t) > 0
	case *Array:
		return len(t.Items) > 0
	case *Function, *Native, *Regex:
		return true
	default:
		return false
	}
}

// Equal implements the structural equality rule of spec.md §3.2.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case nilValue:
		_, ok := b.(nilValue)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && sameText(string(av), string(bv))
	case *Regex:
		bv, ok := b.(*Regex)
		return ok && av.Source == bv.Source
	case *Array:
		bv, ok := b.(*Array)
		if !ok || len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !Equal(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	case *Function:
		bv, ok := b.(*Function)
		return ok && av.declSite() == bv.declSite()
	case *Native:
		bv, ok := b.(*Native)
		return ok && av.Name == bv.Name
	default:
		return false
	}
}

// sameText compares two strings under Unicode canonical equivalence
// (NFC), so a precomposed and a decomposed encoding of the same
// grapheme (e.g. "é" vs "é") compare equal rather than by raw
// byte value. Grounded on the teacher's string_helpers.go, which
// normalizes to NFC before any user-facing string comparison.
func sameText(a, b string) bool {
	if a == b {
		return true
	}
	return norm.NFC.String(a) == norm.NFC.String(b)
}

// ToDisplayString renders v the way `+ ""` string-concatenation does:
// identical to String() for every variant (spec.md §8 round-trip law
// "a + "" == a.toString()").
func ToDisplayString(v Value) string {
	return v.String()
}
