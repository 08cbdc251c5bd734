package value

import "strings"

// Array is an ordered sequence of values shared by reference: every
// holder of an *Array value sees the same backing slice, matching
// spec.md §3.2 ("Array: ordered sequence of values, shared by
// reference"). Always handled through a pointer so aliasing survives
// copies of the Value interface value itself.
type Array struct {
	Items []Value
}

// NewArray wraps items (not copied) as a shared Array value.
func NewArray(items []Value) *Array { return &Array{Items: items} }

func (*Array) Type() string { return "array" }

func (a *Array) String() string {
	parts := make([]string, len(a.Items))
	for i, item := range a.Items {
		parts[i] = item.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Len returns the element count.
func (a *Array) Len() int { return len(a.Items) }

// Reverse returns a new Array with elements in reverse order, used by
// the unary `~` operator (spec.md §4.3).
func (a *Array) Reverse() *Array {
	out := make([]Value, len(a.Items))
	for i, v := range a.Items {
		out[len(out)-1-i] = v
	}
	return NewArray(out)
}
