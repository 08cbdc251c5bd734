// Package signal models the four non-local control-flow transfers of
// spec.md §3.5 as a small sum type rather than Go panics, following
// the design note in spec.md §9 ("the specification permits... return
// a Result<Value, Signal> throughout the evaluator") and mirroring the
// teacher's own ControlFlow value
// (internal/interp/runtime/execution_context.go), which the evaluator
// checks after every Eval call instead of relying on exceptions.
package signal

import (
	"github.com/rhea-language/rhea-sub001/internal/token"
	"github.com/rhea-language/rhea-sub001/internal/value"
)

// Kind discriminates which of the four signals is active.
type Kind int

const (
	None Kind = iota
	Break
	Continue
	Return
	Throw
)

func (k Kind) String() string {
	switch k {
	case Break:
		return "break"
	case Continue:
		return "continue"
	case Return:
		return "return"
	case Throw:
		return "throw"
	default:
		return "none"
	}
}

// Signal carries the payload for whichever Kind is active. Origin is
// the token at the break/continue/throw site, used for diagnostics.
// Value is populated for Return and Throw.
type Signal struct {
	Kind   Kind
	Origin token.Position
	Value  value.Value
}

// NewBreak builds a Break signal anchored at origin.
func NewBreak(origin token.Position) *Signal { return &Signal{Kind: Break, Origin: origin} }

// NewContinue builds a Continue signal anchored at origin.
func NewContinue(origin token.Position) *Signal { return &Signal{Kind: Continue, Origin: origin} }

// NewReturn builds a Return signal carrying v.
func NewReturn(v value.Value) *Signal { return &Signal{Kind: Return, Value: v} }

// NewThrow builds a Throw signal carrying v, anchored at origin.
func NewThrow(origin token.Position, v value.Value) *Signal {
	return &Signal{Kind: Throw, Origin: origin, Value: v}
}

// Is reports whether sig is non-nil and of the given kind; a nil sig
// (the common case: "no signal active") is never equal to any Kind
// other than None.
func Is(sig *Signal, kind Kind) bool {
	if sig == nil {
		return kind == None
	}
	return sig.Kind == kind
}
