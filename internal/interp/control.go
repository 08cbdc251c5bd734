package interp

import (
	"crypto/rand"

	"github.com/rhea-language/rhea-sub001/internal/ast"
	"github.com/rhea-language/rhea-sub001/internal/signal"
	"github.com/rhea-language/rhea-sub001/internal/symtab"
	"github.com/rhea-language/rhea-sub001/internal/value"
)

func (ip *Interpreter) evalIfElse(n *ast.IfElse, scope *symtab.Scope) (value.Value, *signal.Signal) {
	cond, sig := ip.Eval(n.Condition, scope)
	if sig != nil {
		return nil, sig
	}
	if value.Truthy(cond) {
		return ip.Eval(n.Then, scope)
	}
	if n.Else != nil {
		return ip.Eval(n.Else, scope)
	}
	return value.Nil, nil
}

func (ip *Interpreter) evalUnless(n *ast.Unless, scope *symtab.Scope) (value.Value, *signal.Signal) {
	cond, sig := ip.Eval(n.Condition, scope)
	if sig != nil {
		return nil, sig
	}
	if !value.Truthy(cond) {
		return ip.Eval(n.Then, scope)
	}
	if n.Else != nil {
		return ip.Eval(n.Else, scope)
	}
	return value.Nil, nil
}

func (ip *Interpreter) evalWhen(n *ast.When, scope *symtab.Scope) (value.Value, *signal.Signal) {
	subject, sig := ip.Eval(n.Subject, scope)
	if sig != nil {
		return nil, sig
	}
	var elseCase *ast.WhenCase
	for i := range n.Cases {
		c := &n.Cases[i]
		if c.Pattern == nil {
			elseCase = c
			continue
		}
		pv, sig := ip.Eval(c.Pattern, scope)
		if sig != nil {
			return nil, sig
		}
		if value.Equal(subject, pv) {
			return ip.Eval(c.Result, scope)
		}
	}
	if elseCase != nil {
		return ip.Eval(elseCase.Result, scope)
	}
	return value.Nil, nil
}

// evalLoop implements `loop (init; cond; post) body`, with While
// desugared at parse time to nil Init/Post. On `break`, the returned
// value is nil (spec.md §9 Open Question: unspecified in the source,
// treated as nil here).
func (ip *Interpreter) evalLoop(n *ast.Loop, scope *symtab.Scope) (value.Value, *signal.Signal) {
	loopScope := scope.NewChild()

	if n.Init != nil {
		if _, sig := ip.Eval(n.Init, loopScope); sig != nil {
			return nil, sig
		}
	}

	last := value.Value(value.Nil)
	for {
		condVal, sig := ip.Eval(n.Cond, loopScope)
		if sig != nil {
			return nil, sig
		}
		if !value.Truthy(condVal) {
			return last, nil
		}

		v, sig := ip.Eval(n.Body, loopScope)
		if signal.Is(sig, signal.Break) {
			return value.Nil, nil
		}
		if signal.Is(sig, signal.Continue) {
			sig = nil
		} else if sig != nil {
			return nil, sig
		} else {
			last = v
		}

		if n.Post != nil {
			if _, sig := ip.Eval(n.Post, loopScope); sig != nil {
				return nil, sig
			}
		}
	}
}

// evalRandom flips an unbiased coin via crypto/rand (spec.md §4.11);
// crypto/rand rather than math/rand is used because nothing in the
// example corpus pulls in a dedicated RNG library, and crypto/rand
// needs no seeding step to behave unbiased from the first call.
func (ip *Interpreter) evalRandom(n *ast.Random, scope *symtab.Scope) (value.Value, *signal.Signal) {
	var b [1]byte
	_, _ = rand.Read(b[:])
	if b[0]&1 == 0 {
		return ip.Eval(n.Then, scope)
	}
	return ip.Eval(n.Else, scope)
}
