package interp

import (
	"github.com/rhea-language/rhea-sub001/internal/ast"
	"github.com/rhea-language/rhea-sub001/internal/signal"
	"github.com/rhea-language/rhea-sub001/internal/symtab"
	"github.com/rhea-language/rhea-sub001/internal/value"
)

// evalCatchHandle implements `catch { body } handle (e) { recover }
// [final { cleanup }]` per spec.md §4.3:
//  1. Fresh child scope σ'.
//  2. Evaluate body in σ'; a Throw is caught and bound to the handler
//     name, then recover runs. Any other signal (break/continue/return)
//     propagates past the handler untouched.
//  3. If the handler name is already bound in σ' (or an enclosing
//     scope), recover does not run; instead a Throw signal carrying
//     "handle name in use: <name>" is raised. It is an ordinary
//     catchable throw, not a fatal ASTNodeError.
//  4. final always runs last, regardless of outcome, and its own signal
//     (if any) overrides whatever the try/handle path produced — matching
//     "always evaluate cleanup last" taking precedence as the node's
//     final word.
func (ip *Interpreter) evalCatchHandle(n *ast.CatchHandle, scope *symtab.Scope) (value.Value, *signal.Signal) {
	tryScope := scope.NewChild()
	var result value.Value
	var sig *signal.Signal
	if block, ok := n.Try.(*ast.Block); ok {
		// The try block's statements run directly in σ', so a `val` in
		// the body binds in the scope the handler name is checked against.
		result, sig = ip.evalStatements(block.Statements, tryScope)
	} else {
		result, sig = ip.Eval(n.Try, tryScope)
	}

	if signal.Is(sig, signal.Throw) {
		if tryScope.Has(n.Handler) {
			result, sig = nil, signal.NewThrow(n.Addr(), value.NewString("handle name in use: "+n.Handler))
		} else {
			tryScope.Declare(n.Handler, sig.Value)
			result, sig = ip.Eval(n.Recover, tryScope)
		}
	}

	if n.Final != nil {
		finalResult, finalSig := ip.Eval(n.Final, scope.NewChild())
		if finalSig != nil {
			return nil, finalSig
		}
		_ = finalResult
	}

	return result, sig
}
