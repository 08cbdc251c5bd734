// Package interp implements the tree-walking evaluator of spec.md
// §4.3/§4.4: a type-switch dispatcher over ast.Node, grounded on the
// teacher's own `func (i *Interpreter) Eval(node ast.Node) Value`
// (internal/interp/interpreter.go) — kept as an external dispatch over
// plain data nodes rather than methods on ast.Node itself, which would
// otherwise force internal/ast to import internal/value and create the
// cycle value → symtab → (would-be) ast → value.
package interp

import (
	"fmt"
	"os"

	"github.com/rhea-language/rhea-sub001/internal/ast"
	"github.com/rhea-language/rhea-sub001/internal/rheaerr"
	"github.com/rhea-language/rhea-sub001/internal/runtime"
	"github.com/rhea-language/rhea-sub001/internal/signal"
	"github.com/rhea-language/rhea-sub001/internal/symtab"
	"github.com/rhea-language/rhea-sub001/internal/value"
)

// Interpreter holds the process-wide Runtime (test/unsafe flags,
// native-library cache, module file-hash set) that every Eval call
// needs access to, mirroring the teacher's Interpreter struct wrapping
// shared state beside the per-call Environment.
type Interpreter struct {
	RT *runtime.Runtime
}

// New builds an Interpreter bound to rt.
func New(rt *runtime.Runtime) *Interpreter { return &Interpreter{RT: rt} }

// Eval dispatches node to its evaluation rule and returns either a
// Value or a non-nil Signal (never both) — the Go analogue of the
// Result<Value, Signal> design note in spec.md §9.
func (ip *Interpreter) Eval(node ast.Node, scope *symtab.Scope) (value.Value, *signal.Signal) {
	switch n := node.(type) {
	case *ast.Program:
		return ip.evalStatements(n.Statements, scope)
	case *ast.NilLiteral:
		return value.Nil, nil
	case *ast.BoolLiteral:
		return value.NewBool(n.Value), nil
	case *ast.NumberLiteral:
		return value.NewNumber(n.Value), nil
	case *ast.StringLiteral:
		return value.NewString(n.Value), nil
	case *ast.RegexLiteral:
		return value.NewRegex(n.Pattern), nil
	case *ast.ArrayLiteral:
		return ip.evalArrayLiteral(n, scope)
	case *ast.ArrayAccess:
		return ip.evalArrayAccess(n, scope)
	case *ast.VariableAccess:
		return ip.evalVariableAccess(n, scope)
	case *ast.VariableDecl:
		return ip.evalVariableDecl(n, scope)
	case *ast.Assignment:
		return ip.evalAssignment(n, scope)
	case *ast.Block:
		return ip.evalBlock(n, scope)
	case *ast.IfElse:
		return ip.evalIfElse(n, scope)
	case *ast.Unless:
		return ip.evalUnless(n, scope)
	case *ast.When:
		return ip.evalWhen(n, scope)
	case *ast.Loop:
		return ip.evalLoop(n, scope)
	case *ast.Random:
		return ip.evalRandom(n, scope)
	case *ast.FunctionDecl:
		return value.NewFunction(n, scope), nil
	case *ast.FunctionCall:
		return ip.evalFunctionCall(n, scope)
	case *ast.Size:
		return ip.evalSize(n, scope)
	case *ast.TypeOf:
		return ip.evalTypeOf(n, scope)
	case *ast.UnaryOp:
		return ip.evalUnary(n, scope)
	case *ast.BinaryOp:
		return ip.evalBinary(n, scope)
	case *ast.Render:
		return ip.evalRender(n, scope)
	case *ast.Parallel:
		return ip.evalParallel(n, scope)
	case *ast.Lock:
		return ip.evalLock(n, scope)
	case *ast.CatchHandle:
		return ip.evalCatchHandle(n, scope)
	case *ast.SingleStatementExpr:
		return ip.evalSingleStatementExpr(n, scope)
	case *ast.BreakStmt:
		return nil, signal.NewBreak(n.Addr())
	case *ast.ContinueStmt:
		return nil, signal.NewContinue(n.Addr())
	case *ast.ReturnStmt:
		return ip.evalReturn(n, scope)
	case *ast.ThrowStmt:
		return ip.evalThrow(n, scope)
	case *ast.WaitStmt:
		scope.WaitForTasks()
		return value.Nil, nil
	case *ast.HaltStmt:
		os.Exit(0)
		return value.Nil, nil
	case *ast.DeleteStmt:
		for _, name := range n.Names {
			scope.Remove(name)
		}
		return value.Nil, nil
	case *ast.EnumStmt:
		return ip.evalEnum(n, scope)
	case *ast.ModStmt:
		return ip.evalMod(n, scope)
	case *ast.UseStmt:
		return ip.evalUse(n, scope)
	case *ast.ImportStmt:
		return ip.evalImport(n, scope)
	case *ast.TestStmt:
		return ip.evalTest(n, scope)
	}
	return nil, signal.NewThrow(node.Addr(), value.NewString(fmt.Sprintf("unhandled node %T", node)))
}

// evalStatements runs stmts in order in scope, short-circuiting on the
// first non-nil signal and otherwise returning the last value (nil if
// stmts is empty).
func (ip *Interpreter) evalStatements(stmts []ast.Node, scope *symtab.Scope) (value.Value, *signal.Signal) {
	var last value.Value = value.Nil
	for _, stmt := range stmts {
		v, sig := ip.Eval(stmt, scope)
		if sig != nil {
			return nil, sig
		}
		last = v
	}
	return last, nil
}

// throwErr converts an arithmetic/structural rheaerr.Error into a
// catchable Throw signal, per spec.md §4.6 ("Bad type for operator" →
// Throw, not a fatal diagnostic).
func throwErr(err *rheaerr.Error) *signal.Signal {
	return signal.NewThrow(err.Pos, value.NewString(err.Message))
}
