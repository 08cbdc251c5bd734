package interp

import (
	"fmt"

	"github.com/rhea-language/rhea-sub001/internal/ast"
	"github.com/rhea-language/rhea-sub001/internal/signal"
	"github.com/rhea-language/rhea-sub001/internal/symtab"
	"github.com/rhea-language/rhea-sub001/internal/value"
)

func (ip *Interpreter) evalFunctionCall(n *ast.FunctionCall, scope *symtab.Scope) (value.Value, *signal.Signal) {
	callee, sig := ip.Eval(n.Callee, scope)
	if sig != nil {
		return nil, sig
	}

	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, sig := ip.Eval(a, scope)
		if sig != nil {
			return nil, sig
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *value.Function:
		if len(args) != len(fn.Decl.Params) {
			return nil, signal.NewThrow(n.Addr(),
				value.NewString(fmt.Sprintf("wrong arity: %s expects %d argument(s), got %d",
					fn.String(), len(fn.Decl.Params), len(args))))
		}
		callScope := fn.Captured.NewChild()
		for i, param := range fn.Decl.Params {
			callScope.Declare(param, args[i])
		}
		v, sig := ip.Eval(fn.Decl.Body, callScope)
		if signal.Is(sig, signal.Return) {
			return sig.Value, nil
		}
		if sig != nil {
			return nil, sig
		}
		return v, nil

	case *value.Native:
		result, err := fn.Call(n.Addr(), scope, args, ip.RT.UnsafeMode)
		if err != nil {
			return nil, signal.NewThrow(n.Addr(), value.NewString(err.Error()))
		}
		return result, nil

	default:
		return nil, signal.NewThrow(n.Addr(), value.NewString("value is not callable: "+callee.Type()))
	}
}

func (ip *Interpreter) evalSize(n *ast.Size, scope *symtab.Scope) (value.Value, *signal.Signal) {
	v, sig := ip.Eval(n.Operand, scope)
	if sig != nil {
		return nil, sig
	}
	switch t := v.(type) {
	case *value.Array:
		return value.NewNumber(float64(t.Len())), nil
	case value.String:
		return value.NewNumber(float64(len([]rune(string(t))))), nil
	case *value.Regex:
		return value.NewNumber(float64(t.Len())), nil
	case value.Bool, value.Number:
		return value.NewNumber(1), nil
	default:
		return value.NewNumber(0), nil
	}
}

func (ip *Interpreter) evalTypeOf(n *ast.TypeOf, scope *symtab.Scope) (value.Value, *signal.Signal) {
	v, sig := ip.Eval(n.Operand, scope)
	if sig != nil {
		return nil, sig
	}
	return value.NewString(v.Type()), nil
}

func (ip *Interpreter) evalUnary(n *ast.UnaryOp, scope *symtab.Scope) (value.Value, *signal.Signal) {
	operand, sig := ip.Eval(n.Operand, scope)
	if sig != nil {
		return nil, sig
	}
	if n.Op == "*" {
		if s, ok := operand.(value.String); ok {
			return value.NewNumber(float64(len([]rune(string(s))))), nil
		}
	}
	v, err := value.Unary(n.Op, operand, n.Addr())
	if err != nil {
		return nil, throwErr(err)
	}
	return v, nil
}

func (ip *Interpreter) evalBinary(n *ast.BinaryOp, scope *symtab.Scope) (value.Value, *signal.Signal) {
	left, sig := ip.Eval(n.Left, scope)
	if sig != nil {
		return nil, sig
	}

	switch n.Op {
	case "&&":
		if !value.Truthy(left) {
			return value.NewBool(false), nil
		}
		right, sig := ip.Eval(n.Right, scope)
		if sig != nil {
			return nil, sig
		}
		return value.NewBool(value.Truthy(right)), nil
	case "||":
		if value.Truthy(left) {
			return value.NewBool(true), nil
		}
		right, sig := ip.Eval(n.Right, scope)
		if sig != nil {
			return nil, sig
		}
		return value.NewBool(value.Truthy(right)), nil
	case "?":
		// Nil-coalescing short-circuits: the right side must not be
		// evaluated at all when left is already non-nil (spec.md §4.2).
		if left != value.Nil {
			return left, nil
		}
		return ip.Eval(n.Right, scope)
	}

	right, sig := ip.Eval(n.Right, scope)
	if sig != nil {
		return nil, sig
	}
	v, err := value.Binary(n.Op, left, right, n.Addr())
	if err != nil {
		return nil, throwErr(err)
	}
	return v, nil
}
