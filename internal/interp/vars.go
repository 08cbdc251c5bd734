package interp

import (
	"fmt"

	"github.com/rhea-language/rhea-sub001/internal/ast"
	"github.com/rhea-language/rhea-sub001/internal/signal"
	"github.com/rhea-language/rhea-sub001/internal/symtab"
	"github.com/rhea-language/rhea-sub001/internal/value"
)

func (ip *Interpreter) evalArrayLiteral(n *ast.ArrayLiteral, scope *symtab.Scope) (value.Value, *signal.Signal) {
	items := make([]value.Value, len(n.Elements))
	for i, elem := range n.Elements {
		v, sig := ip.Eval(elem, scope)
		if sig != nil {
			return nil, sig
		}
		items[i] = v
	}
	return value.NewArray(items), nil
}

func (ip *Interpreter) evalArrayAccess(n *ast.ArrayAccess, scope *symtab.Scope) (value.Value, *signal.Signal) {
	container, sig := ip.Eval(n.Array, scope)
	if sig != nil {
		return nil, sig
	}
	idxVal, sig := ip.Eval(n.Index, scope)
	if sig != nil {
		return nil, sig
	}
	idxNum, ok := idxVal.(value.Number)
	if !ok {
		return nil, signal.NewThrow(n.Addr(), value.NewString("array index must be a number"))
	}
	idx := int(idxNum)

	switch c := container.(type) {
	case *value.Array:
		if idx < 0 || idx >= len(c.Items) {
			return nil, signal.NewThrow(n.Addr(), value.NewString(fmt.Sprintf("array index %d out of bounds (size %d)", idx, len(c.Items))))
		}
		return c.Items[idx], nil
	case value.String:
		runes := []rune(string(c))
		if idx < 0 || idx >= len(runes) {
			return nil, signal.NewThrow(n.Addr(), value.NewString(fmt.Sprintf("string index %d out of bounds (size %d)", idx, len(runes))))
		}
		return value.NewString(string(runes[idx])), nil
	default:
		return nil, signal.NewThrow(n.Addr(), value.NewString("indexing requires an array or string"))
	}
}

func (ip *Interpreter) evalVariableAccess(n *ast.VariableAccess, scope *symtab.Scope) (value.Value, *signal.Signal) {
	v, ok := scope.Get(n.Name)
	if !ok {
		return nil, signal.NewThrow(n.Addr(), value.NewString("cannot resolve symbol "+n.Name))
	}
	rv, ok := v.(value.Value)
	if !ok {
		return nil, signal.NewThrow(n.Addr(), value.NewString("internal error: symbol "+n.Name+" is not a value"))
	}
	return rv, nil
}

func (ip *Interpreter) evalVariableDecl(n *ast.VariableDecl, scope *symtab.Scope) (value.Value, *signal.Signal) {
	for _, b := range n.Bindings {
		if b.Native {
			nv, err := ip.resolveNativeBinding(n.Addr(), b)
			if err != nil {
				return nil, signal.NewThrow(n.Addr(), value.NewString(err.Error()))
			}
			scope.Declare(b.Name, nv)
			continue
		}
		v, sig := ip.Eval(b.Init, scope)
		if sig != nil {
			return nil, sig
		}
		scope.Declare(b.Name, v)
	}
	return value.Nil, nil
}

func (ip *Interpreter) evalAssignment(n *ast.Assignment, scope *symtab.Scope) (value.Value, *signal.Signal) {
	rhs, sig := ip.Eval(n.Value, scope)
	if sig != nil {
		return nil, sig
	}

	switch target := n.Target.(type) {
	case *ast.VariableAccess:
		if !scope.Has(target.Name) {
			return nil, signal.NewThrow(n.Addr(), value.NewString("cannot resolve symbol "+target.Name))
		}
		scope.Set(target.Name, rhs)
		return rhs, nil
	case *ast.ArrayAccess:
		container, sig := ip.Eval(target.Array, scope)
		if sig != nil {
			return nil, sig
		}
		arr, ok := container.(*value.Array)
		if !ok {
			return nil, signal.NewThrow(n.Addr(), value.NewString("assignment target is not an array"))
		}
		idxVal, sig := ip.Eval(target.Index, scope)
		if sig != nil {
			return nil, sig
		}
		idxNum, ok := idxVal.(value.Number)
		if !ok {
			return nil, signal.NewThrow(n.Addr(), value.NewString("array index must be a number"))
		}
		idx := int(idxNum)
		if idx < 0 || idx >= len(arr.Items) {
			return nil, signal.NewThrow(n.Addr(), value.NewString(fmt.Sprintf("array index %d out of bounds (size %d)", idx, len(arr.Items))))
		}
		arr.Items[idx] = rhs
		return rhs, nil
	default:
		return nil, signal.NewThrow(n.Addr(), value.NewString("invalid assignment target"))
	}
}

func (ip *Interpreter) evalBlock(n *ast.Block, scope *symtab.Scope) (value.Value, *signal.Signal) {
	child := scope.NewChild()
	return ip.evalStatements(n.Statements, child)
}

func (ip *Interpreter) evalSingleStatementExpr(n *ast.SingleStatementExpr, scope *symtab.Scope) (value.Value, *signal.Signal) {
	child := scope.NewChild()
	v, sig := ip.Eval(n.Statement, child)
	if signal.Is(sig, signal.Return) {
		return sig.Value, nil
	}
	if sig != nil {
		return nil, sig
	}
	return v, nil
}

func (ip *Interpreter) evalReturn(n *ast.ReturnStmt, scope *symtab.Scope) (value.Value, *signal.Signal) {
	if n.Value == nil {
		return nil, signal.NewReturn(value.Nil)
	}
	v, sig := ip.Eval(n.Value, scope)
	if sig != nil {
		return nil, sig
	}
	return nil, signal.NewReturn(v)
}

func (ip *Interpreter) evalThrow(n *ast.ThrowStmt, scope *symtab.Scope) (value.Value, *signal.Signal) {
	v, sig := ip.Eval(n.Value, scope)
	if sig != nil {
		return nil, sig
	}
	return nil, signal.NewThrow(n.Addr(), v)
}
