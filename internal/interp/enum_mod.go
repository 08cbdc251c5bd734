package interp

import (
	"github.com/rhea-language/rhea-sub001/internal/ast"
	"github.com/rhea-language/rhea-sub001/internal/signal"
	"github.com/rhea-language/rhea-sub001/internal/symtab"
	"github.com/rhea-language/rhea-sub001/internal/value"
)

// evalEnum implements `enum Name { A = e, B = e, ... }` (spec.md
// §4.4): desugars to installing "Name.A", "Name.B", ... directly in
// the current scope, dot-joined since neither ast nor symtab model a
// nested namespace.
func (ip *Interpreter) evalEnum(n *ast.EnumStmt, scope *symtab.Scope) (value.Value, *signal.Signal) {
	for _, m := range n.Members {
		v, sig := ip.Eval(m.Value, scope)
		if sig != nil {
			return nil, sig
		}
		scope.Declare(n.Name+"."+m.Name, v)
	}
	return value.Nil, nil
}

// evalMod implements `mod Name { decl; decl; ... }` (spec.md §4.4):
// the same dot-joined lowering as enum, but over ModMember clauses.
func (ip *Interpreter) evalMod(n *ast.ModStmt, scope *symtab.Scope) (value.Value, *signal.Signal) {
	for _, m := range n.Members {
		v, sig := ip.Eval(m.Value, scope)
		if sig != nil {
			return nil, sig
		}
		scope.Declare(n.Name+"."+m.Member, v)
	}
	return value.Nil, nil
}
