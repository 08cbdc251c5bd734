package interp

import (
	"fmt"
	"os"

	"github.com/rhea-language/rhea-sub001/internal/ast"
	"github.com/rhea-language/rhea-sub001/internal/signal"
	"github.com/rhea-language/rhea-sub001/internal/symtab"
	"github.com/rhea-language/rhea-sub001/internal/value"
)

// evalRender implements `render x` / `render! x` (spec.md §4.3):
// prints x.toString() to stdout, or stderr when Err is set, and
// returns the rendered value unchanged.
func (ip *Interpreter) evalRender(n *ast.Render, scope *symtab.Scope) (value.Value, *signal.Signal) {
	v, sig := ip.Eval(n.Operand, scope)
	if sig != nil {
		return nil, sig
	}
	out := os.Stdout
	if n.Err {
		out = os.Stderr
	}
	fmt.Fprintln(out, value.ToDisplayString(v))
	return v, nil
}
