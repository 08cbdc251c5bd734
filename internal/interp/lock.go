package interp

import (
	"github.com/rhea-language/rhea-sub001/internal/ast"
	"github.com/rhea-language/rhea-sub001/internal/signal"
	"github.com/rhea-language/rhea-sub001/internal/symtab"
	"github.com/rhea-language/rhea-sub001/internal/value"
)

// evalLock implements `lock (name) body` per spec.md §4.8: lock name
// under the current scope's id, evaluate body, and unlock on every
// exit path (normal, signal, or — since Go doesn't have C++
// exceptions here — the same code path covers both).
func (ip *Interpreter) evalLock(n *ast.Lock, scope *symtab.Scope) (value.Value, *signal.Signal) {
	scope.Lock(n.Name, scope)
	defer scope.Unlock(n.Name, scope)
	return ip.Eval(n.Body, scope)
}
