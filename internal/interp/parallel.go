package interp

import (
	"fmt"
	"os"
	"sync"

	"github.com/rhea-language/rhea-sub001/internal/ast"
	"github.com/rhea-language/rhea-sub001/internal/signal"
	"github.com/rhea-language/rhea-sub001/internal/symtab"
	"github.com/rhea-language/rhea-sub001/internal/value"
)

// task is the goroutine-backed handle spec.md §5 describes: spawning
// is non-blocking, and Join blocks until the goroutine finishes. It
// satisfies symtab.TaskHandle structurally.
type task struct {
	done chan struct{}
}

func (t *task) Join() { <-t.done }

// evalParallel implements `parallel expr` (spec.md §4.3/§5): the body
// runs on its own goroutine against a *clone* of scope (same parent
// and bindings map, fresh task list — symtab.Scope.Clone already
// implements that sharing), the handle is registered on the spawning
// scope, and Parallel itself returns nil immediately without waiting.
// An error inside the task is caught at the task boundary, formatted,
// and written to stderr — it never propagates to the spawner.
func (ip *Interpreter) evalParallel(n *ast.Parallel, scope *symtab.Scope) (value.Value, *signal.Signal) {
	taskScope := scope.Clone()
	t := &task{done: make(chan struct{})}

	var once sync.Once
	go func() {
		defer once.Do(func() { close(t.done) })
		_, sig := ip.Eval(n.Expr, taskScope)
		if signal.Is(sig, signal.Throw) {
			fmt.Fprintln(os.Stderr, renderTaskError(sig))
		}
	}()

	scope.AddTask(t)
	return value.Nil, nil
}

func renderTaskError(sig *signal.Signal) string {
	return fmt.Sprintf("[Runtime Error]: uncaught throw in parallel task at %s: %s",
		sig.Origin.String(), value.ToDisplayString(sig.Value))
}
