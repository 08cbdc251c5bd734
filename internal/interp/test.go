package interp

import (
	"fmt"
	"time"

	"github.com/rhea-language/rhea-sub001/internal/ast"
	"github.com/rhea-language/rhea-sub001/internal/signal"
	"github.com/rhea-language/rhea-sub001/internal/symtab"
	"github.com/rhea-language/rhea-sub001/internal/value"
)

// runTest executes one `test` block in test mode: evaluate assert (or
// treat a nil assert as "body result must be truthy"), evaluate body,
// and print a `[ SUCCESS ]`/`[ FAILED ]` banner with elapsed ms,
// mirroring the original's TestExpression::evaluate banner format.
func (ip *Interpreter) runTest(n *ast.TestStmt, scope *symtab.Scope) (value.Value, *signal.Signal) {
	testScope := scope.NewChild()
	start := time.Now()

	result, sig := ip.Eval(n.Body, testScope)
	elapsed := time.Since(start)

	if sig != nil {
		fmt.Printf("[ FAILED  ] %q (%dms) — uncaught %s\n", n.Name, elapsed.Milliseconds(), sig.Kind)
		return value.Nil, nil
	}

	passed := value.Truthy(result)
	if n.Assert != nil {
		expected, assertSig := ip.Eval(n.Assert, testScope)
		if assertSig != nil {
			fmt.Printf("[ FAILED  ] %q (%dms) — uncaught %s in assert\n", n.Name, elapsed.Milliseconds(), assertSig.Kind)
			return value.Nil, nil
		}
		passed = value.Equal(result, expected)
	}

	if passed {
		fmt.Printf("[ SUCCESS ] %q (%dms)\n", n.Name, elapsed.Milliseconds())
	} else {
		fmt.Printf("[ FAILED  ] %q (%dms)\n", n.Name, elapsed.Milliseconds())
	}
	return value.Nil, nil
}
