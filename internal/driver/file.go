// Package driver wires the lexer/parser/evaluator pipeline into the
// two entry points spec.md §6.1 describes: running one or more files,
// and the REPL. Grounded on the teacher's cmd/dwscript/cmd.runScript
// (lex → parse → check errors → interpret), generalized to this
// language's own error taxonomy and multi-file driver loop.
package driver

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/rhea-language/rhea-sub001/internal/interp"
	"github.com/rhea-language/rhea-sub001/internal/lexer"
	"github.com/rhea-language/rhea-sub001/internal/parser"
	"github.com/rhea-language/rhea-sub001/internal/rheaerr"
	"github.com/rhea-language/rhea-sub001/internal/runtime"
	"github.com/rhea-language/rhea-sub001/internal/signal"
	"github.com/rhea-language/rhea-sub001/internal/symtab"
	"github.com/rhea-language/rhea-sub001/internal/value"
)

// Driver owns the Runtime shared by every file/REPL evaluation in one
// process invocation.
type Driver struct {
	RT *runtime.Runtime
}

// New builds a Driver bound to rt.
func New(rt *runtime.Runtime) *Driver { return &Driver{RT: rt} }

// RunFiles evaluates each path in its own top-level scope (spec.md
// §6.1: "load & evaluate each in an initially empty top-level scope").
// A diagnostic in one file does not stop later files from running; the
// overall return reports whether every file succeeded. A POSIX segfault
// handler is installed for the whole call per spec.md §7.
func (d *Driver) RunFiles(paths []string, stdout, stderr io.Writer) (allOK bool) {
	debug.SetPanicOnFault(true)
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "fatal: unrecoverable fault: %v\n", r)
			allOK = false
		}
	}()

	allOK = true
	ip := interp.New(d.RT)
	for _, path := range paths {
		if !d.runFile(ip, path, stdout, stderr) {
			allOK = false
		}
	}
	d.RT.CleanUp()
	return allOK
}

func (d *Driver) runFile(ip *interp.Interpreter, path string, stdout, stderr io.Writer) bool {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "cannot read %s: %v\n", path, err)
		return false
	}

	lx := lexer.New(string(source), path)
	tokens, lexErrs := lx.Tokenize()
	if len(lexErrs) > 0 {
		fmt.Fprint(stderr, lexErrs.FormatAll(true))
		return false
	}

	ps := parser.New(tokens)
	program := ps.ParseProgram()
	if errs := ps.Errors(); len(errs) > 0 {
		fmt.Fprint(stderr, errs.FormatAll(true))
		return false
	}

	scope := symtab.New()
	_, sig := ip.Eval(program, scope)
	scope.WaitForTasks() // pending parallel tasks are joined before reporting, per spec.md §7

	if sig == nil {
		return true
	}
	fmt.Fprintln(stderr, formatUncaughtSignal(path, sig))
	return false
}

func formatUncaughtSignal(file string, sig *signal.Signal) string {
	switch sig.Kind {
	case signal.Throw:
		err := rheaerr.New(rheaerr.ASTNode, sig.Origin, "uncaught throw: "+value.ToDisplayString(sig.Value))
		return err.Format(true)
	case signal.Break, signal.Continue:
		err := rheaerr.New(rheaerr.ASTNode, sig.Origin, fmt.Sprintf("%s outside a loop", sig.Kind))
		return err.Format(true)
	default:
		err := rheaerr.New(rheaerr.ASTNode, sig.Origin, "uncaught "+sig.Kind.String())
		return err.Format(true)
	}
}
