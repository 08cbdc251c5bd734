package interp

import (
	"crypto/sha256"
	"encoding/hex"
	"os"

	"github.com/rhea-language/rhea-sub001/internal/ast"
	"github.com/rhea-language/rhea-sub001/internal/lexer"
	"github.com/rhea-language/rhea-sub001/internal/modules"
	"github.com/rhea-language/rhea-sub001/internal/parser"
	"github.com/rhea-language/rhea-sub001/internal/signal"
	"github.com/rhea-language/rhea-sub001/internal/symtab"
	"github.com/rhea-language/rhea-sub001/internal/value"
)

// evalUse implements `use <name> from "x.y.z";` (spec.md §4.4): the
// module resolver validates SemVer, finds the module's *.rhea sources
// under <INSTALL_ROOT>/modules/<name>@<version>/src/, and each file's
// top-level statements are evaluated into scope (shared globals). The
// file-hash registry in Runtime makes reloading the same content a
// no-op, guarding against cyclic imports.
func (ip *Interpreter) evalUse(n *ast.UseStmt, scope *symtab.Scope) (value.Value, *signal.Signal) {
	resolver := modules.New(ip.RT.InstallRoot)
	files, err := resolver.SourceFiles(n.Name, n.Version)
	if err != nil {
		return nil, signal.NewThrow(n.Addr(), value.NewString(err.Error()))
	}
	for _, path := range files {
		if sig := ip.loadFileInto(n.Addr(), path, scope); sig != nil {
			return nil, sig
		}
	}
	return value.Nil, nil
}

// evalImport implements `import "path";`: a non-module, non-versioned
// load of a single file's top-level statements into scope.
func (ip *Interpreter) evalImport(n *ast.ImportStmt, scope *symtab.Scope) (value.Value, *signal.Signal) {
	if sig := ip.loadFileInto(n.Addr(), n.Path, scope); sig != nil {
		return nil, sig
	}
	return value.Nil, nil
}

func (ip *Interpreter) loadFileInto(addr ast.Node, path string, scope *symtab.Scope) *signal.Signal {
	source, err := os.ReadFile(path)
	if err != nil {
		return signal.NewThrow(addr.Addr(), value.NewString("cannot read "+path+": "+err.Error()))
	}

	sum := sha256.Sum256(source)
	hash := hex.EncodeToString(sum[:])
	if ip.RT.MarkLoaded(hash) {
		return nil // already loaded once; cyclic-import no-op (spec.md §4.4)
	}

	lx := lexer.New(string(source), path)
	tokens, lexErrs := lx.Tokenize()
	if len(lexErrs) > 0 {
		return signal.NewThrow(addr.Addr(), value.NewString(lexErrs.Error()))
	}
	ps := parser.New(tokens)
	program := ps.ParseProgram()
	if errs := ps.Errors(); len(errs) > 0 {
		return signal.NewThrow(addr.Addr(), value.NewString(errs.Error()))
	}

	_, sig := ip.evalStatements(program.Statements, scope)
	return sig
}

// evalTest implements `test "name" assert e { body }` (spec.md §4.4):
// a no-op outside test mode. In test mode, body runs, assert (or
// truthiness of body's result when assert is nil) decides pass/fail,
// and the outcome is printed with elapsed time.
func (ip *Interpreter) evalTest(n *ast.TestStmt, scope *symtab.Scope) (value.Value, *signal.Signal) {
	if !ip.RT.TestMode {
		return value.Nil, nil
	}
	return ip.runTest(n, scope)
}
