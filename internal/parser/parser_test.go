package parser

import (
	"testing"

	"github.com/rhea-language/rhea-sub001/internal/ast"
	"github.com/rhea-language/rhea-sub001/internal/lexer"
)

// parse lexes and parses src, failing the test on any lex/parse error.
func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	lx := lexer.New(src, "test.rhea")
	tokens, lexErrs := lx.Tokenize()
	if len(lexErrs) > 0 {
		t.Fatalf("lex errors for %q: %v", src, lexErrs)
	}
	p := New(tokens)
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("parse errors for %q: %v", src, errs)
	}
	return prog
}

func TestParseArithmeticBroadcast(t *testing.T) {
	prog := parse(t, "render [1,2,3] .+ 10;")
	if len(prog.Statements) != 1 {
		t.Fatalf("want 1 statement, got %d", len(prog.Statements))
	}
	single, ok := prog.Statements[0].(*ast.SingleStatementExpr)
	if !ok {
		t.Fatalf("want SingleStatementExpr, got %T", prog.Statements[0])
	}
	render, ok := single.Statement.(*ast.Render)
	if !ok {
		t.Fatalf("want Render, got %T", single.Statement)
	}
	bin, ok := render.Operand.(*ast.BinaryOp)
	if !ok || bin.Op != ".+" {
		t.Fatalf("want BinaryOp(.+), got %#v", render.Operand)
	}
	if _, ok := bin.Left.(*ast.ArrayLiteral); !ok {
		t.Fatalf("want ArrayLiteral on the left, got %T", bin.Left)
	}
}

func TestParseClosureCapture(t *testing.T) {
	prog := parse(t, `val make = func(x) { ret func(y) { ret x + y; }; };`)
	if len(prog.Statements) != 1 {
		t.Fatalf("want 1 statement, got %d", len(prog.Statements))
	}
	decl, ok := prog.Statements[0].(*ast.VariableDecl)
	if !ok || len(decl.Bindings) != 1 {
		t.Fatalf("want one VariableDecl binding, got %#v", prog.Statements[0])
	}
	outer, ok := decl.Bindings[0].Init.(*ast.FunctionDecl)
	if !ok || len(outer.Params) != 1 || outer.Params[0] != "x" {
		t.Fatalf("want outer func(x), got %#v", decl.Bindings[0].Init)
	}
}

func TestParseCatchHandleFinal(t *testing.T) {
	prog := parse(t, `catch { throw "oops"; } handle(e) { render e; } final { render "done"; }`)
	if len(prog.Statements) != 1 {
		t.Fatalf("want 1 statement, got %d", len(prog.Statements))
	}
	single, ok := prog.Statements[0].(*ast.SingleStatementExpr)
	if !ok {
		t.Fatalf("want SingleStatementExpr, got %T", prog.Statements[0])
	}
	ch, ok := single.Statement.(*ast.CatchHandle)
	if !ok {
		t.Fatalf("want CatchHandle, got %T", single.Statement)
	}
	if ch.Handler != "e" {
		t.Fatalf("want handler name %q, got %q", "e", ch.Handler)
	}
	if ch.Final == nil {
		t.Fatal("want a final clause")
	}
}

func TestParseLockStatement(t *testing.T) {
	prog := parse(t, `val x = 1; lock(x) { x = 2; } render x;`)
	if len(prog.Statements) != 3 {
		t.Fatalf("want 3 statements, got %d", len(prog.Statements))
	}
	lockStmt, ok := prog.Statements[1].(*ast.SingleStatementExpr)
	if !ok {
		t.Fatalf("want SingleStatementExpr, got %T", prog.Statements[1])
	}
	lock, ok := lockStmt.Statement.(*ast.Lock)
	if !ok || lock.Name != "x" {
		t.Fatalf("want Lock(x), got %#v", lockStmt.Statement)
	}
}

func TestParseRegexMatch(t *testing.T) {
	prog := parse(t, "render `^\\d+$` :: \"12345\";")
	single := prog.Statements[0].(*ast.SingleStatementExpr)
	render := single.Statement.(*ast.Render)
	bin, ok := render.Operand.(*ast.BinaryOp)
	if !ok || bin.Op != "::" {
		t.Fatalf("want BinaryOp(::), got %#v", render.Operand)
	}
	if _, ok := bin.Left.(*ast.RegexLiteral); !ok {
		t.Fatalf("want RegexLiteral on the left, got %T", bin.Left)
	}
}

func TestParseEnumAndDottedAccess(t *testing.T) {
	prog := parse(t, `enum Color { RED = 1, GREEN = 2, BLUE = 3 } render Color.GREEN;`)
	if len(prog.Statements) != 2 {
		t.Fatalf("want 2 statements, got %d", len(prog.Statements))
	}
	enum, ok := prog.Statements[0].(*ast.EnumStmt)
	if !ok || enum.Name != "Color" || len(enum.Members) != 3 {
		t.Fatalf("want EnumStmt Color with 3 members, got %#v", prog.Statements[0])
	}
	single := prog.Statements[1].(*ast.SingleStatementExpr)
	render := single.Statement.(*ast.Render)
	access, ok := render.Operand.(*ast.VariableAccess)
	if !ok || access.Name != "Color.GREEN" {
		t.Fatalf("want VariableAccess(Color.GREEN), got %#v", render.Operand)
	}
}

func TestParseIfElseUnlessWhen(t *testing.T) {
	prog := parse(t, `if (true) { render 1; } else { render 2; }`)
	single := prog.Statements[0].(*ast.SingleStatementExpr)
	if _, ok := single.Statement.(*ast.IfElse); !ok {
		t.Fatalf("want IfElse, got %T", single.Statement)
	}

	prog = parse(t, `unless (false) { render 1; } else { render 2; }`)
	single = prog.Statements[0].(*ast.SingleStatementExpr)
	if _, ok := single.Statement.(*ast.Unless); !ok {
		t.Fatalf("want Unless, got %T", single.Statement)
	}

	prog = parse(t, `when (1) { 1 => "one", else => "other" }`)
	single = prog.Statements[0].(*ast.SingleStatementExpr)
	when, ok := single.Statement.(*ast.When)
	if !ok || len(when.Cases) != 2 {
		t.Fatalf("want When with 2 cases, got %#v", single.Statement)
	}
	if when.Cases[1].Pattern != nil {
		t.Fatal("want the else clause to carry a nil pattern")
	}
}

func TestParseWhileDesugarsToLoop(t *testing.T) {
	prog := parse(t, `while (true) { break; }`)
	single := prog.Statements[0].(*ast.SingleStatementExpr)
	loop, ok := single.Statement.(*ast.Loop)
	if !ok {
		t.Fatalf("want while to desugar to Loop, got %T", single.Statement)
	}
	if loop.Init != nil || loop.Post != nil {
		t.Fatal("want while's Init/Post to be nil")
	}
}

func TestParseNativeBinding(t *testing.T) {
	prog := parse(t, `val f@"mylib" = native_add;`)
	decl := prog.Statements[0].(*ast.VariableDecl)
	b := decl.Bindings[0]
	if !b.Native || b.LibPath != "mylib" || b.NativeSymbol != "native_add" {
		t.Fatalf("want native binding mylib/native_add, got %#v", b)
	}
	if b.Init != nil {
		t.Fatal("want Init nil for a native binding")
	}
}

func TestParseAssignmentRequiresLValue(t *testing.T) {
	lx := lexer.New("1 = 2;", "test.rhea")
	tokens, _ := lx.Tokenize()
	p := New(tokens)
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatal("want a parse error for an invalid assignment target")
	}
}
