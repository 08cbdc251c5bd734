// Package ast defines the node hierarchy the parser produces and the
// evaluator walks, per spec.md §3.4. There are about 35 node kinds,
// grouped into expressions and statements; every node owns the token
// Position of its address (for error locations) and is a plain data
// struct — evaluation itself lives in internal/interp as a type-switch
// over Node, the same dispatch shape as the teacher's own
// Interpreter.Eval(node ast.Node) Value (internal/interp/interpreter.go).
//
// Nodes are shared by reference (no node is ever deep-copied): the
// same *FunctionDecl can be referenced by the Function value it
// produced and by the block that declared it, and may be evaluated
// from more than one goroutine if captured by a closure handed to
// `parallel`. This is the Go analogue of the original's
// shared_ptr<ASTNode> (spec.md §9 "Shared ownership of AST nodes").
package ast

import "github.com/rhea-language/rhea-sub001/internal/token"

// Node is implemented by every AST node. Addr is the token anchoring
// the node's source location, used for diagnostics.
type Node interface {
	Addr() token.Position
}

// Base is embedded by every concrete node to provide Addr().
type Base struct {
	addr token.Position
}

func (b Base) Addr() token.Position { return b.addr }

// NewBase constructs the embeddable Base carrying addr; exported so
// the parser (a different package) can build nodes directly.
func NewBase(addr token.Position) Base { return Base{addr: addr} }

// ---- Literals ----

type NilLiteral struct{ Base }
type BoolLiteral struct {
	Base
	Value bool
}
type NumberLiteral struct {
	Base
	Value float64
}
type StringLiteral struct {
	Base
	Value string
}
type RegexLiteral struct {
	Base
	Pattern string
}

// ---- Composite expressions ----

// ArrayLiteral evaluates each element left to right into a shared array.
type ArrayLiteral struct {
	Base
	Elements []Node
}

// ArrayAccess is `a[i]`.
type ArrayAccess struct {
	Base
	Array Node
	Index Node
}

// VariableAccess resolves a name against the active scope.
type VariableAccess struct {
	Base
	Name string
}

// VariableDecl is `val name = init` with optional native-binding form
// (`val name@"libpath" = fnName`) and multi-binding commas.
type VariableDecl struct {
	Base
	Bindings []VariableBinding
}

// VariableBinding is one `name = init` (or native `name@lib = fnName`)
// clause inside a VariableDecl. For a native binding, Init is nil and
// NativeSymbol names the library symbol to resolve instead.
type VariableBinding struct {
	Name         string
	Init         Node
	Native       bool
	LibPath      string // set when Native is true
	NativeSymbol string // set when Native is true
}

// Assignment is `lhs = rhs`; LHS must be a VariableAccess or ArrayAccess.
type Assignment struct {
	Base
	Target Node
	Value  Node
}

// Block is `{ s1; s2; ...; sn; }`, evaluated in a fresh child scope.
type Block struct {
	Base
	Statements []Node
}

// IfElse is `if (c) then else else`.
type IfElse struct {
	Base
	Condition Node
	Then      Node
	Else      Node // nil if absent
}

// Unless is `unless (c) then else else` — the inverse of IfElse.
type Unless struct {
	Base
	Condition Node
	Then      Node
	Else      Node
}

// WhenCase is one `pattern => expr` clause of a When; a nil Pattern
// marks the `else` clause.
type WhenCase struct {
	Pattern Node
	Result  Node
}

// When is `when (x) { p1 => e1, ..., else => ed }`.
type When struct {
	Base
	Subject Node
	Cases   []WhenCase
}

// Loop is `loop (init; cond; post) body`; While desugars to a Loop
// with nil Init/Post at parse time.
type Loop struct {
	Base
	Init Node // may be nil
	Cond Node
	Post Node // may be nil
	Body Node
}

// Random is `random { then } else { else }` (also spelled `maybe`).
type Random struct {
	Base
	Then Node
	Else Node
}

// FunctionDecl captures parameters and a body; bound to its defining
// scope at evaluation time, not at call time (spec.md §4.2).
type FunctionDecl struct {
	Base
	Name   string // empty for anonymous function expressions
	Params []string
	Body   Node
}

// FunctionCall is `f(a1, ..., an)`.
type FunctionCall struct {
	Base
	Callee Node
	Args   []Node
}

// Size is `size x`.
type Size struct {
	Base
	Operand Node
}

// TypeOf is `type x`.
type TypeOf struct {
	Base
	Operand Node
}

// UnaryOp is `+x -x !x ~x *x`.
type UnaryOp struct {
	Base
	Op      string
	Operand Node
}

// BinaryOp covers every binary operator of spec.md §3.2/§6.3.
type BinaryOp struct {
	Base
	Op    string
	Left  Node
	Right Node
}

// Render is `render x` / `render! x` (Err selects stderr).
type Render struct {
	Base
	Operand Node
	Err     bool
}

// Parallel is `parallel expr`.
type Parallel struct {
	Base
	Expr Node
}

// Lock is `lock (name) body`.
type Lock struct {
	Base
	Name string
	Body Node
}

// CatchHandle is `catch { body } handle (e) { recover } [final { cleanup }]`.
type CatchHandle struct {
	Base
	Try     Node
	Handler string
	Recover Node
	Final   Node // nil if absent
}

// SingleStatementExpr evaluates a single statement in a child scope,
// converting a caught Return signal into the expression's value.
type SingleStatementExpr struct {
	Base
	Statement Node
}

// ---- Statements ----

type BreakStmt struct{ Base }
type ContinueStmt struct{ Base }

type ReturnStmt struct {
	Base
	Value Node // nil for a bare `ret;`
}

type ThrowStmt struct {
	Base
	Value Node
}

type WaitStmt struct{ Base }
type HaltStmt struct{ Base }

// DeleteStmt is `delete x1, x2, ...`.
type DeleteStmt struct {
	Base
	Names []string
}

// EnumMember is one `Name = expr` clause of an EnumStmt.
type EnumMember struct {
	Name  string
	Value Node
}

// EnumStmt is `enum Name { A = e, B = e, ... }`.
type EnumStmt struct {
	Base
	Name    string
	Members []EnumMember
}

// ModMember is one `decl` clause of a ModStmt; Value is the expression
// bound under `Name.Member`.
type ModMember struct {
	Member string
	Value  Node
}

// ModStmt is `mod Name { decl; decl; ... }`.
type ModStmt struct {
	Base
	Name    string
	Members []ModMember
}

// UseStmt is `use <name> from "x.y.z";`.
type UseStmt struct {
	Base
	Name    string
	Version string
}

// ImportStmt is `import "path";`.
type ImportStmt struct {
	Base
	Path string
}

// TestStmt is `test "name" assert e { body }`.
type TestStmt struct {
	Base
	Name   string
	Assert Node // nil means "must be truthy"
	Body   Node
}

// Program is the top-level sequence of statements making up one file.
type Program struct {
	Base
	Statements []Node
}
