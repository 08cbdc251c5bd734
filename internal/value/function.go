package value

import (
	"fmt"

	"github.com/rhea-language/rhea-sub001/internal/ast"
	"github.com/rhea-language/rhea-sub001/internal/symtab"
	"github.com/rhea-language/rhea-sub001/internal/token"
)

// Function is a user-defined closure: the declaration node plus the
// scope active at the point the function expression was evaluated
// (spec.md §4.2: "a function captures its defining scope, not its
// call site"). Decl is shared by reference with whatever AST held the
// FunctionDecl node, per internal/ast's package doc.
type Function struct {
	Decl     *ast.FunctionDecl
	Captured *symtab.Scope
}

// NewFunction binds decl to the scope it was evaluated in.
func NewFunction(decl *ast.FunctionDecl, captured *symtab.Scope) *Function {
	return &Function{Decl: decl, Captured: captured}
}

func (*Function) Type() string { return "function" }

func (f *Function) String() string {
	name := f.Decl.Name
	if name == "" {
		name = "anonymous"
	}
	return fmt.Sprintf("<function %s/%d>", name, len(f.Decl.Params))
}

// declSite identifies a Function for equality purposes: two Function
// values are equal iff they wrap the exact same declaration node,
// regardless of which scope captured it (spec.md §3.2: function
// equality is identity on the declaration, not on captured state).
func (f *Function) declSite() *ast.FunctionDecl { return f.Decl }

// NativeFunc is the Go-side calling convention every native library
// symbol must implement once resolved by internal/native, mirroring
// the original ABI's `Value (*)(Token addr, Scope& scope, Vec<Value>
// args, bool unsafe)` (spec.md §6.4): addr anchors diagnostics, scope
// gives access to the caller's bindings, and unsafe mirrors the
// interpreter's -u/--unsafe flag. A returned error is surfaced by the
// caller as a Throw signal; the native ABI has no other error channel.
type NativeFunc func(addr token.Position, scope *symtab.Scope, args []Value, unsafe bool) (Value, error)

// Native is a loaded native-library function, identified for equality
// and diagnostics by its fully-qualified dotted name (e.g.
// "math.sqrt"), resolved to "math_sqrt" when looked up in the shared
// library (spec.md §5.2).
type Native struct {
	Name string
	Fn   NativeFunc
}

// NewNative wraps a resolved native symbol under name.
func NewNative(name string, fn NativeFunc) *Native { return &Native{Name: name, Fn: fn} }

func (*Native) Type() string { return "native" }

func (n *Native) String() string { return fmt.Sprintf("<native %s>", n.Name) }

// Call invokes the wrapped native function.
func (n *Native) Call(addr token.Position, scope *symtab.Scope, args []Value, unsafe bool) (Value, error) {
	return n.Fn(addr, scope, args, unsafe)
}
