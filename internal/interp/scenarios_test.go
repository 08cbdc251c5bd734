package interp

import (
	"strings"
	"testing"

	"github.com/rhea-language/rhea-sub001/internal/lexer"
	"github.com/rhea-language/rhea-sub001/internal/parser"
	"github.com/rhea-language/rhea-sub001/internal/runtime"
	"github.com/rhea-language/rhea-sub001/internal/signal"
	"github.com/rhea-language/rhea-sub001/internal/symtab"
	"github.com/rhea-language/rhea-sub001/internal/value"
)

// run lexes, parses and evaluates src in a fresh top-level scope,
// failing the test on any lex/parse error. `render` returns its
// operand unchanged, so checking the final statement's value is
// equivalent to checking what the scenario would print.
func run(t *testing.T, src string) (value.Value, *signal.Signal) {
	t.Helper()
	lx := lexer.New(src, "scenario.rhea")
	tokens, lexErrs := lx.Tokenize()
	if len(lexErrs) > 0 {
		t.Fatalf("lex errors: %v", lexErrs)
	}
	p := parser.New(tokens)
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("parse errors: %v", errs)
	}
	ip := New(runtime.New(false, false))
	return ip.Eval(prog, symtab.New())
}

// Scenario 1: arithmetic broadcast.
func TestScenarioArithmeticBroadcast(t *testing.T) {
	v, sig := run(t, "render [1,2,3] .+ 10;")
	if sig != nil {
		t.Fatalf("unexpected signal: %v", sig)
	}
	arr, ok := v.(*value.Array)
	if !ok || arr.Len() != 3 {
		t.Fatalf("want a 3-element array, got %v", v)
	}
	want := []float64{11, 12, 13}
	for i, w := range want {
		if n, ok := arr.Items[i].(value.Number); !ok || float64(n) != w {
			t.Fatalf("element %d = %v, want %v", i, arr.Items[i], w)
		}
	}
}

// Scenario 2: closure and capture.
func TestScenarioClosureCapture(t *testing.T) {
	v, sig := run(t, `
		val make = func(x) { ret func(y) { ret x + y; }; };
		val add3 = make(3);
		render add3(4);
	`)
	if sig != nil {
		t.Fatalf("unexpected signal: %v", sig)
	}
	n, ok := v.(value.Number)
	if !ok || float64(n) != 7 {
		t.Fatalf("add3(4) = %v, want 7", v)
	}
}

// Closures see mutations made to their captured scope after the
// function was defined, not a snapshot taken at definition time.
func TestScenarioClosureCapturesLiveScope(t *testing.T) {
	v, sig := run(t, `
		val x = 1;
		val readX = func() { ret x; };
		x = 99;
		render readX();
	`)
	if sig != nil {
		t.Fatalf("unexpected signal: %v", sig)
	}
	if n, ok := v.(value.Number); !ok || float64(n) != 99 {
		t.Fatalf("readX() = %v, want 99 (live capture)", v)
	}
}

// Scenario 3: throw/catch with final, in that order.
func TestScenarioThrowCatchFinal(t *testing.T) {
	v, sig := run(t, `catch { throw "oops"; } handle(e) { render e; } final { render "done"; }`)
	if sig != nil {
		t.Fatalf("unexpected signal: %v", sig)
	}
	// final always runs last for its side effects, but the node's value
	// is whatever the try/handle path produced — final's own result is
	// discarded unless it raises a signal.
	if s, ok := v.(value.String); !ok || string(s) != "oops" {
		t.Fatalf("result = %v, want \"oops\"", v)
	}
}

func TestScenarioCatchHandlesNamedThrowValue(t *testing.T) {
	v, sig := run(t, `catch { throw "boom"; } handle(e) { render e; }`)
	if sig != nil {
		t.Fatalf("unexpected signal: %v", sig)
	}
	if s, ok := v.(value.String); !ok || string(s) != "boom" {
		t.Fatalf("handler result = %v, want \"boom\"", v)
	}
}

// Scenario 4: lock prevents rebinding.
func TestScenarioLockPreventsRebind(t *testing.T) {
	v, sig := run(t, `
		val x = 1;
		lock(x) { x = 2; }
		render x;
	`)
	if sig != nil {
		t.Fatalf("unexpected signal: %v", sig)
	}
	if n, ok := v.(value.Number); !ok || float64(n) != 1 {
		t.Fatalf("x = %v, want 1 (locked against rebind)", v)
	}
}

// Scenario 5: regex match.
func TestScenarioRegexMatch(t *testing.T) {
	v, sig := run(t, "render `^\\d+$` :: \"12345\";")
	if sig != nil {
		t.Fatalf("unexpected signal: %v", sig)
	}
	if b, ok := v.(value.Bool); !ok || !bool(b) {
		t.Fatalf("match result = %v, want true", v)
	}
}

// Scenario 6: module enum, accessed through dotted namespace syntax.
func TestScenarioModuleEnum(t *testing.T) {
	v, sig := run(t, `enum Color { RED = 1, GREEN = 2, BLUE = 3 } render Color.GREEN;`)
	if sig != nil {
		t.Fatalf("unexpected signal: %v", sig)
	}
	if n, ok := v.(value.Number); !ok || float64(n) != 2 {
		t.Fatalf("Color.GREEN = %v, want 2", v)
	}
}

// final must run on every exit path out of catch/handle, including the
// "handle name in use" error raised when the handler name collides with
// an existing binding in the try scope.
func TestScenarioCatchFinalRunsOnHandleNameCollision(t *testing.T) {
	src := `catch { val e = 1; throw "x"; } handle(e) { render e; } final { render "done"; }`
	var sig *signal.Signal
	out := captureStdout(t, func() {
		_, sig = run(t, src)
	})
	if sig == nil || sig.Kind != signal.Throw {
		t.Fatalf("want a Throw signal for the handle-name collision, got %v", sig)
	}
	if !strings.Contains(out, "done") {
		t.Fatalf("output = %q, want final's \"done\" to have run despite the collision error", out)
	}
}

// Scenario 7: nil-coalescing short-circuits, so a right side that would
// otherwise throw is never evaluated when the left side is already
// non-nil (spec.md §4.2: "if left is non-nil, return it, else right").
func TestScenarioNilCoalesceShortCircuits(t *testing.T) {
	v, sig := run(t, `val a = []; render 1 ? a[99];`)
	if sig != nil {
		t.Fatalf("unexpected signal: %v (right side should never have been evaluated)", sig)
	}
	if n, ok := v.(value.Number); !ok || float64(n) != 1 {
		t.Fatalf("1 ? ... = %v, want 1", v)
	}
}

func TestScenarioNilCoalesceFallsThroughOnNil(t *testing.T) {
	v, sig := run(t, `val x = nil; render x ? 42;`)
	if sig != nil {
		t.Fatalf("unexpected signal: %v", sig)
	}
	if n, ok := v.(value.Number); !ok || float64(n) != 42 {
		t.Fatalf("nil ? 42 = %v, want 42", v)
	}
}

func TestUncaughtThrowPropagatesAsSignal(t *testing.T) {
	_, sig := run(t, `throw "uncaught";`)
	if sig == nil || sig.Kind != signal.Throw {
		t.Fatalf("want a Throw signal, got %v", sig)
	}
	if s, ok := sig.Value.(value.String); !ok || string(s) != "uncaught" {
		t.Fatalf("throw payload = %v, want \"uncaught\"", sig.Value)
	}
}

func TestLoopBreakReturnsNilNotLastBodyValue(t *testing.T) {
	v, sig := run(t, `
		val i = 0;
		val result = loop (i = 0; i < 10; i = i + 1) {
			if (i == 3) { break; };
			99;
		};
		render result;
	`)
	if sig != nil {
		t.Fatalf("unexpected signal: %v", sig)
	}
	if v != value.Nil {
		t.Fatalf("loop with break = %v, want nil", v)
	}
}
