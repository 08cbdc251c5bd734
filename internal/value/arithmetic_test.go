package value

import (
	"math"
	"testing"

	"github.com/rhea-language/rhea-sub001/internal/token"
)

func TestBinaryNumberOps(t *testing.T) {
	tests := []struct {
		op       string
		l, r     float64
		wantNum  float64
		wantBool bool
		isBool   bool
	}{
		{"+", 2, 3, 5, false, false},
		{"-", 5, 3, 2, false, false},
		{"*", 4, 3, 12, false, false},
		{"%", 7, 3, 1, false, false},
		{"<", 2, 3, 0, true, true},
		{">=", 3, 3, 0, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			got, err := Binary(tt.op, Number(tt.l), Number(tt.r), token.Position{})
			if err != nil {
				t.Fatalf("Binary(%q) error: %v", tt.op, err)
			}
			if tt.isBool {
				b, ok := got.(Bool)
				if !ok || bool(b) != tt.wantBool {
					t.Fatalf("Binary(%q) = %v, want bool %v", tt.op, got, tt.wantBool)
				}
				return
			}
			n, ok := got.(Number)
			if !ok || float64(n) != tt.wantNum {
				t.Fatalf("Binary(%q) = %v, want %v", tt.op, got, tt.wantNum)
			}
		})
	}
}

// Division by zero must yield IEEE-754 Inf/NaN rather than an error,
// per the failure-semantics table governing arithmetic.
func TestBinaryDivisionByZero(t *testing.T) {
	got, err := Binary("/", Number(1), Number(0), token.Position{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, ok := got.(Number)
	if !ok || !math.IsInf(float64(n), 1) {
		t.Fatalf("1/0 = %v, want +Inf", got)
	}

	got, err = Binary("/", Number(0), Number(0), token.Position{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, ok := got.(Number); !ok || !math.IsNaN(float64(n)) {
		t.Fatalf("0/0 = %v, want NaN", got)
	}
}

func TestBinaryDottedBroadcast(t *testing.T) {
	arr := NewArray([]Value{Number(1), Number(2), Number(3)})
	got, err := Binary(".+", arr, Number(10), token.Position{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, ok := got.(*Array)
	if !ok || out.Len() != 3 {
		t.Fatalf("broadcast result = %v", got)
	}
	want := []float64{11, 12, 13}
	for i, w := range want {
		if n, ok := out.Items[i].(Number); !ok || float64(n) != w {
			t.Fatalf("broadcast[%d] = %v, want %v", i, out.Items[i], w)
		}
	}
}

func TestBinaryArrayArithmetic(t *testing.T) {
	l := NewArray([]Value{Number(1), Number(2)})
	r := NewArray([]Value{Number(10), Number(20)})
	got, err := Binary("+", l, r, token.Position{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := got.(*Array)
	if float64(out.Items[0].(Number)) != 11 || float64(out.Items[1].(Number)) != 22 {
		t.Fatalf("array+array = %v", out)
	}
}

// Array⊕Array must support the full numeric operator set, the same as
// number⊕number, applied component-wise.
func TestBinaryArrayArithmeticAllOperators(t *testing.T) {
	l := NewArray([]Value{Number(6), Number(12)})
	r := NewArray([]Value{Number(3), Number(5)})
	tests := []struct {
		op   string
		want []float64
	}{
		{"+", []float64{9, 17}},
		{"-", []float64{3, 7}},
		{"*", []float64{18, 60}},
		{"/", []float64{2, 2.4}},
		{"\\", []float64{0.5, float64(5) / 12}},
		{"%", []float64{0, 2}},
		{"&", []float64{float64(int64(6) & int64(3)), float64(int64(12) & int64(5))}},
		{"|", []float64{float64(int64(6) | int64(3)), float64(int64(12) | int64(5))}},
		{"^", []float64{float64(int64(6) ^ int64(3)), float64(int64(12) ^ int64(5))}},
		{"<<", []float64{float64(int64(6) << 3), float64(int64(12) << 5)}},
		{">>", []float64{float64(int64(6) >> 3), float64(int64(12) >> 5)}},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			got, err := Binary(tt.op, l, r, token.Position{})
			if err != nil {
				t.Fatalf("Binary(%q) error: %v", tt.op, err)
			}
			out := got.(*Array)
			for i, w := range tt.want {
				if n := float64(out.Items[i].(Number)); n != w {
					t.Errorf("array %s array [%d] = %v, want %v", tt.op, i, n, w)
				}
			}
		})
	}
}

func TestBinaryStringRegexReplace(t *testing.T) {
	got, err := Binary("-", String("hello world"), String(`o`), token.Position{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s, ok := got.(String); !ok || string(s) != "hell wrld" {
		t.Fatalf("string - regex = %v, want %q", got, "hell wrld")
	}
}

func TestBinaryRegexMatch(t *testing.T) {
	re := NewRegex(`^[a-z]+$`)
	got, err := Binary("::", re, String("abc"), token.Position{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b, ok := got.(Bool); !ok || !bool(b) {
		t.Fatalf("regex match = %v, want true", got)
	}

	got, err = Binary("!:", re, String("ABC"), token.Position{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b, ok := got.(Bool); !ok || !bool(b) {
		t.Fatalf("negated regex match = %v, want true", got)
	}
}

func TestBinaryGenericConcat(t *testing.T) {
	got, err := Binary("+", String("n = "), Number(5), token.Position{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s, ok := got.(String); !ok || string(s) != "n = 5.000000" {
		t.Fatalf("concat = %v", got)
	}
}

func TestUnaryOps(t *testing.T) {
	got, err := Unary("-", Number(5), token.Position{})
	if err != nil || float64(got.(Number)) != -5 {
		t.Fatalf("-5 = %v, err %v", got, err)
	}

	got, err = Unary("!", Bool(false), token.Position{})
	if err != nil || !bool(got.(Bool)) {
		t.Fatalf("!false = %v, err %v", got, err)
	}

	got, err = Unary("~", NewArray([]Value{Number(1), Number(2), Number(3)}), token.Position{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := got.(*Array)
	if float64(out.Items[0].(Number)) != 3 || float64(out.Items[2].(Number)) != 1 {
		t.Fatalf("~array = %v", out)
	}

	got, err = Unary("~", String("abc"), token.Position{})
	if err != nil || string(got.(String)) != "cba" {
		t.Fatalf("~\"abc\" = %v, err %v", got, err)
	}

	got, err = Unary("~", Number(5), token.Position{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, ok := got.(Number); !ok || int64(n) != ^int64(5) {
		t.Fatalf("~5 = %v, want %v", got, ^int64(5))
	}
}

// `~~x == x` for Number, per spec.md §8's round-trip law — bitwise NOT
// through int64 is its own inverse.
func TestUnaryBitwiseNotNumberRoundTrip(t *testing.T) {
	for _, n := range []float64{0, 1, -1, 5, -5, 12345} {
		once, err := Unary("~", Number(n), token.Position{})
		if err != nil {
			t.Fatalf("~%v: unexpected error: %v", n, err)
		}
		twice, err := Unary("~", once, token.Position{})
		if err != nil {
			t.Fatalf("~~%v: unexpected error: %v", n, err)
		}
		if got := float64(twice.(Number)); got != n {
			t.Errorf("~~%v = %v, want %v", n, got, n)
		}
	}
}

func TestUnaryUndefinedCombination(t *testing.T) {
	_, err := Unary("~", Bool(true), token.Position{})
	if err == nil {
		t.Fatal("expected an error for ~ on a bool")
	}
}
