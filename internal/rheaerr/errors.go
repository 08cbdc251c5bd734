// Package rheaerr implements the error taxonomy of spec.md §7 and
// renders diagnostics with source context and a caret, the way the
// teacher's internal/errors package renders CompilerError, and the way
// the original C++ driver renders its ANSI "[Kind]: message" banners
// (see original_source/src/rhea/ast/expression/ParallelExpression.cpp).
package rheaerr

import (
	"fmt"
	"strings"

	"github.com/rhea-language/rhea-sub001/internal/token"
)

// Kind discriminates the fatal (non-signal) error categories of
// spec.md §7. The four catchable control-flow signals (Break/Continue/
// Return/Throw) are a distinct sum type — see internal/signal.
type Kind int

const (
	// Lexical marks a scanning failure (bad literal, unterminated string).
	Lexical Kind = iota
	// Parser marks a grammar-level failure; carries the offending token.
	Parser
	// ASTNode marks a structural evaluator error (bad arity, unknown symbol).
	ASTNode
	// System marks an OS/dynamic-loader failure.
	System
)

func (k Kind) String() string {
	switch k {
	case Lexical:
		return "Lexical Error"
	case Parser:
		return "Parser Error"
	case ASTNode:
		return "Runtime Error"
	case System:
		return "System Error"
	default:
		return "Error"
	}
}

// Error is a single diagnostic: a Kind, a message, and the position it
// occurred at (zero Position for errors with no useful source anchor).
type Error struct {
	Kind    Kind
	Message string
	Pos     token.Position
	Source  string // full source text, for caret rendering
	File    string
}

func New(kind Kind, pos token.Position, message string) *Error {
	return &Error{Kind: kind, Message: message, Pos: pos}
}

// Error implements the error interface with the plain (uncoloured) form.
func (e *Error) Error() string {
	return e.Format(false)
}

// Format renders the header, source line, caret and message. When
// color is true ANSI codes highlight the caret and banner, mirroring
// both the teacher's errors.CompilerError.Format and the original's
// renderError ANSI banners.
func (e *Error) Format(color bool) string {
	var sb strings.Builder

	banner := e.Kind.String()
	if color {
		sb.WriteString(fmt.Sprintf("[\033[1;31m%s\033[0m]: ", banner))
	} else {
		sb.WriteString(fmt.Sprintf("[%s]: ", banner))
	}
	sb.WriteString(e.Message)
	sb.WriteByte('\n')

	if e.Pos.Line > 0 {
		loc := e.Pos.String()
		sb.WriteString("                 ")
		sb.WriteString(loc)
		sb.WriteByte('\n')
	}

	if src := e.sourceLine(); src != "" {
		lineNum := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNum)
		sb.WriteString(src)
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat(" ", len(lineNum)+max(e.Pos.Column-1, 0)))
		if color {
			sb.WriteString("\033[1;31m^\033[0m\n")
		} else {
			sb.WriteString("^\n")
		}
	}

	return sb.String()
}

func (e *Error) sourceLine() string {
	if e.Source == "" || e.Pos.Line < 1 {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if e.Pos.Line > len(lines) {
		return ""
	}
	return lines[e.Pos.Line-1]
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// List is a collection of diagnostics accumulated during a single
// lex/parse pass (the lexer and parser both gather every error they
// find rather than bailing on the first one).
type List []*Error

func (l List) Error() string {
	var sb strings.Builder
	for i, e := range l {
		sb.WriteString(e.Error())
		if i < len(l)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// FormatAll renders every diagnostic in the list, colour-aware.
func (l List) FormatAll(color bool) string {
	var sb strings.Builder
	for _, e := range l {
		sb.WriteString(e.Format(color))
	}
	return sb.String()
}
