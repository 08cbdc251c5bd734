package driver

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/rhea-language/rhea-sub001/internal/interp"
	"github.com/rhea-language/rhea-sub001/internal/lexer"
	"github.com/rhea-language/rhea-sub001/internal/parser"
	"github.com/rhea-language/rhea-sub001/internal/symtab"
	"github.com/rhea-language/rhea-sub001/internal/value"
)

// REPL implements the state machine of spec.md §4.5: read a line,
// append to a buffer, check bracket balance (strings/comments are NOT
// considered, a known limitation inherited verbatim from spec.md §9),
// and evaluate once balanced. All REPL input shares one top-level
// scope for the life of the session.
//
// chzyer/readline backs the input loop rather than a bare bufio.Scanner
// so the REPL gets history and line-editing for free — the same
// library three unrelated modules in the example corpus already pull
// in for their own REPLs.
func (d *Driver) REPL(stdin io.Reader, stdout io.Writer) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "rhea> ",
		HistoryFile: "",
		Stdin:       io.NopCloser(stdin),
		Stdout:      stdout,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	ip := interp.New(d.RT)
	scope := symtab.New()

	var buf strings.Builder
	for {
		prompt := "rhea> "
		if buf.Len() > 0 {
			prompt = "  ... "
		}
		rl.SetPrompt(prompt)

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if buf.Len() == 0 {
				continue
			}
			buf.Reset()
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		buf.WriteString(line)
		buf.WriteByte('\n')

		if !bracketsBalanced(buf.String()) {
			continue
		}

		source := buf.String()
		buf.Reset()
		d.evalREPLSource(ip, scope, source, stdout)
	}
}

func (d *Driver) evalREPLSource(ip *interp.Interpreter, scope *symtab.Scope, source string, stdout io.Writer) {
	lx := lexer.New(source, "<repl>")
	tokens, lexErrs := lx.Tokenize()
	if len(lexErrs) > 0 {
		fmt.Fprint(stdout, lexErrs.FormatAll(true))
		return
	}
	ps := parser.New(tokens)
	program := ps.ParseProgram()
	if errs := ps.Errors(); len(errs) > 0 {
		fmt.Fprint(stdout, errs.FormatAll(true))
		return
	}

	v, sig := ip.Eval(program, scope)
	if sig != nil {
		fmt.Fprintln(stdout, formatUncaughtSignal("<repl>", sig))
		return
	}
	if v != nil && v != value.Nil {
		fmt.Fprintln(stdout, value.ToDisplayString(v))
	}
}

// bracketsBalanced matches ()[]{} with a stack; strings and comments
// are not considered here, a known limitation carried over verbatim
// from spec.md §4.5/§9.
func bracketsBalanced(src string) bool {
	var stack []rune
	pairs := map[rune]rune{')': '(', ']': '[', '}': '{'}
	for _, r := range src {
		switch r {
		case '(', '[', '{':
			stack = append(stack, r)
		case ')', ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != pairs[r] {
				return true // unmatched closer: let the parser report it rather than hang
			}
			stack = stack[:len(stack)-1]
		}
	}
	return len(stack) == 0
}
