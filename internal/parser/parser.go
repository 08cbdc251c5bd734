// Package parser implements the recursive-descent, precedence-climbing
// parser of spec.md §4.2, grounded on the teacher's own
// internal/parser/parser.go (token-stream cursor with peek/advance and
// per-production methods) but built over this language's grammar
// rather than DWScript's Pascal-like syntax.
package parser

import (
	"fmt"

	"github.com/rhea-language/rhea-sub001/internal/ast"
	"github.com/rhea-language/rhea-sub001/internal/rheaerr"
	"github.com/rhea-language/rhea-sub001/internal/token"
)

// Parser walks a flat token slice produced by internal/lexer and
// builds an *ast.Program, accumulating rheaerr.List errors rather than
// aborting on the first one so a single file can report every parse
// error it contains.
type Parser struct {
	tokens []token.Token
	pos    int
	errors rheaerr.List
}

// New wraps tokens (as returned by lexer.Tokenize) for parsing.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Errors returns every parse error accumulated so far.
func (p *Parser) Errors() rheaerr.List { return p.errors }

// ParseProgram consumes the entire token stream and returns the
// resulting Program node. Errors are recorded in p.Errors(), not
// returned, so callers can decide whether a partial AST is usable.
func (p *Parser) ParseProgram() *ast.Program {
	start := p.peek().Pos
	var stmts []ast.Node
	for !p.atEnd() {
		if p.check(token.SEMICOLON) {
			p.advance()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return &ast.Program{Base: ast.NewBase(start), Statements: stmts}
}

// ---- token cursor ----

func (p *Parser) peek() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(offset int) token.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[idx]
}

func (p *Parser) atEnd() bool { return p.peek().Kind == token.EOF }

func (p *Parser) advance() token.Token {
	t := p.peek()
	if !p.atEnd() {
		p.pos++
	}
	return t
}

func (p *Parser) check(kind token.Kind) bool { return p.peek().Kind == kind }

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past a token of the given kind, recording a
// ParserError at the current position if it isn't there (spec.md
// §4.2: "Each consume(kind|image) records the position of the matched
// token; parse errors carry that position").
func (p *Parser) consume(kind token.Kind, context string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	tok := p.peek()
	p.errorf(tok.Pos, "expected token kind %d in %s, got %q", int(kind), context, tok.Image())
	return tok
}

func (p *Parser) errorf(pos token.Position, format string, args ...any) {
	p.errors = append(p.errors, rheaerr.New(rheaerr.Parser, pos, fmt.Sprintf(format, args...)))
}
