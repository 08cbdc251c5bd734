package parser

import (
	"github.com/rhea-language/rhea-sub001/internal/ast"
	"github.com/rhea-language/rhea-sub001/internal/token"
)

// parseExpr is the `expr := assignment` production of spec.md §4.2.
func (p *Parser) parseExpr() ast.Node {
	return p.parseAssignment()
}

// parseAssignment implements `assignment := logicOr ('=' assignment)?`,
// right-associative (the sole exception to left-associativity, per
// spec.md §4.2).
func (p *Parser) parseAssignment() ast.Node {
	left := p.parseLogicOr()
	if p.check(token.EQ) {
		eq := p.advance()
		value := p.parseAssignment()
		switch left.(type) {
		case *ast.VariableAccess, *ast.ArrayAccess:
			return &ast.Assignment{Base: ast.NewBase(eq.Pos), Target: left, Value: value}
		default:
			p.errorf(eq.Pos, "invalid assignment target")
			return left
		}
	}
	return left
}

// parseLeftAssoc implements one left-associative precedence rung: next
// parses the tighter-binding production; kinds are the operator tokens
// recognized at this level (dotted broadcast variants share the rung
// of their scalar counterpart, per spec.md §4.2's grammar table).
func (p *Parser) parseLeftAssoc(kinds []token.Kind, next func(*Parser) ast.Node) ast.Node {
	left := next(p)
	for {
		tok := p.peek()
		matched := false
		for _, k := range kinds {
			if tok.Kind == k {
				matched = true
				break
			}
		}
		if !matched {
			return left
		}
		op := p.advance()
		right := next(p)
		left = &ast.BinaryOp{Base: ast.NewBase(op.Pos), Op: op.Image(), Left: left, Right: right}
	}
}

func (p *Parser) parseLogicOr() ast.Node {
	return p.parseLeftAssoc([]token.Kind{token.PIPE_PIPE}, (*Parser).parseLogicAnd)
}

func (p *Parser) parseLogicAnd() ast.Node {
	return p.parseLeftAssoc([]token.Kind{token.AMP_AMP}, (*Parser).parseBitOr)
}

func (p *Parser) parseBitOr() ast.Node {
	return p.parseLeftAssoc([]token.Kind{token.PIPE, token.DOT_PIPE}, (*Parser).parseBitXor)
}

func (p *Parser) parseBitXor() ast.Node {
	return p.parseLeftAssoc([]token.Kind{token.CARET, token.DOT_CARET}, (*Parser).parseBitAnd)
}

func (p *Parser) parseBitAnd() ast.Node {
	return p.parseLeftAssoc([]token.Kind{token.AMP, token.DOT_AMP}, (*Parser).parseNilCoal)
}

func (p *Parser) parseNilCoal() ast.Node {
	return p.parseLeftAssoc([]token.Kind{token.QUESTION}, (*Parser).parseEquality)
}

func (p *Parser) parseEquality() ast.Node {
	return p.parseLeftAssoc(
		[]token.Kind{token.EQ_EQ, token.BANG_EQ, token.COLON_COLON, token.BANG_COLON},
		(*Parser).parseCompare)
}

func (p *Parser) parseCompare() ast.Node {
	return p.parseLeftAssoc(
		[]token.Kind{token.LT, token.GT, token.LT_EQ, token.GT_EQ},
		(*Parser).parseShift)
}

func (p *Parser) parseShift() ast.Node {
	return p.parseLeftAssoc(
		[]token.Kind{token.LT_LT, token.GT_GT, token.DOT_LT_LT, token.DOT_GT_GT},
		(*Parser).parseTerm)
}

func (p *Parser) parseTerm() ast.Node {
	return p.parseLeftAssoc(
		[]token.Kind{token.PLUS, token.MINUS, token.DOT_PLUS, token.DOT_MINUS},
		(*Parser).parseFactor)
}

func (p *Parser) parseFactor() ast.Node {
	return p.parseLeftAssoc(
		[]token.Kind{token.STAR, token.SLASH, token.BACKSLASH, token.PERCENT,
			token.DOT_STAR, token.DOT_SLASH, token.DOT_PERCENT},
		(*Parser).parseUnary)
}

// parseUnary implements `unary := ('+' | '-' | '!' | '~' | '*') unary | primary`.
func (p *Parser) parseUnary() ast.Node {
	switch p.peek().Kind {
	case token.PLUS, token.MINUS, token.BANG, token.TILDE, token.STAR:
		op := p.advance()
		operand := p.parseUnary()
		return &ast.UnaryOp{Base: ast.NewBase(op.Pos), Op: op.Image(), Operand: operand}
	}
	return p.parsePrimary()
}

// parsePrimary dispatches every primary production of spec.md §4.2.
func (p *Parser) parsePrimary() ast.Node {
	tok := p.peek()
	switch tok.Kind {
	case token.NIL:
		p.advance()
		return &ast.NilLiteral{Base: ast.NewBase(tok.Pos)}
	case token.TRUE:
		p.advance()
		return &ast.BoolLiteral{Base: ast.NewBase(tok.Pos), Value: true}
	case token.FALSE:
		p.advance()
		return &ast.BoolLiteral{Base: ast.NewBase(tok.Pos), Value: false}
	case token.INT, token.FLOAT:
		p.advance()
		return &ast.NumberLiteral{Base: ast.NewBase(tok.Pos), Value: parseNumberLiteral(tok)}
	case token.STRING_LIT:
		p.advance()
		return &ast.StringLiteral{Base: ast.NewBase(tok.Pos), Value: tok.Image()}
	case token.REGEX_LIT:
		p.advance()
		return &ast.RegexLiteral{Base: ast.NewBase(tok.Pos), Pattern: tok.Image()}
	case token.LBRACK:
		return p.parseArrayLiteral()
	case token.LBRACE:
		return p.parseBlock()
	case token.IF:
		return p.parseIfElse()
	case token.UNLESS:
		return p.parseUnless()
	case token.WHEN:
		return p.parseWhen()
	case token.WHILE:
		return p.parseWhile()
	case token.LOOP:
		return p.parseLoop()
	case token.FUNC:
		return p.parseFunctionDecl()
	case token.PARALLEL:
		p.advance()
		expr := p.parseExpr()
		return &ast.Parallel{Base: ast.NewBase(tok.Pos), Expr: expr}
	case token.RANDOM:
		return p.parseRandom()
	case token.RENDER:
		return p.parseRender()
	case token.TYPE:
		p.advance()
		return &ast.TypeOf{Base: ast.NewBase(tok.Pos), Operand: p.parseExpr()}
	case token.SIZE:
		p.advance()
		return &ast.Size{Base: ast.NewBase(tok.Pos), Operand: p.parseExpr()}
	case token.LOCK:
		return p.parseLock()
	case token.CATCH:
		return p.parseCatchHandle()
	case token.IDENT:
		return p.parsePostfix(p.parseIdentExpr())
	case token.LPAREN:
		p.advance()
		inner := p.parseExpr()
		p.consume(token.RPAREN, "parenthesized expression")
		return p.parsePostfix(inner)
	}

	p.errorf(tok.Pos, "unexpected token %q", tok.Image())
	p.advance()
	return &ast.NilLiteral{Base: ast.NewBase(tok.Pos)}
}

// parsePostfix wraps a primary in FunctionCall/ArrayAccess nodes for
// trailing `(...)`/`[...]` suffixes, chained left-to-right (`f()[0]()`).
func (p *Parser) parsePostfix(n ast.Node) ast.Node {
	for {
		switch p.peek().Kind {
		case token.LPAREN:
			tok := p.advance()
			var args []ast.Node
			if !p.check(token.RPAREN) {
				args = append(args, p.parseExpr())
				for p.match(token.COMMA) {
					args = append(args, p.parseExpr())
				}
			}
			p.consume(token.RPAREN, "function call arguments")
			n = &ast.FunctionCall{Base: ast.NewBase(tok.Pos), Callee: n, Args: args}
		case token.LBRACK:
			tok := p.advance()
			idx := p.parseExpr()
			p.consume(token.RBRACK, "array access")
			n = &ast.ArrayAccess{Base: ast.NewBase(tok.Pos), Array: n, Index: idx}
		default:
			return n
		}
	}
}

// parseIdentExpr reads a (possibly dotted) name such as `Color.GREEN`
// into a single VariableAccess whose Name is the dot-joined path. This
// mirrors how `enum`/`mod` lower their members directly into scope
// under "Name.Member" keys (spec.md §4.4), so a qualified reference
// resolves with one scope.Get call rather than a separate namespace
// lookup.
func (p *Parser) parseIdentExpr() ast.Node {
	tok := p.advance()
	name := tok.Image()
	for p.check(token.DOT) && p.peekAt(1).Kind == token.IDENT {
		p.advance() // '.'
		name += "." + p.advance().Image()
	}
	return &ast.VariableAccess{Base: ast.NewBase(tok.Pos), Name: name}
}

func (p *Parser) parseArrayLiteral() ast.Node {
	open := p.advance() // '['
	var elems []ast.Node
	if !p.check(token.RBRACK) {
		elems = append(elems, p.parseExpr())
		for p.match(token.COMMA) {
			if p.check(token.RBRACK) {
				break
			}
			elems = append(elems, p.parseExpr())
		}
	}
	p.consume(token.RBRACK, "array literal")
	return &ast.ArrayLiteral{Base: ast.NewBase(open.Pos), Elements: elems}
}

// parseBlock implements `{ s1; s2; ...; sn; }` (spec.md §4.3).
func (p *Parser) parseBlock() *ast.Block {
	open := p.consume(token.LBRACE, "block")
	var stmts []ast.Node
	for !p.check(token.RBRACE) && !p.atEnd() {
		if p.check(token.SEMICOLON) {
			p.advance()
			continue
		}
		stmts = append(stmts, p.parseStatement())
	}
	p.consume(token.RBRACE, "block")
	return &ast.Block{Base: ast.NewBase(open.Pos), Statements: stmts}
}

func (p *Parser) parseIfElse() ast.Node {
	tok := p.advance() // 'if'
	p.consume(token.LPAREN, "if condition")
	cond := p.parseExpr()
	p.consume(token.RPAREN, "if condition")
	then := p.parseExpr()
	var els ast.Node
	if p.match(token.ELSE) {
		els = p.parseExpr()
	}
	return &ast.IfElse{Base: ast.NewBase(tok.Pos), Condition: cond, Then: then, Else: els}
}

func (p *Parser) parseUnless() ast.Node {
	tok := p.advance() // 'unless'
	p.consume(token.LPAREN, "unless condition")
	cond := p.parseExpr()
	p.consume(token.RPAREN, "unless condition")
	then := p.parseExpr()
	var els ast.Node
	if p.match(token.ELSE) {
		els = p.parseExpr()
	}
	return &ast.Unless{Base: ast.NewBase(tok.Pos), Condition: cond, Then: then, Else: els}
}

// parseWhen implements `when (x) { p1 => e1, ..., else => ed }`.
func (p *Parser) parseWhen() ast.Node {
	tok := p.advance() // 'when'
	p.consume(token.LPAREN, "when subject")
	subject := p.parseExpr()
	p.consume(token.RPAREN, "when subject")
	p.consume(token.LBRACE, "when cases")

	var cases []ast.WhenCase
	for !p.check(token.RBRACE) && !p.atEnd() {
		var pattern ast.Node
		if !p.match(token.ELSE) {
			pattern = p.parseExpr()
		}
		p.consume(token.FAT_ARROW, "when case")
		result := p.parseExpr()
		cases = append(cases, ast.WhenCase{Pattern: pattern, Result: result})
		if !p.match(token.COMMA) {
			break
		}
	}
	p.consume(token.RBRACE, "when cases")
	return &ast.When{Base: ast.NewBase(tok.Pos), Subject: subject, Cases: cases}
}

// parseWhile desugars `while (cond) body` to a Loop with nil Init/Post,
// per spec.md §4.3 ("While as a special case of loop").
func (p *Parser) parseWhile() ast.Node {
	tok := p.advance() // 'while'
	p.consume(token.LPAREN, "while condition")
	cond := p.parseExpr()
	p.consume(token.RPAREN, "while condition")
	body := p.parseExpr()
	return &ast.Loop{Base: ast.NewBase(tok.Pos), Cond: cond, Body: body}
}

// parseLoop implements `loop (init; cond; post) body`.
func (p *Parser) parseLoop() ast.Node {
	tok := p.advance() // 'loop'
	p.consume(token.LPAREN, "loop header")
	var init ast.Node
	if !p.check(token.SEMICOLON) {
		init = p.parseExpr()
	}
	p.consume(token.SEMICOLON, "loop header")
	cond := p.parseExpr()
	p.consume(token.SEMICOLON, "loop header")
	var post ast.Node
	if !p.check(token.RPAREN) {
		post = p.parseExpr()
	}
	p.consume(token.RPAREN, "loop header")
	body := p.parseExpr()
	return &ast.Loop{Base: ast.NewBase(tok.Pos), Init: init, Cond: cond, Post: post, Body: body}
}

// parseFunctionDecl implements `func [name] (p1, p2, ...) body`.
func (p *Parser) parseFunctionDecl() ast.Node {
	tok := p.advance() // 'func'
	name := ""
	if p.check(token.IDENT) {
		name = p.advance().Image()
	}
	p.consume(token.LPAREN, "function parameters")
	var params []string
	if !p.check(token.RPAREN) {
		params = append(params, p.consume(token.IDENT, "function parameter").Image())
		for p.match(token.COMMA) {
			params = append(params, p.consume(token.IDENT, "function parameter").Image())
		}
	}
	p.consume(token.RPAREN, "function parameters")
	body := p.parseExpr()
	return &ast.FunctionDecl{Base: ast.NewBase(tok.Pos), Name: name, Params: params, Body: body}
}

// parseRandom implements `random { then } else { else }` (also `maybe`,
// aliased by the lexer to the same RANDOM kind).
func (p *Parser) parseRandom() ast.Node {
	tok := p.advance() // 'random'/'maybe'
	then := p.parseExpr()
	p.consume(token.ELSE, "random")
	els := p.parseExpr()
	return &ast.Random{Base: ast.NewBase(tok.Pos), Then: then, Else: els}
}

// parseRender implements `render x` / `render! x`.
func (p *Parser) parseRender() ast.Node {
	tok := p.advance() // 'render'
	err := p.match(token.BANG)
	operand := p.parseExpr()
	return &ast.Render{Base: ast.NewBase(tok.Pos), Operand: operand, Err: err}
}

// parseLock implements `lock (name) body`.
func (p *Parser) parseLock() ast.Node {
	tok := p.advance() // 'lock'
	p.consume(token.LPAREN, "lock target")
	name := p.consume(token.IDENT, "lock target").Image()
	p.consume(token.RPAREN, "lock target")
	body := p.parseExpr()
	return &ast.Lock{Base: ast.NewBase(tok.Pos), Name: name, Body: body}
}

// parseCatchHandle implements `catch { body } handle (e) { recover } [final { cleanup }]`.
func (p *Parser) parseCatchHandle() ast.Node {
	tok := p.advance() // 'catch'
	try := p.parseBlock()
	p.consume(token.HANDLE, "catch/handle")
	p.consume(token.LPAREN, "handle binding")
	handler := p.consume(token.IDENT, "handle binding").Image()
	p.consume(token.RPAREN, "handle binding")
	recover := p.parseBlock()

	var final ast.Node
	if p.match(token.FINAL) {
		final = p.parseBlock()
	}
	return &ast.CatchHandle{Base: ast.NewBase(tok.Pos), Try: try, Handler: handler, Recover: recover, Final: final}
}
