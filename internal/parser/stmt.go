package parser

import (
	"github.com/rhea-language/rhea-sub001/internal/ast"
	"github.com/rhea-language/rhea-sub001/internal/token"
)

// parseStatement implements the `statement` production of spec.md
// §4.2. Every branch consumes its own trailing ';' where the grammar
// calls for one; `expr ';'` is the fallback, where the ';' is optional
// after an expression that ends in a closing brace.
func (p *Parser) parseStatement() ast.Node {
	switch p.peek().Kind {
	case token.BREAK:
		tok := p.advance()
		p.consume(token.SEMICOLON, "break statement")
		return &ast.BreakStmt{Base: ast.NewBase(tok.Pos)}
	case token.CONTINUE:
		tok := p.advance()
		p.consume(token.SEMICOLON, "continue statement")
		return &ast.ContinueStmt{Base: ast.NewBase(tok.Pos)}
	case token.RET:
		return p.parseReturn()
	case token.THROW:
		tok := p.advance()
		val := p.parseExpr()
		p.consume(token.SEMICOLON, "throw statement")
		return &ast.ThrowStmt{Base: ast.NewBase(tok.Pos), Value: val}
	case token.WAIT:
		tok := p.advance()
		p.consume(token.SEMICOLON, "wait statement")
		return &ast.WaitStmt{Base: ast.NewBase(tok.Pos)}
	case token.HALT:
		tok := p.advance()
		p.consume(token.SEMICOLON, "halt statement")
		return &ast.HaltStmt{Base: ast.NewBase(tok.Pos)}
	case token.DELETE:
		return p.parseDelete()
	case token.ENUM:
		return p.parseEnum()
	case token.MOD:
		return p.parseMod()
	case token.USE:
		return p.parseUse()
	case token.IMPORT:
		return p.parseImport()
	case token.TEST:
		return p.parseTest()
	case token.VAL:
		return p.parseVarDecl()
	default:
		expr := p.parseExpr()
		// A block-terminated expression (block, if/else, loop, lock,
		// catch/handle, ...) may omit its trailing ';'.
		if p.pos > 0 && p.tokens[p.pos-1].Kind == token.RBRACE {
			p.match(token.SEMICOLON)
		} else {
			p.consume(token.SEMICOLON, "expression statement")
		}
		return &ast.SingleStatementExpr{Base: ast.NewBase(expr.Addr()), Statement: expr}
	}
}

// parseReturn handles a bare `ret;`/`return;` or `ret expr;`.
func (p *Parser) parseReturn() ast.Node {
	tok := p.advance()
	var val ast.Node
	if !p.check(token.SEMICOLON) {
		val = p.parseExpr()
	}
	p.consume(token.SEMICOLON, "return statement")
	return &ast.ReturnStmt{Base: ast.NewBase(tok.Pos), Value: val}
}

// parseDelete implements `delete x1, x2, ...;`.
func (p *Parser) parseDelete() ast.Node {
	tok := p.advance()
	names := []string{p.consume(token.IDENT, "delete statement").Image()}
	for p.match(token.COMMA) {
		names = append(names, p.consume(token.IDENT, "delete statement").Image())
	}
	p.consume(token.SEMICOLON, "delete statement")
	return &ast.DeleteStmt{Base: ast.NewBase(tok.Pos), Names: names}
}

// parseEnum implements `enum Name { A = e, B = e, ... }`.
func (p *Parser) parseEnum() ast.Node {
	tok := p.advance()
	name := p.consume(token.IDENT, "enum declaration").Image()
	p.consume(token.LBRACE, "enum body")
	var members []ast.EnumMember
	if !p.check(token.RBRACE) {
		members = append(members, p.parseEnumMember())
		for p.match(token.COMMA) {
			if p.check(token.RBRACE) {
				break
			}
			members = append(members, p.parseEnumMember())
		}
	}
	p.consume(token.RBRACE, "enum body")
	return &ast.EnumStmt{Base: ast.NewBase(tok.Pos), Name: name, Members: members}
}

func (p *Parser) parseEnumMember() ast.EnumMember {
	name := p.consume(token.IDENT, "enum member").Image()
	p.consume(token.EQ, "enum member")
	return ast.EnumMember{Name: name, Value: p.parseExpr()}
}

// parseMod implements `mod Name { decl; decl; ... }`, where each member
// is written `member = expr;` (no `val` keyword, and no native-binding
// form); spec.md §4.4 lowers each member expression into `Name.member`.
func (p *Parser) parseMod() ast.Node {
	tok := p.advance()
	name := p.consume(token.IDENT, "mod declaration").Image()
	p.consume(token.LBRACE, "mod body")
	var members []ast.ModMember
	for !p.check(token.RBRACE) && !p.atEnd() {
		if p.check(token.SEMICOLON) {
			p.advance()
			continue
		}
		member := p.consume(token.IDENT, "mod member").Image()
		p.consume(token.EQ, "mod member")
		value := p.parseExpr()
		p.consume(token.SEMICOLON, "mod member")
		members = append(members, ast.ModMember{Member: member, Value: value})
	}
	p.consume(token.RBRACE, "mod body")
	return &ast.ModStmt{Base: ast.NewBase(tok.Pos), Name: name, Members: members}
}

// parseUse implements `use <name> from "x.y.z";`.
func (p *Parser) parseUse() ast.Node {
	tok := p.advance()
	name := p.consume(token.IDENT, "use statement").Image()
	p.consume(token.FROM, "use statement")
	version := p.consume(token.STRING_LIT, "use statement").Image()
	p.consume(token.SEMICOLON, "use statement")
	return &ast.UseStmt{Base: ast.NewBase(tok.Pos), Name: name, Version: version}
}

// parseImport implements `import "path";`.
func (p *Parser) parseImport() ast.Node {
	tok := p.advance()
	path := p.consume(token.STRING_LIT, "import statement").Image()
	p.consume(token.SEMICOLON, "import statement")
	return &ast.ImportStmt{Base: ast.NewBase(tok.Pos), Path: path}
}

// parseTest implements `test "name" assert e { body }`; `assert` is
// optional (nil means "body result must be truthy").
func (p *Parser) parseTest() ast.Node {
	tok := p.advance()
	name := p.consume(token.STRING_LIT, "test statement").Image()
	var assert ast.Node
	if p.peek().Image() == "assert" && p.peek().Kind == token.IDENT {
		p.advance()
		assert = p.parseExpr()
	}
	body := p.parseBlock()
	return &ast.TestStmt{Base: ast.NewBase(tok.Pos), Name: name, Assert: assert, Body: body}
}

// parseVarDecl implements both `val name = expr;` and the native-bound
// `val name@"libpath" = fnName;` forms, plus comma-separated
// multi-binding (spec.md §4.2).
func (p *Parser) parseVarDecl() ast.Node {
	tok := p.advance() // 'val'
	bindings := []ast.VariableBinding{p.parseVarBinding()}
	for p.match(token.COMMA) {
		bindings = append(bindings, p.parseVarBinding())
	}
	p.consume(token.SEMICOLON, "variable declaration")
	return &ast.VariableDecl{Base: ast.NewBase(tok.Pos), Bindings: bindings}
}

func (p *Parser) parseVarBinding() ast.VariableBinding {
	name := p.consume(token.IDENT, "variable binding").Image()
	if p.match(token.AT) {
		libPath := p.consume(token.STRING_LIT, "native variable binding").Image()
		p.consume(token.EQ, "native variable binding")
		fnName := p.consume(token.IDENT, "native variable binding").Image()
		return ast.VariableBinding{
			Name:         name,
			Native:       true,
			LibPath:      libPath,
			NativeSymbol: fnName,
		}
	}
	p.consume(token.EQ, "variable binding")
	return ast.VariableBinding{Name: name, Init: p.parseExpr()}
}
