// Package parser builds an AST (package ast) from a token stream.
//
// It implements a standard Pratt (precedence-climbing) recursive
// descent parse over the supported expression grammar.
package parser

import (
	"fmt"
	"strconv"

	"github.com/nixlang/nixeval/internal/ast"
	"github.com/nixlang/nixeval/internal/lexer"
	"github.com/nixlang/nixeval/internal/token"
)

type Parser struct {
	l *lexer.Lexer

	cur  token.Token
	peek token.Token

	errors []string
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.next()
	p.next()
	return p
}

func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) errorf(format string, args ...interface{}) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *Parser) expect(t token.Type) bool {
	if p.cur.Type != t {
		p.errorf("line %d: expected %s, got %s (%q)", p.cur.Line, t, p.cur.Type, p.cur.Literal)
		return false
	}
	p.next()
	return true
}

// ParseProgram parses a single top-level expression and wraps it in a
// Root node. Trailing tokens left over after the expression (the input
// isn't fully consumed) are reported as an error rather than silently
// discarded.
func ParseProgram(input string) (*ast.Root, []string) {
	p := New(lexer.New(input))
	tok := p.cur
	expr := p.parseExpression(lowest)
	if p.cur.Type != token.EOF {
		p.errorf("line %d: unexpected trailing token %s (%q)", p.cur.Line, p.cur.Type, p.cur.Literal)
	}
	return &ast.Root{Token: tok, Inner: expr}, p.errors
}

// Operator precedence, low to high.
const (
	lowest int = iota
	precImplies
	precOr
	precAnd
	precEquality
	precComparison
	precUpdate
	precConcat
	precAdd
	precMul
	precUnary
	precHasAttr
	precApply
	precSelect
)

var binPrec = map[token.Type]int{
	token.IMPLIES: precImplies,
	token.OR:      precOr,
	token.AND:     precAnd,
	token.EQ:      precEquality,
	token.NOT_EQ:  precEquality,
	token.LT:      precComparison,
	token.LT_EQ:   precComparison,
	token.GT:      precComparison,
	token.GT_EQ:   precComparison,
	token.UPDATE:  precUpdate,
	token.CONCAT:  precConcat,
	token.PLUS:    precAdd,
	token.MINUS:   precAdd,
	token.STAR:    precMul,
	token.SLASH:   precMul,
}

var binOp = map[token.Type]ast.Operator{
	token.IMPLIES: ast.OpImplies,
	token.OR:      ast.OpOr,
	token.AND:     ast.OpAnd,
	token.EQ:      ast.OpEqual,
	token.NOT_EQ:  ast.OpNotEqual,
	token.LT:      ast.OpLess,
	token.LT_EQ:   ast.OpLessEq,
	token.GT:      ast.OpMore,
	token.GT_EQ:   ast.OpMoreEq,
	token.UPDATE:  ast.OpUpdate,
	token.CONCAT:  ast.OpConcat,
	token.PLUS:    ast.OpAdd,
	token.MINUS:   ast.OpSub,
	token.STAR:    ast.OpMul,
	token.SLASH:   ast.OpDiv,
}

// starts of a primary expression: used to decide whether the next
// token can begin an application argument (juxtaposition).
func startsPrimary(t token.Type) bool {
	switch t {
	case token.IDENT, token.INT, token.FLOAT, token.STRING, token.PATH,
		token.BOOL, token.NULL, token.LPAREN, token.LBRACKET, token.LBRACE,
		token.MINUS, token.NOT:
		return true
	}
	return false
}

func (p *Parser) parseExpression(minPrec int) ast.Node {
	left := p.parseApplication()

	for {
		prec, ok := binPrec[p.cur.Type]
		if !ok || prec < minPrec {
			break
		}
		opTok := p.cur
		op := binOp[p.cur.Type]
		// implies is right-associative; everything else is left-associative
		nextMin := prec + 1
		if op == ast.OpImplies {
			nextMin = prec
		}
		p.next()
		right := p.parseExpression(nextMin)
		left = &ast.BinaryOp{Token: opTok, Operator: op, Left: left, Right: right}
	}

	// `?` has-attr postfix: `set ? key` — lower precedence than select/apply,
	// parsed here so `a.b ? c` parses as (a.b) ? c.
	for p.cur.Type == token.QUESTION {
		qTok := p.cur
		p.next()
		keyTok := p.cur
		p.expect(token.IDENT)
		left = &ast.BinaryOp{Token: qTok, Operator: ast.OpIsSet, Left: left, Right: &ast.Identifier{Token: keyTok, Name: keyTok.Literal}}
	}

	// `or` default: `expr or default`
	if p.cur.Type == token.OR_KW {
		orTok := p.cur
		p.next()
		def := p.parseApplication()
		left = &ast.OrDefault{Token: orTok, Primary: left, Default: def}
	}

	return left
}

// parseApplication parses a chain of juxtaposed primaries as left-to-right
// function application: `f x y` == `(f x) y`.
func (p *Parser) parseApplication() ast.Node {
	fn := p.parseUnary()
	for startsPrimary(p.cur.Type) {
		arg := p.parseUnary()
		fn = &ast.Apply{Token: fn.Tok(), Fn: fn, Arg: arg}
	}
	return fn
}

func (p *Parser) parseUnary() ast.Node {
	if p.cur.Type == token.MINUS || p.cur.Type == token.NOT {
		opTok := p.cur
		op := p.cur.Literal
		p.next()
		operand := p.parseUnary()
		return &ast.UnaryOp{Token: opTok, Operator: op, Operand: operand}
	}
	return p.parseSelect()
}

func (p *Parser) parseSelect() ast.Node {
	expr := p.parsePrimary()
	for p.cur.Type == token.DOT {
		dotTok := p.cur
		p.next()
		key := p.cur.Literal
		p.expect(token.IDENT)
		expr = &ast.Select{Token: dotTok, Set: expr, Key: key}
	}
	return expr
}

func (p *Parser) parsePrimary() ast.Node {
	// Lambda: IDENT ':' expr
	if p.cur.Type == token.IDENT && p.peek.Type == token.COLON {
		tok := p.cur
		param := p.cur.Literal
		p.next() // consume ident
		p.next() // consume ':'
		body := p.parseExpression(lowest)
		return &ast.Lambda{Token: tok, Param: param, Body: body}
	}

	switch p.cur.Type {
	case token.INT:
		tok := p.cur
		v, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			p.errorf("line %d: bad integer literal %q", tok.Line, tok.Literal)
		}
		p.next()
		return &ast.IntLiteral{Token: tok, Value: v}
	case token.FLOAT:
		tok := p.cur
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.errorf("line %d: bad float literal %q", tok.Line, tok.Literal)
		}
		p.next()
		return &ast.FloatLiteral{Token: tok, Value: v}
	case token.STRING:
		tok := p.cur
		p.next()
		return &ast.StringLiteral{Token: tok, Parts: []string{tok.Literal}, Exprs: []ast.Node{nil}}
	case token.PATH:
		tok := p.cur
		p.next()
		return &ast.PathLiteral{Token: tok, Value: tok.Literal}
	case token.BOOL:
		tok := p.cur
		p.next()
		return &ast.BoolLiteral{Token: tok, Value: tok.Literal == "true"}
	case token.NULL:
		tok := p.cur
		p.next()
		return &ast.NullLiteral{Token: tok}
	case token.IDENT:
		tok := p.cur
		p.next()
		return &ast.Identifier{Token: tok, Name: tok.Literal}
	case token.LPAREN:
		tok := p.cur
		p.next()
		inner := p.parseExpression(lowest)
		p.expect(token.RPAREN)
		return &ast.Paren{Token: tok, Inner: inner}
	case token.LBRACKET:
		return p.parseList()
	case token.LBRACE:
		return p.parseAttrSetOrPatternLambda(false)
	case token.REC:
		tok := p.cur
		p.next()
		if p.cur.Type != token.LBRACE {
			p.errorf("line %d: expected { after rec", tok.Line)
			return &ast.NullLiteral{Token: tok}
		}
		return p.parseAttrSetOrPatternLambda(true)
	case token.LET:
		return p.parseLetIn()
	case token.IF:
		return p.parseIfElse()
	case token.WITH:
		return p.parseWith()
	case token.ASSERT:
		return p.parseAssert()
	case token.INHERIT:
		return p.parseInherit()
	}

	p.errorf("line %d: unexpected token %s (%q)", p.cur.Line, p.cur.Type, p.cur.Literal)
	tok := p.cur
	p.next()
	return &ast.NullLiteral{Token: tok}
}

func (p *Parser) parseList() ast.Node {
	tok := p.cur
	p.expect(token.LBRACKET)
	var elems []ast.Node
	for p.cur.Type != token.RBRACKET && p.cur.Type != token.EOF {
		elems = append(elems, p.parseUnary())
	}
	p.expect(token.RBRACKET)
	return &ast.ListLiteral{Token: tok, Elements: elems}
}

// parseAttrSetOrPatternLambda disambiguates `{ ... }` as either an
// attribute-set literal or a pattern-lambda parameter list
// (`{ a, b }: body`) by scanning ahead, on a cloned lexer, for the
// token immediately following the matching `}`: a `rec` prefix rules
// out a pattern outright, otherwise a `:` there means a pattern-lambda.
func (p *Parser) parseAttrSetOrPatternLambda(recursive bool) ast.Node {
	if !recursive && p.looksLikePatternLambda() {
		return p.parsePatternLambda()
	}

	tok := p.cur
	p.expect(token.LBRACE)

	var entries []ast.AttrSetEntry
	for p.cur.Type != token.RBRACE && p.cur.Type != token.EOF {
		if p.cur.Type == token.INHERIT {
			inh := p.parseInherit()
			ih := inh.(*ast.Inherit)
			for _, name := range ih.Names {
				entries = append(entries, ast.AttrSetEntry{Key: name, Value: &ast.Identifier{Token: tok, Name: name}, Inherit: true})
			}
			continue
		}
		keyTok := p.cur
		var path []string
		if p.cur.Type == token.IDENT {
			path = append(path, p.cur.Literal)
			p.next()
			for p.cur.Type == token.DOT {
				p.next()
				path = append(path, p.cur.Literal)
				p.expect(token.IDENT)
			}
		} else {
			p.errorf("line %d: expected attribute name", keyTok.Line)
			p.next()
			continue
		}
		p.expect(token.ASSIGN)
		val := p.parseExpression(lowest)
		if p.cur.Type == token.SEMICOLON {
			p.next()
		}
		// Fold a dotted key into nested single-key entries by wrapping
		// the value; evalAttrSetLiteral resolves full paths directly,
		// so we keep the path joined with '.' and let the evaluator split it.
		entries = append(entries, ast.AttrSetEntry{Key: joinPath(path), Value: val})
	}
	p.expect(token.RBRACE)
	return &ast.AttrSetLiteral{Token: tok, Recursive: recursive, Entries: entries}
}

func joinPath(path []string) string {
	out := path[0]
	for _, seg := range path[1:] {
		out += "." + seg
	}
	return out
}

// looksLikePatternLambda scans ahead from the opening `{` (p.cur) on a
// cloned lexer, tracking brace depth, to see what follows the matching
// `}`. Lexer is a plain value type, so cloning it is a cheap,
// independent copy — the scan never touches p's own token stream.
func (p *Parser) looksLikePatternLambda() bool {
	lx := *p.l
	cur, peek := p.cur, p.peek
	advance := func() {
		cur = peek
		peek = lx.NextToken()
	}

	advance() // consume the opening '{'
	depth := 0
	for {
		switch cur.Type {
		case token.EOF:
			return false
		case token.LBRACE:
			depth++
		case token.RBRACE:
			if depth == 0 {
				return peek.Type == token.COLON
			}
			depth--
		}
		advance()
	}
}

// parsePattern parses a lambda parameter pattern: a brace-delimited,
// comma-separated list of field names, each with an optional `?
// default` expression, optionally ending in `...` to allow unlisted
// attributes.
func (p *Parser) parsePattern() *ast.Pattern {
	tok := p.cur
	p.expect(token.LBRACE)
	patt := &ast.Pattern{Token: tok, Defaults: map[string]ast.Node{}}
	for p.cur.Type != token.RBRACE && p.cur.Type != token.EOF {
		if p.cur.Type == token.DOT {
			p.next()
			if p.cur.Type == token.DOT {
				p.next()
			}
			if p.cur.Type == token.DOT {
				p.next()
			}
			patt.HasEllipsis = true
		} else {
			name := p.cur.Literal
			if !p.expect(token.IDENT) {
				p.next() // skip the offending token so the loop makes progress
				continue
			}
			patt.Fields = append(patt.Fields, name)
			if p.cur.Type == token.QUESTION {
				p.next()
				patt.Defaults[name] = p.parseExpression(lowest)
			}
		}
		if p.cur.Type == token.COMMA {
			p.next()
		}
	}
	p.expect(token.RBRACE)
	return patt
}

func (p *Parser) parsePatternLambda() ast.Node {
	tok := p.cur
	patt := p.parsePattern()
	p.expect(token.COLON)
	body := p.parseExpression(lowest)
	return &ast.PatternLambda{Token: tok, Pattern: patt, Body: body}
}

func (p *Parser) parseLetIn() ast.Node {
	tok := p.cur
	p.expect(token.LET)
	var bindings []ast.Binding
	for p.cur.Type != token.IN && p.cur.Type != token.EOF {
		var path []string
		path = append(path, p.cur.Literal)
		p.expect(token.IDENT)
		for p.cur.Type == token.DOT {
			p.next()
			path = append(path, p.cur.Literal)
			p.expect(token.IDENT)
		}
		p.expect(token.ASSIGN)
		val := p.parseExpression(lowest)
		if p.cur.Type == token.SEMICOLON {
			p.next()
		}
		bindings = append(bindings, ast.Binding{Path: path, Value: val})
	}
	p.expect(token.IN)
	body := p.parseExpression(lowest)
	return &ast.LetIn{Token: tok, Bindings: bindings, Body: body}
}

func (p *Parser) parseIfElse() ast.Node {
	tok := p.cur
	p.expect(token.IF)
	cond := p.parseExpression(lowest)
	p.expect(token.THEN)
	then := p.parseExpression(lowest)
	p.expect(token.ELSE)
	els := p.parseExpression(lowest)
	return &ast.IfElse{Token: tok, Condition: cond, Then: then, Else: els}
}

func (p *Parser) parseWith() ast.Node {
	tok := p.cur
	p.expect(token.WITH)
	set := p.parseExpression(lowest)
	p.expect(token.SEMICOLON)
	body := p.parseExpression(lowest)
	return &ast.With{Token: tok, Set: set, Body: body}
}

func (p *Parser) parseAssert() ast.Node {
	tok := p.cur
	p.expect(token.ASSERT)
	cond := p.parseExpression(lowest)
	p.expect(token.SEMICOLON)
	body := p.parseExpression(lowest)
	return &ast.Assert{Token: tok, Condition: cond, Body: body}
}

func (p *Parser) parseInherit() ast.Node {
	tok := p.cur
	p.expect(token.INHERIT)
	var from ast.Node
	if p.cur.Type == token.LPAREN {
		p.next()
		from = p.parseExpression(lowest)
		p.expect(token.RPAREN)
	}
	var names []string
	for p.cur.Type == token.IDENT {
		names = append(names, p.cur.Literal)
		p.next()
	}
	if p.cur.Type == token.SEMICOLON {
		p.next()
	}
	return &ast.Inherit{Token: tok, From: from, Names: names}
}
