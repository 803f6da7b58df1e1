package syntax

import (
	"fmt"

	"github.com/roach88/typeshift/internal/ast"
)

// Options selects the accepted dialect.
type Options struct {
	// TypeSyntax accepts annotations, type declarations, assertions and the
	// other typed-superset constructs. Without it any such construct is a
	// syntax error.
	TypeSyntax bool
}

// Parse parses a module. On failure it returns a *Error and no tree.
func Parse(src string, opts Options) (prog *ast.Program, err error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, ts: opts.TypeSyntax, inAsync: true}
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			prog, err = nil, b.err
		}
	}()
	return p.parseProgram(), nil
}

// bailout unwinds the parser on the first error.
type bailout struct{ err *Error }

type parser struct {
	toks []token
	i    int
	ts   bool

	inAsync     bool
	inGenerator bool
	noIn        bool // `in` is not a binary operator (for-statement heads)
	noCond      bool // conditional types are not allowed (extends clauses)
}

func (p *parser) parseProgram() *ast.Program {
	prog := &ast.Program{Loc: ast.At(ast.Pos{Line: 1, Column: 1})}
	for p.tok().kind != tokEOF {
		prog.Body = append(prog.Body, p.parseStatement())
	}
	prog.Trailing = p.tok().comments
	return prog
}

// ---------------------------------------------------------------------------
// token access

func (p *parser) tok() *token { return &p.toks[p.i] }

func (p *parser) peek(n int) *token {
	if p.i+n >= len(p.toks) {
		return &p.toks[len(p.toks)-1]
	}
	return &p.toks[p.i+n]
}

func (p *parser) next() *token {
	t := &p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}
	return t
}

func (t *token) is(s string) bool {
	return (t.kind == tokPunct || t.kind == tokName) && t.text == s
}

func (p *parser) at(s string) bool { return p.tok().is(s) }

func (p *parser) eat(s string) bool {
	if p.at(s) {
		p.next()
		return true
	}
	return false
}

func (p *parser) expect(s string) *token {
	if !p.at(s) {
		p.failf(p.tok(), "expected %q, found %s", s, describe(p.tok()))
	}
	return p.next()
}

func (p *parser) pos() ast.Pos { return p.tok().pos }

func (p *parser) failf(t *token, format string, args ...any) {
	panic(bailout{&Error{Line: t.pos.Line, Column: t.pos.Column, Message: fmt.Sprintf(format, args...)}})
}

func (p *parser) unexpected() {
	p.failf(p.tok(), "unexpected %s", describe(p.tok()))
}

// requireTypes fails unless type syntax is enabled.
func (p *parser) requireTypes(t *token, what string) {
	if !p.ts {
		p.failf(t, "%s requires type syntax", what)
	}
}

func describe(t *token) string {
	switch t.kind {
	case tokEOF:
		return "end of input"
	case tokString:
		return "string literal"
	case tokTemplate, tokTemplateHead:
		return "template literal"
	}
	return fmt.Sprintf("%q", t.text)
}

// try runs f speculatively. On failure the token position is restored and
// false is returned.
func (p *parser) try(f func()) (ok bool) {
	save, noIn, noCond := p.i, p.noIn, p.noCond
	defer func() {
		if r := recover(); r != nil {
			if _, isBail := r.(bailout); !isBail {
				panic(r)
			}
			p.i, p.noIn, p.noCond = save, noIn, noCond
			ok = false
		}
	}()
	f()
	return true
}

// semicolon consumes a statement terminator, applying automatic semicolon
// insertion before '}', end of input, or a line break.
func (p *parser) semicolon() {
	if p.eat(";") {
		return
	}
	t := p.tok()
	if t.is("}") || t.kind == tokEOF || t.nl {
		return
	}
	p.failf(t, "expected \";\", found %s", describe(t))
}

// greaterOp joins the adjacent '>' and '=' tokens at the cursor into a single
// operator and reports how many tokens it spans.
func (p *parser) greaterOp() (string, int) {
	if !p.at(">") {
		return "", 0
	}
	op, n := ">", 1
	for {
		prev, nt := p.peek(n-1), p.peek(n)
		if nt.kind != tokPunct || nt.off != prev.end {
			return op, n
		}
		switch {
		case nt.text == ">" && len(op) < 3:
			op += ">"
			n++
		case nt.text == "=":
			return op + "=", n + 1
		default:
			return op, n
		}
	}
}

var reserved = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true,
	"do": true, "else": true, "enum": true, "export": true, "extends": true,
	"false": true, "finally": true, "for": true, "function": true, "if": true,
	"import": true, "in": true, "instanceof": true, "new": true, "null": true,
	"return": true, "super": true, "switch": true, "this": true, "throw": true,
	"true": true, "try": true, "typeof": true, "var": true, "void": true,
	"while": true, "with": true,
}

func (p *parser) parseIdent() *ast.Identifier {
	t := p.tok()
	if t.kind != tokName || reserved[t.text] {
		p.failf(t, "expected identifier, found %s", describe(t))
	}
	p.next()
	return &ast.Identifier{Loc: ast.At(t.pos), Name: t.text}
}

// parseName accepts any word, reserved or not, as in property names.
func (p *parser) parseName() *ast.Identifier {
	t := p.tok()
	if t.kind != tokName {
		p.failf(t, "expected name, found %s", describe(t))
	}
	p.next()
	return &ast.Identifier{Loc: ast.At(t.pos), Name: t.text}
}

func (p *parser) parseString() *ast.StringLit {
	t := p.tok()
	if t.kind != tokString {
		p.failf(t, "expected string literal, found %s", describe(t))
	}
	p.next()
	return &ast.StringLit{Loc: ast.At(t.pos), Raw: t.text, Value: t.value}
}

// withIn parses with the `in` operator enabled, as inside brackets.
func withIn[T any](p *parser, f func() T) T {
	save := p.noIn
	p.noIn = false
	defer func() { p.noIn = save }()
	return f()
}
