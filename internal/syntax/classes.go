package syntax

import "github.com/roach88/typeshift/internal/ast"

// parseClass parses everything after the `class` keyword.
func (p *parser) parseClass(c *ast.Class, requireName bool) {
	if t := p.tok(); t.kind == tokName && !t.is("extends") && !t.is("implements") {
		c.Name = p.parseIdent()
	} else if requireName {
		p.failf(t, "expected class name, found %s", describe(t))
	}
	if p.at("<") {
		c.TypeParams = p.parseTypeParams()
	}
	if p.eat("extends") {
		var super ast.Expr
		if p.at("new") {
			super = p.parseNew()
		} else {
			super = p.parsePrimary()
		}
		c.SuperClass = p.parseCallTail(super, true)
		if p.at("<") {
			c.SuperTypeArgs = p.parseTypeArgs()
		}
	}
	if t := p.tok(); t.is("implements") {
		p.requireTypes(t, "implements clause")
		p.next()
		for {
			c.Implements = append(c.Implements, p.parseHeritage())
			if !p.eat(",") {
				break
			}
		}
	}

	p.expect("{")
	for !p.eat("}") {
		if p.eat(";") {
			continue
		}
		if p.tok().kind == tokEOF {
			p.failf(p.tok(), "expected \"}\", found end of input")
		}
		first := p.tok()
		comments, blank := first.comments, first.blank
		m := p.parseClassMember()
		tr := m.Leading()
		tr.Comments, tr.BlankLine = comments, blank
		c.Members = append(c.Members, m)
	}
}

// parseHeritage parses `A.B<T>` in implements and interface extends lists.
func (p *parser) parseHeritage() *ast.ExprWithTypeArgs {
	start := p.pos()
	var e ast.Expr = p.parseIdent()
	for p.eat(".") {
		e = &ast.MemberExpr{Loc: ast.At(start), Object: e, Property: p.parseName()}
	}
	h := &ast.ExprWithTypeArgs{Loc: ast.At(start), Expr: e}
	if p.at("<") {
		h.TypeArgs = p.parseTypeArgs()
	}
	return h
}

var memberModifiers = map[string]bool{
	"static": true, "public": true, "private": true, "protected": true,
	"readonly": true, "abstract": true, "override": true, "declare": true,
}

// modifierFollows reports whether the word at the cursor is used as a
// modifier, that is, a member name follows it on the same line.
func (p *parser) modifierFollows() bool {
	nt := p.peek(1)
	if nt.nl {
		return false
	}
	switch nt.kind {
	case tokEOF:
		return false
	case tokPunct:
		switch nt.text {
		case "(", "=", ";", ":", "?", "!", "}", "<", ",":
			return false
		}
	}
	return true
}

func (p *parser) parseClassMember() ast.ClassMember {
	start := p.tok()
	loc := ast.At(start.pos)
	static := false
	var mods ast.Modifiers

	for {
		t := p.tok()
		if t.kind != tokName || !memberModifiers[t.text] || !p.modifierFollows() {
			break
		}
		if t.text != "static" {
			p.requireTypes(t, t.text+" modifier")
		}
		switch t.text {
		case "static":
			static = true
		case "readonly":
			mods.Readonly = true
		case "abstract":
			mods.Abstract = true
		case "override":
			mods.Override = true
		case "declare":
			mods.Declare = true
		default:
			mods.Access = t.text
		}
		p.next()
	}

	if p.ts && p.at("[") && p.peek(1).kind == tokName && p.peek(2).is(":") {
		sig := p.parseIndexSignature()
		sig.Loc = loc
		sig.Static = static
		sig.Readonly = mods.Readonly
		p.semicolon()
		return sig
	}

	methodKind := "method"
	fn := ast.Function{}
	switch t := p.tok(); {
	case (t.is("get") || t.is("set")) && p.modifierFollows():
		methodKind = t.text
		p.next()
	case t.is("async") && p.modifierFollows():
		fn.Async = true
		p.next()
	}
	if p.eat("*") {
		fn.Generator = true
	}

	key, computed := p.parsePropertyKey()
	if !static && !computed && methodKind == "method" && propertyName(key) == "constructor" {
		methodKind = "constructor"
	}

	optional := false
	if t := p.tok(); t.is("?") {
		p.requireTypes(t, "optional member")
		p.next()
		optional = true
	}

	if p.at("(") || p.at("<") || methodKind != "method" || fn.Async || fn.Generator {
		p.parseFunctionRest(&fn, p.ts, methodKind == "constructor")
		return &ast.ClassMethod{
			Loc: loc, Key: key, Computed: computed, Static: static,
			MethodKind: methodKind, Modifiers: mods, Optional: optional, Function: fn,
		}
	}

	prop := &ast.ClassProperty{
		Loc: loc, Key: key, Computed: computed, Static: static,
		Modifiers: mods, Optional: optional,
	}
	if t := p.tok(); t.is("!") {
		p.requireTypes(t, "definite assignment assertion")
		p.next()
		prop.Definite = true
	}
	if p.at(":") {
		prop.TypeAnn = p.parseTypeAnnotation()
	}
	if p.eat("=") {
		prop.Value = p.parseFieldInit()
	}
	p.semicolon()
	return prop
}

func (p *parser) parseFieldInit() ast.Expr {
	saveAsync, saveGen := p.inAsync, p.inGenerator
	p.inAsync, p.inGenerator = false, false
	defer func() { p.inAsync, p.inGenerator = saveAsync, saveGen }()
	return withIn(p, p.parseAssign)
}

// propertyName returns the static name of a non-computed key.
func propertyName(key ast.Expr) string {
	switch k := key.(type) {
	case *ast.Identifier:
		return k.Name
	case *ast.StringLit:
		return k.Value
	}
	return ""
}
