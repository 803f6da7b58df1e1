package syntax

import "github.com/roach88/typeshift/internal/ast"

// parseTypeDeclaration parses interface, type alias, enum, namespace/module,
// `declare` and `abstract class` statements. It returns nil without consuming
// anything when the cursor is not at one of them.
func (p *parser) parseTypeDeclaration() ast.Stmt {
	t := p.tok()
	nt := p.peek(1)
	sameLineName := nt.kind == tokName && !nt.nl

	switch t.text {
	case "interface":
		if !sameLineName {
			return nil
		}
		p.requireTypes(t, "interface declaration")
		return p.parseInterface()
	case "type":
		if !sameLineName || !(p.peek(2).is("=") || p.peek(2).is("<")) {
			return nil
		}
		p.requireTypes(t, "type alias")
		return p.parseTypeAlias()
	case "enum":
		p.requireTypes(t, "enum declaration")
		return p.parseEnum()
	case "const":
		if !nt.is("enum") {
			return nil
		}
		p.requireTypes(t, "const enum")
		p.next()
		e := p.parseEnum()
		e.Loc = ast.At(t.pos)
		e.Const = true
		return e
	case "namespace":
		if !sameLineName {
			return nil
		}
		p.requireTypes(t, "namespace declaration")
		return p.parseModule()
	case "module":
		if nt.nl || !(nt.kind == tokName || nt.kind == tokString) {
			return nil
		}
		p.requireTypes(t, "module declaration")
		return p.parseModule()
	case "abstract":
		if !nt.is("class") || nt.nl {
			return nil
		}
		return p.parseClassDecl(true)
	case "declare":
		if !sameLineName {
			return nil
		}
		p.requireTypes(t, "ambient declaration")
		return p.parseDeclare()
	}
	return nil
}

func (p *parser) parseDeclare() ast.Stmt {
	start := p.expect("declare")
	loc := ast.At(start.pos)

	if t := p.tok(); t.is("global") {
		p.next()
		m := &ast.ModuleDecl{Loc: loc, Keyword: "global", Declare: true}
		m.Body = p.parseModuleBody()
		return m
	}

	var s ast.Stmt
	switch t := p.tok(); {
	case t.is("var") || t.is("let") || t.is("const") && !p.peek(1).is("enum"):
		d := p.parseVarDecl(false)
		p.semicolon()
		d.Declare = true
		s = d
	case t.is("function") || t.is("async"):
		d := p.parseFuncDecl(false, true)
		d.Declare = true
		s = d
	case t.is("class"):
		d := p.parseClassDecl(true)
		d.Declare = true
		s = d
	default:
		s = p.parseTypeDeclaration()
		if s == nil {
			p.failf(t, "expected declaration after declare, found %s", describe(t))
		}
		switch d := s.(type) {
		case *ast.InterfaceDecl:
			d.Declare = true
		case *ast.TypeAliasDecl:
			d.Declare = true
		case *ast.EnumDecl:
			d.Declare = true
		case *ast.ModuleDecl:
			d.Declare = true
		case *ast.ClassDecl:
			d.Declare = true
		}
	}
	setLoc(s, loc)
	return s
}

// setLoc moves a declaration's start to an earlier modifier keyword.
func setLoc(s ast.Stmt, loc ast.Loc) {
	switch d := s.(type) {
	case *ast.VarDecl:
		d.Loc = loc
	case *ast.FuncDecl:
		d.Loc = loc
	case *ast.ClassDecl:
		d.Loc = loc
	case *ast.InterfaceDecl:
		d.Loc = loc
	case *ast.TypeAliasDecl:
		d.Loc = loc
	case *ast.EnumDecl:
		d.Loc = loc
	case *ast.ModuleDecl:
		d.Loc = loc
	}
}

func (p *parser) parseInterface() *ast.InterfaceDecl {
	start := p.expect("interface")
	d := &ast.InterfaceDecl{Loc: ast.At(start.pos), Name: p.parseIdent()}
	if p.at("<") {
		d.TypeParams = p.parseTypeParams()
	}
	if p.eat("extends") {
		for {
			d.Extends = append(d.Extends, p.parseHeritage())
			if !p.eat(",") {
				break
			}
		}
	}
	d.Body = p.parseTypeMembers()
	return d
}

func (p *parser) parseTypeAlias() *ast.TypeAliasDecl {
	start := p.expect("type")
	d := &ast.TypeAliasDecl{Loc: ast.At(start.pos), Name: p.parseIdent()}
	if p.at("<") {
		d.TypeParams = p.parseTypeParams()
	}
	p.expect("=")
	d.Type = p.parseType()
	p.semicolon()
	return d
}

func (p *parser) parseEnum() *ast.EnumDecl {
	start := p.expect("enum")
	d := &ast.EnumDecl{Loc: ast.At(start.pos), Name: p.parseIdent()}
	p.expect("{")
	for !p.eat("}") {
		mt := p.tok()
		m := &ast.EnumMember{Loc: ast.At(mt.pos)}
		switch mt.kind {
		case tokName:
			m.Name = p.parseName()
		case tokString:
			m.Name = p.parseString()
		default:
			p.failf(mt, "expected enum member name, found %s", describe(mt))
		}
		if p.eat("=") {
			m.Init = withIn(p, p.parseAssign)
		}
		d.Members = append(d.Members, m)
		if !p.at("}") {
			p.expect(",")
		}
	}
	return d
}

func (p *parser) parseModule() *ast.ModuleDecl {
	kw := p.next()
	d := &ast.ModuleDecl{Loc: ast.At(kw.pos), Keyword: kw.text}
	if p.tok().kind == tokString {
		d.Name = p.parseString()
		if !p.at("{") {
			p.semicolon()
			return d
		}
	} else {
		var name ast.Node = p.parseIdent()
		for p.eat(".") {
			name = &ast.QualifiedName{Loc: ast.At(kw.pos), Left: name, Right: p.parseName()}
		}
		d.Name = name
	}
	d.Body = p.parseModuleBody()
	return d
}

func (p *parser) parseModuleBody() []ast.Stmt {
	p.expect("{")
	body := []ast.Stmt{}
	for !p.eat("}") {
		if p.tok().kind == tokEOF {
			p.failf(p.tok(), "expected \"}\", found end of input")
		}
		body = append(body, p.parseStatement())
	}
	return body
}

// ---------------------------------------------------------------------------
// annotations and parameter lists

func (p *parser) parseTypeAnnotation() *ast.TypeAnnotation {
	colon := p.expect(":")
	p.requireTypes(colon, "type annotation")
	return &ast.TypeAnnotation{Loc: ast.At(colon.pos), Type: p.parseType()}
}

// parseReturnType parses `: T` in return position, where type predicates are
// also allowed.
func (p *parser) parseReturnType() *ast.TypeAnnotation {
	colon := p.expect(":")
	p.requireTypes(colon, "return type annotation")
	return &ast.TypeAnnotation{Loc: ast.At(colon.pos), Type: p.parseReturnTypeNode()}
}

func (p *parser) parseReturnTypeNode() ast.TypeNode {
	t := p.tok()
	nt := p.peek(1)
	if t.is("asserts") && (nt.kind == tokName) && !nt.nl && !nt.is("is") {
		p.next()
		pred := &ast.TypePredicate{Loc: ast.At(t.pos), Asserts: true, Param: p.next().text}
		if it := p.tok(); it.is("is") && !it.nl {
			p.next()
			pred.Type = p.parseType()
		}
		return pred
	}
	if t.kind == tokName && nt.is("is") && !nt.nl {
		p.next()
		p.next()
		return &ast.TypePredicate{Loc: ast.At(t.pos), Param: t.text, Type: p.parseType()}
	}
	return p.parseType()
}

func (p *parser) parseTypeParams() *ast.TypeParamDecl {
	open := p.expect("<")
	p.requireTypes(open, "type parameters")
	d := &ast.TypeParamDecl{Loc: ast.At(open.pos)}
	for !p.eat(">") {
		d.Params = append(d.Params, p.parseTypeParam())
		if !p.at(">") {
			p.expect(",")
		}
	}
	return d
}

func (p *parser) parseTypeParam() *ast.TypeParam {
	start := p.tok()
	tp := &ast.TypeParam{Loc: ast.At(start.pos)}
	for {
		t := p.tok()
		if !(t.is("in") || t.is("out") || t.is("const")) || p.peek(1).kind != tokName {
			break
		}
		tp.Modifiers = append(tp.Modifiers, p.next().text)
	}
	tp.Name = p.parseIdent().Name
	if p.eat("extends") {
		tp.Constraint = p.parseType()
	}
	if p.eat("=") {
		tp.Default = p.parseType()
	}
	return tp
}

func (p *parser) parseTypeArgs() *ast.TypeArgs {
	open := p.expect("<")
	p.requireTypes(open, "type arguments")
	saveCond := p.noCond
	p.noCond = false
	defer func() { p.noCond = saveCond }()
	args := &ast.TypeArgs{Loc: ast.At(open.pos)}
	for !p.eat(">") {
		args.Params = append(args.Params, p.parseType())
		if !p.at(">") {
			p.expect(",")
		}
	}
	return args
}

func (p *parser) parseIndexSignature() *ast.IndexSignature {
	open := p.expect("[")
	param := p.parseIdent()
	param.TypeAnn = p.parseTypeAnnotation()
	p.expect("]")
	sig := &ast.IndexSignature{Loc: ast.At(open.pos), Param: param}
	if p.at(":") {
		sig.TypeAnn = p.parseTypeAnnotation()
	}
	return sig
}

// ---------------------------------------------------------------------------
// type members

func (p *parser) parseTypeMembers() []ast.TypeMember {
	p.expect("{")
	saveCond := p.noCond
	p.noCond = false
	defer func() { p.noCond = saveCond }()
	members := []ast.TypeMember{}
	for !p.eat("}") {
		if p.tok().kind == tokEOF {
			p.failf(p.tok(), "expected \"}\", found end of input")
		}
		members = append(members, p.parseTypeMember())
		if !p.eat(";") && !p.eat(",") && !p.at("}") && !p.tok().nl {
			p.failf(p.tok(), "expected \";\", found %s", describe(p.tok()))
		}
	}
	return members
}

func (p *parser) parseTypeMember() ast.TypeMember {
	t := p.tok()
	loc := ast.At(t.pos)

	if t.is("(") || t.is("<") {
		sig := &ast.CallSignature{Loc: loc}
		sig.TypeParams, sig.Params, sig.ReturnType = p.parseSignature()
		return sig
	}
	if t.is("new") && (p.peek(1).is("(") || p.peek(1).is("<")) {
		p.next()
		sig := &ast.ConstructSignature{Loc: loc}
		sig.TypeParams, sig.Params, sig.ReturnType = p.parseSignature()
		return sig
	}

	readonly := false
	if t.is("readonly") && p.modifierFollows() {
		p.next()
		readonly = true
	}
	if p.at("[") && p.peek(1).kind == tokName && p.peek(2).is(":") {
		sig := p.parseIndexSignature()
		sig.Loc = loc
		sig.Readonly = readonly
		return sig
	}

	key, computed := p.parsePropertyKey()
	optional := p.eat("?")
	if p.at("(") || p.at("<") {
		m := &ast.MethodSignature{Loc: loc, Key: key, Computed: computed, Optional: optional}
		m.TypeParams, m.Params, m.ReturnType = p.parseSignature()
		return m
	}
	prop := &ast.PropertySignature{Loc: loc, Key: key, Computed: computed, Optional: optional, Readonly: readonly}
	if p.at(":") {
		prop.TypeAnn = p.parseTypeAnnotation()
	}
	return prop
}

func (p *parser) parseSignature() (*ast.TypeParamDecl, []ast.Pattern, *ast.TypeAnnotation) {
	var tparams *ast.TypeParamDecl
	if p.at("<") {
		tparams = p.parseTypeParams()
	}
	params := p.parseParams(false)
	var ret *ast.TypeAnnotation
	if p.at(":") {
		ret = p.parseReturnType()
	}
	return tparams, params, ret
}

// ---------------------------------------------------------------------------
// type expressions

var keywordTypes = map[string]bool{
	"any": true, "unknown": true, "number": true, "string": true, "boolean": true,
	"bigint": true, "symbol": true, "object": true, "never": true, "void": true,
	"undefined": true, "null": true, "this": true,
}

func (p *parser) parseType() ast.TypeNode {
	t := p.tok()
	if t.is("<") {
		return p.parseFunctionType()
	}
	if t.is("new") || (t.is("abstract") && p.peek(1).is("new")) {
		return p.parseConstructorType()
	}
	if t.is("(") {
		var fn ast.TypeNode
		if p.try(func() { fn = p.parseFunctionType() }) {
			return fn
		}
	}

	check := p.parseUnionType()
	if et := p.tok(); p.noCond || !et.is("extends") || et.nl {
		return check
	}
	p.next()
	saveCond := p.noCond
	p.noCond = true
	ext := p.parseUnionType()
	p.noCond = saveCond
	p.expect("?")
	tr := p.parseType()
	p.expect(":")
	return &ast.ConditionalType{Loc: ast.At(t.pos), Check: check, Extends: ext, True: tr, False: p.parseType()}
}

func (p *parser) parseFunctionType() ast.TypeNode {
	start := p.pos()
	fn := &ast.FunctionType{Loc: ast.At(start)}
	if p.at("<") {
		fn.TypeParams = p.parseTypeParams()
	}
	fn.Params = p.parseParams(false)
	p.expect("=>")
	fn.Return = p.parseReturnTypeNode()
	return fn
}

func (p *parser) parseConstructorType() ast.TypeNode {
	start := p.pos()
	c := &ast.ConstructorType{Loc: ast.At(start)}
	if p.eat("abstract") {
		c.Abstract = true
	}
	p.expect("new")
	if p.at("<") {
		c.TypeParams = p.parseTypeParams()
	}
	c.Params = p.parseParams(false)
	p.expect("=>")
	c.Return = p.parseType()
	return c
}

func (p *parser) parseUnionType() ast.TypeNode {
	start := p.pos()
	p.eat("|")
	first := p.parseIntersectionType()
	if !p.at("|") {
		return first
	}
	u := &ast.UnionType{Loc: ast.At(start), Types: []ast.TypeNode{first}}
	for p.eat("|") {
		u.Types = append(u.Types, p.parseIntersectionType())
	}
	return u
}

func (p *parser) parseIntersectionType() ast.TypeNode {
	start := p.pos()
	p.eat("&")
	first := p.parseTypeOperator()
	if !p.at("&") {
		return first
	}
	it := &ast.IntersectionType{Loc: ast.At(start), Types: []ast.TypeNode{first}}
	for p.eat("&") {
		it.Types = append(it.Types, p.parseTypeOperator())
	}
	return it
}

// startsType reports whether t can begin a type.
func startsType(t *token) bool {
	switch t.kind {
	case tokEOF, tokTemplateMiddle, tokTemplateTail, tokRegex, tokPrivateName:
		return false
	case tokPunct:
		switch t.text {
		case "(", "[", "{", "<", "-", "|", "&":
			return true
		}
		return false
	}
	return true
}

func (p *parser) parseTypeOperator() ast.TypeNode {
	t := p.tok()
	switch {
	case (t.is("keyof") || t.is("unique") || t.is("readonly")) && startsType(p.peek(1)):
		p.next()
		return &ast.TypeOperator{Loc: ast.At(t.pos), Op: t.text, Type: p.parseTypeOperator()}
	case t.is("infer") && p.peek(1).kind == tokName:
		p.next()
		param := &ast.TypeParam{Loc: ast.At(p.pos()), Name: p.parseIdent().Name}
		if p.at("extends") && !p.noCond {
			var constraint ast.TypeNode
			ok := p.try(func() {
				p.next()
				saveCond := p.noCond
				p.noCond = true
				constraint = p.parseType()
				p.noCond = saveCond
				if p.at("?") {
					p.unexpected()
				}
			})
			if ok {
				param.Constraint = constraint
			}
		}
		return &ast.InferType{Loc: ast.At(t.pos), Param: param}
	}
	return p.parsePostfixType()
}

func (p *parser) parsePostfixType() ast.TypeNode {
	start := p.pos()
	typ := p.parsePrimaryType()
	for t := p.tok(); t.is("[") && !t.nl; t = p.tok() {
		p.next()
		if p.eat("]") {
			typ = &ast.ArrayType{Loc: ast.At(start), Elem: typ}
			continue
		}
		idx := p.parseType()
		p.expect("]")
		typ = &ast.IndexedAccessType{Loc: ast.At(start), Object: typ, Index: idx}
	}
	return typ
}

func (p *parser) parsePrimaryType() ast.TypeNode {
	t := p.tok()
	loc := ast.At(t.pos)
	switch t.kind {
	case tokNumber:
		p.next()
		return &ast.LiteralType{Loc: loc, Literal: &ast.NumberLit{Loc: loc, Raw: t.text}}
	case tokBigInt:
		p.next()
		return &ast.LiteralType{Loc: loc, Literal: &ast.BigIntLit{Loc: loc, Raw: t.text}}
	case tokString:
		return &ast.LiteralType{Loc: loc, Literal: p.parseString()}
	case tokTemplate:
		p.next()
		return &ast.LiteralType{Loc: loc, Literal: &ast.TemplateLit{Loc: loc, Quasis: []string{t.text}}}
	case tokTemplateHead:
		p.failf(t, "template literal types are not supported")
	case tokPunct:
		switch t.text {
		case "(":
			p.next()
			saveCond := p.noCond
			p.noCond = false
			inner := p.parseType()
			p.noCond = saveCond
			p.expect(")")
			return &ast.ParenType{Loc: loc, Type: inner}
		case "{":
			if p.isMappedType() {
				return p.parseMappedType()
			}
			return &ast.TypeLiteral{Loc: loc, Members: p.parseTypeMembers()}
		case "[":
			return p.parseTupleType()
		case "-":
			if nt := p.peek(1); nt.kind == tokNumber || nt.kind == tokBigInt {
				p.next()
				p.next()
				var lit ast.Expr = &ast.NumberLit{Loc: ast.At(nt.pos), Raw: nt.text}
				if nt.kind == tokBigInt {
					lit = &ast.BigIntLit{Loc: ast.At(nt.pos), Raw: nt.text}
				}
				return &ast.LiteralType{Loc: loc, Literal: &ast.UnaryExpr{Loc: loc, Op: "-", Arg: lit}}
			}
		}
	case tokName:
		switch {
		case t.is("true") || t.is("false"):
			p.next()
			return &ast.LiteralType{Loc: loc, Literal: &ast.BoolLit{Loc: loc, Value: t.text == "true"}}
		case t.is("typeof"):
			return p.parseTypeQuery()
		case t.is("import"):
			return p.parseImportType()
		case keywordTypes[t.text] && !p.peek(1).is("."):
			p.next()
			return &ast.KeywordType{Loc: loc, Name: t.text}
		}
		ref := &ast.TypeRef{Loc: loc, Name: p.parseEntityName()}
		if lt := p.tok(); lt.is("<") && !lt.nl {
			ref.TypeArgs = p.parseTypeArgs()
		}
		return ref
	}
	p.failf(t, "expected type, found %s", describe(t))
	return nil
}

// parseEntityName parses `A` or `A.B.C`.
func (p *parser) parseEntityName() ast.Node {
	start := p.pos()
	var name ast.Node = p.parseName()
	for p.at(".") && p.peek(1).kind == tokName {
		p.next()
		name = &ast.QualifiedName{Loc: ast.At(start), Left: name, Right: p.parseName()}
	}
	return name
}

func (p *parser) parseTypeQuery() ast.TypeNode {
	start := p.expect("typeof")
	q := &ast.TypeQuery{Loc: ast.At(start.pos)}
	if p.at("import") {
		q.Expr = p.parseImportType()
	} else {
		q.Expr = p.parseEntityName()
	}
	if lt := p.tok(); lt.is("<") && !lt.nl {
		q.TypeArgs = p.parseTypeArgs()
	}
	return q
}

func (p *parser) parseImportType() *ast.ImportType {
	start := p.expect("import")
	p.expect("(")
	it := &ast.ImportType{Loc: ast.At(start.pos), Arg: p.parseString()}
	p.expect(")")
	if p.eat(".") {
		it.Qualifier = p.parseEntityName()
	}
	if lt := p.tok(); lt.is("<") && !lt.nl {
		it.TypeArgs = p.parseTypeArgs()
	}
	return it
}

func (p *parser) parseTupleType() ast.TypeNode {
	open := p.expect("[")
	saveCond := p.noCond
	p.noCond = false
	defer func() { p.noCond = saveCond }()
	tt := &ast.TupleType{Loc: ast.At(open.pos)}
	for !p.eat("]") {
		tt.Elems = append(tt.Elems, p.parseTupleElem())
		if !p.at("]") {
			p.expect(",")
		}
	}
	return tt
}

func (p *parser) parseTupleElem() ast.TypeNode {
	start := p.tok()
	loc := ast.At(start.pos)
	rest := p.eat("...")

	t := p.tok()
	if t.kind == tokName && (p.peek(1).is(":") || (p.peek(1).is("?") && p.peek(2).is(":"))) {
		p.next()
		m := &ast.NamedTupleMember{Loc: loc, Label: t.text}
		m.Optional = p.eat("?")
		p.expect(":")
		m.Elem = p.parseType()
		if rest {
			return &ast.RestType{Loc: loc, Type: m}
		}
		return m
	}

	elem := p.parseType()
	if rest {
		return &ast.RestType{Loc: loc, Type: elem}
	}
	if p.eat("?") {
		return &ast.OptionalType{Loc: loc, Type: elem}
	}
	return elem
}

func (p *parser) isMappedType() bool {
	i := 1
	if t := p.peek(i); t.is("+") || t.is("-") {
		i++
	}
	if p.peek(i).is("readonly") {
		i++
	}
	return p.peek(i).is("[") && p.peek(i+1).kind == tokName && p.peek(i+2).is("in")
}

func (p *parser) parseMappedType() ast.TypeNode {
	open := p.expect("{")
	saveCond := p.noCond
	p.noCond = false
	defer func() { p.noCond = saveCond }()
	m := &ast.MappedType{Loc: ast.At(open.pos)}

	if t := p.tok(); t.is("+") || t.is("-") {
		p.next()
		p.expect("readonly")
		m.Readonly = t.text + "readonly"
	} else if p.eat("readonly") {
		m.Readonly = "readonly"
	}

	p.expect("[")
	pt := p.tok()
	m.Param = &ast.TypeParam{Loc: ast.At(pt.pos), Name: p.parseIdent().Name}
	p.expect("in")
	m.Param.Constraint = p.parseType()
	if p.eat("as") {
		m.NameType = p.parseType()
	}
	p.expect("]")

	if t := p.tok(); t.is("+") || t.is("-") {
		p.next()
		p.expect("?")
		m.Optional = t.text + "?"
	} else if p.eat("?") {
		m.Optional = "?"
	}
	if p.at(":") {
		p.next()
		m.Type = p.parseType()
	}
	p.eat(";")
	p.eat(",")
	p.expect("}")
	return m
}
