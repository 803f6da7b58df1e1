package syntax

import "github.com/roach88/typeshift/internal/ast"

var binaryPrec = map[string]int{
	"??": 1,
	"||": 2,
	"&&": 3,
	"|":  4,
	"^":  5,
	"&":  6,
	"==": 7, "!=": 7, "===": 7, "!==": 7,
	"<": 8, ">": 8, "<=": 8, ">=": 8, "instanceof": 8, "in": 8,
	"<<": 9, ">>": 9, ">>>": 9,
	"+": 10, "-": 10,
	"*": 11, "/": 11, "%": 11,
	"**": 12,
}

// relationalPrec is where `as` and `satisfies` bind.
const relationalPrec = 8

var assignOps = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"**=": true, "<<=": true, ">>=": true, ">>>=": true, "&=": true, "|=": true,
	"^=": true, "&&=": true, "||=": true, "??=": true,
}

func (p *parser) parseExpr() ast.Expr {
	start := p.pos()
	e := p.parseAssign()
	if !p.at(",") {
		return e
	}
	seq := &ast.SeqExpr{Loc: ast.At(start), Exprs: []ast.Expr{e}}
	for p.eat(",") {
		seq.Exprs = append(seq.Exprs, p.parseAssign())
	}
	return seq
}

func (p *parser) parseAssign() ast.Expr {
	start := p.tok()
	if p.inGenerator && start.is("yield") {
		return p.parseYield()
	}
	if arrow := p.tryArrow(); arrow != nil {
		return arrow
	}
	left := p.parseConditional()

	op, n := p.assignOp()
	if op == "" {
		return left
	}
	p.i += n
	return &ast.AssignExpr{Loc: ast.At(start.pos), Op: op, Left: left, Right: p.parseAssign()}
}

func (p *parser) assignOp() (string, int) {
	t := p.tok()
	if t.is(">") {
		if op, n := p.greaterOp(); assignOps[op] {
			return op, n
		}
		return "", 0
	}
	if t.kind == tokPunct && assignOps[t.text] {
		return t.text, 1
	}
	return "", 0
}

func (p *parser) parseYield() ast.Expr {
	start := p.next()
	y := &ast.YieldExpr{Loc: ast.At(start.pos)}
	if p.at("*") && !p.tok().nl {
		p.next()
		y.Delegate = true
		y.Arg = p.parseAssign()
		return y
	}
	if t := p.tok(); !t.nl && startsExpr(t) {
		y.Arg = p.parseAssign()
	}
	return y
}

func (p *parser) parseConditional() ast.Expr {
	start := p.pos()
	test := p.parseBinary(0)
	if !p.at("?") {
		return test
	}
	p.next()
	cons := withIn(p, p.parseAssign)
	p.expect(":")
	return &ast.CondExpr{Loc: ast.At(start), Test: test, Cons: cons, Alt: p.parseAssign()}
}

func (p *parser) binaryOp() (string, int) {
	t := p.tok()
	switch t.kind {
	case tokPunct:
		if t.text == ">" {
			return p.greaterOp()
		}
		return t.text, 1
	case tokName:
		if t.text == "in" || t.text == "instanceof" {
			return t.text, 1
		}
	}
	return "", 0
}

func (p *parser) parseBinary(minPrec int) ast.Expr {
	start := p.pos()
	left := p.parseUnary()
	for {
		t := p.tok()
		if (t.is("as") || t.is("satisfies")) && !t.nl && relationalPrec >= minPrec {
			p.requireTypes(t, "type assertion")
			p.next()
			if t.text == "as" {
				var typ ast.TypeNode
				if ct := p.tok(); ct.is("const") {
					p.next()
					typ = &ast.KeywordType{Loc: ast.At(ct.pos), Name: "const"}
				} else {
					typ = p.parseType()
				}
				left = &ast.AsExpr{Loc: ast.At(start), Expr: left, Type: typ}
			} else {
				left = &ast.SatisfiesExpr{Loc: ast.At(start), Expr: left, Type: p.parseType()}
			}
			continue
		}

		op, n := p.binaryOp()
		prec, ok := binaryPrec[op]
		if !ok || prec < minPrec || (op == "in" && p.noIn) {
			return left
		}
		p.i += n
		var right ast.Expr
		if op == "**" {
			right = p.parseBinary(prec)
		} else {
			right = p.parseBinary(prec + 1)
		}
		switch op {
		case "||", "&&", "??":
			left = &ast.LogicalExpr{Loc: ast.At(start), Op: op, Left: left, Right: right}
		default:
			left = &ast.BinaryExpr{Loc: ast.At(start), Op: op, Left: left, Right: right}
		}
	}
}

func (p *parser) parseUnary() ast.Expr {
	t := p.tok()
	switch {
	case t.kind == tokPunct:
		switch t.text {
		case "!", "~", "+", "-":
			p.next()
			return &ast.UnaryExpr{Loc: ast.At(t.pos), Op: t.text, Arg: p.parseUnary()}
		case "++", "--":
			p.next()
			return &ast.UpdateExpr{Loc: ast.At(t.pos), Op: t.text, Prefix: true, Arg: p.parseUnary()}
		case "<":
			p.requireTypes(t, "type assertion")
			p.next()
			typ := p.parseType()
			p.expect(">")
			return &ast.TypeAssertion{Loc: ast.At(t.pos), Type: typ, Expr: p.parseUnary()}
		}
	case t.is("typeof") || t.is("void") || t.is("delete"):
		p.next()
		return &ast.UnaryExpr{Loc: ast.At(t.pos), Op: t.text, Arg: p.parseUnary()}
	case t.is("await") && p.inAsync && startsExpr(p.peek(1)):
		p.next()
		return &ast.AwaitExpr{Loc: ast.At(t.pos), Arg: p.parseUnary()}
	}

	e := p.parseLHS()
	if nt := p.tok(); (nt.is("++") || nt.is("--")) && !nt.nl {
		p.next()
		return &ast.UpdateExpr{Loc: ast.At(t.pos), Op: nt.text, Arg: e}
	}
	return e
}

func (p *parser) parseLHS() ast.Expr {
	var e ast.Expr
	if p.at("new") {
		e = p.parseNew()
	} else {
		e = p.parsePrimary()
	}
	return p.parseCallTail(e, true)
}

func (p *parser) parseNew() ast.Expr {
	start := p.expect("new")
	if p.eat(".") {
		prop := p.parseName()
		return &ast.MetaProperty{Loc: ast.At(start.pos), Meta: "new", Property: prop.Name}
	}
	var callee ast.Expr
	if p.at("new") {
		callee = p.parseNew()
	} else {
		callee = p.parsePrimary()
	}
	callee = p.parseCallTail(callee, false)

	n := &ast.NewExpr{Loc: ast.At(start.pos), Callee: callee}
	if p.ts && p.at("<") {
		var targs *ast.TypeArgs
		if p.try(func() { targs = p.parseTypeArgs() }) {
			n.TypeArgs = targs
		}
	}
	if p.at("(") {
		n.Args = p.parseArgs()
	} else {
		n.NoParens = true
	}
	return n
}

// parseCallTail parses member accesses, calls and the other postfix forms that
// follow a primary expression.
func (p *parser) parseCallTail(e ast.Expr, allowCall bool) ast.Expr {
	start := e.Pos()
	for {
		t := p.tok()
		switch {
		case t.is("."):
			p.next()
			e = &ast.MemberExpr{Loc: ast.At(start), Object: e, Property: p.parseMemberName()}

		case t.is("?."):
			if !allowCall {
				return e
			}
			p.next()
			switch {
			case p.at("("):
				e = &ast.CallExpr{Loc: ast.At(start), Callee: e, Args: p.parseArgs(), Optional: true}
			case p.at("["):
				p.next()
				prop := withIn(p, p.parseExpr)
				p.expect("]")
				e = &ast.MemberExpr{Loc: ast.At(start), Object: e, Property: prop, Computed: true, Optional: true}
			case p.at("<"):
				p.requireTypes(p.tok(), "type arguments")
				targs := p.parseTypeArgs()
				e = &ast.CallExpr{Loc: ast.At(start), Callee: e, TypeArgs: targs, Args: p.parseArgs(), Optional: true}
			default:
				e = &ast.MemberExpr{Loc: ast.At(start), Object: e, Property: p.parseMemberName(), Optional: true}
			}

		case t.is("["):
			p.next()
			prop := withIn(p, p.parseExpr)
			p.expect("]")
			e = &ast.MemberExpr{Loc: ast.At(start), Object: e, Property: prop, Computed: true}

		case t.is("(") && allowCall:
			e = &ast.CallExpr{Loc: ast.At(start), Callee: e, Args: p.parseArgs()}

		case t.kind == tokTemplate || t.kind == tokTemplateHead:
			e = &ast.TaggedTemplate{Loc: ast.At(start), Tag: e, Quasi: p.parseTemplate()}

		case t.is("!") && !t.nl && p.ts:
			p.next()
			e = &ast.NonNullExpr{Loc: ast.At(start), Expr: e}

		case t.is("<") && allowCall && p.ts:
			var targs *ast.TypeArgs
			if !p.try(func() { targs = p.parseTypeArgsInExpr() }) {
				return e
			}
			switch nt := p.tok(); {
			case nt.is("("):
				e = &ast.CallExpr{Loc: ast.At(start), Callee: e, TypeArgs: targs, Args: p.parseArgs()}
			case nt.kind == tokTemplate || nt.kind == tokTemplateHead:
				e = &ast.TaggedTemplate{Loc: ast.At(start), Tag: e, TypeArgs: targs, Quasi: p.parseTemplate()}
			default:
				e = &ast.InstantiationExpr{Loc: ast.At(start), Expr: e, TypeArgs: targs}
			}

		default:
			return e
		}
	}
}

// parseTypeArgsInExpr parses `<...>` after an expression and fails unless the
// following token shows it cannot have been a comparison.
func (p *parser) parseTypeArgsInExpr() *ast.TypeArgs {
	targs := p.parseTypeArgs()
	nt := p.tok()
	switch {
	case nt.is("(") || nt.kind == tokTemplate || nt.kind == tokTemplateHead:
		return targs
	case nt.is("<") || nt.is(">") || nt.is("+") || nt.is("-"):
		p.unexpected()
	case nt.nl || isBinaryOperator(nt) || !startsExpr(nt):
		return targs
	}
	p.unexpected()
	return nil
}

func (p *parser) parseMemberName() ast.Expr {
	t := p.tok()
	if t.kind == tokPrivateName {
		p.next()
		return &ast.PrivateName{Loc: ast.At(t.pos), Name: t.text[1:]}
	}
	return p.parseName()
}

func (p *parser) parseArgs() []ast.Expr {
	p.expect("(")
	var args []ast.Expr
	for !p.eat(")") {
		if t := p.tok(); t.is("...") {
			p.next()
			args = append(args, &ast.SpreadElement{Loc: ast.At(t.pos), Arg: withIn(p, p.parseAssign)})
		} else {
			args = append(args, withIn(p, p.parseAssign))
		}
		if !p.at(")") {
			p.expect(",")
		}
	}
	return args
}

func (p *parser) parsePrimary() ast.Expr {
	t := p.tok()
	loc := ast.At(t.pos)
	switch t.kind {
	case tokNumber:
		p.next()
		return &ast.NumberLit{Loc: loc, Raw: t.text}
	case tokBigInt:
		p.next()
		return &ast.BigIntLit{Loc: loc, Raw: t.text}
	case tokString:
		return p.parseString()
	case tokTemplate, tokTemplateHead:
		return p.parseTemplate()
	case tokRegex:
		p.next()
		return &ast.RegexLit{Loc: loc, Raw: t.text}
	case tokPrivateName:
		p.next()
		return &ast.PrivateName{Loc: loc, Name: t.text[1:]}
	case tokPunct:
		switch t.text {
		case "(":
			p.next()
			inner := withIn(p, p.parseExpr)
			p.expect(")")
			return &ast.ParenExpr{Loc: loc, Expr: inner}
		case "[":
			return p.parseArray()
		case "{":
			return p.parseObject()
		}
	case tokName:
		switch t.text {
		case "this":
			p.next()
			return &ast.ThisExpr{Loc: loc}
		case "super":
			p.next()
			return &ast.SuperExpr{Loc: loc}
		case "null":
			p.next()
			return &ast.NullLit{Loc: loc}
		case "true", "false":
			p.next()
			return &ast.BoolLit{Loc: loc, Value: t.text == "true"}
		case "function":
			return p.parseFuncExpr()
		case "async":
			if nt := p.peek(1); nt.is("function") && !nt.nl {
				return p.parseFuncExpr()
			}
		case "class":
			p.next()
			c := &ast.ClassExpr{Loc: loc}
			p.parseClass(&c.Class, false)
			return c
		case "new":
			return p.parseNew()
		case "import":
			p.next()
			if p.eat(".") {
				return &ast.MetaProperty{Loc: loc, Meta: "import", Property: p.parseName().Name}
			}
			if !p.at("(") {
				p.unexpected()
			}
			return &ast.Identifier{Loc: loc, Name: "import"}
		}
		if !reserved[t.text] {
			p.next()
			return &ast.Identifier{Loc: loc, Name: t.text}
		}
	}
	p.unexpected()
	return nil
}

func (p *parser) parseTemplate() *ast.TemplateLit {
	t := p.next()
	tl := &ast.TemplateLit{Loc: ast.At(t.pos), Quasis: []string{t.text}}
	if t.kind == tokTemplate {
		return tl
	}
	for {
		tl.Exprs = append(tl.Exprs, withIn(p, p.parseExpr))
		piece := p.tok()
		if piece.kind != tokTemplateMiddle && piece.kind != tokTemplateTail {
			p.failf(piece, "expected \"}\" in template literal, found %s", describe(piece))
		}
		p.next()
		tl.Quasis = append(tl.Quasis, piece.text)
		if piece.kind == tokTemplateTail {
			return tl
		}
	}
}

func (p *parser) parseArray() ast.Expr {
	start := p.expect("[")
	arr := &ast.ArrayExpr{Loc: ast.At(start.pos), Multiline: p.tok().nl && !p.at("]")}
	for !p.eat("]") {
		t := p.tok()
		switch {
		case t.is(","):
			arr.Elems = append(arr.Elems, nil)
			p.next()
			continue
		case t.is("..."):
			p.next()
			arr.Elems = append(arr.Elems, &ast.SpreadElement{Loc: ast.At(t.pos), Arg: withIn(p, p.parseAssign)})
		default:
			arr.Elems = append(arr.Elems, withIn(p, p.parseAssign))
		}
		if !p.at("]") {
			p.expect(",")
		}
	}
	return arr
}

func (p *parser) parseObject() ast.Expr {
	start := p.expect("{")
	obj := &ast.ObjectExpr{Loc: ast.At(start.pos), Multiline: p.tok().nl && !p.at("}")}
	for !p.eat("}") {
		t := p.tok()
		if t.is("...") {
			p.next()
			obj.Props = append(obj.Props, &ast.SpreadElement{Loc: ast.At(t.pos), Arg: withIn(p, p.parseAssign)})
		} else {
			obj.Props = append(obj.Props, p.parseObjectMember())
		}
		if !p.at("}") {
			p.expect(",")
		}
	}
	return obj
}

// keyFollows reports whether the token after a get/set/async prefix begins a
// property key, which makes the prefix a modifier rather than the key itself.
func (p *parser) keyFollows() bool {
	nt := p.peek(1)
	if nt.nl {
		return false
	}
	switch nt.kind {
	case tokName, tokString, tokNumber, tokBigInt, tokPrivateName:
		return true
	case tokPunct:
		return nt.text == "[" || nt.text == "*"
	}
	return false
}

func (p *parser) parseObjectMember() *ast.Property {
	start := p.tok()
	prop := &ast.Property{Loc: ast.At(start.pos), PropKind: "init"}
	fn := ast.Function{}

	switch {
	case (start.is("get") || start.is("set")) && p.keyFollows():
		prop.PropKind = start.text
		p.next()
	case start.is("async") && p.keyFollows():
		fn.Async = true
		p.next()
	}
	if p.eat("*") {
		fn.Generator = true
	}

	prop.Key, prop.Computed = p.parsePropertyKey()

	if p.at("(") || p.at("<") || prop.PropKind != "init" || fn.Async || fn.Generator {
		if prop.PropKind == "init" {
			prop.PropKind = "method"
		}
		p.parseFunctionRest(&fn, false, false)
		prop.Value = &ast.FuncExpr{Loc: ast.At(prop.Key.Pos()), Function: fn}
		return prop
	}

	if p.eat(":") {
		prop.Value = withIn(p, p.parseAssign)
		return prop
	}

	id, ok := prop.Key.(*ast.Identifier)
	if !ok || prop.Computed || reserved[id.Name] {
		p.failf(p.tok(), "expected \":\", found %s", describe(p.tok()))
	}
	prop.Shorthand = true
	value := &ast.Identifier{Loc: id.Loc, Name: id.Name}
	if p.eat("=") {
		prop.Value = &ast.AssignPattern{Loc: id.Loc, Left: value, Right: withIn(p, p.parseAssign)}
	} else {
		prop.Value = value
	}
	return prop
}

// parsePropertyKey parses an object, class or interface member key.
func (p *parser) parsePropertyKey() (ast.Expr, bool) {
	t := p.tok()
	switch t.kind {
	case tokName:
		return p.parseName(), false
	case tokString:
		return p.parseString(), false
	case tokNumber:
		p.next()
		return &ast.NumberLit{Loc: ast.At(t.pos), Raw: t.text}, false
	case tokBigInt:
		p.next()
		return &ast.BigIntLit{Loc: ast.At(t.pos), Raw: t.text}, false
	case tokPrivateName:
		p.next()
		return &ast.PrivateName{Loc: ast.At(t.pos), Name: t.text[1:]}, false
	}
	if t.is("[") {
		p.next()
		key := withIn(p, p.parseAssign)
		p.expect("]")
		return key, true
	}
	p.failf(t, "expected property name, found %s", describe(t))
	return nil, false
}

func (p *parser) parseFuncExpr() ast.Expr {
	start := p.pos()
	f := &ast.FuncExpr{Loc: ast.At(start)}
	if p.eat("async") {
		f.Async = true
	}
	p.expect("function")
	if p.eat("*") {
		f.Generator = true
	}
	if p.tok().kind == tokName {
		f.Name = p.parseIdent()
	}
	p.parseFunctionRest(&f.Function, false, false)
	return f
}

// parseFunctionRest parses type parameters, the parameter list, the return
// type and the body. A missing body is accepted when allowNoBody is set
// (overload signatures, abstract and ambient declarations).
func (p *parser) parseFunctionRest(fn *ast.Function, allowNoBody, paramProps bool) {
	if p.at("<") {
		fn.TypeParams = p.parseTypeParams()
	}
	fn.Params = p.parseParams(paramProps)
	if p.at(":") {
		fn.ReturnType = p.parseReturnType()
	}
	if !p.at("{") && allowNoBody {
		p.semicolon()
		return
	}
	fn.Body = p.parseFunctionBody(fn.Async, fn.Generator)
}

func (p *parser) parseFunctionBody(async, generator bool) *ast.BlockStmt {
	saveAsync, saveGen, saveIn := p.inAsync, p.inGenerator, p.noIn
	p.inAsync, p.inGenerator, p.noIn = async, generator, false
	defer func() { p.inAsync, p.inGenerator, p.noIn = saveAsync, saveGen, saveIn }()
	return p.parseBlock()
}

func (p *parser) parseParams(paramProps bool) []ast.Pattern {
	p.expect("(")
	var params []ast.Pattern
	for !p.eat(")") {
		params = append(params, p.parseParam(paramProps))
		if !p.at(")") {
			p.expect(",")
		}
	}
	return params
}

var paramModifiers = map[string]bool{
	"public": true, "private": true, "protected": true, "readonly": true, "override": true,
}

func (p *parser) parseParam(paramProps bool) ast.Pattern {
	start := p.tok()
	var mods ast.Modifiers
	for paramProps && p.ts {
		t := p.tok()
		nt := p.peek(1)
		if !paramModifiers[t.text] || t.kind != tokName || !(nt.kind == tokName || nt.is("{") || nt.is("[")) {
			break
		}
		p.next()
		switch t.text {
		case "readonly":
			mods.Readonly = true
		case "override":
			mods.Override = true
		default:
			mods.Access = t.text
		}
	}

	if t := p.tok(); t.is("...") {
		p.next()
		rest := &ast.RestElement{Loc: ast.At(t.pos), Arg: p.parseBindingTarget()}
		if p.at(":") {
			rest.TypeAnn = p.parseTypeAnnotation()
		}
		return rest
	}

	var target ast.Pattern
	if t := p.tok(); t.is("this") && p.ts {
		p.next()
		target = &ast.Identifier{Loc: ast.At(t.pos), Name: "this"}
	} else {
		target = p.parseBindingTarget()
	}
	if t := p.tok(); t.is("?") {
		p.requireTypes(t, "optional parameter")
		p.next()
		if id, ok := target.(*ast.Identifier); ok {
			id.Optional = true
		}
	}
	if p.at(":") {
		setTypeAnn(target, p.parseTypeAnnotation())
	}
	param := target
	if p.eat("=") {
		param = &ast.AssignPattern{Loc: ast.At(start.pos), Left: target, Right: withIn(p, p.parseAssign)}
	}
	if mods.Any() {
		return &ast.ParamProperty{Loc: ast.At(start.pos), Modifiers: mods, Param: param}
	}
	return param
}

// parseBindingTarget parses an identifier, array pattern or object pattern.
func (p *parser) parseBindingTarget() ast.Pattern {
	t := p.tok()
	switch {
	case t.is("["):
		p.next()
		arr := &ast.ArrayPattern{Loc: ast.At(t.pos)}
		for !p.eat("]") {
			et := p.tok()
			switch {
			case et.is(","):
				arr.Elems = append(arr.Elems, nil)
				p.next()
				continue
			case et.is("..."):
				p.next()
				rest := &ast.RestElement{Loc: ast.At(et.pos), Arg: p.parseBindingTarget()}
				arr.Elems = append(arr.Elems, rest)
			default:
				arr.Elems = append(arr.Elems, p.parseBindingElement())
			}
			if !p.at("]") {
				p.expect(",")
			}
		}
		return arr
	case t.is("{"):
		p.next()
		obj := &ast.ObjectPattern{Loc: ast.At(t.pos)}
		for !p.eat("}") {
			pt := p.tok()
			if pt.is("...") {
				p.next()
				obj.Props = append(obj.Props, &ast.RestElement{Loc: ast.At(pt.pos), Arg: p.parseIdent()})
			} else {
				obj.Props = append(obj.Props, p.parsePatternProperty())
			}
			if !p.at("}") {
				p.expect(",")
			}
		}
		return obj
	}
	return p.parseIdent()
}

func (p *parser) parsePatternProperty() *ast.Property {
	start := p.tok()
	prop := &ast.Property{Loc: ast.At(start.pos), PropKind: "init"}
	prop.Key, prop.Computed = p.parsePropertyKey()
	if p.eat(":") {
		prop.Value = patternExpr(p.parseBindingElement())
		return prop
	}
	id, ok := prop.Key.(*ast.Identifier)
	if !ok || prop.Computed || reserved[id.Name] {
		p.failf(p.tok(), "expected \":\", found %s", describe(p.tok()))
	}
	prop.Shorthand = true
	value := &ast.Identifier{Loc: id.Loc, Name: id.Name}
	if p.eat("=") {
		prop.Value = &ast.AssignPattern{Loc: id.Loc, Left: value, Right: withIn(p, p.parseAssign)}
	} else {
		prop.Value = value
	}
	return prop
}

// parseBindingElement parses a binding target with an optional default.
func (p *parser) parseBindingElement() ast.Pattern {
	start := p.pos()
	target := p.parseBindingTarget()
	if p.eat("=") {
		return &ast.AssignPattern{Loc: ast.At(start), Left: target, Right: withIn(p, p.parseAssign)}
	}
	return target
}

// patternExpr returns a binding pattern in its expression role. Every pattern
// the parser builds is also an expression.
func patternExpr(pat ast.Pattern) ast.Expr {
	return pat.(ast.Expr)
}

// setTypeAnn attaches an annotation to a binding target.
func setTypeAnn(target ast.Pattern, ann *ast.TypeAnnotation) {
	switch t := target.(type) {
	case *ast.Identifier:
		t.TypeAnn = ann
	case *ast.ObjectPattern:
		t.TypeAnn = ann
	case *ast.ArrayPattern:
		t.TypeAnn = ann
	case *ast.RestElement:
		t.TypeAnn = ann
	}
}

// tryArrow parses an arrow function at the cursor, or returns nil without
// consuming anything when there is none.
func (p *parser) tryArrow() ast.Expr {
	t := p.tok()
	async := false
	offset := 0
	if t.is("async") && !p.peek(1).nl {
		nt := p.peek(1)
		if nt.kind == tokName && !reserved[nt.text] && p.peek(2).is("=>") && !p.peek(2).nl {
			p.next()
			return p.parseArrowBody(t.pos, nil, true, []ast.Pattern{p.parseIdent()}, nil)
		}
		if nt.is("(") || (p.ts && nt.is("<")) {
			async = true
			offset = 1
		}
	}
	if t.kind == tokName && !reserved[t.text] && p.peek(1).is("=>") && !p.peek(1).nl {
		id := p.parseIdent()
		p.next()
		return p.parseArrowBody(t.pos, nil, false, []ast.Pattern{id}, nil)
	}

	head := p.peek(offset)
	if !head.is("(") && !(p.ts && head.is("<")) {
		return nil
	}
	var (
		tparams *ast.TypeParamDecl
		params  []ast.Pattern
		ret     *ast.TypeAnnotation
	)
	ok := p.try(func() {
		if async {
			p.next()
		}
		if p.at("<") {
			tparams = p.parseTypeParams()
		}
		params = p.parseParams(false)
		if p.at(":") {
			ret = p.parseReturnType()
		}
		if arrow := p.tok(); !arrow.is("=>") || arrow.nl {
			p.unexpected()
		}
		p.next()
	})
	if !ok {
		return nil
	}
	return p.parseArrowBody(t.pos, tparams, async, params, ret)
}

func (p *parser) parseArrowBody(start ast.Pos, tparams *ast.TypeParamDecl, async bool,
	params []ast.Pattern, ret *ast.TypeAnnotation) ast.Expr {
	if t := p.tok(); t.is("=>") {
		p.next()
	}
	a := &ast.ArrowFunc{Loc: ast.At(start), TypeParams: tparams, Params: params, ReturnType: ret, Async: async}
	if p.at("{") {
		a.Body = p.parseFunctionBody(async, false)
		return a
	}
	saveAsync, saveGen := p.inAsync, p.inGenerator
	p.inAsync, p.inGenerator = async, false
	defer func() { p.inAsync, p.inGenerator = saveAsync, saveGen }()
	a.Expr = p.parseAssign()
	return a
}

func isBinaryOperator(t *token) bool {
	if t.kind == tokPunct {
		_, ok := binaryPrec[t.text]
		return ok || assignOps[t.text] || t.text == "?"
	}
	return t.is("in") || t.is("instanceof") || t.is("as") || t.is("satisfies")
}

// startsExpr reports whether t can begin an expression.
func startsExpr(t *token) bool {
	switch t.kind {
	case tokEOF:
		return false
	case tokPunct:
		switch t.text {
		case "(", "[", "{", "+", "-", "!", "~", "++", "--", "<", "/", "/=", "...":
			return true
		}
		return false
	case tokName:
		switch t.text {
		case "in", "instanceof", "of", "as", "satisfies":
			return false
		}
	}
	return true
}
