package syntax

import "github.com/roach88/typeshift/internal/ast"

// parseStatement parses one statement and attaches the comments and blank
// line that preceded its first token.
func (p *parser) parseStatement() ast.Stmt {
	first := p.tok()
	comments, blank := first.comments, first.blank
	s := p.parseStatementBody()
	if tr := s.Leading(); tr != nil {
		tr.Comments = comments
		tr.BlankLine = blank
	}
	return s
}

func (p *parser) parseStatementBody() ast.Stmt {
	t := p.tok()
	if t.kind == tokPunct {
		switch t.text {
		case "{":
			return p.parseBlock()
		case ";":
			p.next()
			return &ast.EmptyStmt{Loc: ast.At(t.pos)}
		}
	}
	if t.kind != tokName {
		return p.parseExprStmt()
	}

	if d := p.parseTypeDeclaration(); d != nil {
		return d
	}

	switch t.text {
	case "var", "const":
		d := p.parseVarDecl(false)
		p.semicolon()
		return d
	case "let":
		if nt := p.peek(1); nt.kind == tokName || nt.is("[") || nt.is("{") {
			d := p.parseVarDecl(false)
			p.semicolon()
			return d
		}
	case "function":
		return p.parseFuncDecl(false, true)
	case "async":
		if nt := p.peek(1); nt.is("function") && !nt.nl {
			return p.parseFuncDecl(false, true)
		}
	case "class":
		return p.parseClassDecl(true)
	case "if":
		return p.parseIf()
	case "for":
		return p.parseFor()
	case "while":
		p.next()
		test := p.parseParenCondition()
		return &ast.WhileStmt{Loc: ast.At(t.pos), Test: test, Body: p.parseStatement()}
	case "do":
		p.next()
		body := p.parseStatement()
		p.expect("while")
		test := p.parseParenCondition()
		p.eat(";")
		return &ast.DoWhileStmt{Loc: ast.At(t.pos), Body: body, Test: test}
	case "return":
		p.next()
		s := &ast.ReturnStmt{Loc: ast.At(t.pos)}
		if nt := p.tok(); !nt.nl && !nt.is(";") && !nt.is("}") && nt.kind != tokEOF {
			s.Arg = withIn(p, p.parseExpr)
		}
		p.semicolon()
		return s
	case "break", "continue":
		p.next()
		label := ""
		if nt := p.tok(); nt.kind == tokName && !nt.nl && !reserved[nt.text] {
			label = p.next().text
		}
		p.semicolon()
		if t.text == "break" {
			return &ast.BreakStmt{Loc: ast.At(t.pos), Label: label}
		}
		return &ast.ContinueStmt{Loc: ast.At(t.pos), Label: label}
	case "throw":
		p.next()
		arg := withIn(p, p.parseExpr)
		p.semicolon()
		return &ast.ThrowStmt{Loc: ast.At(t.pos), Arg: arg}
	case "try":
		return p.parseTry()
	case "switch":
		return p.parseSwitch()
	case "debugger":
		p.next()
		p.semicolon()
		return &ast.DebuggerStmt{Loc: ast.At(t.pos)}
	case "import":
		if nt := p.peek(1); !nt.is("(") && !nt.is(".") {
			return p.parseImport()
		}
	case "export":
		return p.parseExport()
	}

	if p.peek(1).is(":") && !reserved[t.text] {
		p.next()
		p.next()
		return &ast.LabeledStmt{Loc: ast.At(t.pos), Label: t.text, Body: p.parseStatement()}
	}
	return p.parseExprStmt()
}

func (p *parser) parseExprStmt() ast.Stmt {
	start := p.pos()
	e := withIn(p, p.parseExpr)
	p.semicolon()
	return &ast.ExprStmt{Loc: ast.At(start), Expr: e}
}

func (p *parser) parseBlock() *ast.BlockStmt {
	start := p.expect("{")
	b := &ast.BlockStmt{Loc: ast.At(start.pos)}
	for !p.at("}") {
		if p.tok().kind == tokEOF {
			p.failf(p.tok(), "expected \"}\", found end of input")
		}
		b.Body = append(b.Body, p.parseStatement())
	}
	p.next()
	return b
}

func (p *parser) parseParenCondition() ast.Expr {
	p.expect("(")
	e := withIn(p, p.parseExpr)
	p.expect(")")
	return e
}

func (p *parser) parseIf() ast.Stmt {
	start := p.expect("if")
	s := &ast.IfStmt{Loc: ast.At(start.pos), Test: p.parseParenCondition()}
	s.Cons = p.parseStatement()
	if p.eat("else") {
		s.Alt = p.parseStatement()
	}
	return s
}

// parseVarDecl parses `var|let|const` declarators. Inside a for head the
// initializer is optional even for const and `in` is not an operator.
func (p *parser) parseVarDecl(inFor bool) *ast.VarDecl {
	kw := p.next()
	d := &ast.VarDecl{Loc: ast.At(kw.pos), DeclKind: kw.text}
	for {
		dt := p.pos()
		decl := &ast.VarDeclarator{Loc: ast.At(dt), ID: p.parseBindingTarget()}
		if p.at("!") {
			p.requireTypes(p.tok(), "definite assignment assertion")
			p.next()
			decl.Definite = true
		}
		if p.at(":") {
			setTypeAnn(decl.ID, p.parseTypeAnnotation())
		}
		if p.eat("=") {
			if inFor {
				decl.Init = p.parseAssign()
			} else {
				decl.Init = withIn(p, p.parseAssign)
			}
		}
		d.Decls = append(d.Decls, decl)
		if !p.eat(",") {
			break
		}
	}
	return d
}

func (p *parser) parseFor() ast.Stmt {
	start := p.expect("for")
	await := p.eat("await")
	p.expect("(")

	var init ast.Node
	switch t := p.tok(); {
	case t.is(";"):
	case t.is("var") || t.is("const") ||
		(t.is("let") && (p.peek(1).kind == tokName || p.peek(1).is("[") || p.peek(1).is("{"))):
		p.noIn = true
		init = p.parseVarDecl(true)
		p.noIn = false
	default:
		p.noIn = true
		init = p.parseExpr()
		p.noIn = false
	}

	if init != nil && (p.at("of") || p.at("in")) {
		of := p.next().is("of")
		var right ast.Expr
		if of {
			right = withIn(p, p.parseAssign)
		} else {
			right = withIn(p, p.parseExpr)
		}
		p.expect(")")
		body := p.parseStatement()
		if of {
			return &ast.ForOfStmt{Loc: ast.At(start.pos), Left: init, Right: right, Body: body, Await: await}
		}
		return &ast.ForInStmt{Loc: ast.At(start.pos), Left: init, Right: right, Body: body}
	}

	s := &ast.ForStmt{Loc: ast.At(start.pos), Init: init}
	p.expect(";")
	if !p.at(";") {
		s.Test = withIn(p, p.parseExpr)
	}
	p.expect(";")
	if !p.at(")") {
		s.Update = withIn(p, p.parseExpr)
	}
	p.expect(")")
	s.Body = p.parseStatement()
	return s
}

func (p *parser) parseTry() ast.Stmt {
	start := p.expect("try")
	s := &ast.TryStmt{Loc: ast.At(start.pos), Block: p.parseBlock()}
	if p.eat("catch") {
		if p.eat("(") {
			s.Param = p.parseBindingTarget()
			if p.at(":") {
				setTypeAnn(s.Param, p.parseTypeAnnotation())
			}
			p.expect(")")
		}
		s.Handler = p.parseBlock()
	}
	if p.eat("finally") {
		s.Finalizer = p.parseBlock()
	}
	if s.Handler == nil && s.Finalizer == nil {
		p.failf(p.tok(), "missing catch or finally after try")
	}
	return s
}

func (p *parser) parseSwitch() ast.Stmt {
	start := p.expect("switch")
	s := &ast.SwitchStmt{Loc: ast.At(start.pos), Disc: p.parseParenCondition()}
	p.expect("{")
	for !p.eat("}") {
		ct := p.tok()
		c := &ast.SwitchCase{Loc: ast.At(ct.pos)}
		switch {
		case p.eat("case"):
			c.Test = withIn(p, p.parseExpr)
		case p.eat("default"):
		default:
			p.failf(ct, "expected \"case\" or \"default\", found %s", describe(ct))
		}
		p.expect(":")
		for !p.at("case") && !p.at("default") && !p.at("}") {
			if p.tok().kind == tokEOF {
				p.failf(p.tok(), "expected \"}\", found end of input")
			}
			c.Body = append(c.Body, p.parseStatement())
		}
		s.Cases = append(s.Cases, c)
	}
	return s
}

func (p *parser) parseFuncDecl(optionalName, allowNoBody bool) *ast.FuncDecl {
	start := p.pos()
	d := &ast.FuncDecl{Loc: ast.At(start)}
	if p.eat("async") {
		d.Async = true
	}
	p.expect("function")
	if p.eat("*") {
		d.Generator = true
	}
	if t := p.tok(); !optionalName || (t.kind == tokName && !reserved[t.text]) {
		d.Name = p.parseIdent()
	}
	p.parseFunctionRest(&d.Function, allowNoBody && p.ts, false)
	return d
}

func (p *parser) parseClassDecl(requireName bool) *ast.ClassDecl {
	start := p.pos()
	d := &ast.ClassDecl{Loc: ast.At(start)}
	if p.at("abstract") {
		p.requireTypes(p.tok(), "abstract class")
		p.next()
		d.Abstract = true
	}
	p.expect("class")
	p.parseClass(&d.Class, requireName)
	return d
}

// ---------------------------------------------------------------------------
// modules

func (p *parser) parseImport() ast.Stmt {
	start := p.expect("import")
	d := &ast.ImportDecl{Loc: ast.At(start.pos)}

	if t := p.tok(); t.kind == tokString {
		d.Source = p.parseString()
		p.skipImportAttributes()
		p.semicolon()
		return d
	}

	if p.at("type") {
		nt := p.peek(1)
		typeOnly := nt.is("{") || nt.is("*") ||
			(nt.kind == tokName && (!nt.is("from") || p.peek(2).is("from")))
		if typeOnly {
			p.requireTypes(p.tok(), "type-only import")
			p.next()
			d.TypeOnly = true
		}
	}

	if t := p.tok(); t.kind == tokName {
		d.Default = p.parseIdent().Name
		if p.at("=") {
			p.failf(p.tok(), "import assignments are not supported")
		}
		if !p.eat(",") {
			p.expectFrom(d)
			return d
		}
	}
	switch {
	case p.eat("*"):
		p.expect("as")
		d.Namespace = p.parseIdent().Name
	case p.eat("{"):
		d.HasNamed = true
		for !p.eat("}") {
			d.Named = append(d.Named, p.parseImportSpec())
			if !p.at("}") {
				p.expect(",")
			}
		}
	default:
		p.unexpected()
	}
	p.expectFrom(d)
	return d
}

func (p *parser) expectFrom(d *ast.ImportDecl) {
	p.expect("from")
	d.Source = p.parseString()
	p.skipImportAttributes()
	p.semicolon()
}

// skipImportAttributes rejects `with { type: "json" }` clauses.
func (p *parser) skipImportAttributes() {
	if (p.at("with") || p.at("assert")) && !p.tok().nl {
		p.failf(p.tok(), "import attributes are not supported")
	}
}

func (p *parser) parseImportSpec() ast.ImportSpec {
	var spec ast.ImportSpec
	if p.at("type") {
		if nt := p.peek(1); nt.kind == tokName || nt.kind == tokString {
			if !nt.is("as") || p.peek(2).kind == tokName {
				p.requireTypes(p.tok(), "type-only import")
				p.next()
				spec.TypeOnly = true
			}
		}
	}
	t := p.tok()
	switch t.kind {
	case tokName, tokString:
		spec.Imported = p.next().text
	default:
		p.unexpected()
	}
	spec.Local = spec.Imported
	if p.eat("as") {
		spec.Local = p.parseIdent().Name
	} else if t.kind == tokString || reserved[t.text] {
		p.failf(t, "import of %s needs a local name", describe(t))
	}
	return spec
}

func (p *parser) parseExport() ast.Stmt {
	start := p.expect("export")
	loc := ast.At(start.pos)

	switch {
	case p.at("default"):
		p.next()
		t := p.tok()
		switch {
		case t.is("function") || (t.is("async") && p.peek(1).is("function") && !p.peek(1).nl):
			return &ast.ExportDefaultDecl{Loc: loc, Decl: p.parseFuncDecl(true, true)}
		case t.is("class") || (t.is("abstract") && p.peek(1).is("class")):
			return &ast.ExportDefaultDecl{Loc: loc, Decl: p.parseClassDecl(false)}
		case t.is("interface") && p.peek(1).kind == tokName && !p.peek(1).nl:
			return &ast.ExportDefaultDecl{Loc: loc, Decl: p.parseTypeDeclaration()}
		}
		e := withIn(p, p.parseAssign)
		p.semicolon()
		return &ast.ExportDefaultDecl{Loc: loc, Decl: e}

	case p.at("*") || (p.at("type") && p.peek(1).is("*")):
		d := &ast.ExportAllDecl{Loc: loc}
		if p.at("type") {
			p.requireTypes(p.tok(), "type-only export")
			p.next()
			d.TypeOnly = true
		}
		p.expect("*")
		if p.eat("as") {
			d.Exported = p.parseModuleExportName()
		}
		p.expect("from")
		d.Source = p.parseString()
		p.semicolon()
		return d

	case p.at("{") || (p.at("type") && p.peek(1).is("{")):
		d := &ast.ExportNamedDecl{Loc: loc}
		if p.at("type") {
			p.requireTypes(p.tok(), "type-only export")
			p.next()
			d.TypeOnly = true
		}
		p.expect("{")
		d.Specs = []ast.ExportSpec{}
		for !p.eat("}") {
			d.Specs = append(d.Specs, p.parseExportSpec())
			if !p.at("}") {
				p.expect(",")
			}
		}
		if p.eat("from") {
			d.Source = p.parseString()
		}
		p.semicolon()
		return d

	case p.at("=") || p.at("as") || p.at("import"):
		p.failf(p.tok(), "export assignments are not supported")
	}

	decl := p.parseStatementBody()
	switch decl.(type) {
	case *ast.VarDecl, *ast.FuncDecl, *ast.ClassDecl, *ast.InterfaceDecl,
		*ast.TypeAliasDecl, *ast.EnumDecl, *ast.ModuleDecl:
	default:
		p.failf(start, "expected declaration after export")
	}
	return &ast.ExportNamedDecl{Loc: loc, Decl: decl}
}

func (p *parser) parseExportSpec() ast.ExportSpec {
	var spec ast.ExportSpec
	if p.at("type") {
		if nt := p.peek(1); nt.kind == tokName || nt.kind == tokString {
			if !nt.is("as") || p.peek(2).kind == tokName {
				p.requireTypes(p.tok(), "type-only export")
				p.next()
				spec.TypeOnly = true
			}
		}
	}
	spec.Local = p.parseModuleExportName()
	spec.Exported = spec.Local
	if p.eat("as") {
		spec.Exported = p.parseModuleExportName()
	}
	return spec
}

func (p *parser) parseModuleExportName() string {
	t := p.tok()
	if t.kind != tokName && t.kind != tokString {
		p.failf(t, "expected name, found %s", describe(t))
	}
	return p.next().text
}
