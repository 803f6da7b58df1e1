// Package printer serializes a program tree back to source text.
//
// Output is deterministic: one statement per line, K&R braces, literals in
// their original spelling. Leading comments and blank lines between
// statements are kept when the tree carries them. A node the printer has no
// rendering for is written as a `/* : Kind */` marker instead of failing.
package printer

import (
	"strings"

	"github.com/roach88/typeshift/internal/ast"
)

// Options controls layout.
type Options struct {
	Indent           int  // spaces per level; values < 1 mean 2
	RetainBlankLines bool // keep single blank lines recorded by the parser
}

// DefaultOptions returns two-space indentation with blank lines retained.
func DefaultOptions() Options {
	return Options{Indent: 2, RetainBlankLines: true}
}

// Error reports a tree that could not be printed.
type Error struct {
	Message string
}

func (e *Error) Error() string { return "print: " + e.Message }

// Print renders prog. The result ends with a newline unless the program is
// empty.
func Print(prog *ast.Program, opts Options) (string, error) {
	if prog == nil {
		return "", &Error{Message: "nil program"}
	}
	if opts.Indent < 1 {
		opts.Indent = 2
	}
	p := &printer{opts: opts, unit: strings.Repeat(" ", opts.Indent)}
	p.stmtList(prog.Body, true)
	if len(prog.Trailing) > 0 {
		if len(prog.Body) > 0 {
			p.nl()
		}
		p.comments(prog.Trailing, false)
	}
	if p.b.Len() == 0 {
		return "", nil
	}
	return strings.TrimRight(p.b.String(), " \n") + "\n", nil
}

type printer struct {
	b     strings.Builder
	opts  Options
	unit  string
	depth int
}

func (p *printer) write(s ...string) {
	for _, x := range s {
		p.b.WriteString(x)
	}
}

// nl starts a new line at the current depth.
func (p *printer) nl() {
	p.b.WriteByte('\n')
	for i := 0; i < p.depth; i++ {
		p.b.WriteString(p.unit)
	}
}

func (p *printer) blank() { p.b.WriteByte('\n') }

func (p *printer) withIndent(fn func()) { p.depth++; fn(); p.depth-- }

// marker writes the fallback for a node without a rendering.
func (p *printer) marker(n ast.Node) {
	if n == nil {
		p.write("/* : missing */")
		return
	}
	p.write("/* : ", n.Kind().String(), " */")
}

// comments writes each comment on its own line. Without trailingBreak the
// last comment is not followed by a line break.
func (p *printer) comments(cs []string, trailingBreak bool) {
	for i, c := range cs {
		p.write(c)
		if trailingBreak || i < len(cs)-1 {
			p.nl()
		}
	}
}

// stmtList writes statements one per line. At top level the first statement
// is not preceded by a line break.
func (p *printer) stmtList(stmts []ast.Stmt, top bool) {
	for i, s := range stmts {
		tr := s.Leading()
		if i > 0 || !top {
			if i > 0 && tr.BlankLine && p.opts.RetainBlankLines {
				p.blank()
			}
			p.nl()
		}
		p.comments(tr.Comments, true)
		p.stmt(s)
	}
}

func (p *printer) block(b *ast.BlockStmt) {
	if b == nil || len(b.Body) == 0 {
		p.write("{}")
		return
	}
	p.write("{")
	p.withIndent(func() { p.stmtList(b.Body, false) })
	p.nl()
	p.write("}")
}

// body writes the body of a compound statement: a block stays on the same
// line, any other statement moves to an indented line of its own.
func (p *printer) body(s ast.Stmt) {
	if b, ok := s.(*ast.BlockStmt); ok {
		p.write(" ")
		p.block(b)
		return
	}
	if _, ok := s.(*ast.EmptyStmt); ok {
		p.write(";")
		return
	}
	p.withIndent(func() {
		p.nl()
		p.comments(s.Leading().Comments, true)
		p.stmt(s)
	})
}

func (p *printer) stmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.VarDecl:
		p.varDecl(s)
		p.write(";")
	case *ast.FuncDecl:
		if s.Declare {
			p.write("declare ")
		}
		p.function(&s.Function, "function")
	case *ast.ClassDecl:
		if s.Declare {
			p.write("declare ")
		}
		p.class(&s.Class)
	case *ast.ReturnStmt:
		p.write("return")
		if s.Arg != nil {
			p.write(" ")
			p.expr(s.Arg, precSeq)
		}
		p.write(";")
	case *ast.IfStmt:
		p.write("if (")
		p.expr(s.Test, precSeq)
		p.write(")")
		p.body(s.Cons)
		if s.Alt == nil {
			return
		}
		if _, ok := s.Cons.(*ast.BlockStmt); ok {
			p.write(" else")
		} else {
			p.nl()
			p.write("else")
		}
		if elif, ok := s.Alt.(*ast.IfStmt); ok {
			p.write(" ")
			p.stmt(elif)
			return
		}
		p.body(s.Alt)
	case *ast.ForStmt:
		p.write("for (")
		switch init := s.Init.(type) {
		case nil:
		case *ast.VarDecl:
			p.varDecl(init)
		case ast.Expr:
			p.expr(init, precSeq)
		}
		p.write(";")
		if s.Test != nil {
			p.write(" ")
			p.expr(s.Test, precSeq)
		}
		p.write(";")
		if s.Update != nil {
			p.write(" ")
			p.expr(s.Update, precSeq)
		}
		p.write(")")
		p.body(s.Body)
	case *ast.ForInStmt:
		p.write("for (")
		p.forLeft(s.Left)
		p.write(" in ")
		p.expr(s.Right, precSeq)
		p.write(")")
		p.body(s.Body)
	case *ast.ForOfStmt:
		p.write("for ")
		if s.Await {
			p.write("await ")
		}
		p.write("(")
		p.forLeft(s.Left)
		p.write(" of ")
		p.expr(s.Right, precAssign)
		p.write(")")
		p.body(s.Body)
	case *ast.WhileStmt:
		p.write("while (")
		p.expr(s.Test, precSeq)
		p.write(")")
		p.body(s.Body)
	case *ast.DoWhileStmt:
		p.write("do")
		p.body(s.Body)
		if _, ok := s.Body.(*ast.BlockStmt); ok {
			p.write(" ")
		} else {
			p.nl()
		}
		p.write("while (")
		p.expr(s.Test, precSeq)
		p.write(");")
	case *ast.BlockStmt:
		p.block(s)
	case *ast.ExprStmt:
		p.exprStmt(s.Expr)
	case *ast.EmptyStmt:
		p.write(";")
	case *ast.BreakStmt:
		p.jump("break", s.Label)
	case *ast.ContinueStmt:
		p.jump("continue", s.Label)
	case *ast.ThrowStmt:
		p.write("throw ")
		p.expr(s.Arg, precSeq)
		p.write(";")
	case *ast.TryStmt:
		p.write("try ")
		p.block(s.Block)
		if s.Handler != nil {
			p.write(" catch ")
			if s.Param != nil {
				p.write("(")
				p.pattern(s.Param)
				p.write(") ")
			}
			p.block(s.Handler)
		}
		if s.Finalizer != nil {
			p.write(" finally ")
			p.block(s.Finalizer)
		}
	case *ast.SwitchStmt:
		p.switchStmt(s)
	case *ast.LabeledStmt:
		p.write(s.Label, ":")
		if _, ok := s.Body.(*ast.BlockStmt); ok {
			p.body(s.Body)
			return
		}
		p.write(" ")
		p.stmt(s.Body)
	case *ast.DebuggerStmt:
		p.write("debugger;")
	case *ast.ImportDecl:
		p.importDecl(s)
	case *ast.ExportNamedDecl:
		p.exportNamed(s)
	case *ast.ExportDefaultDecl:
		p.write("export default ")
		switch d := s.Decl.(type) {
		case ast.Stmt:
			p.stmt(d)
		case ast.Expr:
			p.expr(d, precAssign)
			p.write(";")
		default:
			p.marker(d)
		}
	case *ast.ExportAllDecl:
		p.write("export ")
		if s.TypeOnly {
			p.write("type ")
		}
		p.write("*")
		if s.Exported != "" {
			p.write(" as ", s.Exported)
		}
		p.write(" from ", s.Source.Raw, ";")
	case *ast.InterfaceDecl:
		p.interfaceDecl(s)
	case *ast.TypeAliasDecl:
		if s.Declare {
			p.write("declare ")
		}
		p.write("type ", s.Name.Name)
		p.typeParams(s.TypeParams)
		p.write(" = ")
		p.typ(s.Type)
		p.write(";")
	case *ast.EnumDecl:
		p.enumDecl(s)
	case *ast.ModuleDecl:
		p.moduleDecl(s)
	default:
		p.marker(s)
	}
}

func (p *printer) jump(kw, label string) {
	p.write(kw)
	if label != "" {
		p.write(" ", label)
	}
	p.write(";")
}

func (p *printer) varDecl(d *ast.VarDecl) {
	if d.Declare {
		p.write("declare ")
	}
	p.write(d.DeclKind, " ")
	for i, decl := range d.Decls {
		if i > 0 {
			p.write(", ")
		}
		p.bindingWithAnn(decl.ID, decl.Definite)
		if decl.Init != nil {
			p.write(" = ")
			p.expr(decl.Init, precAssign)
		}
	}
}

func (p *printer) forLeft(n ast.Node) {
	switch left := n.(type) {
	case *ast.VarDecl:
		p.varDecl(left)
	case ast.Expr:
		p.expr(left, precPostfix)
	default:
		p.marker(n)
	}
}

func (p *printer) switchStmt(s *ast.SwitchStmt) {
	p.write("switch (")
	p.expr(s.Disc, precSeq)
	p.write(") {")
	p.withIndent(func() {
		for _, c := range s.Cases {
			p.nl()
			if c.Test == nil {
				p.write("default:")
			} else {
				p.write("case ")
				p.expr(c.Test, precSeq)
				p.write(":")
			}
			if len(c.Body) == 1 {
				if b, ok := c.Body[0].(*ast.BlockStmt); ok && len(b.Leading().Comments) == 0 {
					p.write(" ")
					p.block(b)
					continue
				}
			}
			p.withIndent(func() { p.stmtList(c.Body, false) })
		}
	})
	p.nl()
	p.write("}")
}

func (p *printer) importDecl(d *ast.ImportDecl) {
	p.write("import ")
	if d.TypeOnly {
		p.write("type ")
	}
	hasClause := false
	if d.Default != "" {
		p.write(d.Default)
		hasClause = true
	}
	if d.Namespace != "" {
		if hasClause {
			p.write(", ")
		}
		p.write("* as ", d.Namespace)
		hasClause = true
	}
	if len(d.Named) > 0 || (d.HasNamed && !hasClause) {
		if hasClause {
			p.write(", ")
		}
		p.write("{")
		for i, spec := range d.Named {
			if i > 0 {
				p.write(",")
			}
			p.write(" ")
			if spec.TypeOnly {
				p.write("type ")
			}
			p.write(spec.Imported)
			if spec.Local != spec.Imported {
				p.write(" as ", spec.Local)
			}
		}
		if len(d.Named) > 0 {
			p.write(" ")
		}
		p.write("}")
		hasClause = true
	}
	if hasClause {
		p.write(" from ")
	}
	p.write(d.Source.Raw, ";")
}

func (p *printer) exportNamed(d *ast.ExportNamedDecl) {
	p.write("export ")
	if d.Decl != nil {
		p.stmt(d.Decl)
		return
	}
	if d.TypeOnly {
		p.write("type ")
	}
	p.write("{")
	for i, spec := range d.Specs {
		if i > 0 {
			p.write(",")
		}
		p.write(" ")
		if spec.TypeOnly {
			p.write("type ")
		}
		p.write(spec.Local)
		if spec.Exported != spec.Local {
			p.write(" as ", spec.Exported)
		}
	}
	if len(d.Specs) > 0 {
		p.write(" ")
	}
	p.write("}")
	if d.Source != nil {
		p.write(" from ", d.Source.Raw)
	}
	p.write(";")
}

// ---------------------------------------------------------------------------
// functions and classes

// function writes a function declaration or expression starting at the
// `async` keyword.
func (p *printer) function(fn *ast.Function, kw string) {
	if fn.Async {
		p.write("async ")
	}
	p.write(kw)
	if fn.Generator {
		p.write("*")
	}
	if fn.Name != nil {
		p.write(" ", fn.Name.Name)
	}
	p.signature(fn)
	if fn.Body == nil {
		p.write(";")
		return
	}
	p.write(" ")
	p.block(fn.Body)
}

// signature writes type parameters, parameters and the return type.
func (p *printer) signature(fn *ast.Function) {
	p.typeParams(fn.TypeParams)
	p.params(fn.Params)
	p.annotation(fn.ReturnType)
}

func (p *printer) params(params []ast.Pattern) {
	p.write("(")
	for i, param := range params {
		if i > 0 {
			p.write(", ")
		}
		p.pattern(param)
	}
	p.write(")")
}

func (p *printer) class(c *ast.Class) {
	if c.Abstract {
		p.write("abstract ")
	}
	p.write("class")
	if c.Name != nil {
		p.write(" ", c.Name.Name)
	}
	p.typeParams(c.TypeParams)
	if c.SuperClass != nil {
		p.write(" extends ")
		p.expr(c.SuperClass, precCall)
		p.typeArgs(c.SuperTypeArgs)
	}
	if len(c.Implements) > 0 {
		p.write(" implements ")
		p.heritage(c.Implements)
	}
	p.write(" ")
	if len(c.Members) == 0 {
		p.write("{}")
		return
	}
	p.write("{")
	p.withIndent(func() {
		for i, m := range c.Members {
			tr := m.Leading()
			if i > 0 && tr.BlankLine && p.opts.RetainBlankLines {
				p.blank()
			}
			p.nl()
			p.comments(tr.Comments, true)
			p.member(m)
		}
	})
	p.nl()
	p.write("}")
}

func (p *printer) heritage(hs []*ast.ExprWithTypeArgs) {
	for i, h := range hs {
		if i > 0 {
			p.write(", ")
		}
		p.expr(h.Expr, precCall)
		p.typeArgs(h.TypeArgs)
	}
}

func (p *printer) modifiers(m ast.Modifiers, static bool) {
	if m.Declare {
		p.write("declare ")
	}
	if m.Access != "" {
		p.write(m.Access, " ")
	}
	if static {
		p.write("static ")
	}
	if m.Abstract {
		p.write("abstract ")
	}
	if m.Override {
		p.write("override ")
	}
	if m.Readonly {
		p.write("readonly ")
	}
}

func (p *printer) member(m ast.ClassMember) {
	switch m := m.(type) {
	case *ast.ClassMethod:
		p.modifiers(m.Modifiers, m.Static)
		switch m.MethodKind {
		case "get", "set":
			p.write(m.MethodKind, " ")
		}
		if m.Async {
			p.write("async ")
		}
		if m.Generator {
			p.write("*")
		}
		p.propertyKey(m.Key, m.Computed)
		if m.Optional {
			p.write("?")
		}
		p.signature(&m.Function)
		if m.Body == nil {
			p.write(";")
			return
		}
		p.write(" ")
		p.block(m.Body)
	case *ast.ClassProperty:
		p.modifiers(m.Modifiers, m.Static)
		p.propertyKey(m.Key, m.Computed)
		if m.Optional {
			p.write("?")
		}
		if m.Definite {
			p.write("!")
		}
		p.annotation(m.TypeAnn)
		if m.Value != nil {
			p.write(" = ")
			p.expr(m.Value, precAssign)
		}
		p.write(";")
	case *ast.IndexSignature:
		if m.Static {
			p.write("static ")
		}
		p.indexSignature(m)
		p.write(";")
	default:
		p.marker(m)
	}
}

func (p *printer) propertyKey(key ast.Expr, computed bool) {
	if computed {
		p.write("[")
		p.expr(key, precAssign)
		p.write("]")
		return
	}
	p.expr(key, precPrimary)
}

// ---------------------------------------------------------------------------
// type-level declarations

func (p *printer) interfaceDecl(d *ast.InterfaceDecl) {
	if d.Declare {
		p.write("declare ")
	}
	p.write("interface ", d.Name.Name)
	p.typeParams(d.TypeParams)
	if len(d.Extends) > 0 {
		p.write(" extends ")
		p.heritage(d.Extends)
	}
	p.write(" ")
	if len(d.Body) == 0 {
		p.write("{}")
		return
	}
	p.write("{")
	p.withIndent(func() {
		for _, m := range d.Body {
			p.nl()
			p.typeMember(m)
			p.write(";")
		}
	})
	p.nl()
	p.write("}")
}

func (p *printer) enumDecl(d *ast.EnumDecl) {
	if d.Declare {
		p.write("declare ")
	}
	if d.Const {
		p.write("const ")
	}
	p.write("enum ", d.Name.Name, " ")
	if len(d.Members) == 0 {
		p.write("{}")
		return
	}
	p.write("{")
	p.withIndent(func() {
		for i, m := range d.Members {
			p.nl()
			p.expr(m.Name, precPrimary)
			if m.Init != nil {
				p.write(" = ")
				p.expr(m.Init, precAssign)
			}
			if i < len(d.Members)-1 {
				p.write(",")
			}
		}
	})
	p.nl()
	p.write("}")
}

func (p *printer) moduleDecl(d *ast.ModuleDecl) {
	if d.Declare {
		p.write("declare ")
	}
	p.write(d.Keyword)
	if d.Name != nil {
		p.write(" ")
		p.entityName(d.Name)
	}
	if d.Body == nil {
		p.write(";")
		return
	}
	p.write(" ")
	p.block(&ast.BlockStmt{Body: d.Body})
}
