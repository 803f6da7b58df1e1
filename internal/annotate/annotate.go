// Package annotate decorates an untyped program with inferred type
// annotations.
//
// The annotatable sites are variable declarators, function declaration
// parameters and returns, class properties, constructor parameters and
// method returns. Every scan keeps the last piece of evidence it sees in
// source order; observations are never merged. Sites that already carry an
// annotation are left alone, so annotating twice is the same as annotating
// once.
package annotate

import (
	"github.com/roach88/typeshift/internal/ast"
	"github.com/roach88/typeshift/internal/infer"
	"github.com/roach88/typeshift/internal/types"
)

// Annotate mutates prog in place and returns it. It never fails: a site with
// no usable evidence is annotated unknown.
func Annotate(prog *ast.Program) *ast.Program {
	if prog == nil {
		return nil
	}
	walk(prog, &infer.Scope{Node: prog})
	return prog
}

// walk annotates the sites under root. Functions and classes get their own
// scope, and their bodies are walked with it.
func walk(root ast.Node, scope *infer.Scope) {
	ast.Inspect(root, func(n ast.Node) bool {
		if n == root {
			return true
		}
		switch n := n.(type) {
		case *ast.VarDeclarator:
			declarator(n, scope)
		case *ast.FuncDecl:
			inner := scope.Enter(n)
			function(&n.Function, inner)
			walk(n, inner)
			return false
		case *ast.ClassDecl:
			inner := scope.Enter(n)
			class(&n.Class, inner)
			walk(n, inner)
			return false
		case *ast.ClassExpr:
			inner := scope.Enter(n)
			class(&n.Class, inner)
			walk(n, inner)
			return false
		case *ast.FuncExpr, *ast.ArrowFunc:
			walk(n, scope.Enter(n))
			return false
		}
		return true
	})
}

// declarator annotates `x = init`. Destructuring and declarators without an
// initializer are skipped.
func declarator(d *ast.VarDeclarator, scope *infer.Scope) {
	id, ok := d.ID.(*ast.Identifier)
	if !ok || d.Init == nil || id.TypeAnn != nil {
		return
	}
	id.TypeAnn = infer.Annotation(infer.Infer(d.Init, scope))
}

func function(fn *ast.Function, scope *infer.Scope) {
	if fn.Body == nil {
		return
	}
	for _, p := range fn.Params {
		id, ok := p.(*ast.Identifier)
		if !ok || id.TypeAnn != nil {
			continue
		}
		id.TypeAnn = infer.Annotation(paramEvidence(fn.Body, id.Name))
	}
	if fn.ReturnType == nil && !fn.Async && !fn.Generator {
		fn.ReturnType = infer.Annotation(lastReturn(fn.Body, scope))
	}
}

// paramEvidence scans body for uses of name, including uses inside nested
// callbacks. `name <op> 1` suggests a number, `name <op> "s"` a string, and
// `${name}` inside a template a string. The last use wins. A nested function
// that takes its own parameter called name is not searched.
func paramEvidence(body *ast.BlockStmt, name string) types.Type {
	t := types.Unknown
	scan(body, shadows(name), func(n ast.Node) {
		switch n := n.(type) {
		case *ast.BinaryExpr:
			if !isName(n.Left, name) {
				return
			}
			switch unparen(n.Right).(type) {
			case *ast.NumberLit:
				t = types.Number
			case *ast.StringLit:
				t = types.String
			}
		case *ast.TemplateLit:
			for _, e := range n.Exprs {
				if isName(e, name) {
					t = types.String
				}
			}
		}
	})
	return t
}

// lastReturn infers the argument of the last return statement in body that
// has one. Returns of nested functions belong to those functions.
func lastReturn(body *ast.BlockStmt, scope *infer.Scope) types.Type {
	var arg ast.Expr
	scan(body, isFunction, func(n ast.Node) {
		if r, ok := n.(*ast.ReturnStmt); ok && r.Arg != nil {
			arg = r.Arg
		}
	})
	return infer.Infer(arg, scope)
}

// scan calls f for every node under root in source order, without entering
// the nodes skip selects.
func scan(root ast.Node, skip func(ast.Node) bool, f func(ast.Node)) {
	ast.Inspect(root, func(n ast.Node) bool {
		if n != root && skip(n) {
			return false
		}
		f(n)
		return true
	})
}

func isFunction(n ast.Node) bool {
	switch n.(type) {
	case *ast.FuncDecl, *ast.FuncExpr, *ast.ArrowFunc, *ast.ClassDecl, *ast.ClassExpr:
		return true
	}
	return false
}

// shadows selects the functions that declare a parameter called name.
func shadows(name string) func(ast.Node) bool {
	return func(n ast.Node) bool {
		var params []ast.Pattern
		switch n := n.(type) {
		case *ast.FuncDecl:
			params = n.Params
		case *ast.FuncExpr:
			params = n.Params
		case *ast.ArrowFunc:
			params = n.Params
		case *ast.ClassMethod:
			params = n.Params
		}
		for _, p := range params {
			if binds(p, name) {
				return true
			}
		}
		return false
	}
}

// binds reports whether the parameter pattern p introduces name.
func binds(p ast.Node, name string) bool {
	switch p := p.(type) {
	case *ast.Identifier:
		return p.Name == name
	case *ast.AssignPattern:
		return binds(p.Left, name)
	case *ast.RestElement:
		return binds(p.Arg, name)
	case *ast.ArrayPattern:
		for _, e := range p.Elems {
			if e != nil && binds(e, name) {
				return true
			}
		}
	case *ast.ObjectPattern:
		for _, prop := range p.Props {
			if binds(prop, name) {
				return true
			}
		}
	case *ast.Property:
		if p.Value != nil {
			return binds(p.Value, name)
		}
		return !p.Computed && isName(p.Key, name)
	case *ast.ParamProperty:
		return binds(p.Param, name)
	}
	return false
}

func isName(e ast.Expr, name string) bool {
	id, ok := unparen(e).(*ast.Identifier)
	return ok && id.Name == name
}

func unparen(e ast.Expr) ast.Expr {
	for {
		p, ok := e.(*ast.ParenExpr)
		if !ok {
			return e
		}
		e = p.Expr
	}
}
