// Package erase strips type syntax from a program tree.
//
// Erase makes one pre-order pass. Each node is checked against these rules
// in order and the first that matches is applied:
//
//  1. type-only nodes are removed with their subtrees;
//  2. assertion wrappers are replaced by the expression they wrap;
//  3. parameter properties are replaced by the plain parameter;
//  4. ambient declarations are removed.
//
// A replacement is checked again before the walk descends into it. Nodes
// that survive lose their type-only flags and modifiers. A second pass then
// drops the empty statements left behind. Kinds no rule names are left
// alone.
package erase

import (
	"github.com/roach88/typeshift/internal/ast"
)

// Erase mutates prog in place and returns it.
func Erase(prog *ast.Program) *ast.Program {
	if prog == nil {
		return nil
	}
	ast.Rewrite(prog, eraseNode)
	dropEmpty(prog)
	return prog
}

func eraseNode(n ast.Node) ast.Node {
	k := n.Kind()
	switch {
	case k.TypeOnly():
		return remove(n)
	case k.Assertion():
		return unwrap(n)
	case k == ast.KindParameterProperty:
		return n.(*ast.ParamProperty).Param
	case ast.IsAmbient(n):
		return remove(n)
	}
	clearFlags(n)
	return n
}

// remove deletes n from its slot. A statement leaves an empty placeholder
// holding its blank-line flag until dropEmpty runs.
func remove(n ast.Node) ast.Node {
	s, ok := n.(ast.Stmt)
	if !ok {
		return nil
	}
	return &ast.EmptyStmt{
		Loc:    ast.At(s.Pos()),
		Trivia: ast.Trivia{BlankLine: s.Leading().BlankLine},
	}
}

func unwrap(n ast.Node) ast.Node {
	switch n := n.(type) {
	case *ast.AsExpr:
		return n.Expr
	case *ast.SatisfiesExpr:
		return n.Expr
	case *ast.TypeAssertion:
		return n.Expr
	case *ast.NonNullExpr:
		return n.Expr
	case *ast.InstantiationExpr:
		return n.Expr
	}
	return n
}

// clearFlags resets the type-only markers a runtime node can carry.
func clearFlags(n ast.Node) {
	switch n := n.(type) {
	case *ast.Identifier:
		n.Optional = false
	case *ast.VarDeclarator:
		n.Definite = false
	case *ast.ClassDecl:
		n.Abstract = false
	case *ast.ClassExpr:
		n.Abstract = false
	case *ast.ClassProperty:
		n.Modifiers = ast.Modifiers{}
		n.Optional = false
		n.Definite = false
	case *ast.ClassMethod:
		n.Modifiers = ast.Modifiers{}
		n.Optional = false
	case *ast.ImportDecl:
		before := len(n.Named)
		n.Named = runtimeImports(n.Named)
		if before > 0 && len(n.Named) == 0 {
			n.HasNamed = false
		}
	case *ast.ExportNamedDecl:
		n.Specs = runtimeExports(n.Specs)
	}
}

func runtimeImports(specs []ast.ImportSpec) []ast.ImportSpec {
	out := specs[:0]
	for _, s := range specs {
		if !s.TypeOnly {
			out = append(out, s)
		}
	}
	return out
}

func runtimeExports(specs []ast.ExportSpec) []ast.ExportSpec {
	out := specs[:0]
	for _, s := range specs {
		if !s.TypeOnly {
			out = append(out, s)
		}
	}
	return out
}

// dropEmpty removes empty statements from every statement list under root.
// A blank line recorded on a dropped statement moves to the next survivor.
// Single statement slots, such as a loop body, keep theirs.
func dropEmpty(root ast.Node) {
	ast.Inspect(root, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.Program:
			n.Body = compact(n.Body)
		case *ast.BlockStmt:
			n.Body = compact(n.Body)
		case *ast.SwitchCase:
			n.Body = compact(n.Body)
		case *ast.ModuleDecl:
			n.Body = compact(n.Body)
		}
		return true
	})
}

func compact(stmts []ast.Stmt) []ast.Stmt {
	out := stmts[:0]
	blank := false
	for _, s := range stmts {
		if _, ok := s.(*ast.EmptyStmt); ok {
			blank = blank || s.Leading().BlankLine
			continue
		}
		if blank {
			s.Leading().BlankLine = true
			blank = false
		}
		out = append(out, s)
	}
	return out
}
