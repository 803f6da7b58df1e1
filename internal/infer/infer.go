// Package infer maps expressions to type shapes.
//
// Inference is shape-based: it looks at the literal syntax of a single
// expression and never resolves identifiers, follows calls or tracks
// reassignment. It is total. Whatever it cannot classify becomes
// types.Unknown.
package infer

import (
	"github.com/roach88/typeshift/internal/ast"
	"github.com/roach88/typeshift/internal/types"
)

// Scope is the syntactic context an expression was found in. Each annotation
// pass threads its own chain of scopes; nothing is shared between calls.
type Scope struct {
	Node   ast.Node // the enclosing program, function or class
	Parent *Scope
}

// Enter returns a child scope for n.
func (s *Scope) Enter(n ast.Node) *Scope {
	return &Scope{Node: n, Parent: s}
}

// Infer returns the type shape of e. A nil expression is Unknown.
func Infer(e ast.Expr, scope *Scope) types.Type {
	switch e := e.(type) {
	case *ast.ParenExpr:
		return Infer(e.Expr, scope)
	case *ast.NumberLit:
		return types.Number
	case *ast.StringLit:
		return types.String
	case *ast.BoolLit:
		return types.Boolean
	case *ast.ArrayExpr:
		return array(e, scope)
	case *ast.ObjectExpr:
		return record(e, scope)
	case *ast.FuncExpr:
		return types.FunctionOf(len(e.Params), types.Unknown)
	case *ast.ArrowFunc:
		return types.FunctionOf(len(e.Params), types.Unknown)
	}
	return types.Unknown
}

func array(e *ast.ArrayExpr, scope *Scope) types.Type {
	if len(e.Elems) == 0 {
		return types.ArrayOf(types.Unknown)
	}
	var first types.Type
	for i, el := range e.Elems {
		switch el.(type) {
		case nil, *ast.SpreadElement:
			return types.ArrayOf(types.Unknown)
		}
		t := Infer(el, scope)
		if i == 0 {
			first = t
			continue
		}
		if !types.SameShape(first, t) {
			return types.ArrayOf(types.Unknown)
		}
	}
	return types.ArrayOf(first)
}

// record keeps plain data properties. Methods, accessors, spreads and
// computed keys are skipped. A repeated key keeps its first position and its
// last value, as object literal evaluation does.
func record(e *ast.ObjectExpr, scope *Scope) types.Type {
	r := &types.Record{}
	for _, n := range e.Props {
		p, ok := n.(*ast.Property)
		if !ok || p.Computed || p.PropKind != "init" {
			continue
		}
		name, ok := KeyName(p.Key)
		if !ok {
			continue
		}
		t := Infer(p.Value, scope)
		if i := fieldIndex(r, name); i >= 0 {
			r.Fields[i].Type = t
			continue
		}
		r.Fields = append(r.Fields, types.Field{Name: name, Type: t})
	}
	return r
}

func fieldIndex(r *types.Record, name string) int {
	for i, f := range r.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// KeyName returns the static name of a non-computed property key.
func KeyName(key ast.Expr) (string, bool) {
	switch k := key.(type) {
	case *ast.Identifier:
		return k.Name, true
	case *ast.StringLit:
		return k.Value, true
	case *ast.NumberLit:
		return k.Raw, true
	}
	return "", false
}
