package annotate

import (
	"github.com/roach88/typeshift/internal/ast"
	"github.com/roach88/typeshift/internal/infer"
	"github.com/roach88/typeshift/internal/types"
)

func class(c *ast.Class, scope *infer.Scope) {
	for _, m := range c.Members {
		switch m := m.(type) {
		case *ast.ClassProperty:
			if m.TypeAnn != nil || m.Computed {
				continue
			}
			if _, ok := memberName(m.Key); ok {
				m.TypeAnn = infer.Annotation(fieldEvidence(c, m.Key, scope))
			}
		case *ast.ClassMethod:
			if m.Body == nil {
				continue
			}
			if m.MethodKind == "constructor" {
				constructorParams(m)
				continue
			}
			if m.ReturnType == nil && m.MethodKind != "set" && !m.Async && !m.Generator {
				m.ReturnType = infer.Annotation(lastReturn(m.Body, scope))
			}
		}
	}
}

// fieldEvidence infers the right-hand side of the last `this.<key> = value`
// anywhere in the class. Nested classes and non-arrow functions rebind
// `this` and are not searched.
func fieldEvidence(c *ast.Class, key ast.Expr, scope *infer.Scope) types.Type {
	var value ast.Expr
	for _, m := range c.Members {
		scan(m, rebindsThis, func(n ast.Node) {
			if target, rhs, ok := thisAssignment(n); ok && sameMember(target.Property, key) {
				value = rhs
			}
		})
	}
	return infer.Infer(value, scope)
}

// constructorParams annotates each simple constructor parameter from the
// last `this.<field> = param` in the constructor body. The right-hand side is
// the parameter itself, which shape-based inference cannot type, so the
// result is unknown until inference learns to trace the parameter's uses.
func constructorParams(m *ast.ClassMethod) {
	for _, p := range m.Params {
		id, ok := p.(*ast.Identifier)
		if !ok || id.TypeAnn != nil {
			continue
		}
		var value ast.Expr
		scan(m.Body, rebindsThis, func(n ast.Node) {
			if _, rhs, ok := thisAssignment(n); ok && isName(rhs, id.Name) {
				value = rhs
			}
		})
		id.TypeAnn = infer.Annotation(infer.Infer(value, nil))
	}
}

// thisAssignment matches `this.name = value` and `this.#name = value`.
func thisAssignment(n ast.Node) (*ast.MemberExpr, ast.Expr, bool) {
	a, ok := n.(*ast.AssignExpr)
	if !ok || a.Op != "=" {
		return nil, nil, false
	}
	m, ok := unparen(a.Left).(*ast.MemberExpr)
	if !ok || m.Computed {
		return nil, nil, false
	}
	if _, ok := m.Object.(*ast.ThisExpr); !ok {
		return nil, nil, false
	}
	return m, a.Right, true
}

// memberName returns the name of an identifier or private-name key.
func memberName(key ast.Expr) (string, bool) {
	switch k := key.(type) {
	case *ast.Identifier:
		return k.Name, true
	case *ast.PrivateName:
		return "#" + k.Name, true
	}
	return "", false
}

func sameMember(a, b ast.Expr) bool {
	an, ok := memberName(a)
	if !ok {
		return false
	}
	bn, ok := memberName(b)
	return ok && an == bn
}

func rebindsThis(n ast.Node) bool {
	switch n.(type) {
	case *ast.FuncDecl, *ast.FuncExpr, *ast.ClassDecl, *ast.ClassExpr:
		return true
	}
	return false
}
