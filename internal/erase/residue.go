package erase

import "github.com/roach88/typeshift/internal/ast"

// Residue returns the nodes under root that erasure should have removed,
// unwrapped or cleared, outermost first. It is empty for any tree Erase
// returned.
func Residue(root ast.Node) []ast.Node {
	var found []ast.Node
	ast.Inspect(root, func(n ast.Node) bool {
		k := n.Kind()
		if k.TypeOnly() || k.Assertion() || k == ast.KindParameterProperty || ast.IsAmbient(n) || hasTypeFlags(n) {
			found = append(found, n)
			return false
		}
		return true
	})
	return found
}

func hasTypeFlags(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.Identifier:
		return n.Optional
	case *ast.VarDeclarator:
		return n.Definite
	case *ast.ClassDecl:
		return n.Abstract
	case *ast.ClassExpr:
		return n.Abstract
	case *ast.ClassProperty:
		return n.Modifiers.Any() || n.Optional || n.Definite
	case *ast.ClassMethod:
		return n.Modifiers.Any() || n.Optional
	case *ast.ImportDecl:
		for _, s := range n.Named {
			if s.TypeOnly {
				return true
			}
		}
	case *ast.ExportNamedDecl:
		for _, s := range n.Specs {
			if s.TypeOnly {
				return true
			}
		}
	}
	return false
}
