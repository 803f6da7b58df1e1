package ast

// IsAmbient reports whether n declares something that only exists for the
// type checker even though its kind is a runtime kind: `declare` forms,
// bodyless functions and methods (overload signatures, abstract methods),
// abstract or declared fields, the `this` parameter, and imports or exports
// that carry only types.
func IsAmbient(n Node) bool {
	switch n := n.(type) {
	case *VarDecl:
		return n.Declare
	case *FuncDecl:
		return n.Declare || n.Body == nil
	case *ClassDecl:
		return n.Declare
	case *ClassMethod:
		return n.Body == nil || n.Modifiers.Abstract || n.Modifiers.Declare
	case *ClassProperty:
		return n.Modifiers.Abstract || n.Modifiers.Declare
	case *Identifier:
		return n.Name == "this"
	case *ImportDecl:
		if n.TypeOnly {
			return true
		}
		if n.Default != "" || n.Namespace != "" || len(n.Named) == 0 {
			return false
		}
		for _, s := range n.Named {
			if !s.TypeOnly {
				return false
			}
		}
		return true
	case *ExportNamedDecl:
		if n.TypeOnly {
			return true
		}
		if n.Decl != nil {
			return Erasable(n.Decl)
		}
		if len(n.Specs) == 0 {
			return false
		}
		for _, s := range n.Specs {
			if !s.TypeOnly {
				return false
			}
		}
		return true
	case *ExportDefaultDecl:
		return Erasable(n.Decl)
	case *ExportAllDecl:
		return n.TypeOnly
	}
	return false
}

// Erasable reports whether n disappears entirely when types are erased.
func Erasable(n Node) bool {
	if n == nil {
		return false
	}
	return n.Kind().TypeOnly() || IsAmbient(n)
}
