package printer

import "github.com/roach88/typeshift/internal/ast"

func (p *printer) annotation(a *ast.TypeAnnotation) {
	if a == nil {
		return
	}
	p.write(": ")
	p.typ(a.Type)
}

func (p *printer) typeParams(d *ast.TypeParamDecl) {
	if d == nil {
		return
	}
	p.write("<")
	for i, tp := range d.Params {
		if i > 0 {
			p.write(", ")
		}
		for _, m := range tp.Modifiers {
			p.write(m, " ")
		}
		p.write(tp.Name)
		if tp.Constraint != nil {
			p.write(" extends ")
			p.typ(tp.Constraint)
		}
		if tp.Default != nil {
			p.write(" = ")
			p.typ(tp.Default)
		}
	}
	p.write(">")
}

func (p *printer) typeArgs(a *ast.TypeArgs) {
	if a == nil {
		return
	}
	p.write("<")
	p.typeList(a.Params, ", ", nil)
	p.write(">")
}

func (p *printer) typeList(ts []ast.TypeNode, sep string, wrap func(ast.TypeNode) bool) {
	for i, t := range ts {
		if i > 0 {
			p.write(sep)
		}
		p.operand(t, wrap)
	}
}

// operand writes t, parenthesized when wrap says it would otherwise bind
// wrongly in its position.
func (p *printer) operand(t ast.TypeNode, wrap func(ast.TypeNode) bool) {
	if wrap != nil && wrap(t) {
		p.write("(")
		p.typ(t)
		p.write(")")
		return
	}
	p.typ(t)
}

// Positions that bind tighter than a function, conditional, union or
// intersection type.

func wrapInUnion(t ast.TypeNode) bool {
	switch t.(type) {
	case *ast.FunctionType, *ast.ConstructorType, *ast.ConditionalType:
		return true
	}
	return false
}

func wrapInIntersection(t ast.TypeNode) bool {
	_, isUnion := t.(*ast.UnionType)
	return isUnion || wrapInUnion(t)
}

func wrapInPostfix(t ast.TypeNode) bool {
	switch t.(type) {
	case *ast.IntersectionType, *ast.TypeOperator, *ast.InferType:
		return true
	}
	return wrapInIntersection(t)
}

func (p *printer) typ(t ast.TypeNode) {
	switch t := t.(type) {
	case *ast.KeywordType:
		p.write(t.Name)
	case *ast.TypeRef:
		p.entityName(t.Name)
		p.typeArgs(t.TypeArgs)
	case *ast.TypeQuery:
		p.write("typeof ")
		p.entityName(t.Expr)
		p.typeArgs(t.TypeArgs)
	case *ast.TypePredicate:
		if t.Asserts {
			p.write("asserts ")
		}
		p.write(t.Param)
		if t.Type != nil {
			p.write(" is ")
			p.typ(t.Type)
		}
	case *ast.TypeOperator:
		p.write(t.Op, " ")
		p.operand(t.Type, wrapInIntersection)
	case *ast.IndexedAccessType:
		p.operand(t.Object, wrapInPostfix)
		p.write("[")
		p.typ(t.Index)
		p.write("]")
	case *ast.MappedType:
		p.mappedType(t)
	case *ast.LiteralType:
		p.expr(t.Literal, precUnary)
	case *ast.ImportType:
		p.write("import(", t.Arg.Raw, ")")
		if t.Qualifier != nil {
			p.write(".")
			p.entityName(t.Qualifier)
		}
		p.typeArgs(t.TypeArgs)
	case *ast.UnionType:
		p.typeList(t.Types, " | ", wrapInUnion)
	case *ast.IntersectionType:
		p.typeList(t.Types, " & ", wrapInIntersection)
	case *ast.OptionalType:
		p.operand(t.Type, wrapInPostfix)
		p.write("?")
	case *ast.RestType:
		p.write("...")
		p.typ(t.Type)
	case *ast.TupleType:
		p.write("[")
		p.typeList(t.Elems, ", ", nil)
		p.write("]")
	case *ast.NamedTupleMember:
		p.write(t.Label)
		if t.Optional {
			p.write("?")
		}
		p.write(": ")
		p.typ(t.Elem)
	case *ast.ArrayType:
		p.operand(t.Elem, wrapInPostfix)
		p.write("[]")
	case *ast.FunctionType:
		p.typeParams(t.TypeParams)
		p.params(t.Params)
		p.write(" => ")
		p.typ(t.Return)
	case *ast.ConstructorType:
		if t.Abstract {
			p.write("abstract ")
		}
		p.write("new ")
		p.typeParams(t.TypeParams)
		p.params(t.Params)
		p.write(" => ")
		p.typ(t.Return)
	case *ast.ConditionalType:
		p.operand(t.Check, wrapInUnion)
		p.write(" extends ")
		p.operand(t.Extends, wrapInUnion)
		p.write(" ? ")
		p.typ(t.True)
		p.write(" : ")
		p.typ(t.False)
	case *ast.InferType:
		p.write("infer ", t.Param.Name)
		if t.Param.Constraint != nil {
			p.write(" extends ")
			p.typ(t.Param.Constraint)
		}
	case *ast.ParenType:
		p.write("(")
		p.typ(t.Type)
		p.write(")")
	case *ast.TypeLiteral:
		if len(t.Members) == 0 {
			p.write("{}")
			return
		}
		p.write("{ ")
		for i, m := range t.Members {
			if i > 0 {
				p.write("; ")
			}
			p.typeMember(m)
		}
		p.write(" }")
	default:
		p.marker(t)
	}
}

func (p *printer) mappedType(t *ast.MappedType) {
	p.write("{ ")
	if t.Readonly != "" {
		p.write(t.Readonly, " ")
	}
	p.write("[", t.Param.Name, " in ")
	p.typ(t.Param.Constraint)
	if t.NameType != nil {
		p.write(" as ")
		p.typ(t.NameType)
	}
	p.write("]", t.Optional)
	if t.Type != nil {
		p.write(": ")
		p.typ(t.Type)
	}
	p.write(" }")
}

func (p *printer) entityName(n ast.Node) {
	switch n := n.(type) {
	case *ast.Identifier:
		p.write(n.Name)
	case *ast.StringLit:
		p.write(n.Raw)
	case *ast.QualifiedName:
		p.entityName(n.Left)
		p.write(".", n.Right.Name)
	case *ast.ImportType:
		p.typ(n)
	default:
		p.marker(n)
	}
}

func (p *printer) typeMember(m ast.TypeMember) {
	switch m := m.(type) {
	case *ast.PropertySignature:
		if m.Readonly {
			p.write("readonly ")
		}
		p.propertyKey(m.Key, m.Computed)
		if m.Optional {
			p.write("?")
		}
		p.annotation(m.TypeAnn)
	case *ast.MethodSignature:
		p.propertyKey(m.Key, m.Computed)
		if m.Optional {
			p.write("?")
		}
		p.typeParams(m.TypeParams)
		p.params(m.Params)
		p.annotation(m.ReturnType)
	case *ast.CallSignature:
		p.typeParams(m.TypeParams)
		p.params(m.Params)
		p.annotation(m.ReturnType)
	case *ast.ConstructSignature:
		p.write("new ")
		p.typeParams(m.TypeParams)
		p.params(m.Params)
		p.annotation(m.ReturnType)
	case *ast.IndexSignature:
		p.indexSignature(m)
	default:
		p.marker(m)
	}
}

func (p *printer) indexSignature(s *ast.IndexSignature) {
	if s.Readonly {
		p.write("readonly ")
	}
	p.write("[")
	p.pattern(s.Param)
	p.write("]")
	p.annotation(s.TypeAnn)
}
