package infer

import (
	"strconv"

	"github.com/roach88/typeshift/internal/ast"
	"github.com/roach88/typeshift/internal/types"
)

// TypeNode builds the type expression that spells t. Function parameters are
// named arg0, arg1 and so on.
func TypeNode(t types.Type) ast.TypeNode {
	switch t := t.(type) {
	case *types.Array:
		return &ast.ArrayType{Elem: TypeNode(t.Elem)}
	case *types.Record:
		lit := &ast.TypeLiteral{}
		for _, f := range t.Fields {
			lit.Members = append(lit.Members, &ast.PropertySignature{
				Key:     fieldKey(f.Name),
				TypeAnn: Annotation(f.Type),
			})
		}
		return lit
	case *types.Function:
		fn := &ast.FunctionType{Return: TypeNode(t.Return)}
		for i, p := range t.Params {
			fn.Params = append(fn.Params, &ast.Identifier{
				Name:    "arg" + strconv.Itoa(i),
				TypeAnn: Annotation(p),
			})
		}
		return fn
	case nil:
		return &ast.KeywordType{Name: types.Unknown.String()}
	}
	return &ast.KeywordType{Name: t.String()}
}

// Annotation wraps TypeNode(t) for attachment to a binding or signature.
func Annotation(t types.Type) *ast.TypeAnnotation {
	return &ast.TypeAnnotation{Type: TypeNode(t)}
}

func fieldKey(name string) ast.Expr {
	if types.IsIdentifierName(name) {
		return &ast.Identifier{Name: name}
	}
	return &ast.StringLit{Raw: strconv.Quote(name), Value: name}
}
