package printer

import (
	"strings"

	"github.com/roach88/typeshift/internal/ast"
)

// Binding strength, loosest first. An operand printed where a tighter level is
// required gets parentheses.
const (
	precSeq = iota + 1
	precAssign
	precCond
	precCoalesce
	precOr
	precAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precExponent
	precUnary
	precPostfix
	precNew
	precCall
	precPrimary
)

var binaryLevels = map[string]int{
	"??": precCoalesce,
	"||": precOr,
	"&&": precAnd,
	"|":  precBitOr,
	"^":  precBitXor,
	"&":  precBitAnd,
	"==": precEquality, "!=": precEquality, "===": precEquality, "!==": precEquality,
	"<": precRelational, ">": precRelational, "<=": precRelational, ">=": precRelational,
	"instanceof": precRelational, "in": precRelational,
	"<<": precShift, ">>": precShift, ">>>": precShift,
	"+": precAdditive, "-": precAdditive,
	"*": precMultiplicative, "/": precMultiplicative, "%": precMultiplicative,
	"**": precExponent,
}

func precedence(e ast.Expr) int {
	switch e := e.(type) {
	case *ast.SeqExpr:
		return precSeq
	case *ast.AssignExpr, *ast.ArrowFunc, *ast.YieldExpr, *ast.SpreadElement:
		return precAssign
	case *ast.CondExpr:
		return precCond
	case *ast.BinaryExpr:
		return binaryLevels[e.Op]
	case *ast.LogicalExpr:
		return binaryLevels[e.Op]
	case *ast.AsExpr, *ast.SatisfiesExpr:
		return precRelational
	case *ast.UnaryExpr, *ast.AwaitExpr, *ast.TypeAssertion:
		return precUnary
	case *ast.UpdateExpr:
		if e.Prefix {
			return precUnary
		}
		return precPostfix
	case *ast.NewExpr:
		if e.NoParens {
			return precNew
		}
		return precCall
	case *ast.CallExpr, *ast.MemberExpr, *ast.NonNullExpr, *ast.InstantiationExpr, *ast.TaggedTemplate:
		return precCall
	}
	return precPrimary
}

// expr writes e, parenthesized when it binds looser than minPrec.
func (p *printer) expr(e ast.Expr, minPrec int) {
	if e == nil {
		p.marker(nil)
		return
	}
	if precedence(e) < minPrec {
		p.write("(")
		p.exprInner(e)
		p.write(")")
		return
	}
	p.exprInner(e)
}

// exprStmt writes an expression statement. An expression that would start
// with `{`, `function` or `class` is parenthesized so it is not read as a
// declaration or block.
func (p *printer) exprStmt(e ast.Expr) {
	switch leftmost(e).(type) {
	case *ast.ObjectExpr, *ast.FuncExpr, *ast.ClassExpr, *ast.ObjectPattern:
		p.write("(")
		p.expr(e, precSeq)
		p.write(");")
		return
	}
	p.expr(e, precSeq)
	p.write(";")
}

// leftmost returns the sub-expression printed first.
func leftmost(e ast.Expr) ast.Expr {
	for {
		switch x := e.(type) {
		case *ast.BinaryExpr:
			e = x.Left
		case *ast.LogicalExpr:
			e = x.Left
		case *ast.AssignExpr:
			e = x.Left
		case *ast.CondExpr:
			e = x.Test
		case *ast.SeqExpr:
			e = x.Exprs[0]
		case *ast.MemberExpr:
			e = x.Object
		case *ast.CallExpr:
			e = x.Callee
		case *ast.TaggedTemplate:
			e = x.Tag
		case *ast.UpdateExpr:
			if x.Prefix {
				return e
			}
			e = x.Arg
		case *ast.AsExpr:
			e = x.Expr
		case *ast.SatisfiesExpr:
			e = x.Expr
		case *ast.NonNullExpr:
			e = x.Expr
		case *ast.InstantiationExpr:
			e = x.Expr
		default:
			return e
		}
	}
}

func (p *printer) exprInner(e ast.Expr) {
	switch e := e.(type) {
	case *ast.Identifier:
		p.write(e.Name)
	case *ast.PrivateName:
		p.write("#", e.Name)
	case *ast.NumberLit:
		p.write(e.Raw)
	case *ast.BigIntLit:
		p.write(e.Raw)
	case *ast.StringLit:
		p.write(e.Raw)
	case *ast.BoolLit:
		if e.Value {
			p.write("true")
		} else {
			p.write("false")
		}
	case *ast.NullLit:
		p.write("null")
	case *ast.RegexLit:
		p.write(e.Raw)
	case *ast.TemplateLit:
		p.template(e)
	case *ast.TaggedTemplate:
		p.expr(e.Tag, precCall)
		p.typeArgs(e.TypeArgs)
		p.template(e.Quasi)
	case *ast.ThisExpr:
		p.write("this")
	case *ast.SuperExpr:
		p.write("super")
	case *ast.ArrayExpr:
		p.array(e)
	case *ast.ObjectExpr:
		p.object(e.Props, e.Multiline)
	case *ast.SpreadElement:
		p.write("...")
		p.expr(e.Arg, precAssign)
	case *ast.FuncExpr:
		p.function(&e.Function, "function")
	case *ast.ArrowFunc:
		p.arrow(e)
	case *ast.ClassExpr:
		p.class(&e.Class)
	case *ast.UnaryExpr:
		p.write(e.Op)
		if len(e.Op) > 1 || unarySpace(e.Op, e.Arg) {
			p.write(" ")
		}
		p.expr(e.Arg, precUnary)
	case *ast.UpdateExpr:
		if e.Prefix {
			p.write(e.Op)
			p.expr(e.Arg, precUnary)
		} else {
			p.expr(e.Arg, precCall)
			p.write(e.Op)
		}
	case *ast.BinaryExpr:
		p.binary(e.Op, e.Left, e.Right)
	case *ast.LogicalExpr:
		p.binary(e.Op, e.Left, e.Right)
	case *ast.AssignExpr:
		p.expr(e.Left, precCall)
		p.write(" ", e.Op, " ")
		p.expr(e.Right, precAssign)
	case *ast.CondExpr:
		p.expr(e.Test, precCoalesce)
		p.write(" ? ")
		p.expr(e.Cons, precAssign)
		p.write(" : ")
		p.expr(e.Alt, precAssign)
	case *ast.CallExpr:
		p.expr(e.Callee, precCall)
		if e.Optional {
			p.write("?.")
		}
		p.typeArgs(e.TypeArgs)
		p.args(e.Args)
	case *ast.NewExpr:
		p.write("new ")
		if _, isCall := e.Callee.(*ast.CallExpr); isCall {
			p.write("(")
			p.expr(e.Callee, precSeq)
			p.write(")")
		} else {
			p.expr(e.Callee, precCall)
		}
		p.typeArgs(e.TypeArgs)
		if !e.NoParens {
			p.args(e.Args)
		}
	case *ast.MemberExpr:
		p.memberExpr(e)
	case *ast.SeqExpr:
		for i, x := range e.Exprs {
			if i > 0 {
				p.write(", ")
			}
			p.expr(x, precAssign)
		}
	case *ast.ParenExpr:
		p.write("(")
		p.expr(e.Expr, precSeq)
		p.write(")")
	case *ast.YieldExpr:
		p.write("yield")
		if e.Delegate {
			p.write("*")
		}
		if e.Arg != nil {
			p.write(" ")
			p.expr(e.Arg, precAssign)
		}
	case *ast.AwaitExpr:
		p.write("await ")
		p.expr(e.Arg, precUnary)
	case *ast.MetaProperty:
		p.write(e.Meta, ".", e.Property)
	case *ast.ObjectPattern, *ast.ArrayPattern, *ast.AssignPattern, *ast.RestElement:
		p.pattern(e.(ast.Pattern))
	case *ast.AsExpr:
		p.expr(e.Expr, precRelational)
		p.write(" as ")
		p.typ(e.Type)
	case *ast.SatisfiesExpr:
		p.expr(e.Expr, precRelational)
		p.write(" satisfies ")
		p.typ(e.Type)
	case *ast.TypeAssertion:
		p.write("<")
		p.typ(e.Type)
		p.write(">")
		p.expr(e.Expr, precUnary)
	case *ast.NonNullExpr:
		p.expr(e.Expr, precCall)
		p.write("!")
	case *ast.InstantiationExpr:
		p.expr(e.Expr, precCall)
		p.typeArgs(e.TypeArgs)
	default:
		p.marker(e)
	}
}

// unarySpace reports whether `op arg` needs a space so that, for example,
// `- -x` is not printed as `--x`.
func unarySpace(op string, arg ast.Expr) bool {
	switch a := arg.(type) {
	case *ast.UnaryExpr:
		return a.Op == op
	case *ast.UpdateExpr:
		return a.Prefix && a.Op[:1] == op
	}
	return false
}

func (p *printer) binary(op string, left, right ast.Expr) {
	level := binaryLevels[op]
	leftMin, rightMin := level, level+1
	if op == "**" {
		leftMin, rightMin = precPostfix, level
	}
	p.expr(left, leftMin)
	p.write(" ", op, " ")
	p.expr(right, rightMin)
}

func (p *printer) memberExpr(e *ast.MemberExpr) {
	if n, ok := e.Object.(*ast.NumberLit); ok && !e.Computed && isPlainInteger(n.Raw) {
		p.write("(", n.Raw, ")")
	} else {
		p.expr(e.Object, precCall)
	}
	if e.Computed {
		if e.Optional {
			p.write("?.")
		}
		p.write("[")
		p.expr(e.Property, precSeq)
		p.write("]")
		return
	}
	if e.Optional {
		p.write("?.")
	} else {
		p.write(".")
	}
	p.expr(e.Property, precPrimary)
}

// isPlainInteger reports whether a member access on the literal needs
// parentheses, as in `(1).toString()`.
func isPlainInteger(raw string) bool {
	return !strings.ContainsAny(raw, ".eExXoObBn")
}

func (p *printer) args(args []ast.Expr) {
	p.write("(")
	for i, a := range args {
		if i > 0 {
			p.write(", ")
		}
		p.expr(a, precAssign)
	}
	p.write(")")
}

func (p *printer) template(t *ast.TemplateLit) {
	p.write("`")
	for i, q := range t.Quasis {
		p.write(q)
		if i < len(t.Exprs) {
			p.write("${")
			p.expr(t.Exprs[i], precSeq)
			p.write("}")
		}
	}
	p.write("`")
}

func (p *printer) array(a *ast.ArrayExpr) {
	if len(a.Elems) == 0 {
		p.write("[]")
		return
	}
	elem := func(i int, e ast.Expr) {
		if e != nil {
			p.expr(e, precAssign)
		}
		if e == nil && i == len(a.Elems)-1 {
			p.write(",")
		}
	}
	if a.Multiline {
		p.write("[")
		p.withIndent(func() {
			for i, e := range a.Elems {
				p.nl()
				elem(i, e)
				if i < len(a.Elems)-1 {
					p.write(",")
				}
			}
		})
		p.nl()
		p.write("]")
		return
	}
	p.write("[")
	for i, e := range a.Elems {
		if i > 0 {
			p.write(", ")
		}
		elem(i, e)
	}
	p.write("]")
}

func (p *printer) object(props []ast.Node, multiline bool) {
	if len(props) == 0 {
		p.write("{}")
		return
	}
	if multiline {
		p.write("{")
		p.withIndent(func() {
			for i, prop := range props {
				p.nl()
				p.objectMember(prop)
				if i < len(props)-1 {
					p.write(",")
				}
			}
		})
		p.nl()
		p.write("}")
		return
	}
	p.write("{ ")
	for i, prop := range props {
		if i > 0 {
			p.write(", ")
		}
		p.objectMember(prop)
	}
	p.write(" }")
}

func (p *printer) objectMember(n ast.Node) {
	switch m := n.(type) {
	case *ast.Property:
		p.property(m)
	case *ast.SpreadElement:
		p.write("...")
		p.expr(m.Arg, precAssign)
	case *ast.RestElement:
		p.pattern(m)
	default:
		p.marker(n)
	}
}

func (p *printer) property(prop *ast.Property) {
	switch prop.PropKind {
	case "get", "set", "method":
		fn, ok := prop.Value.(*ast.FuncExpr)
		if !ok {
			p.marker(prop.Value)
			return
		}
		if prop.PropKind != "method" {
			p.write(prop.PropKind, " ")
		}
		if fn.Async {
			p.write("async ")
		}
		if fn.Generator {
			p.write("*")
		}
		p.propertyKey(prop.Key, prop.Computed)
		p.signature(&fn.Function)
		p.write(" ")
		p.block(fn.Body)
		return
	}
	if prop.Shorthand {
		if ap, ok := prop.Value.(*ast.AssignPattern); ok {
			p.pattern(ap)
			return
		}
		p.propertyKey(prop.Key, false)
		return
	}
	p.propertyKey(prop.Key, prop.Computed)
	p.write(": ")
	p.expr(prop.Value, precAssign)
}

func (p *printer) arrow(a *ast.ArrowFunc) {
	if a.Async {
		p.write("async ")
	}
	p.typeParams(a.TypeParams)
	p.params(a.Params)
	p.annotation(a.ReturnType)
	p.write(" => ")
	if a.Body != nil {
		p.block(a.Body)
		return
	}
	if _, isObj := leftmost(a.Expr).(*ast.ObjectExpr); isObj {
		p.write("(")
		p.expr(a.Expr, precSeq)
		p.write(")")
		return
	}
	p.expr(a.Expr, precAssign)
}

// ---------------------------------------------------------------------------
// patterns

func (p *printer) pattern(pat ast.Pattern) {
	switch pat := pat.(type) {
	case *ast.Identifier:
		p.write(pat.Name)
		if pat.Optional {
			p.write("?")
		}
		p.annotation(pat.TypeAnn)
	case *ast.ObjectPattern:
		p.object(pat.Props, false)
		p.annotation(pat.TypeAnn)
	case *ast.ArrayPattern:
		p.write("[")
		for i, e := range pat.Elems {
			if i > 0 {
				p.write(", ")
			}
			if e != nil {
				p.pattern(e)
			} else if i == len(pat.Elems)-1 {
				p.write(",")
			}
		}
		p.write("]")
		p.annotation(pat.TypeAnn)
	case *ast.AssignPattern:
		p.pattern(pat.Left)
		p.write(" = ")
		p.expr(pat.Right, precAssign)
	case *ast.RestElement:
		p.write("...")
		p.pattern(pat.Arg)
		p.annotation(pat.TypeAnn)
	case *ast.ParamProperty:
		p.modifiers(pat.Modifiers, false)
		p.pattern(pat.Param)
	case ast.Expr:
		p.expr(pat, precCall)
	default:
		p.marker(pat)
	}
}

// bindingWithAnn writes a declarator target, placing the definite assignment
// marker between the name and its annotation.
func (p *printer) bindingWithAnn(target ast.Pattern, definite bool) {
	id, ok := target.(*ast.Identifier)
	if !ok || !definite {
		p.pattern(target)
		return
	}
	p.write(id.Name, "!")
	p.annotation(id.TypeAnn)
}
