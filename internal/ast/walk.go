package ast

import "reflect"

// Visitor is called for every node of a tree in pre-order. It returns the node
// that should occupy the visited slot:
//
//   - the node itself, whose children are then visited;
//   - a different node, which is visited in turn before descending into it;
//   - nil, which removes the node and skips its subtree.
//
// A replacement that does not fit the slot's static type is ignored and the
// original node is kept. Removing a node from a slot that must be filled keeps
// the original node too, except for statement slots, which receive an empty
// statement.
type Visitor func(Node) Node

// Rewrite applies v to root and all of its descendants and returns the node
// that now occupies the root slot.
func Rewrite(root Node, v Visitor) Node {
	w := func(n Node) (Node, bool) { return v(n), true }
	return visit(root, w)
}

// Inspect calls f for every node in pre-order. When f returns false the
// children of that node are skipped. Inspect never modifies the tree.
func Inspect(root Node, f func(Node) bool) {
	w := func(n Node) (Node, bool) { return n, f(n) }
	visit(root, w)
}

type walker func(Node) (Node, bool)

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	rv := reflect.ValueOf(n)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// visit processes one optional slot. The zero T is returned on removal.
func visit[T Node](slot T, w walker) T {
	if isNil(slot) {
		return slot
	}
	var cur Node = slot
	for {
		next, descend := w(cur)
		if isNil(next) {
			var zero T
			return zero
		}
		if next != cur {
			if _, ok := next.(T); !ok {
				return slot
			}
			cur = next
			continue
		}
		if descend {
			children(cur, w)
		}
		return cur.(T)
	}
}

// must processes a slot that cannot be left empty.
func must[T Node](slot T, w walker) T {
	out := visit(slot, w)
	if isNil(out) {
		return slot
	}
	return out
}

// stmt processes a single statement slot; removal leaves an empty statement.
func stmt(slot Stmt, w walker) Stmt {
	if isNil(slot) {
		return slot
	}
	out := visit(slot, w)
	if isNil(out) {
		return &EmptyStmt{Loc: Loc{Start: slot.Pos()}}
	}
	return out
}

// list processes a slice slot, dropping removed entries. The slice is only
// reallocated when an entry changes.
func list[T Node](items []T, w walker) []T {
	var out []T
	changed := false
	for i, it := range items {
		r := visit(it, w)
		if !changed && (isNil(r) || Node(r) != Node(it)) {
			changed = true
			out = append(make([]T, 0, len(items)), items[:i]...)
		}
		if changed && !isNil(r) {
			out = append(out, r)
		}
	}
	if !changed {
		return items
	}
	return out
}

// holes processes a slice whose nil entries are meaningful (array holes).
// Entries are never dropped.
func holes[T Node](items []T, w walker) []T {
	for i, it := range items {
		if isNil(it) {
			continue
		}
		items[i] = must(it, w)
	}
	return items
}

// children visits the child slots of n. The switch is exhaustive over every
// node type in the package.
func children(n Node, w walker) {
	switch n := n.(type) {
	case *Program:
		n.Body = list(n.Body, w)

	// statements
	case *VarDecl:
		n.Decls = list(n.Decls, w)
	case *VarDeclarator:
		n.ID = must(n.ID, w)
		n.Init = visit(n.Init, w)
	case *FuncDecl:
		function(&n.Function, w)
	case *ClassDecl:
		class(&n.Class, w)
	case *ReturnStmt:
		n.Arg = visit(n.Arg, w)
	case *IfStmt:
		n.Test = must(n.Test, w)
		n.Cons = stmt(n.Cons, w)
		n.Alt = stmt(n.Alt, w)
	case *ForStmt:
		n.Init = visit(n.Init, w)
		n.Test = visit(n.Test, w)
		n.Update = visit(n.Update, w)
		n.Body = stmt(n.Body, w)
	case *ForInStmt:
		n.Left = must(n.Left, w)
		n.Right = must(n.Right, w)
		n.Body = stmt(n.Body, w)
	case *ForOfStmt:
		n.Left = must(n.Left, w)
		n.Right = must(n.Right, w)
		n.Body = stmt(n.Body, w)
	case *WhileStmt:
		n.Test = must(n.Test, w)
		n.Body = stmt(n.Body, w)
	case *DoWhileStmt:
		n.Body = stmt(n.Body, w)
		n.Test = must(n.Test, w)
	case *BlockStmt:
		n.Body = list(n.Body, w)
	case *ExprStmt:
		n.Expr = must(n.Expr, w)
	case *EmptyStmt, *BreakStmt, *ContinueStmt, *DebuggerStmt:
	case *ThrowStmt:
		n.Arg = must(n.Arg, w)
	case *TryStmt:
		n.Block = must(n.Block, w)
		n.Param = visit(n.Param, w)
		n.Handler = visit(n.Handler, w)
		n.Finalizer = visit(n.Finalizer, w)
	case *SwitchStmt:
		n.Disc = must(n.Disc, w)
		n.Cases = list(n.Cases, w)
	case *SwitchCase:
		n.Test = visit(n.Test, w)
		n.Body = list(n.Body, w)
	case *LabeledStmt:
		n.Body = stmt(n.Body, w)
	case *ImportDecl:
		n.Source = must(n.Source, w)
	case *ExportNamedDecl:
		n.Decl = visit(n.Decl, w)
		n.Source = visit(n.Source, w)
	case *ExportDefaultDecl:
		n.Decl = must(n.Decl, w)
	case *ExportAllDecl:
		n.Source = must(n.Source, w)

	// class members
	case *ClassMethod:
		n.Key = must(n.Key, w)
		function(&n.Function, w)
	case *ClassProperty:
		n.Key = must(n.Key, w)
		n.TypeAnn = visit(n.TypeAnn, w)
		n.Value = visit(n.Value, w)

	// expressions
	case *Identifier:
		n.TypeAnn = visit(n.TypeAnn, w)
	case *PrivateName, *NumberLit, *BigIntLit, *StringLit, *BoolLit, *NullLit,
		*RegexLit, *ThisExpr, *SuperExpr, *MetaProperty:
	case *TemplateLit:
		n.Exprs = holes(n.Exprs, w)
	case *TaggedTemplate:
		n.Tag = must(n.Tag, w)
		n.TypeArgs = visit(n.TypeArgs, w)
		n.Quasi = must(n.Quasi, w)
	case *ArrayExpr:
		n.Elems = holes(n.Elems, w)
	case *ObjectExpr:
		n.Props = list(n.Props, w)
	case *Property:
		n.Key = must(n.Key, w)
		n.Value = must(n.Value, w)
	case *SpreadElement:
		n.Arg = must(n.Arg, w)
	case *FuncExpr:
		function(&n.Function, w)
	case *ArrowFunc:
		n.TypeParams = visit(n.TypeParams, w)
		n.Params = list(n.Params, w)
		n.ReturnType = visit(n.ReturnType, w)
		n.Body = visit(n.Body, w)
		n.Expr = visit(n.Expr, w)
	case *ClassExpr:
		class(&n.Class, w)
	case *UnaryExpr:
		n.Arg = must(n.Arg, w)
	case *UpdateExpr:
		n.Arg = must(n.Arg, w)
	case *BinaryExpr:
		n.Left = must(n.Left, w)
		n.Right = must(n.Right, w)
	case *LogicalExpr:
		n.Left = must(n.Left, w)
		n.Right = must(n.Right, w)
	case *AssignExpr:
		n.Left = must(n.Left, w)
		n.Right = must(n.Right, w)
	case *CondExpr:
		n.Test = must(n.Test, w)
		n.Cons = must(n.Cons, w)
		n.Alt = must(n.Alt, w)
	case *CallExpr:
		n.Callee = must(n.Callee, w)
		n.TypeArgs = visit(n.TypeArgs, w)
		n.Args = holes(n.Args, w)
	case *NewExpr:
		n.Callee = must(n.Callee, w)
		n.TypeArgs = visit(n.TypeArgs, w)
		n.Args = holes(n.Args, w)
	case *MemberExpr:
		n.Object = must(n.Object, w)
		n.Property = must(n.Property, w)
	case *SeqExpr:
		n.Exprs = holes(n.Exprs, w)
	case *ParenExpr:
		n.Expr = must(n.Expr, w)
	case *YieldExpr:
		n.Arg = visit(n.Arg, w)
	case *AwaitExpr:
		n.Arg = must(n.Arg, w)

	// patterns
	case *ObjectPattern:
		n.Props = list(n.Props, w)
		n.TypeAnn = visit(n.TypeAnn, w)
	case *ArrayPattern:
		n.Elems = holes(n.Elems, w)
		n.TypeAnn = visit(n.TypeAnn, w)
	case *AssignPattern:
		n.Left = must(n.Left, w)
		n.Right = must(n.Right, w)
	case *RestElement:
		n.Arg = must(n.Arg, w)
		n.TypeAnn = visit(n.TypeAnn, w)

	// assertion wrappers
	case *AsExpr:
		n.Expr = must(n.Expr, w)
		n.Type = must(n.Type, w)
	case *SatisfiesExpr:
		n.Expr = must(n.Expr, w)
		n.Type = must(n.Type, w)
	case *TypeAssertion:
		n.Type = must(n.Type, w)
		n.Expr = must(n.Expr, w)
	case *NonNullExpr:
		n.Expr = must(n.Expr, w)
	case *InstantiationExpr:
		n.Expr = must(n.Expr, w)
		n.TypeArgs = must(n.TypeArgs, w)
	case *ParamProperty:
		n.Param = must(n.Param, w)

	// type-only
	case *TypeAnnotation:
		n.Type = must(n.Type, w)
	case *TypeParamDecl:
		n.Params = list(n.Params, w)
	case *TypeParam:
		n.Constraint = visit(n.Constraint, w)
		n.Default = visit(n.Default, w)
	case *TypeArgs:
		n.Params = list(n.Params, w)
	case *InterfaceDecl:
		n.Name = must(n.Name, w)
		n.TypeParams = visit(n.TypeParams, w)
		n.Extends = list(n.Extends, w)
		n.Body = list(n.Body, w)
	case *TypeAliasDecl:
		n.Name = must(n.Name, w)
		n.TypeParams = visit(n.TypeParams, w)
		n.Type = must(n.Type, w)
	case *EnumDecl:
		n.Name = must(n.Name, w)
		n.Members = list(n.Members, w)
	case *EnumMember:
		n.Name = must(n.Name, w)
		n.Init = visit(n.Init, w)
	case *ModuleDecl:
		n.Name = visit(n.Name, w)
		n.Body = list(n.Body, w)
	case *ExprWithTypeArgs:
		n.Expr = must(n.Expr, w)
		n.TypeArgs = visit(n.TypeArgs, w)
	case *PropertySignature:
		n.Key = must(n.Key, w)
		n.TypeAnn = visit(n.TypeAnn, w)
	case *MethodSignature:
		n.Key = must(n.Key, w)
		n.TypeParams = visit(n.TypeParams, w)
		n.Params = list(n.Params, w)
		n.ReturnType = visit(n.ReturnType, w)
	case *CallSignature:
		n.TypeParams = visit(n.TypeParams, w)
		n.Params = list(n.Params, w)
		n.ReturnType = visit(n.ReturnType, w)
	case *ConstructSignature:
		n.TypeParams = visit(n.TypeParams, w)
		n.Params = list(n.Params, w)
		n.ReturnType = visit(n.ReturnType, w)
	case *IndexSignature:
		n.Param = must(n.Param, w)
		n.TypeAnn = visit(n.TypeAnn, w)
	case *TypeLiteral:
		n.Members = list(n.Members, w)
	case *TypeRef:
		n.Name = must(n.Name, w)
		n.TypeArgs = visit(n.TypeArgs, w)
	case *QualifiedName:
		n.Left = must(n.Left, w)
		n.Right = must(n.Right, w)
	case *KeywordType:
	case *TypeQuery:
		n.Expr = must(n.Expr, w)
		n.TypeArgs = visit(n.TypeArgs, w)
	case *TypePredicate:
		n.Type = visit(n.Type, w)
	case *TypeOperator:
		n.Type = must(n.Type, w)
	case *IndexedAccessType:
		n.Object = must(n.Object, w)
		n.Index = must(n.Index, w)
	case *MappedType:
		n.Param = must(n.Param, w)
		n.NameType = visit(n.NameType, w)
		n.Type = visit(n.Type, w)
	case *LiteralType:
		n.Literal = must(n.Literal, w)
	case *ImportType:
		n.Arg = must(n.Arg, w)
		n.Qualifier = visit(n.Qualifier, w)
		n.TypeArgs = visit(n.TypeArgs, w)
	case *UnionType:
		n.Types = list(n.Types, w)
	case *IntersectionType:
		n.Types = list(n.Types, w)
	case *OptionalType:
		n.Type = must(n.Type, w)
	case *RestType:
		n.Type = must(n.Type, w)
	case *TupleType:
		n.Elems = list(n.Elems, w)
	case *NamedTupleMember:
		n.Elem = must(n.Elem, w)
	case *ArrayType:
		n.Elem = must(n.Elem, w)
	case *FunctionType:
		n.TypeParams = visit(n.TypeParams, w)
		n.Params = list(n.Params, w)
		n.Return = must(n.Return, w)
	case *ConstructorType:
		n.TypeParams = visit(n.TypeParams, w)
		n.Params = list(n.Params, w)
		n.Return = must(n.Return, w)
	case *ConditionalType:
		n.Check = must(n.Check, w)
		n.Extends = must(n.Extends, w)
		n.True = must(n.True, w)
		n.False = must(n.False, w)
	case *InferType:
		n.Param = must(n.Param, w)
	case *ParenType:
		n.Type = must(n.Type, w)
	}
}

func function(f *Function, w walker) {
	f.Name = visit(f.Name, w)
	f.TypeParams = visit(f.TypeParams, w)
	f.Params = list(f.Params, w)
	f.ReturnType = visit(f.ReturnType, w)
	f.Body = visit(f.Body, w)
}

func class(c *Class, w walker) {
	c.Name = visit(c.Name, w)
	c.TypeParams = visit(c.TypeParams, w)
	c.SuperClass = visit(c.SuperClass, w)
	c.SuperTypeArgs = visit(c.SuperTypeArgs, w)
	c.Implements = list(c.Implements, w)
	c.Members = list(c.Members, w)
}
