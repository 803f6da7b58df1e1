// Package ast defines the program tree shared by the parser, the printer and
// the conversion passes.
//
// Every node type implements the sealed Node interface and reports a Kind from
// a closed enumeration. Kinds are classified once, here, so that the passes can
// dispatch on them exhaustively:
//
//   - runtime kinds: statements, expressions, patterns and class members that
//     survive erasure
//   - type-only kinds (Kind.TypeOnly): annotations, declarations and type
//     expressions with no runtime effect
//   - assertion kinds (Kind.Assertion): wrappers such as `x as T` whose inner
//     expression is live code
//
// This package imports nothing internal. The tree is owned by whichever pass
// holds it; passes mutate it in place through Rewrite.
package ast
