// Package types defines the small lattice of type shapes produced by
// inference: primitives, arrays, records, functions and Unknown.
//
// Every operation is total. Unknown is the universal fallback; no function in
// this package returns an error.
package types

import (
	"strconv"
	"strings"
	"unicode"
)

// Type is a sealed interface over the lattice constructors.
type Type interface {
	String() string
	typ()
}

type primitive string

func (p primitive) String() string { return string(p) }
func (primitive) typ()             {}

// The primitive and fallback values. They are comparable with ==.
var (
	Number  Type = primitive("number")
	String  Type = primitive("string")
	Boolean Type = primitive("boolean")
	Unknown Type = primitive("unknown")
)

// Array is a homogeneous list of Elem.
type Array struct {
	Elem Type
}

// Field is one named member of a Record.
type Field struct {
	Name string
	Type Type
}

// Record is an object shape. Fields keep source order; names are unique.
type Record struct {
	Fields []Field
}

// Function is a callable with positional parameters.
type Function struct {
	Params []Type
	Return Type
}

func (*Array) typ()    {}
func (*Record) typ()   {}
func (*Function) typ() {}

// ArrayOf returns Array<elem>. A nil elem becomes Unknown.
func ArrayOf(elem Type) *Array {
	return &Array{Elem: orUnknown(elem)}
}

// FunctionOf returns a function with n Unknown parameters and the given return.
func FunctionOf(n int, ret Type) *Function {
	params := make([]Type, n)
	for i := range params {
		params[i] = Unknown
	}
	return &Function{Params: params, Return: orUnknown(ret)}
}

// Lookup returns the type of the named field.
func (r *Record) Lookup(name string) (Type, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return nil, false
}

func (a *Array) String() string {
	elem := orUnknown(a.Elem)
	if _, ok := elem.(*Function); ok {
		return "(" + elem.String() + ")[]"
	}
	return elem.String() + "[]"
}

func (r *Record) String() string {
	if len(r.Fields) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{ ")
	for i, f := range r.Fields {
		if i > 0 {
			b.WriteString("; ")
		}
		if IsIdentifierName(f.Name) {
			b.WriteString(f.Name)
		} else {
			b.WriteString(strconv.Quote(f.Name))
		}
		b.WriteString(": ")
		b.WriteString(orUnknown(f.Type).String())
	}
	b.WriteString(" }")
	return b.String()
}

func (f *Function) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, p := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("arg")
		b.WriteString(strconv.Itoa(i))
		b.WriteString(": ")
		b.WriteString(orUnknown(p).String())
	}
	b.WriteString(") => ")
	b.WriteString(orUnknown(f.Return).String())
	return b.String()
}

// SameShape reports whether a and b are structurally identical. Records match
// only when their field sets and per-field types match exactly, in any order.
// A nil Type is treated as Unknown.
func SameShape(a, b Type) bool {
	a, b = orUnknown(a), orUnknown(b)
	switch a := a.(type) {
	case primitive:
		bp, ok := b.(primitive)
		return ok && a == bp
	case *Array:
		bb, ok := b.(*Array)
		return ok && SameShape(a.Elem, bb.Elem)
	case *Record:
		bb, ok := b.(*Record)
		if !ok || len(a.Fields) != len(bb.Fields) {
			return false
		}
		for _, f := range a.Fields {
			other, found := bb.Lookup(f.Name)
			if !found || !SameShape(f.Type, other) {
				return false
			}
		}
		return true
	case *Function:
		bb, ok := b.(*Function)
		if !ok || len(a.Params) != len(bb.Params) {
			return false
		}
		for i := range a.Params {
			if !SameShape(a.Params[i], bb.Params[i]) {
				return false
			}
		}
		return SameShape(a.Return, bb.Return)
	}
	return false
}

// IsUnknown reports whether t carries no information.
func IsUnknown(t Type) bool {
	return t == nil || t == Unknown
}

func orUnknown(t Type) Type {
	if t == nil {
		return Unknown
	}
	return t
}

// IsIdentifierName reports whether name can be written as a bare property key.
func IsIdentifierName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '$' || r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
