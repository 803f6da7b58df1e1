package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rec(fields ...Field) *Record { return &Record{Fields: fields} }

func TestSameShape(t *testing.T) {
	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"same primitive", Number, Number, true},
		{"different primitive", Number, String, false},
		{"unknown equals unknown", Unknown, Unknown, true},
		{"nil is unknown", nil, Unknown, true},
		{"arrays of same elem", ArrayOf(Number), ArrayOf(Number), true},
		{"arrays of different elem", ArrayOf(Number), ArrayOf(String), false},
		{"array vs primitive", ArrayOf(Number), Number, false},
		{
			"records ignore field order",
			rec(Field{"a", Number}, Field{"b", String}),
			rec(Field{"b", String}, Field{"a", Number}),
			true,
		},
		{
			"records with extra field",
			rec(Field{"a", Number}),
			rec(Field{"a", Number}, Field{"b", String}),
			false,
		},
		{
			"records with different field type",
			rec(Field{"a", Number}),
			rec(Field{"a", Boolean}),
			false,
		},
		{"empty records", rec(), rec(), true},
		{"functions same arity", FunctionOf(2, nil), FunctionOf(2, Unknown), true},
		{"functions different arity", FunctionOf(1, nil), FunctionOf(2, nil), false},
		{"function vs record", FunctionOf(0, nil), rec(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SameShape(tt.a, tt.b))
			assert.Equal(t, tt.want, SameShape(tt.b, tt.a), "symmetry")
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{Number, "number"},
		{Unknown, "unknown"},
		{ArrayOf(String), "string[]"},
		{ArrayOf(ArrayOf(Number)), "number[][]"},
		{ArrayOf(FunctionOf(0, nil)), "(() => unknown)[]"},
		{rec(Field{"name", String}, Field{"age", Number}), "{ name: string; age: number }"},
		{rec(Field{"my-key", Boolean}), `{ "my-key": boolean }`},
		{rec(), "{}"},
		{FunctionOf(2, Number), "(arg0: unknown, arg1: unknown) => number"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}
}

func TestIsUnknown(t *testing.T) {
	assert.True(t, IsUnknown(nil))
	assert.True(t, IsUnknown(Unknown))
	assert.False(t, IsUnknown(Number))
	assert.False(t, IsUnknown(ArrayOf(Unknown)))
}

func TestIsIdentifierName(t *testing.T) {
	assert.True(t, IsIdentifierName("name"))
	assert.True(t, IsIdentifierName("$el"))
	assert.True(t, IsIdentifierName("_x1"))
	assert.False(t, IsIdentifierName("1x"))
	assert.False(t, IsIdentifierName("my-key"))
	assert.False(t, IsIdentifierName(""))
}
