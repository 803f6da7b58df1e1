package ast

// Kind tags every node in the program tree.
type Kind int

const (
	KindInvalid Kind = iota

	// Statements and declarations
	KindProgram
	KindVariableDeclaration
	KindVariableDeclarator
	KindFunctionDeclaration
	KindClassDeclaration
	KindReturnStatement
	KindIfStatement
	KindForStatement
	KindForInStatement
	KindForOfStatement
	KindWhileStatement
	KindDoWhileStatement
	KindBlockStatement
	KindExpressionStatement
	KindEmptyStatement
	KindBreakStatement
	KindContinueStatement
	KindThrowStatement
	KindTryStatement
	KindSwitchStatement
	KindSwitchCase
	KindLabeledStatement
	KindDebuggerStatement
	KindImportDeclaration
	KindExportNamedDeclaration
	KindExportDefaultDeclaration
	KindExportAllDeclaration

	// Class members
	KindClassMethod
	KindClassProperty

	// Expressions
	KindIdentifier
	KindPrivateName
	KindNumericLiteral
	KindBigIntLiteral
	KindStringLiteral
	KindBooleanLiteral
	KindNullLiteral
	KindRegExpLiteral
	KindTemplateLiteral
	KindTaggedTemplateExpression
	KindThisExpression
	KindSuper
	KindArrayExpression
	KindObjectExpression
	KindObjectProperty
	KindSpreadElement
	KindFunctionExpression
	KindArrowFunctionExpression
	KindClassExpression
	KindUnaryExpression
	KindUpdateExpression
	KindBinaryExpression
	KindLogicalExpression
	KindAssignmentExpression
	KindConditionalExpression
	KindCallExpression
	KindNewExpression
	KindMemberExpression
	KindSequenceExpression
	KindParenthesizedExpression
	KindYieldExpression
	KindAwaitExpression
	KindMetaProperty

	// Patterns
	KindObjectPattern
	KindArrayPattern
	KindAssignmentPattern
	KindRestElement

	// Type-only
	KindTypeAnnotation
	KindTypeParameterDeclaration
	KindTypeParameter
	KindTypeParameterInstantiation
	KindInterfaceDeclaration
	KindTypeAliasDeclaration
	KindEnumDeclaration
	KindEnumMember
	KindModuleDeclaration
	KindExpressionWithTypeArguments
	KindPropertySignature
	KindMethodSignature
	KindCallSignature
	KindConstructSignature
	KindIndexSignature
	KindTypeLiteral
	KindTypeReference
	KindQualifiedName
	KindKeywordType
	KindTypeQuery
	KindTypePredicate
	KindTypeOperator
	KindIndexedAccessType
	KindMappedType
	KindLiteralType
	KindImportType
	KindUnionType
	KindIntersectionType
	KindOptionalType
	KindRestType
	KindTupleType
	KindNamedTupleMember
	KindArrayType
	KindFunctionType
	KindConstructorType
	KindConditionalType
	KindInferType
	KindParenthesizedType

	// Assertion wrappers
	KindAsExpression
	KindSatisfiesExpression
	KindTypeAssertion
	KindNonNullExpression
	KindInstantiationExpression

	// Constructor parameter that also declares a field
	KindParameterProperty

	kindCount
)

var kindNames = [...]string{
	KindInvalid:                     "Invalid",
	KindProgram:                     "Program",
	KindVariableDeclaration:         "VariableDeclaration",
	KindVariableDeclarator:          "VariableDeclarator",
	KindFunctionDeclaration:         "FunctionDeclaration",
	KindClassDeclaration:            "ClassDeclaration",
	KindReturnStatement:             "ReturnStatement",
	KindIfStatement:                 "IfStatement",
	KindForStatement:                "ForStatement",
	KindForInStatement:              "ForInStatement",
	KindForOfStatement:              "ForOfStatement",
	KindWhileStatement:              "WhileStatement",
	KindDoWhileStatement:            "DoWhileStatement",
	KindBlockStatement:              "BlockStatement",
	KindExpressionStatement:         "ExpressionStatement",
	KindEmptyStatement:              "EmptyStatement",
	KindBreakStatement:              "BreakStatement",
	KindContinueStatement:           "ContinueStatement",
	KindThrowStatement:              "ThrowStatement",
	KindTryStatement:                "TryStatement",
	KindSwitchStatement:             "SwitchStatement",
	KindSwitchCase:                  "SwitchCase",
	KindLabeledStatement:            "LabeledStatement",
	KindDebuggerStatement:           "DebuggerStatement",
	KindImportDeclaration:           "ImportDeclaration",
	KindExportNamedDeclaration:      "ExportNamedDeclaration",
	KindExportDefaultDeclaration:    "ExportDefaultDeclaration",
	KindExportAllDeclaration:        "ExportAllDeclaration",
	KindClassMethod:                 "ClassMethod",
	KindClassProperty:               "ClassProperty",
	KindIdentifier:                  "Identifier",
	KindPrivateName:                 "PrivateName",
	KindNumericLiteral:              "NumericLiteral",
	KindBigIntLiteral:               "BigIntLiteral",
	KindStringLiteral:               "StringLiteral",
	KindBooleanLiteral:              "BooleanLiteral",
	KindNullLiteral:                 "NullLiteral",
	KindRegExpLiteral:               "RegExpLiteral",
	KindTemplateLiteral:             "TemplateLiteral",
	KindTaggedTemplateExpression:    "TaggedTemplateExpression",
	KindThisExpression:              "ThisExpression",
	KindSuper:                       "Super",
	KindArrayExpression:             "ArrayExpression",
	KindObjectExpression:            "ObjectExpression",
	KindObjectProperty:              "ObjectProperty",
	KindSpreadElement:               "SpreadElement",
	KindFunctionExpression:          "FunctionExpression",
	KindArrowFunctionExpression:     "ArrowFunctionExpression",
	KindClassExpression:             "ClassExpression",
	KindUnaryExpression:             "UnaryExpression",
	KindUpdateExpression:            "UpdateExpression",
	KindBinaryExpression:            "BinaryExpression",
	KindLogicalExpression:           "LogicalExpression",
	KindAssignmentExpression:        "AssignmentExpression",
	KindConditionalExpression:       "ConditionalExpression",
	KindCallExpression:              "CallExpression",
	KindNewExpression:               "NewExpression",
	KindMemberExpression:            "MemberExpression",
	KindSequenceExpression:          "SequenceExpression",
	KindParenthesizedExpression:     "ParenthesizedExpression",
	KindYieldExpression:             "YieldExpression",
	KindAwaitExpression:             "AwaitExpression",
	KindMetaProperty:                "MetaProperty",
	KindObjectPattern:               "ObjectPattern",
	KindArrayPattern:                "ArrayPattern",
	KindAssignmentPattern:           "AssignmentPattern",
	KindRestElement:                 "RestElement",
	KindTypeAnnotation:              "TSTypeAnnotation",
	KindTypeParameterDeclaration:    "TSTypeParameterDeclaration",
	KindTypeParameter:               "TSTypeParameter",
	KindTypeParameterInstantiation:  "TSTypeParameterInstantiation",
	KindInterfaceDeclaration:        "TSInterfaceDeclaration",
	KindTypeAliasDeclaration:        "TSTypeAliasDeclaration",
	KindEnumDeclaration:             "TSEnumDeclaration",
	KindEnumMember:                  "TSEnumMember",
	KindModuleDeclaration:           "TSModuleDeclaration",
	KindExpressionWithTypeArguments: "TSExpressionWithTypeArguments",
	KindPropertySignature:           "TSPropertySignature",
	KindMethodSignature:             "TSMethodSignature",
	KindCallSignature:               "TSCallSignatureDeclaration",
	KindConstructSignature:          "TSConstructSignatureDeclaration",
	KindIndexSignature:              "TSIndexSignature",
	KindTypeLiteral:                 "TSTypeLiteral",
	KindTypeReference:               "TSTypeReference",
	KindQualifiedName:               "TSQualifiedName",
	KindKeywordType:                 "TSKeywordType",
	KindTypeQuery:                   "TSTypeQuery",
	KindTypePredicate:               "TSTypePredicate",
	KindTypeOperator:                "TSTypeOperator",
	KindIndexedAccessType:           "TSIndexedAccessType",
	KindMappedType:                  "TSMappedType",
	KindLiteralType:                 "TSLiteralType",
	KindImportType:                  "TSImportType",
	KindUnionType:                   "TSUnionType",
	KindIntersectionType:            "TSIntersectionType",
	KindOptionalType:                "TSOptionalType",
	KindRestType:                    "TSRestType",
	KindTupleType:                   "TSTupleType",
	KindNamedTupleMember:            "TSNamedTupleMember",
	KindArrayType:                   "TSArrayType",
	KindFunctionType:                "TSFunctionType",
	KindConstructorType:             "TSConstructorType",
	KindConditionalType:             "TSConditionalType",
	KindInferType:                   "TSInferType",
	KindParenthesizedType:           "TSParenthesizedType",
	KindAsExpression:                "TSAsExpression",
	KindSatisfiesExpression:         "TSSatisfiesExpression",
	KindTypeAssertion:               "TSTypeAssertion",
	KindNonNullExpression:           "TSNonNullExpression",
	KindInstantiationExpression:     "TSInstantiationExpression",
	KindParameterProperty:           "TSParameterProperty",
}

// String returns the conventional ESTree/Babel name of the kind.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "Invalid"
	}
	return kindNames[k]
}

// TypeOnly reports whether nodes of this kind exist purely to express a type.
// Such nodes are removed outright by erasure.
func (k Kind) TypeOnly() bool {
	return k >= KindTypeAnnotation && k <= KindParenthesizedType
}

// Assertion reports whether the kind wraps a runtime expression with type
// information. Erasure replaces such nodes with the wrapped expression.
func (k Kind) Assertion() bool {
	return k >= KindAsExpression && k <= KindInstantiationExpression
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindInvalid + 1; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}
