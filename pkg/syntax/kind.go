package syntax

// Kind classifies a node by the grammar production it came from.
//
// Only the productions the rewriter inspects are enumerated. Every other
// production maps to KindOther, so switches over Kind always have a
// well-defined default arm.
type Kind uint8

// Node kinds.
const (
	KindOther Kind = iota

	KindProgram
	KindError

	// Module declarations.
	KindImportStatement
	KindImportClause
	KindNamedImports
	KindImportSpecifier
	KindNamespaceImport

	// Expressions.
	KindIdentifier
	KindPropertyIdentifier
	KindShorthandPropertyIdentifier
	KindString
	KindTemplateString
	KindMemberExpression
	KindCallExpression
	KindArguments
	KindTypeArguments
	KindTernaryExpression
	KindAssignmentExpression
	KindObject
	KindPair
	KindSpreadElement
	KindMethodDefinition

	// Declarations and statements.
	KindExpressionStatement
	KindVariableDeclarator
	KindObjectPattern
	KindPairPattern
	KindPublicFieldDefinition
	KindExportStatement

	// Tokens the rewriter cares about.
	KindComment
	KindStaticKeyword
	KindTypeKeyword
	KindTypeofKeyword
)

//nolint:gochecknoglobals // Read-only lookup table.
var namedKinds = map[string]Kind{
	"program":                       KindProgram,
	"ERROR":                         KindError,
	"import_statement":              KindImportStatement,
	"import_clause":                 KindImportClause,
	"named_imports":                 KindNamedImports,
	"import_specifier":              KindImportSpecifier,
	"namespace_import":              KindNamespaceImport,
	"identifier":                    KindIdentifier,
	"property_identifier":           KindPropertyIdentifier,
	"shorthand_property_identifier": KindShorthandPropertyIdentifier,
	"string":                        KindString,
	"template_string":               KindTemplateString,
	"member_expression":             KindMemberExpression,
	"call_expression":               KindCallExpression,
	"arguments":                     KindArguments,
	"type_arguments":                KindTypeArguments,
	"ternary_expression":            KindTernaryExpression,
	"assignment_expression":         KindAssignmentExpression,
	"object":                        KindObject,
	"pair":                          KindPair,
	"spread_element":                KindSpreadElement,
	"method_definition":             KindMethodDefinition,
	"expression_statement":          KindExpressionStatement,
	"variable_declarator":           KindVariableDeclarator,
	"object_pattern":                KindObjectPattern,
	"pair_pattern":                  KindPairPattern,
	"public_field_definition":       KindPublicFieldDefinition,
	"field_definition":              KindPublicFieldDefinition,
	"export_statement":              KindExportStatement,
	"comment":                       KindComment,
}

//nolint:gochecknoglobals // Read-only lookup table.
var tokenKinds = map[string]Kind{
	"static": KindStaticKeyword,
	"type":   KindTypeKeyword,
	"typeof": KindTypeofKeyword,
}

// KindOf maps a grammar node type to its Kind. Anonymous tokens only match
// the few keywords the rewriter inspects.
func KindOf(nodeType string, named bool) Kind {
	if named {
		if kind, ok := namedKinds[nodeType]; ok {
			return kind
		}
		return KindOther
	}
	if kind, ok := tokenKinds[nodeType]; ok {
		return kind
	}
	return KindOther
}

//nolint:gochecknoglobals // Read-only lookup table.
var kindNames = [...]string{
	KindOther:                       "Other",
	KindProgram:                     "Program",
	KindError:                       "Error",
	KindImportStatement:             "ImportStatement",
	KindImportClause:                "ImportClause",
	KindNamedImports:                "NamedImports",
	KindImportSpecifier:             "ImportSpecifier",
	KindNamespaceImport:             "NamespaceImport",
	KindIdentifier:                  "Identifier",
	KindPropertyIdentifier:          "PropertyIdentifier",
	KindShorthandPropertyIdentifier: "ShorthandPropertyIdentifier",
	KindString:                      "String",
	KindTemplateString:              "TemplateString",
	KindMemberExpression:            "MemberExpression",
	KindCallExpression:              "CallExpression",
	KindArguments:                   "Arguments",
	KindTypeArguments:               "TypeArguments",
	KindTernaryExpression:           "TernaryExpression",
	KindAssignmentExpression:        "AssignmentExpression",
	KindObject:                      "Object",
	KindPair:                        "Pair",
	KindSpreadElement:               "SpreadElement",
	KindMethodDefinition:            "MethodDefinition",
	KindExpressionStatement:         "ExpressionStatement",
	KindVariableDeclarator:          "VariableDeclarator",
	KindObjectPattern:               "ObjectPattern",
	KindPairPattern:                 "PairPattern",
	KindPublicFieldDefinition:       "PublicFieldDefinition",
	KindExportStatement:             "ExportStatement",
	KindComment:                     "Comment",
	KindStaticKeyword:               "StaticKeyword",
	KindTypeKeyword:                 "TypeKeyword",
	KindTypeofKeyword:               "TypeofKeyword",
}

// String returns the kind name without the Kind prefix.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}
