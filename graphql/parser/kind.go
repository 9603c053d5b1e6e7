package parser

// SyntaxKind tags every node and leaf in the tree. The set is flat: the shape
// of the tree, not the kind, encodes the grammar structure.
type SyntaxKind int

const (
	KindError SyntaxKind = iota

	// Leaves
	KindIdent
	KindIntToken
	KindFloatToken
	KindStringToken
	KindBang
	KindDollar
	KindAmp
	KindSpread
	KindComma
	KindColon
	KindEq
	KindAt
	KindLParen
	KindRParen
	KindLBracket
	KindRBracket
	KindLCurly
	KindRCurly
	KindPipe

	// Keywords
	KindQueryKW
	KindMutationKW
	KindSubscriptionKW
	KindFragmentKW
	KindOnKW
	KindTrueKW
	KindFalseKW
	KindNullKW
	KindSchemaKW
	KindExtendKW
	KindScalarKW
	KindTypeKW
	KindImplementsKW
	KindInterfaceKW
	KindUnionKW
	KindEnumKW
	KindInputKW
	KindDirectiveKW
	KindRepeatableKW

	// Nodes
	KindDocument
	KindName
	KindDescription

	// Executable definitions
	KindOperationDefinition
	KindOperationType
	KindVariableDefinitions
	KindVariableDefinition
	KindVariable
	KindDefaultValue
	KindSelectionSet
	KindField
	KindAlias
	KindArguments
	KindArgument
	KindFragmentSpread
	KindInlineFragment
	KindFragmentDefinition
	KindFragmentName
	KindTypeCondition

	// Values
	KindValue
	KindIntValue
	KindFloatValue
	KindStringValue
	KindBooleanValue
	KindNullValue
	KindEnumValue
	KindListValue
	KindObjectValue
	KindObjectField

	// Types
	KindType
	KindNamedType
	KindListType
	KindNonNullType

	// Directives
	KindDirectives
	KindDirective
	KindDirectiveDefinition
	KindDirectiveLocations
	KindDirectiveLocation

	// Type system definitions
	KindSchemaDefinition
	KindRootOperationTypeDefinition
	KindScalarTypeDefinition
	KindObjectTypeDefinition
	KindImplementsInterfaces
	KindFieldsDefinition
	KindFieldDefinition
	KindArgumentsDefinition
	KindInputValueDefinition
	KindInterfaceTypeDefinition
	KindUnionTypeDefinition
	KindUnionMemberTypes
	KindEnumTypeDefinition
	KindEnumValuesDefinition
	KindEnumValueDefinition
	KindInputObjectTypeDefinition
	KindInputFieldsDefinition

	// Type system extensions
	KindSchemaExtension
	KindScalarTypeExtension
	KindObjectTypeExtension
	KindInterfaceTypeExtension
	KindUnionTypeExtension
	KindEnumTypeExtension
	KindInputObjectTypeExtension
)

var syntaxKindNames = map[SyntaxKind]string{
	KindError:                       "ERROR",
	KindIdent:                       "IDENT",
	KindIntToken:                    "INT",
	KindFloatToken:                  "FLOAT",
	KindStringToken:                 "STRING",
	KindBang:                        "BANG",
	KindDollar:                      "DOLLAR",
	KindAmp:                         "AMP",
	KindSpread:                      "SPREAD",
	KindComma:                       "COMMA",
	KindColon:                       "COLON",
	KindEq:                          "EQ",
	KindAt:                          "AT",
	KindLParen:                      "L_PAREN",
	KindRParen:                      "R_PAREN",
	KindLBracket:                    "L_BRACK",
	KindRBracket:                    "R_BRACK",
	KindLCurly:                      "L_CURLY",
	KindRCurly:                      "R_CURLY",
	KindPipe:                        "PIPE",
	KindQueryKW:                     "query_KW",
	KindMutationKW:                  "mutation_KW",
	KindSubscriptionKW:              "subscription_KW",
	KindFragmentKW:                  "fragment_KW",
	KindOnKW:                        "on_KW",
	KindTrueKW:                      "true_KW",
	KindFalseKW:                     "false_KW",
	KindNullKW:                      "null_KW",
	KindSchemaKW:                    "schema_KW",
	KindExtendKW:                    "extend_KW",
	KindScalarKW:                    "scalar_KW",
	KindTypeKW:                      "type_KW",
	KindImplementsKW:                "implements_KW",
	KindInterfaceKW:                 "interface_KW",
	KindUnionKW:                     "union_KW",
	KindEnumKW:                      "enum_KW",
	KindInputKW:                     "input_KW",
	KindDirectiveKW:                 "directive_KW",
	KindRepeatableKW:                "repeatable_KW",
	KindDocument:                    "DOCUMENT",
	KindName:                        "NAME",
	KindDescription:                 "DESCRIPTION",
	KindOperationDefinition:         "OPERATION_DEFINITION",
	KindOperationType:               "OPERATION_TYPE",
	KindVariableDefinitions:         "VARIABLE_DEFINITIONS",
	KindVariableDefinition:          "VARIABLE_DEFINITION",
	KindVariable:                    "VARIABLE",
	KindDefaultValue:                "DEFAULT_VALUE",
	KindSelectionSet:                "SELECTION_SET",
	KindField:                       "FIELD",
	KindAlias:                       "ALIAS",
	KindArguments:                   "ARGUMENTS",
	KindArgument:                    "ARGUMENT",
	KindFragmentSpread:              "FRAGMENT_SPREAD",
	KindInlineFragment:              "INLINE_FRAGMENT",
	KindFragmentDefinition:          "FRAGMENT_DEFINITION",
	KindFragmentName:                "FRAGMENT_NAME",
	KindTypeCondition:               "TYPE_CONDITION",
	KindValue:                       "VALUE",
	KindIntValue:                    "INT_VALUE",
	KindFloatValue:                  "FLOAT_VALUE",
	KindStringValue:                 "STRING_VALUE",
	KindBooleanValue:                "BOOLEAN_VALUE",
	KindNullValue:                   "NULL_VALUE",
	KindEnumValue:                   "ENUM_VALUE",
	KindListValue:                   "LIST_VALUE",
	KindObjectValue:                 "OBJECT_VALUE",
	KindObjectField:                 "OBJECT_FIELD",
	KindType:                        "TYPE",
	KindNamedType:                   "NAMED_TYPE",
	KindListType:                    "LIST_TYPE",
	KindNonNullType:                 "NON_NULL_TYPE",
	KindDirectives:                  "DIRECTIVES",
	KindDirective:                   "DIRECTIVE",
	KindDirectiveDefinition:         "DIRECTIVE_DEFINITION",
	KindDirectiveLocations:          "DIRECTIVE_LOCATIONS",
	KindDirectiveLocation:           "DIRECTIVE_LOCATION",
	KindSchemaDefinition:            "SCHEMA_DEFINITION",
	KindRootOperationTypeDefinition: "ROOT_OPERATION_TYPE_DEFINITION",
	KindScalarTypeDefinition:        "SCALAR_TYPE_DEFINITION",
	KindObjectTypeDefinition:        "OBJECT_TYPE_DEFINITION",
	KindImplementsInterfaces:        "IMPLEMENTS_INTERFACES",
	KindFieldsDefinition:            "FIELDS_DEFINITION",
	KindFieldDefinition:             "FIELD_DEFINITION",
	KindArgumentsDefinition:         "ARGUMENTS_DEFINITION",
	KindInputValueDefinition:        "INPUT_VALUE_DEFINITION",
	KindInterfaceTypeDefinition:     "INTERFACE_TYPE_DEFINITION",
	KindUnionTypeDefinition:         "UNION_TYPE_DEFINITION",
	KindUnionMemberTypes:            "UNION_MEMBER_TYPES",
	KindEnumTypeDefinition:          "ENUM_TYPE_DEFINITION",
	KindEnumValuesDefinition:        "ENUM_VALUES_DEFINITION",
	KindEnumValueDefinition:         "ENUM_VALUE_DEFINITION",
	KindInputObjectTypeDefinition:   "INPUT_OBJECT_TYPE_DEFINITION",
	KindInputFieldsDefinition:       "INPUT_FIELDS_DEFINITION",
	KindSchemaExtension:             "SCHEMA_EXTENSION",
	KindScalarTypeExtension:         "SCALAR_TYPE_EXTENSION",
	KindObjectTypeExtension:         "OBJECT_TYPE_EXTENSION",
	KindInterfaceTypeExtension:      "INTERFACE_TYPE_EXTENSION",
	KindUnionTypeExtension:          "UNION_TYPE_EXTENSION",
	KindEnumTypeExtension:           "ENUM_TYPE_EXTENSION",
	KindInputObjectTypeExtension:    "INPUT_OBJECT_TYPE_EXTENSION",
}

func (k SyntaxKind) String() string {
	if name, ok := syntaxKindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsDefinition reports whether nodes of this kind appear directly under a
// DOCUMENT node.
func (k SyntaxKind) IsDefinition() bool {
	switch k {
	case KindOperationDefinition, KindFragmentDefinition, KindDirectiveDefinition,
		KindSchemaDefinition, KindScalarTypeDefinition, KindObjectTypeDefinition,
		KindInterfaceTypeDefinition, KindUnionTypeDefinition, KindEnumTypeDefinition,
		KindInputObjectTypeDefinition:
		return true
	}
	return k >= KindSchemaExtension && k <= KindInputObjectTypeExtension
}

var keywordKinds = map[string]SyntaxKind{
	"query":        KindQueryKW,
	"mutation":     KindMutationKW,
	"subscription": KindSubscriptionKW,
	"fragment":     KindFragmentKW,
	"on":           KindOnKW,
	"true":         KindTrueKW,
	"false":        KindFalseKW,
	"null":         KindNullKW,
	"schema":       KindSchemaKW,
	"extend":       KindExtendKW,
	"scalar":       KindScalarKW,
	"type":         KindTypeKW,
	"implements":   KindImplementsKW,
	"interface":    KindInterfaceKW,
	"union":        KindUnionKW,
	"enum":         KindEnumKW,
	"input":        KindInputKW,
	"directive":    KindDirectiveKW,
	"repeatable":   KindRepeatableKW,
}

// LookupKeyword returns the keyword kind for a name, if the name is one of
// the contextual keywords of the language.
func LookupKeyword(name string) (SyntaxKind, bool) {
	kind, ok := keywordKinds[name]
	return kind, ok
}
