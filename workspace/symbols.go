package workspace

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/gqlcst/graphql/parser"
)

var definitionSymbolKinds = map[parser.SyntaxKind]protocol.SymbolKind{
	parser.KindOperationDefinition:       protocol.SymbolKindFunction,
	parser.KindFragmentDefinition:        protocol.SymbolKindConstant,
	parser.KindDirectiveDefinition:       protocol.SymbolKindEvent,
	parser.KindSchemaDefinition:          protocol.SymbolKindModule,
	parser.KindSchemaExtension:           protocol.SymbolKindModule,
	parser.KindScalarTypeDefinition:      protocol.SymbolKindTypeParameter,
	parser.KindScalarTypeExtension:       protocol.SymbolKindTypeParameter,
	parser.KindObjectTypeDefinition:      protocol.SymbolKindClass,
	parser.KindObjectTypeExtension:       protocol.SymbolKindClass,
	parser.KindInterfaceTypeDefinition:   protocol.SymbolKindInterface,
	parser.KindInterfaceTypeExtension:    protocol.SymbolKindInterface,
	parser.KindUnionTypeDefinition:       protocol.SymbolKindEnum,
	parser.KindUnionTypeExtension:        protocol.SymbolKindEnum,
	parser.KindEnumTypeDefinition:        protocol.SymbolKindEnum,
	parser.KindEnumTypeExtension:         protocol.SymbolKindEnum,
	parser.KindInputObjectTypeDefinition: protocol.SymbolKindStruct,
	parser.KindInputObjectTypeExtension:  protocol.SymbolKindStruct,
}

var extensionKinds = map[parser.SyntaxKind]bool{
	parser.KindSchemaExtension:          true,
	parser.KindScalarTypeExtension:      true,
	parser.KindObjectTypeExtension:      true,
	parser.KindInterfaceTypeExtension:   true,
	parser.KindUnionTypeExtension:       true,
	parser.KindEnumTypeExtension:        true,
	parser.KindInputObjectTypeExtension: true,
}

// DocumentSymbols returns the outline of a document: one symbol per
// definition, with fields, input values and enum values as children.
func DocumentSymbols(res *parser.Result) []protocol.DocumentSymbol {
	var out []protocol.DocumentSymbol
	for _, def := range res.Root.Children {
		kind, ok := definitionSymbolKinds[def.Kind]
		if !ok {
			continue
		}
		detail := def.Kind.String()
		sym := protocol.DocumentSymbol{
			Name:           definitionName(def),
			Detail:         &detail,
			Kind:           kind,
			Range:          toRange(def.Span),
			SelectionRange: selectionRange(def),
			Children:       memberSymbols(def),
		}
		out = append(out, sym)
	}
	return out
}

func definitionName(def *parser.Node) string {
	var name string
	switch def.Kind {
	case parser.KindFragmentDefinition:
		name = nodeName(def.FirstChildOfKind(parser.KindFragmentName))
	case parser.KindSchemaDefinition, parser.KindSchemaExtension:
		name = "schema"
	default:
		name = nodeName(def)
	}
	switch {
	case name == "" && def.Kind == parser.KindOperationDefinition:
		name = "<anonymous>"
	case name == "":
		name = "<missing name>"
	case def.Kind == parser.KindDirectiveDefinition:
		name = "@" + name
	}
	if extensionKinds[def.Kind] {
		name = "extend " + name
	}
	return name
}

// nodeName returns the text of the NAME child of n, or "" when n is nil or
// the name is missing.
func nodeName(n *parser.Node) string {
	if n == nil {
		return ""
	}
	name := n.FirstChildOfKind(parser.KindName)
	if name == nil {
		return ""
	}
	return name.Text()
}

func selectionRange(n *parser.Node) protocol.Range {
	target := n
	if n.Kind == parser.KindFragmentDefinition {
		target = n.FirstChildOfKind(parser.KindFragmentName)
	}
	if target != nil {
		if name := target.FirstChildOfKind(parser.KindName); name != nil && !name.IsMissing() {
			return toRange(name.Span)
		}
	}
	return toRange(n.Span)
}

func memberSymbols(def *parser.Node) []protocol.DocumentSymbol {
	var members []*parser.Node
	var kind protocol.SymbolKind
	switch {
	case def.FirstChildOfKind(parser.KindFieldsDefinition) != nil:
		members = def.FirstChildOfKind(parser.KindFieldsDefinition).ChildrenOfKind(parser.KindFieldDefinition)
		kind = protocol.SymbolKindField
	case def.FirstChildOfKind(parser.KindInputFieldsDefinition) != nil:
		members = def.FirstChildOfKind(parser.KindInputFieldsDefinition).ChildrenOfKind(parser.KindInputValueDefinition)
		kind = protocol.SymbolKindField
	case def.FirstChildOfKind(parser.KindEnumValuesDefinition) != nil:
		members = def.FirstChildOfKind(parser.KindEnumValuesDefinition).ChildrenOfKind(parser.KindEnumValueDefinition)
		kind = protocol.SymbolKindEnumMember
	}

	var out []protocol.DocumentSymbol
	for _, m := range members {
		named := m
		if m.Kind == parser.KindEnumValueDefinition {
			named = m.FirstChildOfKind(parser.KindEnumValue)
		}
		name := nodeName(named)
		if name == "" {
			continue
		}
		out = append(out, protocol.DocumentSymbol{
			Name:           name,
			Kind:           kind,
			Range:          toRange(m.Span),
			SelectionRange: toRange(named.FirstChildOfKind(parser.KindName).Span),
		})
	}
	return out
}
