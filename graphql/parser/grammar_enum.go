package parser

import "fmt"

// EnumTypeDefinition:
//
//	Description? enum Name Directives? EnumValuesDefinition?
func (p *Parser) parseEnumTypeDefinition() {
	g := p.startNode(KindEnumTypeDefinition)
	defer g.Finish()

	p.parseDescription()
	p.bump(KindEnumKW)
	p.expectName("Enum Type Definition")
	if p.peek() == TokenAt {
		p.parseDirectives()
	}
	if p.peek() == TokenLCurly {
		p.parseEnumValuesDefinition()
	}
}

func (p *Parser) parseEnumTypeExtension() {
	g := p.startNode(KindEnumTypeExtension)
	defer g.Finish()

	p.bump(KindExtendKW)
	p.bump(KindEnumKW)
	p.expectName("Enum Type Extension")

	meetsRequirements := false
	if p.peek() == TokenAt {
		meetsRequirements = true
		p.parseDirectives()
	}
	if p.peek() == TokenLCurly {
		meetsRequirements = true
		p.parseEnumValuesDefinition()
	}
	if !meetsRequirements {
		p.expected("Enum Type Extension", "Directives or Enum Values Definition")
	}
}

func (p *Parser) parseEnumValuesDefinition() {
	g := p.startNode(KindEnumValuesDefinition)
	defer g.Finish()

	p.bump(KindLCurly)
	n := p.parseList("Enum Values Definition", "an Enum Value Definition", TokenRCurly, func() bool {
		return p.peek() == TokenName || p.peek() == TokenString
	}, p.parseEnumValueDefinition)
	if n == 0 {
		p.expected("Enum Values Definition", "an Enum Value Definition")
	}
	p.expectClosing("Enum Values Definition", TokenRCurly)
}

// EnumValueDefinition:
//
//	Description? EnumValue Directives?
func (p *Parser) parseEnumValueDefinition() {
	g := p.startNode(KindEnumValueDefinition)
	defer g.Finish()

	p.parseDescription()
	if p.peek() == TokenName {
		switch text, _ := p.peekData(); text {
		case "true", "false", "null":
			p.pushErr(fmt.Sprintf("Expected Enum Value Definition to have a Name other than true, false or null, got %s", text))
		}
		value := p.startNode(KindEnumValue)
		p.parseName()
		value.Finish()
	} else {
		p.missing(KindEnumValue, "Enum Value Definition", "a Name")
	}
	if p.peek() == TokenAt {
		p.parseDirectives()
	}
}

// UnionTypeDefinition:
//
//	Description? union Name Directives? UnionMemberTypes?
func (p *Parser) parseUnionTypeDefinition() {
	g := p.startNode(KindUnionTypeDefinition)
	defer g.Finish()

	p.parseDescription()
	p.bump(KindUnionKW)
	p.expectName("Union Type Definition")
	if p.peek() == TokenAt {
		p.parseDirectives()
	}
	if p.peek() == TokenEq {
		p.parseUnionMemberTypes()
	}
}

func (p *Parser) parseUnionTypeExtension() {
	g := p.startNode(KindUnionTypeExtension)
	defer g.Finish()

	p.bump(KindExtendKW)
	p.bump(KindUnionKW)
	p.expectName("Union Type Extension")

	meetsRequirements := false
	if p.peek() == TokenAt {
		meetsRequirements = true
		p.parseDirectives()
	}
	if p.peek() == TokenEq {
		meetsRequirements = true
		p.parseUnionMemberTypes()
	}
	if !meetsRequirements {
		p.expected("Union Type Extension", "Directives or Union Member Types")
	}
}

// UnionMemberTypes:
//
//	= |? NamedType (| NamedType)*
func (p *Parser) parseUnionMemberTypes() {
	g := p.startNode(KindUnionMemberTypes)
	defer g.Finish()

	p.bump(KindEq)
	if p.peek() == TokenPipe {
		p.bump(KindPipe)
	}
	p.expectUnionMember()
	for p.peek() == TokenPipe {
		p.bump(KindPipe)
		p.expectUnionMember()
	}
}

func (p *Parser) expectUnionMember() {
	if p.peek() == TokenName && !p.atDefinitionStart() {
		p.parseNamedType()
		return
	}
	p.missing(KindNamedType, "Union Member Types", "a Named Type")
}
