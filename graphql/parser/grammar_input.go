package parser

// InputObjectTypeDefinition:
//
//	Description? input Name Directives? InputFieldsDefinition?
func (p *Parser) parseInputObjectTypeDefinition() {
	g := p.startNode(KindInputObjectTypeDefinition)
	defer g.Finish()

	p.parseDescription()
	p.bump(KindInputKW)
	p.expectName("Input Object Type Definition")

	if p.peek() == TokenAt {
		p.parseDirectives()
	}
	if p.peek() == TokenLCurly {
		p.parseInputFieldsDefinition()
	}
}

// InputObjectTypeExtension:
//
//	extend input Name Directives? InputFieldsDefinition
//	extend input Name Directives
func (p *Parser) parseInputObjectTypeExtension() {
	g := p.startNode(KindInputObjectTypeExtension)
	defer g.Finish()

	p.bump(KindExtendKW)
	p.bump(KindInputKW)
	p.expectName("Input Object Type Definition")

	meetsRequirements := false
	if p.peek() == TokenAt {
		meetsRequirements = true
		p.parseDirectives()
	}
	if p.peek() == TokenLCurly {
		meetsRequirements = true
		p.parseInputFieldsDefinition()
	}
	if !meetsRequirements {
		p.expected("Input Object Type Extension", "Directives or Input Fields Definition")
	}
}

// InputFieldsDefinition:
//
//	{ InputValueDefinition+ }
func (p *Parser) parseInputFieldsDefinition() {
	g := p.startNode(KindInputFieldsDefinition)
	defer g.Finish()

	p.bump(KindLCurly)
	if p.parseInputValueDefinitions("Fields Definition", TokenRCurly) == 0 {
		p.expected("", "an InputValue definition")
	}
	p.expectClosing("Fields Definition", TokenRCurly)
}

func (p *Parser) parseInputValueDefinitions(construct string, closing TokenKind) int {
	return p.parseList(construct, "an InputValue definition", closing, p.atInputValueDefinition, p.parseInputValueDefinition)
}

func (p *Parser) atInputValueDefinition() bool {
	return p.peek() == TokenName || p.peek() == TokenString
}

// InputValueDefinition:
//
//	Description? Name : Type DefaultValue? Directives?
func (p *Parser) parseInputValueDefinition() {
	g := p.startNode(KindInputValueDefinition)
	defer g.Finish()

	p.parseDescription()
	p.expectName("InputValue definition")
	if p.peek() == TokenColon {
		p.bump(KindColon)
	} else {
		p.expected("InputValue definition", "a :")
	}
	p.expectType("InputValue definition")

	if p.peek() == TokenEq {
		p.parseDefaultValue()
	}
	if p.peek() == TokenAt {
		p.parseDirectives()
	}
}
