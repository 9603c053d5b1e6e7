package parser

// ObjectTypeDefinition:
//
//	Description? type Name ImplementsInterfaces? Directives? FieldsDefinition?
func (p *Parser) parseObjectTypeDefinition() {
	g := p.startNode(KindObjectTypeDefinition)
	defer g.Finish()

	p.parseDescription()
	p.bump(KindTypeKW)
	p.expectName("Object Type Definition")

	if p.atKeyword("implements") {
		p.parseImplementsInterfaces()
	}
	if p.peek() == TokenAt {
		p.parseDirectives()
	}
	if p.peek() == TokenLCurly {
		p.parseFieldsDefinition()
	}
}

func (p *Parser) parseObjectTypeExtension() {
	g := p.startNode(KindObjectTypeExtension)
	defer g.Finish()

	p.bump(KindExtendKW)
	p.bump(KindTypeKW)
	p.expectName("Object Type Extension")

	meetsRequirements := false
	if p.atKeyword("implements") {
		meetsRequirements = true
		p.parseImplementsInterfaces()
	}
	if p.peek() == TokenAt {
		meetsRequirements = true
		p.parseDirectives()
	}
	if p.peek() == TokenLCurly {
		meetsRequirements = true
		p.parseFieldsDefinition()
	}
	if !meetsRequirements {
		p.expected("Object Type Extension", "an Implements Interfaces, Directives or Fields Definition")
	}
}

// ImplementsInterfaces:
//
//	implements &? NamedType (& NamedType)*
func (p *Parser) parseImplementsInterfaces() {
	g := p.startNode(KindImplementsInterfaces)
	defer g.Finish()

	p.bump(KindImplementsKW)
	if p.peek() == TokenAmp {
		p.bump(KindAmp)
	}
	p.expectNamedType("Implements Interfaces")
	for p.peek() == TokenAmp {
		p.bump(KindAmp)
		p.expectNamedType("Implements Interfaces")
	}
}

// FieldsDefinition:
//
//	{ FieldDefinition+ }
func (p *Parser) parseFieldsDefinition() {
	g := p.startNode(KindFieldsDefinition)
	defer g.Finish()

	p.bump(KindLCurly)
	n := p.parseList("Fields Definition", "a Field Definition", TokenRCurly, func() bool {
		return p.peek() == TokenName || p.peek() == TokenString
	}, p.parseFieldDefinition)
	if n == 0 {
		p.expected("Fields Definition", "a Field Definition")
	}
	p.expectClosing("Fields Definition", TokenRCurly)
}

// FieldDefinition:
//
//	Description? Name ArgumentsDefinition? : Type Directives?
func (p *Parser) parseFieldDefinition() {
	g := p.startNode(KindFieldDefinition)
	defer g.Finish()

	p.parseDescription()
	p.expectName("Field Definition")
	if p.peek() == TokenLParen {
		p.parseArgumentsDefinition()
	}
	if p.peek() == TokenColon {
		p.bump(KindColon)
	} else {
		p.expected("Field Definition", "a :")
	}
	p.expectType("Field Definition")
	if p.peek() == TokenAt {
		p.parseDirectives()
	}
}

// ArgumentsDefinition:
//
//	( InputValueDefinition+ )
func (p *Parser) parseArgumentsDefinition() {
	g := p.startNode(KindArgumentsDefinition)
	defer g.Finish()

	p.bump(KindLParen)
	if p.parseInputValueDefinitions("Arguments Definition", TokenRParen) == 0 {
		p.expected("Arguments Definition", "an InputValue definition")
	}
	p.expectClosing("Arguments Definition", TokenRParen)
}

// InterfaceTypeDefinition:
//
//	Description? interface Name ImplementsInterfaces? Directives? FieldsDefinition?
func (p *Parser) parseInterfaceTypeDefinition() {
	g := p.startNode(KindInterfaceTypeDefinition)
	defer g.Finish()

	p.parseDescription()
	p.bump(KindInterfaceKW)
	p.expectName("Interface Type Definition")

	if p.atKeyword("implements") {
		p.parseImplementsInterfaces()
	}
	if p.peek() == TokenAt {
		p.parseDirectives()
	}
	if p.peek() == TokenLCurly {
		p.parseFieldsDefinition()
	}
}

func (p *Parser) parseInterfaceTypeExtension() {
	g := p.startNode(KindInterfaceTypeExtension)
	defer g.Finish()

	p.bump(KindExtendKW)
	p.bump(KindInterfaceKW)
	p.expectName("Interface Type Extension")

	meetsRequirements := false
	if p.atKeyword("implements") {
		meetsRequirements = true
		p.parseImplementsInterfaces()
	}
	if p.peek() == TokenAt {
		meetsRequirements = true
		p.parseDirectives()
	}
	if p.peek() == TokenLCurly {
		meetsRequirements = true
		p.parseFieldsDefinition()
	}
	if !meetsRequirements {
		p.expected("Interface Type Extension", "an Implements Interfaces, Directives or Fields Definition")
	}
}
