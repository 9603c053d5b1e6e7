package parser

// SchemaDefinition:
//
//	Description? schema Directives? { RootOperationTypeDefinition+ }
func (p *Parser) parseSchemaDefinition() {
	g := p.startNode(KindSchemaDefinition)
	defer g.Finish()

	p.parseDescription()
	p.bump(KindSchemaKW)
	if p.peek() == TokenAt {
		p.parseDirectives()
	}
	if p.peek() == TokenLCurly {
		p.parseRootOperationTypeDefinitions("Schema Definition")
	} else {
		p.expected("Schema Definition", "a {")
	}
}

func (p *Parser) parseSchemaExtension() {
	g := p.startNode(KindSchemaExtension)
	defer g.Finish()

	p.bump(KindExtendKW)
	p.bump(KindSchemaKW)

	meetsRequirements := false
	if p.peek() == TokenAt {
		meetsRequirements = true
		p.parseDirectives()
	}
	if p.peek() == TokenLCurly {
		meetsRequirements = true
		p.parseRootOperationTypeDefinitions("Schema Extension")
	}
	if !meetsRequirements {
		p.expected("Schema Extension", "Directives or Root Operation Type Definitions")
	}
}

// parseRootOperationTypeDefinitions parses the braces and their contents
// directly into the schema node.
func (p *Parser) parseRootOperationTypeDefinitions(construct string) {
	p.bump(KindLCurly)
	n := p.parseList(construct, "a Root Operation Type Definition", TokenRCurly, func() bool {
		return p.peek() == TokenName
	}, p.parseRootOperationTypeDefinition)
	if n == 0 {
		p.expected(construct, "a Root Operation Type Definition")
	}
	p.expectClosing(construct, TokenRCurly)
}

// RootOperationTypeDefinition:
//
//	OperationType : NamedType
func (p *Parser) parseRootOperationTypeDefinition() {
	g := p.startNode(KindRootOperationTypeDefinition)
	defer g.Finish()

	p.parseOperationType()
	if p.peek() == TokenColon {
		p.bump(KindColon)
	} else {
		p.expected("Root Operation Type Definition", "a :")
	}
	p.expectNamedType("Root Operation Type Definition")
}

// ScalarTypeDefinition:
//
//	Description? scalar Name Directives?
func (p *Parser) parseScalarTypeDefinition() {
	g := p.startNode(KindScalarTypeDefinition)
	defer g.Finish()

	p.parseDescription()
	p.bump(KindScalarKW)
	p.expectName("Scalar Type Definition")
	if p.peek() == TokenAt {
		p.parseDirectives()
	}
}

func (p *Parser) parseScalarTypeExtension() {
	g := p.startNode(KindScalarTypeExtension)
	defer g.Finish()

	p.bump(KindExtendKW)
	p.bump(KindScalarKW)
	p.expectName("Scalar Type Extension")
	if p.peek() == TokenAt {
		p.parseDirectives()
	} else {
		p.expected("Scalar Type Extension", "Directives")
	}
}
