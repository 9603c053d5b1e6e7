package parser

func (p *Parser) atValueStart() bool {
	switch p.peek() {
	case TokenDollar, TokenInt, TokenFloat, TokenString, TokenName, TokenLBracket, TokenLCurly:
		return true
	}
	return false
}

// expectValue parses a value, or records an error and leaves an empty VALUE.
func (p *Parser) expectValue(construct string) {
	if p.atValueStart() {
		p.parseValue()
		return
	}
	p.missing(KindValue, construct, "a Value")
}

func (p *Parser) parseValue() {
	if !p.enter() {
		return
	}
	defer p.leave()

	switch p.peek() {
	case TokenDollar:
		p.parseVariable()
	case TokenInt:
		g := p.startNode(KindIntValue)
		p.bump(KindIntToken)
		g.Finish()
	case TokenFloat:
		g := p.startNode(KindFloatValue)
		p.bump(KindFloatToken)
		g.Finish()
	case TokenString:
		p.parseStringValue()
	case TokenName:
		p.parseNameValue()
	case TokenLBracket:
		p.parseListValue()
	case TokenLCurly:
		p.parseObjectValue()
	}
}

func (p *Parser) parseStringValue() {
	g := p.startNode(KindStringValue)
	defer g.Finish()
	p.bump(KindStringToken)
}

// parseNameValue handles the values spelled as names: booleans, null, and
// enum values.
func (p *Parser) parseNameValue() {
	text, _ := p.peekData()
	switch text {
	case "true":
		g := p.startNode(KindBooleanValue)
		p.bump(KindTrueKW)
		g.Finish()
	case "false":
		g := p.startNode(KindBooleanValue)
		p.bump(KindFalseKW)
		g.Finish()
	case "null":
		g := p.startNode(KindNullValue)
		p.bump(KindNullKW)
		g.Finish()
	default:
		g := p.startNode(KindEnumValue)
		p.parseName()
		g.Finish()
	}
}

func (p *Parser) parseVariable() {
	g := p.startNode(KindVariable)
	defer g.Finish()

	p.bump(KindDollar)
	p.expectName("Variable")
}

func (p *Parser) parseListValue() {
	g := p.startNode(KindListValue)
	defer g.Finish()

	p.bump(KindLBracket)
	p.parseList("List Value", "a Value", TokenRBracket, p.atValueStart, p.parseValue)
	p.expectClosing("List Value", TokenRBracket)
}

func (p *Parser) parseObjectValue() {
	g := p.startNode(KindObjectValue)
	defer g.Finish()

	p.bump(KindLCurly)
	p.parseList("Object Value", "an Object Field", TokenRCurly, func() bool {
		return p.peek() == TokenName
	}, p.parseObjectField)
	p.expectClosing("Object Value", TokenRCurly)
}

// ObjectField:
//
//	Name : Value
func (p *Parser) parseObjectField() {
	g := p.startNode(KindObjectField)
	defer g.Finish()

	p.parseName()
	if p.peek() == TokenColon {
		p.bump(KindColon)
	} else {
		p.expected("Object Field", "a :")
	}
	p.expectValue("Object Field")
}

func (p *Parser) parseDefaultValue() {
	g := p.startNode(KindDefaultValue)
	defer g.Finish()

	p.bump(KindEq)
	p.expectValue("Default Value")
}
