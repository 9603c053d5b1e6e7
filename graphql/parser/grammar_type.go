package parser

func (p *Parser) atTypeStart() bool {
	return p.peek() == TokenName || p.peek() == TokenLBracket
}

// expectType parses a TYPE, or records an error and leaves an empty TYPE.
func (p *Parser) expectType(construct string) {
	if p.atTypeStart() {
		p.parseType()
		return
	}
	p.missing(KindType, construct, "a Type")
}

// parseType parses a named or list type and wraps it in NON_NULL_TYPE when
// a ! follows:
//
//	TYPE
//	  NON_NULL_TYPE
//	    TYPE
//	      NAMED_TYPE
//	    BANG
func (p *Parser) parseType() {
	if !p.enter() {
		return
	}
	defer p.leave()

	g := p.startNode(KindType)
	defer g.Finish()

	cp := p.checkpoint()
	switch p.peek() {
	case TokenName:
		p.parseNamedType()
	case TokenLBracket:
		p.parseListType()
	}

	if p.peek() == TokenBang {
		p.startNodeAt(cp, KindType).Finish()
		nonNull := p.startNodeAt(cp, KindNonNullType)
		p.bump(KindBang)
		nonNull.Finish()
	}
}

func (p *Parser) parseNamedType() {
	g := p.startNode(KindNamedType)
	defer g.Finish()
	p.parseName()
}

// expectNamedType parses a NAMED_TYPE, or records an error and leaves an
// empty NAMED_TYPE.
func (p *Parser) expectNamedType(construct string) {
	if p.peek() == TokenName {
		p.parseNamedType()
		return
	}
	p.missing(KindNamedType, construct, "a Named Type")
}

func (p *Parser) parseListType() {
	g := p.startNode(KindListType)
	defer g.Finish()

	p.bump(KindLBracket)
	p.expectType("List Type")
	p.expectClosing("List Type", TokenRBracket)
}
