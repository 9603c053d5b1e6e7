package parser

// OperationDefinition:
//
//	OperationType Name? VariableDefinitions? Directives? SelectionSet
//	SelectionSet
func (p *Parser) parseOperationDefinition() {
	g := p.startNode(KindOperationDefinition)
	defer g.Finish()

	if p.peek() == TokenLCurly {
		p.parseSelectionSet()
		return
	}

	p.parseOperationType()
	if p.peek() == TokenName {
		p.parseName()
	}
	if p.peek() == TokenLParen {
		p.parseVariableDefinitions()
	}
	if p.peek() == TokenAt {
		p.parseDirectives()
	}
	p.expectSelectionSet("Operation Definition")
}

func (p *Parser) parseOperationType() {
	g := p.startNode(KindOperationType)
	defer g.Finish()

	text, _ := p.peekData()
	switch text {
	case "query":
		p.bump(KindQueryKW)
	case "mutation":
		p.bump(KindMutationKW)
	case "subscription":
		p.bump(KindSubscriptionKW)
	default:
		p.expected("Operation Type", "query, mutation or subscription")
		if p.peek() == TokenName {
			p.bump(KindIdent)
		}
	}
}

func (p *Parser) parseVariableDefinitions() {
	g := p.startNode(KindVariableDefinitions)
	defer g.Finish()

	p.bump(KindLParen)
	n := p.parseList("Variable Definitions", "a Variable Definition", TokenRParen, func() bool {
		return p.peek() == TokenDollar
	}, p.parseVariableDefinition)
	if n == 0 {
		p.expected("Variable Definitions", "a Variable Definition")
	}
	p.expectClosing("Variable Definitions", TokenRParen)
}

// VariableDefinition:
//
//	Variable : Type DefaultValue? Directives?
func (p *Parser) parseVariableDefinition() {
	g := p.startNode(KindVariableDefinition)
	defer g.Finish()

	p.parseVariable()
	if p.peek() == TokenColon {
		p.bump(KindColon)
	} else {
		p.expected("Variable Definition", "a :")
	}
	p.expectType("Variable Definition")
	if p.peek() == TokenEq {
		p.parseDefaultValue()
	}
	if p.peek() == TokenAt {
		p.parseDirectives()
	}
}

func (p *Parser) expectSelectionSet(construct string) {
	if p.peek() == TokenLCurly {
		p.parseSelectionSet()
		return
	}
	p.missing(KindSelectionSet, construct, "a Selection Set")
}

func (p *Parser) parseSelectionSet() {
	if !p.enter() {
		return
	}
	defer p.leave()

	g := p.startNode(KindSelectionSet)
	defer g.Finish()

	p.bump(KindLCurly)
	n := p.parseList("Selection Set", "a Selection", TokenRCurly, func() bool {
		return p.peek() == TokenName || p.peek() == TokenSpread
	}, p.parseSelection)
	if n == 0 {
		p.expected("Selection Set", "a Selection")
	}
	p.expectClosing("Selection Set", TokenRCurly)
}

func (p *Parser) parseSelection() {
	if p.peek() != TokenSpread {
		p.parseField()
		return
	}
	if p.peekN(1) == TokenName && p.peekDataN(1) != "on" {
		p.parseFragmentSpread()
	} else {
		p.parseInlineFragment()
	}
}

// Field:
//
//	Alias? Name Arguments? Directives? SelectionSet?
func (p *Parser) parseField() {
	g := p.startNode(KindField)
	defer g.Finish()

	if p.peekN(1) == TokenColon {
		alias := p.startNode(KindAlias)
		p.parseName()
		p.bump(KindColon)
		alias.Finish()
	}
	p.expectName("Field")

	if p.peek() == TokenLParen {
		p.parseArguments()
	}
	if p.peek() == TokenAt {
		p.parseDirectives()
	}
	if p.peek() == TokenLCurly {
		p.parseSelectionSet()
	}
}

func (p *Parser) parseArguments() {
	g := p.startNode(KindArguments)
	defer g.Finish()

	p.bump(KindLParen)
	n := p.parseList("Arguments", "an Argument", TokenRParen, func() bool {
		return p.peek() == TokenName
	}, p.parseArgument)
	if n == 0 {
		p.expected("Arguments", "an Argument")
	}
	p.expectClosing("Arguments", TokenRParen)
}

// Argument:
//
//	Name : Value
func (p *Parser) parseArgument() {
	g := p.startNode(KindArgument)
	defer g.Finish()

	p.parseName()
	if p.peek() == TokenColon {
		p.bump(KindColon)
	} else {
		p.expected("Argument", "a :")
	}
	p.expectValue("Argument")
}

func (p *Parser) parseFragmentSpread() {
	g := p.startNode(KindFragmentSpread)
	defer g.Finish()

	p.bump(KindSpread)
	p.parseFragmentName()
	if p.peek() == TokenAt {
		p.parseDirectives()
	}
}

func (p *Parser) parseFragmentName() {
	g := p.startNode(KindFragmentName)
	defer g.Finish()
	p.parseName()
}

// InlineFragment:
//
//	... TypeCondition? Directives? SelectionSet
func (p *Parser) parseInlineFragment() {
	g := p.startNode(KindInlineFragment)
	defer g.Finish()

	p.bump(KindSpread)
	if p.atKeyword("on") {
		p.parseTypeCondition()
	}
	if p.peek() == TokenAt {
		p.parseDirectives()
	}
	p.expectSelectionSet("Inline Fragment")
}

// FragmentDefinition:
//
//	fragment FragmentName TypeCondition Directives? SelectionSet
func (p *Parser) parseFragmentDefinition() {
	g := p.startNode(KindFragmentDefinition)
	defer g.Finish()

	p.bump(KindFragmentKW)
	if p.peek() == TokenName && !p.atKeyword("on") {
		p.parseFragmentName()
	} else {
		p.missing(KindFragmentName, "Fragment Definition", "a Name")
	}
	if p.atKeyword("on") {
		p.parseTypeCondition()
	} else {
		p.missing(KindTypeCondition, "Fragment Definition", "a Type Condition")
	}
	if p.peek() == TokenAt {
		p.parseDirectives()
	}
	p.expectSelectionSet("Fragment Definition")
}

func (p *Parser) parseTypeCondition() {
	g := p.startNode(KindTypeCondition)
	defer g.Finish()

	p.bump(KindOnKW)
	p.expectNamedType("Type Condition")
}
