package parser

import "fmt"

var typeSystemKeywords = map[string]bool{
	"schema":    true,
	"scalar":    true,
	"type":      true,
	"interface": true,
	"union":     true,
	"enum":      true,
	"input":     true,
	"directive": true,
}

var executableKeywords = map[string]bool{
	"query":        true,
	"mutation":     true,
	"subscription": true,
	"fragment":     true,
}

func (p *Parser) parseDocument() {
	doc := p.startNode(KindDocument)
	defer doc.Finish()

	for p.peek() != TokenEOF {
		progress := p.mustProgress()
		p.parseDefinition()
		progress()
	}
}

// atDefinitionStart reports whether a definition can begin at the cursor.
// Document-level recovery skips tokens until this holds.
func (p *Parser) atDefinitionStart() bool {
	switch p.peek() {
	case TokenLCurly:
		return true
	case TokenName:
		text, _ := p.peekData()
		return typeSystemKeywords[text] || executableKeywords[text] || text == "extend"
	case TokenString:
		return p.peekN(1) == TokenName && typeSystemKeywords[p.peekDataN(1)]
	}
	return false
}

func (p *Parser) parseDefinition() {
	if p.peek() == TokenLCurly {
		p.parseOperationDefinition()
		return
	}

	keyword, _ := p.peekData()
	if p.peek() == TokenString && p.peekN(1) == TokenName && typeSystemKeywords[p.peekDataN(1)] {
		keyword = p.peekDataN(1)
	} else if p.peek() != TokenName {
		keyword = ""
	}

	switch keyword {
	case "query", "mutation", "subscription":
		p.parseOperationDefinition()
	case "fragment":
		p.parseFragmentDefinition()
	case "schema":
		p.parseSchemaDefinition()
	case "scalar":
		p.parseScalarTypeDefinition()
	case "type":
		p.parseObjectTypeDefinition()
	case "interface":
		p.parseInterfaceTypeDefinition()
	case "union":
		p.parseUnionTypeDefinition()
	case "enum":
		p.parseEnumTypeDefinition()
	case "input":
		p.parseInputObjectTypeDefinition()
	case "directive":
		p.parseDirectiveDefinition()
	case "extend":
		p.parseExtension()
	default:
		p.errorUntil(p.gotMsg("Document", "a Definition"), p.atDefinitionStart)
	}
}

func (p *Parser) parseExtension() {
	switch p.peekDataN(1) {
	case "schema":
		p.parseSchemaExtension()
	case "scalar":
		p.parseScalarTypeExtension()
	case "type":
		p.parseObjectTypeExtension()
	case "interface":
		p.parseInterfaceTypeExtension()
	case "union":
		p.parseUnionTypeExtension()
	case "enum":
		p.parseEnumTypeExtension()
	case "input":
		p.parseInputObjectTypeExtension()
	default:
		p.errorUntil(
			fmt.Sprintf("Expected Type System Extension to have a kind of type to extend, got %s", p.foundAfter(1)),
			p.atDefinitionStart,
		)
	}
}

func (p *Parser) foundAfter(n int) string {
	if p.peekN(n) == TokenEOF {
		return eofData
	}
	return p.peekDataN(n)
}

// gotMsg formats the standard mismatch message for the current lookahead.
// An empty construct yields "Expected to have <what>, got <found>".
func (p *Parser) gotMsg(construct, what string) string {
	found := p.foundAfter(0)
	if construct == "" {
		return fmt.Sprintf("Expected to have %s, got %s", what, found)
	}
	return fmt.Sprintf("Expected %s to have %s, got %s", construct, what, found)
}

func (p *Parser) parseName() {
	g := p.startNode(KindName)
	defer g.Finish()
	p.bump(KindIdent)
}

// expectName parses a NAME, or records an error and leaves an empty NAME.
func (p *Parser) expectName(construct string) {
	if p.peek() == TokenName {
		p.parseName()
		return
	}
	p.missing(KindName, construct, "a Name")
}

func (p *Parser) parseDescription() {
	if p.peek() != TokenString {
		return
	}
	g := p.startNode(KindDescription)
	defer g.Finish()
	p.parseStringValue()
}

// expectClosing consumes the closing delimiter of construct or records that
// it is missing.
func (p *Parser) expectClosing(construct string, closing TokenKind) {
	if p.peek() == closing {
		p.bumpAny()
		return
	}
	p.expected(construct, "a closing "+closing.String())
}

func isCloser(k TokenKind) bool {
	return k == TokenRCurly || k == TokenRParen || k == TokenRBracket
}

// parseList parses the elements of a delimited list up to, but excluding,
// its closing token. Commas between elements are kept as COMMA leaves. Any
// closing delimiter ends the list so an unbalanced inner list cannot eat the
// closer of its parent. A token that neither starts an element nor ends the
// list is wrapped with its followers in an ERROR node. It returns the number
// of elements parsed.
func (p *Parser) parseList(construct, element string, closing TokenKind, atElement func() bool, parseElement func()) int {
	n := 0
	for {
		progress := p.mustProgress()
		k := p.peek()
		switch {
		case k == TokenEOF || isCloser(k):
			return n
		case k == TokenComma:
			p.bump(KindComma)
		case atElement():
			parseElement()
			n++
		default:
			p.errorUntil(p.gotMsg(construct, element+" or a closing "+closing.String()), func() bool {
				k := p.peek()
				return k == TokenComma || isCloser(k) || atElement()
			})
		}
		progress()
	}
}
