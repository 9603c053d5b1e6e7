package parser

import "fmt"

var directiveLocations = map[string]bool{
	// Executable locations
	"QUERY":               true,
	"MUTATION":            true,
	"SUBSCRIPTION":        true,
	"FIELD":               true,
	"FRAGMENT_DEFINITION": true,
	"FRAGMENT_SPREAD":     true,
	"INLINE_FRAGMENT":     true,
	"VARIABLE_DEFINITION": true,

	// Type system locations
	"SCHEMA":                 true,
	"SCALAR":                 true,
	"OBJECT":                 true,
	"FIELD_DEFINITION":       true,
	"ARGUMENT_DEFINITION":    true,
	"INTERFACE":              true,
	"UNION":                  true,
	"ENUM":                   true,
	"ENUM_VALUE":             true,
	"INPUT_OBJECT":           true,
	"INPUT_FIELD_DEFINITION": true,
}

func (p *Parser) parseDirectives() {
	g := p.startNode(KindDirectives)
	defer g.Finish()

	for p.peek() == TokenAt {
		p.parseDirective()
	}
}

// Directive:
//
//	@ Name Arguments?
func (p *Parser) parseDirective() {
	g := p.startNode(KindDirective)
	defer g.Finish()

	p.bump(KindAt)
	p.expectName("Directive")
	if p.peek() == TokenLParen {
		p.parseArguments()
	}
}

// DirectiveDefinition:
//
//	Description? directive @ Name ArgumentsDefinition? repeatable? on DirectiveLocations
func (p *Parser) parseDirectiveDefinition() {
	g := p.startNode(KindDirectiveDefinition)
	defer g.Finish()

	p.parseDescription()
	p.bump(KindDirectiveKW)
	if p.peek() == TokenAt {
		p.bump(KindAt)
	} else {
		p.expected("Directive Definition", "an @")
	}
	p.expectName("Directive Definition")

	if p.peek() == TokenLParen {
		p.parseArgumentsDefinition()
	}
	if p.atKeyword("repeatable") {
		p.bump(KindRepeatableKW)
	}
	if p.atKeyword("on") {
		p.bump(KindOnKW)
	} else {
		p.expected("Directive Definition", "an on keyword")
	}
	p.parseDirectiveLocations()
}

// DirectiveLocations:
//
//	|? DirectiveLocation (| DirectiveLocation)*
func (p *Parser) parseDirectiveLocations() {
	g := p.startNode(KindDirectiveLocations)
	defer g.Finish()

	if p.peek() == TokenPipe {
		p.bump(KindPipe)
	}
	if !p.atDirectiveLocation() {
		p.expected("Directive Locations", "a Directive Location")
		return
	}
	p.parseDirectiveLocation()
	for p.peek() == TokenPipe {
		p.bump(KindPipe)
		if !p.atDirectiveLocation() {
			p.expected("Directive Locations", "a Directive Location")
			return
		}
		p.parseDirectiveLocation()
	}
}

// atDirectiveLocation is false for a definition keyword so that a missing
// location does not swallow the next definition.
func (p *Parser) atDirectiveLocation() bool {
	return p.peek() == TokenName && !p.atDefinitionStart()
}

func (p *Parser) parseDirectiveLocation() {
	text, _ := p.peekData()
	if !directiveLocations[text] {
		p.pushErr(fmt.Sprintf("Expected to have a valid Directive Location, got %s", text))
	}
	g := p.startNode(KindDirectiveLocation)
	defer g.Finish()
	p.bump(KindIdent)
}
