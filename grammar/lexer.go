package grammar

import (
	"bytes"
	"fmt"

	"golang.org/x/exp/ebnf"
)

type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a lexeme matched by one of the lexer's token productions. Input
// that no production matches becomes a one byte token of kind "ERROR".
type Token struct {
	Kind     string
	Literal  string
	Position Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Position, t.Kind, t.Literal)
}

type memoKey struct {
	name   string
	offset int
}

// noMatch is distinct from a match of length zero, which options and
// repetitions produce.
const noMatch = -1

// Lexer splits input into the longest matches of a fixed list of grammar
// productions. It backtracks only between alternatives, which is enough for
// the GraphQL token grammar.
type Lexer struct {
	grammar  ebnf.Grammar
	kinds    []string
	input    []byte
	filename string
	pos      int
	line     int
	column   int
	memo     map[memoKey]int
	visiting map[memoKey]bool
}

// NewLexer returns a lexer that tries the productions named by kinds at each
// position.
func NewLexer(g ebnf.Grammar, kinds []string, input []byte, filename string) *Lexer {
	return &Lexer{
		grammar:  g,
		kinds:    kinds,
		input:    input,
		filename: filename,
		line:     1,
		column:   1,
		memo:     make(map[memoKey]int),
		visiting: make(map[memoKey]bool),
	}
}

// NewGraphQLLexer returns a lexer over the embedded token grammar.
func NewGraphQLLexer(input []byte, filename string) (*Lexer, error) {
	g, err := Lexical()
	if err != nil {
		return nil, err
	}
	return NewLexer(g, TokenKinds, input, filename), nil
}

func (l *Lexer) Position() Position {
	return Position{
		Filename: l.filename,
		Offset:   l.pos,
		Line:     l.line,
		Column:   l.column,
	}
}

func (l *Lexer) advance() {
	if l.pos >= len(l.input) {
		return
	}
	if l.input[l.pos] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.pos++
}

// NextToken returns the next token and false once the input is exhausted.
func (l *Lexer) NextToken() (Token, bool) {
	start := l.Position()
	if l.pos >= len(l.input) {
		return Token{Kind: "EOF", Position: start}, false
	}

	bestLen := 0
	bestKind := ""
	for _, name := range l.kinds {
		if n := l.matchName(name, l.pos); n > bestLen {
			bestLen = n
			bestKind = name
		}
	}

	if bestLen == 0 {
		bestLen = 1
		bestKind = "ERROR"
	}
	literal := string(l.input[l.pos : l.pos+bestLen])
	for i := 0; i < bestLen; i++ {
		l.advance()
	}
	return Token{Kind: bestKind, Literal: literal, Position: start}, true
}

// Tokenize returns all tokens of the input. The last token has kind "EOF".
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok, ok := l.NextToken()
		tokens = append(tokens, tok)
		if !ok {
			return tokens
		}
	}
}

// match returns the length of the longest match of expr at offset, or
// noMatch.
func (l *Lexer) match(expr ebnf.Expression, offset int) int {
	switch e := expr.(type) {
	case nil:
		return 0

	case *ebnf.Token:
		if bytes.HasPrefix(l.input[offset:], []byte(e.String)) {
			return len(e.String)
		}
		return noMatch

	case *ebnf.Range:
		return l.matchRange(e.Begin.String, e.End.String, offset)

	case ebnf.Sequence:
		total := 0
		for _, item := range e {
			n := l.match(item, offset+total)
			if n == noMatch {
				return noMatch
			}
			total += n
		}
		return total

	case ebnf.Alternative:
		best := noMatch
		for _, alt := range e {
			if n := l.match(alt, offset); n > best {
				best = n
			}
		}
		return best

	case *ebnf.Repetition:
		total := 0
		for {
			n := l.match(e.Body, offset+total)
			if n <= 0 {
				return total
			}
			total += n
		}

	case *ebnf.Option:
		if n := l.match(e.Body, offset); n > 0 {
			return n
		}
		return 0

	case *ebnf.Group:
		return l.match(e.Body, offset)

	case *ebnf.Name:
		return l.matchName(e.String, offset)
	}
	return noMatch
}

func (l *Lexer) matchName(name string, offset int) int {
	key := memoKey{name: name, offset: offset}
	if n, ok := l.memo[key]; ok {
		return n
	}
	// Left recursion.
	if l.visiting[key] {
		return noMatch
	}
	prod, ok := l.grammar[name]
	if !ok || prod.Expr == nil {
		l.memo[key] = noMatch
		return noMatch
	}

	l.visiting[key] = true
	n := l.match(prod.Expr, offset)
	delete(l.visiting, key)

	l.memo[key] = n
	return n
}

// matchRange matches a single byte range such as "a" … "z".
func (l *Lexer) matchRange(begin, end string, offset int) int {
	if offset >= len(l.input) || len(begin) != 1 || len(end) != 1 {
		return noMatch
	}
	ch := l.input[offset]
	if ch >= begin[0] && ch <= end[0] {
		return 1
	}
	return noMatch
}
