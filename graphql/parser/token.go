package parser

import "fmt"

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Span struct {
	Start Position
	End   Position
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError
	TokenWhitespace
	TokenComment

	TokenName
	TokenInt
	TokenFloat
	TokenString

	// Punctuators
	TokenBang
	TokenDollar
	TokenAmp
	TokenSpread
	TokenComma
	TokenColon
	TokenEq
	TokenAt
	TokenLParen
	TokenRParen
	TokenLBracket
	TokenRBracket
	TokenLCurly
	TokenRCurly
	TokenPipe
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:        "EOF",
	TokenError:      "Error",
	TokenWhitespace: "Whitespace",
	TokenComment:    "Comment",
	TokenName:       "Name",
	TokenInt:        "Int",
	TokenFloat:      "Float",
	TokenString:     "String",
	TokenBang:       "!",
	TokenDollar:     "$",
	TokenAmp:        "&",
	TokenSpread:     "...",
	TokenComma:      ",",
	TokenColon:      ":",
	TokenEq:         "=",
	TokenAt:         "@",
	TokenLParen:     "(",
	TokenRParen:     ")",
	TokenLBracket:   "[",
	TokenRBracket:   "]",
	TokenLCurly:     "{",
	TokenRCurly:     "}",
	TokenPipe:       "|",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsTrivia reports whether tokens of this kind carry no syntactic meaning.
func (k TokenKind) IsTrivia() bool {
	return k == TokenWhitespace || k == TokenComment
}

// Token is a single lexeme. Leading holds the whitespace and comments that
// precede it in the source, so no input byte is lost.
type Token struct {
	Kind    TokenKind
	Span    Span
	Text    string
	Leading []Token
}

// FullText returns the token text including its leading trivia.
func (t Token) FullText() string {
	if len(t.Leading) == 0 {
		return t.Text
	}
	n := len(t.Text)
	for _, tr := range t.Leading {
		n += len(tr.Text)
	}
	buf := make([]byte, 0, n)
	for _, tr := range t.Leading {
		buf = append(buf, tr.Text...)
	}
	return string(append(buf, t.Text...))
}
