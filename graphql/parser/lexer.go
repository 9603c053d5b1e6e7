package parser

import "fmt"

const msgUnterminatedBlockString = "Unterminated block string value"

type Lexer struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
	errors []*ParseError
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		pos:    0,
		line:   1,
		column: 1,
	}
}

// Tokenize lexes the whole input. Whitespace and comments are attached to the
// following token as leading trivia; trivia after the last significant token
// ends up on the trailing EOF token, which is always the last element.
func Tokenize(input []byte, file string) ([]Token, []*ParseError) {
	l := NewLexer(input, file)
	var tokens []Token
	var trivia []Token
	for {
		tok := l.NextToken()
		if tok.Kind.IsTrivia() {
			trivia = append(trivia, tok)
			continue
		}
		tok.Leading = trivia
		trivia = nil
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			break
		}
	}
	return tokens, l.Errors()
}

// Errors returns the lexical errors found so far.
func (l *Lexer) Errors() []*ParseError {
	return l.errors
}

func (l *Lexer) Position() Position {
	return Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) NextToken() Token {
	startPos := l.Position()

	if l.atEnd() {
		return Token{Kind: TokenEOF, Span: Span{Start: startPos, End: startPos}}
	}

	ch := l.peek()

	if isWhitespace(ch) || l.isBOM() {
		return l.scanWhitespace(startPos)
	}

	if ch == '#' {
		return l.scanComment(startPos)
	}

	if isNameStart(ch) {
		for isNameContinue(l.peek()) {
			l.advance()
		}
		return l.token(TokenName, startPos)
	}

	if isDigit(ch) || ch == '-' {
		return l.scanNumber(startPos)
	}

	if ch == '"' {
		if l.peekN(1) == '"' && l.peekN(2) == '"' {
			return l.scanBlockString(startPos)
		}
		return l.scanString(startPos)
	}

	return l.scanPunctuator(startPos)
}

func (l *Lexer) isBOM() bool {
	return l.peek() == 0xEF && l.peekN(1) == 0xBB && l.peekN(2) == 0xBF
}

func (l *Lexer) scanWhitespace(start Position) Token {
	for !l.atEnd() {
		if l.isBOM() {
			l.advanceN(3)
			continue
		}
		if !isWhitespace(l.peek()) {
			break
		}
		l.advance()
	}
	return l.token(TokenWhitespace, start)
}

func (l *Lexer) scanComment(start Position) Token {
	for !l.atEnd() && l.peek() != '\n' && l.peek() != '\r' {
		l.advance()
	}
	return l.token(TokenComment, start)
}

func (l *Lexer) scanNumber(start Position) Token {
	if l.peek() == '-' {
		l.advance()
		if !isDigit(l.peek()) {
			return l.errorToken(start, "Unexpected character \"-\", expected a digit")
		}
	}
	for isDigit(l.peek()) {
		l.advance()
	}

	kind := TokenInt
	if l.peek() == '.' {
		l.advance()
		if !isDigit(l.peek()) {
			return l.errorToken(start, "Invalid number, expected digit after \".\"")
		}
		for isDigit(l.peek()) {
			l.advance()
		}
		kind = TokenFloat
	}
	if l.peek() == 'e' || l.peek() == 'E' {
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		if !isDigit(l.peek()) {
			return l.errorToken(start, "Invalid number, expected digit in exponent")
		}
		for isDigit(l.peek()) {
			l.advance()
		}
		kind = TokenFloat
	}
	if isNameStart(l.peek()) || l.peek() == '.' {
		// 123abc or 1.2.3: swallow the rest so the whole run is one bad token.
		for isNameContinue(l.peek()) || l.peek() == '.' {
			l.advance()
		}
		return l.errorToken(start, "Invalid number, unexpected trailing characters")
	}
	return l.token(kind, start)
}

func (l *Lexer) scanString(start Position) Token {
	l.advance()
	for {
		switch l.peek() {
		case 0:
			if l.atEnd() {
				return l.errorToken(start, "Unterminated string value")
			}
			l.advance()
		case '\n', '\r':
			return l.errorToken(start, "Unterminated string value")
		case '"':
			l.advance()
			return l.token(TokenString, start)
		case '\\':
			l.advance()
			if !l.atEnd() && l.peek() != '\n' && l.peek() != '\r' {
				l.advance()
			}
		default:
			l.advance()
		}
	}
}

func (l *Lexer) scanBlockString(start Position) Token {
	l.advanceN(3)
	for !l.atEnd() {
		if l.peek() == '\\' && l.peekN(1) == '"' && l.peekN(2) == '"' && l.peekN(3) == '"' {
			l.advanceN(4)
			continue
		}
		if l.peek() == '"' && l.peekN(1) == '"' && l.peekN(2) == '"' {
			l.advanceN(3)
			return l.token(TokenString, start)
		}
		l.advance()
	}
	return l.errorToken(start, msgUnterminatedBlockString)
}

func (l *Lexer) scanPunctuator(start Position) Token {
	switch l.peek() {
	case '!':
		l.advance()
		return l.token(TokenBang, start)
	case '$':
		l.advance()
		return l.token(TokenDollar, start)
	case '&':
		l.advance()
		return l.token(TokenAmp, start)
	case '(':
		l.advance()
		return l.token(TokenLParen, start)
	case ')':
		l.advance()
		return l.token(TokenRParen, start)
	case '.':
		if l.peekN(1) == '.' && l.peekN(2) == '.' {
			l.advanceN(3)
			return l.token(TokenSpread, start)
		}
		for l.peek() == '.' {
			l.advance()
		}
		return l.errorToken(start, "Unterminated spread operator")
	case ',':
		l.advance()
		return l.token(TokenComma, start)
	case ':':
		l.advance()
		return l.token(TokenColon, start)
	case '=':
		l.advance()
		return l.token(TokenEq, start)
	case '@':
		l.advance()
		return l.token(TokenAt, start)
	case '[':
		l.advance()
		return l.token(TokenLBracket, start)
	case ']':
		l.advance()
		return l.token(TokenRBracket, start)
	case '{':
		l.advance()
		return l.token(TokenLCurly, start)
	case '}':
		l.advance()
		return l.token(TokenRCurly, start)
	case '|':
		l.advance()
		return l.token(TokenPipe, start)
	}

	ch := l.advance()
	// Keep multi-byte UTF-8 sequences together in a single error token.
	if ch >= 0x80 {
		for !l.atEnd() && l.peek()&0xC0 == 0x80 {
			l.advance()
		}
	}
	tok := l.token(TokenError, start)
	l.errors = append(l.errors, &ParseError{
		Message: fmt.Sprintf("Unexpected character %q", tok.Text),
		Data:    tok.Text,
		Span:    tok.Span,
	})
	return tok
}

func (l *Lexer) token(kind TokenKind, start Position) Token {
	end := l.Position()
	return Token{
		Kind: kind,
		Span: Span{Start: start, End: end},
		Text: string(l.input[start.Offset:end.Offset]),
	}
}

func (l *Lexer) errorToken(start Position, msg string) Token {
	tok := l.token(TokenError, start)
	l.errors = append(l.errors, &ParseError{
		Message: msg,
		Data:    tok.Text,
		Span:    tok.Span,
	})
	return tok
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isNameStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isNameContinue(ch byte) bool {
	return isNameStart(ch) || isDigit(ch)
}
