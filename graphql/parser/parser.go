package parser

import (
	"fmt"
	"io"

	"github.com/tliron/commonlog"
)

// DefaultRecursionLimit bounds the nesting depth of selection sets, values
// and list types.
const DefaultRecursionLimit = 500

type Option func(*Parser)

func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// WithRecursionLimit sets the maximum nesting depth. Input nested deeper is
// reported once and the remainder of the document is kept in an ERROR node.
func WithRecursionLimit(limit int) Option {
	return func(p *Parser) {
		p.recursionLimit = limit
	}
}

func WithLogger(log commonlog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// Parser holds the state of one parse: the token cursor, the tree builder
// and the error sink. A Parser is not safe for concurrent use; separate
// parses share nothing and may run in parallel.
type Parser struct {
	file           string
	recursionLimit int
	log            commonlog.Logger
	reader         io.Reader
	input          []byte

	tokens   []Token
	pos      int
	builder  builder
	errors   []*ParseError
	depth    int
	limitHit bool
}

func newParser(opts []Option) *Parser {
	p := &Parser{
		recursionLimit: DefaultRecursionLimit,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = commonlog.GetLogger("gqlcst.parser")
	}
	return p
}

// NewParser returns a parser that reads its document from r when Finish or
// IsComplete is called.
func NewParser(r io.Reader, opts ...Option) *Parser {
	p := newParser(opts)
	p.reader = r
	return p
}

// Parse lexes and parses src. It always returns a tree.
func Parse(src []byte, opts ...Option) *Result {
	p := newParser(opts)
	p.input = src
	return p.parseInput()
}

// ParseTokens parses an already lexed token stream. Trivia tokens in the
// stream are attached to the following token; a missing EOF is synthesized.
func ParseTokens(tokens []Token, opts ...Option) *Result {
	p := newParser(opts)
	return p.run(tokens)
}

func (p *Parser) readAll() error {
	if p.input != nil {
		return nil
	}
	data, err := io.ReadAll(p.reader)
	if err != nil {
		return err
	}
	p.input = data
	return nil
}

// IsComplete reports whether the input read so far forms a document that
// does not end in the middle of a construct. "type Foo {" is not complete.
func (p *Parser) IsComplete() bool {
	if err := p.readAll(); err != nil {
		return false
	}
	if len(p.input) == 0 {
		return false
	}
	return !p.parseInput().Incomplete()
}

// Finish reads the remaining input and parses it. The only error it returns
// comes from reading; syntax errors are reported in the Result.
func (p *Parser) Finish() (*Result, error) {
	if err := p.readAll(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return p.parseInput(), nil
}

// Reset clears all parse state for reuse with new input. Options are kept.
func (p *Parser) Reset(r io.Reader) {
	p.reader = r
	p.input = nil
	p.tokens = nil
	p.pos = 0
	p.errors = nil
	p.depth = 0
	p.limitHit = false
	p.builder = builder{}
}

func (p *Parser) parseInput() *Result {
	tokens, lexErrors := Tokenize(p.input, p.file)
	p.errors = append([]*ParseError(nil), lexErrors...)
	return p.run(tokens)
}

func (p *Parser) run(tokens []Token) *Result {
	p.tokens = normalizeTokens(tokens)
	p.pos = 0
	p.depth = 0
	p.limitHit = false
	p.builder = builder{}

	p.parseDocument()

	eof := p.tokens[len(p.tokens)-1]
	p.log.Debugf("parsed %q: %d tokens, %d errors", p.file, len(p.tokens)-1, len(p.errors))
	return &Result{
		Root:     p.builder.root,
		Errors:   p.errors,
		Trailing: eof.Leading,
	}
}

func normalizeTokens(in []Token) []Token {
	out := make([]Token, 0, len(in)+1)
	var trivia []Token
	var eof *Token
	for i, tok := range in {
		if tok.Kind.IsTrivia() {
			trivia = append(trivia, tok)
			continue
		}
		if tok.Kind == TokenEOF {
			eof = &in[i]
			break
		}
		if len(trivia) > 0 {
			tok.Leading = append(trivia, tok.Leading...)
			trivia = nil
		}
		out = append(out, tok)
	}

	end := Token{Kind: TokenEOF}
	if eof != nil {
		end = *eof
	} else if len(in) > 0 {
		last := in[len(in)-1].Span.End
		end.Span = Span{Start: last, End: last}
	}
	end.Leading = append(trivia, end.Leading...)
	return append(out, end)
}

// Token cursor

func (p *Parser) peek() TokenKind {
	return p.tokens[p.pos].Kind
}

func (p *Parser) peekN(n int) TokenKind {
	if p.pos+n >= len(p.tokens) {
		return TokenEOF
	}
	return p.tokens[p.pos+n].Kind
}

// peekData returns the text of the next token, or false at end of input.
func (p *Parser) peekData() (string, bool) {
	tok := p.tokens[p.pos]
	if tok.Kind == TokenEOF {
		return "", false
	}
	return tok.Text, true
}

func (p *Parser) peekDataN(n int) string {
	if p.pos+n >= len(p.tokens) {
		return ""
	}
	return p.tokens[p.pos+n].Text
}

// atKeyword reports whether the next token is a name spelling kw.
func (p *Parser) atKeyword(kw string) bool {
	tok := p.tokens[p.pos]
	return tok.Kind == TokenName && tok.Text == kw
}

// bump consumes the next token and attaches it to the open node as a leaf
// tagged kind. Checking the lookahead is the caller's job. At end of input
// there is nothing to consume and bump does nothing.
func (p *Parser) bump(kind SyntaxKind) {
	if p.peek() == TokenEOF {
		return
	}
	tok := p.tokens[p.pos]
	p.pos++
	p.builder.token(kind, &tok)
}

// bumpAny consumes the next token under the kind its token kind implies.
func (p *Parser) bumpAny() {
	p.bump(leafKind(p.peek()))
}

func leafKind(k TokenKind) SyntaxKind {
	switch k {
	case TokenName:
		return KindIdent
	case TokenInt:
		return KindIntToken
	case TokenFloat:
		return KindFloatToken
	case TokenString:
		return KindStringToken
	case TokenBang:
		return KindBang
	case TokenDollar:
		return KindDollar
	case TokenAmp:
		return KindAmp
	case TokenSpread:
		return KindSpread
	case TokenComma:
		return KindComma
	case TokenColon:
		return KindColon
	case TokenEq:
		return KindEq
	case TokenAt:
		return KindAt
	case TokenLParen:
		return KindLParen
	case TokenRParen:
		return KindRParen
	case TokenLBracket:
		return KindLBracket
	case TokenRBracket:
		return KindRBracket
	case TokenLCurly:
		return KindLCurly
	case TokenRCurly:
		return KindRCurly
	case TokenPipe:
		return KindPipe
	}
	return KindError
}

// position is where a node opened now would start: the next token, or the
// end of the last consumed token once the input is exhausted.
func (p *Parser) position() Position {
	tok := p.tokens[p.pos]
	if tok.Kind == TokenEOF && p.pos > 0 {
		return p.tokens[p.pos-1].Span.End
	}
	return tok.Span.Start
}

// mustProgress returns a function that checks if the parser has advanced.
// Call it at the start of a loop iteration, then call the returned function
// at the end to break if no progress was made. A stuck token is moved into
// an ERROR node so it still appears in the tree.
func (p *Parser) mustProgress() func() bool {
	saved := p.pos
	return func() bool {
		if p.pos == saved {
			if p.peek() != TokenEOF {
				g := p.startNode(KindError)
				p.bumpAny()
				g.Finish()
			}
			return false
		}
		return true
	}
}

// Error sink

func (p *Parser) pushErr(msg string) {
	if p.limitHit {
		return
	}
	tok := p.tokens[p.pos]
	e := &ParseError{Message: msg, Data: tok.Text, Span: tok.Span}
	if tok.Kind == TokenEOF {
		pos := p.position()
		e.Data = eofData
		e.Span = Span{Start: pos, End: pos}
	}
	p.errors = append(p.errors, e)
}

// expected records "Expected <construct> to have <what>, got <found>".
func (p *Parser) expected(construct, what string) {
	p.pushErr(p.gotMsg(construct, what))
}

// missing records an error and leaves a zero-width node of the given kind in
// place of the absent element.
func (p *Parser) missing(kind SyntaxKind, construct, what string) {
	p.expected(construct, what)
	p.startNode(kind).Finish()
}

// errorUntil records msg and wraps the next token, plus every following
// token for which stop returns false, in one ERROR node.
func (p *Parser) errorUntil(msg string, stop func() bool) {
	p.pushErr(msg)
	if p.peek() == TokenEOF {
		return
	}
	g := p.startNode(KindError)
	defer g.Finish()
	p.bumpAny()
	for p.peek() != TokenEOF && !stop() {
		p.bumpAny()
	}
}

// Recursion guard

// enter is called by rules that can nest. When the limit is exceeded it
// reports once, wraps the rest of the input in an ERROR node, and returns
// false; otherwise the caller must defer leave. Errors from the rules still
// open at that point are dropped.
func (p *Parser) enter() bool {
	if p.recursionLimit > 0 && p.depth >= p.recursionLimit {
		if !p.limitHit {
			p.log.Warningf("%s: recursion limit %d reached", p.file, p.recursionLimit)
			p.errorUntil("parser recursion limit reached", func() bool { return false })
			p.limitHit = true
		}
		return false
	}
	p.depth++
	return true
}

func (p *Parser) leave() {
	p.depth--
}
