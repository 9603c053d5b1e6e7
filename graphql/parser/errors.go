package parser

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// eofData is what error messages report when the input ran out.
const eofData = "no further data"

// ParseError is a syntax or lexical diagnostic. Data is the text of the
// offending token, or "no further data" at end of input.
type ParseError struct {
	Message string
	Data    string
	Span    Span
}

func (e *ParseError) Error() string {
	if e.Span.Start.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Span.Start.Line, e.Span.Start.Column, e.Message)
	}
	return e.Message
}

// AtEOF reports whether the error was detected because the input ended.
func (e *ParseError) AtEOF() bool {
	return e.Data == eofData
}

// Result is the outcome of one parse. Root is always a complete DOCUMENT
// tree, however many errors were recorded.
type Result struct {
	Root   *Node
	Errors []*ParseError
	// Trailing is the whitespace and comments after the last token.
	Trailing []Token
}

// Err combines all recorded errors into one, or returns nil for a clean parse.
func (r *Result) Err() error {
	var err error
	for _, e := range r.Errors {
		err = multierr.Append(err, e)
	}
	return err
}

// Incomplete reports whether the parse stopped short because the input ended
// while a construct or a block string was still open.
func (r *Result) Incomplete() bool {
	for _, e := range r.Errors {
		if e.AtEOF() || e.Message == msgUnterminatedBlockString {
			return true
		}
	}
	return false
}

// SourceText reproduces the parsed input byte for byte.
func (r *Result) SourceText() string {
	var sb strings.Builder
	sb.WriteString(r.Root.SourceText())
	for _, tr := range r.Trailing {
		sb.WriteString(tr.Text)
	}
	return sb.String()
}
