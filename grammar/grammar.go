// Package grammar holds the reference EBNF grammar of GraphQL documents and a
// tokenizer driven by it.
//
// The grammar is split over three files: syntax.ebnf describes documents,
// lexical.ebnf describes the token stream, and values.ebnf holds the tokens
// both of them share. Productions follow the golang.org/x/exp/ebnf
// conventions: names starting with a lower case letter are lexical.
package grammar

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/exp/ebnf"
)

var (
	//go:embed syntax.ebnf
	syntaxSource string
	//go:embed lexical.ebnf
	lexicalSource string
	//go:embed values.ebnf
	valuesSource string
)

const (
	// SyntaxStart is the start production of the syntax grammar.
	SyntaxStart = "Document"
	// LexicalStart is the start production of the token grammar.
	LexicalStart = "token"
)

// TokenKinds are the lexical productions a Lexer tries at each position, in
// order of preference for matches of equal length.
var TokenKinds = []string{
	"unicodeBOM", "whiteSpace", "lineTerminator", "comment", "comma",
	"punctuator", "name", "intValue", "floatValue", "stringValue",
}

// IgnoredKinds are the token kinds that carry no meaning for the syntax.
var IgnoredKinds = map[string]bool{
	"unicodeBOM":     true,
	"whiteSpace":     true,
	"lineTerminator": true,
	"comment":        true,
}

// Source returns the text of the syntax grammar followed by the shared value
// tokens, as parsed by Syntax.
func Source() string {
	return syntaxSource + "\n" + valuesSource
}

// LexicalSource returns the text of the token grammar followed by the shared
// value tokens, as parsed by Lexical.
func LexicalSource() string {
	return lexicalSource + "\n" + valuesSource
}

// Syntax parses the embedded document grammar.
func Syntax() (ebnf.Grammar, error) {
	return ebnf.Parse("syntax.ebnf", strings.NewReader(Source()))
}

// Lexical parses the embedded token grammar.
func Lexical() (ebnf.Grammar, error) {
	return ebnf.Parse("lexical.ebnf", strings.NewReader(LexicalSource()))
}

// Verify parses and verifies both embedded grammars.
func Verify() error {
	var err error
	err = multierr.Append(err, verifySource("syntax.ebnf", Source(), SyntaxStart))
	err = multierr.Append(err, verifySource("lexical.ebnf", LexicalSource(), LexicalStart))
	return err
}

func verifySource(name, src, start string) error {
	g, err := ebnf.Parse(name, strings.NewReader(src))
	if err != nil {
		return err
	}
	return ebnf.Verify(g, start)
}

// Check parses the grammar in r and, when start is not empty, verifies that
// every production is defined and reachable from start.
func Check(filename string, r io.Reader, start string) error {
	g, err := ebnf.Parse(filename, r)
	if err != nil {
		return err
	}
	if start == "" {
		return nil
	}
	return ebnf.Verify(g, start)
}

// CheckFile is Check on the named file.
func CheckFile(filename, start string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()
	return Check(filename, f, start)
}

// Errors splits an error returned by this package into its parts. The ebnf
// package reports all problems of a grammar at once as a list.
func Errors(err error) []error {
	if err == nil {
		return nil
	}
	var out []error
	for _, e := range multierr.Errors(err) {
		v := reflect.ValueOf(e)
		if v.Kind() != reflect.Slice {
			out = append(out, e)
			continue
		}
		for i := 0; i < v.Len(); i++ {
			if item, ok := v.Index(i).Interface().(error); ok {
				out = append(out, item)
			}
		}
	}
	return out
}
