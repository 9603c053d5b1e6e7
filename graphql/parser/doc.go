// Package parser provides an error-tolerant parser for GraphQL documents.
//
// # Overview
//
// The parser turns a token stream into a lossless concrete syntax tree (CST).
// Every significant token of the input appears as a leaf, whitespace and
// comments ride along as leading trivia on the following token, and syntax
// errors are collected next to the tree instead of aborting the parse. Parsing
// never fails: a Result always carries a complete DOCUMENT tree.
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│   Lexer     │────▶│   Parser    │
//	│  (bytes)    │     │  (tokens)   │     │   (CST)     │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                                               │
//	                                               ▼
//	                                        ┌─────────────┐
//	                                        │ ParseErrors │
//	                                        └─────────────┘
//
// # Engine
//
// Grammar rules are methods on *Parser built from a small vocabulary:
//
//	p.peek()              // kind of the next token, TokenEOF at the end
//	p.peekData()          // text of the next token
//	p.bump(kind)          // consume the next token as a leaf of the open node
//	g := p.startNode(k)   // open a node; g.Finish() closes it
//	p.expected(c, what)   // record "Expected c to have what, got ..."
//
// A rule opens its node, defers Finish, and then walks its production:
// required elements are bumped when the lookahead matches and reported when
// it does not, optional clauses are guarded by a lookahead check, and lists
// loop until their closing delimiter. A rule never returns an error; when a
// required node is missing it is left in the tree with no children and a
// zero-width span.
//
// # Example
//
//	res := parser.Parse([]byte("input Foo { a: String b: Int! }"))
//	fmt.Print(res.Root.StringWithPositions())
//	for _, err := range res.Errors {
//	    fmt.Println(err)
//	}
//
// The output starts with:
//
//	- DOCUMENT@0..31
//	    - INPUT_OBJECT_TYPE_DEFINITION@0..31
//	        - input_KW@0..5 "input"
//	        - NAME@6..9
//	            - IDENT@6..9 "Foo"
package parser
