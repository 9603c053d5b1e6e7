package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/gqlcst/graphql/parser"
)

// ASTJSONEncoder writes a single syntax tree as indented JSON.
type ASTJSONEncoder struct {
	w io.Writer
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(node *parser.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *ASTJSONEncoder) MarshalText(node *parser.Node) ([]byte, error) {
	return json.MarshalIndent(nodeToJSON(node), "", "  ")
}

type astJSONNode struct {
	Kind     string         `json:"kind"`
	Span     astJSONSpan    `json:"span"`
	Text     *string        `json:"text,omitempty"`
	Leading  []astJSONToken `json:"leading,omitempty"`
	Missing  bool           `json:"missing,omitempty"`
	Children []*astJSONNode `json:"children,omitempty"`
}

type astJSONSpan struct {
	Start astJSONPosition `json:"start"`
	End   astJSONPosition `json:"end"`
}

type astJSONPosition struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

type astJSONToken struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

func spanToJSON(s parser.Span) astJSONSpan {
	return astJSONSpan{
		Start: astJSONPosition{Offset: s.Start.Offset, Line: s.Start.Line, Column: s.Start.Column},
		End:   astJSONPosition{Offset: s.End.Offset, Line: s.End.Line, Column: s.End.Column},
	}
}

func triviaToJSON(tokens []parser.Token) []astJSONToken {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]astJSONToken, len(tokens))
	for i, tok := range tokens {
		out[i] = astJSONToken{Kind: tok.Kind.String(), Text: tok.Text}
	}
	return out
}

func nodeToJSON(n *parser.Node) *astJSONNode {
	jn := &astJSONNode{
		Kind: n.Kind.String(),
		Span: spanToJSON(n.Span),
	}

	if n.IsToken() {
		text := n.Token.Text
		jn.Text = &text
		jn.Leading = triviaToJSON(n.Token.Leading)
	} else if n.IsMissing() {
		jn.Missing = true
	}

	if len(n.Children) > 0 {
		jn.Children = make([]*astJSONNode, len(n.Children))
		for i, child := range n.Children {
			jn.Children[i] = nodeToJSON(child)
		}
	}

	return jn
}
