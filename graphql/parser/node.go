package parser

import (
	"fmt"
	"strings"
)

// Node is a node of the concrete syntax tree. Leaves have a non-nil Token and
// no children; interior nodes own their children in source order. An interior
// node with no children marks a required element that was absent from the
// input; its span is zero-width.
type Node struct {
	Kind     SyntaxKind
	Span     Span
	Children []*Node
	Token    *Token
}

// AddChild appends child and grows the span of n to cover it. The first child
// replaces the zero-width span of an empty node.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	if len(n.Children) == 0 {
		n.Span = child.Span
	} else {
		n.Span.End = child.Span.End
	}
	n.Children = append(n.Children, child)
}

// truncate removes and returns the children from index i on, shrinking the
// span back to the remaining children.
func (n *Node) truncate(i int) []*Node {
	removed := append([]*Node(nil), n.Children[i:]...)
	n.Children = n.Children[:i]
	switch {
	case i > 0:
		n.Span.End = n.Children[i-1].Span.End
	case len(removed) > 0:
		n.Span.End = removed[0].Span.Start
		n.Span.Start = removed[0].Span.Start
	}
	return removed
}

func (n *Node) IsToken() bool {
	return n.Token != nil
}

// IsMissing reports whether n is a zero-width placeholder for an element the
// parser expected but did not find.
func (n *Node) IsMissing() bool {
	return n.Token == nil && len(n.Children) == 0
}

func (n *Node) FirstChildOfKind(kind SyntaxKind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

func (n *Node) ChildrenOfKind(kind SyntaxKind) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			result = append(result, child)
		}
	}
	return result
}

// Walk calls fn for n and each of its descendants in document order. If fn
// returns false the children of that node are skipped.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Tokens returns the leaf tokens under n in document order.
func (n *Node) Tokens() []*Token {
	var toks []*Token
	n.Walk(func(c *Node) bool {
		if c.IsToken() {
			toks = append(toks, c.Token)
		}
		return true
	})
	return toks
}

// Text returns the concatenated text of the significant tokens under n.
func (n *Node) Text() string {
	if n.IsToken() {
		return n.Token.Text
	}
	var sb strings.Builder
	for _, tok := range n.Tokens() {
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

// SourceText returns the text under n including whitespace and comments.
func (n *Node) SourceText() string {
	var sb strings.Builder
	for _, tok := range n.Tokens() {
		for _, tr := range tok.Leading {
			sb.WriteString(tr.Text)
		}
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

func (n *Node) String() string {
	var sb strings.Builder
	n.writeIndent(&sb, 0, false)
	return sb.String()
}

// StringWithPositions dumps the tree one node per line as
// "- KIND@start..end" with byte offsets, followed by the quoted text for
// tokens. Nesting is indented by four spaces.
func (n *Node) StringWithPositions() string {
	var sb strings.Builder
	n.writeIndent(&sb, 0, true)
	return sb.String()
}

func (n *Node) writeIndent(sb *strings.Builder, indent int, showPositions bool) {
	if showPositions {
		sb.WriteString(strings.Repeat("    ", indent))
		fmt.Fprintf(sb, "- %s@%d..%d", n.Kind, n.Span.Start.Offset, n.Span.End.Offset)
		if n.IsToken() {
			fmt.Fprintf(sb, " %q", n.Token.Text)
		}
	} else {
		sb.WriteString(strings.Repeat("  ", indent))
		sb.WriteString(n.Kind.String())
		if n.IsToken() {
			sb.WriteString(" ")
			sb.WriteString(n.Token.Text)
		}
	}
	sb.WriteString("\n")
	for _, child := range n.Children {
		child.writeIndent(sb, indent+1, showPositions)
	}
}
