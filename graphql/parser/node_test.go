package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSyntaxKindString(t *testing.T) {
	tests := []struct {
		kind SyntaxKind
		want string
	}{
		{KindDocument, "DOCUMENT"},
		{KindInputObjectTypeDefinition, "INPUT_OBJECT_TYPE_DEFINITION"},
		{KindNonNullType, "NON_NULL_TYPE"},
		{KindInputKW, "input_KW"},
		{KindLCurly, "L_CURLY"},
		{KindError, "ERROR"},
		{SyntaxKind(9999), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	if k, ok := LookupKeyword("input"); !ok || k != KindInputKW {
		t.Errorf("input: got %v %v", k, ok)
	}
	if k, ok := LookupKeyword("repeatable"); !ok || k != KindRepeatableKW {
		t.Errorf("repeatable: got %v %v", k, ok)
	}
	if _, ok := LookupKeyword("Input"); ok {
		t.Error("keywords are case sensitive")
	}
}

func TestIsDefinition(t *testing.T) {
	for _, k := range []SyntaxKind{KindOperationDefinition, KindInputObjectTypeDefinition, KindSchemaExtension, KindInputObjectTypeExtension} {
		if !k.IsDefinition() {
			t.Errorf("%v should be a definition", k)
		}
	}
	for _, k := range []SyntaxKind{KindDocument, KindName, KindInputFieldsDefinition, KindError} {
		if k.IsDefinition() {
			t.Errorf("%v should not be a definition", k)
		}
	}
}

func TestNodeAccessors(t *testing.T) {
	res := Parse([]byte("  \"d\" input Foo @a @b { x: Int }\n"))
	def := res.Root.Children[0]

	if got := def.FirstChildOfKind(KindName).Text(); got != "Foo" {
		t.Errorf("name: got %q", got)
	}
	if got := len(def.FirstChildOfKind(KindDirectives).ChildrenOfKind(KindDirective)); got != 2 {
		t.Errorf("got %d directives, want 2", got)
	}
	if def.FirstChildOfKind(KindArguments) != nil {
		t.Error("unexpected ARGUMENTS child")
	}
	if got := def.Text(); got != `"d"inputFoo@a@b{x:Int}` {
		t.Errorf("text: got %q", got)
	}
	if got := def.SourceText(); got != `  "d" input Foo @a @b { x: Int }` {
		t.Errorf("source text: got %q", got)
	}

	var kinds []SyntaxKind
	def.Walk(func(n *Node) bool {
		kinds = append(kinds, n.Kind)
		return n.Kind != KindInputFieldsDefinition && n.Kind != KindDirectives
	})
	want := []SyntaxKind{
		KindInputObjectTypeDefinition,
		KindDescription, KindStringValue, KindStringToken,
		KindInputKW,
		KindName, KindIdent,
		KindDirectives,
		KindInputFieldsDefinition,
	}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("walk mismatch (-want +got):\n%s", diff)
	}
}

func TestNodeString(t *testing.T) {
	res := Parse([]byte("scalar Date"))
	want := tree(`
DOCUMENT
  SCALAR_TYPE_DEFINITION
    scalar_KW scalar
    NAME
      IDENT Date
`)
	if diff := cmp.Diff(want, res.Root.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func leafAt(kind SyntaxKind, text string, start, end int) *Node {
	tok := &Token{Text: text, Span: Span{Start: Position{Offset: start}, End: Position{Offset: end}}}
	return &Node{Kind: kind, Span: tok.Span, Token: tok}
}

func TestNodeAddChild(t *testing.T) {
	at := Position{Offset: 4}
	n := &Node{Kind: KindName, Span: Span{Start: at, End: at}}
	n.AddChild(nil)
	if len(n.Children) != 0 || !n.IsMissing() {
		t.Fatal("nil child must be ignored")
	}

	n.AddChild(leafAt(KindIdent, "a", 6, 7))
	if n.Span.Start.Offset != 6 || n.Span.End.Offset != 7 {
		t.Errorf("first child: got span %d..%d, want 6..7", n.Span.Start.Offset, n.Span.End.Offset)
	}
	n.AddChild(leafAt(KindComma, ",", 9, 10))
	if n.Span.Start.Offset != 6 || n.Span.End.Offset != 10 {
		t.Errorf("second child: got span %d..%d, want 6..10", n.Span.Start.Offset, n.Span.End.Offset)
	}
	if n.IsMissing() || n.IsToken() || !n.Children[0].IsToken() {
		t.Error("accessor mismatch")
	}
}

func TestNodeTruncate(t *testing.T) {
	n := &Node{Kind: KindDocument}
	n.AddChild(leafAt(KindIdent, "a", 0, 1))
	n.AddChild(leafAt(KindIdent, "b", 2, 3))
	n.AddChild(leafAt(KindIdent, "c", 4, 5))

	removed := n.truncate(1)
	if len(removed) != 2 || len(n.Children) != 1 {
		t.Fatalf("got %d removed, %d kept", len(removed), len(n.Children))
	}
	if n.Span.End.Offset != 1 {
		t.Errorf("got end %d, want 1", n.Span.End.Offset)
	}

	n.truncate(0)
	if len(n.Children) != 0 || n.Span.Start.Offset != 0 || n.Span.End.Offset != 0 {
		t.Errorf("got %d children, span %d..%d", len(n.Children), n.Span.Start.Offset, n.Span.End.Offset)
	}
}
