package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testParser(src string) *Parser {
	p := newParser(nil)
	tokens, _ := Tokenize([]byte(src), "")
	p.tokens = normalizeTokens(tokens)
	return p
}

func TestGuardFinishIsIdempotent(t *testing.T) {
	p := testParser("a")
	doc := p.startNode(KindDocument)
	name := p.startNode(KindName)
	p.bump(KindIdent)
	name.Finish()
	name.Finish()
	doc.Finish()
	doc.Finish()

	want := tree(`
- DOCUMENT@0..1
    - NAME@0..1
        - IDENT@0..1 "a"
`)
	if diff := cmp.Diff(want, p.builder.root.StringWithPositions()); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestGuardFinishClosesInnerNodes(t *testing.T) {
	p := testParser("a b")
	doc := p.startNode(KindDocument)
	p.startNode(KindField)
	p.startNode(KindName)
	p.bump(KindIdent)
	doc.Finish()

	if len(p.builder.stack) != 0 {
		t.Fatalf("stack not empty: %d frames open", len(p.builder.stack))
	}
	want := tree(`
- DOCUMENT@0..1
    - FIELD@0..1
        - NAME@0..1
            - IDENT@0..1 "a"
`)
	if diff := cmp.Diff(want, p.builder.root.StringWithPositions()); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyNodeIsZeroWidth(t *testing.T) {
	p := testParser("a  b")
	doc := p.startNode(KindDocument)
	p.bump(KindIdent)
	p.startNode(KindName).Finish()
	p.bump(KindIdent)
	p.startNode(KindType).Finish()
	doc.Finish()

	want := tree(`
- DOCUMENT@0..4
    - IDENT@0..1 "a"
    - NAME@3..3
    - IDENT@3..4 "b"
    - TYPE@4..4
`)
	if diff := cmp.Diff(want, p.builder.root.StringWithPositions()); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestStartNodeAtWrapsPrecedingSiblings(t *testing.T) {
	p := testParser("x Int !")
	doc := p.startNode(KindDocument)
	p.bump(KindIdent)
	cp := p.checkpoint()
	p.bump(KindIdent)
	wrap := p.startNodeAt(cp, KindNonNullType)
	p.bump(KindBang)
	wrap.Finish()
	doc.Finish()

	want := tree(`
- DOCUMENT@0..7
    - IDENT@0..1 "x"
    - NON_NULL_TYPE@2..7
        - IDENT@2..5 "Int"
        - BANG@6..7 "!"
`)
	if diff := cmp.Diff(want, p.builder.root.StringWithPositions()); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestBumpAtEndOfInputIsNoop(t *testing.T) {
	p := testParser("")
	doc := p.startNode(KindDocument)
	p.bump(KindIdent)
	p.bumpAny()
	doc.Finish()

	if got := len(p.builder.root.Children); got != 0 {
		t.Errorf("got %d children, want 0", got)
	}
	if p.pos != 0 {
		t.Errorf("cursor moved past EOF: %d", p.pos)
	}
}

func TestMustProgressWrapsStuckToken(t *testing.T) {
	p := testParser("? a")
	doc := p.startNode(KindDocument)
	progress := p.mustProgress()
	if progress() {
		t.Error("progress reported without consuming a token")
	}
	doc.Finish()

	errNode := p.builder.root.FirstChildOfKind(KindError)
	if errNode == nil || errNode.Text() != "?" {
		t.Fatalf("stuck token not wrapped: %s", p.builder.root)
	}
	if p.peek() != TokenName {
		t.Errorf("cursor: got %v, want Name", p.peek())
	}
}

func TestCursor(t *testing.T) {
	p := testParser("input Foo")

	if p.peek() != TokenName || p.peekN(1) != TokenName || p.peekN(2) != TokenEOF || p.peekN(10) != TokenEOF {
		t.Errorf("unexpected lookahead: %v %v %v", p.peek(), p.peekN(1), p.peekN(2))
	}
	if text, ok := p.peekData(); !ok || text != "input" {
		t.Errorf("peekData: got %q %v", text, ok)
	}
	if !p.atKeyword("input") || p.atKeyword("type") {
		t.Error("atKeyword mismatch")
	}

	doc := p.startNode(KindDocument)
	p.bump(KindInputKW)
	p.bump(KindIdent)
	if _, ok := p.peekData(); ok {
		t.Error("peekData at end of input should report false")
	}
	if got := p.position().Offset; got != 9 {
		t.Errorf("position at end: got %d, want 9", got)
	}
	p.expected("Thing", "a Name")
	doc.Finish()

	if diff := cmp.Diff([]string{"Expected Thing to have a Name, got no further data"}, messages(p.errors)); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
}

func messages(errs []*ParseError) []string {
	var out []string
	for _, e := range errs {
		out = append(out, e.Message)
	}
	return out
}
