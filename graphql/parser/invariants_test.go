package parser

import (
	"math/rand"
	"strings"
	"testing"
)

// checkInvariants verifies the properties every parse must have regardless
// of how broken the input is.
func checkInvariants(t *testing.T, src string, res *Result) {
	t.Helper()

	if res.Root == nil || res.Root.Kind != KindDocument {
		t.Fatalf("root: got %v, want DOCUMENT", res.Root)
	}
	if got := res.SourceText(); got != src {
		t.Fatalf("source text mismatch:\ngot  %q\nwant %q", got, src)
	}

	var leaves strings.Builder
	for _, tok := range res.Root.Tokens() {
		leaves.WriteString(tok.Text)
	}
	var significant strings.Builder
	tokens, _ := Tokenize([]byte(src), "")
	for _, tok := range tokens {
		significant.WriteString(tok.Text)
	}
	if leaves.String() != significant.String() {
		t.Errorf("leaf text mismatch:\ngot  %q\nwant %q", leaves.String(), significant.String())
	}

	res.Root.Walk(func(n *Node) bool {
		if n.IsMissing() && n.Span.Len() != 0 {
			t.Errorf("placeholder %s has width %d", n.Kind, n.Span.Len())
		}
		prevEnd := n.Span.Start.Offset
		for _, c := range n.Children {
			if c.Span.Start.Offset < prevEnd {
				t.Errorf("%s child %s starts at %d before %d", n.Kind, c.Kind, c.Span.Start.Offset, prevEnd)
			}
			if c.Span.End.Offset > n.Span.End.Offset {
				t.Errorf("%s child %s ends at %d after parent end %d", n.Kind, c.Kind, c.Span.End.Offset, n.Span.End.Offset)
			}
			prevEnd = c.Span.End.Offset
		}
		return true
	})

	for _, e := range res.Errors {
		if e.Span.Start.Offset < 0 || e.Span.End.Offset > len(src) || e.Span.Len() < 0 {
			t.Errorf("error %q has span %d..%d outside input", e.Message, e.Span.Start.Offset, e.Span.End.Offset)
		}
		if e.Message == "" {
			t.Error("error with empty message")
		}
	}
}

var soupWords = []string{
	"input", "type", "extend", "schema", "scalar", "interface", "union", "enum",
	"directive", "query", "mutation", "fragment", "on", "implements", "repeatable",
	"true", "null", "Foo", "a", "String", "FIELD",
	"{", "}", "(", ")", "[", "]", "!", "@", ":", "=", "|", "&", "...", "$", ",",
	"1", "2.5", `"s"`, `"""b"""`, "#c\n", "?", `"open`,
}

func randomSoup(r *rand.Rand) string {
	n := r.Intn(40)
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 && r.Intn(3) > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(soupWords[r.Intn(len(soupWords))])
	}
	return sb.String()
}

func TestParseRandomTokenSoup(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		src := randomSoup(r)
		res := Parse([]byte(src))
		checkInvariants(t, src, res)
		if t.Failed() {
			t.Fatalf("input %d: %q", i, src)
		}
	}
}

func TestParseTruncatedDocuments(t *testing.T) {
	// Every prefix of a valid document parses to a tree; prefixes that stop
	// inside a construct are incomplete.
	src := `"desc" type Query implements Node @key(fields: "id") { user(id: ID! = 1): [User!]! }
extend input Foo @skip { a: String = "x" }
query Q($v: Int) { a: b(c: [1, {d: $v}]) ...F ... on T { e } }
directive @d on FIELD | QUERY
`
	for i := 0; i <= len(src); i++ {
		prefix := src[:i]
		res := Parse([]byte(prefix))
		checkInvariants(t, prefix, res)
		if t.Failed() {
			t.Fatalf("prefix %d: %q", i, prefix)
		}
	}
}

func FuzzParse(f *testing.F) {
	for _, tt := range validDocuments {
		f.Add(tt.input)
	}
	f.Add("input { a: String b: Int! }")
	f.Add("input Foo {}")
	f.Add("extend input Foo")
	f.Add("{ a(b: [[[[{c: $d}]]]]) }")

	f.Fuzz(func(t *testing.T, src string) {
		res := Parse([]byte(src), WithRecursionLimit(64))
		checkInvariants(t, src, res)
	})
}
