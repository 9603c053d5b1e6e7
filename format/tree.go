package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/gqlcst/graphql/parser"
)

// TreeEncoder writes the indented KIND@start..end dump of the tree followed by
// one "- ERROR@start..end" line per error.
type TreeEncoder struct {
	w io.Writer
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(res *parser.Result) error {
	_, err := io.WriteString(e.w, e.String(res))
	return err
}

func (e *TreeEncoder) String(res *parser.Result) string {
	var sb strings.Builder
	sb.WriteString(res.Root.StringWithPositions())
	for _, pe := range res.Errors {
		fmt.Fprintf(&sb, "- ERROR@%d..%d %q %s\n", pe.Span.Start.Offset, pe.Span.End.Offset, pe.Data, pe.Message)
	}
	return sb.String()
}
