package format

import (
	"io"

	"github.com/kr/pretty"

	"github.com/dhamidi/gqlcst/graphql/parser"
)

// DebugEncoder writes the result as a Go value literal, for inspecting the
// exact field contents of nodes and tokens.
type DebugEncoder struct {
	w io.Writer
}

func NewDebugEncoder(w io.Writer) *DebugEncoder {
	return &DebugEncoder{w: w}
}

func (e *DebugEncoder) Encode(res *parser.Result) error {
	_, err := pretty.Fprintf(e.w, "%# v\n", res)
	return err
}
