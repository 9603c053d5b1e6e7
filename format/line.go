package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/gqlcst/graphql/parser"
)

// LineEncoder writes one "file:line:col: message" line per error, the way
// compilers report diagnostics. A clean parse writes nothing.
type LineEncoder struct {
	w   io.Writer
	res *parser.Result
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(res *parser.Result) error {
	e.res = res
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, pe := range e.res.Errors {
		fmt.Fprintf(&sb, "%s: %s\n", location(pe.Span.Start), pe.Message)
	}
	return []byte(sb.String()), nil
}

func location(pos parser.Position) string {
	file := pos.File
	if file == "" {
		file = "<stdin>"
	}
	return fmt.Sprintf("%s:%d:%d", file, pos.Line, pos.Column)
}
