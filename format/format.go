package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/gqlcst/graphql/parser"
)

// Encoder writes a parse result to an underlying writer.
type Encoder interface {
	Encode(res *parser.Result) error
}

// Names lists the formats accepted by New.
var Names = []string{"tree", "json", "diagnostics", "go"}

// New returns the encoder registered under name.
func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "tree":
		return NewTreeEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "diagnostics":
		return NewLineEncoder(w), nil
	case "go":
		return NewDebugEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format: %s", name)
}
