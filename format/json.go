package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/gqlcst/graphql/parser"
)

// JSONEncoder writes the tree, the errors and the trailing trivia of a parse
// result as one JSON document.
type JSONEncoder struct {
	w   io.Writer
	res *parser.Result
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(res *parser.Result) error {
	e.res = res
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.buildResultData(), "", "  ")
}

type jsonResult struct {
	Root     *astJSONNode   `json:"root"`
	Errors   []jsonError    `json:"errors"`
	Trailing []astJSONToken `json:"trailing,omitempty"`
}

type jsonError struct {
	Message string      `json:"message"`
	Data    string      `json:"data"`
	Span    astJSONSpan `json:"span"`
}

func (e *JSONEncoder) buildResultData() jsonResult {
	data := jsonResult{
		Root:     nodeToJSON(e.res.Root),
		Errors:   make([]jsonError, 0, len(e.res.Errors)),
		Trailing: triviaToJSON(e.res.Trailing),
	}
	for _, pe := range e.res.Errors {
		data.Errors = append(data.Errors, jsonError{
			Message: pe.Message,
			Data:    pe.Data,
			Span:    spanToJSON(pe.Span),
		})
	}
	return data
}
