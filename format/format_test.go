package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/gqlcst/graphql/parser"
)

func TestTreeEncoder(t *testing.T) {
	res := parser.Parse([]byte("input Foo {}"))

	var buf bytes.Buffer
	require.NoError(t, NewTreeEncoder(&buf).Encode(res))

	want := `- DOCUMENT@0..12
    - INPUT_OBJECT_TYPE_DEFINITION@0..12
        - input_KW@0..5 "input"
        - NAME@6..9
            - IDENT@6..9 "Foo"
        - INPUT_FIELDS_DEFINITION@10..12
            - L_CURLY@10..11 "{"
            - R_CURLY@11..12 "}"
- ERROR@11..12 "}" Expected to have an InputValue definition, got }
`
	assert.Equal(t, want, buf.String())
}

func TestJSONEncoder(t *testing.T) {
	res := parser.Parse([]byte("extend input Foo # done\n"))

	var buf bytes.Buffer
	require.NoError(t, NewJSONEncoder(&buf).Encode(res))

	var got struct {
		Root struct {
			Kind     string `json:"kind"`
			Children []struct {
				Kind     string `json:"kind"`
				Children []struct {
					Kind string  `json:"kind"`
					Text *string `json:"text"`
				} `json:"children"`
			} `json:"children"`
		} `json:"root"`
		Errors []struct {
			Message string `json:"message"`
			Data    string `json:"data"`
			Span    struct {
				Start struct {
					Offset int `json:"offset"`
					Line   int `json:"line"`
					Column int `json:"column"`
				} `json:"start"`
			} `json:"span"`
		} `json:"errors"`
		Trailing []struct {
			Kind string `json:"kind"`
			Text string `json:"text"`
		} `json:"trailing"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "DOCUMENT", got.Root.Kind)
	require.Len(t, got.Root.Children, 1)
	ext := got.Root.Children[0]
	assert.Equal(t, "INPUT_OBJECT_TYPE_EXTENSION", ext.Kind)
	require.Len(t, ext.Children, 3)
	require.NotNil(t, ext.Children[0].Text)
	assert.Equal(t, "extend", *ext.Children[0].Text)

	require.Len(t, got.Errors, 1)
	assert.Equal(t, "no further data", got.Errors[0].Data)
	assert.Equal(t, 16, got.Errors[0].Span.Start.Offset)
	assert.Equal(t, 17, got.Errors[0].Span.Start.Column)

	require.Len(t, got.Trailing, 3)
	assert.Equal(t, "Comment", got.Trailing[1].Kind)
	assert.Equal(t, "# done", got.Trailing[1].Text)
}

func TestJSONEncoderCleanParseHasEmptyErrors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONEncoder(&buf).Encode(parser.Parse([]byte("scalar Date"))))
	assert.Contains(t, buf.String(), `"errors": []`)
	assert.NotContains(t, buf.String(), `"missing"`)
}

func TestASTJSONEncoderMarksPlaceholders(t *testing.T) {
	res := parser.Parse([]byte("input { a: Int }"))

	var buf bytes.Buffer
	require.NoError(t, NewASTJSONEncoder(&buf).Encode(res.Root))

	var root struct {
		Children []struct {
			Children []struct {
				Kind    string `json:"kind"`
				Missing bool   `json:"missing"`
			} `json:"children"`
		} `json:"children"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &root))
	require.Len(t, root.Children, 1)
	name := root.Children[0].Children[1]
	assert.Equal(t, "NAME", name.Kind)
	assert.True(t, name.Missing)
}

func TestLineEncoder(t *testing.T) {
	res := parser.Parse([]byte("input {\n  a String\n}"), parser.WithFile("schema.graphql"))

	var buf bytes.Buffer
	require.NoError(t, NewLineEncoder(&buf).Encode(res))

	want := []string{
		"schema.graphql:1:7: Expected Input Object Type Definition to have a Name, got {",
		"schema.graphql:2:5: Expected InputValue definition to have a :, got String",
	}
	assert.Equal(t, want, strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"))
}

func TestLineEncoderWithoutFile(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewLineEncoder(&buf).Encode(parser.Parse([]byte("scalar"))))
	assert.Equal(t, "<stdin>:1:7: Expected Scalar Type Definition to have a Name, got no further data\n", buf.String())

	buf.Reset()
	require.NoError(t, NewLineEncoder(&buf).Encode(parser.Parse([]byte("scalar Date"))))
	assert.Empty(t, buf.String())
}

func TestDebugEncoder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewDebugEncoder(&buf).Encode(parser.Parse([]byte("scalar Date"))))
	out := buf.String()
	assert.Contains(t, out, "parser.Result")
	assert.Contains(t, out, `"Date"`)
}

func TestNew(t *testing.T) {
	for _, name := range Names {
		enc, err := New(name, &bytes.Buffer{})
		require.NoError(t, err, name)
		assert.NotNil(t, enc, name)
	}
	_, err := New("xml", &bytes.Buffer{})
	assert.EqualError(t, err, "unknown format: xml")
}
