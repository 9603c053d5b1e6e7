package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	viper.Reset()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "schema.graphql", "input Foo {}")

	r := run(t, "", "parse", path)
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "- INPUT_FIELDS_DEFINITION@10..12")
	assert.Contains(t, r.stdout, `- ERROR@11..12 "}" Expected to have an InputValue definition, got }`)
}

func TestParseStdin(t *testing.T) {
	r := run(t, "extend input Foo", "parse", "-f", "diagnostics")
	require.NoError(t, r.err)
	assert.Equal(t, "<stdin>:1:17: Expected Input Object Type Extension to have Directives or Input Fields Definition, got no further data\n", r.stdout)
}

func TestParseFormatFromEnvironment(t *testing.T) {
	t.Setenv("GQLCST_FORMAT", "json")

	r := run(t, "input Foo { a: String b: Int! }", "parse", "-")
	require.NoError(t, r.err)
	var doc struct {
		Root   map[string]any `json:"root"`
		Errors []any          `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &doc))
	assert.Equal(t, "DOCUMENT", doc.Root["kind"])
	assert.Empty(t, doc.Errors)
}

func TestParseRecursionLimit(t *testing.T) {
	r := run(t, "{ a { b { c { d } } } }", "--recursion-limit", "2", "parse", "-f", "diagnostics")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "parser recursion limit reached")
}

func TestParseErrors(t *testing.T) {
	r := run(t, "", "parse", "-f", "xml")
	assert.EqualError(t, r.err, "unknown format: xml")

	r = run(t, "", "parse", filepath.Join(t.TempDir(), "missing.graphql"))
	assert.ErrorContains(t, r.err, "open:")
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.graphql", "input Foo { a: String b: Int! }")
	bad := writeFile(t, dir, "bad.graphql", "input {}")

	r := run(t, "", "check", dir)
	assert.True(t, errors.Is(r.err, errSyntax))
	assert.Equal(t, bad+":1:7: Expected Input Object Type Definition to have a Name, got {\n"+
		bad+":1:8: Expected to have an InputValue definition, got }\n", r.stdout)
	assert.Contains(t, r.stderr, "checked 2 files")
	assert.Contains(t, r.stderr, "2 errors")
}

func TestCheckSkipsBrokenSymlink(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.graphql", "scalar Date")
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone.graphql"), filepath.Join(dir, "link.graphql")))

	r := run(t, "", "check", dir)
	require.NoError(t, r.err)
	assert.Empty(t, r.stdout)
	assert.Contains(t, r.stderr, "checked 1 files")
}

func TestCheckCleanFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ok.gql", "extend input Foo @skip { a: String }")

	r := run(t, "", "check", "-q", path)
	require.NoError(t, r.err)
	assert.Empty(t, r.stdout)
	assert.Empty(t, r.stderr)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	config := writeFile(t, dir, "gqlcst.yaml", "format: diagnostics\n")

	r := run(t, "input {", "--config", config, "parse")
	require.NoError(t, r.err)
	assert.True(t, strings.HasPrefix(r.stdout, "<stdin>:1:7: Expected Input Object Type Definition to have a Name, got {"), r.stdout)

	r = run(t, "", "--config", filepath.Join(dir, "missing.yaml"), "parse")
	assert.ErrorContains(t, r.err, "read config")
}

func TestGrammarCheck(t *testing.T) {
	r := run(t, "", "grammar", "check")
	require.NoError(t, r.err)

	path := writeFile(t, t.TempDir(), "bad.ebnf", "Start = A | missing .\nA = \"a\" .\nUnused = \"u\" .\n")
	r = run(t, "", "grammar", "check", "--start", "Start", path)
	require.Error(t, r.err)
	lines := strings.Split(strings.TrimSpace(r.stdout), "\n")
	assert.Len(t, lines, 2)
}

func TestGrammarShow(t *testing.T) {
	r := run(t, "", "grammar", "show")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "InputObjectTypeDefinition")

	r = run(t, "", "grammar", "show", "--lexical")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "punctuator")
}

func TestGrammarTokens(t *testing.T) {
	path := writeFile(t, t.TempDir(), "q.graphql", "input Foo")

	r := run(t, "", "grammar", "tokens", path)
	require.NoError(t, r.err)
	assert.Equal(t, path+":1:1 name \"input\"\n"+
		path+":1:7 name \"Foo\"\n"+
		path+":1:10 EOF \"\"\n", r.stdout)
}

type scriptedPrompter struct {
	lines   []string
	prompts []string
}

func (p *scriptedPrompter) Prompt(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.lines) == 0 {
		return "", io.EOF
	}
	line := p.lines[0]
	p.lines = p.lines[1:]
	return line, nil
}

func TestReadDocument(t *testing.T) {
	p := &scriptedPrompter{lines: []string{"input Foo {", "  a: Int", "}", "scalar Date"}}

	src, ok := readDocument(p)
	require.True(t, ok)
	assert.Equal(t, "input Foo {\n  a: Int\n}", src)
	assert.Equal(t, []string{promptMain, promptCont, promptCont}, p.prompts)

	src, ok = readDocument(p)
	require.True(t, ok)
	assert.Equal(t, "scalar Date", src)

	_, ok = readDocument(p)
	assert.False(t, ok)
}

func TestReadDocumentEmptyLineForcesParse(t *testing.T) {
	p := &scriptedPrompter{lines: []string{"extend input Foo", ""}}
	src, ok := readDocument(p)
	require.True(t, ok)
	assert.Equal(t, "extend input Foo", src)
}

func TestReadDocumentBlockString(t *testing.T) {
	p := &scriptedPrompter{lines: []string{`"""`, "docs", `""" scalar Date`}}
	src, ok := readDocument(p)
	require.True(t, ok)
	assert.Equal(t, "\"\"\"\ndocs\n\"\"\" scalar Date", src)
}

func TestReadDocumentCommand(t *testing.T) {
	src, ok := readDocument(&scriptedPrompter{lines: []string{":quit"}})
	require.True(t, ok)
	assert.Equal(t, ":quit", src)
}
