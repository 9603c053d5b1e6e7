package workspace

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/gqlcst/graphql/parser"
)

type notification struct {
	method string
	params protocol.PublishDiagnosticsParams
}

func testContext(sent *[]notification) *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			*sent = append(*sent, notification{method, params.(protocol.PublishDiagnosticsParams)})
		},
	}
}

func TestToDiagnostics(t *testing.T) {
	res := parser.Parse([]byte("input {\n  a String\n}"))
	diags := ToDiagnostics(res)
	require.Len(t, diags, 2)

	assert.Equal(t, "Expected Input Object Type Definition to have a Name, got {", diags[0].Message)
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 0, Character: 6},
		End:   protocol.Position{Line: 0, Character: 7},
	}, diags[0].Range)
	require.NotNil(t, diags[0].Severity)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diags[0].Severity)
	require.NotNil(t, diags[0].Source)
	assert.Equal(t, "gqlcst", *diags[0].Source)

	assert.Equal(t, protocol.Position{Line: 1, Character: 4}, diags[1].Range.Start)
}

func TestToDiagnosticsCleanParse(t *testing.T) {
	diags := ToDiagnostics(parser.Parse([]byte("input Foo { a: String }")))
	assert.NotNil(t, diags)
	assert.Empty(t, diags)
}

func TestToDiagnosticsAtEndOfInput(t *testing.T) {
	diags := ToDiagnostics(parser.Parse([]byte("extend input Foo")))
	require.Len(t, diags, 1)
	assert.Equal(t, protocol.Position{Line: 0, Character: 16}, diags[0].Range.Start)
	assert.Equal(t, diags[0].Range.Start, diags[0].Range.End)
}

func TestURIToPath(t *testing.T) {
	path, err := uriToPath("file:///tmp/my%20schema.graphql")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("/tmp/my schema.graphql"), path)

	path, err = uriToPath("schema.graphql")
	require.NoError(t, err)
	assert.Equal(t, "schema.graphql", path)
}

func TestPathToURI(t *testing.T) {
	assert.Equal(t, "file:///tmp/my%20schema.graphql", pathToURI("/tmp/my schema.graphql"))
}

func TestLSPPublishesDiagnostics(t *testing.T) {
	ls := NewLSPServer("test")
	rootPath := t.TempDir()
	_, err := ls.initialize(&glsp.Context{}, &protocol.InitializeParams{RootPath: &rootPath})
	require.NoError(t, err)
	assert.Equal(t, rootPath, ls.workspace.RootDir())

	var sent []notification
	ctx := testContext(&sent)
	uri := "file:///work/schema.graphql"

	require.NoError(t, ls.textDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "graphql", Version: 1, Text: "input Foo {}"},
	}))
	require.Len(t, sent, 1)
	assert.Equal(t, protocol.ServerTextDocumentPublishDiagnostics, sent[0].method)
	assert.Equal(t, uri, sent[0].params.URI)
	require.Len(t, sent[0].params.Diagnostics, 1)
	assert.Equal(t, "Expected to have an InputValue definition, got }", sent[0].params.Diagnostics[0].Message)

	require.NoError(t, ls.textDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "input Foo { a: Int }"}},
	}))
	require.Len(t, sent, 2)
	assert.Empty(t, sent[1].params.Diagnostics)
	assert.Equal(t, "input Foo { a: Int }", string(ls.workspace.GetFile("/work/schema.graphql").Content))

	require.NoError(t, ls.textDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))
	require.Len(t, sent, 3)
	assert.NotNil(t, sent[2].params.Diagnostics)
	assert.Empty(t, sent[2].params.Diagnostics)
}

func TestLSPDocumentSymbols(t *testing.T) {
	ls := NewLSPServer("test")
	rootPath := t.TempDir()
	_, err := ls.initialize(&glsp.Context{}, &protocol.InitializeParams{RootPath: &rootPath})
	require.NoError(t, err)

	var sent []notification
	uri := "file:///work/schema.graphql"
	require.NoError(t, ls.textDocumentDidOpen(testContext(&sent), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: "input Foo { a: String }"},
	}))

	got, err := ls.textDocumentDocumentSymbol(&glsp.Context{}, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	symbols, ok := got.([]protocol.DocumentSymbol)
	require.True(t, ok)
	require.Len(t, symbols, 1)
	assert.Equal(t, "Foo", symbols[0].Name)

	got, err = ls.textDocumentDocumentSymbol(&glsp.Context{}, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///work/unknown.graphql"},
	})
	require.NoError(t, err)
	assert.Nil(t, got)
}
