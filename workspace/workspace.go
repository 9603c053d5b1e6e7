// Package workspace keeps the parse results of every GraphQL file under a
// directory up to date and serves them to editors over LSP.
package workspace

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/gqlcst/graphql/parser"
)

// Extensions are the file extensions treated as GraphQL documents.
var Extensions = []string{".graphql", ".graphqls", ".gql"}

func IsGraphQLFile(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

type Workspace struct {
	mu      sync.RWMutex
	rootDir string
	opts    []parser.Option
	log     commonlog.Logger
	docs    map[string]*Document
}

// Document is the latest parse of one file. It is replaced, never mutated, when
// the file changes.
type Document struct {
	Path    string
	Content []byte
	Result  *parser.Result
}

// Diagnostic is a parse error together with the file it was found in.
type Diagnostic struct {
	Path  string
	Error *parser.ParseError
}

func (d Diagnostic) String() string {
	pos := d.Error.Span.Start
	return fmt.Sprintf("%s:%d:%d: %s", d.Path, pos.Line, pos.Column, d.Error.Message)
}

// New returns an empty workspace rooted at rootDir. The parser options apply
// to every file it parses.
func New(rootDir string, opts ...parser.Option) *Workspace {
	return &Workspace{
		rootDir: rootDir,
		opts:    opts,
		log:     commonlog.GetLogger("gqlcst.workspace"),
		docs:    make(map[string]*Document),
	}
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

// ScanAll parses every GraphQL file below the root directory.
func (w *Workspace) ScanAll(ctx context.Context) error {
	return w.ScanDir(ctx, w.rootDir)
}

// ScanDir parses every GraphQL file below dir in parallel. Hidden directories
// and files that cannot be read are skipped; only cancellation of ctx is
// returned as an error.
func (w *Workspace) ScanDir(ctx context.Context, dir string) error {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.log.Warningf("walk %s: %s", path, err)
			return nil
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if IsGraphQLFile(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk %s: %w", dir, err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := w.ScanFile(path); err != nil {
				w.log.Warningf("%s", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	w.log.Infof("scanned %d files in %s", len(paths), dir)
	return nil
}

// ScanFile reads and parses path.
func (w *Workspace) ScanFile(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return w.UpdateFile(path, content), nil
}

// UpdateFile parses content as the new text of path.
func (w *Workspace) UpdateFile(path string, content []byte) *Document {
	opts := append([]parser.Option{parser.WithFile(path)}, w.opts...)
	doc := &Document{
		Path:    path,
		Content: content,
		Result:  parser.Parse(content, opts...),
	}
	w.log.Debugf("%s: %d errors", path, len(doc.Result.Errors))

	w.mu.Lock()
	defer w.mu.Unlock()
	w.docs[path] = doc
	return doc
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.docs, path)
}

func (w *Workspace) GetFile(path string) *Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.docs[path]
}

// Paths returns the paths of all known documents in sorted order.
func (w *Workspace) Paths() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	paths := make([]string, 0, len(w.docs))
	for path := range w.docs {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Diagnostics returns the errors of all documents, ordered by path and then
// by detection order within a file.
func (w *Workspace) Diagnostics() []Diagnostic {
	var out []Diagnostic
	for _, path := range w.Paths() {
		doc := w.GetFile(path)
		if doc == nil {
			continue
		}
		for _, e := range doc.Result.Errors {
			out = append(out, Diagnostic{Path: path, Error: e})
		}
	}
	return out
}

// Size returns the number of documents and their combined size in bytes.
func (w *Workspace) Size() (files int, bytes uint64) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, doc := range w.docs {
		bytes += uint64(len(doc.Content))
	}
	return len(w.docs), bytes
}
