package workspace

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/tliron/commonlog"
)

// Watcher re-parses GraphQL files under a workspace root as they change on
// disk. fsnotify watches are not recursive, so every directory is added
// individually, including directories created later.
type Watcher struct {
	ws       *Workspace
	watcher  *fsnotify.Watcher
	onChange func(doc *Document)
	onRemove func(path string)
	log      commonlog.Logger
}

// NewWatcher starts watching the root of ws. onChange is called with the new
// document after every write; onRemove after a file was deleted or renamed.
// Either callback may be nil.
func NewWatcher(ws *Workspace, onChange func(doc *Document), onRemove func(path string)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	w := &Watcher{
		ws:       ws,
		watcher:  fw,
		onChange: onChange,
		onRemove: onRemove,
		log:      commonlog.GetLogger("gqlcst.workspace.watcher"),
	}
	if err := w.addTree(ws.RootDir()); err != nil {
		fw.Close()
		return nil, err
	}
	return w, nil
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// Run delivers events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handle(ev)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Errorf("watch: %s", err)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if ev.Has(fsnotify.Create) {
		if err := w.addTree(ev.Name); err != nil {
			w.log.Warningf("%s", err)
		}
	}
	if !IsGraphQLFile(ev.Name) {
		return
	}

	switch {
	case ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename):
		w.ws.RemoveFile(ev.Name)
		if w.onRemove != nil {
			w.onRemove(ev.Name)
		}
	case ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write):
		doc, err := w.ws.ScanFile(ev.Name)
		if err != nil {
			w.log.Warningf("%s", err)
			return
		}
		if w.onChange != nil {
			w.onChange(doc)
		}
	}
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}
