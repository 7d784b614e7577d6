// Package watch invalidates the index when the document directory changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"docsearch/internal/walker"
)

// Resetter is anything whose cached state can be dropped.
type Resetter interface {
	Reset()
}

// Watcher clears a Resetter whenever an indexed document type is created,
// written, removed or renamed in a directory. It never rebuilds; the next
// search does that.
type Watcher struct {
	dir    string
	exts   []string
	target Resetter
	logger *slog.Logger
	fsw    *fsnotify.Watcher
}

// New starts watching dir. Call Run to process events and Close to stop.
func New(dir string, exts []string, target Resetter, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{dir: dir, exts: exts, target: target, logger: logger, fsw: fsw}, nil
}

// Run handles events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "dir", w.dir, "error", err)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if !Relevant(ev, w.exts) {
		return
	}
	w.logger.Info("documents changed; index cleared", "file", filepath.Base(ev.Name), "op", ev.Op.String())
	w.target.Reset()
}

// Relevant reports whether ev touches a document with one of exts.
func Relevant(ev fsnotify.Event, exts []string) bool {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) &&
		!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}
	return walker.Matches(filepath.Base(ev.Name), exts...)
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
