package watch

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingResetter struct {
	n atomic.Int32
}

func (c *countingResetter) Reset() { c.n.Add(1) }

func TestRelevant(t *testing.T) {
	exts := []string{"pdf", "txt"}
	tests := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{"create pdf", fsnotify.Event{Name: "/d/a.pdf", Op: fsnotify.Create}, true},
		{"write txt", fsnotify.Event{Name: "/d/a.txt", Op: fsnotify.Write}, true},
		{"remove pdf", fsnotify.Event{Name: "/d/a.pdf", Op: fsnotify.Remove}, true},
		{"rename txt", fsnotify.Event{Name: "/d/a.txt", Op: fsnotify.Rename}, true},
		{"chmod only", fsnotify.Event{Name: "/d/a.txt", Op: fsnotify.Chmod}, false},
		{"other extension", fsnotify.Event{Name: "/d/a.md", Op: fsnotify.Write}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Relevant(tc.ev, exts))
		})
	}
}

func TestHandle(t *testing.T) {
	r := &countingResetter{}
	w := &Watcher{exts: []string{"txt"}, target: r, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	w.handle(fsnotify.Event{Name: "/d/a.md", Op: fsnotify.Write})
	assert.Equal(t, int32(0), r.n.Load())

	w.handle(fsnotify.Event{Name: "/d/a.txt", Op: fsnotify.Write})
	assert.Equal(t, int32(1), r.n.Load())
}

func TestWatcher_ResetsOnNewDocument(t *testing.T) {
	dir := t.TempDir()
	r := &countingResetter{}

	w, err := New(dir, []string{"pdf", "txt"}, r, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("hello"), 0o644))

	assert.Eventually(t, func() bool { return r.n.Load() > 0 }, 5*time.Second, 10*time.Millisecond)
}

func TestNew_MissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), []string{"txt"}, &countingResetter{}, nil)
	assert.Error(t, err)
}
