// Package index builds and holds the in-memory chunk index.
package index

import "sync"

// Chunk is one window of a document's text. Source is the document's base
// file name.
type Chunk struct {
	Source string
	Text   string
}

// Index is an ordered, in-memory list of chunks. It is safe for concurrent
// use; a rebuild replaces the contents wholesale.
type Index struct {
	mu     sync.RWMutex
	chunks []Chunk
}

// New returns an empty index.
func New() *Index {
	return &Index{}
}

// Len returns the number of chunks.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.chunks)
}

// Empty reports whether the index holds no chunks.
func (x *Index) Empty() bool {
	return x.Len() == 0
}

// Chunks returns the chunks in index order. The returned slice must not be
// modified; it is never mutated by the index either, since rebuilds swap in
// a new slice.
func (x *Index) Chunks() []Chunk {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.chunks
}

// Reset drops every chunk.
func (x *Index) Reset() {
	x.replace(nil)
}

// Sources returns the distinct source names in index order.
func (x *Index) Sources() []string {
	x.mu.RLock()
	defer x.mu.RUnlock()
	var out []string
	seen := make(map[string]bool)
	for _, c := range x.chunks {
		if !seen[c.Source] {
			seen[c.Source] = true
			out = append(out, c.Source)
		}
	}
	return out
}

func (x *Index) replace(chunks []Chunk) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.chunks = chunks
}
