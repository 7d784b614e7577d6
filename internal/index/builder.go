package index

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"docsearch/internal/chunker"
	"docsearch/internal/extract"
	"docsearch/internal/walker"
)

// Extensions lists the document types in the order they are indexed: every
// PDF comes before every text file.
var Extensions = []string{"pdf", "txt"}

// Stats reports indexing results.
type Stats struct {
	FilesTotal   int
	FilesIndexed int
	FilesSkipped int
	ChunksTotal  int
}

// ProgressFunc is called after each file is processed.
type ProgressFunc func(processed, total int)

// Config holds the builder configuration.
type Config struct {
	Chunk      chunker.Config
	Workers    int
	Logger     *slog.Logger
	OnProgress ProgressFunc
}

// Builder walks a document directory and fills an Index.
type Builder struct {
	extractor  extract.Extractor
	chunker    *chunker.Chunker
	workers    int
	logger     *slog.Logger
	onProgress ProgressFunc
}

// NewBuilder creates a builder that extracts files with ex, usually an
// *extract.Registry.
func NewBuilder(ex extract.Extractor, cfg Config) *Builder {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		extractor:  ex,
		chunker:    chunker.New(cfg.Chunk),
		workers:    workers,
		logger:     logger,
		onProgress: cfg.OnProgress,
	}
}

// fileResult is the outcome of extracting and chunking one file.
type fileResult struct {
	chunks []string
	err    error
}

// Build clears idx and refills it from the documents directly inside dir.
// Files that fail extraction are logged and skipped. An error is returned
// only when dir itself cannot be listed or ctx is cancelled; idx is left
// empty in both cases.
func (b *Builder) Build(ctx context.Context, idx *Index, dir string) (*Stats, error) {
	idx.Reset()

	files, err := walker.List(dir, Extensions...)
	if err != nil {
		return &Stats{}, err
	}

	results := make([]fileResult, len(files))
	jobs := make(chan int)
	var processed int
	var mu sync.Mutex
	var wg sync.WaitGroup

	for range min(b.workers, max(len(files), 1)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				text, err := b.extractor.Extract(ctx, files[i].Path)
				if err != nil {
					results[i] = fileResult{err: err}
				} else {
					results[i] = fileResult{chunks: b.chunker.Split(text)}
				}
				if b.onProgress != nil {
					mu.Lock()
					processed++
					b.onProgress(processed, len(files))
					mu.Unlock()
				}
			}
		}()
	}

feed:
	for i := range files {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return &Stats{FilesTotal: len(files)}, fmt.Errorf("build index: %w", err)
	}

	stats := &Stats{FilesTotal: len(files)}
	var chunks []Chunk
	for i, f := range files {
		r := results[i]
		if r.err != nil {
			stats.FilesSkipped++
			var extErr *extract.ExtractionError
			if errors.As(r.err, &extErr) {
				b.logger.Warn("skipping unreadable document", "file", f.Name, "error", extErr.Err)
			} else {
				b.logger.Warn("skipping document", "file", f.Name, "error", r.err)
			}
			continue
		}
		stats.FilesIndexed++
		for _, text := range r.chunks {
			if text == "" {
				continue
			}
			chunks = append(chunks, Chunk{Source: f.Name, Text: text})
		}
	}
	stats.ChunksTotal = len(chunks)

	idx.replace(chunks)
	b.logger.Info("index built",
		"dir", dir,
		"files", stats.FilesTotal,
		"indexed", stats.FilesIndexed,
		"skipped", stats.FilesSkipped,
		"chunks", stats.ChunksTotal,
	)
	return stats, nil
}
