// Package search answers free-text queries against the document index.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"docsearch/internal/index"
	"docsearch/internal/rank"
	"docsearch/internal/tokenizer"
)

// Messages returned instead of hits.
const (
	NoTokensMessage  = "No query tokens found."
	NoResultsMessage = "No relevant passages found."
)

// Config holds the service configuration.
type Config struct {
	DocDir string
	TopK   int
	Scorer rank.Scorer
	Logger *slog.Logger
}

// Service owns an index and lazily builds it on the first search.
type Service struct {
	mu      sync.Mutex
	index   *index.Index
	builder *index.Builder
	docDir  string
	topK    int
	scorer  rank.Scorer
	logger  *slog.Logger
	builds  int
}

// New creates a search service over idx, building it from cfg.DocDir with
// builder when it is empty.
func New(idx *index.Index, builder *index.Builder, cfg Config) *Service {
	topK := cfg.TopK
	if topK <= 0 {
		topK = rank.DefaultTopK
	}
	scorer := cfg.Scorer
	if scorer == nil {
		scorer = rank.SubstringScorer{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		index:   idx,
		builder: builder,
		docDir:  cfg.DocDir,
		topK:    topK,
		scorer:  scorer,
		logger:  logger,
	}
}

// Search runs query against the index and returns the formatted result.
// It never fails: every outcome is rendered as text.
func (s *Service) Search(ctx context.Context, query string) string {
	s.logger.Info("search_internal_docs called", "query", query)

	hits, msg := s.Query(ctx, query)
	if msg != "" {
		return msg
	}
	return Format(hits)
}

// Query returns the ranked hits for query, building the index first if it
// is empty. When there is nothing to show, hits is nil and msg explains why.
func (s *Service) Query(ctx context.Context, query string) (hits []rank.Hit, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index.Empty() {
		s.buildLocked(ctx)
	}

	tokens := tokenizer.Tokenize(query)
	if len(tokens) == 0 {
		return nil, NoTokensMessage
	}

	hits = rank.Rank(tokens, s.index.Chunks(), s.scorer, s.topK)
	if len(hits) == 0 {
		return nil, NoResultsMessage
	}
	return hits, ""
}

// Rebuild clears the index and builds it again.
func (s *Service) Rebuild(ctx context.Context) (*index.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buildLocked(ctx)
}

// Reset clears the index so the next search rebuilds it.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index.Reset()
}

// Builds returns how many times the index has been built.
func (s *Service) Builds() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.builds
}

// DocDir returns the directory documents are read from.
func (s *Service) DocDir() string { return s.docDir }

func (s *Service) buildLocked(ctx context.Context) (*index.Stats, error) {
	s.builds++
	stats, err := s.builder.Build(ctx, s.index, s.docDir)
	if err != nil {
		s.logger.Warn("index build failed; searching an empty index", "dir", s.docDir, "error", err)
		return stats, err
	}
	return stats, nil
}

// Format renders hits as "[source] score=N", the chunk text, and a blank
// line per hit, with surrounding whitespace removed.
func Format(hits []rank.Hit) string {
	var b strings.Builder
	for _, h := range hits {
		fmt.Fprintf(&b, "[%s] score=%d\n", h.Source, h.Score)
		b.WriteString(h.Text)
		b.WriteString("\n\n")
	}
	return strings.TrimSpace(b.String())
}
