// Package extract turns source documents into plain text.
package extract

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ErrUnsupported is returned when no extractor is registered for a file type.
var ErrUnsupported = errors.New("unsupported document type")

// Extractor converts a single file into its text content.
type Extractor interface {
	// Extract returns the full text of the file at path. Failures to open or
	// parse the file are reported as *ExtractionError.
	Extract(ctx context.Context, path string) (string, error)
	// Name identifies the backend in logs.
	Name() string
}

// ExtractionError reports a file that could not be read or parsed.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

func extractionError(path string, err error) error {
	return &ExtractionError{Path: path, Err: err}
}

// Registry maps file extensions to extractors.
type Registry struct {
	mu   sync.RWMutex
	exts map[string]Extractor // extension (without dot, lowercase) → extractor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{exts: make(map[string]Extractor)}
}

// Register binds an extractor to one or more extensions.
func (r *Registry) Register(e Extractor, exts ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ext := range exts {
		r.exts[normalizeExt(ext)] = e
	}
}

// Lookup returns the extractor for a file path based on its extension, or nil.
func (r *Registry) Lookup(path string) Extractor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.exts[normalizeExt(filepath.Ext(path))]
}

// Extensions returns the registered extensions, sorted.
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	exts := make([]string, 0, len(r.exts))
	for ext := range r.exts {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Name lists the backends in use, e.g. "pdf=native,txt=text".
func (r *Registry) Name() string {
	exts := r.Extensions()
	parts := make([]string, len(exts))
	for i, ext := range exts {
		parts[i] = ext + "=" + r.Lookup("x."+ext).Name()
	}
	return strings.Join(parts, ",")
}

// Extract dispatches to the extractor registered for path.
func (r *Registry) Extract(ctx context.Context, path string) (string, error) {
	e := r.Lookup(path)
	if e == nil {
		return "", extractionError(path, ErrUnsupported)
	}
	return e.Extract(ctx, path)
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// Backend names accepted by NewPDFExtractor.
const (
	BackendNative    = "native"
	BackendPdftotext = "pdftotext"
)

// NewPDFExtractor resolves the PDF backend by name.
func NewPDFExtractor(backend string) (Extractor, error) {
	switch strings.ToLower(backend) {
	case "", BackendNative:
		return NewNativePDF(), nil
	case BackendPdftotext:
		return NewPdftotext(), nil
	default:
		return nil, fmt.Errorf("unknown pdf backend %q", backend)
	}
}

// NewDefaultRegistry registers the chosen PDF backend for "pdf" and the
// plain text extractor for "txt".
func NewDefaultRegistry(pdfBackend string) (*Registry, error) {
	pdfExt, err := NewPDFExtractor(pdfBackend)
	if err != nil {
		return nil, err
	}
	r := NewRegistry()
	r.Register(pdfExt, "pdf")
	r.Register(NewPlainText(), "txt")
	return r, nil
}
