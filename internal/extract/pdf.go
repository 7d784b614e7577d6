package extract

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// NativePDF extracts page text in-process with github.com/ledongthuc/pdf.
type NativePDF struct{}

// NewNativePDF creates the in-process PDF extractor.
func NewNativePDF() *NativePDF { return &NativePDF{} }

func (n *NativePDF) Name() string { return BackendNative }

// Extract joins the text of every page with "\n". Pages that are missing or
// fail to decode contribute an empty string.
func (n *NativePDF) Extract(ctx context.Context, path string) (text string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", extractionError(path, err)
	}

	// The parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = extractionError(path, fmt.Errorf("parse pdf: %v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", extractionError(path, fmt.Errorf("parse pdf: %w", err))
	}

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", extractionError(path, err)
		}
		pages = append(pages, pageText(reader.Page(i)))
	}
	return strings.Join(pages, "\n"), nil
}

func pageText(p pdf.Page) string {
	if p.V.IsNull() {
		return ""
	}
	s, err := p.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return s
}
