package extract

import (
	"context"
	"os"
	"strings"
	"unicode/utf8"
)

// PlainText reads UTF-8 text files. Invalid byte sequences are dropped
// instead of failing the file.
type PlainText struct{}

// NewPlainText creates a plain text extractor.
func NewPlainText() *PlainText { return &PlainText{} }

func (p *PlainText) Name() string { return "text" }

func (p *PlainText) Extract(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", extractionError(path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", extractionError(path, err)
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	return strings.ToValidUTF8(string(data), ""), nil
}
