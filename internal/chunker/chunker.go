package chunker

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	DefaultSize    = 800
	DefaultOverlap = 120
)

// Config controls window sizing. Sizes are counted in characters.
type Config struct {
	Size    int
	Overlap int
}

// DefaultConfig returns the stock 800/120 window configuration.
func DefaultConfig() Config {
	return Config{Size: DefaultSize, Overlap: DefaultOverlap}
}

// Validate reports whether the configuration can produce windows.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", c.Size)
	}
	if c.Overlap < 0 {
		return fmt.Errorf("chunk overlap must not be negative, got %d", c.Overlap)
	}
	if c.Overlap >= c.Size {
		return fmt.Errorf("chunk overlap %d must be smaller than size %d", c.Overlap, c.Size)
	}
	return nil
}

// Chunker splits extracted document text into fixed-size windows.
type Chunker struct {
	config Config
}

// New creates a chunker. Invalid configurations fall back to the defaults.
func New(cfg Config) *Chunker {
	if cfg.Validate() != nil {
		cfg = DefaultConfig()
	}
	return &Chunker{config: cfg}
}

// Config returns the effective configuration.
func (c *Chunker) Config() Config { return c.config }

// Split collapses whitespace and cuts the result into consecutive windows.
//
// The next window starts at max(end-overlap, end), which is always end, so
// Overlap is accepted but windows never overlap. Joining the windows gives
// back the normalized text exactly.
func (c *Chunker) Split(text string) []string {
	runes := []rune(Normalize(text))
	if len(runes) == 0 {
		return nil
	}

	var chunks []string
	for start := 0; start < len(runes); {
		end := start + c.config.Size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
		start = max(end-c.config.Overlap, end)
	}
	return chunks
}

// Normalize replaces every whitespace run with a single space and trims.
func Normalize(text string) string {
	return strings.Join(strings.FieldsFunc(text, isSpace), " ")
}

// isSpace extends unicode.IsSpace with the ASCII separators U+001C..U+001F,
// which regular-expression \s treats as whitespace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
