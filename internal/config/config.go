package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"docsearch/internal/chunker"
	"docsearch/internal/extract"
	"docsearch/internal/rank"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	BaseDir      string `env:"KNOWLEDGE_BASE_DIR"`
	DocDir       string `env:"KNOWLEDGE_PDF_DIR"`
	ChunkSize    int    `env:"KNOWLEDGE_CHUNK_SIZE" envDefault:"800"`
	ChunkOverlap int    `env:"KNOWLEDGE_CHUNK_OVERLAP" envDefault:"120"`
	TopK         int    `env:"KNOWLEDGE_TOP_K" envDefault:"3"`
	PDFBackend   string `env:"KNOWLEDGE_PDF_BACKEND" envDefault:"native"`
	Workers      int    `env:"KNOWLEDGE_WORKERS"`
	LogLevel     string `env:"KNOWLEDGE_LOG_LEVEL" envDefault:"info"`
}

// Load reads an optional .env file from the working directory, then parses
// the environment into a Config and fills in derived defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.BaseDir == "" {
		c.BaseDir = defaultBaseDir()
	}
	if c.DocDir == "" {
		c.DocDir = filepath.Join(c.BaseDir, "internal_docs")
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// defaultBaseDir is the parent of the directory holding the executable, so
// a binary in <base>/bin reads <base>/internal_docs.
func defaultBaseDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(filepath.Dir(exe))
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if err := c.Chunk().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.TopK <= 0 {
		return fmt.Errorf("%w: top-k must be positive, got %d", ErrInvalid, c.TopK)
	}
	switch strings.ToLower(c.PDFBackend) {
	case extract.BackendNative, extract.BackendPdftotext:
	default:
		return fmt.Errorf("%w: unknown pdf backend %q", ErrInvalid, c.PDFBackend)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Chunk returns the chunker settings.
func (c *Config) Chunk() chunker.Config {
	return chunker.Config{Size: c.ChunkSize, Overlap: c.ChunkOverlap}
}

// Default returns a Config with the stock values, as if no environment
// variables were set.
func Default() *Config {
	c := &Config{
		ChunkSize:    chunker.DefaultSize,
		ChunkOverlap: chunker.DefaultOverlap,
		TopK:         rank.DefaultTopK,
		PDFBackend:   extract.BackendNative,
		LogLevel:     "info",
	}
	c.applyDefaults()
	return c
}
