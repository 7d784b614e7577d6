package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"docsearch/internal/config"
	"docsearch/internal/extract"
	"docsearch/internal/index"
	"docsearch/internal/search"

	"github.com/spf13/cobra"
)

var (
	flagDir      string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "docsearch",
	Short: "Keyword search over internal PDF and text docs, served over MCP",
	RunE:  runMCP,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "document directory (default $KNOWLEDGE_PDF_DIR or <base>/internal_docs)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error (default $KNOWLEDGE_LOG_LEVEL)")
}

// app is everything a subcommand needs to answer queries.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	svc    *search.Service
}

// loadConfig reads the environment and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagDir != "" {
		cfg.DocDir = flagDir
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// newApp wires config, logging, extraction, indexing and search together.
// Logs go to logw; stdout belongs to the MCP transport, so callers pass
// stderr or a file.
func newApp(cfg *config.Config, logw io.Writer) (*app, error) {
	logger := config.NewLogger(logw, cfg.LogLevel)

	reg, err := extract.NewDefaultRegistry(cfg.PDFBackend)
	if err != nil {
		return nil, fmt.Errorf("pdf backend: %w", err)
	}
	if strings.EqualFold(cfg.PDFBackend, extract.BackendPdftotext) {
		if err := extract.CheckPdftotext(); err != nil {
			// Each PDF is then skipped at build time; text files still index.
			logger.Warn("pdftotext not found in PATH", "error", err)
		}
	}
	builder := index.NewBuilder(reg, index.Config{
		Chunk:   cfg.Chunk(),
		Workers: cfg.Workers,
		Logger:  logger,
	})
	svc := search.New(index.New(), builder, search.Config{
		DocDir: cfg.DocDir,
		TopK:   cfg.TopK,
		Logger: logger,
	})
	return &app{cfg: cfg, logger: logger, svc: svc}, nil
}

func setup() (*app, error) {
	return setupWithLog(os.Stderr)
}

func setupWithLog(logw io.Writer) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return newApp(cfg, logw)
}
