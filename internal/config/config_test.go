package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("KNOWLEDGE_BASE_DIR", "")
	t.Setenv("KNOWLEDGE_PDF_DIR", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.ChunkSize)
	assert.Equal(t, 120, cfg.ChunkOverlap)
	assert.Equal(t, 3, cfg.TopK)
	assert.Equal(t, "native", cfg.PDFBackend)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.NotEmpty(t, cfg.BaseDir)
	assert.Equal(t, filepath.Join(cfg.BaseDir, "internal_docs"), cfg.DocDir)
}

func TestLoad_BaseDirOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	base := t.TempDir()
	t.Setenv("KNOWLEDGE_BASE_DIR", base)
	t.Setenv("KNOWLEDGE_PDF_DIR", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, base, cfg.BaseDir)
	assert.Equal(t, filepath.Join(base, "internal_docs"), cfg.DocDir)
}

func TestLoad_DocDirOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	docs := t.TempDir()
	t.Setenv("KNOWLEDGE_BASE_DIR", "/somewhere/else")
	t.Setenv("KNOWLEDGE_PDF_DIR", docs)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, docs, cfg.DocDir)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	// godotenv does not override variables that are already set, so make
	// sure this one is absent rather than empty.
	t.Setenv("KNOWLEDGE_TOP_K", "")
	require.NoError(t, os.Unsetenv("KNOWLEDGE_TOP_K"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("KNOWLEDGE_TOP_K=5\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.TopK)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero chunk size", "KNOWLEDGE_CHUNK_SIZE", "0"},
		{"overlap too large", "KNOWLEDGE_CHUNK_OVERLAP", "900"},
		{"zero top k", "KNOWLEDGE_TOP_K", "0"},
		{"bad backend", "KNOWLEDGE_PDF_BACKEND", "pypdf"},
		{"bad log level", "KNOWLEDGE_LOG_LEVEL", "loud"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoad_NotANumber(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("KNOWLEDGE_CHUNK_SIZE", "big")

	_, err := Load()
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 800, cfg.Chunk().Size)
	assert.Equal(t, 120, cfg.Chunk().Overlap)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		err  bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"trace", slog.LevelInfo, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseLevel(tc.in)
			if tc.err {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn")
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "k=v")
}
