package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrPDFToolNotFound indicates pdftotext is not installed.
var ErrPDFToolNotFound = errors.New("pdftotext not found in PATH")

// CommandRunner executes external commands.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if _, err := exec.LookPath(name); err != nil {
		return nil, ErrPDFToolNotFound
	}
	return exec.CommandContext(ctx, name, args...).Output()
}

// Pdftotext extracts PDF text by shelling out to poppler's pdftotext.
type Pdftotext struct {
	runner CommandRunner
}

// NewPdftotext creates an extractor that runs the system pdftotext binary.
func NewPdftotext() *Pdftotext {
	return &Pdftotext{runner: execRunner{}}
}

// NewPdftotextWithRunner creates an extractor with a custom runner.
func NewPdftotextWithRunner(r CommandRunner) *Pdftotext {
	return &Pdftotext{runner: r}
}

func (p *Pdftotext) Name() string { return BackendPdftotext }

// Extract runs pdftotext and converts its form-feed page breaks to "\n".
func (p *Pdftotext) Extract(ctx context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", extractionError(path, err)
	}
	out, err := p.runner.Run(ctx, "pdftotext", "-enc", "UTF-8", path, "-")
	if err != nil {
		return "", extractionError(path, fmt.Errorf("pdftotext failed: %w", err))
	}
	text := strings.TrimSuffix(string(out), "\f")
	return strings.ReplaceAll(text, "\f", "\n"), nil
}

// CheckPdftotext reports whether the pdftotext binary can be found.
func CheckPdftotext() error {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return ErrPDFToolNotFound
	}
	return nil
}
