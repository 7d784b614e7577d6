package tui

import (
	"context"
	"fmt"

	"docsearch/internal/index"
	"docsearch/internal/search"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type indexingModel struct {
	spinner spinner.Model
	done    bool
	stats   *index.Stats
	err     error
}

func newIndexingModel() indexingModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = selectedStyle
	return indexingModel{spinner: sp}
}

// indexDoneMsg is sent when indexing completes.
type indexDoneMsg struct {
	stats *index.Stats
	err   error
}

func runIndex(svc *search.Service) tea.Cmd {
	return func() tea.Msg {
		stats, err := svc.Rebuild(context.Background())
		return indexDoneMsg{stats: stats, err: err}
	}
}

func (m indexingModel) Update(msg tea.Msg) (indexingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case indexDoneMsg:
		m.done = true
		m.stats = msg.stats
		m.err = msg.err
		return m, nil
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m indexingModel) View(width, height int) string {
	s := "\n"
	s += titleStyle.Render("  Indexing") + "\n\n"

	if !m.done {
		s += fmt.Sprintf("  %s Extracting and chunking documents...\n", m.spinner.View())
		return s
	}

	if m.err != nil {
		s += errorStyle.Render(fmt.Sprintf("  Error: %v", m.err)) + "\n\n"
		s += dimStyle.Render("  Press Enter to search anyway, or q to quit.") + "\n"
		return s
	}
	s += successStyle.Render("  ✓ Indexing complete!") + "\n\n"
	if m.stats != nil {
		s += fmt.Sprintf("  Files:  %d total, %d indexed, %d skipped\n",
			m.stats.FilesTotal, m.stats.FilesIndexed, m.stats.FilesSkipped)
		s += fmt.Sprintf("  Chunks: %d\n", m.stats.ChunksTotal)
	}
	s += "\n"
	s += dimStyle.Render("  Press Enter to start searching") + "\n"
	return s
}
