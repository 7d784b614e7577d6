package tui

import (
	"fmt"

	"docsearch/internal/index"
	"docsearch/internal/walker"

	tea "github.com/charmbracelet/bubbletea"
)

type welcomeModel struct {
	dir   string
	docs  int
	err   error
	ready bool // true once the scan has completed
}

// scanDocsMsg is sent after counting the documents in the directory.
type scanDocsMsg struct {
	dir  string
	docs int
	err  error
}

func scanDocs(dir string) tea.Cmd {
	return func() tea.Msg {
		files, err := walker.List(dir, index.Extensions...)
		return scanDocsMsg{dir: dir, docs: len(files), err: err}
	}
}

func (m welcomeModel) Update(msg tea.Msg) (welcomeModel, tea.Cmd) {
	if msg, ok := msg.(scanDocsMsg); ok {
		m.dir = msg.dir
		m.docs = msg.docs
		m.err = msg.err
		m.ready = true
	}
	return m, nil
}

func (m welcomeModel) View(width, height int) string {
	s := "\n"
	s += titleStyle.Render("  ◆ docsearch") + "\n"
	s += subtitleStyle.Render("  Keyword search over internal PDF and text docs") + "\n\n"

	if !m.ready {
		s += dimStyle.Render("  Scanning documents...") + "\n"
		return s
	}

	s += dimStyle.Render("  "+m.dir) + "\n"
	switch {
	case m.err != nil:
		s += warnStyle.Render(fmt.Sprintf("  ✗ Cannot read directory: %v", m.err)) + "\n"
	case m.docs == 0:
		s += warnStyle.Render("  ✗ No .pdf or .txt documents found") + "\n"
	default:
		s += successStyle.Render(fmt.Sprintf("  ✓ %d documents found", m.docs)) + "\n"
	}

	s += "\n"
	s += dimStyle.Render("  Press Enter to build the index, q to quit") + "\n"
	return s
}
