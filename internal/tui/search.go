package tui

import (
	"context"
	"fmt"
	"strings"

	"docsearch/internal/rank"
	"docsearch/internal/search"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type searchModel struct {
	viewport    viewport.Model
	input       textinput.Model
	spinner     spinner.Model
	renderer    *glamour.TermRenderer
	entries     []entry
	svc         *search.Service
	searching   bool
	width       int
	height      int
	initialized bool
}

type entry struct {
	query string
	hits  []rank.Hit
	msg   string
}

// resultMsg is sent when a query completes.
type resultMsg struct {
	query string
	hits  []rank.Hit
	msg   string
}

func newSearchModel(svc *search.Service) searchModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = selectedStyle

	ti := textinput.New()
	ti.Placeholder = "Search the docs (e.g. v2s handshake)..."
	ti.CharLimit = 500
	ti.Focus()

	return searchModel{
		spinner: sp,
		input:   ti,
		svc:     svc,
	}
}

func (m *searchModel) initViewport(width, height int) {
	m.width = width
	m.height = height

	// Layout: viewport + status bar (1 line) + input (1 line) + gap (1 line).
	vpHeight := height - 3
	if vpHeight < 5 {
		vpHeight = 5
	}
	m.viewport = viewport.New(width, vpHeight)
	m.viewport.SetContent(dimStyle.Render("Type a query and press Enter.\n\nCommands: /help, /clear, /reindex, /exit"))

	m.input.Width = width - 4

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(max(width-2, 20)),
	)
	if err == nil {
		m.renderer = r
	}

	m.initialized = true
}

func runQuery(svc *search.Service, query string) tea.Cmd {
	return func() tea.Msg {
		hits, msg := svc.Query(context.Background(), query)
		return resultMsg{query: query, hits: hits, msg: msg}
	}
}

func (m searchModel) Update(msg tea.Msg) (searchModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.initViewport(msg.Width, msg.Height)
		m.viewport.SetContent(m.renderEntries())
		m.viewport.GotoBottom()
		return m, nil

	case resultMsg:
		m.searching = false
		m.entries = append(m.entries, entry{query: msg.query, hits: msg.hits, msg: msg.msg})
		m.viewport.SetContent(m.renderEntries())
		m.viewport.GotoBottom()
		return m, nil

	case spinner.TickMsg:
		if m.searching {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			m.viewport.SetContent(m.renderEntries())
			m.viewport.GotoBottom()
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m, nil
		}
		if msg.Type == tea.KeyEnter {
			query := strings.TrimSpace(m.input.Value())
			if query == "" {
				return m, nil
			}
			m.input.Reset()

			switch query {
			case "/exit", "/quit":
				return m, tea.Quit
			case "/clear":
				m.entries = nil
				m.viewport.SetContent(dimStyle.Render("Results cleared."))
				return m, nil
			case "/reindex":
				// The next query rebuilds from disk.
				m.svc.Reset()
				m.viewport.SetContent(m.renderEntries() + dimStyle.Render("Index cleared; the next query rebuilds it.") + "\n")
				m.viewport.GotoBottom()
				return m, nil
			case "/help":
				help := "Commands:\n  /clear    - clear results\n  /reindex  - rebuild the index on the next query\n  /exit     - quit\n  /help     - show this help"
				m.viewport.SetContent(m.renderEntries() + dimStyle.Render(help) + "\n")
				m.viewport.GotoBottom()
				return m, nil
			}

			m.searching = true
			m.viewport.SetContent(m.renderEntries())
			m.viewport.GotoBottom()
			return m, tea.Batch(m.spinner.Tick, runQuery(m.svc, query))
		}
	}

	if !m.searching {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// hitsMarkdown renders hits as a markdown document, one section per passage.
func hitsMarkdown(hits []rank.Hit) string {
	var sb strings.Builder
	for i, h := range hits {
		fmt.Fprintf(&sb, "### %d. `%s` (score %d)\n\n", i+1, h.Source, h.Score)
		sb.WriteString("> ")
		sb.WriteString(h.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func (m searchModel) renderMarkdown(content string) string {
	if m.renderer == nil {
		return resultStyle.Render(content)
	}
	rendered, err := m.renderer.Render(content)
	if err != nil {
		return resultStyle.Render(content)
	}
	return strings.TrimRight(rendered, "\n")
}

func (m searchModel) renderEntries() string {
	var sb strings.Builder
	for _, e := range m.entries {
		sb.WriteString(queryStyle.Render(e.query) + "\n")
		if e.msg != "" {
			sb.WriteString(warnStyle.Render(e.msg) + "\n\n")
			continue
		}
		sb.WriteString(m.renderMarkdown(hitsMarkdown(e.hits)) + "\n\n")
	}

	if m.searching {
		sb.WriteString(m.spinner.View() + " " + dimStyle.Render("Searching...") + "\n")
	}
	return sb.String()
}

func (m searchModel) View(width, height int) string {
	if !m.initialized {
		return ""
	}

	status := "idle"
	if m.searching {
		status = "searching..."
	}
	statusBar := statusBarStyle.
		Width(m.width).
		Render(fmt.Sprintf(" docsearch • %s • %s", m.svc.DocDir(), status))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewport.View(),
		statusBar,
		m.input.View(),
	)
}
