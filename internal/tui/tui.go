package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"quick-entry/internal/quickadd/usecase"
	"quick-entry/pkg/quickparse"
)

const (
	submitTimeout = 15 * time.Second
	historySize   = 5
	charLimit     = 500
)

// SubmitFunc stores one line and returns a short confirmation.
type SubmitFunc func(ctx context.Context, text string) (string, error)

type submitResultMsg struct {
	text    string
	summary string
	err     error
}

type historyEntry struct {
	text    string
	summary string
	err     error
}

type model struct {
	parser   *quickparse.Parser
	now      func() time.Time
	submit   SubmitFunc
	input    textinput.Model
	result   quickparse.Result
	history  []historyEntry
	showHelp bool
	pending  bool
	width    int
	quitting bool
}

func newModel(parser *quickparse.Parser, submit SubmitFunc) model {
	ti := textinput.New()
	ti.Placeholder = "Zahnarzt morgen 15 uhr bei Dr. Weber"
	ti.Focus()
	ti.Prompt = "> "
	ti.PromptStyle = styleInputPrompt
	ti.TextStyle = styleInput
	ti.CharLimit = charLimit

	return model{
		parser: parser,
		now:    time.Now,
		submit: submit,
		input:  ti,
	}
}

// Run starts the live-preview input and blocks until it exits.
// A nil submit keeps entries in the session list only.
func Run(parser *quickparse.Parser, submit SubmitFunc) error {
	p := tea.NewProgram(newModel(parser, submit), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(0, msg.Width-len(m.input.Prompt)-1)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, keys.Submit):
			return m.submitLine()
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.reparse()
		return m, cmd

	case submitResultMsg:
		m.pending = false
		m.remember(historyEntry{text: msg.text, summary: msg.summary, err: msg.err})
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) reparse() {
	m.result = m.parser.ParseAt(m.input.Value(), m.now())
}

func (m *model) remember(e historyEntry) {
	m.history = append([]historyEntry{e}, m.history...)
	if len(m.history) > historySize {
		m.history = m.history[:historySize]
	}
}

func (m model) submitLine() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.pending {
		return m, nil
	}

	title := m.result.Title
	m.input.Reset()
	m.reparse()

	if m.submit == nil {
		m.remember(historyEntry{text: text, summary: title})
		return m, nil
	}

	m.pending = true
	submit := m.submit
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		summary, err := submit(ctx, text)
		return submitResultMsg{text: text, summary: summary, err: err}
	}
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if strings.TrimSpace(m.input.Value()) != "" {
		b.WriteString(styleTitle.Render(m.result.Title))
		b.WriteString("\n")
		badges := usecase.Badges(m.result)
		rendered := make([]string, 0, len(badges))
		for _, badge := range badges {
			rendered = append(rendered, styleBadge.Render(badge))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
		b.WriteString("\n\n")
	}

	if m.showHelp {
		for _, line := range quickparse.CheatSheet() {
			b.WriteString(styleHint.Render(m.wrap(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.pending {
		b.WriteString(styleHint.Render("saving..."))
		b.WriteString("\n")
	}
	for _, e := range m.history {
		if e.err != nil {
			b.WriteString(styleFailed.Render("✗ " + e.text + ": " + e.err.Error()))
		} else {
			b.WriteString(styleSaved.Render("✓ " + e.summary))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleStatusBar.Render(fmt.Sprintf("%s %s · %s %s · %s %s",
		keys.Submit.Help().Key, keys.Submit.Help().Desc,
		keys.Help.Help().Key, keys.Help.Help().Desc,
		keys.Quit.Help().Key, keys.Quit.Help().Desc)))
	return b.String()
}

func (m model) wrap(s string) string {
	if m.width <= 0 {
		return s
	}
	return wordwrap.String(s, m.width)
}
