package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"uscl/internal/token"
)

type viewerModel struct {
	title    string
	tokens   []token.Token
	viewport viewport.Model
	ready    bool
	width    int
}

// NewViewerModel returns a Bubble Tea model that renders a scrollable
// token stream for one source file.
func NewViewerModel(title string, tokens []token.Token) tea.Model {
	return &viewerModel{
		title:  title,
		tokens: tokens,
		width:  80,
	}
}

// RunViewer starts the interactive viewer and blocks until the user quits.
func RunViewer(title string, tokens []token.Token) error {
	p := tea.NewProgram(NewViewerModel(title, tokens), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *viewerModel) Init() tea.Cmd {
	return nil
}

func (m *viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}
	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.width = msg.Width
		m.viewport.SetContent(m.renderTokens())
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *viewerModel) View() string {
	if !m.ready {
		return "loading..."
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := titleStyle.Render(fmt.Sprintf("%s (%d tokens)", m.title, len(m.tokens)))
	footer := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).
		Render(fmt.Sprintf("%3.0f%%  q quit  g/G top/bottom", m.viewport.ScrollPercent()*100))
	return header + "\n\n" + m.viewport.View() + "\n" + footer
}

func (m *viewerModel) renderTokens() string {
	valueWidth := m.width - 30
	if valueWidth < 12 {
		valueWidth = 12
	}

	var b strings.Builder
	for i, tok := range m.tokens {
		kindStyled := styleKind(tok).Render(fmt.Sprintf("%-10s", tok.Kind.String()))
		line := fmt.Sprintf("%4d: %s", i+1, kindStyled)
		if !tok.Value.IsNone() {
			line += " " + truncate(tok.Value.String(), valueWidth)
		}
		line += lipgloss.NewStyle().Foreground(lipgloss.Color("8")).
			Render(fmt.Sprintf("  %d:%d", tok.Line, tok.Column))
		b.WriteString(line)
		b.WriteString("\n")
		if tok.Kind == token.EOF {
			break
		}
	}
	return b.String()
}

func styleKind(tok token.Token) lipgloss.Style {
	switch {
	case tok.Kind == token.EOF || tok.Kind == token.Invalid:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case tok.IsKeyword():
		return lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	case tok.IsLiteral():
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case tok.IsPunctOrOp():
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
