package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
)

// ReportKeyMap defines the key bindings for the end-of-session report.
type ReportKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReportKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ReportKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultReportKeyMap returns default key bindings.
func DefaultReportKeyMap() ReportKeyMap {
	return ReportKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "enter", "ctrl+c"),
			key.WithHelp("q/enter", "close"),
		),
	}
}

// ReportModel shows every attempt of a finished session.
type ReportModel struct {
	title    string
	state    core.GameState
	attempts []frogger.Attempt
	table    table.Model
	help     help.Model
	keys     ReportKeyMap
	width    int
	height   int
	quitting bool
}

// NewReportModel creates a report for the given attempts.
func NewReportModel(title string, state core.GameState, attempts []frogger.Attempt, width, height int) ReportModel {
	m := ReportModel{
		title:    title,
		state:    state,
		attempts: attempts,
		help:     help.New(),
		keys:     DefaultReportKeyMap(),
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	m.table.SetRows(AttemptRows(attempts))
	return m
}

func (m *ReportModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Outcome", Width: 10},
		{Title: "Score", Width: 8},
		{Title: "Time", Width: 8},
	}

	height := m.height - 8 // Leave room for title, summary and help
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// AttemptRows converts attempts to table rows.
func AttemptRows(attempts []frogger.Attempt) []table.Row {
	rows := make([]table.Row, len(attempts))
	for i, a := range attempts {
		rows[i] = table.Row{
			fmt.Sprintf("%d", a.Number),
			a.Outcome,
			fmt.Sprintf("%d", a.Score),
			fmt.Sprintf("%.1fs", a.TimeUsed.Seconds()),
		}
	}
	return rows
}

// Summary returns the one-line result of the session.
func Summary(state core.GameState) string {
	result := "Quit"
	switch {
	case state.Won:
		result = "You win!"
	case state.GameOver:
		result = "Game over"
	}
	return fmt.Sprintf("%s  Score %d  High %d", result, state.Score, state.HighScore)
}

// Init initializes the report model.
func (m ReportModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the report.
func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(AttemptRows(m.attempts))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the report.
func (m ReportModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText(m.title, m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(Summary(m.state), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.attempts) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		b.WriteString(centerText(tableStyle.Render(emptyStyle.Render("No attempts recorded.")), m.width))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunReport shows the report until the player closes it.
func RunReport(title string, state core.GameState, attempts []frogger.Attempt, cfg core.RuntimeConfig) error {
	model := NewReportModel(title, state, attempts, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
