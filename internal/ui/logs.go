package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/lsmdash/internal/logtail"
)

type logLinesMsg struct {
	lines []string
}

type logErrorMsg struct {
	err error
}

// loadLogsCmd tails the dashboard's own log file.
func loadLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, LogTailLines)
		if err != nil {
			return logErrorMsg{err: err}
		}
		return logLinesMsg{lines: lines}
	}
}

// setLogLines replaces the pane content, following the tail when the
// viewport was already at the bottom.
func (m *Model) setLogLines(lines []string) {
	follow := m.logViewport.AtBottom()
	m.logLines = lines
	m.refreshLogContent()
	if follow {
		m.logViewport.GotoBottom()
	}
}

// refreshLogContent re-renders the buffered lines with the current theme.
func (m *Model) refreshLogContent() {
	m.logViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))
	m.logViewport.SetContent(m.renderLogContent())
}

// scrollLogs moves the log pane for the scroll bindings; other keys are ignored.
func (m *Model) scrollLogs(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.logViewport.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.logViewport.LineDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.logViewport.ViewUp()
	case key.Matches(msg, m.keys.PageDown):
		m.logViewport.ViewDown()
	}
}

func (m Model) renderLogContent() string {
	styles := m.theme.Styles()
	if len(m.logLines) == 0 {
		return styles.FaintText.Render("No log output yet")
	}

	width := m.logViewport.Width
	var b strings.Builder
	for i, line := range m.logLines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.logLineStyle(line).Render(truncate(line, width)))
	}
	return b.String()
}

func (m Model) logLineStyle(line string) lipgloss.Style {
	styles := m.theme.Styles()
	switch logtail.Level(line) {
	case "ERROR":
		return styles.DangerText
	case "WARN":
		return styles.WarningText
	case "DEBUG":
		return styles.FaintText
	default:
		return styles.Text
	}
}

// renderLogs renders the log pane.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()
	title := styles.PanelTitle.Render("Log") + "  " + styles.FaintText.Render(truncateMiddle(m.logPath, 60))
	content := title + "\n" + m.logViewport.View()
	return styles.PanelFocused.Width(maxInt(m.width-2, 1)).Render(content)
}
