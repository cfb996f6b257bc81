package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shelf/internal/logtail"
)

type logLinesMsg struct {
	lines []logtail.Line
	err   error
}

func loadLogCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return logLinesMsg{}
		}
		lines, err := logtail.Tail(path, logTailLines)
		return logLinesMsg{lines: lines, err: err}
	}
}

func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Logs), key.Matches(msg, m.keys.Dismiss), key.Matches(msg, m.keys.Quit):
		m.showLogs = false
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.logView.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		m.logView.ScrollUp(1)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.logView.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.logView.HalfPageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.logView.PageDown()
	case key.Matches(msg, m.keys.PageUp):
		m.logView.PageUp()
	case key.Matches(msg, m.keys.Top):
		m.logView.GotoTop()
	}
	return m, nil
}

// updateLogView sizes the log viewport and refills it, pinned to the newest
// line.
func (m *Model) updateLogView() {
	m.logView.Width = max(m.width-4, 10)
	m.logView.Height = max(m.height-4, 1)
	m.logView.SetContent(m.renderLogContent())
	m.logView.GotoBottom()
}

func (m Model) renderLogContent() string {
	styles := m.theme.Styles()
	if m.logErr != nil {
		return styles.DangerText.Render("Cannot read log: " + m.logErr.Error())
	}
	if len(m.logLines) == 0 {
		return styles.FaintText.Render("Log is empty")
	}
	out := make([]string, len(m.logLines))
	for i, l := range m.logLines {
		text := truncateText(l.Text, m.logView.Width)
		switch l.Level {
		case logtail.LevelError:
			out[i] = styles.DangerText.Render(text)
		case logtail.LevelWarn:
			out[i] = styles.WarningText.Render(text)
		default:
			out[i] = styles.MutedText.Render(text)
		}
	}
	return strings.Join(out, "\n")
}

func (m Model) renderLogs() string {
	styles := m.theme.Styles()
	title := styles.SectionTitle.Render("Log") + "  " + styles.FaintText.Render(m.logPath)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Width(max(m.width-2, 10)).
		Render(m.logView.View())
	return title + "\n" + box + "\n" + styles.Footer.Render("esc close · j/k scroll · g top")
}
