package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type scrollStepMsg struct{ seq int }

func scrollStepCmd(seq int) tea.Cmd {
	return tea.Tick(scrollStepInterval, func(time.Time) tea.Msg {
		return scrollStepMsg{seq: seq}
	})
}

// scrollTo starts a smooth scroll of the page to target. Starting a new
// scroll supersedes any scroll in flight.
func (m *Model) scrollTo(target int) tea.Cmd {
	maxOffset := max(m.page.TotalLineCount()-m.page.Height, 0)
	m.scrollTarget = clamp(target, 0, maxOffset)
	m.scrollSeq++
	if m.page.YOffset == m.scrollTarget {
		return nil
	}
	return scrollStepCmd(m.scrollSeq)
}

// stepScroll moves a third of the remaining distance, at least one line.
func (m *Model) stepScroll() tea.Cmd {
	diff := m.scrollTarget - m.page.YOffset
	if diff == 0 {
		return nil
	}
	step := diff / 3
	if step == 0 {
		step = 1
		if diff < 0 {
			step = -1
		}
	}
	before := m.page.YOffset
	m.page.SetYOffset(before + step)
	if m.page.YOffset == m.scrollTarget || m.page.YOffset == before {
		return nil
	}
	return scrollStepCmd(m.scrollSeq)
}

func (m *Model) cancelScroll() {
	m.scrollSeq++
}
