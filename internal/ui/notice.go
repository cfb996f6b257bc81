package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// notice is the transient message shown after a card action.
type notice struct {
	id   int
	text string
}

type noticeExpiredMsg struct{ id int }

func addedNotice(title string) string {
	return fmt.Sprintf("%s added to reading list", title)
}

func removedNotice(title string) string {
	return fmt.Sprintf("%s removed from reading list", title)
}

// showNotice replaces any current notice and schedules its expiry. The id
// keeps an older timer from closing a newer notice.
func (m *Model) showNotice(text string) tea.Cmd {
	m.noticeSeq++
	id := m.noticeSeq
	m.notice = &notice{id: id, text: text}
	return tea.Tick(m.noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}

func (m *Model) expireNotice(id int) {
	if m.notice != nil && m.notice.id == id {
		m.notice = nil
	}
}

func (m *Model) dismissNotice() bool {
	if m.notice == nil {
		return false
	}
	m.notice = nil
	return true
}

func (m Model) renderNotice(styles Styles) string {
	if m.notice == nil {
		return ""
	}
	return styles.Notice.Render(truncateText(m.notice.text, m.width-4)) +
		styles.FaintText.Render("  x to close")
}
