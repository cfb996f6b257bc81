package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"

	"github.com/five82/shelf/internal/catalog"
	"github.com/five82/shelf/internal/search"
)

type searchState int

const (
	searchIdle      searchState = iota // no query
	searchTyping                       // query present, results open
	searchDismissed                    // results closed, query may remain
)

func (s searchState) String() string {
	switch s {
	case searchTyping:
		return "typing"
	case searchDismissed:
		return "dismissed"
	default:
		return "idle"
	}
}

// pointerSubscription scopes outside-press detection to the lifetime of the
// open results list. The shell turns mouse reporting on while one is active.
type pointerSubscription struct {
	top, left     int
	width, height int
}

func (p *pointerSubscription) contains(x, y int) bool {
	if p == nil {
		return false
	}
	return x >= p.left && x < p.left+p.width && y >= p.top && y < p.top+p.height
}

// searchEvent tells the shell what a search update changed.
type searchEvent struct {
	termChanged bool
	term        string
	picked      *catalog.Book
}

// searchInput is the title search field with its results dropdown.
type searchInput struct {
	input     textinput.Model
	state     searchState
	matches   []catalog.Book
	highlight int // index into matches, -1 when nothing is highlighted
	offset    int // first visible match
	sub       *pointerSubscription
	keys      keyMap
}

func newSearchInput(keys keyMap) searchInput {
	ti := textinput.New()
	ti.Placeholder = "Search by title..."
	ti.Prompt = "/ "
	ti.CharLimit = 120
	return searchInput{input: ti, highlight: -1, keys: keys}
}

func (s searchInput) open() bool {
	return s.state == searchTyping
}

func (s searchInput) value() string {
	return s.input.Value()
}

// focus gives the field keyboard focus.
func (s *searchInput) focus() tea.Cmd {
	return s.input.Focus()
}

// blur drops focus and closes the results.
func (s *searchInput) blur() {
	s.input.Blur()
	s.dismiss()
}

func (s *searchInput) dismiss() {
	if s.state == searchTyping {
		s.state = searchDismissed
	}
	s.highlight = -1
	s.offset = 0
	s.sub = nil
}

func (s *searchInput) clear() searchEvent {
	changed := s.input.Value() != ""
	s.input.SetValue("")
	s.state = searchIdle
	s.matches = nil
	s.highlight = -1
	s.offset = 0
	s.sub = nil
	return searchEvent{termChanged: changed, term: ""}
}

// setWidth sizes the text field for a terminal width.
func (s *searchInput) setWidth(width int) {
	s.input.Width = max(width-len(s.input.Prompt)-2, 10)
}

// layout records where the component sits so pointer presses can be
// classified. It only creates a subscription while the results are open.
func (s *searchInput) layout(top, width int) {
	if !s.open() {
		s.sub = nil
		return
	}
	s.sub = &pointerSubscription{top: top, left: 0, width: width, height: 1 + s.dropdownHeight()}
}

// dropdownHeight is the number of result rows shown under the field.
func (s searchInput) dropdownHeight() int {
	if !s.open() {
		return 0
	}
	if len(s.matches) == 0 {
		return 1
	}
	return min(len(s.matches), maxDropdownRows)
}

func (s *searchInput) refresh(books []catalog.Book) {
	s.matches = search.Filter(s.input.Value(), books)
	s.highlight = -1
	s.offset = 0
}

func (s *searchInput) pick(i int) searchEvent {
	if i < 0 || i >= len(s.matches) {
		return searchEvent{}
	}
	book := s.matches[i]
	s.dismiss()
	return searchEvent{picked: &book}
}

func (s *searchInput) moveHighlight(delta int) {
	if len(s.matches) == 0 {
		return
	}
	s.highlight = clamp(s.highlight+delta, -1, len(s.matches)-1)
	switch {
	case s.highlight < 0:
		s.offset = 0
	case s.highlight < s.offset:
		s.offset = s.highlight
	case s.highlight >= s.offset+maxDropdownRows:
		s.offset = s.highlight - maxDropdownRows + 1
	}
}

// handleKey runs a key press through the state machine.
func (s *searchInput) handleKey(msg tea.KeyMsg, books []catalog.Book) (searchEvent, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.ClearSearch):
		return s.clear(), nil
	case key.Matches(msg, s.keys.Dismiss):
		s.dismiss()
		return searchEvent{}, nil
	case s.open() && key.Matches(msg, s.keys.NextMatch):
		s.moveHighlight(1)
		return searchEvent{}, nil
	case s.open() && key.Matches(msg, s.keys.PrevMatch):
		s.moveHighlight(-1)
		return searchEvent{}, nil
	case key.Matches(msg, s.keys.Confirm):
		if s.open() && s.highlight >= 0 {
			return s.pick(s.highlight), nil
		}
		s.dismiss()
		return searchEvent{}, nil
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	after := s.input.Value()
	if after == before {
		return searchEvent{}, cmd
	}
	if after == "" {
		return s.clear(), cmd
	}
	s.state = searchTyping
	s.refresh(books)
	return searchEvent{termChanged: true, term: after}, cmd
}

// handlePress classifies a pointer press while the results are open.
func (s *searchInput) handlePress(x, y int) searchEvent {
	if s.sub == nil || !s.open() {
		return searchEvent{}
	}
	if !s.sub.contains(x, y) {
		s.dismiss()
		return searchEvent{}
	}
	row := y - s.sub.top - 1
	if row < 0 || len(s.matches) == 0 {
		return searchEvent{}
	}
	return s.pick(s.offset + row)
}

func (s searchInput) view(width int, styles Styles) string {
	out := s.input.View()
	if !s.open() {
		return out
	}
	rowWidth := max(width, 10)
	if len(s.matches) == 0 {
		return out + "\n" + styles.Dropdown.Width(rowWidth).Render("  No results found.")
	}
	end := min(s.offset+maxDropdownRows, len(s.matches))
	for i := s.offset; i < end; i++ {
		b := s.matches[i]
		style := styles.Dropdown
		marker := "  "
		if i == s.highlight {
			style = styles.DropdownSelected
			marker = "▸ "
		}
		line := truncate.StringWithTail(marker+b.Title+"  by "+b.Author, uint(rowWidth), ellipsis)
		out += "\n" + style.Width(rowWidth).Render(line)
	}
	return out
}
