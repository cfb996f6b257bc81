package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shelf/internal/catalog"
	"github.com/five82/shelf/internal/config"
	"github.com/five82/shelf/internal/logtail"
	"github.com/five82/shelf/internal/prefs"
	"github.com/five82/shelf/internal/readinglist"
	"github.com/five82/shelf/internal/search"
	"github.com/five82/shelf/internal/state"
)

// focusArea is the part of the page receiving keys.
type focusArea int

const (
	focusSearch focusArea = iota
	focusBooks
	focusReading
)

// Fixed rows around the page viewport: header, search field, notice, footer.
const (
	headerRows = 1
	searchRow  = headerRows
	footerRows = 2
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Config    *config.Config
	ThemeName string
	PrefsPath string
	LogPath   string
}

// Model is the root application state for Bubble Tea. It owns the search
// term and the reading list; nothing else mutates them.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	prefsPath string
	logPath   string
	noticeTTL time.Duration
	keys      keyMap

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool
	focus  focusArea

	// Catalog state
	snapshot state.Snapshot
	spinner  spinner.Model

	// Shell state
	searchTerm  string
	readingList *readinglist.List
	search      searchInput
	books       bookGrid
	reading     bookGrid
	mouseOn     bool

	// Page
	page         viewport.Model
	readingTop   int
	booksTop     int
	scrollTarget int
	scrollSeq    int

	// Notice
	notice    *notice
	noticeSeq int

	// Help overlay
	showHelp bool
	help     help.Model

	// Log overlay
	showLogs bool
	logView  viewport.Model
	logLines []logtail.Line
	logErr   error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	var cfg config.Config
	if opts.Config != nil {
		cfg = *opts.Config
	}
	logPath := opts.LogPath
	if logPath == "" {
		logPath = cfg.LogFile
	}

	keys := DefaultKeyMap()
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	h := help.New()
	h.ShowAll = true

	return Model{
		ctx:         ctx,
		store:       opts.Store,
		prefsPath:   prefsPath,
		logPath:     logPath,
		noticeTTL:   cfg.NoticeDuration(),
		keys:        keys,
		theme:       GetTheme(themeName),
		focus:       focusBooks,
		spinner:     sp,
		readingList: readinglist.New(),
		search:      newSearchInput(keys),
		books:       newBookGrid(actionAdd, "No books match"),
		reading:     newBookGrid(actionRemove, "Your reading list is empty"),
		page:        viewport.New(0, 0),
		help:        h,
		logView:     viewport.New(0, 0),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.search.setWidth(m.width)
		m.resize()
		m.rebuildPage()
		return m, nil

	case spinner.TickMsg:
		if m.snapshot.Loaded {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		if m.store == nil {
			return m, nil
		}
		return m, fetchSnapshotCmd(m.store)

	case snapshotMsg:
		return m.applySnapshot(state.Snapshot(msg))

	case noticeExpiredMsg:
		m.expireNotice(msg.id)
		return m, nil

	case scrollStepMsg:
		if msg.seq != m.scrollSeq {
			return m, nil
		}
		cmd := m.stepScroll()
		return m, cmd

	case logLinesMsg:
		m.logLines = msg.lines
		m.logErr = msg.err
		m.updateLogView()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return ""
	}
	styles := m.theme.Styles()

	if !m.snapshot.Loaded {
		return m.spinner.View() + " " + styles.MutedText.Render("Loading books…")
	}
	if m.snapshot.Failed() {
		return styles.DangerText.Render("Error: " + m.snapshot.Err.Error())
	}

	if m.showHelp {
		return m.renderHelp()
	}
	if m.showLogs {
		return m.renderLogs()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader(styles))
	b.WriteString("\n")
	b.WriteString(m.search.view(m.width, styles))
	b.WriteString("\n")
	b.WriteString(m.page.View())
	b.WriteString("\n")
	b.WriteString(m.renderNotice(styles))
	b.WriteString("\n")
	b.WriteString(styles.Footer.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	return b.String()
}

func (m Model) renderHeader(styles Styles) string {
	books := len(m.snapshot.Books)
	count := fmt.Sprintf("%d books", books)
	if m.searchTerm != "" {
		count = fmt.Sprintf("%d of %d books", len(m.books.items), books)
	}
	header := styles.Logo.Render("Shelf") + "  " + styles.MutedText.Render(count)
	if !m.snapshot.FinishedAt.IsZero() {
		header += styles.FaintText.Render("  · loaded " + m.snapshot.FinishedAt.Format("15:04:05"))
	}
	return header
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		cmd := m.quit()
		return m, cmd
	}

	// Only quitting is possible until the catalog is usable.
	if !m.snapshot.Loaded || m.snapshot.Failed() {
		if key.Matches(msg, m.keys.Quit) {
			cmd := m.quit()
			return m, cmd
		}
		return m, nil
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.showLogs {
		return m.handleLogsKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Tab):
		cmd := m.cycleFocus(1)
		return m, cmd
	case key.Matches(msg, m.keys.ShiftTab):
		cmd := m.cycleFocus(-1)
		return m, cmd
	}

	if m.focus == focusSearch {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		cmd := m.quit()
		return m, cmd

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			log.Printf("prefs: save theme: %v", err)
		}
		m.rebuildPage()
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		m.showLogs = true
		m.updateLogView()
		return m, loadLogCmd(m.logPath)

	case key.Matches(msg, m.keys.FocusSearch):
		cmd := m.setFocus(focusSearch)
		return m, cmd

	case key.Matches(msg, m.keys.ReadingList):
		if m.readingList.Empty() {
			return m, nil
		}
		m.setFocus(focusReading)
		m.rebuildPage()
		cmd := m.scrollTo(m.readingTop - readingListMargin)
		return m, cmd

	case key.Matches(msg, m.keys.Top):
		cmd := m.scrollTo(0)
		return m, cmd

	case key.Matches(msg, m.keys.DismissNotice):
		m.dismissNotice()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.cancelScroll()
		m.page.PageDown()
		return m, nil
	case key.Matches(msg, m.keys.PageUp):
		m.cancelScroll()
		m.page.PageUp()
		return m, nil
	case key.Matches(msg, m.keys.HalfPageDown):
		m.cancelScroll()
		m.page.HalfPageDown()
		return m, nil
	case key.Matches(msg, m.keys.HalfPageUp):
		m.cancelScroll()
		m.page.HalfPageUp()
		return m, nil
	}

	return m.handleGridKey(msg)
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Dismiss) && !m.search.open() {
		cmd := m.setFocus(focusBooks)
		return m, cmd
	}
	ev, cmd := m.search.handleKey(msg, m.snapshot.Books)
	m.applySearchEvent(ev)
	pointerCmd := m.syncPointer()
	return m, tea.Batch(cmd, pointerCmd)
}

func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	grid := &m.books
	if m.focus == focusReading {
		grid = &m.reading
	}
	cols := columnsFor(m.width)

	moved := false
	switch {
	case key.Matches(msg, m.keys.Up):
		moved = grid.move(0, -1, cols)
	case key.Matches(msg, m.keys.Down):
		moved = grid.move(0, 1, cols)
	case key.Matches(msg, m.keys.Left):
		moved = grid.move(-1, 0, cols)
	case key.Matches(msg, m.keys.Right):
		moved = grid.move(1, 0, cols)
	case key.Matches(msg, m.keys.Action):
		book, ok := grid.selected()
		if !ok {
			return m, nil
		}
		if m.focus == focusReading {
			m.removeBook(book.Title)
			cmd := m.showNotice(removedNotice(book.Title))
			return m, cmd
		}
		m.addBook(book)
		cmd := m.showNotice(addedNotice(book.Title))
		return m, cmd
	case key.Matches(msg, m.keys.RemoveEntry):
		if m.focus != focusReading {
			return m, nil
		}
		book, ok := grid.selected()
		if !ok || !m.removeEntry(grid.selectedID()) {
			return m, nil
		}
		cmd := m.showNotice(removedNotice(book.Title))
		return m, cmd
	}
	if moved {
		m.rebuildPage()
		m.ensureCursorVisible()
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	ev := m.search.handlePress(msg.X, msg.Y)
	m.applySearchEvent(ev)
	cmd := m.syncPointer()
	return m, cmd
}

func (m *Model) applySearchEvent(ev searchEvent) {
	if ev.termChanged {
		m.searchTerm = ev.term
		m.books.setBooks(search.Filter(m.searchTerm, m.snapshot.Books))
	}
	if ev.picked != nil {
		m.addBook(*ev.picked)
	}
	if ev.termChanged || ev.picked != nil {
		m.rebuildPage()
	}
}

// addBook appends book to the reading list.
func (m *Model) addBook(book catalog.Book) {
	m.readingList.Add(book)
	m.syncReading()
}

// removeBook drops every reading list entry titled title.
func (m *Model) removeBook(title string) {
	m.readingList.RemoveTitle(title)
	m.syncReading()
}

// removeEntry drops the single reading list entry with the given id.
func (m *Model) removeEntry(id string) bool {
	if !m.readingList.RemoveEntry(id) {
		return false
	}
	m.syncReading()
	return true
}

func (m *Model) syncReading() {
	m.reading.setEntries(m.readingList.Entries())
	if m.readingList.Empty() && m.focus == focusReading {
		m.focus = focusBooks
	}
	m.rebuildPage()
}

func (m *Model) setFocus(area focusArea) tea.Cmd {
	if area == focusReading && m.readingList.Empty() {
		area = focusBooks
	}
	var cmd tea.Cmd
	if area == focusSearch {
		cmd = m.search.focus()
	} else if m.focus == focusSearch {
		m.search.blur()
	}
	m.focus = area
	m.rebuildPage()
	return tea.Batch(cmd, m.syncPointer())
}

func (m *Model) cycleFocus(delta int) tea.Cmd {
	areas := []focusArea{focusSearch, focusBooks, focusReading}
	if m.readingList.Empty() {
		areas = areas[:2]
	}
	idx := 0
	for i, a := range areas {
		if a == m.focus {
			idx = i
		}
	}
	next := areas[(idx+delta+len(areas))%len(areas)]
	cmd := m.setFocus(next)
	if next != focusSearch {
		m.ensureCursorVisible()
	}
	return cmd
}

// syncPointer turns mouse reporting on while the search results hold a
// pointer subscription and off once it is released.
func (m *Model) syncPointer() tea.Cmd {
	m.search.layout(searchRow, m.width)
	m.resize()
	want := m.search.sub != nil
	if want == m.mouseOn {
		return nil
	}
	m.mouseOn = want
	if want {
		return tea.EnableMouseCellMotion
	}
	return tea.DisableMouse
}

func (m *Model) quit() tea.Cmd {
	m.search.blur()
	if m.mouseOn {
		m.mouseOn = false
		return tea.Sequence(tea.DisableMouse, tea.Quit)
	}
	return tea.Quit
}

func (m Model) applySnapshot(snap state.Snapshot) (tea.Model, tea.Cmd) {
	firstLoad := snap.Loaded && !m.snapshot.Loaded
	m.snapshot = snap
	if firstLoad && !snap.Failed() {
		m.books.setBooks(search.Filter(m.searchTerm, snap.Books))
	}
	if m.ready {
		m.rebuildPage()
	}
	if snap.Loaded && (snap.Failed() || snap.CoversDone) {
		return m, nil
	}
	return m, tickCmd(snapshotPollInterval)
}

// resize fits the page viewport between the fixed rows.
func (m *Model) resize() {
	h := m.height - headerRows - 1 - m.search.dropdownHeight() - footerRows
	m.page.Width = m.width
	m.page.Height = max(h, 1)
}

// rebuildPage renders both grids into the page viewport and records where
// each section starts.
func (m *Model) rebuildPage() {
	if !m.ready || !m.snapshot.Loaded || m.snapshot.Failed() {
		return
	}
	styles := m.theme.Styles()
	cover := func(b catalog.Book) coverState {
		return coverStateFor(b, m.snapshot.Covers, m.snapshot.CoversDone)
	}
	onList := func(b catalog.Book) bool {
		return m.readingList.ContainsTitle(b.Title)
	}

	var lines []string
	heading := styles.SectionTitle.Render("All Books")
	if !m.readingList.Empty() {
		link := styles.Link.Render("View Reading List") + styles.FaintText.Render(" (r)")
		gap := max(m.width-lipgloss.Width(heading)-lipgloss.Width(link), 2)
		heading += strings.Repeat(" ", gap) + link
	}
	lines = append(lines, heading, "")

	m.booksTop = len(lines)
	lines = append(lines, m.books.render(m.width, m.focus == focusBooks, styles, cover, onList), "")

	m.readingTop = m.booksTop + m.books.height(columnsFor(m.width)) + 1
	lines = append(lines,
		styles.SectionTitle.Render(fmt.Sprintf("Reading List (%d)", m.readingList.Len())),
		"",
		m.reading.render(m.width, m.focus == focusReading, styles, cover, nil),
	)

	offset := m.page.YOffset
	m.page.SetContent(strings.Join(lines, "\n"))
	m.page.SetYOffset(offset)
}

// ensureCursorVisible scrolls the page so the focused card is on screen.
func (m *Model) ensureCursorVisible() {
	cols := columnsFor(m.width)
	var top int
	switch m.focus {
	case focusBooks:
		top = m.booksTop + m.books.cursorLine(cols)
	case focusReading:
		top = m.readingTop + 2 + m.reading.cursorLine(cols)
	default:
		return
	}
	m.cancelScroll()
	switch {
	case top < m.page.YOffset:
		m.page.SetYOffset(top)
	case top+cardHeight > m.page.YOffset+m.page.Height:
		m.page.SetYOffset(top + cardHeight - m.page.Height)
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, programOpts...)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
