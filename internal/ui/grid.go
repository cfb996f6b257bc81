package ui

import (
	"strings"
	"time"

	"github.com/five82/shelf/internal/catalog"
	"github.com/five82/shelf/internal/readinglist"
)

// gridItem is one card. Reading list items carry their entry id and add
// time; catalog items leave both empty.
type gridItem struct {
	id      string
	book    catalog.Book
	addedAt time.Time
}

// bookGrid is a responsive grid of cards with a keyboard cursor. Items are
// shown in exactly the order given.
type bookGrid struct {
	items  []gridItem
	cursor int
	action string
	empty  string
}

func newBookGrid(action, empty string) bookGrid {
	return bookGrid{action: action, empty: empty}
}

// setBooks replaces the grid content with catalog books.
func (g *bookGrid) setBooks(books []catalog.Book) {
	items := make([]gridItem, len(books))
	for i, b := range books {
		items[i] = gridItem{book: b}
	}
	g.setItems(items)
}

// setEntries replaces the grid content with reading list entries.
func (g *bookGrid) setEntries(entries []readinglist.Entry) {
	items := make([]gridItem, len(entries))
	for i, e := range entries {
		items[i] = gridItem{id: e.ID, book: e.Book, addedAt: e.AddedAt}
	}
	g.setItems(items)
}

// setItems keeps the cursor on the same entry when it survives the update
// and otherwise keeps the cursor in range.
func (g *bookGrid) setItems(items []gridItem) {
	prev := g.selectedID()
	g.items = items
	if prev != "" {
		for i, it := range items {
			if it.id == prev {
				g.cursor = i
				return
			}
		}
	}
	g.cursor = clamp(g.cursor, 0, len(g.items)-1)
}

func (g bookGrid) selected() (catalog.Book, bool) {
	if g.cursor < 0 || g.cursor >= len(g.items) {
		return catalog.Book{}, false
	}
	return g.items[g.cursor].book, true
}

// selectedID is the entry id under the cursor, empty for catalog items.
func (g bookGrid) selectedID() string {
	if g.cursor < 0 || g.cursor >= len(g.items) {
		return ""
	}
	return g.items[g.cursor].id
}

// move shifts the cursor by dx cells and dy rows. It reports whether the
// cursor moved.
func (g *bookGrid) move(dx, dy, cols int) bool {
	if len(g.items) == 0 {
		return false
	}
	cols = max(cols, 1)
	next := g.cursor + dx + dy*cols
	if dy > 0 && next >= len(g.items) {
		// Allow stepping down onto a shorter last row.
		if g.cursor/cols < g.rows(cols)-1 {
			next = len(g.items) - 1
		}
	}
	if next < 0 || next >= len(g.items) {
		return false
	}
	g.cursor = next
	return true
}

func (g bookGrid) rows(cols int) int {
	cols = max(cols, 1)
	return (len(g.items) + cols - 1) / cols
}

// cursorLine is the line offset of the cursor's row within the grid.
func (g bookGrid) cursorLine(cols int) int {
	return (g.cursor / max(cols, 1)) * cardHeight
}

// height is the number of lines render produces.
func (g bookGrid) height(cols int) int {
	if len(g.items) == 0 {
		return 1
	}
	return g.rows(cols) * cardHeight
}

// render draws the grid. onList may be nil; when set it marks catalog books
// already on the reading list.
func (g bookGrid) render(width int, focused bool, styles Styles, cover func(catalog.Book) coverState, onList func(catalog.Book) bool) string {
	if len(g.items) == 0 {
		return styles.MutedText.Render(g.empty)
	}
	cols := columnsFor(width)
	w := cardWidth(width, cols)

	var rows []string
	for start := 0; start < len(g.items); start += cols {
		end := min(start+cols, len(g.items))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			it := g.items[i]
			cards = append(cards, renderCard(it.book, cardOptions{
				action:  g.action,
				focused: focused && i == g.cursor,
				cover:   cover(it.book),
				onList:  onList != nil && onList(it.book),
				addedAt: it.addedAt,
			}, styles, w))
		}
		rows = append(rows, joinCards(cards))
	}
	return strings.Join(rows, "\n")
}
