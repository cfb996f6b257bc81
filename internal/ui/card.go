package ui

import (
	"path"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shelf/internal/catalog"
	"github.com/five82/shelf/internal/covers"
)

// Card action labels.
const (
	actionAdd    = "Add"
	actionRemove = "Remove"
)

// cardInnerLines is cardHeight without the border.
const cardInnerLines = cardHeight - 2

type coverState int

const (
	coverPending coverState = iota
	coverFound
	coverMissing
)

// coverStateFor looks up a book's cover in the resolved set. done reports
// whether resolution has finished.
func coverStateFor(book catalog.Book, resolved map[string]covers.Resolution, done bool) coverState {
	if r, ok := resolved[book.CoverPhotoURL]; ok {
		if r.OK() {
			return coverFound
		}
		return coverMissing
	}
	if done {
		return coverMissing
	}
	return coverPending
}

type cardOptions struct {
	action  string
	focused bool
	cover   coverState
	onList  bool      // catalog card whose title is already on the list
	addedAt time.Time // set for reading list cards
}

// renderCard draws one book card exactly width cells wide and cardHeight
// lines tall.
func renderCard(book catalog.Book, opts cardOptions, styles Styles, width int) string {
	style := styles.Card
	if opts.focused {
		style = styles.CardFocused
	}
	inner := width - style.GetHorizontalFrameSize()
	if inner < 4 {
		inner = 4
	}

	var lines []string
	lines = append(lines, renderCoverLine(book, opts.cover, styles, inner))
	for _, l := range padLines(wrapLines(book.Title, inner, 2), 2) {
		lines = append(lines, styles.Text.Bold(true).Render(l))
	}
	lines = append(lines, styles.AccentText.Render(truncateText("by "+book.Author, inner)))
	level := ""
	if strings.TrimSpace(book.ReadingLevel) != "" {
		level = truncateText("Level "+book.ReadingLevel, inner)
	}
	lines = append(lines, styles.FaintText.Render(level))

	button := styles.Button.Render(opts.action)
	if opts.focused {
		button = styles.Button.Bold(true).Render("▸ " + opts.action)
	}
	if note := cardNote(opts); note != "" {
		room := inner - lipgloss.Width(button) - 2
		if room > 0 {
			button += "  " + styles.FaintText.Render(truncateText(note, room))
		}
	}
	lines = append(lines, button)

	return style.
		Width(width - style.GetHorizontalBorderSize()).
		Height(cardInnerLines).
		MaxHeight(cardHeight).
		Render(strings.Join(lines, "\n"))
}

// cardNote is the hint shown beside the action button.
func cardNote(opts cardOptions) string {
	switch {
	case !opts.addedAt.IsZero():
		return "added " + opts.addedAt.Format("15:04")
	case opts.onList:
		return "✓ on list"
	default:
		return ""
	}
}

func renderCoverLine(book catalog.Book, state coverState, styles Styles, width int) string {
	name := path.Base(strings.TrimSpace(book.CoverPhotoURL))
	switch {
	case name == "." || name == "/" || name == "":
		return styles.FaintText.Render(truncateText("▢ no cover", width))
	case state == coverFound:
		return styles.MutedText.Render(truncateText("▣ "+name, width))
	case state == coverMissing:
		return styles.FaintText.Render(truncateText("▢ "+name, width))
	default:
		return styles.FaintText.Render(truncateText("◌ "+name, width))
	}
}

// cardWidth returns the width of each of cols cards across total cells.
func cardWidth(total, cols int) int {
	if cols <= 1 {
		return total
	}
	w := (total - (cols-1)*cardGap) / cols
	return max(w, 1)
}

// joinCards lays cards out in a row separated by cardGap.
func joinCards(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	gap := strings.Repeat(" ", cardGap)
	parts := make([]string, 0, len(cards)*2-1)
	for i, c := range cards {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
