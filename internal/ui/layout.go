package ui

import "time"

// Terminal width classes for the book grid.
const (
	// LayoutSmallWidth is the first width that fits two columns.
	LayoutSmallWidth = 60

	// LayoutMediumWidth is the first width that fits three columns.
	LayoutMediumWidth = 100

	// LayoutLargeWidth is the first width that fits four columns.
	LayoutLargeWidth = 140
)

// Card geometry.
const (
	// cardHeight is the rendered height of a card including its border.
	cardHeight = 8

	// cardGap is the horizontal space between cards.
	cardGap = 1

	// maxDropdownRows caps the visible search results.
	maxDropdownRows = 6
)

// Timing constants.
const (
	// snapshotPollInterval is how often the store is checked while loading.
	snapshotPollInterval = 100 * time.Millisecond

	// scrollStepInterval paces smooth scrolling.
	scrollStepInterval = 16 * time.Millisecond

	// readingListMargin keeps a line above the reading list heading when
	// scrolling to it.
	readingListMargin = 1

	// logTailLines is how much of the log the log view shows.
	logTailLines = 500
)

// columnsFor maps a terminal width to its grid column count.
func columnsFor(width int) int {
	switch {
	case width < LayoutSmallWidth:
		return 1
	case width < LayoutMediumWidth:
		return 2
	case width < LayoutLargeWidth:
		return 3
	default:
		return 4
	}
}
