package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

const ellipsis = "…"

// truncateText shortens value to limit cells, adding an ellipsis if needed.
func truncateText(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	return truncate.StringWithTail(value, uint(limit), ellipsis)
}

// wrapLines word-wraps value to width and keeps at most maxLines lines. Words
// longer than width are broken. When lines are dropped the last kept line
// ends in an ellipsis.
func wrapLines(value string, width, maxLines int) []string {
	value = strings.TrimSpace(value)
	if width <= 0 {
		return []string{value}
	}
	wrapped := wrap.String(wordwrap.String(value, width), width)
	lines := strings.Split(wrapped, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
		last := lines[maxLines-1]
		if lipgloss.Width(last)+1 > width {
			last = truncate.String(last, uint(width-1))
		}
		lines[maxLines-1] = last + ellipsis
	}
	return lines
}

// padLines pads lines with empty strings up to n.
func padLines(lines []string, n int) []string {
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
