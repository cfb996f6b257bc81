// Package search implements the title filter shared by the search dropdown
// and the book grid.
package search

import (
	"strings"

	"github.com/five82/shelf/internal/catalog"
)

// Matches reports whether title contains query, ignoring case. An empty query
// matches everything.
func Matches(query, title string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(title), strings.ToLower(query))
}

// Filter returns the books whose title contains query, ignoring case, in
// their original order. An empty query returns a copy of books. Matching is
// plain case folding; accents and locale rules are not considered.
func Filter(query string, books []catalog.Book) []catalog.Book {
	if query == "" {
		out := make([]catalog.Book, len(books))
		copy(out, books)
		return out
	}
	needle := strings.ToLower(query)
	out := make([]catalog.Book, 0, len(books))
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), needle) {
			out = append(out, b)
		}
	}
	return out
}
