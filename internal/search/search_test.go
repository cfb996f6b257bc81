package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/five82/shelf/internal/catalog"
)

var sample = []catalog.Book{
	{Title: "Bee", Author: "A"},
	{Title: "Cat", Author: "B"},
	{Title: "The Busy Bee", Author: "C"},
	{Title: "Über Cats", Author: "D"},
}

func titles(books []catalog.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.Title)
	}
	return out
}

func TestFilter_Scenario(t *testing.T) {
	books := []catalog.Book{{Title: "Bee", Author: "A"}, {Title: "Cat", Author: "B"}}
	got := Filter("b", books)
	assert.Equal(t, []catalog.Book{{Title: "Bee", Author: "A"}}, got)
}

func TestFilter_EmptyQueryIsIdentity(t *testing.T) {
	got := Filter("", sample)
	assert.Equal(t, sample, got)

	// The result is a copy.
	got[0].Title = "changed"
	assert.Equal(t, "Bee", sample[0].Title)
}

func TestFilter_CaseInsensitive(t *testing.T) {
	for _, q := range []string{"bee", "cat", "BuSy", "e", "über", "zzz", " "} {
		lower := Filter(strings.ToLower(q), sample)
		upper := Filter(strings.ToUpper(q), sample)
		asIs := Filter(q, sample)
		assert.Equal(t, titles(asIs), titles(lower), "query %q", q)
		assert.Equal(t, titles(asIs), titles(upper), "query %q", q)
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	assert.Equal(t, []string{"Bee", "The Busy Bee"}, titles(Filter("BEE", sample)))
	assert.Equal(t, []string{"Cat", "Über Cats"}, titles(Filter("cat", sample)))
}

func TestFilter_NoResults(t *testing.T) {
	got := Filter("dragon", sample)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, Filter("x", nil))
}

func TestFilter_WhitespaceIsALiteralQuery(t *testing.T) {
	assert.Equal(t, []string{"The Busy Bee", "Über Cats"}, titles(Filter(" ", sample)))
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("", "anything"))
	assert.True(t, Matches("BEE", "The Busy Bee"))
	assert.False(t, Matches("dog", "Cat"))
}
