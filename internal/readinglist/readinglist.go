// Package readinglist holds the user's in-memory reading list.
//
// The list is owned by the UI model and only touched from the Bubble Tea
// update loop, so it carries no locking. Nothing is persisted.
package readinglist

import (
	"time"

	"github.com/google/uuid"

	"github.com/five82/shelf/internal/catalog"
)

// Entry is one book on the list. ID is assigned on Add and is unique even
// when the same title is added twice.
type Entry struct {
	ID      string
	Book    catalog.Book
	AddedAt time.Time
}

// List is an ordered collection of entries in insertion order.
type List struct {
	entries []Entry
	newID   func() string
	now     func() time.Time
}

// New returns an empty list.
func New() *List {
	return &List{newID: newEntryID, now: time.Now}
}

func newEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Add appends book and returns the new entry.
func (l *List) Add(book catalog.Book) Entry {
	e := Entry{ID: l.newID(), Book: book, AddedAt: l.now()}
	l.entries = append(l.entries, e)
	return e
}

// RemoveTitle removes every entry whose title equals title and returns how
// many were removed. Duplicate titles are all dropped in one call; use
// RemoveEntry to drop a single entry.
func (l *List) RemoveTitle(title string) int {
	kept := l.entries[:0]
	removed := 0
	for _, e := range l.entries {
		if e.Book.Title == title {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	clear(l.entries[len(kept):])
	l.entries = kept
	return removed
}

// RemoveEntry removes the entry with the given id.
func (l *List) RemoveEntry(id string) bool {
	for i, e := range l.entries {
		if e.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Entries returns a copy of the entries in insertion order.
func (l *List) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *List) Len() int { return len(l.entries) }

// Empty reports whether the list has no entries.
func (l *List) Empty() bool { return len(l.entries) == 0 }

// ContainsTitle reports whether any entry has the given title.
func (l *List) ContainsTitle(title string) bool {
	for _, e := range l.entries {
		if e.Book.Title == title {
			return true
		}
	}
	return false
}
