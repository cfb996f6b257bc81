package state

import (
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/five82/shelf/internal/catalog"
	"github.com/five82/shelf/internal/covers"
)

// Snapshot represents the catalog data available to the UI.
type Snapshot struct {
	Books      []catalog.Book
	Loaded     bool // a catalog result (books or error) has been recorded
	Err        error
	FinishedAt time.Time

	Covers     map[string]covers.Resolution
	CoversDone bool
}

// Failed reports whether the catalog load finished with an error.
func (s Snapshot) Failed() bool {
	return s.Loaded && s.Err != nil
}

// Store coordinates the fetch goroutine and the UI.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// SetCatalog records the catalog result. Only the first call has any effect;
// it returns false when a result was already recorded.
func (s *Store) SetCatalog(books []catalog.Book, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Loaded {
		return false
	}
	s.snapshot.Loaded = true
	s.snapshot.FinishedAt = time.Now()
	if err != nil {
		s.snapshot.Err = err
		s.snapshot.Books = nil
		return true
	}
	s.snapshot.Books = cloneBooks(books)
	return true
}

// SetCovers records cover resolutions keyed by coverPhotoURL.
func (s *Store) SetCovers(res map[string]covers.Resolution) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Covers = maps.Clone(res)
	s.snapshot.CoversDone = true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Books = cloneBooks(s.snapshot.Books)
	snap.Covers = maps.Clone(s.snapshot.Covers)
	return snap
}

func cloneBooks(books []catalog.Book) []catalog.Book {
	if books == nil {
		return nil
	}
	return slices.Clone(books)
}
