package state

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/five82/shelf/internal/catalog"
	"github.com/five82/shelf/internal/covers"
)

func TestStore_ZeroValue(t *testing.T) {
	var s Store
	snap := s.Snapshot()
	if snap.Loaded || snap.Err != nil || snap.Books != nil {
		t.Fatalf("zero snapshot = %#v, want empty", snap)
	}
	if snap.Failed() {
		t.Fatal("Failed() = true before any result")
	}
}

func TestStore_SetCatalogAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	if !s.SetCatalog([]catalog.Book{{Title: "Bee"}, {Title: "Cat"}}, nil) {
		t.Fatal("first SetCatalog should be recorded")
	}

	snap := s.Snapshot()
	if !snap.Loaded || snap.Err != nil {
		t.Fatalf("snapshot = %#v, want loaded without error", snap)
	}
	if len(snap.Books) != 2 || snap.Books[0].Title != "Bee" {
		t.Fatalf("books = %#v, want Bee, Cat", snap.Books)
	}
	if snap.FinishedAt.Before(before) {
		t.Fatalf("FinishedAt = %v, want >= %v", snap.FinishedAt, before)
	}

	snap.Books[0].Title = "changed"
	if got := s.Snapshot().Books[0].Title; got != "Bee" {
		t.Fatalf("Snapshot should clone books; got %q want Bee", got)
	}
}

func TestStore_EmptyCatalogIsLoaded(t *testing.T) {
	var s Store
	s.SetCatalog([]catalog.Book{}, nil)
	snap := s.Snapshot()
	if !snap.Loaded || snap.Failed() {
		t.Fatalf("snapshot = %#v, want loaded", snap)
	}
	if snap.Books == nil || len(snap.Books) != 0 {
		t.Fatalf("books = %#v, want empty non-nil", snap.Books)
	}
}

func TestStore_SetCatalogOnce(t *testing.T) {
	var s Store
	s.SetCatalog(nil, errors.New("boom"))
	if s.SetCatalog([]catalog.Book{{Title: "late"}}, nil) {
		t.Fatal("second SetCatalog should be ignored")
	}

	snap := s.Snapshot()
	if !snap.Failed() || snap.Err.Error() != "boom" {
		t.Fatalf("Err = %v, want boom", snap.Err)
	}
	if len(snap.Books) != 0 {
		t.Fatalf("books = %#v, want none after failure", snap.Books)
	}
}

func TestStore_SetCovers(t *testing.T) {
	var s Store
	res := map[string]covers.Resolution{
		"a.webp": {Location: "/covers/a.webp"},
	}
	s.SetCovers(res)
	res["b.webp"] = covers.Resolution{}

	snap := s.Snapshot()
	if !snap.CoversDone {
		t.Fatal("CoversDone = false, want true")
	}
	if len(snap.Covers) != 1 || !snap.Covers["a.webp"].OK() {
		t.Fatalf("covers = %#v, want only a.webp", snap.Covers)
	}

	snap.Covers["a.webp"] = covers.Resolution{}
	if !s.Snapshot().Covers["a.webp"].OK() {
		t.Fatal("Snapshot should clone covers")
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	var s Store
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.SetCatalog([]catalog.Book{{Title: "Bee"}}, nil)
		}()
		go func() {
			defer wg.Done()
			_ = s.Snapshot()
		}()
	}
	wg.Wait()
	if got := len(s.Snapshot().Books); got != 1 {
		t.Fatalf("books = %d, want 1", got)
	}
}
