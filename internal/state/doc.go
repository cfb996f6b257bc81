// Package state holds the one-shot catalog load result shared between the
// fetch goroutine and the UI.
//
// # Overview
//
// The catalog is fetched exactly once per session. The fetch goroutine
// records the outcome with SetCatalog and, when covers are configured, the
// cover resolutions with SetCovers. The UI polls Snapshot on a short tick
// until Loaded is true and then stops polling the catalog part.
//
//	Fetch goroutine:               UI (Bubble Tea):
//	┌──────────────────┐          ┌──────────────────┐
//	│ source.FetchBooks│          │                  │
//	│ store.SetCatalog │─────────→│ store.Snapshot() │
//	│ resolver.Resolve │  (mutex) │      ↓           │
//	│ store.SetCovers  │─────────→│  render grid     │
//	└──────────────────┘          └──────────────────┘
//
// # Semantics
//
// SetCatalog is first-write-wins: the catalog is immutable for the rest of
// the session, so later calls are ignored and reported as false. Snapshot
// copies the book slice and the cover map so callers may keep and mutate
// what they receive.
//
// The zero Store is ready to use.
package state
