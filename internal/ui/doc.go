// Package ui provides the Bubble Tea terminal interface for shelf.
//
// # Layout
//
//	Shelf  24 books                        header
//	/ Search by title...                   search field
//	  Bee  by A                            results (only while typing)
//	┌─────────────────────────────────┐
//	│ All Books      View Reading List │    page viewport
//	│ [card] [card] [card]            │
//	│ Reading List (1)                │
//	│ [card]                          │
//	└─────────────────────────────────┘
//	Bee added to reading list  x        notice
//	/ search · tab next area · ...      footer
//
// # Files
//
//   - app.go: Model, Update/View, focus handling, and Run
//   - search.go: search field state machine and the results dropdown
//   - grid.go: responsive card grid with a keyboard cursor
//   - card.go: a single book card
//   - notice.go: transient add/remove notices
//   - scroll.go: stepped smooth scrolling of the page
//   - logs.go: in-app view of the log file
//   - help.go, keys.go, theme.go, layout.go, strings.go: support
//
// # State
//
// The Model owns the search term and the reading list. Both are only touched
// on the Bubble Tea update goroutine. The catalog arrives through
// state.Store, polled on a short tick until the fetch and cover resolution
// are done.
//
// # Search
//
// The search field has three states: idle (no query), typing (results
// open), and dismissed (results closed, query kept). The book grid follows
// the query in every state. Mouse reporting is enabled only while the
// results are open so a press outside them can close the list.
//
// # Width Classes
//
// The grid shows 1, 2, 3, or 4 columns for terminals narrower than 60, 100,
// 140 cells, or wider.
package ui
