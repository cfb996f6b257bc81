package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	ForceQuit  key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Logs       key.Binding

	// Page
	FocusSearch   key.Binding
	ReadingList   key.Binding
	Top           key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	HalfPageUp    key.Binding
	HalfPageDown  key.Binding
	DismissNotice key.Binding

	// Grid
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Action      key.Binding
	RemoveEntry key.Binding

	// Search
	Confirm     key.Binding
	Dismiss     key.Binding
	ClearSearch key.Binding
	PrevMatch   key.Binding
	NextMatch   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "Quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next area"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous area"),
		),
		Logs: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Show log"),
		),

		FocusSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search titles"),
		),
		ReadingList: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "View reading list"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Scroll to top"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Half page down"),
		),
		DismissNotice: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Close notice"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "Move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "Move right"),
		),
		Action: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "Add / Remove"),
		),
		RemoveEntry: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "Remove only this copy"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Pick / close results"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close results"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "Clear search"),
		),
		PrevMatch: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("up", "Previous result"),
		),
		NextMatch: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("down", "Next result"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusSearch, k.Tab, k.Action, k.Top, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Search
		{k.FocusSearch, k.NextMatch, k.PrevMatch, k.Confirm, k.Dismiss, k.ClearSearch},
		// Books
		{k.Up, k.Down, k.Left, k.Right, k.Action, k.RemoveEntry, k.DismissNotice},
		// Page
		{k.Tab, k.ShiftTab, k.ReadingList, k.Top, k.HalfPageDown, k.HalfPageUp},
		// General
		{k.CycleTheme, k.Logs, k.Help, k.Quit},
	}
}
