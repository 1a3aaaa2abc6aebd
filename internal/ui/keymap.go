package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding. The help bar shows a different subset per mode
// through normalHelp, pickerHelp and searchHelp.
type keyMap struct {
	Quit    key.Binding
	Help    key.Binding
	Refresh key.Binding
	Follow  key.Binding
	Copy    key.Binding
	Export  key.Binding
	AppLogs key.Binding
	Stats   key.Binding
	Escape  key.Binding

	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding

	Search key.Binding
	Filter key.Binding

	Info     key.Binding
	Warning  key.Binding
	Error    key.Binding
	Critical key.Binding
	Debug    key.Binding

	// search mode
	Confirm   key.Binding
	Cancel    key.Binding
	Backspace key.Binding
	Left      key.Binding
	Right     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Follow:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle follow")),
		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy line")),
		Export:  key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "export matches")),
		AppLogs: key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "app log")),
		Stats:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "category stats")),
		Escape:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),

		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "older")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "newer")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Top:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g g", "oldest")),
		Bottom:   key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "newest")),

		Search: key.NewBinding(key.WithKeys("s", "/"), key.WithHelp("s or /", "search")),
		Filter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),

		Info:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "info")),
		Warning:  key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "warning")),
		Error:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "error")),
		Critical: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "critical")),
		Debug:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "debug")),

		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel:    key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc/ctrl+c", "exit search")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "cursor left")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "cursor right")),
	}
}

type normalHelp struct{ keyMap }

func (k normalHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Filter, k.Search, k.Help}
}

func (k normalHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Top, k.Bottom, k.Search, k.Escape},
		{k.Filter, k.Refresh, k.Follow, k.Copy, k.Export},
		{k.AppLogs, k.Stats, k.Help, k.Quit},
	}
}

type pickerHelp struct{ keyMap }

func (k pickerHelp) ShortHelp() []key.Binding {
	esc := k.Escape
	esc.SetHelp("esc/f", "close")
	return []key.Binding{k.Info, k.Warning, k.Error, k.Critical, k.Debug, esc}
}

func (k pickerHelp) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type searchHelp struct{ keyMap }

func (k searchHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Cancel, k.Confirm}
}

func (k searchHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Cancel, k.Confirm}, {k.Backspace, k.Left, k.Right}}
}
