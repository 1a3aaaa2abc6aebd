package engine

import "loglens/internal/model"

// Command is one input to the dispatcher. The set is closed: only the types in
// this file implement it.
type Command interface {
	command()
}

type (
	// MoveUp scrolls one line toward older lines.
	MoveUp struct{}
	// MoveDown scrolls one line toward the newest line.
	MoveDown struct{}
	PageUp   struct{}
	PageDown struct{}
	// ScrollBy changes the offset by Delta; positive scrolls toward older lines.
	ScrollBy struct{ Delta int }
	// JumpTop shows the oldest window. It completes the g prefix.
	JumpTop struct{}
	// JumpBottom pins the view to the newest line.
	JumpBottom struct{}

	// ArmPrefix records the first key of a two-key sequence.
	ArmPrefix struct{}
	// ClearPrefix drops a pending prefix and does nothing else.
	ClearPrefix struct{}

	ToggleSearch struct{}
	EnterSearch  struct{}
	// ConfirmSearch leaves search mode and keeps the query as a pinned search.
	ConfirmSearch struct{}
	// CancelSearch leaves search mode and discards the query.
	CancelSearch struct{}
	// ClearSearch drops a pinned search.
	ClearSearch struct{}
	InsertChar   struct{ Char rune }
	DeleteChar   struct{}
	CursorLeft   struct{}
	CursorRight  struct{}

	ToggleFilterPicker struct{}
	ApplyFilter        struct{ Filter model.Filter }

	// RefreshLogs reloads the line store.
	RefreshLogs struct{}
	// Resize sets the number of rows available for log lines.
	Resize struct{ Height int }
	Quit   struct{}
)

func (MoveUp) command()             {}
func (MoveDown) command()           {}
func (PageUp) command()             {}
func (PageDown) command()           {}
func (ScrollBy) command()           {}
func (JumpTop) command()            {}
func (JumpBottom) command()         {}
func (ArmPrefix) command()          {}
func (ClearPrefix) command()        {}
func (ToggleSearch) command()       {}
func (EnterSearch) command()        {}
func (ConfirmSearch) command()      {}
func (CancelSearch) command()       {}
func (ClearSearch) command()        {}
func (InsertChar) command()         {}
func (DeleteChar) command()         {}
func (CursorLeft) command()         {}
func (CursorRight) command()        {}
func (ToggleFilterPicker) command() {}
func (ApplyFilter) command()        {}
func (RefreshLogs) command()        {}
func (Resize) command()             {}
func (Quit) command()               {}

// allowedWhileSearching lists what the dispatcher accepts in search mode.
// Everything else is dropped.
func allowedWhileSearching(cmd Command) bool {
	switch cmd.(type) {
	case InsertChar, DeleteChar, CursorLeft, CursorRight,
		ToggleSearch, ConfirmSearch, CancelSearch,
		RefreshLogs, Resize, Quit:
		return true
	}
	return false
}

// textEdit reports whether cmd edits the query buffer.
func textEdit(cmd Command) bool {
	switch cmd.(type) {
	case InsertChar, DeleteChar, CursorLeft, CursorRight, ConfirmSearch:
		return true
	}
	return false
}

// fromInput reports whether cmd stands for a key press. Ticks and resizes do
// not disturb a pending prefix.
func fromInput(cmd Command) bool {
	switch cmd.(type) {
	case RefreshLogs, Resize:
		return false
	}
	return true
}
