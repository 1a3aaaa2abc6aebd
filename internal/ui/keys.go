package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"loglens/internal/engine"
	"loglens/internal/model"
)

// commandsFor translates a key press into engine commands for the current
// mode. It returns nil for keys the engine does not handle.
func (m *Model) commandsFor(msg tea.KeyMsg) []engine.Command {
	if m.eng.Mode() == model.SearchActive {
		return m.searchCommands(msg)
	}
	if c := m.normalCommand(msg); c != nil {
		return []engine.Command{c}
	}
	if m.eng.Pending() {
		return []engine.Command{engine.ClearPrefix{}}
	}
	return nil
}

func (m *Model) normalCommand(msg tea.KeyMsg) engine.Command {
	km := m.keymap
	switch {
	case key.Matches(msg, km.Top):
		if m.eng.Pending() {
			return engine.JumpTop{}
		}
		return engine.ArmPrefix{}
	case key.Matches(msg, km.Bottom):
		return engine.JumpBottom{}
	case key.Matches(msg, km.Up):
		return engine.MoveUp{}
	case key.Matches(msg, km.Down):
		return engine.MoveDown{}
	case key.Matches(msg, km.PageUp):
		return engine.PageUp{}
	case key.Matches(msg, km.PageDown):
		return engine.PageDown{}
	case key.Matches(msg, km.Search):
		return engine.ToggleSearch{}
	case key.Matches(msg, km.Filter):
		return engine.ToggleFilterPicker{}
	case key.Matches(msg, km.Escape):
		if m.eng.Filter() == model.FilterSelect {
			return engine.ToggleFilterPicker{}
		}
		return engine.ClearSearch{}
	case key.Matches(msg, km.Refresh):
		return engine.RefreshLogs{}
	case key.Matches(msg, km.Quit):
		return engine.Quit{}
	}
	if f, ok := m.categoryFor(msg); ok {
		return engine.ApplyFilter{Filter: f}
	}
	return nil
}

func (m *Model) categoryFor(msg tea.KeyMsg) (model.Filter, bool) {
	km := m.keymap
	switch {
	case key.Matches(msg, km.Info):
		return model.FilterInfo, true
	case key.Matches(msg, km.Warning):
		return model.FilterWarning, true
	case key.Matches(msg, km.Error):
		return model.FilterError, true
	case key.Matches(msg, km.Critical):
		return model.FilterCritical, true
	case key.Matches(msg, km.Debug):
		return model.FilterDebug, true
	}
	return model.FilterNone, false
}

func (m *Model) searchCommands(msg tea.KeyMsg) []engine.Command {
	km := m.keymap
	switch {
	case key.Matches(msg, km.Confirm):
		return []engine.Command{engine.ConfirmSearch{}}
	case key.Matches(msg, km.Cancel):
		return []engine.Command{engine.CancelSearch{}}
	case key.Matches(msg, km.Backspace):
		return []engine.Command{engine.DeleteChar{}}
	case key.Matches(msg, km.Left):
		return []engine.Command{engine.CursorLeft{}}
	case key.Matches(msg, km.Right):
		return []engine.Command{engine.CursorRight{}}
	}
	if msg.Type == tea.KeySpace {
		return []engine.Command{engine.InsertChar{Char: ' '}}
	}
	if msg.Type != tea.KeyRunes || msg.Alt {
		return nil
	}
	out := make([]engine.Command, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		out = append(out, engine.InsertChar{Char: r})
	}
	return out
}
