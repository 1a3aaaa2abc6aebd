package engine

import (
	"loglens/internal/model"
	"loglens/internal/util/logx"
)

// Dispatch applies cmd and every follow-up command it produces, then rebuilds
// the derived view once.
func Dispatch(m *Model, cmd Command) {
	for cmd != nil {
		cmd = Update(m, cmd)
	}
	m.reconcile()
}

// Update applies a single command and returns its follow-up, or nil. It does
// not rebuild the derived view; Dispatch does that after the last follow-up.
func Update(m *Model, cmd Command) Command {
	if m.mode == model.SearchActive && !allowedWhileSearching(cmd) {
		return nil
	}
	if m.mode == model.SearchNone && textEdit(cmd) {
		return nil
	}
	if _, arm := cmd.(ArmPrefix); !arm && fromInput(cmd) {
		m.prefix = PrefixIdle
	}

	switch c := cmd.(type) {
	case MoveUp:
		return ScrollBy{Delta: 1}
	case MoveDown:
		return ScrollBy{Delta: -1}
	case PageUp:
		return ScrollBy{Delta: m.height}
	case PageDown:
		return ScrollBy{Delta: -m.height}
	case ScrollBy:
		m.offset = addOffset(m.offset, c.Delta)
	case JumpTop:
		// reconcile clamps this to the oldest full window
		m.offset = maxInt
	case JumpBottom:
		m.offset = 0

	case ArmPrefix:
		m.prefix = PrefixPending
	case ClearPrefix:
		// the prefix was reset above

	case ToggleSearch:
		if m.mode == model.SearchActive {
			return CancelSearch{}
		}
		return EnterSearch{}
	case EnterSearch:
		m.mode = model.SearchActive
		m.query.Clear()
		m.pinned = ""
	case ConfirmSearch:
		m.pinned = m.query.String()
		m.mode = model.SearchNone
		m.query.Clear()
		if m.pinned != "" {
			logx.Infof("search: pinned %q", m.pinned)
		}
	case CancelSearch:
		m.mode = model.SearchNone
		m.query.Clear()
		logx.Debugf("search: cancelled")
	case ClearSearch:
		if m.pinned != "" {
			logx.Infof("search: cleared %q", m.pinned)
		}
		m.pinned = ""
	case InsertChar:
		m.query.Insert(c.Char)
	case DeleteChar:
		m.query.Delete()
	case CursorLeft:
		m.query.Left()
	case CursorRight:
		m.query.Right()

	case ToggleFilterPicker:
		if m.filter == model.FilterSelect {
			return ApplyFilter{Filter: model.FilterNone}
		}
		return ApplyFilter{Filter: model.FilterSelect}
	case ApplyFilter:
		applyFilter(m, c.Filter)

	case RefreshLogs:
		refresh(m)
	case Resize:
		m.height = max(c.Height, 0)
	case Quit:
		m.running = false
	}
	return nil
}

func applyFilter(m *Model, f model.Filter) {
	if _, concrete := f.Keyword(); concrete {
		// categories are picked from the open picker only
		if m.filter != model.FilterSelect {
			return
		}
		m.offset = 0
	}
	if f != m.filter {
		logx.Infof("filter: %s -> %s", m.filter, f)
	}
	m.filter = f
}

// refresh reloads the store. When the user has scrolled away from the newest
// line, the offset grows by the number of appended lines that land below the
// selected row so the same rows stay on screen.
func refresh(m *Model) {
	appended := m.store.Refresh()
	if appended == 0 || m.offset == 0 {
		return
	}
	lines := m.store.Lines()
	fresh := m.filtered(lines[len(lines)-appended:])
	if m.Searching() {
		fresh = m.rankedBelowSelection(fresh)
	}
	grown := len(fresh)
	if grown > 0 {
		m.offset = addOffset(m.offset, grown)
		logx.Debugf("store: %d new lines, offset -> %d", grown, m.offset)
	}
}

// rankedBelowSelection keeps the lines the active search would place below
// the selected result. m.results still holds the ranking from before the
// refresh. Equal scores put newer lines above older ones, so only a strictly
// better score pushes the selection up.
func (m *Model) rankedBelowSelection(lines []string) []string {
	i := len(m.results) - 1 - m.offset
	if i < 0 || i >= len(m.results) {
		return nil
	}
	q := m.ActiveQuery()
	floor, _ := m.scorer.Score(q, m.results[i])
	var out []string
	for _, l := range lines {
		if score, ok := m.scorer.Score(q, l); ok && score >= m.minScore && score > floor {
			out = append(out, l)
		}
	}
	return out
}
