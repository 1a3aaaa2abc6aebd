// Package engine turns raw log lines into the rows shown on screen. It owns
// the scroll offset, the category filter, the search query and the two-key
// prefix state, and changes them only through Dispatch.
package engine

import (
	"loglens/internal/filter"
	"loglens/internal/model"
	"loglens/internal/search"
)

// PrefixState tracks a two-key command such as "g g".
type PrefixState int

const (
	PrefixIdle PrefixState = iota
	PrefixPending
)

func (p PrefixState) String() string {
	if p == PrefixPending {
		return "pending"
	}
	return "idle"
}

// Options tune the pipeline. The zero value shows everything with the fuzzy
// scorer and the default threshold.
type Options struct {
	Where    *filter.Where
	Scorer   search.Scorer
	MinScore int
	Height   int
}

type Model struct {
	store *LineStore

	filter model.Filter
	mode   model.SearchMode
	query  Query
	pinned string

	offset  int
	height  int
	prefix  PrefixState
	running bool

	where    *filter.Where
	scorer   search.Scorer
	minScore int

	// derived, rebuilt by reconcile
	results []string
	view    []string
}

// New creates a model over src and performs the first load.
func New(src Source, opts Options) *Model {
	m := &Model{
		store:    NewLineStore(src),
		height:   max(opts.Height, 0),
		running:  true,
		where:    opts.Where,
		scorer:   opts.Scorer,
		minScore: opts.MinScore,
	}
	if m.scorer == nil {
		m.scorer = search.Fuzzy{}
	}
	m.store.Refresh()
	m.reconcile()
	return m
}

// View returns the derived rows: the cropped window, or every search result
// while a query is in effect. Oldest first, newest (or best match) last.
func (m *Model) View() []string { return m.view }

// Window returns the rows that fit the visible height. It equals View unless
// a search produced more results than there are rows: View keeps every
// result, while the list pane can only draw height rows and still has to
// scroll through the rest with the offset.
func (m *Model) Window() []string {
	if m.Searching() {
		return Crop(m.view, m.offset, m.height)
	}
	return m.view
}

// Selected returns the newest visible row.
func (m *Model) Selected() (string, bool) {
	w := m.Window()
	if len(w) == 0 {
		return "", false
	}
	return w[len(w)-1], true
}

// Results returns every line that survives filtering and search, in display
// order, before the window is applied.
func (m *Model) Results() []string { return m.results }

// Matches returns how many lines survive filtering and search, before the
// window is applied.
func (m *Model) Matches() int { return len(m.results) }

// Total returns the number of lines in the store.
func (m *Model) Total() int { return m.store.Len() }

// LoadErr returns the error of the last refresh, if any.
func (m *Model) LoadErr() error { return m.store.Err() }

func (m *Model) Mode() model.SearchMode { return m.mode }
func (m *Model) Filter() model.Filter   { return m.filter }
func (m *Model) Offset() int            { return m.offset }
func (m *Model) Height() int            { return m.height }
func (m *Model) Prefix() PrefixState    { return m.prefix }
func (m *Model) Pending() bool          { return m.prefix == PrefixPending }
func (m *Model) Running() bool          { return m.running }
func (m *Model) Where() *filter.Where   { return m.where }

// Query returns the text being edited and its cursor in characters.
func (m *Model) Query() (string, int) { return m.query.String(), m.query.Cursor() }

// Pinned returns the confirmed search that keeps filtering in normal mode.
func (m *Model) Pinned() string { return m.pinned }

// ActiveQuery returns the query the search stage runs with: the buffer while
// editing, otherwise the pinned search.
func (m *Model) ActiveQuery() string {
	if m.mode == model.SearchActive {
		return m.query.String()
	}
	return m.pinned
}

// Searching reports whether the search stage replaces the window crop.
func (m *Model) Searching() bool { return m.ActiveQuery() != "" }

// filtered runs the stages that keep file order.
func (m *Model) filtered(lines []string) []string {
	return filter.Apply(m.where.Apply(lines), m.filter)
}

// reconcile rebuilds the derived view from the current state and clamps the
// offset to it.
func (m *Model) reconcile() {
	m.results = search.Apply(m.filtered(m.store.Lines()), m.ActiveQuery(), m.scorer, m.minScore)
	m.offset = ClampOffset(len(m.results), m.offset, m.height)
	if m.Searching() {
		m.view = m.results
		return
	}
	m.view = Crop(m.results, m.offset, m.height)
}
