package model

// Filter selects which lines the filter stage keeps. FilterSelect only marks
// that the category picker is open; it never filters anything.
type Filter int

const (
	FilterNone Filter = iota
	FilterInfo
	FilterWarning
	FilterError
	FilterCritical
	FilterDebug
	FilterSelect
)

var filterNames = map[Filter]string{
	FilterNone:     "none",
	FilterInfo:     "info",
	FilterWarning:  "warning",
	FilterError:    "error",
	FilterCritical: "critical",
	FilterDebug:    "debug",
	FilterSelect:   "select",
}

func (f Filter) String() string {
	if s, ok := filterNames[f]; ok {
		return s
	}
	return "unknown"
}

// Keyword returns the literal token a line must contain to pass the filter.
// ok is false for FilterNone and FilterSelect.
func (f Filter) Keyword() (kw string, ok bool) {
	switch f {
	case FilterInfo:
		return "INFO", true
	case FilterWarning:
		return "WARNING", true
	case FilterError:
		return "ERROR", true
	case FilterCritical:
		return "CRITICAL", true
	case FilterDebug:
		return "DEBUG", true
	}
	return "", false
}

// SearchMode tells whether keystrokes feed the query buffer.
type SearchMode int

const (
	SearchNone SearchMode = iota
	SearchActive
)

func (s SearchMode) String() string {
	if s == SearchActive {
		return "search"
	}
	return "none"
}

// Category is the display hint of a single line.
type Category int

const (
	CategoryDefault Category = iota
	CategoryInfo
	CategoryWarning
	CategoryError
	CategoryCritical
	CategoryDebug
)

func (c Category) String() string {
	switch c {
	case CategoryInfo:
		return "INFO"
	case CategoryWarning:
		return "WARNING"
	case CategoryError:
		return "ERROR"
	case CategoryCritical:
		return "CRITICAL"
	case CategoryDebug:
		return "DEBUG"
	}
	return "DEFAULT"
}

// Categories lists the concrete filters in picker order.
func Categories() []Filter {
	return []Filter{FilterInfo, FilterWarning, FilterError, FilterCritical, FilterDebug}
}
