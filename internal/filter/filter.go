package filter

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Knetic/govaluate"

	"loglens/internal/detect"
	"loglens/internal/model"
)

// Apply keeps the lines that contain the keyword of f, in order. FilterNone and
// FilterSelect return lines unchanged.
func Apply(lines []string, f model.Filter) []string {
	kw, ok := f.Keyword()
	if !ok {
		return lines
	}
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.Contains(l, kw) {
			out = append(out, l)
		}
	}
	return out
}

// Where is a compiled boolean expression evaluated per line. The expression
// sees three variables: line (the raw text), category (INFO, WARNING, ERROR,
// CRITICAL, DEBUG or DEFAULT) and length (characters in line).
type Where struct {
	src  string
	expr *govaluate.EvaluableExpression
}

// NewWhere compiles src. An empty or blank src yields a nil *Where, which
// matches every line.
func NewWhere(src string) (*Where, error) {
	if strings.TrimSpace(src) == "" {
		return nil, nil
	}
	expr, err := govaluate.NewEvaluableExpression(src)
	if err != nil {
		return nil, fmt.Errorf("compile where %q: %w", src, err)
	}
	return &Where{src: src, expr: expr}, nil
}

func (w *Where) String() string {
	if w == nil {
		return ""
	}
	return w.src
}

// Match reports whether line satisfies the expression. Evaluation errors and
// non-boolean results count as no match.
func (w *Where) Match(line string) bool {
	if w == nil {
		return true
	}
	params := map[string]any{
		"line":     line,
		"category": detect.Classify(line).String(),
		"length":   float64(utf8.RuneCountInString(line)),
	}
	result, err := w.expr.Evaluate(params)
	if err != nil {
		return false
	}
	b, ok := result.(bool)
	return ok && b
}

// Apply returns the matching lines in order.
func (w *Where) Apply(lines []string) []string {
	if w == nil {
		return lines
	}
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if w.Match(l) {
			out = append(out, l)
		}
	}
	return out
}
