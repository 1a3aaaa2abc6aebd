// Package search ranks lines by fuzzy relevance to a query.
package search

import (
	"sort"

	"github.com/sahilm/fuzzy"
)

// Scorer rates how well candidate matches query. ok is false when candidate
// does not match at all.
type Scorer interface {
	Score(query, candidate string) (score int, ok bool)
}

// DefaultMinScore keeps subsequence matches that are not penalised overall,
// which drops scattered matches deep inside a line.
const DefaultMinScore = 0

// Fuzzy scores with sahilm/fuzzy: a case-insensitive subsequence match that
// rewards matches after separators, adjacent runs and camel-case humps.
type Fuzzy struct{}

// Score drops the library's one-point-per-unmatched-byte penalty so that a
// long log line is not ranked below a short one for the same match quality.
func (Fuzzy) Score(query, candidate string) (int, bool) {
	if query == "" {
		return 0, true
	}
	ms := fuzzy.Find(query, []string{candidate})
	if len(ms) == 0 {
		return 0, false
	}
	m := ms[0]
	return m.Score + len(candidate) - len(m.MatchedIndexes), true
}

type ranked struct {
	line  string
	score int
}

// Apply returns the lines that match query with a score of at least minScore,
// ordered worst first and best last. Equal scores keep file order among
// themselves before the reversal. An empty query returns lines unchanged.
func Apply(lines []string, query string, s Scorer, minScore int) []string {
	if query == "" {
		return lines
	}
	if s == nil {
		s = Fuzzy{}
	}
	hits := make([]ranked, 0, len(lines))
	for _, l := range lines {
		score, ok := s.Score(query, l)
		if !ok || score < minScore {
			continue
		}
		hits = append(hits, ranked{line: l, score: score})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	out := make([]string, len(hits))
	for i, h := range hits {
		out[len(hits)-1-i] = h.line
	}
	return out
}
