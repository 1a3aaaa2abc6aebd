package detect

import (
	"strings"

	"loglens/internal/model"
)

// precedence follows the order rows have always been colored in: a line
// carrying both INFO and ERROR renders as INFO.
var precedence = []struct {
	kw  string
	cat model.Category
}{
	{"INFO", model.CategoryInfo},
	{"WARNING", model.CategoryWarning},
	{"ERROR", model.CategoryError},
	{"CRITICAL", model.CategoryCritical},
	{"DEBUG", model.CategoryDebug},
}

// Classify returns the display category of a raw line.
func Classify(line string) model.Category {
	for _, p := range precedence {
		if strings.Contains(line, p.kw) {
			return p.cat
		}
	}
	return model.CategoryDefault
}

// Tally counts lines per category. Lines matching several keywords count once,
// under the category Classify picks.
func Tally(lines []string) map[model.Category]int {
	out := make(map[model.Category]int, len(precedence)+1)
	for _, l := range lines {
		out[Classify(l)]++
	}
	return out
}
