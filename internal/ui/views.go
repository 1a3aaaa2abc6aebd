package ui

import (
	"fmt"
	"math"
	"os"
	"regexp"
	"strings"

	osc52 "github.com/aymanbagabas/go-osc52/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"loglens/internal/detect"
	"loglens/internal/export"
	"loglens/internal/model"
)

// overlay draws the non-blank lines of top over base.
func overlay(base, top string) string {
	bLines := strings.Split(base, "\n")
	oLines := strings.Split(top, "\n")
	n := max(len(bLines), len(oLines))
	for len(bLines) < n {
		bLines = append(bLines, "")
	}
	for len(oLines) < n {
		oLines = append(oLines, "")
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		if strings.TrimSpace(oLines[i]) != "" {
			out[i] = oLines[i]
		} else {
			out[i] = bLines[i]
		}
	}
	return strings.Join(out, "\n")
}

// copyLimit caps the OSC 52 payload; many terminals drop larger sequences.
const copyLimit = 100 * 1024

// copyCmd puts text on the system clipboard through the terminal.
func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		seq := osc52.New(text).Limit(copyLimit)
		term := strings.ToLower(os.Getenv("TERM"))
		if os.Getenv("TMUX") != "" || strings.HasPrefix(term, "tmux") {
			seq = seq.Tmux()
		} else if strings.HasPrefix(term, "screen") {
			seq = seq.Screen()
		}
		_, err := seq.WriteTo(os.Stdout)
		return copiedMsg{chars: len([]rune(text)), err: err}
	}
}

func exportCmd(path string, f export.Format, lines []string) tea.Cmd {
	// copy: the engine may replace its results before the command runs
	lines = append([]string(nil), lines...)
	return func() tea.Msg {
		err := export.ToFile(path, f, lines)
		return exportedMsg{path: path, lines: len(lines), err: err}
	}
}

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// categoryStats renders one bar per category, scaled to the largest count.
func categoryStats(lines []string, styles Styles) string {
	if len(lines) == 0 {
		return "No lines"
	}
	counts := detect.Tally(lines)
	order := []model.Category{
		model.CategoryInfo, model.CategoryWarning, model.CategoryError,
		model.CategoryCritical, model.CategoryDebug, model.CategoryDefault,
	}
	maxc := 0
	for _, c := range order {
		maxc = max(maxc, counts[c])
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s lines by category:\n\n", humanize.Comma(int64(len(lines))))
	for _, c := range order {
		n := counts[c]
		width := 0
		if maxc > 0 {
			width = int(math.Round(20 * float64(n) / float64(maxc)))
		}
		if n > 0 && width == 0 {
			width = 1
		}
		bar := styles.Row[c].Render(strings.Repeat("█", width))
		pct := 100 * float64(n) / float64(len(lines))
		fmt.Fprintf(&b, "%-9s %s%s %s (%.1f%%)\n", c, bar, strings.Repeat(" ", 20-width), humanize.Comma(int64(n)), pct)
	}
	return b.String()
}
