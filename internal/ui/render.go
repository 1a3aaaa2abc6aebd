package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"loglens/internal/detect"
	"loglens/internal/model"
)

func (m *Model) View() string {
	if m.termWidth == 0 || m.termHeight == 0 {
		return "loading..."
	}
	v := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.renderList(), m.renderPreview()),
		m.renderSearch(),
		m.help.View(m.helpKeys()),
		m.renderStatus(),
	)
	if m.popup != popupNone {
		dimmed := lipgloss.NewStyle().Faint(true).Render(v)
		v = overlay(dimmed, m.renderPopup())
	}
	return v
}

func (m *Model) helpKeys() help.KeyMap {
	switch {
	case m.eng.Mode() == model.SearchActive:
		return searchHelp{m.keymap}
	case m.eng.Filter() == model.FilterSelect:
		return pickerHelp{m.keymap}
	}
	return normalHelp{m.keymap}
}

func (m *Model) renderList() string {
	inner := max(m.listWidth-2, 1)
	rows := m.eng.Window()
	box := m.styles.Box
	if m.eng.Filter() == model.FilterSelect {
		box = m.styles.BoxActive
	}

	var lines []string
	switch {
	case len(rows) == 0 && m.eng.LoadErr() != nil:
		lines = []string{m.styles.Empty.Render(truncate("cannot read "+m.cfg.FilePath+": "+m.eng.LoadErr().Error(), inner))}
	case len(rows) == 0:
		lines = []string{m.styles.Empty.Render("no lines")}
	default:
		lines = make([]string, len(rows))
		for i, r := range rows {
			text := runewidth.FillRight(truncate(cleanRow(r), inner), inner)
			if i == len(rows)-1 {
				lines[i] = m.styles.Selected.Render(text)
				continue
			}
			lines[i] = m.styles.Row[detect.Classify(r)].Render(text)
		}
	}
	return box.Width(inner).Height(m.eng.Height()).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderPreview() string {
	w := m.preview.Width
	sel, ok := m.eng.Selected()
	if !ok {
		m.preview.SetContent("")
	} else {
		text := cleanRow(sel)
		cat := detect.Classify(sel)
		body := wrap.String(wordwrap.String(text, w), w)
		meta := m.styles.Status.Render(fmt.Sprintf("%s · %d chars", cat, runewidth.StringWidth(text)))
		m.preview.SetContent(body + "\n\n" + meta)
	}
	return m.styles.Box.Width(w).Height(m.preview.Height).Render(m.preview.View())
}

func (m *Model) renderSearch() string {
	box := m.styles.Box
	var content string
	switch {
	case m.eng.Mode() == model.SearchActive:
		box = m.styles.BoxActive
		content = m.search.View()
	case m.eng.Pinned() != "":
		content = m.styles.Pinned.Render("search: " + m.eng.Pinned() + "  (esc clears)")
	default:
		content = m.search.View()
	}
	return box.Width(max(m.termWidth-2, 1)).Render(content)
}

func (m *Model) renderStatus() string {
	size := "unreadable"
	if m.fileSize >= 0 {
		size = humanize.Bytes(uint64(m.fileSize))
	}
	parts := []string{
		m.cfg.FilePath,
		size,
		fmt.Sprintf("%s/%s lines", humanize.Comma(int64(m.eng.Matches())), humanize.Comma(int64(m.eng.Total()))),
		"filter: " + m.eng.Filter().String(),
	}
	if w := m.eng.Where().String(); w != "" {
		parts = append(parts, "where: "+w)
	}
	if p := m.eng.Pinned(); p != "" {
		parts = append(parts, "search: "+p)
	}
	if m.eng.Offset() > 0 {
		parts = append(parts, fmt.Sprintf("+%d", m.eng.Offset()))
	}
	follow := "off"
	if m.follow {
		follow = "on"
	}
	parts = append(parts, "follow: "+follow)
	if m.lastMsg != "" {
		parts = append(parts, m.lastMsg)
	}
	return m.styles.Status.Render(truncate(strings.Join(parts, " · "), max(m.termWidth, 1)))
}

func (m *Model) renderPopup() string {
	title := m.styles.PopupTitle.Render(m.popupTitle)
	hint := m.styles.Status.Render("esc to close · ↑/↓ to scroll")
	box := m.styles.PopupBox.Render(lipgloss.JoinVertical(lipgloss.Left, title, m.popupVP.View(), hint))
	return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, box)
}

// cleanRow makes a raw line safe to draw in a single cell row.
func cleanRow(s string) string {
	return strings.ReplaceAll(stripANSI(s), "\t", "    ")
}

func truncate(s string, w int) string {
	return runewidth.Truncate(s, w, "…")
}
