package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"loglens/internal/engine"
	"loglens/internal/export"
	"loglens/internal/model"
	"loglens/internal/util"
	"loglens/internal/util/logx"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth, m.termHeight = msg.Width, msg.Height
		m.layout()
		return m, nil

	case tickMsg:
		m.refresh()
		return m, tick(m.cfg.RefreshInterval)

	case fileChangedMsg:
		if msg.ch != m.watch {
			return m, nil
		}
		m.refresh()
		return m, waitForChange(m.watch)

	case watchClosedMsg:
		if msg.ch == m.watch && m.follow {
			logx.Warnf("follow: watcher stopped")
			m.lastMsg = "follow stopped"
			m.stopFollow()
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			logx.Warnf("copy: %v", msg.err)
			m.lastMsg = "copy failed: " + msg.err.Error()
		} else {
			logx.Infof("copy: %d characters", msg.chars)
			m.lastMsg = "copied selected line"
		}
		return m, nil

	case exportedMsg:
		if msg.err != nil {
			logx.Warnf("export: %v", msg.err)
			m.lastMsg = "export failed: " + msg.err.Error()
		} else {
			logx.Infof("export: wrote %d lines to %s", msg.lines, msg.path)
			m.lastMsg = fmt.Sprintf("exported %d lines to %s", msg.lines, msg.path)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.keymap
	if m.popup != popupNone {
		switch {
		case key.Matches(msg, km.AppLogs, km.Stats, km.Escape), msg.String() == "q":
			m.popup = popupNone
			return m, nil
		case msg.String() == "ctrl+c":
			return m.dispatch(engine.Quit{})
		}
		var cmd tea.Cmd
		m.popupVP, cmd = m.popupVP.Update(msg)
		return m, cmd
	}

	// keys that only concern the screen, not the engine
	if m.eng.Mode() == model.SearchNone && key.Matches(msg, km.Help, km.AppLogs, km.Stats, km.Copy, km.Export, km.Follow) {
		if m.eng.Pending() {
			engine.Dispatch(m.eng, engine.ClearPrefix{})
		}
		switch {
		case key.Matches(msg, km.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.layout()
			return m, nil
		case key.Matches(msg, km.AppLogs):
			m.openLogs()
			return m, nil
		case key.Matches(msg, km.Stats):
			m.openPopup(popupStats, "Categories", categoryStats(m.eng.Results(), m.styles))
			return m, nil
		case key.Matches(msg, km.Copy):
			line, ok := m.eng.Selected()
			if !ok {
				m.lastMsg = "nothing to copy"
				return m, nil
			}
			return m, copyCmd(m.outgoing([]string{stripANSI(line)})[0])
		case key.Matches(msg, km.Export):
			lines := m.outgoing(m.eng.Results())
			return m, exportCmd(export.FileName(m.exportDir, m.cfg.ExportFormat, time.Now()), m.cfg.ExportFormat, lines)
		case key.Matches(msg, km.Follow):
			if m.follow {
				m.stopFollow()
				m.lastMsg = "follow off"
				return m, nil
			}
			m.startFollow()
			if m.follow {
				m.lastMsg = "follow on"
			}
			return m, waitForChange(m.watch)
		}
	}

	cmds := m.commandsFor(msg)
	if len(cmds) == 0 {
		return m, nil
	}
	return m.dispatch(cmds...)
}

// dispatch feeds cmds to the engine and syncs the widgets that mirror it.
func (m *Model) dispatch(cmds ...engine.Command) (tea.Model, tea.Cmd) {
	mode := m.eng.Mode()
	for _, c := range cmds {
		engine.Dispatch(m.eng, c)
	}
	if mode != m.eng.Mode() {
		// the search box and help bar change height with the mode
		m.layout()
	}
	m.syncSearch()
	if !m.eng.Running() {
		return m, tea.Quit
	}
	return m, nil
}

// outgoing prepares lines that leave the viewer through copy or export.
func (m *Model) outgoing(lines []string) []string {
	if m.cfg.Redact {
		return util.RedactAll(lines)
	}
	return lines
}

func (m *Model) refresh() {
	engine.Dispatch(m.eng, engine.RefreshLogs{})
	m.statFile()
}

// syncSearch copies the engine's query buffer into the text input.
func (m *Model) syncSearch() {
	if m.eng.Mode() == model.SearchActive {
		q, cur := m.eng.Query()
		m.search.SetValue(q)
		m.search.SetCursor(cur)
		m.search.Focus()
		return
	}
	m.search.SetValue("")
	m.search.Blur()
}

func (m *Model) openLogs() {
	lines := logx.Lines()
	if len(lines) == 0 {
		lines = []string{"(no application log entries)"}
	}
	m.openPopup(popupLogs, "Application log", strings.Join(lines, "\n"))
	m.popupVP.GotoBottom()
}

func (m *Model) openPopup(kind popupKind, title, body string) {
	m.popup = kind
	m.popupTitle = title
	m.popupVP.SetContent(body)
	m.popupVP.GotoTop()
}

const (
	searchBoxHeight = 3
	statusHeight    = 1
	borderRows      = 2
	minListRows     = 1
)

// layout sizes the panes for the terminal and tells the engine how many rows
// the log list has.
func (m *Model) layout() {
	w, h := m.termWidth, m.termHeight
	m.help.Width = w
	helpRows := strings.Count(m.help.View(m.helpKeys()), "\n") + 1
	rows := max(h-searchBoxHeight-helpRows-statusHeight-borderRows, minListRows)

	m.listWidth = w * 60 / 100
	previewWidth := w - m.listWidth
	m.preview.Width = max(previewWidth-2, 0)
	m.preview.Height = rows
	m.search.Width = max(w-4-len(m.search.Prompt), 1)

	m.popupVP.Width = max(w*4/5-4, 10)
	m.popupVP.Height = max(h*3/4-4, 3)

	engine.Dispatch(m.eng, engine.Resize{Height: rows})
}
