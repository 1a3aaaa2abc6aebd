package ui

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"loglens/internal/ingest"
	"loglens/internal/util/logx"
)

// startFollow starts the tail watcher. It only signals; the model still
// re-reads the file itself on every signal.
func (m *Model) startFollow() {
	m.stopFollow()
	ctx, cancel := context.WithCancel(m.ctx)
	ch, err := ingest.Watch(ctx, m.cfg.FilePath)
	if err != nil {
		cancel()
		logx.Warnf("follow: %v", err)
		m.lastMsg = "follow unavailable: " + err.Error()
		return
	}
	m.follow = true
	m.watch = ch
	m.watchCancel = cancel
	logx.Infof("follow: watching %s", m.cfg.FilePath)
}

func (m *Model) stopFollow() {
	if m.watchCancel != nil {
		m.watchCancel()
		logx.Infof("follow: stopped")
	}
	m.follow = false
	m.watch = nil
	m.watchCancel = nil
}

// waitForChange blocks on the next watcher signal. A nil channel yields no
// command.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return watchClosedMsg{ch: ch}
		}
		return fileChangedMsg{ch: ch}
	}
}

func (m *Model) statFile() {
	fi, err := os.Stat(m.cfg.FilePath)
	if err != nil {
		m.fileSize = -1
		return
	}
	m.fileSize = fi.Size()
}
