package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"loglens/internal/config"
	"loglens/internal/engine"
)

type Model struct {
	ctx context.Context
	cfg *config.Config
	eng *engine.Model

	keymap keyMap
	styles Styles
	help   help.Model
	// search mirrors the engine's query buffer; it is never edited directly
	search  textinput.Model
	preview viewport.Model
	popupVP viewport.Model

	termWidth  int
	termHeight int
	listWidth  int

	popup      popupKind
	popupTitle string

	// follow mode
	follow      bool
	watch       <-chan struct{}
	watchCancel context.CancelFunc

	exportDir string
	fileSize  int64 // -1 when the file cannot be stat'ed
	lastMsg   string
}

type popupKind int

const (
	popupNone popupKind = iota
	popupLogs
	popupStats
)

type tickMsg time.Time

// fileChangedMsg reports that the watcher on ch saw appended lines.
type fileChangedMsg struct{ ch <-chan struct{} }

// watchClosedMsg reports that the watcher on ch stopped.
type watchClosedMsg struct{ ch <-chan struct{} }

type copiedMsg struct {
	chars int
	err   error
}

type exportedMsg struct {
	path  string
	lines int
	err   error
}
