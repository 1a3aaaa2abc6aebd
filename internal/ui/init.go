package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"loglens/internal/config"
	"loglens/internal/engine"
	"loglens/internal/filter"
	"loglens/internal/search"
	"loglens/internal/util/logx"
)

func initialModel(ctx context.Context, cfg *config.Config) (*Model, error) {
	where, err := filter.NewWhere(cfg.Where)
	if err != nil {
		return nil, err
	}
	m := &Model{
		ctx:    ctx,
		cfg:    cfg,
		keymap: defaultKeyMap(),
		styles: NewStyles(cfg.Theme == config.ThemeDark),
		help:   help.New(),
		search: textinput.New(),
		// sized on the first WindowSizeMsg
		preview:   viewport.New(0, 0),
		popupVP:   viewport.New(0, 0),
		exportDir: ".",
	}
	m.eng = engine.New(engine.FileSource{Path: cfg.FilePath, MaxLineBytes: cfg.MaxLineBytes}, engine.Options{
		Where:    where,
		Scorer:   search.Fuzzy{},
		MinScore: cfg.MinScore,
	})
	m.help.Styles = m.styles.Help
	m.search.Prompt = "> "
	m.search.Placeholder = "press s or / to search"
	m.search.Cursor.SetMode(cursor.CursorStatic)
	m.statFile()
	if cfg.Follow {
		m.startFollow()
	}
	logx.Infof("ui: loaded %d lines from %s", m.eng.Total(), cfg.FilePath)
	return m, nil
}

// Run blocks until the user quits or ctx is cancelled. Bubble Tea restores
// the terminal on every exit path, panics included.
func Run(ctx context.Context, cfg *config.Config) error {
	m, err := initialModel(ctx, cfg)
	if err != nil {
		return err
	}
	defer m.stopFollow()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		logx.Infof("ui: interrupted")
		return nil
	}
	return err
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(tick(m.cfg.RefreshInterval), waitForChange(m.watch))
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}
