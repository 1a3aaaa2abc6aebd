package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"loglens/internal/model"
)

type Styles struct {
	Box        lipgloss.Style
	BoxActive  lipgloss.Style
	Row        map[model.Category]lipgloss.Style
	Selected   lipgloss.Style
	Status     lipgloss.Style
	Empty      lipgloss.Style
	Pinned     lipgloss.Style
	PopupBox   lipgloss.Style
	PopupTitle lipgloss.Style
	Help       help.Styles
}

func NewStyles(dark bool) Styles {
	s := Styles{}
	border := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	if dark {
		s.Box = border.BorderForeground(lipgloss.Color("240"))
		s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		s.Empty = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
		s.Pinned = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
		s.PopupBox = border.BorderForeground(lipgloss.Color("60")).Padding(0, 1)
		s.PopupTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	} else {
		s.Box = border.BorderForeground(lipgloss.Color("250"))
		s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Empty = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
		s.Pinned = lipgloss.NewStyle().Foreground(lipgloss.Color("27"))
		s.PopupBox = border.BorderForeground(lipgloss.Color("12")).Padding(0, 1)
		s.PopupTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27"))
	}
	s.BoxActive = border.BorderForeground(lipgloss.Color("6"))

	// ANSI colors so the palette follows the terminal theme
	s.Row = map[model.Category]lipgloss.Style{
		model.CategoryDefault:  lipgloss.NewStyle(),
		model.CategoryInfo:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		model.CategoryWarning:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		model.CategoryError:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		model.CategoryCritical: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("1")),
		model.CategoryDebug:    lipgloss.NewStyle().Faint(true),
	}
	s.Selected = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))

	s.Help = help.New().Styles
	if !dark {
		s.Help.ShortKey = s.Help.ShortKey.Foreground(lipgloss.Color("8"))
		s.Help.FullKey = s.Help.FullKey.Foreground(lipgloss.Color("8"))
	}
	return s
}
