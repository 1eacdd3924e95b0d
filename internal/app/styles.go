package app

import "github.com/charmbracelet/lipgloss"

type styles struct {
	MenuBar      lipgloss.Style
	MenuTitle    lipgloss.Style
	MenuTitleOn  lipgloss.Style
	MenuBox      lipgloss.Style
	MenuItem     lipgloss.Style
	MenuSelected lipgloss.Style
	Status       lipgloss.Style
	StatusError  lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		MenuBar:      lipgloss.NewStyle().Background(lipgloss.Color("236")),
		MenuTitle:    lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252")),
		MenuTitleOn:  lipgloss.NewStyle().Background(lipgloss.Color("252")).Foreground(lipgloss.Color("0")),
		MenuBox:      lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("244")),
		MenuItem:     lipgloss.NewStyle(),
		MenuSelected: lipgloss.NewStyle().Reverse(true),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		StatusError:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}
