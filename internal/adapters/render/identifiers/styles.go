package identifiers

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	provider lipgloss.Style
	typeTag  lipgloss.Style
	label    lipgloss.Style
	empty    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		provider: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		typeTag:  lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		label:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		empty:    lipgloss.NewStyle().Faint(true),
	}
}
