package container

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
	cell     lipgloss.Style
	storage  lipgloss.Style
	button   lipgloss.Style
	filler   lipgloss.Style
	special  lipgloss.Style
	legend   lipgloss.Style
	groupKey lipgloss.Style
	notice   lipgloss.Style
	rejected lipgloss.Style
}

const cellWidth = 7

func newStyles() styles {
	cell := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)

	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
		cell:     cell,
		storage:  cell.Foreground(lipgloss.Color("252")),
		button:   cell.Bold(true).Foreground(lipgloss.Color("39")),
		filler:   cell.Foreground(lipgloss.Color("238")),
		special:  cell.Foreground(lipgloss.Color("213")),
		legend:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		groupKey: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		notice:   lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		rejected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}
