package ui

import "github.com/charmbracelet/lipgloss"

// Styles contains the style definitions for every screen
type Styles struct {
	Title       lipgloss.Style
	Header      lipgloss.Style
	Cell        lipgloss.Style
	Selected    lipgloss.Style
	Dim         lipgloss.Style
	Hint        lipgloss.Style
	Input       lipgloss.Style
	Error       lipgloss.Style
	Success     lipgloss.Style
	Info        lipgloss.Style
	ConfirmBox  lipgloss.Style
	StatusLine  lipgloss.Style
	FocusedText lipgloss.Style
}

func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Cell:     lipgloss.NewStyle().PaddingRight(2),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color("237")).Bold(true),
		Dim:      lipgloss.NewStyle().Faint(true),
		Hint:     lipgloss.NewStyle().Faint(true).MarginTop(1),
		Input:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		ConfirmBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(0, 2).
			MarginTop(1),
		StatusLine:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
		FocusedText: lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
	}
}
