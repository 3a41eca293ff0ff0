package tui

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles used by View.
type Styles struct {
	Cell            lipgloss.Style
	Selected        lipgloss.Style
	Anchor          lipgloss.Style
	Editing         lipgloss.Style
	Header          lipgloss.Style
	HeaderHighlight lipgloss.Style
	HeaderSelected  lipgloss.Style
	Status          lipgloss.Style
	StatusKey       lipgloss.Style
}

// DefaultStyles returns styles for a dark terminal background.
func DefaultStyles() Styles {
	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Background(lipgloss.Color("236"))
	return Styles{
		Cell:     lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color("24")),
		Anchor: lipgloss.NewStyle().
			Background(lipgloss.Color("33")).
			Foreground(lipgloss.Color("231")).
			Bold(true),
		Editing:         lipgloss.NewStyle().Background(lipgloss.Color("58")),
		Header:          header,
		HeaderHighlight: header.Foreground(lipgloss.Color("231")).Background(lipgloss.Color("24")),
		HeaderSelected:  header.Foreground(lipgloss.Color("231")).Background(lipgloss.Color("33")).Bold(true),
		Status:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")),
		StatusKey:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Background(lipgloss.Color("238")).Bold(true),
	}
}

// plainStyles renders without escape codes, for tests and dumb terminals.
func plainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{
		Cell: s, Selected: s, Anchor: s, Editing: s,
		Header: s, HeaderHighlight: s, HeaderSelected: s,
		Status: s, StatusKey: s,
	}
}
