package live

import "charm.land/lipgloss/v2"

// Styles decorates the parts of the live field view.
type Styles struct {
	Label    lipgloss.Style
	Required lipgloss.Style
	Error    lipgloss.Style
	Helper   lipgloss.Style
	Disabled lipgloss.Style
}

// DefaultStyles returns the built-in palette.
func DefaultStyles() Styles {
	return Styles{
		Label:    lipgloss.NewStyle().Bold(true),
		Required: lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")),
		Helper:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		Disabled: lipgloss.NewStyle().Faint(true),
	}
}
