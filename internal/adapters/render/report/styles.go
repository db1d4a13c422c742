package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	rule    lipgloss.Style
	sum     lipgloss.Style
	label   lipgloss.Style
	flowers lipgloss.Style
	count   lipgloss.Style
	total   lipgloss.Style
}

// newStyles binds every style to r, so colour support is decided by the
// writer r was created for.
func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		rule:    r.NewStyle().Foreground(lipgloss.Color("241")),
		sum:     r.NewStyle().Bold(true),
		label:   r.NewStyle().Foreground(lipgloss.Color("245")),
		flowers: r.NewStyle(),
		count:   r.NewStyle().Foreground(lipgloss.Color("252")),
		total:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
	}
}
