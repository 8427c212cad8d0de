package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles of the grid view. Styles are bound to a
// renderer so SSH sessions get their own color profile.
type Theme struct {
	renderer *lipgloss.Renderer

	// Status bar
	StatusLabel lipgloss.Style
	StatusValue lipgloss.Style
	StatusSep   lipgloss.Style
	Busy        lipgloss.Style

	// Error line
	Error lipgloss.Style

	// Block table panel
	TableBorder   lipgloss.Style
	TableHeader   lipgloss.Style
	TableSelected lipgloss.Style
}

// NewTheme returns the default theme for r.
func NewTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Theme{
		renderer: r,

		StatusLabel: r.NewStyle().Foreground(lipgloss.Color("245")),
		StatusValue: r.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		StatusSep:   r.NewStyle().Foreground(lipgloss.Color("240")),
		Busy:        r.NewStyle().Foreground(lipgloss.Color("226")),

		Error: r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),

		TableBorder: r.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		TableHeader: r.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true).
			Padding(0, 1),
		TableSelected: r.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")),
	}
}

// Renderer returns the renderer the styles are bound to.
func (t Theme) Renderer() *lipgloss.Renderer {
	return t.renderer
}

// Swatch returns a style painting the background in the given hex color.
func (t Theme) Swatch(hex string) lipgloss.Style {
	return t.renderer.NewStyle().Background(lipgloss.Color(hex))
}

// TableStyles returns bubbles table styles matching the theme.
func (t Theme) TableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = t.TableHeader
	s.Selected = t.TableSelected
	return s
}
