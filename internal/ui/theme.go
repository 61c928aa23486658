package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds the two alternating record colors.
type Theme struct {
	Even lipgloss.Color
	Odd  lipgloss.Color
}

// DefaultTheme renders even ordinals in ANSI magenta and odd ones in ANSI yellow.
func DefaultTheme() Theme {
	return Theme{
		Even: lipgloss.Color("5"),
		Odd:  lipgloss.Color("3"),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Even lipgloss.Style
	Odd  lipgloss.Style
}

// Styles returns Lipgloss styles for this theme bound to renderer r. Tabs are
// kept verbatim so the key and value columns stay tab separated.
func (t Theme) Styles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Styles{
		Even: r.NewStyle().
			Foreground(t.Even).
			TabWidth(lipgloss.NoTabConversion),
		Odd: r.NewStyle().
			Foreground(t.Odd).
			TabWidth(lipgloss.NoTabConversion),
	}
}

// ForOrdinal picks the style for a record by the parity of its ordinal.
func (s Styles) ForOrdinal(ordinal uint64) lipgloss.Style {
	if ordinal%2 == 0 {
		return s.Even
	}
	return s.Odd
}
