package render

import "github.com/charmbracelet/lipgloss"

// Adaptive colors matching the CLI palette.
var (
	colorDim   = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed   = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorCyan  = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Styles colours the parts of a dashboard row.
type Styles struct {
	Header   lipgloss.Style
	Class    lipgloss.Style
	Finished lipgloss.Style
	Errored  lipgloss.Style
}

// DefaultStyles is the coloured palette.
func DefaultStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Foreground(colorDim),
		Class:    lipgloss.NewStyle().Foreground(colorCyan),
		Finished: lipgloss.NewStyle().Foreground(colorGreen),
		Errored:  lipgloss.NewStyle().Bold(true).Foreground(colorRed),
	}
}

// PlainStyles renders every part unchanged.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{Header: plain, Class: plain, Finished: plain, Errored: plain}
}
