package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of text styles views render with.
type Palette struct {
	Title   lipgloss.Style
	Section lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
	Help    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Table   TableStyles
}

// DefaultPalette returns the green phosphor palette.
func DefaultPalette() Palette {
	return Palette{
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66")).Bold(true),
		Section: lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")),
		Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#006600")),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAA00")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4444")),
		Table:   DefaultTableStyles(),
	}
}

// Field renders "label value" with the label padded to width.
func (p Palette) Field(label, value string, width int) string {
	return p.Label.Render(PadRight(label, width)) + " " + p.Value.Render(value)
}
