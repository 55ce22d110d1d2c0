// Package tui provides the terminal user interface for utilboard.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/utilboard/utilboard/internal/config"
	"github.com/utilboard/utilboard/internal/models"
	"github.com/utilboard/utilboard/internal/tui/components"
)

// Theme contains all style definitions for the TUI.
type Theme struct {
	// Colors (raw values for reference)
	PrimaryColor    lipgloss.Color
	SecondaryColor  lipgloss.Color
	AccentColor     lipgloss.Color
	BackgroundColor lipgloss.Color
	ErrorColor      lipgloss.Color
	WarningColor    lipgloss.Color
	SuccessColor    lipgloss.Color
	MutedColor      lipgloss.Color

	Base lipgloss.Style
	Bold lipgloss.Style

	// Color styles (for direct use)
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Accent    lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Success   lipgloss.Style
	Muted     lipgloss.Style

	// Component styles
	Header    lipgloss.Style
	Footer    lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Box       lipgloss.Style
	Selected  lipgloss.Style
	Alert     lipgloss.Style
	AlertWarn lipgloss.Style
	AlertCrit lipgloss.Style

	// Table styles
	TableHeader lipgloss.Style
	TableRow    lipgloss.Style
	TableRowAlt lipgloss.Style

	// Status bar
	StatusDivider lipgloss.Style
}

// NewTheme creates a new theme based on the color scheme configuration.
func NewTheme(scheme config.ColorScheme) *Theme {
	switch scheme {
	case config.ColorSchemeAmber:
		return buildTheme("#FFAA00", "#AA7700", "#FFCC66", "#664400", "#FF4444", "#FFFF00", "#FFAA00")
	case config.ColorSchemeWhite:
		return buildTheme("#FFFFFF", "#AAAAAA", "#FFFFFF", "#666666", "#FF4444", "#FFAA00", "#00FF00")
	default:
		return buildTheme("#00FF00", "#00AA00", "#66FF66", "#006600", "#FF4444", "#FFAA00", "#00FF00")
	}
}

func buildTheme(primary, secondary, accent, muted, errorColor, warningColor, successColor lipgloss.Color) *Theme {
	background := lipgloss.Color("#000000")

	t := &Theme{
		PrimaryColor:    primary,
		SecondaryColor:  secondary,
		AccentColor:     accent,
		BackgroundColor: background,
		MutedColor:      muted,
		ErrorColor:      errorColor,
		WarningColor:    warningColor,
		SuccessColor:    successColor,
	}

	t.Base = lipgloss.NewStyle().Foreground(primary)
	t.Bold = t.Base.Bold(true)

	t.Primary = lipgloss.NewStyle().Foreground(primary)
	t.Secondary = lipgloss.NewStyle().Foreground(secondary)
	t.Accent = lipgloss.NewStyle().Foreground(accent)
	t.Error = lipgloss.NewStyle().Foreground(errorColor)
	t.Warning = lipgloss.NewStyle().Foreground(warningColor)
	t.Success = lipgloss.NewStyle().Foreground(successColor)
	t.Muted = lipgloss.NewStyle().Foreground(muted)

	t.Header = lipgloss.NewStyle().
		Foreground(primary).
		Bold(true).
		Padding(0, 1)

	t.Footer = lipgloss.NewStyle().
		Foreground(secondary).
		Padding(0, 1)

	t.Title = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true).
		Padding(0, 1)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(primary).
		Padding(0, 1)

	t.Label = lipgloss.NewStyle().Foreground(secondary)
	t.Value = lipgloss.NewStyle().Foreground(primary)

	t.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(secondary).
		Padding(0, 1)

	t.Selected = lipgloss.NewStyle().
		Foreground(background).
		Background(primary).
		Bold(true)

	t.Alert = lipgloss.NewStyle().Foreground(primary).Bold(true)
	t.AlertWarn = lipgloss.NewStyle().Foreground(warningColor).Bold(true)
	t.AlertCrit = lipgloss.NewStyle().Foreground(errorColor).Bold(true)

	t.TableHeader = lipgloss.NewStyle().Foreground(accent).Bold(true)
	t.TableRow = lipgloss.NewStyle().Foreground(primary)
	t.TableRowAlt = lipgloss.NewStyle().Foreground(secondary)

	t.StatusDivider = lipgloss.NewStyle().
		Foreground(muted).
		SetString(" │ ")

	return t
}

// TableStyles returns the table palette for this theme.
func (t *Theme) TableStyles() components.TableStyles {
	return components.TableStyles{
		Header:   t.TableHeader,
		Row:      t.TableRow,
		RowAlt:   t.TableRowAlt,
		Selected: t.Selected,
		Border:   t.Secondary,
	}
}

// Palette returns the view palette for this theme.
func (t *Theme) Palette() components.Palette {
	return components.Palette{
		Title:   t.Accent.Bold(true),
		Section: t.Primary.Bold(true),
		Label:   t.Label,
		Value:   t.Value,
		Muted:   t.Muted,
		Help:    t.Secondary,
		Success: t.Success,
		Warning: t.Warning,
		Error:   t.Error,
		Table:   t.TableStyles(),
	}
}

// HealthStyle returns the style for a health level.
func (t *Theme) HealthStyle(level models.HealthLevel) lipgloss.Style {
	switch level {
	case models.HealthCritical:
		return t.AlertCrit
	case models.HealthWarning:
		return t.AlertWarn
	default:
		return t.Success.Bold(true)
	}
}

// Box characters for drawing
const (
	BoxHorizontal       = "─"
	BoxDoubleHorizontal = "═"
)

// DrawHorizontalLine draws a horizontal line.
func (t *Theme) DrawHorizontalLine(width int) string {
	return t.Secondary.Render(strings.Repeat(BoxHorizontal, max(width, 0)))
}

// DrawDoubleLine draws a double horizontal line.
func (t *Theme) DrawDoubleLine(width int) string {
	return t.Primary.Render(strings.Repeat(BoxDoubleHorizontal, max(width, 0)))
}
