package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColumnSpec defines a column with proportional or fixed width.
type ColumnSpec struct {
	// MinWidth is the absolute minimum width of a visible column.
	MinWidth int
	// Weight is the proportional share of remaining width.
	Weight float64
	// Fixed is a fixed width (overrides Weight if > 0).
	Fixed int
	// Priority determines drop order when the terminal is narrow (lower = dropped first).
	Priority int
}

// CalculateColumnWidths distributes available width among columns proportionally.
// When the fixed columns do not fit, columns are hidden (width 0) in
// ascending priority order. separator is the width consumed per column gap.
func CalculateColumnWidths(specs []ColumnSpec, availableWidth int, separator int) []int {
	widths := make([]int, len(specs))
	visible := make([]bool, len(specs))

	totalFixed := 0
	totalWeight := 0.0
	visibleCount := 0
	for i, spec := range specs {
		visible[i] = true
		visibleCount++
		if spec.Fixed > 0 {
			totalFixed += spec.Fixed
		} else {
			totalWeight += spec.Weight
		}
	}

	// -2 for row padding
	remaining := func() int {
		gaps := 0
		if visibleCount > 1 {
			gaps = (visibleCount - 1) * separator
		}
		return availableWidth - totalFixed - gaps - 2
	}

	for remaining() < 0 && visibleCount > 1 {
		lowest := -1
		for i, spec := range specs {
			if visible[i] && (lowest < 0 || spec.Priority < specs[lowest].Priority) {
				lowest = i
			}
		}
		visible[lowest] = false
		visibleCount--
		if specs[lowest].Fixed > 0 {
			totalFixed -= specs[lowest].Fixed
		} else {
			totalWeight -= specs[lowest].Weight
		}
	}

	left := max(remaining(), 0)
	for i, spec := range specs {
		switch {
		case !visible[i]:
			widths[i] = 0
		case spec.Fixed > 0:
			widths[i] = spec.Fixed
		case totalWeight > 0:
			widths[i] = max(int(float64(left)*spec.Weight/totalWeight), spec.MinWidth)
		default:
			widths[i] = spec.MinWidth
		}
	}

	return widths
}

// Truncate shortens a string to fit within maxWidth, adding an ellipsis if needed.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	if maxWidth <= 3 {
		return string(runes[:min(maxWidth, len(runes))])
	}
	return string(runes[:min(maxWidth-1, len(runes))]) + "…"
}

// PadRight pads a string to the given width with spaces.
func PadRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// PadLeft pads a string to the given width with spaces on the left.
func PadLeft(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}

// Gauge renders a text bar filled to value/limit.
func Gauge(value, limit float64, width int) string {
	if limit <= 0 {
		limit = 1
	}
	ratio := min(max(value/limit, 0), 1)

	barWidth := max(width-2, 4) // for [ and ]
	filled := int(ratio*float64(barWidth) + 0.5)

	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled) + "]"
}

// segmentGlyphs distinguishes unstyled StackedBar segments.
var segmentGlyphs = []string{"█", "▒", "·"}

// StackedBar renders segments side by side, each sized by its share of the
// total. The last segment absorbs rounding so the bar is exactly width wide.
// Segment i uses styles[i] when given, otherwise a distinct glyph.
func StackedBar(width int, shares []float64, styles []lipgloss.Style) string {
	total := 0.0
	for _, s := range shares {
		total += max(s, 0)
	}
	if total <= 0 || width <= 0 {
		return strings.Repeat(" ", max(width, 0))
	}

	var b strings.Builder
	used := 0
	for i, s := range shares {
		n := int(max(s, 0)/total*float64(width) + 0.5)
		if i == len(shares)-1 || used+n > width {
			n = width - used
		}
		used += n

		if i < len(styles) {
			b.WriteString(styles[i].Render(strings.Repeat("█", n)))
		} else {
			b.WriteString(strings.Repeat(segmentGlyphs[i%len(segmentGlyphs)], n))
		}
	}
	return b.String()
}
