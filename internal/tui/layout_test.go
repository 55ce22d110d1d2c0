package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/utilboard/utilboard/internal/config"
)

func TestGetBreakpoint(t *testing.T) {
	tests := []struct {
		width    int
		expected LayoutBreakpoint
	}{
		{40, BreakpointNarrow},
		{59, BreakpointNarrow},
		{60, BreakpointMedium},
		{99, BreakpointMedium},
		{100, BreakpointWide},
		{200, BreakpointWide},
	}

	for _, tt := range tests {
		if got := GetBreakpoint(tt.width); got != tt.expected {
			t.Errorf("GetBreakpoint(%d) = %d, want %d", tt.width, got, tt.expected)
		}
	}
}

func TestContentWidth(t *testing.T) {
	tests := []struct {
		termWidth int
		minWidth  int
		maxWidth  int
		expected  int
	}{
		{80, 40, 120, 80},
		{30, 40, 120, 40},
		{200, 40, 120, 120},
		{80, 40, 0, 80},
	}

	for _, tt := range tests {
		if got := ContentWidth(tt.termWidth, tt.minWidth, tt.maxWidth); got != tt.expected {
			t.Errorf("ContentWidth(%d, %d, %d) = %d, want %d",
				tt.termWidth, tt.minWidth, tt.maxWidth, got, tt.expected)
		}
	}
}

func TestContentHeight(t *testing.T) {
	tests := []struct {
		termHeight  int
		chromeLines int
		expected    int
	}{
		{24, 6, 18},
		{40, 6, 34},
		{8, 6, 5},
		{5, 6, 5},
	}

	for _, tt := range tests {
		if got := ContentHeight(tt.termHeight, tt.chromeLines); got != tt.expected {
			t.Errorf("ContentHeight(%d, %d) = %d, want %d",
				tt.termHeight, tt.chromeLines, got, tt.expected)
		}
	}
}

func TestSideBySide(t *testing.T) {
	t.Run("Horizontal", func(t *testing.T) {
		result := SideBySide("AAA\nAA", "BBB", 80, 4)
		if strings.Contains(result, "\n\n") {
			t.Error("Expected horizontal layout, got vertical")
		}
		first := strings.Split(result, "\n")[0]
		if !strings.HasPrefix(first, "AAA") || !strings.HasSuffix(first, "BBB") {
			t.Errorf("expected both blocks on the first line, got %q", first)
		}
	})

	t.Run("Vertical", func(t *testing.T) {
		result := SideBySide(strings.Repeat("A", 50), strings.Repeat("B", 50), 60, 4)
		if !strings.Contains(result, "\n\n") {
			t.Error("Expected vertical layout when content doesn't fit")
		}
	})
}

func TestPanel(t *testing.T) {
	theme := NewTheme(config.ColorSchemeGreenPhosphor)
	out := theme.Panel("NAVIGATION", "F1  Help", 40)

	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[0], "NAVIGATION") {
		t.Errorf("expected title in top border, got %q", lines[0])
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 40 {
			t.Errorf("line %d width = %d, want 40", i, w)
		}
	}
}
