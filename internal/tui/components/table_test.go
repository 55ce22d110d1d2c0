package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNewTable(t *testing.T) {
	table := NewTable([]Column{{Title: "ID", Width: 5}, {Title: "Name", Width: 20}})
	if table == nil {
		t.Fatal("Expected non-nil table")
	}
	if !table.Empty() {
		t.Error("New table should be empty")
	}
	if table.RowCount() != 0 {
		t.Errorf("Expected 0 rows, got %d", table.RowCount())
	}
}

func TestTable_Navigation(t *testing.T) {
	table := NewTable([]Column{{Title: "ID", Width: 5}})
	table.SetRows([][]string{{"1"}, {"2"}, {"3"}, {"4"}, {"5"}})

	steps := []struct {
		name string
		move func()
		want int
	}{
		{"down", table.MoveDown, 1},
		{"up", table.MoveUp, 0},
		{"up at top", table.MoveUp, 0},
		{"bottom", table.GoToBottom, 4},
		{"down at bottom", table.MoveDown, 4},
		{"top", table.GoToTop, 0},
	}

	for _, step := range steps {
		step.move()
		if got := table.Selected(); got != step.want {
			t.Errorf("after %s: selected = %d, want %d", step.name, got, step.want)
		}
	}
}

func TestTable_SelectedRow(t *testing.T) {
	table := NewTable([]Column{{Title: "ID", Width: 5}, {Title: "Name", Width: 10}})

	if row := table.SelectedRow(); row != nil {
		t.Errorf("Expected nil for empty table selected row, got %v", row)
	}

	table.SetRows([][]string{{"1", "Alice"}, {"2", "Bob"}})
	table.MoveDown()
	row := table.SelectedRow()
	if row[0] != "2" || row[1] != "Bob" {
		t.Errorf("Expected [2, Bob], got %v", row)
	}
}

func TestTable_SetRowsClampsSelection(t *testing.T) {
	table := NewTable([]Column{{Title: "ID", Width: 5}})
	table.SetRows([][]string{{"1"}, {"2"}, {"3"}})
	table.GoToBottom()

	table.SetRows([][]string{{"1"}})
	if table.Selected() != 0 {
		t.Errorf("selected = %d, want 0 after shrinking rows", table.Selected())
	}

	table.SetRows(nil)
	if table.Selected() != 0 {
		t.Errorf("selected = %d, want 0 for empty rows", table.Selected())
	}
}

func TestTable_PageNavigation(t *testing.T) {
	table := NewTable([]Column{{Title: "ID", Width: 5}})
	table.SetVisibleRows(3)

	rows := make([][]string, 10)
	for i := range rows {
		rows[i] = []string{string(rune('A' + i))}
	}
	table.SetRows(rows)

	table.PageDown()
	if table.Selected() != 3 {
		t.Errorf("After PageDown expected selected=3, got %d", table.Selected())
	}
	table.PageUp()
	if table.Selected() != 0 {
		t.Errorf("After PageUp expected selected=0, got %d", table.Selected())
	}
}

func TestTable_RenderScrollsWithSelection(t *testing.T) {
	table := NewTable([]Column{{Title: "ID", Width: 5}})
	table.SetVisibleRows(2)
	table.SetRows([][]string{{"row-a"}, {"row-b"}, {"row-c"}})
	table.Focus(true)

	table.GoToBottom()
	out := table.Render()
	if strings.Contains(out, "row-a") {
		t.Error("expected first row to scroll out of view")
	}
	if !strings.Contains(out, "row-c") {
		t.Error("expected selected row to be visible")
	}
}

func TestTable_Render(t *testing.T) {
	table := NewTable([]Column{
		{Title: "ID", Width: 5},
		{Title: "Name", Width: 10},
		{Title: "Hours", Width: 6, Align: lipgloss.Right},
	})
	table.SetRows([][]string{{"1", "Alexandria Smith", "40"}})
	table.SetPagination(1, 5, 100)

	out := table.Render()
	for _, want := range []string{"ID", "Name", "Hours", "Alexandri…", "    40", "Page 1/5", "100 total"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestTable_HiddenColumns(t *testing.T) {
	table := NewTable([]Column{{Title: "ID", Width: 5}, {Title: "Extra", Width: 8}})
	table.SetRows([][]string{{"001", "Details"}})
	table.SetColumnWidths([]int{5, 0})

	out := table.Render()
	if strings.Contains(out, "Extra") || strings.Contains(out, "Details") {
		t.Error("expected zero-width column to be hidden")
	}
	if !strings.Contains(out, "001") {
		t.Error("expected visible column data")
	}
}
