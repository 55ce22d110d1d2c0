// Package directory provides TUI views for the company-wide resource
// directory and the bench list.
package directory

import (
	"fmt"
	"strings"

	"github.com/utilboard/utilboard/internal/models"
	"github.com/utilboard/utilboard/internal/seed"
	"github.com/utilboard/utilboard/internal/services/workforce"
	"github.com/utilboard/utilboard/internal/tui/components"
)

// directoryChrome is the number of lines drawn around the table.
const directoryChrome = 12

var directoryColumns = []components.ColumnSpec{
	{Weight: 1.5, MinWidth: 14, Priority: 6},
	{Weight: 2, MinWidth: 14, Priority: 5},
	{Fixed: 9, Priority: 4},
	{Fixed: 13, Priority: 3},
	{Fixed: 8, Priority: 2},
	{Weight: 1, MinWidth: 10, Priority: 1},
}

var statusOptions = []models.ResourceStatus{"", models.StatusBillable, models.StatusInternal, models.StatusBench}

// DirectoryView lists every roster resource with filters and sorting.
type DirectoryView struct {
	service  *workforce.Service
	all      []models.DirectoryEntry
	entries  []models.DirectoryEntry
	filter   workforce.DirectoryFilter
	sortKey  workforce.DirectorySortKey
	sortDir  models.SortDirection
	offices  []string
	projects map[string]string
	table    *components.Table
	palette  components.Palette
}

// NewDirectoryView creates the directory.
func NewDirectoryView(service *workforce.Service) *DirectoryView {
	table := components.NewTable([]components.Column{
		{Title: "Name", Width: 18},
		{Title: "Role", Width: 22},
		{Title: "Grade", Width: 9},
		{Title: "Location", Width: 13},
		{Title: "Status", Width: 8},
		{Title: "Project", Width: 20},
	})
	table.Focus(true)

	v := &DirectoryView{
		service:  service,
		sortKey:  workforce.SortByName,
		sortDir:  models.SortAsc,
		projects: make(map[string]string),
		table:    table,
		palette:  components.DefaultPalette(),
	}
	for _, office := range service.Offices() {
		v.offices = append(v.offices, office.Name)
		for _, p := range service.ProjectsForLocation(office.ID) {
			v.projects[p.ID] = p.Name
		}
	}
	return v
}

// SetPalette sets the render styles.
func (v *DirectoryView) SetPalette(p components.Palette) {
	v.palette = p
	v.table.SetStyles(p.Table)
}

// Load builds the directory from every roster.
func (v *DirectoryView) Load() {
	v.all = v.service.AllResources()
	v.apply()
}

// Filter returns the active filter.
func (v *DirectoryView) Filter() workforce.DirectoryFilter {
	return v.filter
}

// Entries returns the filtered, sorted entries.
func (v *DirectoryView) Entries() []models.DirectoryEntry {
	return v.entries
}

// CycleRole advances the role filter.
func (v *DirectoryView) CycleRole() {
	v.filter.Role = cycle(v.filter.Role, seed.Roles)
	v.apply()
}

// CycleGrade advances the grade filter.
func (v *DirectoryView) CycleGrade() {
	v.filter.Grade = cycle(v.filter.Grade, seed.Grades)
	v.apply()
}

// CycleOffice advances the office filter.
func (v *DirectoryView) CycleOffice() {
	v.filter.Location = cycle(v.filter.Location, v.offices)
	v.apply()
}

// CycleStatus advances the status filter.
func (v *DirectoryView) CycleStatus() {
	for i, s := range statusOptions {
		if s == v.filter.Status {
			v.filter.Status = statusOptions[(i+1)%len(statusOptions)]
			break
		}
	}
	v.apply()
}

// ClearFilters removes all filters.
func (v *DirectoryView) ClearFilters() {
	v.filter = workforce.DirectoryFilter{}
	v.apply()
}

// SortBy sorts by the column at idx. Choosing the active column flips the
// direction.
func (v *DirectoryView) SortBy(idx int) {
	if idx < 0 || idx >= len(workforce.DirectorySortKeys) {
		return
	}
	key := workforce.DirectorySortKeys[idx]
	if key == v.sortKey {
		v.sortDir = v.sortDir.Toggle()
	} else {
		v.sortKey = key
		v.sortDir = models.SortAsc
	}
	v.apply()
}

func (v *DirectoryView) apply() {
	v.entries = workforce.FilterDirectory(v.all, v.filter)
	workforce.SortDirectory(v.entries, v.sortKey, v.sortDir)

	rows := make([][]string, len(v.entries))
	for i, e := range v.entries {
		rows[i] = []string{e.Name, e.Role, e.Grade, e.Location, e.Status.String(), v.projects[e.ProjectID]}
	}
	v.table.SetRows(rows)
	v.table.GoToTop()
}

// MoveUp moves the selection up.
func (v *DirectoryView) MoveUp() {
	v.table.MoveUp()
}

// MoveDown moves the selection down.
func (v *DirectoryView) MoveDown() {
	v.table.MoveDown()
}

// PageUp moves up one page.
func (v *DirectoryView) PageUp() {
	v.table.PageUp()
}

// PageDown moves down one page.
func (v *DirectoryView) PageDown() {
	v.table.PageDown()
}

// Top selects the first entry.
func (v *DirectoryView) Top() {
	v.table.GoToTop()
}

// Bottom selects the last entry.
func (v *DirectoryView) Bottom() {
	v.table.GoToBottom()
}

// SelectedEntry returns the currently selected entry.
func (v *DirectoryView) SelectedEntry() *models.DirectoryEntry {
	idx := v.table.Selected()
	if idx >= 0 && idx < len(v.entries) {
		e := v.entries[idx]
		return &e
	}
	return nil
}

// Render renders the directory.
func (v *DirectoryView) Render(width, height int) string {
	p := v.palette
	var b strings.Builder

	b.WriteString(p.Title.Render("=== RESOURCE DIRECTORY ==="))
	b.WriteString("\n\n")

	counts := workforce.StatusCounts(v.entries)
	b.WriteString(p.Value.Render(fmt.Sprintf("%d of %d resources", len(v.entries), len(v.all))))
	b.WriteString(p.Muted.Render(fmt.Sprintf("  billable %d | internal %d | bench %d",
		counts[models.StatusBillable], counts[models.StatusInternal], counts[models.StatusBench])))
	b.WriteString("\n")

	arrow := "asc"
	if v.sortDir == models.SortDesc {
		arrow = "desc"
	}
	b.WriteString(p.Label.Render(fmt.Sprintf("Role: %s  Grade: %s  Office: %s  Status: %s  Sort: %s %s",
		orAll(v.filter.Role), orAll(v.filter.Grade), orAll(v.filter.Location), orAll(string(v.filter.Status)),
		v.sortKey, arrow)))
	b.WriteString("\n\n")

	if v.table.Empty() {
		b.WriteString(p.Label.Render("No resources match the filters."))
		b.WriteString("\n")
	} else {
		visible := max(height-directoryChrome, 1)
		v.table.SetColumnWidths(components.CalculateColumnWidths(directoryColumns, width, 3))
		v.table.SetVisibleRows(visible)

		page := models.Pagination{Page: v.table.Selected()/visible + 1, PageSize: visible}
		v.table.SetPagination(page.Page, page.TotalPages(len(v.entries)), len(v.entries))
		b.WriteString(v.table.Render())
	}

	b.WriteString("\n")
	if width < 80 {
		b.WriteString(p.Help.Render("r/g/o/s:Filter  1-5:Sort  x:Clear"))
	} else {
		b.WriteString(p.Help.Render("Up/Down:Select  Enter:Profile  r:Role g:Grade o:Office s:Status  1-5:Sort  x:Clear"))
	}

	return b.String()
}

// cycle returns the option after current, with "" (all) before the first.
func cycle(current string, options []string) string {
	if current == "" {
		if len(options) == 0 {
			return ""
		}
		return options[0]
	}
	for i, o := range options {
		if o == current {
			if i+1 < len(options) {
				return options[i+1]
			}
			return ""
		}
	}
	return ""
}

func orAll(s string) string {
	if s == "" {
		return "All"
	}
	return s
}
