// Package projects provides TUI views for billable projects and their rosters.
package projects

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/utilboard/utilboard/internal/models"
	"github.com/utilboard/utilboard/internal/services/workforce"
	"github.com/utilboard/utilboard/internal/tui/components"
)

// listChrome is the number of lines the list draws around its table.
const listChrome = 8

var listColumns = []components.ColumnSpec{
	{Weight: 2, MinWidth: 16, Priority: 5},
	{Weight: 1.5, MinWidth: 12, Priority: 4},
	{Fixed: 9, Priority: 3},
	{Fixed: 12, Priority: 2},
	{Fixed: 11, Priority: 1},
}

// ListView displays the billable projects of a location.
type ListView struct {
	service  *workforce.Service
	location models.Location
	projects []models.BillableProject
	table    *components.Table
	palette  components.Palette
}

// NewListView creates a new project list.
func NewListView(service *workforce.Service) *ListView {
	table := components.NewTable([]components.Column{
		{Title: "Project", Width: 24},
		{Title: "Client", Width: 18},
		{Title: "Resources", Width: 9, Align: lipgloss.Right},
		{Title: "Contribution", Width: 12, Align: lipgloss.Right},
		{Title: "Status", Width: 11},
	})
	table.Focus(true)

	return &ListView{
		service: service,
		table:   table,
		palette: components.DefaultPalette(),
	}
}

// SetPalette sets the render styles.
func (v *ListView) SetPalette(p components.Palette) {
	v.palette = p
	v.table.SetStyles(p.Table)
}

// SetLocation loads the projects of a location.
func (v *ListView) SetLocation(locationID string) {
	v.location = v.service.Location(locationID)
	v.projects = v.service.ProjectsForLocation(v.location.ID)

	rows := make([][]string, len(v.projects))
	for i, p := range v.projects {
		rows[i] = []string{
			p.Name,
			p.Client,
			fmt.Sprintf("%d", p.ResourceCount),
			fmt.Sprintf("%.1f%%", p.Contribution),
			p.Status.Label(),
		}
	}
	v.table.SetRows(rows)
	v.table.GoToTop()
}

// MoveUp moves the selection up.
func (v *ListView) MoveUp() {
	v.table.MoveUp()
}

// MoveDown moves the selection down.
func (v *ListView) MoveDown() {
	v.table.MoveDown()
}

// SelectedProject returns the currently selected project.
func (v *ListView) SelectedProject() *models.BillableProject {
	idx := v.table.Selected()
	if idx >= 0 && idx < len(v.projects) {
		p := v.projects[idx]
		return &p
	}
	return nil
}

// Render renders the project list.
func (v *ListView) Render(width, height int) string {
	p := v.palette
	var b strings.Builder

	b.WriteString(p.Title.Render("=== BILLABLE PROJECTS ==="))
	b.WriteString("\n\n")

	staffed := 0
	for _, proj := range v.projects {
		staffed += proj.ResourceCount
	}
	b.WriteString(p.Label.Render("Location: "))
	b.WriteString(p.Value.Render(v.location.Name))
	b.WriteString(p.Muted.Render(fmt.Sprintf("  %d projects, %d staffed resources", len(v.projects), staffed)))
	b.WriteString("\n\n")

	if v.table.Empty() {
		b.WriteString(p.Label.Render("No projects found."))
		b.WriteString("\n")
	} else {
		v.table.SetColumnWidths(components.CalculateColumnWidths(listColumns, width, 3))
		v.table.SetVisibleRows(height - listChrome)
		b.WriteString(v.table.Render())
	}

	b.WriteString("\n")
	if width < 80 {
		b.WriteString(p.Help.Render("Enter:Roster  l:Loc"))
	} else {
		b.WriteString(p.Help.Render("Up/Down:Select  Enter:Roster  l:Location  F2:Dashboard"))
	}

	return b.String()
}
