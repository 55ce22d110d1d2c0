package projects

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/utilboard/utilboard/internal/models"
	"github.com/utilboard/utilboard/internal/services/workforce"
	"github.com/utilboard/utilboard/internal/tui/components"
	"github.com/utilboard/utilboard/internal/util"
)

// rosterChrome is the number of lines the roster draws around its table.
const rosterChrome = 13

var rosterColumns = []components.ColumnSpec{
	{Weight: 1.5, MinWidth: 14, Priority: 7},
	{Weight: 2, MinWidth: 14, Priority: 6},
	{Fixed: 9, Priority: 5},
	{Fixed: 8, Priority: 4},
	{Fixed: 10, Priority: 3},
	{Fixed: 10, Priority: 1},
	{Fixed: 10, Priority: 2},
}

// RosterView displays the team assigned to one project along with hours
// booked in the selected period.
type RosterView struct {
	service   *workforce.Service
	project   *models.BillableProject
	resources []models.ProjectResource
	period    workforce.BookingPeriod
	booked    []int
	table     *components.Table
	palette   components.Palette
}

// NewRosterView creates a new roster view.
func NewRosterView(service *workforce.Service) *RosterView {
	table := components.NewTable([]components.Column{
		{Title: "Name", Width: 18},
		{Title: "Role", Width: 22},
		{Title: "Grade", Width: 9},
		{Title: "Hrs/Wk", Width: 8, Align: lipgloss.Right},
		{Title: "Period Hrs", Width: 10, Align: lipgloss.Right},
		{Title: "Start", Width: 10},
		{Title: "End", Width: 10},
	})
	table.Focus(true)

	return &RosterView{
		service: service,
		period:  workforce.PeriodCurrentWeek,
		table:   table,
		palette: components.DefaultPalette(),
	}
}

// SetPalette sets the render styles.
func (v *RosterView) SetPalette(p components.Palette) {
	v.palette = p
	v.table.SetStyles(p.Table)
}

// SetProject loads the roster of a project.
func (v *RosterView) SetProject(project *models.BillableProject) {
	v.project = project
	v.resources = nil
	if project != nil {
		v.resources = v.service.ProjectResources(project.ID)
	}
	v.Refresh()
	v.table.GoToTop()
}

// Project returns the displayed project.
func (v *RosterView) Project() *models.BillableProject {
	return v.project
}

// Period returns the selected booking period.
func (v *RosterView) Period() workforce.BookingPeriod {
	return v.period
}

// CyclePeriod advances to the next booking period.
func (v *RosterView) CyclePeriod() {
	v.period = v.period.Next()
	v.Refresh()
}

// Refresh recomputes the booked hours column for the selected period.
func (v *RosterView) Refresh() {
	start, end := v.period.Range(v.service.Now())

	v.booked = make([]int, len(v.resources))
	rows := make([][]string, len(v.resources))
	for i, r := range v.resources {
		if data, ok := v.service.ResourceBookings(r.ID, start, end); ok {
			for _, s := range data.ProjectSummary {
				if v.project != nil && s.ProjectID == v.project.ID {
					v.booked[i] = s.TotalHours
				}
			}
		}

		rows[i] = []string{
			r.Name,
			r.Role,
			r.Grade,
			fmt.Sprintf("%d", r.HoursPerWeek),
			fmt.Sprintf("%d", v.booked[i]),
			util.FormatDate(r.StartDate),
			util.FormatDate(r.EndDate),
		}
	}
	v.table.SetRows(rows)
}

// MoveUp moves the selection up.
func (v *RosterView) MoveUp() {
	v.table.MoveUp()
}

// MoveDown moves the selection down.
func (v *RosterView) MoveDown() {
	v.table.MoveDown()
}

// SelectedResource returns the currently selected roster entry.
func (v *RosterView) SelectedResource() *models.ProjectResource {
	idx := v.table.Selected()
	if idx >= 0 && idx < len(v.resources) {
		r := v.resources[idx]
		return &r
	}
	return nil
}

// Render renders the roster.
func (v *RosterView) Render(width, height int) string {
	p := v.palette
	var b strings.Builder

	b.WriteString(p.Title.Render("=== PROJECT ROSTER ==="))
	b.WriteString("\n\n")

	if v.project == nil {
		b.WriteString(p.Label.Render("No project selected."))
		return b.String()
	}

	b.WriteString(p.Field("Project:", v.project.Name+" ("+v.project.Client+")", 9))
	b.WriteString(p.Muted.Render("  " + v.project.Status.Label()))
	b.WriteString("\n")

	start, end := v.period.Range(v.service.Now())
	b.WriteString(p.Field("Period:", fmt.Sprintf("%s, %s to %s", v.period.Label(), util.FormatDate(start), util.FormatDate(end)), 9))
	b.WriteString("\n\n")

	hours := workforce.RosterHours(v.resources)
	booked := 0
	for _, h := range v.booked {
		booked += h
	}
	b.WriteString(p.Section.Render("TEAM"))
	b.WriteString("\n")
	b.WriteString(p.Value.Render(fmt.Sprintf("  %d resources | %dh/week | avg %.1fh | %dh booked in period",
		hours.Resources, hours.Total, hours.Average, booked)))
	b.WriteString("\n")

	var grades []string
	for _, g := range workforce.GradeBreakdown(v.resources) {
		grades = append(grades, fmt.Sprintf("%s %d", g.Grade, g.Count))
	}
	b.WriteString(p.Label.Render("  " + strings.Join(grades, " | ")))
	b.WriteString("\n\n")

	if v.table.Empty() {
		b.WriteString(p.Label.Render("No resources assigned."))
		b.WriteString("\n")
	} else {
		v.table.SetColumnWidths(components.CalculateColumnWidths(rosterColumns, width, 3))
		v.table.SetVisibleRows(height - rosterChrome)
		b.WriteString(v.table.Render())
	}

	b.WriteString("\n")
	if width < 80 {
		b.WriteString(p.Help.Render("Enter:Profile  b:Book  p:Period  Esc:Back"))
	} else {
		b.WriteString(p.Help.Render("Up/Down:Select  Enter:Profile  b:Bookings  p:Period  Esc:Back"))
	}

	return b.String()
}
