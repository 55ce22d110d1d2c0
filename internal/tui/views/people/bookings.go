package people

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/utilboard/utilboard/internal/models"
	"github.com/utilboard/utilboard/internal/services/workforce"
	"github.com/utilboard/utilboard/internal/tui/components"
	"github.com/utilboard/utilboard/internal/util"
)

// bookingsChrome is the number of lines drawn around the weekly table,
// excluding the per-project summary.
const bookingsChrome = 12

var weekColumns = []components.ColumnSpec{
	{Fixed: 10, Priority: 4},
	{Fixed: 10, Priority: 2},
	{Weight: 1, MinWidth: 20, Priority: 3},
	{Fixed: 6, Priority: 5},
}

// BookingsView displays a resource's weekly bookings over a preset period.
type BookingsView struct {
	service    *workforce.Service
	resourceID string
	name       string
	period     workforce.BookingPeriod
	data       *models.PeriodBookingData
	table      *components.Table
	palette    components.Palette
}

// NewBookingsView creates a new booking calendar.
func NewBookingsView(service *workforce.Service) *BookingsView {
	table := components.NewTable([]components.Column{
		{Title: "Week of", Width: 10},
		{Title: "Through", Width: 10},
		{Title: "Projects", Width: 48},
		{Title: "Total", Width: 6, Align: lipgloss.Right},
	})
	table.Focus(true)

	return &BookingsView{
		service: service,
		period:  workforce.PeriodCurrentWeek,
		table:   table,
		palette: components.DefaultPalette(),
	}
}

// SetPalette sets the render styles.
func (v *BookingsView) SetPalette(p components.Palette) {
	v.palette = p
	v.table.SetStyles(p.Table)
}

// SetResource selects the resource and period to display.
func (v *BookingsView) SetResource(resourceID, name string, period workforce.BookingPeriod) {
	v.resourceID = resourceID
	v.name = name
	v.period = period
	v.Refresh()
	v.table.GoToTop()
}

// Period returns the selected period.
func (v *BookingsView) Period() workforce.BookingPeriod {
	return v.period
}

// Data returns the displayed bookings, or nil.
func (v *BookingsView) Data() *models.PeriodBookingData {
	return v.data
}

// CyclePeriod advances to the next period preset.
func (v *BookingsView) CyclePeriod() {
	v.period = v.period.Next()
	v.Refresh()
	v.table.GoToTop()
}

// Refresh recomputes the bookings for the current selection.
func (v *BookingsView) Refresh() {
	start, end := v.period.Range(v.service.Now())
	data, ok := v.service.ResourceBookings(v.resourceID, start, end)
	if !ok {
		v.data = nil
		v.table.SetRows(nil)
		return
	}
	v.data = data

	rows := make([][]string, len(data.Weeks))
	for i, w := range data.Weeks {
		parts := make([]string, len(w.Projects))
		for j, ph := range w.Projects {
			parts[j] = fmt.Sprintf("%s %dh", ph.ProjectName, ph.Hours)
		}
		rows[i] = []string{
			util.FormatDate(w.WeekStart),
			util.FormatDate(w.WeekEnd),
			strings.Join(parts, ", "),
			fmt.Sprintf("%dh", w.TotalHours),
		}
	}
	v.table.SetRows(rows)
}

// MoveUp scrolls the weekly table.
func (v *BookingsView) MoveUp() {
	v.table.MoveUp()
}

// MoveDown scrolls the weekly table.
func (v *BookingsView) MoveDown() {
	v.table.MoveDown()
}

// Render renders the booking calendar.
func (v *BookingsView) Render(width, height int) string {
	p := v.palette
	var b strings.Builder

	b.WriteString(p.Title.Render("=== BOOKINGS ==="))
	b.WriteString("\n\n")

	if v.data == nil {
		b.WriteString(p.Label.Render("No bookings found."))
		b.WriteString("\n\n")
		b.WriteString(p.Help.Render("Esc:Back"))
		return b.String()
	}

	b.WriteString(p.Field("Resource:", v.name, 9))
	b.WriteString(p.Muted.Render("  " + v.resourceID))
	b.WriteString("\n")
	b.WriteString(p.Field("Period:", fmt.Sprintf("%s, %s to %s", v.period.Label(),
		util.FormatDate(v.data.StartDate), util.FormatDate(v.data.EndDate)), 9))
	b.WriteString("\n\n")

	summaryLines := len(v.data.ProjectSummary)
	v.table.SetColumnWidths(components.CalculateColumnWidths(weekColumns, width, 3))
	v.table.SetVisibleRows(height - bookingsChrome - summaryLines)
	b.WriteString(v.table.Render())
	b.WriteString("\n")

	b.WriteString(p.Section.Render(fmt.Sprintf("SUMMARY (%dh total)", v.data.TotalHours)))
	b.WriteString("\n")
	for _, s := range v.data.ProjectSummary {
		b.WriteString(p.Value.Render(fmt.Sprintf("  %-28s %-18s %5dh ",
			components.Truncate(s.ProjectName, 28), components.Truncate(s.Client, 18), s.TotalHours)))
		b.WriteString(p.Success.Render(components.Gauge(float64(s.Percentage), 100, 22)))
		b.WriteString(p.Value.Render(fmt.Sprintf(" %d%%", s.Percentage)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if width < 80 {
		b.WriteString(p.Help.Render("p:Period  Esc:Back"))
	} else {
		b.WriteString(p.Help.Render("Up/Down:Scroll  p:Period  Esc:Back"))
	}

	return b.String()
}
