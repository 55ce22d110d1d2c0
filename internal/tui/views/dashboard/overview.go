// Package dashboard provides the utilization overview view.
package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/utilboard/utilboard/internal/models"
	"github.com/utilboard/utilboard/internal/services/workforce"
	"github.com/utilboard/utilboard/internal/tui/components"
)

// overviewChrome is the number of lines the overview draws around the
// forecast table.
const overviewChrome = 17

const labelWidth = 11

var forecastColumns = []components.ColumnSpec{
	{Fixed: 10, Priority: 5},
	{Fixed: 9, Priority: 4},
	{Fixed: 9, Priority: 3},
	{Fixed: 9, Priority: 2},
	{Weight: 1, MinWidth: 12, Priority: 1},
}

// OverviewView shows the selected location's headcount, health and the
// weekly utilization forecast.
type OverviewView struct {
	service   *workforce.Service
	locations []models.Location
	locIdx    int
	spanIdx   int
	forecast  []models.ForecastPoint
	table     *components.Table
	palette   components.Palette
}

// NewOverviewView creates the overview starting at locationID with the
// forecast horizon closest to forecastWeeks.
func NewOverviewView(service *workforce.Service, locationID string, forecastWeeks int) *OverviewView {
	table := components.NewTable([]components.Column{
		{Title: "Week", Width: 10},
		{Title: "Billable", Width: 9, Align: lipgloss.Right},
		{Title: "Internal", Width: 9, Align: lipgloss.Right},
		{Title: "Bench", Width: 9, Align: lipgloss.Right},
		{Title: "Mix", Width: 20},
	})
	table.Focus(false)

	v := &OverviewView{
		service:   service,
		locations: service.Locations(),
		spanIdx:   workforce.SpanForWeeks(forecastWeeks),
		table:     table,
		palette:   components.DefaultPalette(),
	}
	v.SetLocation(locationID)
	return v
}

// SetPalette sets the render styles.
func (v *OverviewView) SetPalette(p components.Palette) {
	v.palette = p
	v.table.SetStyles(p.Table)
}

// SetLocation selects a location by id. Unknown ids select the first one.
func (v *OverviewView) SetLocation(id string) {
	v.locIdx = 0
	for i, loc := range v.locations {
		if loc.ID == id {
			v.locIdx = i
			break
		}
	}
	v.Refresh()
}

// CycleLocation advances to the next location.
func (v *OverviewView) CycleLocation() {
	if len(v.locations) == 0 {
		return
	}
	v.locIdx = (v.locIdx + 1) % len(v.locations)
	v.Refresh()
}

// CycleSpan advances to the next forecast horizon.
func (v *OverviewView) CycleSpan() {
	v.spanIdx = (v.spanIdx + 1) % len(workforce.ForecastSpans)
	v.Refresh()
}

// Location returns the selected location.
func (v *OverviewView) Location() models.Location {
	if len(v.locations) == 0 {
		return models.Location{}
	}
	return v.locations[v.locIdx]
}

// Span returns the selected forecast horizon.
func (v *OverviewView) Span() workforce.ForecastSpan {
	return workforce.ForecastSpans[v.spanIdx]
}

// Forecast returns the displayed series.
func (v *OverviewView) Forecast() []models.ForecastPoint {
	return v.forecast
}

// Refresh regenerates the forecast for the current selection.
func (v *OverviewView) Refresh() {
	v.forecast = v.service.GenerateForecast(v.Span().Weeks, v.Location().ID)
	cols := v.table.Columns()
	v.setRows(cols[len(cols)-1].Width)
	v.table.GoToTop()
}

// ScrollUp scrolls the forecast table.
func (v *OverviewView) ScrollUp() {
	v.table.MoveUp()
}

// ScrollDown scrolls the forecast table.
func (v *OverviewView) ScrollDown() {
	v.table.MoveDown()
}

// Render renders the overview.
func (v *OverviewView) Render(width, height int) string {
	p := v.palette
	loc := v.Location()
	rates := loc.Rates()
	health := workforce.LocationHealth(loc)

	var b strings.Builder

	b.WriteString(p.Title.Render("=== UTILIZATION OVERVIEW ==="))
	b.WriteString("\n\n")

	b.WriteString(p.Field("Location:", fmt.Sprintf("%s (%d/%d)", loc.Name, v.locIdx+1, len(v.locations)), labelWidth))
	b.WriteString("\n")
	b.WriteString(p.Label.Render(components.PadRight("Health:", labelWidth)) + " " + v.healthStyle(health.Status).Render(strings.ToUpper(health.Status.String())))
	b.WriteString(p.Muted.Render("  " + health.Message))
	b.WriteString("\n\n")

	b.WriteString(p.Section.Render("HEADCOUNT"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		p.Field("Total", fmt.Sprintf("%d", loc.TotalResources), 5),
		p.Field("Billable", fmt.Sprintf("%d (%.1f%%)", loc.Billable, rates.Billable), 8),
		p.Field("Internal", fmt.Sprintf("%d (%.1f%%)", loc.Internal, rates.Internal), 8),
		p.Field("Bench", fmt.Sprintf("%d (%.1f%%)", loc.Bench, rates.Bench), 5),
	))

	barWidth := max(min(width-24, 60), 10)
	b.WriteString("  " + p.Label.Render(components.PadRight("Utilization", labelWidth)) + " " +
		v.healthStyle(health.Status).Render(components.Gauge(rates.Utilization, 100, barWidth)) +
		p.Value.Render(fmt.Sprintf(" %.1f%%", rates.Utilization)))
	b.WriteString("\n")
	b.WriteString("  " + p.Label.Render(components.PadRight("Mix", labelWidth)) + " [" +
		components.StackedBar(barWidth-2, []float64{rates.Billable, rates.Internal, rates.Bench},
			[]lipgloss.Style{p.Success, p.Warning, p.Error}) + "]")
	b.WriteString("\n\n")

	span := v.Span()
	b.WriteString(p.Section.Render(fmt.Sprintf("FORECAST (%d months / %d weeks)", span.Months, span.Weeks)))
	b.WriteString("\n")

	if len(v.forecast) == 0 {
		b.WriteString(p.Label.Render("No forecast available."))
		b.WriteString("\n")
	} else {
		widths := components.CalculateColumnWidths(forecastColumns, width, 3)
		v.table.SetColumnWidths(widths)
		v.setRows(widths[len(widths)-1])
		v.table.SetVisibleRows(height - overviewChrome)
		b.WriteString(v.table.Render())
		b.WriteString(p.Muted.Render(v.averages()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if width < 80 {
		b.WriteString(p.Help.Render("l:Loc  p:Period  Up/Dn:Scroll"))
	} else {
		b.WriteString(p.Help.Render("l:Location  p:Period  Up/Down:Scroll  F3:Projects  F5:Bench"))
	}

	return b.String()
}

// setRows fills the table, drawing a stacked bar of mixWidth per week.
func (v *OverviewView) setRows(mixWidth int) {
	rows := make([][]string, len(v.forecast))
	for i, pt := range v.forecast {
		rows[i] = []string{
			pt.PeriodLabel,
			fmt.Sprintf("%.1f%%", pt.Billable),
			fmt.Sprintf("%.1f%%", pt.Internal),
			fmt.Sprintf("%.1f%%", pt.Bench),
			components.StackedBar(mixWidth, []float64{pt.Billable, pt.Internal, pt.Bench}, nil),
		}
	}
	v.table.SetRows(rows)
}

func (v *OverviewView) averages() string {
	var billable, internal float64
	for _, pt := range v.forecast {
		billable += pt.Billable
		internal += pt.Internal
	}
	n := float64(len(v.forecast))
	return fmt.Sprintf(" Avg billable %.1f%% | Avg utilization %.1f%%", billable/n, (billable+internal)/n)
}

func (v *OverviewView) healthStyle(level models.HealthLevel) lipgloss.Style {
	switch level {
	case models.HealthCritical:
		return v.palette.Error.Bold(true)
	case models.HealthWarning:
		return v.palette.Warning.Bold(true)
	default:
		return v.palette.Success.Bold(true)
	}
}
