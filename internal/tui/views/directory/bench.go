package directory

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/utilboard/utilboard/internal/models"
	"github.com/utilboard/utilboard/internal/seed"
	"github.com/utilboard/utilboard/internal/services/workforce"
	"github.com/utilboard/utilboard/internal/tui/components"
)

// benchChrome is the number of lines drawn around the table.
const benchChrome = 11

var benchColumns = []components.ColumnSpec{
	{Weight: 1.5, MinWidth: 14, Priority: 7},
	{Weight: 2, MinWidth: 14, Priority: 6},
	{Fixed: 9, Priority: 3},
	{Fixed: 11, Priority: 4},
	{Fixed: 13, Priority: 2},
	{Fixed: 6, Priority: 5},
	{Weight: 2, MinWidth: 12, Priority: 1},
}

var availabilityOptions = []models.AvailabilityBucket{
	models.AvailabilityAny,
	models.AvailabilityFullTime,
	models.AvailabilityPartTime,
	models.AvailabilityLimited,
}

// BenchView lists available resources with search and staffing filters.
type BenchView struct {
	service   *workforce.Service
	location  models.Location
	all       []models.AvailableResource
	resources []models.AvailableResource
	filter    workforce.BenchFilter
	family    string
	skill     string
	skills    []string
	table     *components.Table
	palette   components.Palette
}

// NewBenchView creates the bench view.
func NewBenchView(service *workforce.Service) *BenchView {
	table := components.NewTable([]components.Column{
		{Title: "Name", Width: 18},
		{Title: "Role", Width: 22},
		{Title: "Grade", Width: 9},
		{Title: "Job Family", Width: 11},
		{Title: "Location", Width: 13},
		{Title: "Avail", Width: 6, Align: lipgloss.Right},
		{Title: "Skills", Width: 24},
	})
	table.Focus(true)

	return &BenchView{
		service: service,
		skills:  allSkills(),
		table:   table,
		palette: components.DefaultPalette(),
	}
}

// allSkills returns every distinct skill in alphabetical order.
func allSkills() []string {
	var skills []string
	for _, list := range seed.RoleSkills {
		for _, s := range list {
			if !slices.Contains(skills, s) {
				skills = append(skills, s)
			}
		}
	}
	slices.Sort(skills)
	return skills
}

// SetPalette sets the render styles.
func (v *BenchView) SetPalette(p components.Palette) {
	v.palette = p
	v.table.SetStyles(p.Table)
}

// SetLocation loads the bench of a location.
func (v *BenchView) SetLocation(locationID string) {
	v.location = v.service.Location(locationID)
	v.all = v.service.AvailableResources(v.location.ID)
	v.apply()
}

// Resources returns the filtered bench.
func (v *BenchView) Resources() []models.AvailableResource {
	return v.resources
}

// Filter returns the active filter.
func (v *BenchView) Filter() workforce.BenchFilter {
	return v.filter
}

// SetSearch sets the name/role search term.
func (v *BenchView) SetSearch(term string) {
	v.filter.Search = term
	v.apply()
}

// CycleFamily advances the job family filter.
func (v *BenchView) CycleFamily() {
	v.family = cycle(v.family, seed.Departments)
	v.filter.Departments = nil
	if v.family != "" {
		v.filter.Departments = []string{v.family}
	}
	v.apply()
}

// CycleSkill advances the skill filter.
func (v *BenchView) CycleSkill() {
	v.skill = cycle(v.skill, v.skills)
	v.filter.Skills = nil
	if v.skill != "" {
		v.filter.Skills = []string{v.skill}
	}
	v.apply()
}

// CycleAvailability advances the availability filter.
func (v *BenchView) CycleAvailability() {
	for i, a := range availabilityOptions {
		if a == v.filter.Availability {
			v.filter.Availability = availabilityOptions[(i+1)%len(availabilityOptions)]
			break
		}
	}
	v.apply()
}

// ClearFilters removes all filters, including the search term.
func (v *BenchView) ClearFilters() {
	v.filter = workforce.BenchFilter{}
	v.family = ""
	v.skill = ""
	v.apply()
}

func (v *BenchView) apply() {
	v.resources = workforce.FilterBench(v.all, v.filter)

	rows := make([][]string, len(v.resources))
	for i, r := range v.resources {
		rows[i] = []string{
			r.Name,
			r.Role,
			r.Grade,
			r.Department,
			r.Location,
			fmt.Sprintf("%dh", r.AvailableHours),
			strings.Join(r.Skills, ", "),
		}
	}
	v.table.SetRows(rows)
	v.table.GoToTop()
}

// MoveUp moves the selection up.
func (v *BenchView) MoveUp() {
	v.table.MoveUp()
}

// MoveDown moves the selection down.
func (v *BenchView) MoveDown() {
	v.table.MoveDown()
}

// SelectedResource returns the currently selected resource.
func (v *BenchView) SelectedResource() *models.AvailableResource {
	idx := v.table.Selected()
	if idx >= 0 && idx < len(v.resources) {
		r := v.resources[idx]
		return &r
	}
	return nil
}

// Render renders the bench list. search is drawn above the filters when
// non-empty.
func (v *BenchView) Render(width, height int, search string) string {
	p := v.palette
	var b strings.Builder

	b.WriteString(p.Title.Render("=== BENCH ==="))
	b.WriteString("\n\n")

	b.WriteString(p.Label.Render("Location: "))
	b.WriteString(p.Value.Render(v.location.Name))
	b.WriteString(p.Muted.Render(fmt.Sprintf("  %d of %d available, %dh/week open",
		len(v.resources), len(v.all), workforce.BenchHours(v.resources))))
	b.WriteString("\n")

	if search != "" {
		b.WriteString(search)
	} else {
		b.WriteString(p.Label.Render("Search: " + orAll(v.filter.Search)))
	}
	b.WriteString(p.Label.Render(fmt.Sprintf("  Family: %s  Skill: %s  Availability: %s",
		orAll(v.family), orAll(v.skill), v.filter.Availability.Label())))
	b.WriteString("\n\n")

	if v.table.Empty() {
		b.WriteString(p.Label.Render("No available resources."))
		b.WriteString("\n")
	} else {
		v.table.SetColumnWidths(components.CalculateColumnWidths(benchColumns, width, 3))
		v.table.SetVisibleRows(height - benchChrome)
		b.WriteString(v.table.Render())
	}

	b.WriteString("\n")
	if width < 80 {
		b.WriteString(p.Help.Render("/:Search  f/t/v:Filter  x:Clear"))
	} else {
		b.WriteString(p.Help.Render("Up/Down:Select  Enter:Profile  /:Search  f:Family  t:Skill  v:Availability  l:Location  x:Clear"))
	}

	return b.String()
}
