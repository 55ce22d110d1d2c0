// Package people provides TUI views for individual resources: the profile
// page and the booking calendar.
package people

import (
	"fmt"
	"strings"

	"github.com/utilboard/utilboard/internal/models"
	"github.com/utilboard/utilboard/internal/services/workforce"
	"github.com/utilboard/utilboard/internal/tui/components"
	"github.com/utilboard/utilboard/internal/util"
)

const fieldWidth = 12

// DetailView displays one resource's profile.
type DetailView struct {
	service *workforce.Service
	detail  *models.ResourceDetail
	palette components.Palette
}

// NewDetailView creates a new profile view.
func NewDetailView(service *workforce.Service) *DetailView {
	return &DetailView{
		service: service,
		palette: components.DefaultPalette(),
	}
}

// SetPalette sets the render styles.
func (v *DetailView) SetPalette(p components.Palette) {
	v.palette = p
}

// SetResource loads a resource's profile. It reports false when the id is
// not on any roster.
func (v *DetailView) SetResource(resourceID string) bool {
	detail, ok := v.service.ResourceDetail(resourceID)
	if !ok {
		v.detail = nil
		return false
	}
	v.detail = detail
	return true
}

// Detail returns the displayed profile, or nil.
func (v *DetailView) Detail() *models.ResourceDetail {
	return v.detail
}

// Render renders the profile.
func (v *DetailView) Render(width, height int) string {
	p := v.palette
	d := v.detail

	if d == nil {
		return p.Label.Render("No resource selected")
	}

	var b strings.Builder

	b.WriteString(p.Title.Render("=== RESOURCE PROFILE ==="))
	b.WriteString("\n\n")

	b.WriteString(p.Section.Render(strings.ToUpper(d.Name)))
	b.WriteString(p.Muted.Render("  " + d.ID))
	b.WriteString("\n")
	profile := []string{
		p.Field("Role:", d.Role, fieldWidth),
		p.Field("Grade:", d.Grade, fieldWidth),
		p.Field("Email:", d.Email, fieldWidth),
		p.Field("Department:", d.Department, fieldWidth),
		p.Field("Location:", d.Location, fieldWidth),
		p.Field("Joined:", util.FormatDate(d.JoinDate), fieldWidth),
	}
	b.WriteString(strings.Join(profile, "\n"))
	b.WriteString("\n\n")

	weekHours := v.service.WeekHours()
	pct := d.UtilizationPercent(weekHours)
	style := p.Success
	switch {
	case pct > 100:
		style = p.Error
	case d.AvailableHours > 0:
		style = p.Warning
	}
	b.WriteString(p.Section.Render("UTILIZATION"))
	b.WriteString("\n")
	b.WriteString("  " + style.Render(components.Gauge(float64(d.TotalAllocatedHours), float64(weekHours), 32)))
	b.WriteString(p.Value.Render(fmt.Sprintf(" %dh of %dh (%d%%), %dh available", d.TotalAllocatedHours, weekHours, pct, d.AvailableHours)))
	b.WriteString("\n\n")

	b.WriteString(p.Section.Render("CURRENT ALLOCATIONS"))
	b.WriteString("\n")
	for _, a := range d.CurrentAllocations {
		b.WriteString(p.Value.Render(fmt.Sprintf("  %-28s %-18s %3dh %3d%%",
			components.Truncate(a.ProjectName, 28), components.Truncate(a.Client, 18), a.HoursPerWeek, a.Percentage)))
		b.WriteString(p.Muted.Render(fmt.Sprintf("  %s to %s", util.FormatDate(a.StartDate), util.FormatDate(a.EndDate))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(p.Section.Render("SKILLS"))
	b.WriteString("\n  ")
	b.WriteString(p.Value.Render(strings.Join(d.Skills, ", ")))
	b.WriteString("\n")
	b.WriteString(p.Section.Render("CERTIFICATIONS"))
	b.WriteString("\n  ")
	b.WriteString(p.Value.Render(strings.Join(d.Certifications, ", ")))
	b.WriteString("\n\n")

	b.WriteString(p.Section.Render("EXPERIENCE"))
	b.WriteString("\n")
	for _, e := range d.Experience {
		b.WriteString(p.Value.Render(fmt.Sprintf("  %-24s %-18s %-22s",
			components.Truncate(e.ProjectName, 24), components.Truncate(e.Client, 18), components.Truncate(e.Role, 22))))
		b.WriteString(p.Muted.Render(fmt.Sprintf(" %s to %s (%s)", e.StartDate, e.EndDate, e.Duration)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(p.Help.Render("Esc:Back  b:Bookings"))

	return b.String()
}
