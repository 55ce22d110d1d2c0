package workforce

import (
	"cmp"
	"slices"
	"strings"

	"github.com/utilboard/utilboard/internal/models"
	"github.com/utilboard/utilboard/internal/util"
)

// benchHours are the free weekly hours a bench resource can report.
var benchHours = []int{40, 32, 24, 16}

// directoryStatus tags the k-th resource of the company directory. Seven in
// every ten are billable, two internal and one on the bench.
func directoryStatus(k int) models.ResourceStatus {
	switch k % 10 {
	case 7, 8:
		return models.StatusInternal
	case 9:
		return models.StatusBench
	default:
		return models.StatusBillable
	}
}

// AllResources lists every roster resource across every office project,
// offices in location order.
func (s *Service) AllResources() []models.DirectoryEntry {
	var entries []models.DirectoryEntry
	s.eachProject(func(office models.Location, p models.BillableProject) bool {
		for _, r := range s.GenerateRoster(p.ID, p.ResourceCount) {
			entries = append(entries, models.DirectoryEntry{
				ID:         r.ID,
				Name:       r.Name,
				Role:       r.Role,
				Grade:      r.Grade,
				Location:   office.Name,
				LocationID: office.ID,
				ProjectID:  p.ID,
				Status:     directoryStatus(len(entries)),
			})
		}
		return true
	})
	return entries
}

// AvailableResources lists the bench resources of a location. The aggregate
// id, and any unknown id, covers every office.
func (s *Service) AvailableResources(locationID string) []models.AvailableResource {
	loc := s.Location(locationID)

	available := []models.AvailableResource{}
	for _, e := range s.AllResources() {
		if e.Status != models.StatusBench {
			continue
		}
		if !loc.IsAggregate() && e.LocationID != loc.ID {
			continue
		}
		available = append(available, models.AvailableResource{
			ID:             e.ID,
			Name:           e.Name,
			Role:           e.Role,
			Grade:          e.Grade,
			Department:     departmentFor(e.ID),
			Email:          emailFor(e.Name),
			Location:       e.Location,
			LocationID:     e.LocationID,
			Skills:         skillsFor(e.Role),
			AvailableHours: benchHours[util.Mix(e.ID, 0, -1)%len(benchHours)],
		})
	}
	return available
}

// ============================================================================
// DIRECTORY FILTERING
// ============================================================================

// DirectoryFilter narrows the directory. Empty fields match everything.
type DirectoryFilter struct {
	Role     string
	Grade    string
	Location string // office name
	Status   models.ResourceStatus
}

// Match reports whether an entry passes the filter.
func (f DirectoryFilter) Match(e models.DirectoryEntry) bool {
	if f.Role != "" && e.Role != f.Role {
		return false
	}
	if f.Grade != "" && e.Grade != f.Grade {
		return false
	}
	if f.Location != "" && e.Location != f.Location {
		return false
	}
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	return true
}

// FilterDirectory returns the entries that pass f, in their original order.
func FilterDirectory(entries []models.DirectoryEntry, f DirectoryFilter) []models.DirectoryEntry {
	out := make([]models.DirectoryEntry, 0, len(entries))
	for _, e := range entries {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

// DirectorySortKey selects the directory column to sort by.
type DirectorySortKey string

const (
	SortByName     DirectorySortKey = "name"
	SortByRole     DirectorySortKey = "role"
	SortByGrade    DirectorySortKey = "grade"
	SortByLocation DirectorySortKey = "location"
	SortByStatus   DirectorySortKey = "status"
)

// DirectorySortKeys lists the sort keys in column order.
var DirectorySortKeys = []DirectorySortKey{SortByName, SortByRole, SortByGrade, SortByLocation, SortByStatus}

// SortDirectory sorts entries in place by key. Ties keep their original order.
func SortDirectory(entries []models.DirectoryEntry, key DirectorySortKey, dir models.SortDirection) {
	field := func(e models.DirectoryEntry) string {
		switch key {
		case SortByRole:
			return e.Role
		case SortByGrade:
			return e.Grade
		case SortByLocation:
			return e.Location
		case SortByStatus:
			return string(e.Status)
		default:
			return e.Name
		}
	}

	slices.SortStableFunc(entries, func(a, b models.DirectoryEntry) int {
		c := cmp.Compare(field(a), field(b))
		if dir == models.SortDesc {
			return -c
		}
		return c
	})
}

// StatusCounts tallies entries by status.
func StatusCounts(entries []models.DirectoryEntry) map[models.ResourceStatus]int {
	counts := map[models.ResourceStatus]int{
		models.StatusBillable: 0,
		models.StatusInternal: 0,
		models.StatusBench:    0,
	}
	for _, e := range entries {
		counts[e.Status]++
	}
	return counts
}

// ============================================================================
// BENCH FILTERING
// ============================================================================

// BenchFilter narrows the list of available resources.
type BenchFilter struct {
	Search       string   // matched against name and role
	Departments  []string // job families; empty matches all
	Skills       []string // any skill may match, by substring
	Availability models.AvailabilityBucket
}

// Match reports whether a resource passes the filter. All text matching is
// case-insensitive.
func (f BenchFilter) Match(r models.AvailableResource) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !strings.Contains(strings.ToLower(r.Name), q) && !strings.Contains(strings.ToLower(r.Role), q) {
			return false
		}
	}

	if len(f.Departments) > 0 && !slices.Contains(f.Departments, r.Department) {
		return false
	}

	if len(f.Skills) > 0 && !hasAnySkill(r.Skills, f.Skills) {
		return false
	}

	return f.Availability.Matches(r.AvailableHours)
}

// FilterBench returns the resources that pass f.
func FilterBench(resources []models.AvailableResource, f BenchFilter) []models.AvailableResource {
	out := make([]models.AvailableResource, 0, len(resources))
	for _, r := range resources {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// BenchHours sums the available hours of a bench list.
func BenchHours(resources []models.AvailableResource) int {
	total := 0
	for _, r := range resources {
		total += r.AvailableHours
	}
	return total
}

func hasAnySkill(have, want []string) bool {
	for _, w := range want {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		for _, h := range have {
			if strings.Contains(strings.ToLower(h), w) {
				return true
			}
		}
	}
	return false
}
