// Package workforce synthesizes utilization data for the dashboard: project
// rosters, weekly forecasts, resource profiles, booking calendars and the
// company-wide directory. Everything is derived from the seed tables, so the
// same inputs always produce the same output.
package workforce

import (
	"log/slog"
	"slices"
	"time"

	"github.com/utilboard/utilboard/internal/models"
	"github.com/utilboard/utilboard/internal/seed"
	"github.com/utilboard/utilboard/internal/util"
)

// Config configures the workforce engine.
type Config struct {
	// RosterStart and RosterEnd bound every generated roster assignment.
	RosterStart time.Time
	RosterEnd   time.Time

	// WeekHours is the length of a standard working week.
	WeekHours int
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		RosterStart: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		RosterEnd:   time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
		WeekHours:   40,
	}
}

// Service provides the workforce queries consumed by the dashboard.
type Service struct {
	cfg    Config
	clock  *util.Clock
	cache  *RosterCache
	logger *slog.Logger

	locations  []models.Location
	byLocation map[string][]models.BillableProject
}

// NewService creates a workforce service over the static seed tables.
// A nil cache gets a fresh one; a nil clock follows wall time.
func NewService(cfg Config, clock *util.Clock, cache *RosterCache) *Service {
	if cfg.WeekHours <= 0 {
		cfg.WeekHours = DefaultConfig().WeekHours
	}
	if clock == nil {
		clock = util.NewClock(time.Time{})
	}
	if cache == nil {
		cache = NewRosterCache()
	}

	return &Service{
		cfg:        cfg,
		clock:      clock,
		cache:      cache,
		logger:     slog.Default().With("component", "workforce"),
		locations:  seed.Locations,
		byLocation: seed.ProjectsByLocation,
	}
}

// WeekHours returns the standard week length used for allocations.
func (s *Service) WeekHours() int {
	return s.cfg.WeekHours
}

// Now returns the service clock's current time.
func (s *Service) Now() time.Time {
	return s.clock.Now()
}

// ============================================================================
// LOCATIONS & PROJECTS
// ============================================================================

// Locations returns every location, the aggregate first.
func (s *Service) Locations() []models.Location {
	return slices.Clone(s.locations)
}

// Offices returns every concrete office, without the aggregate.
func (s *Service) Offices() []models.Location {
	offices := make([]models.Location, 0, len(s.locations))
	for _, loc := range s.locations {
		if !loc.IsAggregate() {
			offices = append(offices, loc)
		}
	}
	return offices
}

// Location looks up a location by id, falling back to the first (aggregate)
// location when the id is unknown.
func (s *Service) Location(id string) models.Location {
	for _, loc := range s.locations {
		if loc.ID == id {
			return loc
		}
	}
	return s.locations[0]
}

// ProjectsForLocation returns a location's billable projects, falling back to
// the aggregate list when the id is unknown.
func (s *Service) ProjectsForLocation(locationID string) []models.BillableProject {
	projects, ok := s.byLocation[locationID]
	if !ok {
		projects = s.byLocation[models.AllLocationsID]
	}
	return slices.Clone(projects)
}

// ProjectByID finds a project across every office.
func (s *Service) ProjectByID(projectID string) (models.BillableProject, bool) {
	project, _, ok := s.projectWithOffice(projectID)
	return project, ok
}

// projectWithOffice finds a project and the office that staffs it.
func (s *Service) projectWithOffice(projectID string) (models.BillableProject, models.Location, bool) {
	for _, office := range s.Offices() {
		for _, p := range s.byLocation[office.ID] {
			if p.ID == projectID {
				return p, office, true
			}
		}
	}
	return models.BillableProject{}, models.Location{}, false
}

// eachProject visits every office project in iteration order: offices in
// Locations order, projects in seed order. Returning false stops the walk.
func (s *Service) eachProject(visit func(office models.Location, project models.BillableProject) bool) {
	for _, office := range s.Offices() {
		for _, p := range s.byLocation[office.ID] {
			if !visit(office, p) {
				return
			}
		}
	}
}
