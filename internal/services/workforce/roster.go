package workforce

import (
	"fmt"
	"slices"

	"github.com/utilboard/utilboard/internal/models"
	"github.com/utilboard/utilboard/internal/seed"
	"github.com/utilboard/utilboard/internal/util"
)

// Selection strides for roster fields. Each field starts from its own fold
// of the whole project id and advances by its own step so neighbouring
// resources differ in more than one attribute.
const (
	firstNameStep = 7
	lastNameStep  = 5
	roleStep      = 3
	gradeStep     = 2
	hoursStep     = 3
)

// GenerateRoster returns a copy of the roster of projectID with count
// resources. The first call for a project builds and caches the roster;
// later calls return the cached roster whatever count they pass. Unknown
// projects yield an empty roster.
func (s *Service) GenerateRoster(projectID string, count int) []models.ProjectResource {
	if _, ok := s.ProjectByID(projectID); !ok {
		return []models.ProjectResource{}
	}

	resources, filled := s.cache.GetOrFill(projectID, func() []models.ProjectResource {
		return s.buildRoster(projectID, count)
	})
	if filled {
		s.logger.Debug("roster generated", "project", projectID, "resources", len(resources))
	}

	return slices.Clone(resources)
}

// ProjectResources returns the roster for projectID, sized by the
// project's resource count.
func (s *Service) ProjectResources(projectID string) []models.ProjectResource {
	project, ok := s.ProjectByID(projectID)
	if !ok {
		return []models.ProjectResource{}
	}
	return s.GenerateRoster(project.ID, project.ResourceCount)
}

func (s *Service) buildRoster(projectID string, count int) []models.ProjectResource {
	if count < 0 {
		count = 0
	}

	resources := make([]models.ProjectResource, 0, count)
	for i := 0; i < count; i++ {
		first := seed.FirstNames[util.Pick(projectID, 0, firstNameStep, i, len(seed.FirstNames))]
		last := seed.LastNames[util.Pick(projectID, 1, lastNameStep, i, len(seed.LastNames))]

		resources = append(resources, models.ProjectResource{
			ID:           fmt.Sprintf("%s-res-%d", projectID, i),
			Name:         first + " " + last,
			Role:         seed.Roles[util.Pick(projectID, 2, roleStep, i, len(seed.Roles))],
			Grade:        seed.Grades[util.Pick(projectID, 3, gradeStep, i, len(seed.Grades))],
			HoursPerWeek: seed.HoursOptions[util.Pick(projectID, 4, hoursStep, i, len(seed.HoursOptions))],
			StartDate:    s.cfg.RosterStart,
			EndDate:      s.cfg.RosterEnd,
		})
	}

	return resources
}
