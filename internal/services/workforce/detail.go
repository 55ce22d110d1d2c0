package workforce

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/utilboard/utilboard/internal/models"
	"github.com/utilboard/utilboard/internal/seed"
	"github.com/utilboard/utilboard/internal/util"
)

const (
	maxCertifications = 2
	minExperience     = 2
	experienceRange   = 3
	latestEngagement  = 2023
)

// ResourceDetail builds the profile of a roster resource. It searches every
// project roster and reports false when no roster holds resourceID.
func (s *Service) ResourceDetail(resourceID string) (*models.ResourceDetail, bool) {
	resource, project, office, ok := s.findResource(resourceID)
	if !ok {
		return nil, false
	}

	code := util.CharCode(resourceID, 0)

	detail := &models.ResourceDetail{
		ProjectResource: resource,
		Email:           emailFor(resource.Name),
		Department:      departmentFor(resourceID),
		Location:        office.Name,
		JoinDate:        joinDateFor(resourceID),
		Skills:          skillsFor(resource.Role),
		Certifications:  certificationsFor(code),
		Experience:      experienceFor(code),
	}

	detail.CurrentAllocations = append(detail.CurrentAllocations, s.allocation(project, resource.HoursPerWeek, resource))
	if resource.HoursPerWeek < s.cfg.WeekHours && util.IsEven(resourceID) {
		if other, ok := s.firstProjectOtherThan(project.ID); ok {
			detail.CurrentAllocations = append(detail.CurrentAllocations,
				s.allocation(other, s.cfg.WeekHours-resource.HoursPerWeek, resource))
		}
	}

	for _, a := range detail.CurrentAllocations {
		detail.TotalAllocatedHours += a.HoursPerWeek
	}
	detail.AvailableHours = max(0, s.cfg.WeekHours-detail.TotalAllocatedHours)

	return detail, true
}

// findResource locates a resource and its owning project and office.
func (s *Service) findResource(resourceID string) (models.ProjectResource, models.BillableProject, models.Location, bool) {
	var (
		found   models.ProjectResource
		project models.BillableProject
		office  models.Location
		ok      bool
	)

	s.eachProject(func(loc models.Location, p models.BillableProject) bool {
		for _, r := range s.GenerateRoster(p.ID, p.ResourceCount) {
			if r.ID == resourceID {
				found, project, office, ok = r, p, loc, true
				return false
			}
		}
		return true
	})

	return found, project, office, ok
}

func (s *Service) firstProjectOtherThan(projectID string) (models.BillableProject, bool) {
	var (
		other models.BillableProject
		ok    bool
	)
	s.eachProject(func(_ models.Location, p models.BillableProject) bool {
		if p.ID != projectID {
			other, ok = p, true
			return false
		}
		return true
	})
	return other, ok
}

func (s *Service) allocation(p models.BillableProject, hours int, r models.ProjectResource) models.Allocation {
	return models.Allocation{
		ProjectID:    p.ID,
		ProjectName:  p.Name,
		Client:       p.Client,
		HoursPerWeek: hours,
		Percentage:   percentOf(hours, s.cfg.WeekHours),
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
	}
}

// skillsFor returns the skill set of a role, defaulting to the developer set.
func skillsFor(role string) []string {
	skills, ok := seed.RoleSkills[role]
	if !ok {
		skills = seed.RoleSkills[seed.DefaultRole]
	}
	return slices.Clone(skills)
}

func certificationsFor(code int) []string {
	certs := make([]string, 0, maxCertifications)
	for i, c := range seed.Certifications {
		if (code+i)%3 != 0 {
			continue
		}
		certs = append(certs, c)
		if len(certs) == maxCertifications {
			break
		}
	}
	return certs
}

func experienceFor(code int) []models.Experience {
	n := code%experienceRange + minExperience

	history := make([]models.Experience, 0, n)
	for i := 0; i < n; i++ {
		client := seed.PastClients[(i+code)%len(seed.PastClients)]
		endYear := latestEngagement - i*2
		history = append(history, models.Experience{
			ProjectName: client + " " + seed.ProjectSuffixes[i%len(seed.ProjectSuffixes)],
			Client:      client,
			Role:        seed.Roles[(i+code)%len(seed.Roles)],
			StartDate:   fmt.Sprintf("%s %d", seed.MonthAbbrev[(code+i*5)%12], endYear-1),
			EndDate:     fmt.Sprintf("%s %d", seed.MonthAbbrev[(code+i)%12], endYear),
			Duration:    fmt.Sprintf("%d months", 6+i*3),
		})
	}
	return history
}

func emailFor(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), ".")) + "@" + seed.EmailDomain
}

func departmentFor(resourceID string) string {
	return seed.Departments[util.Mix(resourceID, 0, -1)%len(seed.Departments)]
}

func joinDateFor(resourceID string) time.Time {
	year := 2016 + util.Mix(resourceID, 1)%7
	month := time.Month(util.Mix(resourceID, 2)%12 + 1)
	day := util.Mix(resourceID, 0, -2)%28 + 1
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
