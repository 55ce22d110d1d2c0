package workforce

import (
	"time"

	"github.com/utilboard/utilboard/internal/models"
	"github.com/utilboard/utilboard/internal/util"
)

// bookingSpread bounds the weekly deviation from an allocation's hours.
const bookingSpread = 2

// ResourceBookings builds the weekly booking calendar of a resource between
// start and end. The first bucket starts on the Monday of start's week and
// buckets continue while their Monday falls on or before end. It reports
// false when the resource is unknown.
func (s *Service) ResourceBookings(resourceID string, start, end time.Time) (*models.PeriodBookingData, bool) {
	detail, ok := s.ResourceDetail(resourceID)
	if !ok {
		return nil, false
	}

	code := util.CharCode(resourceID, 0)
	totals := make(map[string]int, len(detail.CurrentAllocations))

	data := &models.PeriodBookingData{
		ResourceID: resourceID,
		StartDate:  start,
		EndDate:    end,
		Weeks:      []models.WeeklyBooking{},
	}

	for cursor := util.WeekStart(start); util.NotAfterDay(cursor, end); cursor = cursor.AddDate(0, 0, util.DaysPerWeek) {
		week := models.WeeklyBooking{
			WeekStart: cursor,
			WeekEnd:   util.WeekEnd(cursor),
			Projects:  make([]models.ProjectHours, 0, len(detail.CurrentAllocations)),
		}

		variance := util.Variance(code+cursor.Day(), bookingSpread)
		for _, a := range detail.CurrentAllocations {
			hours := max(0, a.HoursPerWeek+variance)
			week.Projects = append(week.Projects, models.ProjectHours{
				ProjectID:   a.ProjectID,
				ProjectName: a.ProjectName,
				Client:      a.Client,
				Hours:       hours,
			})
			week.TotalHours += hours
			totals[a.ProjectID] += hours
		}

		data.Weeks = append(data.Weeks, week)
		data.TotalHours += week.TotalHours
	}

	data.ProjectSummary = make([]models.ProjectSummary, 0, len(detail.CurrentAllocations))
	for _, a := range detail.CurrentAllocations {
		data.ProjectSummary = append(data.ProjectSummary, models.ProjectSummary{
			ProjectID:   a.ProjectID,
			ProjectName: a.ProjectName,
			Client:      a.Client,
			TotalHours:  totals[a.ProjectID],
			Percentage:  percentOf(totals[a.ProjectID], data.TotalHours),
		})
	}

	return data, true
}
