package testutil

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/utilboard/utilboard/internal/models"
)

// FixtureTime is the instant fixtures are generated for.
var FixtureTime = time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)

// FixtureSnapshot creates a small, valid snapshot with one office, two
// projects, three resources and a four-week forecast.
func FixtureSnapshot(overrides ...func(*models.SnapshotData)) *models.SnapshotData {
	id, _ := uuid.NewV7()

	snap := &models.SnapshotData{
		Snapshot: models.Snapshot{
			ID:            id.String(),
			TakenAt:       FixtureTime,
			AsOf:          FixtureTime,
			LocationID:    "nyc",
			ForecastWeeks: 4,
		},
		Locations: []models.SnapshotLocation{
			{
				Location: models.Location{ID: "nyc", Name: "New York", TotalResources: 150, Billable: 110, Internal: 25, Bench: 15},
				Health:   models.HealthCritical,
			},
		},
		Projects: []models.SnapshotProject{
			{BillableProject: FixtureProject(), LocationID: "nyc"},
			{BillableProject: FixtureProject(func(p *models.BillableProject) {
				p.ID = "nyc-test-two"
				p.Status = models.ProjectRampingUp
			}), LocationID: "nyc"},
		},
		Resources: []models.SnapshotResource{
			FixtureResource(0, models.StatusBillable),
			FixtureResource(1, models.StatusInternal),
			FixtureResource(2, models.StatusBench),
		},
		Forecast: []models.ForecastPoint{
			{PeriodLabel: "Oct 12", Billable: 73.3, Internal: 16.7, Bench: 10},
			{PeriodLabel: "Oct 19", Billable: 75.1, Internal: 15.2, Bench: 9.7},
			{PeriodLabel: "Oct 26", Billable: 71.8, Internal: 17.9, Bench: 10.3},
			{PeriodLabel: "Nov 2", Billable: 74.0, Internal: 16.0, Bench: 10},
		},
	}

	for _, override := range overrides {
		override(snap)
	}

	return snap
}

// FixtureProject creates a test billable project.
func FixtureProject(overrides ...func(*models.BillableProject)) models.BillableProject {
	p := models.BillableProject{
		ID:            "nyc-test-one",
		Name:          "Test Platform",
		Client:        "Test Client",
		ResourceCount: 3,
		Contribution:  40,
		Status:        models.ProjectActive,
	}

	for _, override := range overrides {
		override(&p)
	}

	return p
}

// FixtureResource creates the i-th resource of the first fixture project.
func FixtureResource(i int, status models.ResourceStatus) models.SnapshotResource {
	return models.SnapshotResource{
		DirectoryEntry: models.DirectoryEntry{
			ID:         fmt.Sprintf("nyc-test-one-res-%d", i),
			Name:       "Ava Chen",
			Role:       "Developer",
			Grade:      "Mid",
			Location:   "New York",
			LocationID: "nyc",
			ProjectID:  "nyc-test-one",
			Status:     status,
		},
		HoursPerWeek: 32,
	}
}
