package models

import (
	"errors"
	"time"
)

// Snapshot describes one exported copy of the dashboard data.
type Snapshot struct {
	ID            string
	TakenAt       time.Time
	AsOf          time.Time // dashboard "now" the data was generated for
	LocationID    string    // location the forecast covers
	ForecastWeeks int
	ProjectCount  int
	ResourceCount int
}

// SnapshotLocation is a location with the health it had when exported.
type SnapshotLocation struct {
	Location
	Health HealthLevel
}

// SnapshotProject is a billable project with its owning office.
type SnapshotProject struct {
	BillableProject
	LocationID string
}

// SnapshotResource is a directory entry with its weekly hours.
type SnapshotResource struct {
	DirectoryEntry
	HoursPerWeek int
}

// SnapshotData is a snapshot header with everything it captured.
type SnapshotData struct {
	Snapshot
	Locations []SnapshotLocation
	Projects  []SnapshotProject
	Resources []SnapshotResource
	Forecast  []ForecastPoint
}

// Validate checks the snapshot header and the captured counts.
func (s *SnapshotData) Validate() error {
	var errs []error

	if s.ID == "" {
		errs = append(errs, errors.New("id is required"))
	}
	if s.TakenAt.IsZero() {
		errs = append(errs, errors.New("taken_at is required"))
	}
	if s.LocationID == "" {
		errs = append(errs, errors.New("location_id is required"))
	}
	if s.ForecastWeeks != len(s.Forecast) {
		errs = append(errs, errors.New("forecast_weeks does not match forecast length"))
	}

	return errors.Join(errs...)
}

// SnapshotList is a page of snapshot headers, newest first.
type SnapshotList struct {
	Snapshots  []*Snapshot
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}
