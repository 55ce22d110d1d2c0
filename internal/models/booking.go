package models

import (
	"time"
)

// ProjectHours is the time a resource books to one project in a week.
type ProjectHours struct {
	ProjectID   string
	ProjectName string
	Client      string
	Hours       int
}

// WeeklyBooking is one Monday-to-Friday bucket of a booking calendar.
type WeeklyBooking struct {
	WeekStart  time.Time
	WeekEnd    time.Time
	Projects   []ProjectHours
	TotalHours int
}

// ProjectSummary totals a project's hours over a whole booking range.
type ProjectSummary struct {
	ProjectID   string
	ProjectName string
	Client      string
	TotalHours  int
	Percentage  int
}

// PeriodBookingData is a resource's booking calendar over a date range.
type PeriodBookingData struct {
	ResourceID     string
	StartDate      time.Time
	EndDate        time.Time
	Weeks          []WeeklyBooking
	ProjectSummary []ProjectSummary
	TotalHours     int
}
