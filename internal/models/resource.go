package models

import (
	"time"
)

// ProjectResource is a named person on a project roster.
type ProjectResource struct {
	ID           string
	Name         string
	Role         string
	Grade        string
	HoursPerWeek int
	StartDate    time.Time
	EndDate      time.Time
}

// Experience is a past engagement on a resource's profile.
type Experience struct {
	ProjectName string
	Client      string
	Role        string
	StartDate   string
	EndDate     string
	Duration    string
}

// Allocation is a resource's weekly commitment to one project.
type Allocation struct {
	ProjectID    string
	ProjectName  string
	Client       string
	HoursPerWeek int
	Percentage   int // share of a standard week
	StartDate    time.Time
	EndDate      time.Time
}

// ResourceDetail is the full profile view of a roster resource.
type ResourceDetail struct {
	ProjectResource

	Email               string
	Department          string
	Location            string
	JoinDate            time.Time
	Skills              []string
	Certifications      []string
	Experience          []Experience
	CurrentAllocations  []Allocation
	TotalAllocatedHours int
	AvailableHours      int
}

// UtilizationPercent returns allocated hours as a share of weekHours.
func (d *ResourceDetail) UtilizationPercent(weekHours int) int {
	if weekHours <= 0 {
		return 0
	}
	return int(float64(d.TotalAllocatedHours)/float64(weekHours)*100 + 0.5)
}

// ResourceStatus tags where a resource's time is going.
type ResourceStatus string

const (
	StatusBillable ResourceStatus = "billable"
	StatusInternal ResourceStatus = "internal"
	StatusBench    ResourceStatus = "bench"
)

func (s ResourceStatus) String() string {
	return string(s)
}

// DirectoryEntry is one row of the company-wide resource directory.
type DirectoryEntry struct {
	ID         string
	Name       string
	Role       string
	Grade      string
	Location   string
	LocationID string
	ProjectID  string
	Status     ResourceStatus
}

// AvailableResource is a bench resource that can be staffed.
type AvailableResource struct {
	ID             string
	Name           string
	Role           string
	Grade          string
	Department     string
	Email          string
	Location       string
	LocationID     string
	Skills         []string
	AvailableHours int
}

// AvailabilityBucket groups available resources by free hours.
type AvailabilityBucket string

const (
	AvailabilityAny      AvailabilityBucket = ""
	AvailabilityFullTime AvailabilityBucket = "full-time"
	AvailabilityPartTime AvailabilityBucket = "part-time"
	AvailabilityLimited  AvailabilityBucket = "limited"
)

// Label returns a display label for the bucket.
func (b AvailabilityBucket) Label() string {
	switch b {
	case AvailabilityFullTime:
		return "Full-time (40h)"
	case AvailabilityPartTime:
		return "Part-time (20-39h)"
	case AvailabilityLimited:
		return "Limited (<20h)"
	default:
		return "All"
	}
}

// Matches reports whether hours fall into the bucket.
func (b AvailabilityBucket) Matches(hours int) bool {
	switch b {
	case AvailabilityFullTime:
		return hours >= 40
	case AvailabilityPartTime:
		return hours >= 20 && hours < 40
	case AvailabilityLimited:
		return hours < 20
	default:
		return true
	}
}
