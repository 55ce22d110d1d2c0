package models

import (
	"errors"
	"fmt"
)

// AllLocationsID is the id of the aggregate location covering every office.
const AllLocationsID = "all"

// Location is an office with aggregate headcounts.
// Billable+Internal+Bench is not guaranteed to equal TotalResources.
type Location struct {
	ID             string
	Name           string
	TotalResources int
	Billable       int
	Internal       int
	Bench          int
}

// IsAggregate reports whether the location summarizes every office.
func (l Location) IsAggregate() bool {
	return l.ID == AllLocationsID
}

// Validate checks the location's headcounts.
func (l Location) Validate() error {
	var errs []error

	if l.ID == "" {
		errs = append(errs, errors.New("id is required"))
	}
	if l.TotalResources <= 0 {
		errs = append(errs, errors.New("total resources must be positive"))
	}
	if l.Billable < 0 || l.Internal < 0 || l.Bench < 0 {
		errs = append(errs, errors.New("headcounts must be non-negative"))
	}
	if sum := l.Billable + l.Internal + l.Bench; sum > l.TotalResources {
		errs = append(errs, fmt.Errorf("headcounts sum %d exceeds total %d", sum, l.TotalResources))
	}

	return errors.Join(errs...)
}

// Rates holds a location's headcounts expressed as percentages of its total.
type Rates struct {
	Billable    float64
	Internal    float64
	Bench       float64
	Utilization float64
}

// Rates converts the location's headcounts to percentages.
func (l Location) Rates() Rates {
	if l.TotalResources == 0 {
		return Rates{}
	}
	total := float64(l.TotalResources)
	r := Rates{
		Billable: float64(l.Billable) / total * 100,
		Internal: float64(l.Internal) / total * 100,
		Bench:    float64(l.Bench) / total * 100,
	}
	r.Utilization = r.Billable + r.Internal
	return r
}

// ProjectStatus is the lifecycle stage of a billable project.
type ProjectStatus string

const (
	ProjectActive     ProjectStatus = "active"
	ProjectEndingSoon ProjectStatus = "ending-soon"
	ProjectRampingUp  ProjectStatus = "ramping-up"
)

// Label returns a display label for the status.
func (s ProjectStatus) Label() string {
	switch s {
	case ProjectEndingSoon:
		return "Ending Soon"
	case ProjectRampingUp:
		return "Ramping Up"
	default:
		return "Active"
	}
}

// BillableProject is a client engagement staffed from a location.
type BillableProject struct {
	ID            string
	Name          string
	Client        string
	ResourceCount int
	Contribution  float64 // percent of the location's billable work, 0-100
	Status        ProjectStatus
}

// Validate checks that the project is well formed.
func (p BillableProject) Validate() error {
	var errs []error

	if p.ID == "" {
		errs = append(errs, errors.New("id is required"))
	}
	if p.ResourceCount < 0 {
		errs = append(errs, errors.New("resource count must be non-negative"))
	}
	if p.Contribution < 0 || p.Contribution > 100 {
		errs = append(errs, fmt.Errorf("contribution %.1f out of range", p.Contribution))
	}
	switch p.Status {
	case ProjectActive, ProjectEndingSoon, ProjectRampingUp:
	default:
		errs = append(errs, fmt.Errorf("invalid status: %s", p.Status))
	}

	return errors.Join(errs...)
}
