// Package seed holds the static tables the workforce engine expands into
// rosters, forecasts and booking calendars.
package seed

import (
	"github.com/utilboard/utilboard/internal/models"
)

// Locations lists every office. The first entry aggregates all offices and is
// the fallback for unknown ids.
var Locations = []models.Location{
	{ID: models.AllLocationsID, Name: "All Locations", TotalResources: 450, Billable: 320, Internal: 85, Bench: 45},
	{ID: "nyc", Name: "New York", TotalResources: 150, Billable: 110, Internal: 25, Bench: 15},
	{ID: "sf", Name: "San Francisco", TotalResources: 120, Billable: 88, Internal: 22, Bench: 10},
	{ID: "london", Name: "London", TotalResources: 100, Billable: 72, Internal: 20, Bench: 8},
	{ID: "singapore", Name: "Singapore", TotalResources: 80, Billable: 50, Internal: 18, Bench: 12},
}

// officeProjects are the billable projects staffed from each office.
var officeProjects = map[string][]models.BillableProject{
	"nyc": {
		{ID: "nyc-fin-core", Name: "Core Banking Modernization", Client: "Meridian Bank", ResourceCount: 14, Contribution: 32, Status: models.ProjectActive},
		{ID: "nyc-mkt-mobile", Name: "Mobile Trading App", Client: "Harbor Securities", ResourceCount: 10, Contribution: 24, Status: models.ProjectActive},
		{ID: "nyc-ins-claims", Name: "Claims Automation", Client: "Liberty Mutual Group", ResourceCount: 8, Contribution: 18, Status: models.ProjectEndingSoon},
		{ID: "nyc-med-portal", Name: "Patient Portal", Client: "Hudson Health", ResourceCount: 7, Contribution: 15, Status: models.ProjectRampingUp},
		{ID: "nyc-ret-data", Name: "Retail Data Lake", Client: "Empire Retail", ResourceCount: 5, Contribution: 11, Status: models.ProjectActive},
	},
	"sf": {
		{ID: "sf-tech-cloud", Name: "Cloud Platform Migration", Client: "Bayview Systems", ResourceCount: 12, Contribution: 35, Status: models.ProjectActive},
		{ID: "sf-ai-ml", Name: "ML Recommendation Engine", Client: "Golden Gate Media", ResourceCount: 9, Contribution: 27, Status: models.ProjectRampingUp},
		{ID: "sf-pay-api", Name: "Payments API", Client: "Mission Pay", ResourceCount: 8, Contribution: 22, Status: models.ProjectActive},
		{ID: "sf-bio-lims", Name: "Lab Information System", Client: "Presidio Bio", ResourceCount: 5, Contribution: 16, Status: models.ProjectEndingSoon},
	},
	"london": {
		{ID: "london-gov-digital", Name: "Digital Services Platform", Client: "Thames Council", ResourceCount: 11, Contribution: 34, Status: models.ProjectActive},
		{ID: "london-ins-pricing", Name: "Pricing Engine", Client: "Albion Insurance", ResourceCount: 8, Contribution: 26, Status: models.ProjectActive},
		{ID: "london-ret-ecom", Name: "E-commerce Replatform", Client: "Regent Stores", ResourceCount: 7, Contribution: 24, Status: models.ProjectRampingUp},
		{ID: "london-energy-iot", Name: "Smart Meter Analytics", Client: "Northern Grid", ResourceCount: 5, Contribution: 16, Status: models.ProjectEndingSoon},
	},
	"singapore": {
		{ID: "singapore-log-track", Name: "Logistics Tracking", Client: "Straits Freight", ResourceCount: 9, Contribution: 38, Status: models.ProjectActive},
		{ID: "singapore-bank-kyc", Name: "KYC Onboarding", Client: "Lion City Bank", ResourceCount: 7, Contribution: 30, Status: models.ProjectActive},
		{ID: "singapore-tel-crm", Name: "Telco CRM Rollout", Client: "Marina Telecom", ResourceCount: 6, Contribution: 32, Status: models.ProjectRampingUp},
	},
}

// ProjectsByLocation maps a location id to its billable projects. The "all"
// key holds every office's projects in Locations order.
var ProjectsByLocation = buildProjectsByLocation()

func buildProjectsByLocation() map[string][]models.BillableProject {
	byLocation := make(map[string][]models.BillableProject, len(officeProjects)+1)

	var all []models.BillableProject
	for _, loc := range Locations {
		if loc.IsAggregate() {
			continue
		}
		projects := officeProjects[loc.ID]
		byLocation[loc.ID] = projects
		all = append(all, projects...)
	}
	byLocation[models.AllLocationsID] = all

	return byLocation
}
