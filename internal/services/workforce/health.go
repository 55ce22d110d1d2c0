package workforce

import (
	"github.com/utilboard/utilboard/internal/models"
)

// Health thresholds, in percent.
const (
	HealthyBillableRate = 80
	HealthyUtilization  = 90
	WarningBillableRate = 70
	WarningUtilization  = 80
)

// HealthStatus classifies a billable rate and total utilization.
func HealthStatus(billableRate, totalUtilization float64) models.HealthStatus {
	switch {
	case billableRate >= HealthyBillableRate && totalUtilization >= HealthyUtilization:
		return models.HealthStatus{Status: models.HealthHealthy, Message: "All metrics within target"}
	case billableRate >= WarningBillableRate && totalUtilization >= WarningUtilization:
		return models.HealthStatus{Status: models.HealthWarning, Message: "Utilization below optimal levels"}
	default:
		return models.HealthStatus{Status: models.HealthCritical, Message: "Immediate attention required"}
	}
}

// LocationHealth classifies a location by its aggregate rates.
func LocationHealth(loc models.Location) models.HealthStatus {
	rates := loc.Rates()
	return HealthStatus(rates.Billable, rates.Utilization)
}
