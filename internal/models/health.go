package models

// HealthLevel classifies a location's utilization.
type HealthLevel string

const (
	HealthHealthy  HealthLevel = "healthy"
	HealthWarning  HealthLevel = "warning"
	HealthCritical HealthLevel = "critical"
)

func (h HealthLevel) String() string {
	return string(h)
}

// HealthStatus is a health level with its banner message.
type HealthStatus struct {
	Status  HealthLevel
	Message string
}
