package models

// ForecastPoint is one period of a utilization forecast, in percent.
type ForecastPoint struct {
	PeriodLabel string
	Billable    float64
	Internal    float64
	Bench       float64
}

// Total returns the sum of the three shares.
func (p ForecastPoint) Total() float64 {
	return p.Billable + p.Internal + p.Bench
}

// Utilization returns the billable plus internal share.
func (p ForecastPoint) Utilization() float64 {
	return p.Billable + p.Internal
}
