package workforce

import (
	"github.com/shopspring/decimal"

	"github.com/utilboard/utilboard/internal/models"
	"github.com/utilboard/utilboard/internal/seed"
)

// GradeCount is the number of roster resources at one grade.
type GradeCount struct {
	Grade string
	Count int
}

// HoursSummary totals a roster's weekly hours.
type HoursSummary struct {
	Resources int
	Total     int
	Average   float64
}

// GradeBreakdown counts resources per grade in seniority order. Grades with
// no resources are included with a zero count.
func GradeBreakdown(resources []models.ProjectResource) []GradeCount {
	counts := make(map[string]int, len(seed.Grades))
	for _, r := range resources {
		counts[r.Grade]++
	}

	breakdown := make([]GradeCount, 0, len(seed.Grades))
	for _, g := range seed.Grades {
		breakdown = append(breakdown, GradeCount{Grade: g, Count: counts[g]})
	}
	return breakdown
}

// RosterHours sums weekly hours across a roster. The average is rounded to
// one decimal.
func RosterHours(resources []models.ProjectResource) HoursSummary {
	summary := HoursSummary{Resources: len(resources)}
	for _, r := range resources {
		summary.Total += r.HoursPerWeek
	}
	if summary.Resources > 0 {
		summary.Average = decimal.NewFromInt(int64(summary.Total)).
			Div(decimal.NewFromInt(int64(summary.Resources))).
			Round(1).
			InexactFloat64()
	}
	return summary
}

// percentOf returns part as a whole-number percentage of whole, or 0 when
// whole is not positive.
func percentOf(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(decimal.NewFromInt(int64(part)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(whole))).
		Round(0).
		IntPart())
}
