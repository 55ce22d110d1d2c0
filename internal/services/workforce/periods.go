package workforce

import (
	"time"

	"github.com/utilboard/utilboard/internal/util"
)

// BookingPeriod names a preset date range for the booking calendar.
type BookingPeriod string

const (
	PeriodCurrentWeek BookingPeriod = "current"
	PeriodNextWeek    BookingPeriod = "next-week"
	PeriodNextMonth   BookingPeriod = "next-month"
	PeriodNextQuarter BookingPeriod = "next-quarter"
)

// BookingPeriods lists the presets in display order.
var BookingPeriods = []BookingPeriod{PeriodCurrentWeek, PeriodNextWeek, PeriodNextMonth, PeriodNextQuarter}

// Label returns a display label for the period.
func (p BookingPeriod) Label() string {
	switch p {
	case PeriodNextWeek:
		return "Next Week"
	case PeriodNextMonth:
		return "Next Month"
	case PeriodNextQuarter:
		return "Next Quarter"
	default:
		return "Current Week"
	}
}

// Range returns the first and last day covered by the period relative to now.
// Week-based presets run Monday to Friday; month-based presets span whole
// calendar months.
func (p BookingPeriod) Range(now time.Time) (time.Time, time.Time) {
	monday := util.WeekStart(now)
	day := util.StartOfDay(now)

	switch p {
	case PeriodNextWeek:
		next := monday.AddDate(0, 0, util.DaysPerWeek)
		return next, util.WeekEnd(next)
	case PeriodNextMonth:
		first := time.Date(day.Year(), day.Month()+1, 1, 0, 0, 0, 0, day.Location())
		return first, first.AddDate(0, 1, -1)
	case PeriodNextQuarter:
		first := time.Date(day.Year(), day.Month()+1, 1, 0, 0, 0, 0, day.Location())
		return first, first.AddDate(0, 3, -1)
	default:
		return monday, util.WeekEnd(monday)
	}
}

// Next cycles to the following preset.
func (p BookingPeriod) Next() BookingPeriod {
	for i, bp := range BookingPeriods {
		if bp == p {
			return BookingPeriods[(i+1)%len(BookingPeriods)]
		}
	}
	return PeriodCurrentWeek
}

// ForecastSpan is a forecast horizon offered by the dashboard.
type ForecastSpan struct {
	Months int
	Weeks  int
}

// weeksPerMonth approximates a month as four forecast weeks.
const weeksPerMonth = 4

// ForecastSpans lists the dashboard horizons: 3, 6, 9 and 12 months.
var ForecastSpans = []ForecastSpan{
	{Months: 3, Weeks: 3 * weeksPerMonth},
	{Months: 6, Weeks: 6 * weeksPerMonth},
	{Months: 9, Weeks: 9 * weeksPerMonth},
	{Months: 12, Weeks: 12 * weeksPerMonth},
}

// SpanForWeeks returns the index of the horizon closest to weeks.
func SpanForWeeks(weeks int) int {
	best := 0
	for i, s := range ForecastSpans {
		if abs(s.Weeks-weeks) < abs(ForecastSpans[best].Weeks-weeks) {
			best = i
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
