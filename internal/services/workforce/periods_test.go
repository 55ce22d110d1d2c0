package workforce

import (
	"testing"
	"time"
)

func TestBookingPeriod_Range(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		period     BookingPeriod
		start, end time.Time
	}{
		{PeriodCurrentWeek, day(2026, time.October, 12), day(2026, time.October, 16)},
		{PeriodNextWeek, day(2026, time.October, 19), day(2026, time.October, 23)},
		{PeriodNextMonth, day(2026, time.November, 1), day(2026, time.November, 30)},
		{PeriodNextQuarter, day(2026, time.November, 1), day(2027, time.January, 31)},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			start, end := tt.period.Range(testNow)
			if !start.Equal(tt.start) || !end.Equal(tt.end) {
				t.Errorf("Range = %s..%s, want %s..%s",
					start.Format("2006-01-02"), end.Format("2006-01-02"),
					tt.start.Format("2006-01-02"), tt.end.Format("2006-01-02"))
			}
		})
	}
}

func TestBookingPeriod_Next(t *testing.T) {
	p := PeriodCurrentWeek
	for range BookingPeriods {
		p = p.Next()
	}
	if p != PeriodCurrentWeek {
		t.Errorf("expected cycle back to current, got %s", p)
	}
	if BookingPeriod("bogus").Next() != PeriodCurrentWeek {
		t.Error("expected unknown period to reset")
	}
}

func TestSpanForWeeks(t *testing.T) {
	tests := []struct {
		weeks, want int
	}{
		{12, 0},
		{13, 0},
		{24, 1},
		{40, 2},
		{52, 3},
		{1, 0},
	}
	for _, tt := range tests {
		if got := SpanForWeeks(tt.weeks); got != tt.want {
			t.Errorf("SpanForWeeks(%d) = %d, want %d", tt.weeks, got, tt.want)
		}
	}
}
