package util

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DateFormat is the standard date format for roster and booking dates.
	DateFormat = "2006-01-02"

	// WeekLabelFormat labels a forecast week by its Monday, e.g. "Jan 2".
	WeekLabelFormat = "Jan 2"

	// ISO8601Format is the RFC3339 format used in configuration.
	ISO8601Format = time.RFC3339

	// DaysPerWeek is the calendar stride between week buckets.
	DaysPerWeek = 7

	// WorkWeekSpan is the number of days from Monday to Friday.
	WorkWeekSpan = 4
)

// Clock supplies "now" to the dashboard. A frozen clock always returns the
// same instant, which keeps forecasts and booking ranges reproducible.
type Clock struct {
	mu     sync.RWMutex
	frozen bool
	at     time.Time
}

// NewClock creates a clock. A zero asOf follows wall time; any other value
// freezes the clock at that instant.
func NewClock(asOf time.Time) *Clock {
	if asOf.IsZero() {
		return &Clock{}
	}
	return &Clock{frozen: true, at: asOf}
}

// Now returns the current dashboard time.
func (c *Clock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.frozen {
		return c.at
	}
	return time.Now()
}

// Freeze pins the clock at t.
func (c *Clock) Freeze(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.frozen = true
	c.at = t
}

// Thaw resumes following wall time.
func (c *Clock) Thaw() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.frozen = false
	c.at = time.Time{}
}

// IsFrozen returns true if the clock is pinned.
func (c *Clock) IsFrozen() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.frozen
}

// Advance moves a frozen clock forward by d.
func (c *Clock) Advance(d time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.frozen {
		return fmt.Errorf("cannot advance a running clock; freeze first")
	}
	c.at = c.at.Add(d)
	return nil
}

// FormatDate formats a time as a date string.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// ParseDate parses a date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

// ParseISO8601 parses an ISO8601/RFC3339 string.
func ParseISO8601(s string) (time.Time, error) {
	return time.Parse(ISO8601Format, s)
}

// StartOfDay returns midnight of the given day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns midnight of the Monday on or before t.
// Sunday belongs to the week that started six days earlier.
func WeekStart(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := int(day.Weekday()) - int(time.Monday)
	if day.Weekday() == time.Sunday {
		offset = 6
	}
	return day.AddDate(0, 0, -offset)
}

// WeekEnd returns the Friday of the week starting at monday.
func WeekEnd(monday time.Time) time.Time {
	return monday.AddDate(0, 0, WorkWeekSpan)
}

// WeekLabel formats a week start as a short chart label.
func WeekLabel(t time.Time) string {
	return t.Format(WeekLabelFormat)
}

// IsSameDay checks if two times are on the same calendar day.
func IsSameDay(t1, t2 time.Time) bool {
	y1, m1, d1 := t1.Date()
	y2, m2, d2 := t2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// NotAfterDay reports whether t falls on or before the calendar day of limit.
func NotAfterDay(t, limit time.Time) bool {
	return !StartOfDay(t).After(StartOfDay(limit))
}

// DaysSince calculates the number of days between two dates.
func DaysSince(from, to time.Time) int {
	from = StartOfDay(from)
	to = StartOfDay(to)

	return int(to.Sub(from).Hours() / 24)
}
