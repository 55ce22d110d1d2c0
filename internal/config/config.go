// Package config provides configuration management for utilboard.
// Configurations are loaded from TOML files with XDG-compliant paths.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Config holds the complete application configuration.
type Config struct {
	Dashboard DashboardConfig `toml:"dashboard"`
	Display   DisplayConfig   `toml:"display"`
	Logging   LoggingConfig   `toml:"logging"`
	Database  DatabaseConfig  `toml:"database"`
}

// DashboardConfig controls what the dashboard shows on startup and the
// parameters of the workforce engine.
type DashboardConfig struct {
	DefaultLocation   string `toml:"default_location"`
	ForecastWeeks     int    `toml:"forecast_weeks"`
	AsOf              string `toml:"as_of"`
	RosterStartDate   string `toml:"roster_start_date"`
	RosterEndDate     string `toml:"roster_end_date"`
	StandardWeekHours int    `toml:"standard_week_hours"`
}

// DisplayConfig controls TUI appearance.
type DisplayConfig struct {
	ColorScheme ColorScheme `toml:"color_scheme"`
	DateFormat  string      `toml:"date_format"`
}

// ColorScheme defines the terminal color palette.
type ColorScheme string

const (
	ColorSchemeGreenPhosphor ColorScheme = "green_phosphor"
	ColorSchemeAmber         ColorScheme = "amber"
	ColorSchemeWhite         ColorScheme = "white"
)

// LoggingConfig controls application logging.
type LoggingConfig struct {
	Level LogLevel `toml:"level"`
	File  string   `toml:"file"`
}

// LogLevel defines logging verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// DatabaseConfig controls the SQLite snapshot store.
type DatabaseConfig struct {
	Path string `toml:"path"`

	// SnapshotSchedule is a cron spec for periodic snapshots. Empty disables them.
	SnapshotSchedule string `toml:"snapshot_schedule"`
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Dashboard.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("dashboard: %w", err))
	}

	if err := c.Display.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("display: %w", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	if err := c.Database.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("database: %w", err))
	}

	return errors.Join(errs...)
}

// Validate checks that the dashboard configuration is valid.
func (d *DashboardConfig) Validate() error {
	var errs []error

	if d.ForecastWeeks < 1 || d.ForecastWeeks > 52 {
		errs = append(errs, errors.New("forecast_weeks must be between 1 and 52"))
	}

	if d.StandardWeekHours < 1 || d.StandardWeekHours > 80 {
		errs = append(errs, errors.New("standard_week_hours must be between 1 and 80"))
	}

	if d.AsOf != "" {
		if _, err := time.Parse(time.RFC3339, d.AsOf); err != nil {
			errs = append(errs, fmt.Errorf("invalid as_of format (expected RFC3339): %w", err))
		}
	}

	start, startErr := parseOptionalDate(d.RosterStartDate)
	if startErr != nil {
		errs = append(errs, fmt.Errorf("invalid roster_start_date: %w", startErr))
	}
	end, endErr := parseOptionalDate(d.RosterEndDate)
	if endErr != nil {
		errs = append(errs, fmt.Errorf("invalid roster_end_date: %w", endErr))
	}
	if startErr == nil && endErr == nil && !start.IsZero() && !end.IsZero() && end.Before(start) {
		errs = append(errs, errors.New("roster_end_date is before roster_start_date"))
	}

	return errors.Join(errs...)
}

// Validate checks that the display configuration is valid.
func (d *DisplayConfig) Validate() error {
	validSchemes := map[ColorScheme]bool{
		ColorSchemeGreenPhosphor: true,
		ColorSchemeAmber:         true,
		ColorSchemeWhite:         true,
	}

	if !validSchemes[d.ColorScheme] && d.ColorScheme != "" {
		return fmt.Errorf("invalid color_scheme: %s", d.ColorScheme)
	}

	return nil
}

// Validate checks that the logging configuration is valid.
func (l *LoggingConfig) Validate() error {
	validLevels := map[LogLevel]bool{
		LogLevelDebug: true,
		LogLevelInfo:  true,
		LogLevelWarn:  true,
		LogLevelError: true,
	}

	if !validLevels[l.Level] && l.Level != "" {
		return fmt.Errorf("invalid log level: %s", l.Level)
	}

	return nil
}

// Validate checks that the database configuration is valid.
func (d *DatabaseConfig) Validate() error {
	var errs []error

	if d.Path == "" {
		errs = append(errs, errors.New("path is required"))
	}

	if d.SnapshotSchedule != "" {
		if _, err := cron.ParseStandard(d.SnapshotSchedule); err != nil {
			errs = append(errs, fmt.Errorf("invalid snapshot_schedule: %w", err))
		}
	}

	return errors.Join(errs...)
}

// Default returns a configuration with sensible default values.
func Default() *Config {
	return &Config{
		Dashboard: DashboardConfig{
			DefaultLocation:   "all",
			ForecastWeeks:     12,
			AsOf:              "",
			RosterStartDate:   "2024-01-15",
			RosterEndDate:     "2025-06-30",
			StandardWeekHours: 40,
		},
		Display: DisplayConfig{
			ColorScheme: ColorSchemeGreenPhosphor,
			DateFormat:  "2006-01-02",
		},
		Logging: LoggingConfig{
			Level: LogLevelInfo,
			File:  "logs/utilboard.log",
		},
		Database: DatabaseConfig{
			Path:             "snapshots.db",
			SnapshotSchedule: "",
		},
	}
}

// AsOfTime returns the frozen dashboard time, or the zero time when the
// dashboard follows the wall clock.
func (d *DashboardConfig) AsOfTime() (time.Time, error) {
	if d.AsOf == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, d.AsOf)
}

// RosterDates returns the configured roster assignment window. Unset dates
// are returned as the zero time.
func (d *DashboardConfig) RosterDates() (time.Time, time.Time, error) {
	start, err := parseOptionalDate(d.RosterStartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("roster_start_date: %w", err)
	}
	end, err := parseOptionalDate(d.RosterEndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("roster_end_date: %w", err)
	}
	return start, end, nil
}

func parseOptionalDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}
