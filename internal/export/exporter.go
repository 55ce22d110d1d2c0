// Package export writes snapshots of the generated dashboard data to the
// SQLite snapshot store, on demand or on a cron schedule.
package export

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/utilboard/utilboard/internal/database"
	"github.com/utilboard/utilboard/internal/models"
	"github.com/utilboard/utilboard/internal/repository"
	"github.com/utilboard/utilboard/internal/services/workforce"
	"github.com/utilboard/utilboard/internal/util"
)

// Options selects what a snapshot captures.
type Options struct {
	LocationID    string // location whose forecast is captured
	ForecastWeeks int
}

// Exporter captures the engine's output as snapshots.
type Exporter struct {
	svc    *workforce.Service
	db     *database.DB
	repo   *repository.SnapshotRepository
	ids    *util.IDGenerator
	opts   Options
	now    func() time.Time
	logger *slog.Logger
}

// NewExporter creates an exporter writing to db, which must be migrated.
func NewExporter(svc *workforce.Service, db *database.DB, opts Options) *Exporter {
	return &Exporter{
		svc:    svc,
		db:     db,
		repo:   repository.NewSnapshotRepository(db.DB),
		ids:    util.NewIDGenerator(),
		opts:   opts,
		now:    time.Now,
		logger: slog.Default().With("component", "export"),
	}
}

// Repository returns the snapshot repository the exporter writes to.
func (e *Exporter) Repository() *repository.SnapshotRepository {
	return e.repo
}

// Build generates a snapshot without saving it.
func (e *Exporter) Build() *models.SnapshotData {
	loc := e.svc.Location(e.opts.LocationID)
	forecast := e.svc.GenerateForecast(e.opts.ForecastWeeks, loc.ID)

	snap := &models.SnapshotData{
		Snapshot: models.Snapshot{
			ID:            e.ids.NewID(),
			TakenAt:       e.now().UTC(),
			AsOf:          e.svc.Now(),
			LocationID:    loc.ID,
			ForecastWeeks: len(forecast),
		},
		Forecast: forecast,
	}

	for _, l := range e.svc.Locations() {
		snap.Locations = append(snap.Locations, models.SnapshotLocation{
			Location: l,
			Health:   workforce.LocationHealth(l).Status,
		})
	}

	hours := make(map[string]int)
	for _, office := range e.svc.Offices() {
		for _, p := range e.svc.ProjectsForLocation(office.ID) {
			snap.Projects = append(snap.Projects, models.SnapshotProject{BillableProject: p, LocationID: office.ID})
			for _, r := range e.svc.ProjectResources(p.ID) {
				hours[r.ID] = r.HoursPerWeek
			}
		}
	}

	for _, entry := range e.svc.AllResources() {
		snap.Resources = append(snap.Resources, models.SnapshotResource{
			DirectoryEntry: entry,
			HoursPerWeek:   hours[entry.ID],
		})
	}

	return snap
}

// Export builds a snapshot and saves it in one transaction.
func (e *Exporter) Export(ctx context.Context) (*models.Snapshot, error) {
	snap := e.Build()

	err := e.db.WithTransaction(ctx, func(tx *sql.Tx) error {
		return e.repo.Save(ctx, tx, snap)
	})
	if err != nil {
		return nil, fmt.Errorf("saving snapshot: %w", err)
	}

	e.logger.Info("snapshot exported",
		"id", snap.ID,
		"location", snap.LocationID,
		"projects", snap.ProjectCount,
		"resources", snap.ResourceCount,
	)

	return &snap.Snapshot, nil
}
