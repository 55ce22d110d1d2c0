// Package repository persists exported dashboard snapshots.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/utilboard/utilboard/internal/models"
)

// ErrNotFound is returned when a snapshot does not exist.
var ErrNotFound = errors.New("snapshot not found")

// takenAtFormat is fixed-width so stored timestamps sort chronologically.
const takenAtFormat = "2006-01-02T15:04:05.000000000Z07:00"

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// SnapshotRepository handles snapshot data access.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new snapshot repository.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Save inserts a snapshot and everything it captured. With a nil tx the
// inserts run in their own transaction.
func (r *SnapshotRepository) Save(ctx context.Context, tx *sql.Tx, snap *models.SnapshotData) error {
	if err := snap.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if tx != nil {
		return r.save(ctx, tx, snap)
	}

	own, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := r.save(ctx, own, snap); err != nil {
		own.Rollback()
		return err
	}
	if err := own.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

func (r *SnapshotRepository) save(ctx context.Context, ex execer, snap *models.SnapshotData) error {
	snap.ProjectCount = len(snap.Projects)
	snap.ResourceCount = len(snap.Resources)

	_, err := ex.ExecContext(ctx, `
		INSERT INTO snapshots (
			id, taken_at, as_of, location_id, forecast_weeks, project_count, resource_count
		) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		snap.ID,
		snap.TakenAt.UTC().Format(takenAtFormat),
		snap.AsOf.UTC().Format(time.RFC3339),
		snap.LocationID,
		snap.ForecastWeeks,
		snap.ProjectCount,
		snap.ResourceCount,
	)
	if err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}

	for _, loc := range snap.Locations {
		_, err := ex.ExecContext(ctx, `
			INSERT INTO snapshot_locations (
				snapshot_id, location_id, name, total_resources, billable, internal, bench, health
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			snap.ID, loc.ID, loc.Name, loc.TotalResources, loc.Billable, loc.Internal, loc.Bench, string(loc.Health),
		)
		if err != nil {
			return fmt.Errorf("inserting location %s: %w", loc.ID, err)
		}
	}

	for _, p := range snap.Projects {
		_, err := ex.ExecContext(ctx, `
			INSERT INTO snapshot_projects (
				snapshot_id, project_id, location_id, name, client, resource_count, contribution, status
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			snap.ID, p.ID, p.LocationID, p.Name, p.Client, p.ResourceCount, p.Contribution, string(p.Status),
		)
		if err != nil {
			return fmt.Errorf("inserting project %s: %w", p.ID, err)
		}
	}

	for i, res := range snap.Resources {
		_, err := ex.ExecContext(ctx, `
			INSERT INTO snapshot_resources (
				snapshot_id, seq, resource_id, project_id, location_id, name, role, grade, hours_per_week, status
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			snap.ID, i, res.ID, res.ProjectID, res.LocationID, res.Name, res.Role, res.Grade, res.HoursPerWeek, string(res.Status),
		)
		if err != nil {
			return fmt.Errorf("inserting resource %s: %w", res.ID, err)
		}
	}

	for i, p := range snap.Forecast {
		_, err := ex.ExecContext(ctx, `
			INSERT INTO snapshot_forecast (
				snapshot_id, seq, period_label, billable, internal, bench
			) VALUES (?, ?, ?, ?, ?, ?)`,
			snap.ID, i, p.PeriodLabel, p.Billable, p.Internal, p.Bench,
		)
		if err != nil {
			return fmt.Errorf("inserting forecast point %d: %w", i, err)
		}
	}

	return nil
}

// GetByID retrieves a snapshot header by ID.
func (r *SnapshotRepository) GetByID(ctx context.Context, id string) (*models.Snapshot, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, taken_at, as_of, location_id, forecast_weeks, project_count, resource_count
		FROM snapshots
		WHERE id = ?`, id)

	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return snap, err
}

// Latest retrieves the most recently taken snapshot.
func (r *SnapshotRepository) Latest(ctx context.Context) (*models.Snapshot, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, taken_at, as_of, location_id, forecast_weeks, project_count, resource_count
		FROM snapshots
		ORDER BY taken_at DESC, id DESC
		LIMIT 1`)

	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return snap, err
}

// List retrieves a page of snapshot headers, newest first.
func (r *SnapshotRepository) List(ctx context.Context, page models.Pagination) (*models.SnapshotList, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM snapshots").Scan(&total); err != nil {
		return nil, fmt.Errorf("counting snapshots: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, taken_at, as_of, location_id, forecast_weeks, project_count, resource_count
		FROM snapshots
		ORDER BY taken_at DESC, id DESC
		LIMIT ? OFFSET ?`, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("querying snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []*models.Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snap)
	}

	return &models.SnapshotList{
		Snapshots:  snapshots,
		Total:      total,
		Page:       page.Page,
		PageSize:   page.Limit(),
		TotalPages: page.TotalPages(total),
	}, rows.Err()
}

// Locations retrieves the locations captured by a snapshot.
func (r *SnapshotRepository) Locations(ctx context.Context, snapshotID string) ([]models.SnapshotLocation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT l.location_id, l.name, l.total_resources, l.billable, l.internal, l.bench, l.health
		FROM snapshot_locations l
		WHERE l.snapshot_id = ?
		ORDER BY l.rowid`, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("querying locations: %w", err)
	}
	defer rows.Close()

	var locations []models.SnapshotLocation
	for rows.Next() {
		var loc models.SnapshotLocation
		var health string
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.TotalResources, &loc.Billable, &loc.Internal, &loc.Bench, &health); err != nil {
			return nil, fmt.Errorf("scanning location: %w", err)
		}
		loc.Health = models.HealthLevel(health)
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

// Resources retrieves the resources captured by a snapshot in directory
// order. An empty status returns every resource.
func (r *SnapshotRepository) Resources(ctx context.Context, snapshotID string, status models.ResourceStatus) ([]models.SnapshotResource, error) {
	conditions := []string{"snapshot_id = ?"}
	args := []any{snapshotID}
	if status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(status))
	}

	query := fmt.Sprintf(`
		SELECT resource_id, project_id, location_id, name, role, grade, hours_per_week, status
		FROM snapshot_resources
		WHERE %s
		ORDER BY seq`, strings.Join(conditions, " AND "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying resources: %w", err)
	}
	defer rows.Close()

	var resources []models.SnapshotResource
	for rows.Next() {
		var res models.SnapshotResource
		var st string
		if err := rows.Scan(&res.ID, &res.ProjectID, &res.LocationID, &res.Name, &res.Role, &res.Grade, &res.HoursPerWeek, &st); err != nil {
			return nil, fmt.Errorf("scanning resource: %w", err)
		}
		res.Status = models.ResourceStatus(st)
		resources = append(resources, res)
	}
	return resources, rows.Err()
}

// CountByStatus tallies a snapshot's resources by status.
func (r *SnapshotRepository) CountByStatus(ctx context.Context, snapshotID string) (map[models.ResourceStatus]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT status, COUNT(*)
		FROM snapshot_resources
		WHERE snapshot_id = ?
		GROUP BY status`, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("counting resources: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.ResourceStatus]int)
	for rows.Next() {
		var st string
		var n int
		if err := rows.Scan(&st, &n); err != nil {
			return nil, fmt.Errorf("scanning count: %w", err)
		}
		counts[models.ResourceStatus(st)] = n
	}
	return counts, rows.Err()
}

// Forecast retrieves the forecast captured by a snapshot.
func (r *SnapshotRepository) Forecast(ctx context.Context, snapshotID string) ([]models.ForecastPoint, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT period_label, billable, internal, bench
		FROM snapshot_forecast
		WHERE snapshot_id = ?
		ORDER BY seq`, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("querying forecast: %w", err)
	}
	defer rows.Close()

	var points []models.ForecastPoint
	for rows.Next() {
		var p models.ForecastPoint
		if err := rows.Scan(&p.PeriodLabel, &p.Billable, &p.Internal, &p.Bench); err != nil {
			return nil, fmt.Errorf("scanning forecast point: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// Delete removes a snapshot and, through cascading keys, everything it captured.
func (r *SnapshotRepository) Delete(ctx context.Context, tx *sql.Tx, id string) error {
	var ex execer = r.db
	if tx != nil {
		ex = tx
	}

	result, err := ex.ExecContext(ctx, "DELETE FROM snapshots WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting snapshot: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// PruneBefore deletes snapshots taken before cutoff and returns how many went.
func (r *SnapshotRepository) PruneBefore(ctx context.Context, cutoff time.Time) (int, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM snapshots WHERE taken_at < ?", cutoff.UTC().Format(takenAtFormat))
	if err != nil {
		return 0, fmt.Errorf("pruning snapshots: %w", err)
	}
	n, err := result.RowsAffected()
	return int(n), err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (*models.Snapshot, error) {
	var snap models.Snapshot
	var takenAt, asOf string

	err := row.Scan(&snap.ID, &takenAt, &asOf, &snap.LocationID, &snap.ForecastWeeks, &snap.ProjectCount, &snap.ResourceCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning snapshot: %w", err)
	}

	if snap.TakenAt, err = time.Parse(takenAtFormat, takenAt); err != nil {
		return nil, fmt.Errorf("parsing taken_at: %w", err)
	}
	if snap.AsOf, err = time.Parse(time.RFC3339, asOf); err != nil {
		return nil, fmt.Errorf("parsing as_of: %w", err)
	}

	return &snap, nil
}
