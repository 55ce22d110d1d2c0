package export

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/utilboard/utilboard/internal/models"
	"github.com/utilboard/utilboard/internal/services/workforce"
	"github.com/utilboard/utilboard/internal/testutil"
	"github.com/utilboard/utilboard/internal/util"
)

func newTestExporter(t *testing.T) (*Exporter, *testutil.TestDB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	svc := workforce.NewService(workforce.DefaultConfig(), util.NewClock(testutil.FixtureTime), nil)
	return NewExporter(svc, db.DB, Options{LocationID: "london", ForecastWeeks: 12}), db
}

func TestExporter_Build(t *testing.T) {
	e, _ := newTestExporter(t)
	snap := e.Build()

	if err := snap.Validate(); err != nil {
		t.Fatalf("built snapshot invalid: %v", err)
	}
	if snap.LocationID != "london" || len(snap.Forecast) != 12 {
		t.Errorf("unexpected header %+v", snap.Snapshot)
	}
	if len(snap.Locations) != len(e.svc.Locations()) {
		t.Errorf("expected every location, got %d", len(snap.Locations))
	}
	if len(snap.Resources) != len(e.svc.AllResources()) {
		t.Errorf("expected every resource, got %d", len(snap.Resources))
	}
	for _, r := range snap.Resources {
		if r.HoursPerWeek == 0 {
			t.Errorf("resource %s has no hours", r.ID)
		}
	}
	if !util.IsValidID(snap.ID) || util.IDVersion(snap.ID) != 7 {
		t.Errorf("expected a UUIDv7 id, got %s", snap.ID)
	}
}

func TestExporter_Export(t *testing.T) {
	e, db := newTestExporter(t)
	ctx := context.Background()

	snap, err := e.Export(ctx)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	got, err := e.Repository().GetByID(ctx, snap.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ResourceCount != snap.ResourceCount {
		t.Errorf("stored %d resources, exported %d", got.ResourceCount, snap.ResourceCount)
	}
	db.AssertRowCount(t, "snapshot_forecast", 12)

	counts, err := e.Repository().CountByStatus(ctx, snap.ID)
	if err != nil {
		t.Fatalf("CountByStatus: %v", err)
	}
	if counts[models.StatusBench] != len(e.svc.AvailableResources(models.AllLocationsID)) {
		t.Errorf("stored %d bench resources", counts[models.StatusBench])
	}

	second, err := e.Export(ctx)
	if err != nil {
		t.Fatalf("second Export: %v", err)
	}
	if second.ID == snap.ID {
		t.Error("expected distinct snapshot ids")
	}
	db.AssertRowCount(t, "snapshots", 2)
}

func TestScheduler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Invalid spec", func(t *testing.T) {
		if _, err := NewScheduler("not a schedule", RunnerFunc(func(context.Context) error { return nil }), logger); err == nil {
			t.Error("expected error for invalid spec")
		}
	})

	t.Run("Run records result", func(t *testing.T) {
		boom := errors.New("boom")
		var calls atomic.Int32
		s, err := NewScheduler("@hourly", RunnerFunc(func(context.Context) error {
			if calls.Add(1) == 1 {
				return boom
			}
			return nil
		}), logger)
		if err != nil {
			t.Fatalf("NewScheduler: %v", err)
		}

		s.Run()
		if !errors.Is(s.LastError(), boom) {
			t.Errorf("LastError = %v, want boom", s.LastError())
		}
		s.Run()
		if s.LastError() != nil || s.Runs() != 2 {
			t.Errorf("after second run: runs %d err %v", s.Runs(), s.LastError())
		}
	})

	t.Run("Start and stop", func(t *testing.T) {
		s, err := NewScheduler("*/5 * * * *", RunnerFunc(func(context.Context) error { return nil }), logger)
		if err != nil {
			t.Fatalf("NewScheduler: %v", err)
		}
		s.Start()
		deadline := time.Now().Add(time.Second)
		for s.Next().IsZero() && time.Now().Before(deadline) {
			time.Sleep(10 * time.Millisecond)
		}
		if s.Next().IsZero() {
			t.Error("expected a next run after Start")
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := s.Stop(ctx); err != nil {
			t.Errorf("Stop: %v", err)
		}
	})
}
