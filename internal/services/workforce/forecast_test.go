package workforce

import (
	"math"
	"reflect"
	"testing"

	"github.com/utilboard/utilboard/internal/models"
)

func TestService_GenerateForecast(t *testing.T) {
	svc := newTestService(t)

	t.Run("Points stay within bounds", func(t *testing.T) {
		for _, loc := range svc.Locations() {
			points := svc.GenerateForecast(52, loc.ID)
			if len(points) != 52 {
				t.Fatalf("%s: expected 52 points, got %d", loc.ID, len(points))
			}
			for _, p := range points {
				if p.Billable < BillableMin || p.Billable > BillableMax {
					t.Errorf("%s %s: billable %.1f out of range", loc.ID, p.PeriodLabel, p.Billable)
				}
				if p.Internal < InternalMin || p.Internal > InternalMax {
					t.Errorf("%s %s: internal %.1f out of range", loc.ID, p.PeriodLabel, p.Internal)
				}
				if math.Abs(p.Total()-100) > 0.1 {
					t.Errorf("%s %s: shares sum to %.2f", loc.ID, p.PeriodLabel, p.Total())
				}
				if math.Abs(p.Billable*10-math.Round(p.Billable*10)) > 1e-6 {
					t.Errorf("%s %s: billable %v not rounded to one decimal", loc.ID, p.PeriodLabel, p.Billable)
				}
			}
		}
	})

	t.Run("Labels step weekly from Monday", func(t *testing.T) {
		points := svc.GenerateForecast(3, "nyc")
		want := []string{"Oct 12", "Oct 19", "Oct 26"}
		for i, p := range points {
			if p.PeriodLabel != want[i] {
				t.Errorf("label %d = %s, want %s", i, p.PeriodLabel, want[i])
			}
		}
	})

	t.Run("Same day is reproducible", func(t *testing.T) {
		if !reflect.DeepEqual(svc.GenerateForecast(12, "sf"), svc.GenerateForecast(12, "sf")) {
			t.Error("expected identical forecasts for the same date")
		}
	})

	t.Run("Unknown location uses aggregate", func(t *testing.T) {
		if !reflect.DeepEqual(svc.GenerateForecast(8, "atlantis"), svc.GenerateForecast(8, models.AllLocationsID)) {
			t.Error("expected unknown location to forecast the aggregate")
		}
	})

	t.Run("Non-positive periods", func(t *testing.T) {
		for _, n := range []int{0, -3} {
			if got := svc.GenerateForecast(n, "nyc"); len(got) != 0 {
				t.Errorf("GenerateForecast(%d) returned %d points", n, len(got))
			}
		}
	})
}
