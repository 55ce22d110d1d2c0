package workforce

import (
	"fmt"
	"reflect"
	"slices"
	"testing"

	"github.com/utilboard/utilboard/internal/seed"
)

func TestService_ProjectResources(t *testing.T) {
	svc := newTestService(t)

	t.Run("Roster matches resource count", func(t *testing.T) {
		roster := svc.ProjectResources("nyc-fin-core")
		if len(roster) != 14 {
			t.Fatalf("expected 14 resources, got %d", len(roster))
		}
		for i, r := range roster {
			if want := fmt.Sprintf("nyc-fin-core-res-%d", i); r.ID != want {
				t.Errorf("resource %d id = %s, want %s", i, r.ID, want)
			}
			if !slices.Contains(seed.HoursOptions, r.HoursPerWeek) {
				t.Errorf("resource %s has unexpected hours %d", r.ID, r.HoursPerWeek)
			}
			if !slices.Contains(seed.Grades, r.Grade) {
				t.Errorf("resource %s has unexpected grade %s", r.ID, r.Grade)
			}
			if !r.StartDate.Equal(DefaultConfig().RosterStart) || !r.EndDate.Equal(DefaultConfig().RosterEnd) {
				t.Errorf("resource %s has dates %s..%s", r.ID, r.StartDate, r.EndDate)
			}
		}
	})

	t.Run("Repeated calls are identical", func(t *testing.T) {
		first := svc.ProjectResources("london-ret-ecom")
		second := svc.ProjectResources("london-ret-ecom")
		if !reflect.DeepEqual(first, second) {
			t.Error("expected identical rosters")
		}
	})

	t.Run("Separate caches agree", func(t *testing.T) {
		other := newTestService(t)
		if !reflect.DeepEqual(svc.ProjectResources("sf-ai-ml"), other.ProjectResources("sf-ai-ml")) {
			t.Error("expected rosters to be a pure function of the project")
		}
	})

	t.Run("Nonexistent project is empty", func(t *testing.T) {
		roster := svc.ProjectResources("nonexistent-id")
		if roster == nil || len(roster) != 0 {
			t.Errorf("expected empty non-nil roster, got %v", roster)
		}
	})

	t.Run("Callers cannot mutate the cache", func(t *testing.T) {
		roster := svc.ProjectResources("nyc-ret-data")
		roster[0].Name = "changed"
		if svc.ProjectResources("nyc-ret-data")[0].Name == "changed" {
			t.Error("mutation leaked into the cache")
		}
	})
}

func TestService_GenerateRoster(t *testing.T) {
	svc := newTestService(t)

	first := svc.GenerateRoster("sf-bio-lims", 3)
	if len(first) != 3 {
		t.Fatalf("expected 3 resources, got %d", len(first))
	}

	again := svc.GenerateRoster("sf-bio-lims", 10)
	if len(again) != 3 {
		t.Errorf("expected the cached roster of 3, got %d", len(again))
	}

	if got := svc.GenerateRoster("nonexistent-id", 5); len(got) != 0 {
		t.Errorf("expected empty roster for unknown project, got %d", len(got))
	}
	if svc.cache.Len() != 1 {
		t.Errorf("expected one cached roster, got %d", svc.cache.Len())
	}

	first[0].Name = "changed"
	if svc.GenerateRoster("sf-bio-lims", 3)[0].Name == "changed" {
		t.Error("mutation leaked into the cache")
	}
}

func TestService_RostersDifferWithinOffice(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		a, b string
	}{
		{"london-gov-digital", "london-ins-pricing"},
		{"london-ret-ecom", "london-energy-iot"},
		{"singapore-log-track", "singapore-bank-kyc"},
		{"sf-tech-cloud", "sf-ai-ml"},
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			a := svc.ProjectResources(tt.a)
			b := svc.ProjectResources(tt.b)

			same := 0
			for i := range min(len(a), len(b)) {
				if a[i].Name == b[i].Name && a[i].Role == b[i].Role &&
					a[i].Grade == b[i].Grade && a[i].HoursPerWeek == b[i].HoursPerWeek {
					same++
				}
			}
			if same == min(len(a), len(b)) {
				t.Errorf("expected different rosters, all %d resources match", same)
			}
		})
	}
}

func TestService_RosterNamesMostlyDistinct(t *testing.T) {
	svc := newTestService(t)

	names := make(map[string]bool)
	entries := svc.AllResources()
	for _, e := range entries {
		names[e.Name] = true
	}

	// Name pairs can repeat by chance, but never collapse to per-office clones
	if len(names) < len(entries)*3/4 {
		t.Errorf("expected at least %d distinct names, got %d of %d", len(entries)*3/4, len(names), len(entries))
	}
}

func TestGradeBreakdown(t *testing.T) {
	svc := newTestService(t)
	roster := svc.ProjectResources("nyc-fin-core")

	breakdown := GradeBreakdown(roster)
	if len(breakdown) != len(seed.Grades) {
		t.Fatalf("expected %d grades, got %d", len(seed.Grades), len(breakdown))
	}

	total := 0
	for i, g := range breakdown {
		if g.Grade != seed.Grades[i] {
			t.Errorf("grade %d = %s, want %s", i, g.Grade, seed.Grades[i])
		}
		total += g.Count
	}
	if total != len(roster) {
		t.Errorf("breakdown covers %d resources, want %d", total, len(roster))
	}
}

func TestRosterHours(t *testing.T) {
	svc := newTestService(t)
	roster := svc.ProjectResources("singapore-tel-crm")

	summary := RosterHours(roster)
	want := 0
	for _, r := range roster {
		want += r.HoursPerWeek
	}
	if summary.Total != want {
		t.Errorf("total = %d, want %d", summary.Total, want)
	}
	if summary.Average < 20 || summary.Average > 40 {
		t.Errorf("average %.1f outside hour options", summary.Average)
	}

	if empty := RosterHours(nil); empty.Average != 0 || empty.Total != 0 {
		t.Errorf("expected zero summary, got %+v", empty)
	}
}
