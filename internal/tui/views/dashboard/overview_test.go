package dashboard

import (
	"strings"
	"testing"
	"time"

	"github.com/utilboard/utilboard/internal/services/workforce"
	"github.com/utilboard/utilboard/internal/util"
)

func newTestService() *workforce.Service {
	now := time.Date(2026, time.October, 14, 10, 30, 0, 0, time.UTC)
	return workforce.NewService(workforce.DefaultConfig(), util.NewClock(now), nil)
}

func TestOverviewView_New(t *testing.T) {
	view := NewOverviewView(newTestService(), "london", 12)

	if got := view.Location().ID; got != "london" {
		t.Errorf("expected london, got %q", got)
	}
	if got := len(view.Forecast()); got != 12 {
		t.Errorf("expected 12 forecast weeks, got %d", got)
	}
}

func TestOverviewView_UnknownLocationFallsBack(t *testing.T) {
	view := NewOverviewView(newTestService(), "mars", 12)

	if got := view.Location().ID; got != "all" {
		t.Errorf("expected fallback to all, got %q", got)
	}
}

func TestOverviewView_CycleLocation(t *testing.T) {
	view := NewOverviewView(newTestService(), "singapore", 12)
	view.CycleLocation()

	if got := view.Location().ID; got != "all" {
		t.Errorf("expected wrap to all, got %q", got)
	}
}

func TestOverviewView_CycleSpan(t *testing.T) {
	view := NewOverviewView(newTestService(), "all", 12)

	want := []int{24, 36, 48, 12}
	for _, weeks := range want {
		view.CycleSpan()
		if got := view.Span().Weeks; got != weeks {
			t.Fatalf("expected %d weeks, got %d", weeks, got)
		}
		if got := len(view.Forecast()); got != weeks {
			t.Fatalf("expected %d points, got %d", weeks, got)
		}
	}
}

func TestOverviewView_Render(t *testing.T) {
	view := NewOverviewView(newTestService(), "singapore", 12)
	output := view.Render(120, 40)

	for _, want := range []string{"UTILIZATION OVERVIEW", "Singapore", "CRITICAL", "HEADCOUNT", "FORECAST (3 months / 12 weeks)", "Avg billable"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

func TestOverviewView_RenderHelp_Wide(t *testing.T) {
	view := NewOverviewView(newTestService(), "all", 12)
	output := view.Render(120, 40)

	if !strings.Contains(output, "Up/Down:Scroll") {
		t.Error("expected full help text on wide terminal")
	}
}

func TestOverviewView_RenderHelp_Narrow(t *testing.T) {
	view := NewOverviewView(newTestService(), "all", 12)
	output := view.Render(60, 40)

	if !strings.Contains(output, "l:Loc") {
		t.Error("expected compact help text on narrow terminal")
	}
}
