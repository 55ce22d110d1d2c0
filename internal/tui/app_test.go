package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/utilboard/utilboard/internal/config"
	"github.com/utilboard/utilboard/internal/models"
	"github.com/utilboard/utilboard/internal/services/workforce"
)

func TestApp_InitialState(t *testing.T) {
	app := newTestApp(t)

	if app.currentModule != ModuleDashboard {
		t.Errorf("expected initial module Dashboard, got %s", app.currentModule)
	}
	if !app.ready {
		t.Error("expected app to be ready")
	}
	if app.quitting {
		t.Error("expected app not to be quitting")
	}
	if app.searchMode {
		t.Error("expected search mode off initially")
	}
	if len(app.history) != 0 {
		t.Errorf("expected empty history, got %v", app.history)
	}
	if got := app.overview.Location().ID; got != models.AllLocationsID {
		t.Errorf("expected default location %q, got %q", models.AllLocationsID, got)
	}
}

func TestApp_View_NotReady(t *testing.T) {
	app := newTestApp(t)
	app.ready = false

	output := app.View()
	if !strings.Contains(output, "Initializing") {
		t.Error("expected initialization message when not ready")
	}
}

func TestApp_View_Quitting(t *testing.T) {
	app := newTestApp(t)
	app.quitting = true

	output := app.View()
	if !strings.Contains(output, "shutting down") {
		t.Error("expected shutdown message when quitting")
	}
}

func TestApp_View_Dashboard(t *testing.T) {
	app := newTestApp(t)
	output := app.View()

	for _, want := range []string{"UTILBOARD", "UTILIZATION OVERVIEW", "All Locations", "2026-10-14 10:30", "[F2]Dashboard"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in view output", want)
		}
	}
}

func TestApp_HealthAlertsOnStartup(t *testing.T) {
	app := newTestApp(t)

	if len(app.alerts) != 4 {
		t.Fatalf("expected one alert per office, got %d", len(app.alerts))
	}
	if app.alerts[0].Level != AlertWarning || !strings.HasPrefix(app.alerts[0].Message, "New York") {
		t.Errorf("expected New York warning first, got %+v", app.alerts[0])
	}

	var critical int
	for _, a := range app.alerts {
		if a.Level == AlertCritical {
			critical++
		}
	}
	if critical != 1 {
		t.Errorf("expected 1 critical office, got %d", critical)
	}
}

func TestApp_ModuleNavigation_FKeys(t *testing.T) {
	tests := []struct {
		key      tea.KeyType
		expected Module
	}{
		{tea.KeyF3, ModuleProjects},
		{tea.KeyF4, ModuleDirectory},
		{tea.KeyF5, ModuleBench},
		{tea.KeyF2, ModuleDashboard},
	}

	for _, tt := range tests {
		t.Run(string(tt.expected), func(t *testing.T) {
			app := newTestApp(t)
			app.Update(specialKeyMsg(tt.key))

			if app.currentModule != tt.expected {
				t.Errorf("expected module %s, got %s", tt.expected, app.currentModule)
			}
		})
	}
}

func TestApp_ModuleNavigation_HelpKey(t *testing.T) {
	app := newTestApp(t)
	app.Update(specialKeyMsg(tea.KeyF3))
	app.Update(specialKeyMsg(tea.KeyF1))

	if app.currentModule != ModuleHelp {
		t.Fatalf("expected Help module, got %s", app.currentModule)
	}
	if !strings.Contains(app.View(), "HELP") {
		t.Error("expected help screen")
	}

	// Pressing F1 again does not stack a second help entry
	app.Update(specialKeyMsg(tea.KeyF1))
	app.Update(specialKeyMsg(tea.KeyEsc))
	if app.currentModule != ModuleProjects {
		t.Errorf("expected Esc to return to Projects, got %s", app.currentModule)
	}
}

func TestApp_DirectoryLoadsOnFirstVisit(t *testing.T) {
	app := newTestApp(t)
	if len(app.directory.Entries()) != 0 {
		t.Fatal("expected directory to be empty before first visit")
	}

	app.Update(specialKeyMsg(tea.KeyF4))

	if got := len(app.directory.Entries()); got != 131 {
		t.Errorf("expected 131 directory entries, got %d", got)
	}
}

func TestApp_DrillDownAndBack(t *testing.T) {
	app := newTestApp(t)

	app.Update(specialKeyMsg(tea.KeyF3))
	app.Update(specialKeyMsg(tea.KeyEnter))
	if app.currentModule != ModuleRoster {
		t.Fatalf("expected Roster, got %s", app.currentModule)
	}
	if p := app.roster.Project(); p == nil || p.ID != "nyc-fin-core" {
		t.Fatalf("expected first project roster, got %+v", p)
	}

	app.Update(specialKeyMsg(tea.KeyEnter))
	if app.currentModule != ModuleDetail {
		t.Fatalf("expected Detail, got %s", app.currentModule)
	}
	if app.detail.Detail() == nil {
		t.Fatal("expected a resource profile")
	}

	app.Update(keyMsg("b"))
	if app.currentModule != ModuleBookings {
		t.Fatalf("expected Bookings, got %s", app.currentModule)
	}
	if app.bookings.Data() == nil {
		t.Fatal("expected booking data")
	}

	wantBack := []Module{ModuleDetail, ModuleRoster, ModuleProjects, ModuleProjects}
	for i, want := range wantBack {
		app.Update(specialKeyMsg(tea.KeyEsc))
		if app.currentModule != want {
			t.Errorf("back %d: expected %s, got %s", i+1, want, app.currentModule)
		}
	}
}

func TestApp_FunctionKeyClearsHistory(t *testing.T) {
	app := newTestApp(t)
	app.Update(specialKeyMsg(tea.KeyF3))
	app.Update(specialKeyMsg(tea.KeyEnter))

	app.Update(specialKeyMsg(tea.KeyF5))

	if len(app.history) != 0 {
		t.Errorf("expected history cleared, got %v", app.history)
	}
	app.Update(specialKeyMsg(tea.KeyEsc))
	if app.currentModule != ModuleBench {
		t.Errorf("expected to stay on Bench, got %s", app.currentModule)
	}
}

func TestApp_RosterPeriodCarriesToBookings(t *testing.T) {
	app := newTestApp(t)
	app.Update(specialKeyMsg(tea.KeyF3))
	app.Update(specialKeyMsg(tea.KeyEnter))

	app.Update(keyMsg("p"))
	app.Update(keyMsg("p"))
	app.Update(keyMsg("b"))

	if app.currentModule != ModuleBookings {
		t.Fatalf("expected Bookings, got %s", app.currentModule)
	}
	if got, want := app.bookings.Period(), workforce.PeriodNextMonth; got != want {
		t.Errorf("expected period %v, got %v", want, got)
	}
}

func TestApp_LocationSharedAcrossViews(t *testing.T) {
	app := newTestApp(t)

	app.Update(keyMsg("l"))
	if got := app.overview.Location().ID; got != "nyc" {
		t.Fatalf("expected nyc after cycling, got %q", got)
	}

	app.Update(specialKeyMsg(tea.KeyF3))
	if p := app.projectList.SelectedProject(); p == nil || !strings.HasPrefix(p.ID, "nyc-") {
		t.Errorf("expected an nyc project, got %+v", p)
	}

	app.Update(specialKeyMsg(tea.KeyF5))
	app.Update(keyMsg("l"))
	if got := app.overview.Location().ID; got != "sf" {
		t.Errorf("expected bench location change to reach the dashboard, got %q", got)
	}
	for _, r := range app.bench.Resources() {
		if r.Location != "San Francisco" {
			t.Errorf("expected only San Francisco bench, got %s", r.Location)
		}
	}
}

func TestApp_DashboardSpanKey(t *testing.T) {
	app := newTestApp(t)
	before := len(app.overview.Forecast())

	app.Update(keyMsg("p"))

	if after := len(app.overview.Forecast()); after <= before {
		t.Errorf("expected longer forecast after p, got %d then %d", before, after)
	}
}

func TestApp_DirectoryFilterKeys(t *testing.T) {
	app := newTestApp(t)
	app.Update(specialKeyMsg(tea.KeyF4))

	app.Update(keyMsg("s"))
	if got := app.directory.Filter().Status; got != models.StatusBillable {
		t.Fatalf("expected billable status filter, got %q", got)
	}
	for _, e := range app.directory.Entries() {
		if e.Status != models.StatusBillable {
			t.Fatalf("expected only billable entries, got %s", e.Status)
		}
	}

	app.Update(keyMsg("x"))
	if got := len(app.directory.Entries()); got != 131 {
		t.Errorf("expected filters cleared, got %d entries", got)
	}
}

func TestApp_DirectoryEnterOpensProfile(t *testing.T) {
	app := newTestApp(t)
	app.Update(specialKeyMsg(tea.KeyF4))
	entry := app.directory.SelectedEntry()
	if entry == nil {
		t.Fatal("expected a selected entry")
	}

	app.Update(specialKeyMsg(tea.KeyEnter))

	if app.currentModule != ModuleDetail {
		t.Fatalf("expected Detail, got %s", app.currentModule)
	}
	if d := app.detail.Detail(); d == nil || d.ID != entry.ID {
		t.Errorf("expected profile for %s", entry.ID)
	}
}

func TestApp_BenchSearchMode(t *testing.T) {
	app := newTestApp(t)
	app.Update(specialKeyMsg(tea.KeyF5))
	total := len(app.bench.Resources())

	app.Update(keyMsg("/"))
	if !app.searchMode {
		t.Fatal("expected search mode")
	}

	// q is text while searching
	app.Update(keyMsg("q"))
	if app.showConfirm {
		t.Fatal("expected q to be typed, not quit")
	}
	if got := app.bench.Filter().Search; got != "q" {
		t.Errorf("expected live search %q, got %q", "q", got)
	}

	app.Update(specialKeyMsg(tea.KeyBackspace))
	app.Update(keyMsg("e"))
	app.Update(specialKeyMsg(tea.KeyEnter))

	if app.searchMode {
		t.Error("expected enter to leave search mode")
	}
	if got := app.bench.Filter().Search; got != "e" {
		t.Errorf("expected search to be kept, got %q", got)
	}

	app.Update(keyMsg("/"))
	app.Update(keyMsg("z"))
	app.Update(specialKeyMsg(tea.KeyEsc))

	if got := app.bench.Filter().Search; got != "e" {
		t.Errorf("expected esc to restore previous search, got %q", got)
	}

	app.Update(keyMsg("x"))
	if got := len(app.bench.Resources()); got != total {
		t.Errorf("expected %d resources after clear, got %d", total, got)
	}
}

func TestApp_QuitConfirmation_Show(t *testing.T) {
	app := newTestApp(t)
	app.Update(keyMsg("q"))

	if !app.showConfirm {
		t.Error("expected quit confirmation to show")
	}
	if !strings.Contains(app.View(), "CONFIRM EXIT") {
		t.Error("expected confirmation dialog in view")
	}
}

func TestApp_QuitConfirmation_Cancel(t *testing.T) {
	app := newTestApp(t)
	app.Update(specialKeyMsg(tea.KeyF10))
	app.Update(keyMsg("n"))

	if app.showConfirm {
		t.Error("expected confirmation to be dismissed")
	}
	if app.quitting {
		t.Error("expected app not to be quitting")
	}
}

func TestApp_QuitConfirmation_Accept(t *testing.T) {
	app := newTestApp(t)
	app.Update(keyMsg("q"))
	_, cmd := app.Update(keyMsg("y"))

	if !app.quitting {
		t.Error("expected app to be quitting")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestApp_WindowResize(t *testing.T) {
	app := newTestApp(t)
	app.Update(tea.WindowSizeMsg{Width: 70, Height: 24})

	if app.width != 70 || app.height != 24 {
		t.Errorf("expected 70x24, got %dx%d", app.width, app.height)
	}
	if !strings.Contains(app.View(), "UTILIZATION OVERVIEW") {
		t.Error("expected dashboard to render at narrow width")
	}
}

func TestApp_SnapshotAlerts(t *testing.T) {
	snaps := &fakeSnapshots{next: testNow.Add(time.Hour)}
	app := New(newTestService(t), config.Default(), snaps)
	app.width, app.height, app.ready = 120, 40, true
	app.ClearAlerts()

	app.Update(tickMsg(testNow))
	if len(app.alerts) != 0 {
		t.Fatalf("expected no alert before a run, got %d", len(app.alerts))
	}

	snaps.runs = 1
	app.Update(tickMsg(testNow))
	if len(app.alerts) != 1 || app.alerts[0].Level != AlertInfo {
		t.Fatalf("expected info alert, got %+v", app.alerts)
	}

	snaps.runs = 2
	snaps.err = errors.New("disk full")
	app.Update(tickMsg(testNow))
	if app.alerts[0].Level != AlertWarning || !strings.Contains(app.alerts[0].Message, "disk full") {
		t.Errorf("expected failure warning, got %+v", app.alerts[0])
	}

	if !strings.Contains(app.View(), "Next snapshot 11:30") {
		t.Error("expected next snapshot time in alert bar")
	}
}

func TestApp_AlertsCapped(t *testing.T) {
	app := newTestApp(t)
	app.ClearAlerts()

	for range maxAlerts + 5 {
		app.AddAlert(AlertInfo, "tick")
	}

	if len(app.alerts) != maxAlerts {
		t.Errorf("expected %d alerts, got %d", maxAlerts, len(app.alerts))
	}
}

func TestApp_HeaderShowsLocationHealth(t *testing.T) {
	app := newTestApp(t)

	header := strings.SplitN(app.View(), "\n", 2)[0]
	if !strings.Contains(header, "All Locations | 450 resources") || !strings.Contains(header, "WARNING") {
		t.Errorf("expected location health in header, got %q", header)
	}

	for range 4 {
		app.Update(keyMsg("l"))
	}
	header = strings.SplitN(app.View(), "\n", 2)[0]
	if !strings.Contains(header, "Singapore") || !strings.Contains(header, "CRITICAL") {
		t.Errorf("expected Singapore critical in header, got %q", header)
	}
}

func TestApp_DirectoryHomeEnd(t *testing.T) {
	app := newTestApp(t)
	app.Update(specialKeyMsg(tea.KeyF4))

	app.Update(specialKeyMsg(tea.KeyEnd))
	last := app.directory.SelectedEntry()
	entries := app.directory.Entries()
	if last == nil || last.ID != entries[len(entries)-1].ID {
		t.Fatalf("expected last entry selected, got %+v", last)
	}

	app.Update(specialKeyMsg(tea.KeyHome))
	if first := app.directory.SelectedEntry(); first == nil || first.ID != entries[0].ID {
		t.Errorf("expected first entry selected, got %+v", first)
	}
}
