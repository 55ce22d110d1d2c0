package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/utilboard/utilboard/internal/config"
	"github.com/utilboard/utilboard/internal/models"
	"github.com/utilboard/utilboard/internal/services/workforce"
	"github.com/utilboard/utilboard/internal/tui/components"
	dashviews "github.com/utilboard/utilboard/internal/tui/views/dashboard"
	dirviews "github.com/utilboard/utilboard/internal/tui/views/directory"
	peopleviews "github.com/utilboard/utilboard/internal/tui/views/people"
	projviews "github.com/utilboard/utilboard/internal/tui/views/projects"
)

// Version information (set at build time)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// MaxContentWidth is the maximum width for content display
const MaxContentWidth = 120

// chromeLines is the height of the header, alert bar and footer.
const chromeLines = 6

// maxAlerts caps the alert history.
const maxAlerts = 10

// Module represents a view module in the application.
type Module string

const (
	ModuleDashboard Module = "dashboard"
	ModuleProjects  Module = "projects"
	ModuleRoster    Module = "roster"
	ModuleDetail    Module = "detail"
	ModuleBookings  Module = "bookings"
	ModuleDirectory Module = "directory"
	ModuleBench     Module = "bench"
	ModuleHelp      Module = "help"
)

// SnapshotStatus reports on the background snapshot export.
type SnapshotStatus interface {
	Next() time.Time
	Runs() int
	LastError() error
}

// App is the main Bubble Tea application model.
type App struct {
	// Dependencies
	service   *workforce.Service
	config    *config.Config
	snapshots SnapshotStatus
	logger    *slog.Logger

	// Views
	overview    *dashviews.OverviewView
	projectList *projviews.ListView
	roster      *projviews.RosterView
	detail      *peopleviews.DetailView
	bookings    *peopleviews.BookingsView
	directory   *dirviews.DirectoryView
	bench       *dirviews.BenchView

	// UI state
	theme       *Theme
	keys        KeyMap
	width       int
	height      int
	ready       bool
	quitting    bool
	showConfirm bool

	// Navigation
	currentModule Module
	history       []Module
	directoryOK   bool

	// Bench search input
	searchMode   bool
	searchInput  *components.Input
	searchBefore string

	alerts       []Alert
	snapshotRuns int
}

// Alert represents a dashboard alert.
type Alert struct {
	Level   AlertLevel
	Message string
	Time    time.Time
}

// AlertLevel indicates the severity of an alert.
type AlertLevel int

const (
	AlertInfo AlertLevel = iota
	AlertWarning
	AlertCritical
)

// tickMsg is sent periodically to update the UI.
type tickMsg time.Time

// New creates a new App. snapshots may be nil when no export is scheduled.
func New(service *workforce.Service, cfg *config.Config, snapshots SnapshotStatus) *App {
	theme := NewTheme(cfg.Display.ColorScheme)
	palette := theme.Palette()

	a := &App{
		service:       service,
		config:        cfg,
		snapshots:     snapshots,
		logger:        slog.Default().With("component", "tui"),
		overview:      dashviews.NewOverviewView(service, cfg.Dashboard.DefaultLocation, cfg.Dashboard.ForecastWeeks),
		projectList:   projviews.NewListView(service),
		roster:        projviews.NewRosterView(service),
		detail:        peopleviews.NewDetailView(service),
		bookings:      peopleviews.NewBookingsView(service),
		directory:     dirviews.NewDirectoryView(service),
		bench:         dirviews.NewBenchView(service),
		theme:         theme,
		keys:          DefaultKeyMap(),
		currentModule: ModuleDashboard,
		searchInput:   components.NewInput("SEARCH").SetPlaceholder("name or role").SetWidth(24),
		alerts:        []Alert{},
	}

	a.overview.SetPalette(palette)
	a.projectList.SetPalette(palette)
	a.roster.SetPalette(palette)
	a.detail.SetPalette(palette)
	a.bookings.SetPalette(palette)
	a.directory.SetPalette(palette)
	a.bench.SetPalette(palette)

	a.syncLocation()
	a.raiseHealthAlerts()

	return a
}

// raiseHealthAlerts adds an alert for every office outside its targets.
func (a *App) raiseHealthAlerts() {
	offices := a.service.Offices()
	for i := len(offices) - 1; i >= 0; i-- {
		health := workforce.LocationHealth(offices[i])
		switch health.Status {
		case models.HealthCritical:
			a.AddAlert(AlertCritical, offices[i].Name+": "+health.Message)
		case models.HealthWarning:
			a.AddAlert(AlertWarning, offices[i].Name+": "+health.Message)
		}
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(),
	)
}

// tickCmd returns a command that sends tick messages.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case tickMsg:
		a.checkSnapshots()
		return a, tickCmd()
	}

	return a, nil
}

// checkSnapshots raises an alert when a scheduled export has finished.
func (a *App) checkSnapshots() {
	if a.snapshots == nil {
		return
	}
	runs := a.snapshots.Runs()
	if runs == a.snapshotRuns {
		return
	}
	a.snapshotRuns = runs

	if err := a.snapshots.LastError(); err != nil {
		a.AddAlert(AlertWarning, "Snapshot export failed: "+err.Error())
		return
	}
	a.AddAlert(AlertInfo, fmt.Sprintf("Snapshot %d exported", runs))
}

// handleKeyPress processes key press events.
func (a *App) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle quit confirmation first (modal takes priority)
	if a.showConfirm {
		switch msg.String() {
		case "y", "Y", "enter":
			a.quitting = true
			return a, tea.Quit
		case "n", "N", "esc":
			a.showConfirm = false
		}
		return a, nil
	}

	// Search needs all text input
	if a.searchMode {
		return a.handleSearchKeys(msg)
	}

	if a.keys.IsQuit(msg) {
		a.showConfirm = true
		return a, nil
	}

	if a.keys.IsFunctionKey(msg) {
		switch module := a.keys.GetFunctionKeyModule(msg); module {
		case ModuleHelp:
			if a.currentModule != ModuleHelp {
				a.open(ModuleHelp)
			}
		case "":
		default:
			a.switchTo(module)
		}
		return a, nil
	}

	if a.keys.Back.Matches(msg) {
		a.back()
		return a, nil
	}

	switch a.currentModule {
	case ModuleDashboard:
		a.handleDashboardKeys(msg)
	case ModuleProjects:
		a.handleProjectKeys(msg)
	case ModuleRoster:
		a.handleRosterKeys(msg)
	case ModuleDetail:
		a.handleDetailKeys(msg)
	case ModuleBookings:
		a.handleBookingKeys(msg)
	case ModuleDirectory:
		a.handleDirectoryKeys(msg)
	case ModuleBench:
		a.handleBenchKeys(msg)
	}

	return a, nil
}

// open enters a module, remembering where to go back to.
func (a *App) open(m Module) {
	a.history = append(a.history, a.currentModule)
	a.currentModule = m
	a.logger.Debug("open module", "module", m, "depth", len(a.history))
}

// switchTo jumps to a top-level module and forgets the back history.
func (a *App) switchTo(m Module) {
	a.history = nil
	a.currentModule = m
	if m == ModuleDirectory && !a.directoryOK {
		a.directory.Load()
		a.directoryOK = true
	}
	a.logger.Debug("switch module", "module", m)
}

// back returns to the previous module, if any.
func (a *App) back() {
	if len(a.history) == 0 {
		return
	}
	a.currentModule = a.history[len(a.history)-1]
	a.history = a.history[:len(a.history)-1]
}

// cycleLocation moves every location-scoped view to the next location.
func (a *App) cycleLocation() {
	a.overview.CycleLocation()
	a.syncLocation()
}

func (a *App) syncLocation() {
	id := a.overview.Location().ID
	a.projectList.SetLocation(id)
	a.bench.SetLocation(id)
}

func (a *App) handleDashboardKeys(msg tea.KeyMsg) {
	switch {
	case a.keys.Location.Matches(msg):
		a.cycleLocation()
	case a.keys.Period.Matches(msg):
		a.overview.CycleSpan()
	case a.keys.Up.Matches(msg):
		a.overview.ScrollUp()
	case a.keys.Down.Matches(msg):
		a.overview.ScrollDown()
	}
}

func (a *App) handleProjectKeys(msg tea.KeyMsg) {
	switch {
	case a.keys.Up.Matches(msg):
		a.projectList.MoveUp()
	case a.keys.Down.Matches(msg):
		a.projectList.MoveDown()
	case a.keys.Location.Matches(msg):
		a.cycleLocation()
	case a.keys.Select.Matches(msg):
		if p := a.projectList.SelectedProject(); p != nil {
			a.roster.SetProject(p)
			a.open(ModuleRoster)
		}
	}
}

func (a *App) handleRosterKeys(msg tea.KeyMsg) {
	switch {
	case a.keys.Up.Matches(msg):
		a.roster.MoveUp()
	case a.keys.Down.Matches(msg):
		a.roster.MoveDown()
	case a.keys.Period.Matches(msg):
		a.roster.CyclePeriod()
	case a.keys.Select.Matches(msg):
		if r := a.roster.SelectedResource(); r != nil {
			a.openDetail(r.ID)
		}
	case a.keys.Bookings.Matches(msg):
		if r := a.roster.SelectedResource(); r != nil {
			a.openBookings(r.ID, r.Name)
		}
	}
}

func (a *App) handleDetailKeys(msg tea.KeyMsg) {
	if a.keys.Bookings.Matches(msg) {
		if d := a.detail.Detail(); d != nil {
			a.openBookings(d.ID, d.Name)
		}
	}
}

func (a *App) handleBookingKeys(msg tea.KeyMsg) {
	switch {
	case a.keys.Up.Matches(msg):
		a.bookings.MoveUp()
	case a.keys.Down.Matches(msg):
		a.bookings.MoveDown()
	case a.keys.Period.Matches(msg):
		a.bookings.CyclePeriod()
	}
}

func (a *App) handleDirectoryKeys(msg tea.KeyMsg) {
	if idx := a.keys.SortIndex(msg); idx >= 0 {
		a.directory.SortBy(idx)
		return
	}

	switch {
	case a.keys.Up.Matches(msg):
		a.directory.MoveUp()
	case a.keys.Down.Matches(msg):
		a.directory.MoveDown()
	case a.keys.PageUp.Matches(msg):
		a.directory.PageUp()
	case a.keys.PageDown.Matches(msg):
		a.directory.PageDown()
	case a.keys.Home.Matches(msg):
		a.directory.Top()
	case a.keys.End.Matches(msg):
		a.directory.Bottom()
	case a.keys.Role.Matches(msg):
		a.directory.CycleRole()
	case a.keys.Grade.Matches(msg):
		a.directory.CycleGrade()
	case a.keys.Office.Matches(msg):
		a.directory.CycleOffice()
	case a.keys.Status.Matches(msg):
		a.directory.CycleStatus()
	case a.keys.Clear.Matches(msg):
		a.directory.ClearFilters()
	case a.keys.Select.Matches(msg):
		if e := a.directory.SelectedEntry(); e != nil {
			a.openDetail(e.ID)
		}
	}
}

func (a *App) handleBenchKeys(msg tea.KeyMsg) {
	switch {
	case a.keys.Up.Matches(msg):
		a.bench.MoveUp()
	case a.keys.Down.Matches(msg):
		a.bench.MoveDown()
	case a.keys.Search.Matches(msg):
		a.searchMode = true
		a.searchBefore = a.bench.Filter().Search
		a.searchInput.SetValue(a.searchBefore)
		a.searchInput.Focus(true)
	case a.keys.Family.Matches(msg):
		a.bench.CycleFamily()
	case a.keys.Skill.Matches(msg):
		a.bench.CycleSkill()
	case a.keys.Availability.Matches(msg):
		a.bench.CycleAvailability()
	case a.keys.Location.Matches(msg):
		a.cycleLocation()
	case a.keys.Clear.Matches(msg):
		a.bench.ClearFilters()
	case a.keys.Select.Matches(msg):
		if r := a.bench.SelectedResource(); r != nil {
			a.openDetail(r.ID)
		}
	}
}

// handleSearchKeys filters the bench as the search term is typed.
func (a *App) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.bench.SetSearch(a.searchBefore)
		a.stopSearch()
	case tea.KeyEnter:
		a.stopSearch()
	default:
		a.searchInput.HandleKey(msg.String())
		a.bench.SetSearch(a.searchInput.Value())
	}
	return a, nil
}

func (a *App) stopSearch() {
	a.searchMode = false
	a.searchInput.Focus(false)
}

func (a *App) openDetail(resourceID string) {
	if !a.detail.SetResource(resourceID) {
		a.AddAlert(AlertWarning, "Resource not found: "+resourceID)
		return
	}
	a.open(ModuleDetail)
}

// openBookings shows a resource's calendar for the roster's chosen period.
func (a *App) openBookings(resourceID, name string) {
	a.bookings.SetResource(resourceID, name, a.roster.Period())
	if a.bookings.Data() == nil {
		a.AddAlert(AlertWarning, "No bookings for "+resourceID)
		return
	}
	a.open(ModuleBookings)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initializing..."
	}

	if a.quitting {
		return a.theme.Title.Render("utilboard shutting down...")
	}

	var b strings.Builder

	b.WriteString(a.renderHeader())
	b.WriteString("\n")

	b.WriteString(a.renderAlertBar())
	b.WriteString("\n")

	contentHeight := ContentHeight(a.height, chromeLines)
	if a.showConfirm {
		b.WriteString(a.renderConfirmDialog(contentHeight))
	} else {
		b.WriteString(a.renderContent(contentHeight))
	}

	b.WriteString("\n")
	b.WriteString(a.renderFooter())

	return b.String()
}

// renderHeader renders the top header bar.
func (a *App) renderHeader() string {
	title := fmt.Sprintf("UTILBOARD v%s", Version)

	loc := a.overview.Location()
	info := fmt.Sprintf("%s | %d resources | ", loc.Name, loc.TotalResources)
	health := workforce.LocationHealth(loc).Status
	status := strings.ToUpper(health.String())

	spacing := max(a.width-lipgloss.Width(title)-lipgloss.Width(info)-lipgloss.Width(status)-4, 1)

	header := a.theme.Header.Render(title) +
		strings.Repeat(" ", spacing) +
		a.theme.Header.Render(info) +
		a.theme.HealthStyle(health).Render(status)

	return header + "\n" + a.theme.DrawDoubleLine(a.width)
}

// renderAlertBar renders the clock, snapshot schedule and latest alert.
func (a *App) renderAlertBar() string {
	now := a.service.Now()
	timeDisplay := a.theme.Value.Render(now.Format(a.config.Display.DateFormat + " 15:04"))
	divider := a.theme.StatusDivider.Render()

	var alertText string
	if len(a.alerts) > 0 {
		alert := a.alerts[0]
		switch alert.Level {
		case AlertCritical:
			alertText = a.theme.AlertCrit.Render("CRITICAL: " + alert.Message)
		case AlertWarning:
			alertText = a.theme.AlertWarn.Render("WARNING: " + alert.Message)
		default:
			alertText = a.theme.Alert.Render("INFO: " + alert.Message)
		}
	} else {
		alertText = a.theme.Muted.Render("All offices within target")
	}

	bar := timeDisplay + divider
	if a.snapshots != nil {
		if next := a.snapshots.Next(); !next.IsZero() {
			bar += a.theme.Label.Render("Next snapshot "+next.Format("15:04")) + divider
		}
	}
	return bar + alertText
}

// renderContent renders the main content area based on current module.
func (a *App) renderContent(height int) string {
	contentWidth := ContentWidth(a.width, 40, MaxContentWidth)
	content := a.moduleContent(contentWidth, height)

	style := lipgloss.NewStyle().
		Width(a.width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Top)

	return style.Render(lipgloss.NewStyle().Width(contentWidth).Render(content))
}

// moduleContent returns the content for the current module.
func (a *App) moduleContent(width, height int) string {
	switch a.currentModule {
	case ModuleProjects:
		return a.projectList.Render(width, height)
	case ModuleRoster:
		return a.roster.Render(width, height)
	case ModuleDetail:
		return a.detail.Render(width, height)
	case ModuleBookings:
		return a.bookings.Render(width, height)
	case ModuleDirectory:
		return a.directory.Render(width, height)
	case ModuleBench:
		search := ""
		if a.searchMode {
			search = a.searchInput.Render()
		}
		return a.bench.Render(width, height, search)
	case ModuleHelp:
		return a.renderHelp(width)
	default:
		return a.overview.Render(width, height)
	}
}

// renderHelp renders the help screen.
func (a *App) renderHelp(width int) string {
	var b strings.Builder

	b.WriteString(a.theme.Title.Render("═══ HELP ═══"))
	b.WriteString("\n\n")

	list := func(items [][2]string) string {
		lines := make([]string, len(items))
		for i, item := range items {
			lines[i] = a.theme.Primary.Render(fmt.Sprintf("%-8s  %s", item[0], item[1]))
		}
		return strings.Join(lines, "\n")
	}

	nav := a.theme.Panel("NAVIGATION", list([][2]string{
		{"F1", "Help"},
		{"F2", "Dashboard"},
		{"F3", "Projects"},
		{"F4", "Directory"},
		{"F5", "Bench"},
		{"F10/q", "Quit"},
		{"Enter", "Open roster / profile"},
		{"Esc", "Back"},
	}), 40)

	ctrl := a.theme.Panel("CONTROLS", list([][2]string{
		{"l", "Cycle location"},
		{"p", "Cycle period"},
		{"b", "Bookings"},
		{"r/g/o/s", "Directory filters"},
		{"1-5", "Sort directory"},
		{"/", "Search bench"},
		{"f/t/v", "Bench filters"},
		{"x", "Clear filters"},
	}), 40)

	b.WriteString(SideBySide(nav, ctrl, width, 4))
	b.WriteString("\n\n")
	b.WriteString(a.theme.Subtitle.Render("Press Esc to return"))

	return b.String()
}

// renderConfirmDialog renders the quit confirmation dialog.
func (a *App) renderConfirmDialog(height int) string {
	dialog := a.theme.Box.Render(
		a.theme.Title.Render("CONFIRM EXIT") + "\n\n" +
			a.theme.Base.Render("Are you sure you want to exit?") + "\n\n" +
			a.theme.Label.Render("[Y]es  [N]o"),
	)

	style := lipgloss.NewStyle().
		Width(a.width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	return style.Render(dialog)
}

// renderFooter renders the bottom status bar.
func (a *App) renderFooter() string {
	return a.theme.DrawHorizontalLine(a.width) + "\n" + a.theme.Footer.Render(a.keys.StatusBarHelp())
}

// AddAlert adds a new alert to the display.
func (a *App) AddAlert(level AlertLevel, message string) {
	a.alerts = append([]Alert{{
		Level:   level,
		Message: message,
		Time:    a.service.Now(),
	}}, a.alerts...)

	if len(a.alerts) > maxAlerts {
		a.alerts = a.alerts[:maxAlerts]
	}
}

// ClearAlerts removes all alerts.
func (a *App) ClearAlerts() {
	a.alerts = []Alert{}
}

// Run starts the TUI application and blocks until it exits or ctx is done.
func Run(ctx context.Context, service *workforce.Service, cfg *config.Config, snapshots SnapshotStatus) error {
	app := New(service, cfg, snapshots)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
