package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/utilboard/utilboard/internal/config"
	"github.com/utilboard/utilboard/internal/services/workforce"
	"github.com/utilboard/utilboard/internal/util"
)

// testNow is the frozen dashboard time used by every TUI test.
var testNow = time.Date(2026, time.October, 14, 10, 30, 0, 0, time.UTC)

// newTestService creates a workforce service with a frozen clock.
func newTestService(t *testing.T) *workforce.Service {
	t.Helper()
	return workforce.NewService(workforce.DefaultConfig(), util.NewClock(testNow), workforce.NewRosterCache())
}

// newTestApp creates an App with a default config and a frozen clock.
// The window is set to 120x40 and marked ready.
func newTestApp(t *testing.T) *App {
	t.Helper()

	app := New(newTestService(t), config.Default(), nil)

	// Simulate a window size message to make the app ready
	app.width = 120
	app.height = 40
	app.ready = true

	return app
}

// keyMsg creates a tea.KeyMsg for a regular character key.
func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// specialKeyMsg creates a tea.KeyMsg for a special key type.
func specialKeyMsg(keyType tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: keyType}
}

// fakeSnapshots is a SnapshotStatus with settable state.
type fakeSnapshots struct {
	next time.Time
	runs int
	err  error
}

func (f *fakeSnapshots) Next() time.Time  { return f.next }
func (f *fakeSnapshots) Runs() int        { return f.runs }
func (f *fakeSnapshots) LastError() error { return f.err }
