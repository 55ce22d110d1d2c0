package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	// Navigation
	Up       Key
	Down     Key
	PageUp   Key
	PageDown Key
	Home     Key
	End      Key

	// Actions
	Select Key
	Back   Key
	Quit   Key
	Help   Key

	// Function keys for module navigation
	F1  Key
	F2  Key
	F3  Key
	F4  Key
	F5  Key
	F10 Key

	// Dashboard and projects
	Location Key
	Period   Key
	Bookings Key

	// Directory filters
	Role      Key
	Grade     Key
	Office    Key
	Status    Key
	Clear     Key
	SortField Key

	// Bench filters
	Search       Key
	Family       Key
	Skill        Key
	Availability Key
}

// Key represents a key binding.
type Key struct {
	Keys    []string
	Help    string
	Enabled bool
}

func newKey(help string, keys ...string) Key {
	return Key{Keys: keys, Help: help, Enabled: true}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       newKey("up", "up", "k"),
		Down:     newKey("down", "down", "j"),
		PageUp:   newKey("page up", "pgup", "ctrl+u"),
		PageDown: newKey("page down", "pgdown", "ctrl+d"),
		Home:     newKey("home", "home"),
		End:      newKey("end", "end"),

		Select: newKey("select", "enter"),
		Back:   newKey("back", "esc", "backspace"),
		Quit:   newKey("quit", "q", "ctrl+c"),
		Help:   newKey("help", "?", "f1"),

		F1:  newKey("Help", "f1"),
		F2:  newKey("Dashboard", "f2"),
		F3:  newKey("Projects", "f3"),
		F4:  newKey("Directory", "f4"),
		F5:  newKey("Bench", "f5"),
		F10: newKey("Quit", "f10"),

		Location: newKey("location", "l"),
		Period:   newKey("period", "p"),
		Bookings: newKey("bookings", "b"),

		Role:      newKey("role", "r"),
		Grade:     newKey("grade", "g"),
		Office:    newKey("office", "o"),
		Status:    newKey("status", "s"),
		Clear:     newKey("clear filters", "x"),
		SortField: newKey("sort", "1", "2", "3", "4", "5"),

		Search:       newKey("search", "/"),
		Family:       newKey("job family", "f"),
		Skill:        newKey("skill", "t"),
		Availability: newKey("availability", "v"),
	}
}

// Matches checks if a key message matches this key binding.
func (k Key) Matches(msg tea.KeyMsg) bool {
	if !k.Enabled {
		return false
	}

	keyStr := msg.String()
	for _, key := range k.Keys {
		if keyStr == key {
			return true
		}
	}
	return false
}

// MatchesAny checks if a key message matches any of the provided key bindings.
func MatchesAny(msg tea.KeyMsg, keys ...Key) bool {
	for _, k := range keys {
		if k.Matches(msg) {
			return true
		}
	}
	return false
}

// IsQuit checks if the key message is a quit command.
func (km KeyMap) IsQuit(msg tea.KeyMsg) bool {
	return km.Quit.Matches(msg) || km.F10.Matches(msg)
}

// IsFunctionKey checks if the key message is a function key.
func (km KeyMap) IsFunctionKey(msg tea.KeyMsg) bool {
	return MatchesAny(msg, km.F1, km.F2, km.F3, km.F4, km.F5, km.F10)
}

// GetFunctionKeyModule returns the module for a function key, or "" when
// msg is not a module key.
func (km KeyMap) GetFunctionKeyModule(msg tea.KeyMsg) Module {
	switch {
	case km.F1.Matches(msg):
		return ModuleHelp
	case km.F2.Matches(msg):
		return ModuleDashboard
	case km.F3.Matches(msg):
		return ModuleProjects
	case km.F4.Matches(msg):
		return ModuleDirectory
	case km.F5.Matches(msg):
		return ModuleBench
	default:
		return ""
	}
}

// SortIndex returns the zero-based column picked by a sort key, or -1.
func (km KeyMap) SortIndex(msg tea.KeyMsg) int {
	if !km.SortField.Matches(msg) {
		return -1
	}
	return int(msg.String()[0] - '1')
}

// StatusBarHelp returns the help text for the status bar.
func (km KeyMap) StatusBarHelp() string {
	return "[F1]Help [F2]Dashboard [F3]Projects [F4]Directory [F5]Bench [F10]Quit"
}
