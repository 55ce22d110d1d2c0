package workforce

import (
	"sync"

	"github.com/utilboard/utilboard/internal/models"
)

// RosterCache stores generated rosters by project id. Each key is computed
// at most once; concurrent first requests for the same id wait for the
// single fill and observe the same roster.
type RosterCache struct {
	mu      sync.Mutex
	entries map[string]*rosterEntry
}

type rosterEntry struct {
	once      sync.Once
	resources []models.ProjectResource
}

// NewRosterCache creates an empty roster cache.
func NewRosterCache() *RosterCache {
	return &RosterCache{entries: make(map[string]*rosterEntry)}
}

// GetOrFill returns the cached roster for projectID, calling fill exactly
// once per key to populate it. The boolean reports whether fill ran.
func (c *RosterCache) GetOrFill(projectID string, fill func() []models.ProjectResource) ([]models.ProjectResource, bool) {
	c.mu.Lock()
	entry, ok := c.entries[projectID]
	if !ok {
		entry = &rosterEntry{}
		c.entries[projectID] = entry
	}
	c.mu.Unlock()

	filled := false
	entry.once.Do(func() {
		entry.resources = fill()
		filled = true
	})

	return entry.resources, filled
}

// Len returns the number of cached rosters.
func (c *RosterCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Reset drops every cached roster.
func (c *RosterCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*rosterEntry)
}
