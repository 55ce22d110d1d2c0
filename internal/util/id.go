// Package util provides calendar, identifier and seeded-selection helpers.
package util

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// IDGenerator provides thread-safe UUIDv7 generation with monotonic timestamps.
// Snapshot ids are time-ordered so exports list in creation order.
type IDGenerator struct {
	mu       sync.Mutex
	lastTime int64
	counter  uint16
	now      func() time.Time
}

// NewIDGenerator creates a new ID generator.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{now: time.Now}
}

// NewID generates a new UUIDv7 identifier from this generator.
func (g *IDGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now().UnixMilli()

	if now <= g.lastTime {
		// Same millisecond (or a clock step back): keep ordering with the counter.
		now = g.lastTime
		g.counter++
		if g.counter == 0 {
			now++
		}
	} else {
		g.counter = 0
	}
	g.lastTime = now

	return generateUUIDv7(now, g.counter)
}

// generateUUIDv7 creates a UUIDv7 from a timestamp and counter.
func generateUUIDv7(unixMilli int64, counter uint16) string {
	var id uuid.UUID

	binary.BigEndian.PutUint32(id[0:4], uint32(unixMilli>>16))
	binary.BigEndian.PutUint16(id[4:6], uint16(unixMilli))

	// Version 7 plus the high bits of the counter
	id[6] = 0x70 | (byte(counter>>8) & 0x0F)
	id[7] = byte(counter)

	rand.Read(id[8:])
	id[8] = (id[8] & 0x3F) | 0x80 // RFC 4122 variant

	return id.String()
}

// ParseID validates and normalizes a UUID string.
func ParseID(s string) (string, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid ID format: %w", err)
	}
	return id.String(), nil
}

// IsValidID checks if a string is a valid UUID format.
func IsValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// IDVersion returns the UUID version of s, or 0 if s is not a UUID.
func IDVersion(s string) int {
	id, err := uuid.Parse(s)
	if err != nil {
		return 0
	}
	return int(id.Version())
}
