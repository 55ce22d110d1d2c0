package util

import (
	"testing"
	"time"
)

func TestIDGenerator_NewID(t *testing.T) {
	gen := NewIDGenerator()

	seen := make(map[string]bool)
	var prev string
	for i := 0; i < 200; i++ {
		id := gen.NewID()
		if !IsValidID(id) {
			t.Fatalf("generated invalid id %q", id)
		}
		if IDVersion(id) != 7 {
			t.Fatalf("expected version 7, got %d for %q", IDVersion(id), id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
		if prev != "" && id[:18] < prev[:18] {
			t.Fatalf("ids not time ordered: %q after %q", id, prev)
		}
		prev = id
	}
}

func TestIDGenerator_SameMillisecond(t *testing.T) {
	fixed := time.UnixMilli(1_760_000_000_000)
	gen := &IDGenerator{now: func() time.Time { return fixed }}

	a := gen.NewID()
	b := gen.NewID()
	if a == b {
		t.Fatal("expected distinct ids within one millisecond")
	}
	if b[:18] <= a[:18] {
		t.Errorf("expected counter to order ids: %q then %q", a, b)
	}
}

func TestParseID(t *testing.T) {
	if _, err := ParseID("not-a-uuid"); err == nil {
		t.Error("expected error for invalid id")
	}

	id, err := ParseID("0192F1A0-0000-7000-8000-000000000000")
	if err != nil {
		t.Fatalf("ParseID() error: %v", err)
	}
	if id != "0192f1a0-0000-7000-8000-000000000000" {
		t.Errorf("ParseID() = %q, want lowercase form", id)
	}
}
