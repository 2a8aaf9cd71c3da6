package core

import (
	"testing"
	"time"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	// Generate many IDs
	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestParseDatasetID tests dataset ID parsing
func TestParseDatasetID(t *testing.T) {
	tests := []struct {
		input    string
		expected DatasetID
		hasError bool
	}{
		{"valid-id", DatasetID("valid-id"), false},
		{"", "", true},
		{"   ", "", true},
	}

	for _, test := range tests {
		result, err := ParseDatasetID(test.input)
		if test.hasError && err == nil {
			t.Errorf("Expected error for input '%s', but got none", test.input)
		}
		if !test.hasError && err != nil {
			t.Errorf("Unexpected error for input '%s': %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, result)
		}
	}
}

// TestNewDayNormalizes tests that NewDay drops the time-of-day component
func TestNewDayNormalizes(t *testing.T) {
	local := time.Date(2025, 6, 15, 17, 42, 9, 120, time.FixedZone("X", 3600))
	day := NewDay(local)

	got := day.Time()
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
		t.Errorf("Expected UTC midnight, got %v", got)
	}
	if got.Location() != time.UTC {
		t.Errorf("Expected UTC location, got %v", got.Location())
	}
}

// TestDayRange tests consecutive day generation
func TestDayRange(t *testing.T) {
	start := time.Date(2025, 2, 27, 12, 0, 0, 0, time.UTC)
	days := DayRange(start, 3)

	if len(days) != 3 {
		t.Fatalf("Expected 3 days, got %d", len(days))
	}
	if days[0].String() != "2025-02-27" {
		t.Errorf("Expected 2025-02-27, got %s", days[0])
	}
	// Crosses the month boundary
	if days[2].String() != "2025-03-01" {
		t.Errorf("Expected 2025-03-01, got %s", days[2])
	}
	for i := 1; i < len(days); i++ {
		if !days[i-1].Before(days[i]) {
			t.Errorf("Days out of order at index %d", i)
		}
	}

	if got := DayRange(start, 0); got != nil {
		t.Errorf("Expected nil range for zero count, got %v", got)
	}
}
