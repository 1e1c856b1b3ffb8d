package registration

import (
	"testing"
)

// TestRegistryInsertionOrder tests that records stay in insertion order
func TestRegistryInsertionOrder(t *testing.T) {
	registry := NewRegistry()

	first := Registration{Name: "Jo", Age: 20, Email: "jo@example.com", Course: CoursePhysics}
	second := Registration{Name: "Sam", Age: 22, Email: "sam@example.com", Course: CourseBiology}
	third := Registration{Name: "Jo", Age: 20, Email: "jo@example.com", Course: CoursePhysics}

	registry.Add(first)
	registry.Add(second)
	registry.Add(third)

	records := registry.Records()
	if len(records) != 3 {
		t.Fatalf("Len = %d, want 3", len(records))
	}
	if records[0] != first || records[1] != second || records[2] != third {
		t.Errorf("Records() out of insertion order: %+v", records)
	}
}

// TestRegistryNoDedup tests that duplicate records are kept
func TestRegistryNoDedup(t *testing.T) {
	registry := NewRegistry()
	rec := Registration{Name: "Jo", Age: 20, Email: "jo@example.com", Course: CoursePhysics}

	registry.Add(rec)
	registry.Add(rec)

	if registry.Len() != 2 {
		t.Errorf("Len = %d, want 2 (registry must not deduplicate)", registry.Len())
	}
}

// TestRegistryRecordsIsCopy tests that the snapshot is isolated
func TestRegistryRecordsIsCopy(t *testing.T) {
	registry := NewRegistry()
	registry.Add(Registration{Name: "Jo", Age: 20, Email: "jo@example.com", Course: CoursePhysics})

	records := registry.Records()
	records[0].Name = "Mutated"

	if got := registry.Records()[0].Name; got != "Jo" {
		t.Errorf("registry record mutated through snapshot: Name = %q", got)
	}
}

// TestRegistryEmpty tests the zero state
func TestRegistryEmpty(t *testing.T) {
	registry := NewRegistry()

	if registry.Len() != 0 {
		t.Errorf("Len = %d, want 0", registry.Len())
	}
	if records := registry.Records(); len(records) != 0 {
		t.Errorf("Records() = %v, want empty", records)
	}
}
