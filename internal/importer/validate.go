package importer

import (
	"fmt"
	"time"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
)

var validOrganizerTypes = map[string]bool{"club": true, "vendor": true, "event": true}

// ValidateEvent checks one feed event. A non-empty return means the record
// should be skipped; the feed as a whole still imports.
func ValidateEvent(idx int, e *EventImport) []string {
	var warnings []string

	if e.Title == "" {
		warnings = append(warnings, fmt.Sprintf("events[%d]: title is required", idx))
	}
	if e.StartTime == "" {
		warnings = append(warnings, fmt.Sprintf("events[%d] %q: start_time is required", idx, e.Title))
	} else if _, err := time.Parse(time.RFC3339, e.StartTime); err != nil {
		warnings = append(warnings, fmt.Sprintf("events[%d] %q: invalid start_time %q (expected RFC3339)", idx, e.Title, e.StartTime))
	}
	if e.DurationMin <= 0 {
		warnings = append(warnings, fmt.Sprintf("events[%d] %q: duration_min must be positive, got %d", idx, e.Title, e.DurationMin))
	}
	if e.Category != "" && !domain.ValidCategories[e.Category] {
		warnings = append(warnings, fmt.Sprintf("events[%d] %q: unknown category %q", idx, e.Title, e.Category))
	}

	return warnings
}

// ValidateSlot checks one discovery slot entry.
func ValidateSlot(idx int, s *SlotImport) []string {
	var warnings []string

	if s.Name == "" {
		warnings = append(warnings, fmt.Sprintf("discovery_slots[%d]: name is required", idx))
	}
	if s.OrganizerType != "" && !validOrganizerTypes[s.OrganizerType] {
		warnings = append(warnings, fmt.Sprintf("discovery_slots[%d] %q: unknown organizer_type %q", idx, s.Name, s.OrganizerType))
	}
	for _, ts := range s.AvailableTimes {
		if _, err := time.Parse(time.RFC3339, ts); err != nil {
			warnings = append(warnings, fmt.Sprintf("discovery_slots[%d] %q: invalid available time %q", idx, s.Name, ts))
		}
	}

	return warnings
}
