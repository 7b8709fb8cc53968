package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// FeedSchema is the top-level JSON structure for an activity feed import.
type FeedSchema struct {
	Events         []EventImport `json:"events"`
	DiscoverySlots []SlotImport  `json:"discovery_slots,omitempty"`
}

// EventImport defines one campus event in the feed file.
type EventImport struct {
	Title               string   `json:"title"`
	Department          string   `json:"department,omitempty"`
	Category            string   `json:"category,omitempty"`
	Location            string   `json:"location,omitempty"`
	StartTime           string   `json:"start_time"`
	DurationMin         int      `json:"duration_min"`
	IsFree              *bool    `json:"is_free,omitempty"`
	AttendeeDepartments []string `json:"attendee_departments,omitempty"`
	DiscoverySlot       bool     `json:"discovery_slot,omitempty"`
}

// SlotImport defines one open-invitation discovery slot in the feed file.
type SlotImport struct {
	OrganizerID    string   `json:"organizer_id,omitempty"`
	OrganizerType  string   `json:"organizer_type,omitempty"`
	Name           string   `json:"name"`
	Location       string   `json:"location,omitempty"`
	Description    string   `json:"description,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	AvailableTimes []string `json:"available_times,omitempty"`
}

// LoadFeedSchema reads and parses an activity feed JSON file.
func LoadFeedSchema(path string) (*FeedSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema FeedSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing feed file: %w", err)
	}
	return &schema, nil
}
