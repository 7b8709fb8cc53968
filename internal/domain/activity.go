package domain

import (
	"strings"
	"time"
)

// Activity is one campus event candidate. Immutable for the duration of a
// scoring or planning pass; the engine only ever reads it.
type Activity struct {
	ID         string
	Title      string
	Department string
	Category   ActivityCategory
	Location   string
	StartTime  time.Time
	DurationMin int
	IsFree     bool

	// Departments expected to show up, used for interest matching and
	// novelty scoring.
	AttendeeDepartments []string

	// DiscoverySlot marks activities designed for cross-department contact.
	DiscoverySlot bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StartsEvening reports whether the activity begins at or after 17:00 local time.
func (a *Activity) StartsEvening() bool {
	return a.StartTime.Hour() >= 17
}

// DepartmentTags returns the activity's own department plus the expected
// attendee departments, the tag set the scorer and planner match against.
func (a *Activity) DepartmentTags() []string {
	tags := make([]string, 0, len(a.AttendeeDepartments)+1)
	tags = append(tags, a.Department)
	tags = append(tags, a.AttendeeDepartments...)
	return tags
}

// DiscoverySlotOffer is a non-timed open invitation (club open hours, vendor
// popups) scored by tag overlap rather than department novelty.
type DiscoverySlotOffer struct {
	ID            string
	OrganizerID   string
	OrganizerType OrganizerType
	Name          string
	Location      string
	Description   string
	Tags          []string
	AvailableTimes []time.Time
	CreatedAt     time.Time
}

// HasTag reports whether tag appears in the offer's tag set, case-insensitively.
func (d *DiscoverySlotOffer) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
