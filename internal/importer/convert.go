package importer

import (
	"time"

	"github.com/google/uuid"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
)

// Feed is the converted, persistable form of a feed file, plus the
// per-record warnings accumulated while converting.
type Feed struct {
	Activities []*domain.Activity
	Slots      []*domain.DiscoverySlotOffer
	Skipped    int
	Warnings   []string
}

// Convert validates and transforms a parsed feed into domain objects.
// Invalid records are skipped with warnings rather than failing the feed.
func Convert(schema *FeedSchema) *Feed {
	now := time.Now().UTC()
	feed := &Feed{}

	for i := range schema.Events {
		e := &schema.Events[i]
		if warnings := ValidateEvent(i, e); len(warnings) > 0 {
			feed.Warnings = append(feed.Warnings, warnings...)
			feed.Skipped++
			continue
		}
		feed.Activities = append(feed.Activities, convertEvent(e, now))
	}

	for i := range schema.DiscoverySlots {
		s := &schema.DiscoverySlots[i]
		if warnings := ValidateSlot(i, s); len(warnings) > 0 {
			feed.Warnings = append(feed.Warnings, warnings...)
			feed.Skipped++
			continue
		}
		feed.Slots = append(feed.Slots, convertSlot(s, now))
	}

	return feed
}

func convertEvent(e *EventImport, now time.Time) *domain.Activity {
	start, _ := time.Parse(time.RFC3339, e.StartTime)

	isFree := true
	if e.IsFree != nil {
		isFree = *e.IsFree
	}

	return &domain.Activity{
		ID:                  uuid.New().String(),
		Title:               e.Title,
		Department:          e.Department,
		Category:            domain.NormalizeCategory(e.Category),
		Location:            e.Location,
		StartTime:           start,
		DurationMin:         e.DurationMin,
		IsFree:              isFree,
		AttendeeDepartments: e.AttendeeDepartments,
		DiscoverySlot:       e.DiscoverySlot,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

func convertSlot(s *SlotImport, now time.Time) *domain.DiscoverySlotOffer {
	times := make([]time.Time, 0, len(s.AvailableTimes))
	for _, ts := range s.AvailableTimes {
		t, _ := time.Parse(time.RFC3339, ts)
		times = append(times, t)
	}

	orgType := domain.OrganizerType(s.OrganizerType)
	if s.OrganizerType == "" {
		orgType = domain.OrganizerClub
	}

	return &domain.DiscoverySlotOffer{
		ID:             uuid.New().String(),
		OrganizerID:    s.OrganizerID,
		OrganizerType:  orgType,
		Name:           s.Name,
		Location:       s.Location,
		Description:    s.Description,
		Tags:           s.Tags,
		AvailableTimes: times,
		CreatedAt:      now,
	}
}
