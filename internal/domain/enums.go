package domain

type ActivityCategory string

const (
	CategoryTalk        ActivityCategory = "talk"
	CategoryWorkshop    ActivityCategory = "workshop"
	CategorySocial      ActivityCategory = "social"
	CategoryPerformance ActivityCategory = "performance"
	CategorySports      ActivityCategory = "sports"
	CategoryOther       ActivityCategory = "other"
)

// ValidCategories is the canonical set of accepted activity category strings.
var ValidCategories = map[string]bool{
	"talk": true, "workshop": true, "social": true,
	"performance": true, "sports": true, "other": true,
}

// NormalizeCategory maps a raw category string onto the enum, falling back
// to CategoryOther for anything unrecognized.
func NormalizeCategory(raw string) ActivityCategory {
	if ValidCategories[raw] {
		return ActivityCategory(raw)
	}
	return CategoryOther
}

type AccessibilityTag string

const (
	AccessWheelchair AccessibilityTag = "wheelchair"
	AccessElevator   AccessibilityTag = "elevator"
	AccessVisual     AccessibilityTag = "visual"
	AccessSensory    AccessibilityTag = "sensory"
)

// StepFreeTags are the accessibility tags that demand step-free access.
// A location without elevator or ramp is excluded outright when one of
// these is present in the constraints.
var StepFreeTags = map[AccessibilityTag]bool{
	AccessWheelchair: true,
	AccessElevator:   true,
}

type OrganizerType string

const (
	OrganizerClub   OrganizerType = "club"
	OrganizerVendor OrganizerType = "vendor"
	OrganizerEvent  OrganizerType = "event"
)

type VisitOutcome string

const (
	OutcomePending     VisitOutcome = "pending"
	OutcomeAttended    VisitOutcome = "attended"
	OutcomeSkipped     VisitOutcome = "skipped"
	OutcomeInteresting VisitOutcome = "interesting"
)
