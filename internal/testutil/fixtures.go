package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
)

// Activity options
type ActivityOption func(*domain.Activity)

func WithDepartment(dept string) ActivityOption {
	return func(a *domain.Activity) { a.Department = dept }
}

func WithCategory(cat domain.ActivityCategory) ActivityOption {
	return func(a *domain.Activity) { a.Category = cat }
}

func WithLocation(loc string) ActivityOption {
	return func(a *domain.Activity) { a.Location = loc }
}

func WithStartTime(ts time.Time) ActivityOption {
	return func(a *domain.Activity) { a.StartTime = ts }
}

func WithDuration(min int) ActivityOption {
	return func(a *domain.Activity) { a.DurationMin = min }
}

func WithPaidEntry() ActivityOption {
	return func(a *domain.Activity) { a.IsFree = false }
}

func WithAttendees(depts ...string) ActivityOption {
	return func(a *domain.Activity) { a.AttendeeDepartments = depts }
}

func WithDiscoverySlot() ActivityOption {
	return func(a *domain.Activity) { a.DiscoverySlot = true }
}

// NewTestActivity creates an activity with sensible defaults: a free
// one-hour talk on the day's afternoon.
func NewTestActivity(title string, opts ...ActivityOption) *domain.Activity {
	now := time.Now().UTC()
	a := &domain.Activity{
		ID:          uuid.New().String(),
		Title:       title,
		Department:  "Computer Science",
		Category:    domain.CategoryTalk,
		Location:    "Main Auditorium",
		StartTime:   time.Date(now.Year(), now.Month(), now.Day(), 14, 0, 0, 0, time.UTC),
		DurationMin: 60,
		IsFree:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Profile options
type ProfileOption func(*domain.StudentProfile)

func WithInterests(interests ...string) ProfileOption {
	return func(p *domain.StudentProfile) { p.Interests = interests }
}

func WithSkills(skills ...string) ProfileOption {
	return func(p *domain.StudentProfile) { p.Skills = skills }
}

func WithTimeBudget(min int) ProfileOption {
	return func(p *domain.StudentProfile) { p.TimeBudgetMin = &min }
}

func WithFreeOnly() ProfileOption {
	return func(p *domain.StudentProfile) { p.FreeOnly = true }
}

func WithAccessibility(tags ...domain.AccessibilityTag) ProfileOption {
	return func(p *domain.StudentProfile) { p.Accessibility = tags }
}

// NewTestProfile creates a student profile with defaults matching the
// singleton row the profile repository manages.
func NewTestProfile(opts ...ProfileOption) *domain.StudentProfile {
	now := time.Now().UTC()
	p := &domain.StudentProfile{
		ID:         "default",
		Name:       "Asha",
		Department: "Computer Science",
		Year:       2,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Attractor options
type AttractorOption func(*domain.AttractorState)

func WithVisitedDepartments(depts ...string) AttractorOption {
	return func(a *domain.AttractorState) { a.DepartmentsVisited = depts }
}

func WithCategoriesAttended(cats ...string) AttractorOption {
	return func(a *domain.AttractorState) { a.CategoriesAttended = cats }
}

func WithConnectionCount(n int) AttractorOption {
	return func(a *domain.AttractorState) { a.ConnectionCount = n }
}

// NewTestAttractor creates an attractor state seeded with the student's own
// department, the minimal realistic visited set.
func NewTestAttractor(opts ...AttractorOption) *domain.AttractorState {
	a := &domain.AttractorState{
		StudentID:          "default",
		DepartmentsVisited: []string{"Computer Science"},
		LastUpdated:        time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
