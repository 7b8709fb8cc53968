package domain

import (
	"strings"
	"time"
)

// StudentProfile holds the caller-owned identity and constraint snapshot.
// The engine only reads it; persistence and mutation happen outside a
// scoring pass.
type StudentProfile struct {
	ID         string
	Name       string
	Department string
	Year       int

	Skills    []string
	Interests []string

	// TimeBudgetMin is nil when the student left the budget unconstrained.
	TimeBudgetMin *int
	FreeOnly      bool
	Accessibility []AccessibilityTag

	DriftScore  int
	DriftStreak int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// InterestSet returns the lower-cased union of interests and skills,
// the set queried by the interest-match scoring term.
func (p *StudentProfile) InterestSet() map[string]bool {
	set := make(map[string]bool, len(p.Interests)+len(p.Skills))
	for _, i := range p.Interests {
		set[strings.ToLower(i)] = true
	}
	for _, s := range p.Skills {
		set[strings.ToLower(s)] = true
	}
	return set
}

// NeedsStepFree reports whether any accessibility tag demands step-free access.
func (p *StudentProfile) NeedsStepFree() bool {
	for _, tag := range p.Accessibility {
		if StepFreeTags[tag] {
			return true
		}
	}
	return false
}

// HasAccessibility reports whether the profile carries the given tag.
func (p *StudentProfile) HasAccessibility(tag AccessibilityTag) bool {
	for _, t := range p.Accessibility {
		if t == tag {
			return true
		}
	}
	return false
}
