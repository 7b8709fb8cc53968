package domain

import (
	"math"
	"strings"
	"time"
)

// Universe sizes for the bubble computation. The campus has a fixed number
// of departments, canteen counters, event categories, and content domains;
// each visited-set ratio is taken against its universe.
const (
	TotalDepartments    = 14
	TotalCanteenCounters = 8
	TotalEventCategories = 8
	TotalContentDomains  = 22
)

// AllDepartments is the canonical campus department list, used to surface
// unexplored areas.
var AllDepartments = []string{
	"Design & Architecture", "Performing Arts", "Philosophy",
	"Literature", "Economics", "Psychology", "Sports Science",
	"Music", "Fine Arts", "Chemistry", "Physics", "Business",
	"Civil Engineering", "Biotech",
}

// AttractorState is the running summary of where a student has already
// been: the engine reads a snapshot of it to detect novelty. Mutation
// happens through visit logging, never inside a scoring pass.
type AttractorState struct {
	StudentID           string
	DepartmentsVisited  []string
	CanteenCountersUsed []string
	CategoriesAttended  []string
	ContentDomains      []string
	ConnectionCount     int
	LastUpdated         time.Time
}

// HasVisited reports whether dept is in the visited set, case-insensitively.
func (a *AttractorState) HasVisited(dept string) bool {
	for _, d := range a.DepartmentsVisited {
		if strings.EqualFold(d, dept) {
			return true
		}
	}
	return false
}

// VisitedSet returns the lower-cased visited-department set.
func (a *AttractorState) VisitedSet() map[string]bool {
	set := make(map[string]bool, len(a.DepartmentsVisited))
	for _, d := range a.DepartmentsVisited {
		set[strings.ToLower(d)] = true
	}
	return set
}

// BubblePercentage estimates how much of the campus's diversity the
// student has been exposed to, 0-100. Product-complement form
// B = 1 - prod((1 - Vk/Uk)^wk): an empty dimension pulls the whole
// score toward zero instead of averaging out.
func (a *AttractorState) BubblePercentage() float64 {
	ratios := []float64{
		float64(len(a.DepartmentsVisited)) / TotalDepartments,
		float64(len(a.CanteenCountersUsed)) / TotalCanteenCounters,
		float64(len(a.CategoriesAttended)) / TotalEventCategories,
		float64(len(a.ContentDomains)) / TotalContentDomains,
	}
	weights := []float64{0.35, 0.20, 0.30, 0.15}

	product := 1.0
	for i, r := range ratios {
		if r > 1 {
			r = 1
		}
		product *= math.Pow(1-r, weights[i])
	}
	return math.Round((1-product)*1000) / 10
}

// UnexploredDepartments returns up to limit campus departments the student
// has not visited yet, in canonical order.
func (a *AttractorState) UnexploredDepartments(limit int) []string {
	var out []string
	for _, dept := range AllDepartments {
		if len(out) >= limit {
			break
		}
		if !a.HasVisited(dept) {
			out = append(out, dept)
		}
	}
	return out
}

// RecordVisit folds an attended activity into the attractor sets.
func (a *AttractorState) RecordVisit(dept string, category ActivityCategory, when time.Time) {
	if dept != "" && !a.HasVisited(dept) {
		a.DepartmentsVisited = append(a.DepartmentsVisited, dept)
	}
	if !containsFold(a.CategoriesAttended, string(category)) {
		a.CategoriesAttended = append(a.CategoriesAttended, string(category))
	}
	a.LastUpdated = when
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
