package intent

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dkwarude-cell/AMD-Karm-Ai/internal/domain"
)

// defaultChatBudgetMin is the time ceiling assumed when neither the query
// nor the student's profile supplies one. At this value the ceiling is not
// enforced unless an explicit duration cue appeared.
const defaultChatBudgetMin = 120

// shortCueMinutes is the ceiling implied by "short" or "quick".
const shortCueMinutes = 30

// NoMatchGuidance is shown when no candidate survives the parsed filter.
const NoMatchGuidance = "No events match that right now. Try a broader query, or ask for \"something new\" to break your bubble."

// DefaultExplanation is used when no rule fired at all.
const DefaultExplanation = "Best matches for you"

// Filter is the structured outcome of parsing a query.
type Filter struct {
	EveningOnly bool
	// Categories is nil when no category cue fired; otherwise the candidate
	// set is restricted to these categories.
	Categories []domain.ActivityCategory
	FreeOnly   bool
	// MaxMinutes is the duration ceiling. It is only enforced when Bounded
	// is true.
	MaxMinutes int
	Bounded    bool
	// NoveltySort orders candidates by how many of their attendee
	// departments the student has not visited.
	NoveltySort bool

	fragments []string
}

// Explanation joins the fired rules' fragments into one sentence-per-rule
// summary of how the query was interpreted.
func (f Filter) Explanation() string {
	if len(f.fragments) == 0 {
		return DefaultExplanation
	}
	return strings.Join(f.fragments, ". ")
}

func (f Filter) allowsCategory(cat domain.ActivityCategory) bool {
	if f.Categories == nil {
		return true
	}
	for _, c := range f.Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// Matcher parses queries. The zero value is ready to use; BudgetMin
// overrides the uncued time ceiling assumed for profiles that carry none.
type Matcher struct {
	BudgetMin int
}

func (m Matcher) budget() int {
	if m.BudgetMin > 0 {
		return m.BudgetMin
	}
	return defaultChatBudgetMin
}

// rule is one predicate/effect pair. Rules are evaluated in declaration
// order; each fired rule contributes one explanation fragment. Category
// rules re-assign the category set, so when several category cues appear
// the last one in precedence order determines the filter.
type rule struct {
	name    string
	applies func(q Query, p *domain.StudentProfile) bool
	apply   func(f *Filter, q Query, p *domain.StudentProfile) string
}

func categoryRule(name, fragment string, cats []domain.ActivityCategory, words ...string) rule {
	return rule{
		name: name,
		applies: func(q Query, _ *domain.StudentProfile) bool {
			return q.HasToken(words...)
		},
		apply: func(f *Filter, _ Query, _ *domain.StudentProfile) string {
			f.Categories = cats
			return fragment
		},
	}
}

func (m Matcher) rules() []rule {
	return []rule{
		{
			name: "evening",
			applies: func(q Query, _ *domain.StudentProfile) bool {
				return q.HasToken("tonight", "evening")
			},
			apply: func(f *Filter, _ Query, _ *domain.StudentProfile) string {
				f.EveningOnly = true
				return "Showing evening events"
			},
		},
		categoryRule("workshop", "Filtered to workshops",
			[]domain.ActivityCategory{domain.CategoryWorkshop}, "workshop", "workshops"),
		categoryRule("talk", "Filtered to talks & lectures",
			[]domain.ActivityCategory{domain.CategoryTalk}, "talk", "talks", "lecture", "lectures"),
		categoryRule("social", "Showing social & interactive events",
			[]domain.ActivityCategory{domain.CategorySocial, domain.CategoryPerformance},
			"social", "meet", "people", "network", "networking"),
		categoryRule("sports", "Filtered to sports events",
			[]domain.ActivityCategory{domain.CategorySports}, "sport", "sports", "fitness"),
		{
			name: "free",
			applies: func(q Query, p *domain.StudentProfile) bool {
				return q.HasToken("free") || (p != nil && p.FreeOnly)
			},
			apply: func(f *Filter, _ Query, _ *domain.StudentProfile) string {
				f.FreeOnly = true
				return "Free events only"
			},
		},
		{
			name: "duration",
			applies: func(Query, *domain.StudentProfile) bool { return true },
			apply: func(f *Filter, q Query, p *domain.StudentProfile) string {
				ceiling := m.budget()
				if p != nil && p.TimeBudgetMin != nil {
					ceiling = *p.TimeBudgetMin
				}
				cued := false
				if n, ok := q.ExplicitMinutes(); ok {
					ceiling = n
					cued = true
				} else if q.HasToken("short", "quick") {
					ceiling = shortCueMinutes
					cued = true
				}
				if !cued && ceiling >= m.budget() {
					return ""
				}
				f.MaxMinutes = ceiling
				f.Bounded = true
				return fmt.Sprintf("Under %d minutes", ceiling)
			},
		},
		{
			name: "novelty",
			applies: func(q Query, _ *domain.StudentProfile) bool {
				return q.HasToken("bubble", "new", "explore", "bored")
			},
			apply: func(f *Filter, _ Query, _ *domain.StudentProfile) string {
				f.NoveltySort = true
				return "Sorted by bubble-breaking potential"
			},
		},
	}
}

// Normalize parses a raw query against the student's profile and returns
// the structured filter.
func (m Matcher) Normalize(raw string, profile *domain.StudentProfile) Filter {
	q := NewQuery(raw)
	var f Filter
	for _, r := range m.rules() {
		if !r.applies(q, profile) {
			continue
		}
		if frag := r.apply(&f, q, profile); frag != "" {
			f.fragments = append(f.fragments, frag)
		}
	}
	return f
}

// Apply filters and orders candidates per the parsed query. The relative
// order of equally-ranked candidates is preserved.
func Apply(f Filter, candidates []domain.Activity, visited map[string]bool) []domain.Activity {
	out := make([]domain.Activity, 0, len(candidates))
	for _, a := range candidates {
		if f.EveningOnly && !a.StartsEvening() {
			continue
		}
		if !f.allowsCategory(a.Category) {
			continue
		}
		if f.FreeOnly && !a.IsFree {
			continue
		}
		if f.Bounded && a.DurationMin > f.MaxMinutes {
			continue
		}
		out = append(out, a)
	}
	if f.NoveltySort {
		sort.SliceStable(out, func(i, j int) bool {
			return noveltyScore(out[i], visited) > noveltyScore(out[j], visited)
		})
	}
	return out
}

func noveltyScore(a domain.Activity, visited map[string]bool) int {
	n := 0
	for _, dept := range a.AttendeeDepartments {
		if !visited[strings.ToLower(dept)] {
			n++
		}
	}
	return n
}

// Match is the one-shot convenience: normalize the query, apply the filter,
// and keep at most limit candidates.
func (m Matcher) Match(raw string, profile *domain.StudentProfile, candidates []domain.Activity, visited map[string]bool, limit int) ([]domain.Activity, Filter) {
	f := m.Normalize(raw, profile)
	matched := Apply(f, candidates, visited)
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, f
}

// Normalize parses with the default uncued ceiling.
func Normalize(raw string, profile *domain.StudentProfile) Filter {
	return Matcher{}.Normalize(raw, profile)
}

// Match matches with the default uncued ceiling.
func Match(raw string, profile *domain.StudentProfile, candidates []domain.Activity, visited map[string]bool, limit int) ([]domain.Activity, Filter) {
	return Matcher{}.Match(raw, profile, candidates, visited, limit)
}
