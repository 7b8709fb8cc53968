// Package intent turns a free-text query into a structured candidate
// filter. Parsing is an ordered list of independent predicate/effect rules
// over a lower-cased, tokenized query; rules are non-exclusive and new cues
// can be added without perturbing the documented precedence.
package intent

import (
	"regexp"
	"strings"
)

// Query is a normalized free-text query: the raw string, its lower-cased
// form, and a token set split on non-alphanumeric runs.
type Query struct {
	Raw    string
	lower  string
	tokens map[string]bool
}

var tokenSplit = regexp.MustCompile(`[^a-z0-9]+`)

// NewQuery normalizes a raw query string.
func NewQuery(raw string) Query {
	lower := strings.ToLower(raw)
	tokens := make(map[string]bool)
	for _, tok := range tokenSplit.Split(lower, -1) {
		if tok != "" {
			tokens[tok] = true
		}
	}
	return Query{Raw: raw, lower: lower, tokens: tokens}
}

// HasToken reports whether any of the given words appears as a whole token.
func (q Query) HasToken(words ...string) bool {
	for _, w := range words {
		if q.tokens[w] {
			return true
		}
	}
	return false
}

var durationPattern = regexp.MustCompile(`(\d+)\s*min`)

// ExplicitMinutes extracts an explicit "<N> min" cue, returning the minute
// value and whether one was present.
func (q Query) ExplicitMinutes() (int, bool) {
	m := durationPattern.FindStringSubmatch(q.lower)
	if m == nil {
		return 0, false
	}
	n := 0
	for _, c := range m[1] {
		n = n*10 + int(c-'0')
	}
	return n, true
}
