package app

import "time"

// AskRequest is the conversational path: a free-text query matched against
// the activity list with the caller's profile as implicit context.
type AskRequest struct {
	Query string
	Limit int
	Now   *time.Time
}

// NewAskRequest returns a request with the default chat result limit.
func NewAskRequest(query string) AskRequest {
	return AskRequest{Query: query, Limit: 3}
}

// AskResponse carries the top matches and the concatenated explanation of
// which query rules fired. EmptyMessage is set when no candidate survives;
// the conversational surface must render it rather than an empty list.
type AskResponse struct {
	Explanation  string
	Matches      []RankedActivity
	EmptyMessage string
}
