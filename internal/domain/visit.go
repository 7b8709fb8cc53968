package domain

import "time"

// VisitLog records one accepted/attended activity and its outcome. It is
// the only write path into the attractor state.
type VisitLog struct {
	ID             string
	ActivityID     string
	AttendedAt     time.Time
	Outcome        VisitOutcome
	NewConnections int
	Note           string
	CreatedAt      time.Time
}
