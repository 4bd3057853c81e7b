package domain

import "time"

// Contribution is a monetary pledge by a user toward one issue's funding
// target. Contributions are immutable once recorded; the raised total for an
// issue is always recomputed from these rows rather than kept as a counter.
type Contribution struct {
	ID        string
	IssueID   string
	UserEmail string
	Amount    float64
	CreatedAt time.Time
}
