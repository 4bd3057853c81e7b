package domain

import "time"

// IssueStatus is the lifecycle state of a reported issue.
type IssueStatus string

const (
	IssueStatusOpen     IssueStatus = "Open"
	IssueStatusResolved IssueStatus = "Resolved"
)

// Valid reports whether the status is one of the known states.
func (s IssueStatus) Valid() bool {
	return s == IssueStatusOpen || s == IssueStatusResolved
}

// Issue is a reported community problem with a funding target. Status moves
// Open -> Resolved exactly once, driven by the contribution ledger.
type Issue struct {
	ID            string
	Title         string
	Description   string
	Category      string
	Amount        float64
	Status        IssueStatus
	ReporterEmail string
	CreatedAt     time.Time
}

// IssueListParams filters and paginates an issue listing. Search matches the
// title case-insensitively; Category is an exact match. Zero values disable
// the corresponding filter.
type IssueListParams struct {
	Search   string
	Category string
	Page     int
	Limit    int
}

// IssuePage is one page of a filtered listing together with the totals
// computed over the same filter.
type IssuePage struct {
	Items      []Issue
	TotalCount int64
	TotalPages int64
}

// IssuePatch carries the editable issue fields for a partial update. Nil
// fields are left untouched.
type IssuePatch struct {
	Title       *string
	Description *string
	Category    *string
	Amount      *float64
	Status      *IssueStatus
}
