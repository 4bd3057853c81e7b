package domain

import "context"

// IssueRepository defines persistence for issues.
type IssueRepository interface {
	Create(ctx context.Context, issue *Issue) (string, error)
	List(ctx context.Context, params IssueListParams) (*IssuePage, error)
	ListRecent(ctx context.Context, limit int) ([]Issue, error)
	GetByID(ctx context.Context, id string) (*Issue, error)
	ListByReporter(ctx context.Context, email string) ([]Issue, error)
	ListOpen(ctx context.Context) ([]Issue, error)
	Patch(ctx context.Context, id string, patch IssuePatch) (int64, error)
	Replace(ctx context.Context, id string, issue *Issue) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	// Resolve flips status to Resolved if it is not already; the returned
	// count is zero when the issue was resolved before, making the
	// transition idempotent under racing pledges.
	Resolve(ctx context.Context, id string) (int64, error)
}

// ContributionRepository defines persistence for contributions. There are no
// update or delete methods: contributions are immutable.
type ContributionRepository interface {
	Create(ctx context.Context, c *Contribution) (string, error)
	ListByIssue(ctx context.Context, issueID string) ([]Contribution, error)
	ListByUser(ctx context.Context, email string) ([]Contribution, error)
}

// UserRepository defines persistence for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) (string, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateName(ctx context.Context, email, name string) (int64, error)
}

// StatsRepository exposes the aggregate reads the stats views are built on.
type StatsRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountIssues(ctx context.Context) (int64, error)
	CountResolvedIssues(ctx context.Context) (int64, error)
	CountContributions(ctx context.Context) (int64, error)
	TotalFundsRaised(ctx context.Context) (float64, error)
	CategoryCounts(ctx context.Context) ([]CategoryCount, error)
}
