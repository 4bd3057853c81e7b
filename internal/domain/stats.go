package domain

// CategoryCount is one bucket of the per-category issue breakdown. Issues
// without a category are bucketed under "Other".
type CategoryCount struct {
	Category string
	Count    int64
}

// GlobalStats is the cheap landing-page summary.
type GlobalStats struct {
	TotalUsers     int64
	TotalIssues    int64
	ResolvedIssues int64
}

// CommunityStats aggregates across every issue and contribution in the system.
type CommunityStats struct {
	TotalUsers         int64
	TotalIssues        int64
	ResolvedIssues     int64
	TotalFundsRaised   float64
	TotalContributions int64
	CategoryStats      []CategoryCount
}

// UserStats aggregates one user's reported issues and pledges.
type UserStats struct {
	IssuesReported      int64
	IssuesResolved      int64
	TotalDonated        float64
	ContributionHistory []Contribution
}
