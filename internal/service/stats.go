package service

import (
	"context"
	"fmt"

	"server/internal/domain"
)

// Aggregator derives the read-only summary views across issues and
// contributions. It never mutates anything; empty collections yield zeros.
type Aggregator struct {
	stats         domain.StatsRepository
	issues        domain.IssueRepository
	contributions domain.ContributionRepository
}

// NewAggregator wires the aggregator over its repositories.
func NewAggregator(stats domain.StatsRepository, issues domain.IssueRepository, contributions domain.ContributionRepository) *Aggregator {
	return &Aggregator{stats: stats, issues: issues, contributions: contributions}
}

// Global returns the cheap landing-page counters.
func (a *Aggregator) Global(ctx context.Context) (*domain.GlobalStats, error) {
	users, err := a.stats.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	issues, err := a.stats.CountIssues(ctx)
	if err != nil {
		return nil, fmt.Errorf("count issues: %w", err)
	}
	resolved, err := a.stats.CountResolvedIssues(ctx)
	if err != nil {
		return nil, fmt.Errorf("count resolved issues: %w", err)
	}
	return &domain.GlobalStats{TotalUsers: users, TotalIssues: issues, ResolvedIssues: resolved}, nil
}

// Community returns the aggregate view across all issues and contributions.
// Contributions whose issue has been deleted still count toward the fund
// totals.
func (a *Aggregator) Community(ctx context.Context) (*domain.CommunityStats, error) {
	global, err := a.Global(ctx)
	if err != nil {
		return nil, err
	}
	raised, err := a.stats.TotalFundsRaised(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum funds raised: %w", err)
	}
	contributions, err := a.stats.CountContributions(ctx)
	if err != nil {
		return nil, fmt.Errorf("count contributions: %w", err)
	}
	categories, err := a.stats.CategoryCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("group issues by category: %w", err)
	}
	return &domain.CommunityStats{
		TotalUsers:         global.TotalUsers,
		TotalIssues:        global.TotalIssues,
		ResolvedIssues:     global.ResolvedIssues,
		TotalFundsRaised:   raised,
		TotalContributions: contributions,
		CategoryStats:      categories,
	}, nil
}

// User returns the per-user view: issues they reported, how many of those
// resolved, and their pledge history in chronological order.
func (a *Aggregator) User(ctx context.Context, email string) (*domain.UserStats, error) {
	reported, err := a.issues.ListByReporter(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list issues for %s: %w", email, err)
	}
	var resolved int64
	for _, issue := range reported {
		if issue.Status == domain.IssueStatusResolved {
			resolved++
		}
	}

	history, err := a.contributions.ListByUser(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list contributions for %s: %w", email, err)
	}
	var donated float64
	for _, c := range history {
		donated += c.Amount
	}

	return &domain.UserStats{
		IssuesReported:      int64(len(reported)),
		IssuesResolved:      resolved,
		TotalDonated:        donated,
		ContributionHistory: history,
	}, nil
}
