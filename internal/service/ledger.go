package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"server/internal/domain"
)

// Ledger records contributions and drives issue resolution. The raised total
// is recomputed from the stored contribution rows on every pledge instead of
// being kept as a counter on the issue, so concurrent pledges can never make
// the total drift from its source of truth.
type Ledger struct {
	issues        domain.IssueRepository
	contributions domain.ContributionRepository
	log           zerolog.Logger
}

// NewLedger wires the ledger over its repositories.
func NewLedger(issues domain.IssueRepository, contributions domain.ContributionRepository, log zerolog.Logger) *Ledger {
	return &Ledger{issues: issues, contributions: contributions, log: log}
}

// RecordResult describes the outcome of one pledge.
type RecordResult struct {
	ContributionID string
	TotalRaised    float64
	// Resolved reports whether this pledge flipped the issue to Resolved.
	// Under racing pledges only one caller observes true.
	Resolved bool
}

// Record validates and persists a pledge, then re-evaluates the issue's
// funding state. A pledge toward a deleted issue is retained as an orphan and
// skips the resolution check.
func (l *Ledger) Record(ctx context.Context, issueID, userEmail string, amount float64) (*RecordResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if strings.TrimSpace(userEmail) == "" {
		return nil, fmt.Errorf("%w: userEmail is required", domain.ErrValidation)
	}
	canonical, err := domain.ParseID(issueID)
	if err != nil {
		return nil, err
	}

	id, err := l.contributions.Create(ctx, &domain.Contribution{
		IssueID:   canonical,
		UserEmail: userEmail,
		Amount:    amount,
	})
	if err != nil {
		return nil, fmt.Errorf("record contribution: %w", err)
	}

	total, resolved, err := l.evaluate(ctx, canonical)
	if err != nil {
		// The contribution is already durable at this point; the next
		// pledge or a reconcile run will redo the resolution check.
		return nil, fmt.Errorf("evaluate funding for issue %s: %w", canonical, err)
	}

	return &RecordResult{ContributionID: id, TotalRaised: total, Resolved: resolved}, nil
}

// Reconcile re-runs the funding evaluation for every open issue and returns
// how many were resolved. It covers pledges whose resolution check was cut
// short by a store fault.
func (l *Ledger) Reconcile(ctx context.Context) (int, error) {
	open, err := l.issues.ListOpen(ctx)
	if err != nil {
		return 0, fmt.Errorf("list open issues: %w", err)
	}
	resolved := 0
	for _, issue := range open {
		_, flipped, err := l.evaluate(ctx, issue.ID)
		if err != nil {
			return resolved, fmt.Errorf("evaluate funding for issue %s: %w", issue.ID, err)
		}
		if flipped {
			resolved++
		}
	}
	return resolved, nil
}

// evaluate recomputes the raised total for an issue and applies the one state
// transition in the system: total >= target flips an open issue to Resolved.
// Re-running it for an already-resolved issue is a no-op.
func (l *Ledger) evaluate(ctx context.Context, issueID string) (float64, bool, error) {
	all, err := l.contributions.ListByIssue(ctx, issueID)
	if err != nil {
		return 0, false, err
	}
	var total float64
	for _, c := range all {
		total += c.Amount
	}

	issue, err := l.issues.GetByID(ctx, issueID)
	if err != nil {
		return total, false, err
	}
	if issue == nil {
		l.log.Warn().Str("issue_id", issueID).Float64("total_raised", total).
			Msg("contribution references a missing issue, keeping orphan")
		return total, false, nil
	}

	if total < issue.Amount || issue.Status == domain.IssueStatusResolved {
		return total, false, nil
	}

	n, err := l.issues.Resolve(ctx, issueID)
	if err != nil {
		return total, false, err
	}
	if n > 0 {
		l.log.Info().Str("issue_id", issueID).Float64("target", issue.Amount).
			Float64("total_raised", total).Msg("issue resolved")
	}
	return total, n > 0, nil
}
