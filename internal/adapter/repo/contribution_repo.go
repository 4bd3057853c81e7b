package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// ContributionRepositoryPG implements ContributionRepository using PostgreSQL.
type ContributionRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewContributionRepository creates a new contribution repo.
func NewContributionRepository(sql infra.SQLExecutor) *ContributionRepositoryPG {
	return &ContributionRepositoryPG{sql: sql}
}

// Create inserts a new contribution record. The row is never updated or
// deleted afterwards; it is the source of truth for raised totals.
func (r *ContributionRepositoryPG) Create(ctx context.Context, c *domain.Contribution) (string, error) {
	issueID, err := domain.ParseID(c.IssueID)
	if err != nil {
		return "", err
	}
	var id string
	err = r.sql.QueryRow(ctx, sqlinline.QInsertContribution, issueID, c.UserEmail, c.Amount).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// ListByIssue returns all contributions pledged toward one issue, oldest first.
func (r *ContributionRepositoryPG) ListByIssue(ctx context.Context, issueID string) ([]domain.Contribution, error) {
	canonical, err := domain.ParseID(issueID)
	if err != nil {
		return nil, err
	}
	rows, err := r.sql.Query(ctx, sqlinline.QListContributionsByIssue, canonical)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanContributions(rows)
}

// ListByUser returns one user's contributions, oldest first.
func (r *ContributionRepositoryPG) ListByUser(ctx context.Context, email string) ([]domain.Contribution, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListContributionsByUser, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanContributions(rows)
}

func scanContributions(rows pgx.Rows) ([]domain.Contribution, error) {
	var items []domain.Contribution
	for rows.Next() {
		var c domain.Contribution
		if err := rows.Scan(&c.ID, &c.IssueID, &c.UserEmail, &c.Amount, &c.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

var _ domain.ContributionRepository = (*ContributionRepositoryPG)(nil)
