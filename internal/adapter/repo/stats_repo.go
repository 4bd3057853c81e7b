package repo

import (
	"context"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// StatsRepositoryPG implements StatsRepository using PostgreSQL.
type StatsRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewStatsRepository creates a new stats repo.
func NewStatsRepository(sql infra.SQLExecutor) *StatsRepositoryPG {
	return &StatsRepositoryPG{sql: sql}
}

func (r *StatsRepositoryPG) CountUsers(ctx context.Context) (int64, error) {
	return r.countOne(ctx, sqlinline.QStatsCountUsers)
}

func (r *StatsRepositoryPG) CountIssues(ctx context.Context) (int64, error) {
	return r.countOne(ctx, sqlinline.QStatsCountIssues)
}

func (r *StatsRepositoryPG) CountResolvedIssues(ctx context.Context) (int64, error) {
	return r.countOne(ctx, sqlinline.QStatsCountResolved)
}

func (r *StatsRepositoryPG) CountContributions(ctx context.Context) (int64, error) {
	return r.countOne(ctx, sqlinline.QStatsCountContributions)
}

// TotalFundsRaised sums every contribution in the system, orphaned rows
// included.
func (r *StatsRepositoryPG) TotalFundsRaised(ctx context.Context) (float64, error) {
	var total float64
	if err := r.sql.QueryRow(ctx, sqlinline.QStatsSumFunds).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// CategoryCounts groups issues by category; issues without one land in the
// "Other" bucket.
func (r *StatsRepositoryPG) CategoryCounts(ctx context.Context) ([]domain.CategoryCount, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QStatsCategoryCounts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CategoryCount
	for rows.Next() {
		var cc domain.CategoryCount
		if err := rows.Scan(&cc.Category, &cc.Count); err != nil {
			return nil, err
		}
		items = append(items, cc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *StatsRepositoryPG) countOne(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := r.sql.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

var _ domain.StatsRepository = (*StatsRepositoryPG)(nil)
