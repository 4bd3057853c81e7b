package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

const defaultPageLimit = 6

// IssueRepositoryPG implements IssueRepository using PostgreSQL.
type IssueRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewIssueRepository creates a new issue repo.
func NewIssueRepository(sql infra.SQLExecutor) *IssueRepositoryPG {
	return &IssueRepositoryPG{sql: sql}
}

// Create inserts a new issue. The creation timestamp is assigned by the store.
func (r *IssueRepositoryPG) Create(ctx context.Context, issue *domain.Issue) (string, error) {
	status := issue.Status
	if status == "" {
		status = domain.IssueStatusOpen
	}
	var id string
	err := r.sql.QueryRow(ctx, sqlinline.QInsertIssue,
		issue.Title, issue.Description, issue.Category, issue.Amount, string(status), issue.ReporterEmail,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// List returns one page of issues matching the filter, plus totals computed
// over the same filter so pagination controls can be rendered.
func (r *IssueRepositoryPG) List(ctx context.Context, params domain.IssueListParams) (*domain.IssuePage, error) {
	page, limit := NormalizePage(params.Page, params.Limit)
	offset := (page - 1) * limit

	var total int64
	if err := r.sql.QueryRow(ctx, sqlinline.QCountIssues, params.Search, params.Category).Scan(&total); err != nil {
		return nil, err
	}

	rows, err := r.sql.Query(ctx, sqlinline.QListIssues, params.Search, params.Category, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items, err := scanIssues(rows)
	if err != nil {
		return nil, err
	}
	return &domain.IssuePage{
		Items:      items,
		TotalCount: total,
		TotalPages: TotalPages(total, limit),
	}, nil
}

// ListRecent returns the newest issues, capped at limit.
func (r *IssueRepositoryPG) ListRecent(ctx context.Context, limit int) ([]domain.Issue, error) {
	if limit < 1 {
		limit = 12
	}
	rows, err := r.sql.Query(ctx, sqlinline.QListRecentIssues, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanIssues(rows)
}

// GetByID returns the issue or nil when absent. A malformed id is an
// ErrInvalidID fault, not an empty result.
func (r *IssueRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Issue, error) {
	canonical, err := domain.ParseID(id)
	if err != nil {
		return nil, err
	}
	var issue domain.Issue
	err = scanIssueRow(r.sql.QueryRow(ctx, sqlinline.QGetIssue, canonical), &issue)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

// ListByReporter returns all issues reported by the given email.
func (r *IssueRepositoryPG) ListByReporter(ctx context.Context, email string) ([]domain.Issue, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListIssuesByReporter, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanIssues(rows)
}

// ListOpen returns every issue still awaiting funding.
func (r *IssueRepositoryPG) ListOpen(ctx context.Context) ([]domain.Issue, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListOpenIssues)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanIssues(rows)
}

// Patch applies only the supplied fields and reports how many rows changed.
func (r *IssueRepositoryPG) Patch(ctx context.Context, id string, patch domain.IssuePatch) (int64, error) {
	canonical, err := domain.ParseID(id)
	if err != nil {
		return 0, err
	}
	var status *string
	if patch.Status != nil {
		s := string(*patch.Status)
		status = &s
	}
	tag, err := r.sql.Exec(ctx, sqlinline.QPatchIssue,
		canonical, patch.Title, patch.Description, patch.Category, patch.Amount, status)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Replace overwrites the full editable field set.
func (r *IssueRepositoryPG) Replace(ctx context.Context, id string, issue *domain.Issue) (int64, error) {
	canonical, err := domain.ParseID(id)
	if err != nil {
		return 0, err
	}
	tag, err := r.sql.Exec(ctx, sqlinline.QReplaceIssue,
		canonical, issue.Title, issue.Description, issue.Category, issue.Amount, string(issue.Status))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Delete removes the issue. Deleting an absent id reports zero affected rows.
// Contributions referencing the issue are left in place.
func (r *IssueRepositoryPG) Delete(ctx context.Context, id string) (int64, error) {
	canonical, err := domain.ParseID(id)
	if err != nil {
		return 0, err
	}
	tag, err := r.sql.Exec(ctx, sqlinline.QDeleteIssue, canonical)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Resolve flips status to Resolved. The guard in the statement makes the
// transition one-way: an already-resolved issue reports zero affected rows.
func (r *IssueRepositoryPG) Resolve(ctx context.Context, id string) (int64, error) {
	canonical, err := domain.ParseID(id)
	if err != nil {
		return 0, err
	}
	tag, err := r.sql.Exec(ctx, sqlinline.QResolveIssue, canonical)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// NormalizePage clamps page and limit to usable values.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	return page, limit
}

// TotalPages is ceil(total/limit); zero matches means zero pages.
func TotalPages(total int64, limit int) int64 {
	if total <= 0 {
		return 0
	}
	l := int64(limit)
	return (total + l - 1) / l
}

func scanIssueRow(row pgx.Row, issue *domain.Issue) error {
	var status string
	err := row.Scan(&issue.ID, &issue.Title, &issue.Description, &issue.Category,
		&issue.Amount, &status, &issue.ReporterEmail, &issue.CreatedAt)
	if err != nil {
		return err
	}
	issue.Status = domain.IssueStatus(status)
	return nil
}

func scanIssues(rows pgx.Rows) ([]domain.Issue, error) {
	var items []domain.Issue
	for rows.Next() {
		var issue domain.Issue
		if err := scanIssueRow(rows, &issue); err != nil {
			return nil, err
		}
		items = append(items, issue)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

var _ domain.IssueRepository = (*IssueRepositoryPG)(nil)
