package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"server/internal/domain"
)

// memStore backs the fake repositories with plain in-memory collections.
type memStore struct {
	issues        map[string]*domain.Issue
	contributions []domain.Contribution
	users         map[string]*domain.User
	now           time.Time
}

func newMemStore() *memStore {
	return &memStore{
		issues: make(map[string]*domain.Issue),
		users:  make(map[string]*domain.User),
		now:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *memStore) tick() time.Time {
	s.now = s.now.Add(time.Minute)
	return s.now
}

func (s *memStore) addIssue(title, category string, amount float64, email string) string {
	id := uuid.NewString()
	s.issues[id] = &domain.Issue{
		ID:            id,
		Title:         title,
		Category:      category,
		Amount:        amount,
		Status:        domain.IssueStatusOpen,
		ReporterEmail: email,
		CreatedAt:     s.tick(),
	}
	return id
}

func (s *memStore) addContribution(issueID, email string, amount float64) {
	s.contributions = append(s.contributions, domain.Contribution{
		ID:        uuid.NewString(),
		IssueID:   issueID,
		UserEmail: email,
		Amount:    amount,
		CreatedAt: s.tick(),
	})
}

type fakeIssueRepo struct {
	store *memStore
}

func (f *fakeIssueRepo) Create(_ context.Context, issue *domain.Issue) (string, error) {
	id := f.store.addIssue(issue.Title, issue.Category, issue.Amount, issue.ReporterEmail)
	f.store.issues[id].Description = issue.Description
	if issue.Status != "" {
		f.store.issues[id].Status = issue.Status
	}
	return id, nil
}

func (f *fakeIssueRepo) List(_ context.Context, params domain.IssueListParams) (*domain.IssuePage, error) {
	return &domain.IssuePage{}, nil
}

func (f *fakeIssueRepo) ListRecent(_ context.Context, limit int) ([]domain.Issue, error) {
	all := f.all()
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeIssueRepo) GetByID(_ context.Context, id string) (*domain.Issue, error) {
	if _, err := domain.ParseID(id); err != nil {
		return nil, err
	}
	issue, ok := f.store.issues[id]
	if !ok {
		return nil, nil
	}
	copied := *issue
	return &copied, nil
}

func (f *fakeIssueRepo) ListByReporter(_ context.Context, email string) ([]domain.Issue, error) {
	var out []domain.Issue
	for _, issue := range f.all() {
		if issue.ReporterEmail == email {
			out = append(out, issue)
		}
	}
	return out, nil
}

func (f *fakeIssueRepo) ListOpen(_ context.Context) ([]domain.Issue, error) {
	var out []domain.Issue
	for _, issue := range f.all() {
		if issue.Status == domain.IssueStatusOpen {
			out = append(out, issue)
		}
	}
	return out, nil
}

func (f *fakeIssueRepo) Patch(_ context.Context, id string, patch domain.IssuePatch) (int64, error) {
	if _, err := domain.ParseID(id); err != nil {
		return 0, err
	}
	issue, ok := f.store.issues[id]
	if !ok {
		return 0, nil
	}
	if patch.Title != nil {
		issue.Title = *patch.Title
	}
	if patch.Description != nil {
		issue.Description = *patch.Description
	}
	if patch.Category != nil {
		issue.Category = *patch.Category
	}
	if patch.Amount != nil {
		issue.Amount = *patch.Amount
	}
	if patch.Status != nil {
		issue.Status = *patch.Status
	}
	return 1, nil
}

func (f *fakeIssueRepo) Replace(_ context.Context, id string, issue *domain.Issue) (int64, error) {
	if _, err := domain.ParseID(id); err != nil {
		return 0, err
	}
	existing, ok := f.store.issues[id]
	if !ok {
		return 0, nil
	}
	existing.Title = issue.Title
	existing.Description = issue.Description
	existing.Category = issue.Category
	existing.Amount = issue.Amount
	existing.Status = issue.Status
	return 1, nil
}

func (f *fakeIssueRepo) Delete(_ context.Context, id string) (int64, error) {
	if _, err := domain.ParseID(id); err != nil {
		return 0, err
	}
	if _, ok := f.store.issues[id]; !ok {
		return 0, nil
	}
	delete(f.store.issues, id)
	return 1, nil
}

func (f *fakeIssueRepo) Resolve(_ context.Context, id string) (int64, error) {
	if _, err := domain.ParseID(id); err != nil {
		return 0, err
	}
	issue, ok := f.store.issues[id]
	if !ok || issue.Status == domain.IssueStatusResolved {
		return 0, nil
	}
	issue.Status = domain.IssueStatusResolved
	return 1, nil
}

func (f *fakeIssueRepo) all() []domain.Issue {
	out := make([]domain.Issue, 0, len(f.store.issues))
	for _, issue := range f.store.issues {
		out = append(out, *issue)
	}
	return out
}

type fakeContributionRepo struct {
	store *memStore
	// failCreate simulates a store fault on insert.
	failCreate bool
}

func (f *fakeContributionRepo) Create(_ context.Context, c *domain.Contribution) (string, error) {
	if f.failCreate {
		return "", fmt.Errorf("store unreachable")
	}
	if _, err := domain.ParseID(c.IssueID); err != nil {
		return "", err
	}
	f.store.addContribution(c.IssueID, c.UserEmail, c.Amount)
	return f.store.contributions[len(f.store.contributions)-1].ID, nil
}

func (f *fakeContributionRepo) ListByIssue(_ context.Context, issueID string) ([]domain.Contribution, error) {
	if _, err := domain.ParseID(issueID); err != nil {
		return nil, err
	}
	var out []domain.Contribution
	for _, c := range f.store.contributions {
		if c.IssueID == issueID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeContributionRepo) ListByUser(_ context.Context, email string) ([]domain.Contribution, error) {
	var out []domain.Contribution
	for _, c := range f.store.contributions {
		if c.UserEmail == email {
			out = append(out, c)
		}
	}
	return out, nil
}

// fakeStatsRepo mirrors the aggregate queries over the shared store.
type fakeStatsRepo struct {
	store *memStore
}

func (f *fakeStatsRepo) CountUsers(context.Context) (int64, error) {
	return int64(len(f.store.users)), nil
}

func (f *fakeStatsRepo) CountIssues(context.Context) (int64, error) {
	return int64(len(f.store.issues)), nil
}

func (f *fakeStatsRepo) CountResolvedIssues(context.Context) (int64, error) {
	var n int64
	for _, issue := range f.store.issues {
		if issue.Status == domain.IssueStatusResolved {
			n++
		}
	}
	return n, nil
}

func (f *fakeStatsRepo) CountContributions(context.Context) (int64, error) {
	return int64(len(f.store.contributions)), nil
}

func (f *fakeStatsRepo) TotalFundsRaised(context.Context) (float64, error) {
	var total float64
	for _, c := range f.store.contributions {
		total += c.Amount
	}
	return total, nil
}

func (f *fakeStatsRepo) CategoryCounts(context.Context) ([]domain.CategoryCount, error) {
	counts := make(map[string]int64)
	for _, issue := range f.store.issues {
		category := issue.Category
		if category == "" {
			category = "Other"
		}
		counts[category]++
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]domain.CategoryCount, 0, len(keys))
	for _, k := range keys {
		out = append(out, domain.CategoryCount{Category: k, Count: counts[k]})
	}
	return out, nil
}

var (
	_ domain.IssueRepository        = (*fakeIssueRepo)(nil)
	_ domain.ContributionRepository = (*fakeContributionRepo)(nil)
	_ domain.StatsRepository        = (*fakeStatsRepo)(nil)
)
