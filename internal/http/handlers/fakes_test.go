package handlers

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"server/internal/adapter/repo"
	"server/internal/domain"
	"server/internal/service"
)

// testStore is the in-memory document store behind the fake repositories.
type testStore struct {
	issues        map[string]*domain.Issue
	contributions []domain.Contribution
	users         map[string]*domain.User
	now           time.Time
}

func newTestApp() (*App, *testStore) {
	store := &testStore{
		issues: make(map[string]*domain.Issue),
		users:  make(map[string]*domain.User),
		now:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	issues := &stubIssueRepo{store: store}
	contributions := &stubContributionRepo{store: store}
	users := &stubUserRepo{store: store}
	stats := &stubStatsRepo{store: store}

	app := &App{
		Issues:        issues,
		Contributions: contributions,
		Users:         users,
		Ledger:        service.NewLedger(issues, contributions, zerolog.Nop()),
		Stats:         service.NewAggregator(stats, issues, contributions),
		Log:           zerolog.Nop(),
	}
	return app, store
}

func (s *testStore) tick() time.Time {
	s.now = s.now.Add(time.Minute)
	return s.now
}

func (s *testStore) addIssue(title, category string, amount float64, email string) string {
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

func (s *testStore) addContribution(issueID, email string, amount float64) {
	s.contributions = append(s.contributions, domain.Contribution{
		ID:        uuid.NewString(),
		IssueID:   issueID,
		UserEmail: email,
		Amount:    amount,
		CreatedAt: s.tick(),
	})
}

func (s *testStore) sortedIssues() []domain.Issue {
	out := make([]domain.Issue, 0, len(s.issues))
	for _, issue := range s.issues {
		out = append(out, *issue)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

type stubIssueRepo struct {
	store *testStore
}

func (f *stubIssueRepo) Create(_ context.Context, issue *domain.Issue) (string, error) {
	id := f.store.addIssue(issue.Title, issue.Category, issue.Amount, issue.ReporterEmail)
	f.store.issues[id].Description = issue.Description
	if issue.Status != "" {
		f.store.issues[id].Status = issue.Status
	}
	return id, nil
}

func (f *stubIssueRepo) List(_ context.Context, params domain.IssueListParams) (*domain.IssuePage, error) {
	var matched []domain.Issue
	for _, issue := range f.store.sortedIssues() {
		if params.Search != "" && !strings.Contains(strings.ToLower(issue.Title), strings.ToLower(params.Search)) {
			continue
		}
		if params.Category != "" && issue.Category != params.Category {
			continue
		}
		matched = append(matched, issue)
	}
	total := int64(len(matched))

	page, limit := repo.NormalizePage(params.Page, params.Limit)
	start := (page - 1) * limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return &domain.IssuePage{
		Items:      matched[start:end],
		TotalCount: total,
		TotalPages: repo.TotalPages(total, limit),
	}, nil
}

func (f *stubIssueRepo) ListRecent(_ context.Context, limit int) ([]domain.Issue, error) {
	all := f.store.sortedIssues()
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *stubIssueRepo) GetByID(_ context.Context, id string) (*domain.Issue, error) {
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

func (f *stubIssueRepo) ListByReporter(_ context.Context, email string) ([]domain.Issue, error) {
	var out []domain.Issue
	for _, issue := range f.store.sortedIssues() {
		if issue.ReporterEmail == email {
			out = append(out, issue)
		}
	}
	return out, nil
}

func (f *stubIssueRepo) ListOpen(_ context.Context) ([]domain.Issue, error) {
	var out []domain.Issue
	for _, issue := range f.store.sortedIssues() {
		if issue.Status == domain.IssueStatusOpen {
			out = append(out, issue)
		}
	}
	return out, nil
}

func (f *stubIssueRepo) Patch(_ context.Context, id string, patch domain.IssuePatch) (int64, error) {
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

func (f *stubIssueRepo) Replace(_ context.Context, id string, issue *domain.Issue) (int64, error) {
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

func (f *stubIssueRepo) Delete(_ context.Context, id string) (int64, error) {
	if _, err := domain.ParseID(id); err != nil {
		return 0, err
	}
	if _, ok := f.store.issues[id]; !ok {
		return 0, nil
	}
	delete(f.store.issues, id)
	return 1, nil
}

func (f *stubIssueRepo) Resolve(_ context.Context, id string) (int64, error) {
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

type stubContributionRepo struct {
	store *testStore
}

func (f *stubContributionRepo) Create(_ context.Context, c *domain.Contribution) (string, error) {
	if _, err := domain.ParseID(c.IssueID); err != nil {
		return "", err
	}
	f.store.addContribution(c.IssueID, c.UserEmail, c.Amount)
	return f.store.contributions[len(f.store.contributions)-1].ID, nil
}

func (f *stubContributionRepo) ListByIssue(_ context.Context, issueID string) ([]domain.Contribution, error) {
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

func (f *stubContributionRepo) ListByUser(_ context.Context, email string) ([]domain.Contribution, error) {
	var out []domain.Contribution
	for _, c := range f.store.contributions {
		if c.UserEmail == email {
			out = append(out, c)
		}
	}
	return out, nil
}

type stubUserRepo struct {
	store *testStore
}

func (f *stubUserRepo) Create(_ context.Context, user *domain.User) (string, error) {
	if _, ok := f.store.users[user.Email]; ok {
		return "", nil
	}
	id := uuid.NewString()
	f.store.users[user.Email] = &domain.User{
		ID:         id,
		Email:      user.Email,
		Name:       user.Name,
		Properties: user.Properties,
		CreatedAt:  f.store.tick(),
	}
	return id, nil
}

func (f *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := f.store.users[email]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *stubUserRepo) UpdateName(_ context.Context, email, name string) (int64, error) {
	user, ok := f.store.users[email]
	if !ok {
		return 0, nil
	}
	user.Name = name
	return 1, nil
}

type stubStatsRepo struct {
	store *testStore
}

func (f *stubStatsRepo) CountUsers(context.Context) (int64, error) {
	return int64(len(f.store.users)), nil
}

func (f *stubStatsRepo) CountIssues(context.Context) (int64, error) {
	return int64(len(f.store.issues)), nil
}

func (f *stubStatsRepo) CountResolvedIssues(context.Context) (int64, error) {
	var n int64
	for _, issue := range f.store.issues {
		if issue.Status == domain.IssueStatusResolved {
			n++
		}
	}
	return n, nil
}

func (f *stubStatsRepo) CountContributions(context.Context) (int64, error) {
	return int64(len(f.store.contributions)), nil
}

func (f *stubStatsRepo) TotalFundsRaised(context.Context) (float64, error) {
	var total float64
	for _, c := range f.store.contributions {
		total += c.Amount
	}
	return total, nil
}

func (f *stubStatsRepo) CategoryCounts(context.Context) ([]domain.CategoryCount, error) {
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
	_ domain.IssueRepository        = (*stubIssueRepo)(nil)
	_ domain.ContributionRepository = (*stubContributionRepo)(nil)
	_ domain.UserRepository         = (*stubUserRepo)(nil)
	_ domain.StatsRepository        = (*stubStatsRepo)(nil)
)
