package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"server/internal/domain"
)

// statsPrinter renders amounts with digit grouping for display in the
// contribution history ("1,250.50").
var statsPrinter = message.NewPrinter(language.English)

func (a *App) StatsGlobal(w http.ResponseWriter, r *http.Request) {
	stats, err := a.Stats.Global(r.Context())
	if err != nil {
		a.fault(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"totalUsers":     stats.TotalUsers,
		"totalIssues":    stats.TotalIssues,
		"resolvedIssues": stats.ResolvedIssues,
	})
}

func (a *App) StatsCommunity(w http.ResponseWriter, r *http.Request) {
	stats, err := a.Stats.Community(r.Context())
	if err != nil {
		a.fault(w, r, err)
		return
	}
	categories := make([]map[string]any, 0, len(stats.CategoryStats))
	for _, cc := range stats.CategoryStats {
		categories = append(categories, map[string]any{"category": cc.Category, "count": cc.Count})
	}
	a.json(w, http.StatusOK, map[string]any{
		"totalUsers":         stats.TotalUsers,
		"totalIssues":        stats.TotalIssues,
		"resolvedIssues":     stats.ResolvedIssues,
		"totalFundsRaised":   stats.TotalFundsRaised,
		"totalContributions": stats.TotalContributions,
		"categoryStats":      categories,
	})
}

func (a *App) StatsUser(w http.ResponseWriter, r *http.Request) {
	stats, err := a.Stats.User(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		a.fault(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"stats":   userStatCards(stats),
		"history": historyJSON(stats.ContributionHistory),
	})
}

func userStatCards(stats *domain.UserStats) []map[string]any {
	return []map[string]any{
		{"label": "Issues Reported", "value": stats.IssuesReported},
		{"label": "Issues Resolved", "value": stats.IssuesResolved},
		{"label": "Total Donated", "value": statsPrinter.Sprintf("%.2f", stats.TotalDonated)},
	}
}

func historyJSON(history []domain.Contribution) []map[string]any {
	out := make([]map[string]any, 0, len(history))
	for _, c := range history {
		out = append(out, map[string]any{
			"date":   c.CreatedAt.Format("Jan 2, 2006"),
			"amount": statsPrinter.Sprintf("%.2f", c.Amount),
		})
	}
	return out
}
