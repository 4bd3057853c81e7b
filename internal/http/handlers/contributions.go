package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"server/internal/domain"
	"server/internal/middleware"
)

type contributionResponse struct {
	ID        string    `json:"id"`
	IssueID   string    `json:"issueId"`
	UserEmail string    `json:"userEmail"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
}

func contributionsJSON(items []domain.Contribution) []contributionResponse {
	out := make([]contributionResponse, 0, len(items))
	for _, c := range items {
		out = append(out, contributionResponse{
			ID:        c.ID,
			IssueID:   c.IssueID,
			UserEmail: c.UserEmail,
			Amount:    c.Amount,
			Date:      c.CreatedAt,
		})
	}
	return out
}

type contributionRequest struct {
	IssueID   string  `json:"issueId"`
	UserEmail string  `json:"userEmail"`
	Amount    float64 `json:"amount"`
}

func (a *App) ContributionsCreate(w http.ResponseWriter, r *http.Request) {
	var req contributionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	result, err := a.Ledger.Record(r.Context(), req.IssueID, req.UserEmail, req.Amount)
	if err != nil {
		a.fault(w, r, err)
		return
	}

	evt := a.Log.Info().
		Str("issue_id", req.IssueID).
		Float64("amount", req.Amount).
		Bool("resolved", result.Resolved)
	if country := middleware.CountryFromContext(r.Context()); country != "" {
		evt = evt.Str("country", country)
	}
	evt.Msg("contribution recorded")

	a.json(w, http.StatusCreated, map[string]any{
		"insertedId":  result.ContributionID,
		"totalRaised": result.TotalRaised,
		"resolved":    result.Resolved,
	})
}

func (a *App) ContributionsByIssue(w http.ResponseWriter, r *http.Request) {
	items, err := a.Contributions.ListByIssue(r.Context(), chi.URLParam(r, "issueId"))
	if err != nil {
		a.fault(w, r, err)
		return
	}
	a.json(w, http.StatusOK, contributionsJSON(items))
}

func (a *App) ContributionsByUser(w http.ResponseWriter, r *http.Request) {
	items, err := a.Contributions.ListByUser(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		a.fault(w, r, err)
		return
	}
	a.json(w, http.StatusOK, contributionsJSON(items))
}
