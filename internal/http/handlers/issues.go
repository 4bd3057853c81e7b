package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"server/internal/domain"
)

type issueResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	Email       string    `json:"email"`
	Date        time.Time `json:"date"`
}

func issueJSON(issue domain.Issue) issueResponse {
	return issueResponse{
		ID:          issue.ID,
		Title:       issue.Title,
		Description: issue.Description,
		Category:    issue.Category,
		Amount:      issue.Amount,
		Status:      string(issue.Status),
		Email:       issue.ReporterEmail,
		Date:        issue.CreatedAt,
	}
}

func issuesJSON(issues []domain.Issue) []issueResponse {
	out := make([]issueResponse, 0, len(issues))
	for _, issue := range issues {
		out = append(out, issueJSON(issue))
	}
	return out
}

type issueRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	Email       string  `json:"email"`
}

func (req *issueRequest) validate(requireEmail bool) string {
	if strings.TrimSpace(req.Title) == "" {
		return "title is required"
	}
	if req.Amount <= 0 {
		return "amount must be positive"
	}
	if requireEmail && strings.TrimSpace(req.Email) == "" {
		return "email is required"
	}
	if req.Status != "" && !domain.IssueStatus(req.Status).Valid() {
		return "status must be Open or Resolved"
	}
	return ""
}

func (a *App) IssuesCreate(w http.ResponseWriter, r *http.Request) {
	var req issueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if msg := req.validate(true); msg != "" {
		a.error(w, http.StatusBadRequest, "bad_request", msg)
		return
	}

	status := domain.IssueStatusOpen
	if req.Status != "" {
		status = domain.IssueStatus(req.Status)
	}
	id, err := a.Issues.Create(r.Context(), &domain.Issue{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Amount:        req.Amount,
		Status:        status,
		ReporterEmail: req.Email,
	})
	if err != nil {
		a.fault(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, map[string]any{"insertedId": id})
}

func (a *App) IssuesList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	result, err := a.Issues.List(r.Context(), domain.IssueListParams{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		a.fault(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"issues":     issuesJSON(result.Items),
		"totalCount": result.TotalCount,
		"totalPages": result.TotalPages,
	})
}

func (a *App) IssuesRecent(w http.ResponseWriter, r *http.Request) {
	issues, err := a.Issues.ListRecent(r.Context(), 12)
	if err != nil {
		a.fault(w, r, err)
		return
	}
	a.json(w, http.StatusOK, issuesJSON(issues))
}

func (a *App) IssueGet(w http.ResponseWriter, r *http.Request) {
	issue, err := a.Issues.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fault(w, r, err)
		return
	}
	if issue == nil {
		// Absent is an empty result, not a fault.
		a.json(w, http.StatusOK, nil)
		return
	}
	a.json(w, http.StatusOK, issueJSON(*issue))
}

func (a *App) IssuesByReporter(w http.ResponseWriter, r *http.Request) {
	issues, err := a.Issues.ListByReporter(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		a.fault(w, r, err)
		return
	}
	a.json(w, http.StatusOK, issuesJSON(issues))
}

type issuePatchRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Amount      *float64 `json:"amount"`
	Status      *string  `json:"status"`
}

func (a *App) IssuePatch(w http.ResponseWriter, r *http.Request) {
	var req issuePatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Amount != nil && *req.Amount <= 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "amount must be positive")
		return
	}
	patch := domain.IssuePatch{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
	}
	if req.Status != nil {
		status := domain.IssueStatus(*req.Status)
		if !status.Valid() {
			a.error(w, http.StatusBadRequest, "bad_request", "status must be Open or Resolved")
			return
		}
		patch.Status = &status
	}

	updated, err := a.Issues.Patch(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		a.fault(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"updated": updated})
}

// IssueReplace is the explicit full-overwrite variant: every editable field
// is taken from the payload as-is.
func (a *App) IssueReplace(w http.ResponseWriter, r *http.Request) {
	var req issueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if msg := req.validate(false); msg != "" {
		a.error(w, http.StatusBadRequest, "bad_request", msg)
		return
	}
	status := domain.IssueStatusOpen
	if req.Status != "" {
		status = domain.IssueStatus(req.Status)
	}

	updated, err := a.Issues.Replace(r.Context(), chi.URLParam(r, "id"), &domain.Issue{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
		Status:      status,
	})
	if err != nil {
		a.fault(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"updated": updated})
}

func (a *App) IssueDelete(w http.ResponseWriter, r *http.Request) {
	deleted, err := a.Issues.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fault(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"deleted": deleted})
}
