package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"server/internal/adapter/repo"
	"server/internal/domain"
	"server/internal/infra"
	"server/internal/service"
)

// App is the handler container. It owns nothing long-lived itself; the SQL
// executor and logger are injected at startup.
type App struct {
	Issues        domain.IssueRepository
	Contributions domain.ContributionRepository
	Users         domain.UserRepository
	Ledger        *service.Ledger
	Stats         *service.Aggregator
	Log           zerolog.Logger
}

// NewApp wires repositories and services over the given SQL executor.
func NewApp(sql infra.SQLExecutor, log zerolog.Logger) *App {
	issues := repo.NewIssueRepository(sql)
	contributions := repo.NewContributionRepository(sql)
	users := repo.NewUserRepository(sql)
	stats := repo.NewStatsRepository(sql)

	return &App{
		Issues:        issues,
		Contributions: contributions,
		Users:         users,
		Ledger:        service.NewLedger(issues, contributions, log),
		Stats:         service.NewAggregator(stats, issues, contributions),
		Log:           log,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{"error": map[string]string{"code": code, "message": message}})
}

// fault maps domain errors to responses: validation and malformed ids are the
// caller's fault, everything else is a store fault.
func (a *App) fault(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, domain.ErrInvalidID):
		a.error(w, http.StatusBadRequest, "invalid_id", err.Error())
	default:
		a.Log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		a.error(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}
