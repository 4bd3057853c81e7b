package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"server/internal/http/handlers"
	"server/internal/infra"
	"server/internal/middleware"
)

// NewRouter builds the HTTP surface over the handler container.
func NewRouter(app *handlers.App, cfg *infra.Config, country middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.ClientCountry(country),
		middleware.Logger(app.Log),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
		chimw.Recoverer,
	)

	r.Get("/healthz", app.Health)

	r.Get("/stats", app.StatsGlobal)
	r.Get("/community-stats", app.StatsCommunity)
	r.Get("/user-stats/{email}", app.StatsUser)

	r.Route("/issues", func(r chi.Router) {
		r.Post("/", app.IssuesCreate)
		r.Get("/", app.IssuesList)
		r.Get("/{id}", app.IssueGet)
		r.Patch("/{id}", app.IssuePatch)
		r.Put("/{id}", app.IssueReplace)
		r.Delete("/{id}", app.IssueDelete)
	})
	r.Get("/issues-recent", app.IssuesRecent)
	r.Get("/my-issues/{email}", app.IssuesByReporter)

	r.Post("/contributions", app.ContributionsCreate)
	r.Get("/contributions/{issueId}", app.ContributionsByIssue)
	r.Get("/my-contributions/{email}", app.ContributionsByUser)

	r.Post("/register", app.Register)
	r.Patch("/users/{email}", app.UserUpdateName)

	return r
}
