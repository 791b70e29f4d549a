package httpserver

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mkarpushin/pr-tracker/internal/httpserver/handlers/auth/login"
	"github.com/mkarpushin/pr-tracker/internal/httpserver/handlers/auth/status"
	"github.com/mkarpushin/pr-tracker/internal/httpserver/handlers/orgs/members"
	"github.com/mkarpushin/pr-tracker/internal/httpserver/handlers/orgs/repos"
	"github.com/mkarpushin/pr-tracker/internal/httpserver/handlers/prs/byrepo"
	"github.com/mkarpushin/pr-tracker/internal/httpserver/handlers/prs/byuser"
	"github.com/mkarpushin/pr-tracker/internal/httpserver/middlewares"
)

// Services groups everything the router needs. One service may satisfy
// several interfaces.
type Services struct {
	Auth interface {
		login.AuthService
		status.AuthService
	}
	Org interface {
		members.OrgService
		repos.OrgService
	}
	PRs interface {
		byrepo.PRService
		byuser.PRService
	}
}

// NewRouter wires the API routes with the standard middleware stack.
func NewRouter(log *slog.Logger, svc Services, allowedOrigin string) chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(middlewares.CORSMiddleware(allowedOrigin))

	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", login.New(log, svc.Auth))
			r.Get("/status", status.New(log, svc.Auth))
		})

		r.Post("/prs", byrepo.New(log, svc.PRs))
		r.Post("/user/prs", byuser.New(log, svc.PRs))

		r.Route("/{org}", func(r chi.Router) {
			r.Get("/members", members.New(log, svc.Org))
			r.Get("/repos", repos.New(log, svc.Org))
		})
	})

	return router
}
