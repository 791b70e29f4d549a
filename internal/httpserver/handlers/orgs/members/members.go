package members

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mkarpushin/pr-tracker/internal/lib/api/response"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=OrgService
type OrgService interface {
	Members(ctx context.Context, org string) ([]string, error)
}

func New(
	log *slog.Logger,
	service OrgService,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http.handlers.orgs.members.New"
		log = log.With(slog.String("op", op))

		orgName := chi.URLParam(r, "org")

		logins, err := service.Members(r.Context(), orgName)
		if err != nil {
			log.Warn("failed to list members", slog.String("org", orgName), slog.String("error", err.Error()))

			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(response.NewError(err.Error()))
			return
		}

		if logins == nil {
			logins = []string{}
		}

		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(logins); err != nil {
			log.Error("failed to encode response", slog.String("error", err.Error()))
		}
	}
}
