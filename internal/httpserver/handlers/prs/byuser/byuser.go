package byuser

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mkarpushin/pr-tracker/internal/domains"
	"github.com/mkarpushin/pr-tracker/internal/lib/api/response"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=PRService
type PRService interface {
	SearchByAuthor(ctx context.Context, users []string, state string) ([]domains.PullRequest, error)
}

type Request struct {
	Users []string `json:"users"`
	State string   `json:"state"`
}

func New(
	log *slog.Logger,
	service PRService,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http.handlers.prs.byuser.New"
		log = log.With(slog.String("op", op))

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("invalid request body", slog.Any("error", err))

			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(response.NewError("Users parameter is required"))
			return
		}

		if len(req.Users) == 0 {
			log.Warn("empty users parameter")

			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(response.NewError("Users parameter is required"))
			return
		}

		prs, err := service.SearchByAuthor(r.Context(), req.Users, req.State)
		if err != nil {
			log.Warn("failed to fetch pull requests",
				slog.String("state", req.State),
				slog.String("error", err.Error()))

			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(response.NewErrorWithDetails("Failed to fetch PRs", err.Error()))
			return
		}

		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(prs); err != nil {
			log.Error("failed to encode response", slog.String("error", err.Error()))
		}
	}
}
