package byrepo

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mkarpushin/pr-tracker/internal/domains"
	"github.com/mkarpushin/pr-tracker/internal/lib/api/response"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=PRService
type PRService interface {
	ListByRepository(ctx context.Context, users []string, owner, repo string) ([]domains.PullRequest, error)
}

type Request struct {
	Users      string `json:"users"`
	Repository string `json:"repository"`
	Owner      string `json:"owner"`
}

func New(
	log *slog.Logger,
	service PRService,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http.handlers.prs.byrepo.New"
		log = log.With(slog.String("op", op))

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("invalid request body", slog.Any("error", err))

			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(response.NewError("Users parameter is required"))
			return
		}

		users := splitUsers(req.Users)
		if len(users) == 0 {
			log.Warn("empty users parameter")

			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(response.NewError("Users parameter is required"))
			return
		}

		prs, err := service.ListByRepository(r.Context(), users, req.Owner, req.Repository)
		if err != nil {
			log.Warn("failed to fetch pull requests",
				slog.String("repo", req.Owner+"/"+req.Repository),
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

// splitUsers turns the comma-separated users parameter into a trimmed list,
// dropping empty entries.
func splitUsers(users string) []string {
	var out []string
	for _, u := range strings.Split(users, ",") {
		if u = strings.TrimSpace(u); u != "" {
			out = append(out, u)
		}
	}
	return out
}
