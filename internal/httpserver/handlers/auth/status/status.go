package status

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=AuthService
type AuthService interface {
	Status(ctx context.Context) (status, details string)
}

type Response struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

// New reports the gh session's auth state. This endpoint never fails:
// an unauthenticated or broken gh session is a valid answer, not an error.
func New(
	log *slog.Logger,
	service AuthService,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http.handlers.auth.status.New"
		log = log.With(slog.String("op", op))

		authStatus, details := service.Status(r.Context())

		resp := Response{Status: authStatus, Details: details}

		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Error("failed to encode response", slog.String("error", err.Error()))
		}
	}
}
