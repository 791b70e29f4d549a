package login

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// AuthService only explains how to log in; authentication itself happens
// out-of-band through the gh CLI.
type AuthService interface {
	LoginInstructions() string
}

type Response struct {
	Message string `json:"message"`
}

func New(
	log *slog.Logger,
	service AuthService,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http.handlers.auth.login.New"
		log = log.With(slog.String("op", op))

		resp := Response{Message: service.LoginInstructions()}

		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Error("failed to encode response", slog.String("error", err.Error()))
		}
	}
}
