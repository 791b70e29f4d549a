package auth

import (
	"context"
	"log/slog"
)

const (
	StatusAuthenticated    = "authenticated"
	StatusNotAuthenticated = "not authenticated"
)

// loginMessage mirrors what gh itself expects: authentication happens
// out-of-band in a terminal, never through this service.
const loginMessage = "run `gh auth login --web` in a terminal/bash"

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=Repository
type Repository interface {
	AuthStatus(ctx context.Context) (string, error)
}

type Service struct {
	log  *slog.Logger
	repo Repository
}

func New(log *slog.Logger, repo Repository) *Service {
	return &Service{log: log, repo: repo}
}

// Status reports whether the gh session is authenticated. A gh failure is
// not an error here: it becomes the "not authenticated" answer with the
// tool's own text as details.
func (s *Service) Status(ctx context.Context) (status, details string) {
	out, err := s.repo.AuthStatus(ctx)
	if err != nil {
		s.log.Warn("gh auth status failed", slog.String("err", err.Error()))
		return StatusNotAuthenticated, err.Error()
	}
	return StatusAuthenticated, out
}

// LoginInstructions tells the caller how to authenticate the gh session.
func (s *Service) LoginInstructions() string {
	return loginMessage
}
