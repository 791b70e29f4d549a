package org

import (
	"context"
	"log/slog"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=Repository
type Repository interface {
	Members(ctx context.Context, org string) ([]string, error)
	Repositories(ctx context.Context, org string) ([]string, error)
}

type Service struct {
	log  *slog.Logger
	repo Repository
}

func New(log *slog.Logger, repo Repository) *Service {
	return &Service{log: log, repo: repo}
}

// Members lists the login names of an organization's members.
func (s *Service) Members(ctx context.Context, orgName string) ([]string, error) {
	const op = "usecase.org.Members"

	members, err := s.repo.Members(ctx, orgName)
	if err != nil {
		s.log.Error("failed to list members",
			slog.String("op", op),
			slog.String("org", orgName),
			slog.String("err", err.Error()))
		return nil, err
	}

	return members, nil
}

// Repositories lists an organization's repository names.
func (s *Service) Repositories(ctx context.Context, orgName string) ([]string, error) {
	const op = "usecase.org.Repositories"

	repos, err := s.repo.Repositories(ctx, orgName)
	if err != nil {
		s.log.Error("failed to list repositories",
			slog.String("op", op),
			slog.String("org", orgName),
			slog.String("err", err.Error()))
		return nil, err
	}

	return repos, nil
}
