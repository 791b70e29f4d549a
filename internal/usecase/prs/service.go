package prs

import (
	"context"
	"log/slog"

	"github.com/mkarpushin/pr-tracker/internal/domains"
	"github.com/mkarpushin/pr-tracker/internal/usecase"
	"golang.org/x/sync/errgroup"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=Repository
type Repository interface {
	PullRequests(ctx context.Context, owner, repo, author string) ([]domains.PullRequest, error)
	SearchPullRequests(ctx context.Context, author, state string) ([]domains.PullRequest, error)
}

type Service struct {
	log     *slog.Logger
	repo    Repository
	workers int
}

// New builds the aggregation service. workers bounds the per-user fan-out;
// values below 1 are treated as 1, which keeps upstream calls strictly
// sequential.
func New(log *slog.Logger, repo Repository, workers int) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{log: log, repo: repo, workers: workers}
}

// ListByRepository returns all PRs authored by each of users in owner/repo.
// One upstream query is issued per username; a user with zero PRs
// contributes nothing, and any single failed or unparseable query aborts
// the whole aggregation.
func (s *Service) ListByRepository(ctx context.Context, users []string, owner, repo string) ([]domains.PullRequest, error) {
	const op = "usecase.prs.ListByRepository"

	if len(users) == 0 {
		return nil, usecase.ErrNoUsers
	}

	prs, err := s.aggregate(ctx, users, func(ctx context.Context, user string) ([]domains.PullRequest, error) {
		return s.repo.PullRequests(ctx, owner, repo, user)
	})
	if err != nil {
		s.log.Error("failed to aggregate pull requests",
			slog.String("op", op),
			slog.String("repo", owner+"/"+repo),
			slog.String("err", err.Error()))
		return nil, err
	}

	s.log.Info("aggregated pull requests",
		slog.String("repo", owner+"/"+repo),
		slog.Int("users", len(users)),
		slog.Int("count", len(prs)))
	return prs, nil
}

// SearchByAuthor returns all PRs authored by each of users across every
// repository visible to the gh session, filtered by state. The state string
// is passed through to the upstream tool verbatim.
func (s *Service) SearchByAuthor(ctx context.Context, users []string, state string) ([]domains.PullRequest, error) {
	const op = "usecase.prs.SearchByAuthor"

	if len(users) == 0 {
		return nil, usecase.ErrNoUsers
	}

	prs, err := s.aggregate(ctx, users, func(ctx context.Context, user string) ([]domains.PullRequest, error) {
		return s.repo.SearchPullRequests(ctx, user, state)
	})
	if err != nil {
		s.log.Error("failed to aggregate pull requests",
			slog.String("op", op),
			slog.String("state", state),
			slog.String("err", err.Error()))
		return nil, err
	}

	s.log.Info("aggregated pull requests",
		slog.String("state", state),
		slog.Int("users", len(users)),
		slog.Int("count", len(prs)))
	return prs, nil
}

// aggregate runs fetch once per user through a bounded errgroup. Results
// are slotted by input index and flattened afterwards, so output order
// always matches the username order regardless of completion order.
func (s *Service) aggregate(
	ctx context.Context,
	users []string,
	fetch func(ctx context.Context, user string) ([]domains.PullRequest, error),
) ([]domains.PullRequest, error) {
	perUser := make([][]domains.PullRequest, len(users))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, user := range users {
		g.Go(func() error {
			// A previous user's failure already aborted the aggregation.
			if err := gctx.Err(); err != nil {
				return err
			}
			prs, err := fetch(gctx, user)
			if err != nil {
				return err
			}
			perUser[i] = prs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]domains.PullRequest, 0)
	for _, prs := range perUser {
		out = append(out, prs...)
	}
	return out, nil
}
