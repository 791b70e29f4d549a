package gh

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/mkarpushin/pr-tracker/internal/domains"
)

// prFields is the field set requested from gh for every PR-shaped query.
const prFields = "id,title,state,url,createdAt,author"

// repoListLimit caps the repository lookup, matching the upstream tool's
// default page behavior for `gh repo list`.
const repoListLimit = "200"

// rawPullRequest mirrors gh's JSON output. The field names are a hard
// compatibility boundary with the gh CLI.
type rawPullRequest struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	State     string    `json:"state"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
	Author    struct {
		Login string `json:"login"`
	} `json:"author"`
}

func (r rawPullRequest) normalize() domains.PullRequest {
	return domains.PullRequest{
		ID:        r.ID,
		Title:     r.Title,
		State:     r.State,
		CreatedAt: r.CreatedAt,
		User: domains.Author{
			Login:     r.Author.Login,
			AvatarURL: domains.PlaceholderAvatarURL,
		},
		HTMLURL: r.URL,
	}
}

// Client is the gh-backed data source. Every entity is rebuilt per request
// from live gh output; nothing is cached or persisted.
type Client struct {
	log    *slog.Logger
	runner Runner
}

func New(log *slog.Logger, runner Runner) *Client {
	return &Client{log: log, runner: runner}
}

// AuthStatus returns gh's own auth report. The error is the gh failure,
// carrying the tool's stderr text.
func (c *Client) AuthStatus(ctx context.Context) (string, error) {
	out, err := c.runner.Run(ctx, "auth", "status")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Members lists the login names of an organization's members. Pagination
// happens inside gh; the result is fully materialized.
func (c *Client) Members(ctx context.Context, org string) ([]string, error) {
	const op = "repository.gh.Members"

	out, err := c.runner.Run(ctx, "api", "orgs/"+org+"/members", "--paginate")
	if err != nil {
		return nil, err
	}

	var members []struct {
		Login string `json:"login"`
	}
	if err := json.Unmarshal(out, &members); err != nil {
		return nil, fmt.Errorf("%s: parse gh output: %w", op, err)
	}

	logins := make([]string, 0, len(members))
	for _, m := range members {
		logins = append(logins, m.Login)
	}

	c.log.Debug("fetched org members", slog.String("org", org), slog.Int("count", len(logins)))
	return logins, nil
}

// Repositories lists the organization's repository names, capped at 200.
func (c *Client) Repositories(ctx context.Context, org string) ([]string, error) {
	const op = "repository.gh.Repositories"

	out, err := c.runner.Run(ctx, "repo", "list", org, "--limit", repoListLimit, "--json", "name")
	if err != nil {
		return nil, err
	}

	var repos []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(out, &repos); err != nil {
		return nil, fmt.Errorf("%s: parse gh output: %w", op, err)
	}

	names := make([]string, 0, len(repos))
	for _, r := range repos {
		names = append(names, r.Name)
	}

	c.log.Debug("fetched org repositories", slog.String("org", org), slog.Int("count", len(names)))
	return names, nil
}

// PullRequests lists one author's PRs in one repository, normalized.
func (c *Client) PullRequests(ctx context.Context, owner, repo, author string) ([]domains.PullRequest, error) {
	const op = "repository.gh.PullRequests"

	out, err := c.runner.Run(ctx,
		"pr", "list",
		"--repo", owner+"/"+repo,
		"--author", author,
		"--json", prFields,
	)
	if err != nil {
		return nil, err
	}

	return parsePullRequests(op, out)
}

// SearchPullRequests lists one author's PRs across every repository visible
// to gh's authenticated session, filtered by state. The state is passed
// through to gh verbatim.
func (c *Client) SearchPullRequests(ctx context.Context, author, state string) ([]domains.PullRequest, error) {
	const op = "repository.gh.SearchPullRequests"

	out, err := c.runner.Run(ctx,
		"search", "prs",
		"--author", author,
		"--state", state,
		"--json", prFields,
	)
	if err != nil {
		return nil, err
	}

	return parsePullRequests(op, out)
}

func parsePullRequests(op string, out []byte) ([]domains.PullRequest, error) {
	var raw []rawPullRequest
	if err := json.Unmarshal(out, &raw); err != nil {
		return nil, fmt.Errorf("%s: parse gh output: %w", op, err)
	}

	prs := make([]domains.PullRequest, 0, len(raw))
	for _, r := range raw {
		prs = append(prs, r.normalize())
	}
	return prs, nil
}
