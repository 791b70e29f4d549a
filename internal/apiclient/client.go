package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mkarpushin/pr-tracker/internal/domains"
	"github.com/mkarpushin/pr-tracker/internal/lib/api/response"
)

// Client talks to the tracker API. No timeout is set on purpose: the
// aggregation endpoints block for the duration of the underlying gh calls.
type Client struct {
	log     *slog.Logger
	baseURL string
	http    *http.Client
}

func New(log *slog.Logger, baseURL string) *Client {
	return &Client{
		log:     log,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// AuthStatus is the reply of GET /api/auth/status.
type AuthStatus struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

func (c *Client) AuthStatus(ctx context.Context) (*AuthStatus, error) {
	var out AuthStatus
	if err := c.get(ctx, "/api/auth/status", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Members(ctx context.Context, org string) ([]string, error) {
	var out []string
	if err := c.get(ctx, "/api/"+org+"/members", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Repositories(ctx context.Context, org string) ([]string, error) {
	var out []string
	if err := c.get(ctx, "/api/"+org+"/repos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PullRequestsByRepository calls POST /api/prs for one repository. The
// users list is joined into the comma-separated form the API expects.
func (c *Client) PullRequestsByRepository(ctx context.Context, users []string, owner, repo string) ([]domains.PullRequest, error) {
	body := map[string]string{
		"users":      strings.Join(users, ","),
		"repository": repo,
		"owner":      owner,
	}

	var out []domains.PullRequest
	if err := c.post(ctx, "/api/prs", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PullRequestsByAuthor calls POST /api/user/prs: the users' PRs across all
// repositories, filtered by state.
func (c *Client) PullRequestsByAuthor(ctx context.Context, users []string, state string) ([]domains.PullRequest, error) {
	body := map[string]any{
		"users": users,
		"state": state,
	}

	var out []domains.PullRequest
	if err := c.post(ctx, "/api/user/prs", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, v)
}

func (c *Client) post(ctx context.Context, path string, body, v any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, v)
}

func (c *Client) do(req *http.Request, v any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

func decodeError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	var errResp response.ErrorResponse
	if err := json.Unmarshal(data, &errResp); err == nil && errResp.Error != "" {
		if errResp.Details != "" {
			return fmt.Errorf("%s: %s", errResp.Error, errResp.Details)
		}
		return fmt.Errorf("%s", errResp.Error)
	}

	return fmt.Errorf("unexpected status %s", resp.Status)
}
