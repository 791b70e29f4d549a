package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/mkarpushin/pr-tracker/internal/config"
	"github.com/mkarpushin/pr-tracker/internal/domains"
)

type fakeAPI struct {
	members     func(ctx context.Context, org string) ([]string, error)
	repos       func(ctx context.Context, org string) ([]string, error)
	prsByRepo   func(ctx context.Context, users []string, owner, repo string) ([]domains.PullRequest, error)
	prsByAuthor func(ctx context.Context, users []string, state string) ([]domains.PullRequest, error)
}

func (f *fakeAPI) Members(ctx context.Context, org string) ([]string, error) {
	return f.members(ctx, org)
}

func (f *fakeAPI) Repositories(ctx context.Context, org string) ([]string, error) {
	return f.repos(ctx, org)
}

func (f *fakeAPI) PullRequestsByRepository(ctx context.Context, users []string, owner, repo string) ([]domains.PullRequest, error) {
	return f.prsByRepo(ctx, users, owner, repo)
}

func (f *fakeAPI) PullRequestsByAuthor(ctx context.Context, users []string, state string) ([]domains.PullRequest, error) {
	return f.prsByAuthor(ctx, users, state)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newLoadedModel returns a model with both option lists already populated.
func newLoadedModel(api API) Model {
	m := NewModel(discardLogger(), api, config.ClientConfig{DefaultOwner: "acme"})
	m.availableOwners = []string{"alice", "bob"}
	m.availableRepos = []string{"backend", "frontend"}
	m.loadingOwners = false
	m.loadingRepos = false
	return m
}

// drain executes cmd, unwrapping batches, and returns the produced messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// drive runs the message loop to quiescence. Spinner ticks are dropped so
// the loop terminates.
func drive(m Model, cmd tea.Cmd) Model {
	queue := drain(cmd)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		if _, ok := msg.(spinner.TickMsg); ok {
			continue
		}
		next, c := m.Update(msg)
		m = next.(Model)
		queue = append(queue, drain(c)...)
	}
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestCanSubmit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		owners   []string
		repos    []string
		userOnly bool
		want     bool
	}{
		{name: "nothing selected", want: false},
		{name: "owners only", owners: []string{"alice"}, want: false},
		{name: "repos only", repos: []string{"backend"}, want: false},
		{name: "owners and repos", owners: []string{"alice"}, repos: []string{"backend"}, want: true},
		{name: "owners and user only", owners: []string{"alice"}, userOnly: true, want: true},
		{name: "user only without owners", userOnly: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newLoadedModel(&fakeAPI{})
			for _, o := range tt.owners {
				m.selectedOwners[o] = true
			}
			for _, r := range tt.repos {
				m.selectedRepos[r] = true
			}
			m.userOnly = tt.userOnly

			require.Equal(t, tt.want, m.CanSubmit())
		})
	}
}

func TestSelectionKeys(t *testing.T) {
	t.Parallel()

	m := newLoadedModel(&fakeAPI{})

	next, _ := m.Update(keyMsg(" "))
	m = next.(Model)
	require.True(t, m.selectedOwners["alice"])

	next, _ = m.Update(keyMsg("tab"))
	m = next.(Model)
	require.Equal(t, PaneRepos, m.activePane)

	next, _ = m.Update(keyMsg("j"))
	m = next.(Model)
	next, _ = m.Update(keyMsg(" "))
	m = next.(Model)
	require.True(t, m.selectedRepos["frontend"])

	// Toggling off deselects.
	next, _ = m.Update(keyMsg(" "))
	m = next.(Model)
	require.False(t, m.selectedRepos["frontend"])
}

func TestUserOnlyLocksOwnerPane(t *testing.T) {
	t.Parallel()

	m := newLoadedModel(&fakeAPI{})

	next, _ := m.Update(keyMsg("tab"))
	m = next.(Model)
	require.Equal(t, PaneRepos, m.activePane)

	next, _ = m.Update(keyMsg("u"))
	m = next.(Model)
	require.True(t, m.userOnly)
	require.Equal(t, PaneOwners, m.activePane)

	next, _ = m.Update(keyMsg("tab"))
	m = next.(Model)
	require.Equal(t, PaneOwners, m.activePane)
}

func TestSubmitStartsRepoChain(t *testing.T) {
	t.Parallel()

	var gotRepos []string
	api := &fakeAPI{
		prsByRepo: func(_ context.Context, users []string, owner, repo string) ([]domains.PullRequest, error) {
			gotRepos = append(gotRepos, repo)
			require.Equal(t, []string{"alice"}, users)
			require.Equal(t, "acme", owner)
			return []domains.PullRequest{{ID: int64(len(gotRepos)), User: domains.Author{Login: "alice"}}}, nil
		},
	}

	m := newLoadedModel(api)
	m.selectedOwners["alice"] = true
	m.selectedRepos["backend"] = true
	m.selectedRepos["frontend"] = true

	next, cmd := m.Update(keyMsg("enter"))
	m = next.(Model)
	require.Equal(t, screenResults, m.screen)
	require.True(t, m.fetching)
	require.NotNil(t, cmd)

	// Drive the sequential chain to completion.
	m = drive(m, cmd)

	require.False(t, m.fetching)
	require.NoError(t, m.resultsErr)
	require.Equal(t, []string{"backend", "frontend"}, gotRepos)
	require.Len(t, m.prs, 2)
}

func TestSubmitUserOnly(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{
		prsByAuthor: func(_ context.Context, users []string, state string) ([]domains.PullRequest, error) {
			require.Equal(t, []string{"bob"}, users)
			require.Equal(t, "open", state)
			return []domains.PullRequest{{ID: 9, User: domains.Author{Login: "bob"}}}, nil
		},
	}

	m := newLoadedModel(api)
	m.selectedOwners["bob"] = true
	m.userOnly = true

	next, cmd := m.Update(keyMsg("enter"))
	m = next.(Model)
	require.NotNil(t, cmd)

	m = drive(m, cmd)
	require.False(t, m.fetching)
	require.Len(t, m.prs, 1)
}

func TestRepoFailureStopsChain(t *testing.T) {
	t.Parallel()

	calls := 0
	api := &fakeAPI{
		prsByRepo: func(_ context.Context, _ []string, _, repo string) ([]domains.PullRequest, error) {
			calls++
			return nil, errors.New("gh exploded")
		},
	}

	m := newLoadedModel(api)
	m.selectedOwners["alice"] = true
	m.selectedRepos["backend"] = true
	m.selectedRepos["frontend"] = true

	next, cmd := m.Update(keyMsg("enter"))
	m = next.(Model)
	require.NotNil(t, cmd)

	m = drive(m, cmd)

	require.False(t, m.fetching)
	require.EqualError(t, m.resultsErr, "gh exploded")
	require.Equal(t, 1, calls)
}

func TestEscReturnsToForm(t *testing.T) {
	t.Parallel()

	m := newLoadedModel(&fakeAPI{})
	m.selectedOwners["alice"] = true
	m.screen = screenResults
	m.prs = []domains.PullRequest{{ID: 1}}
	m.resultsErr = errors.New("boom")

	next, _ := m.Update(keyMsg("esc"))
	m = next.(Model)

	require.Equal(t, screenSelection, m.screen)
	require.Nil(t, m.prs)
	require.NoError(t, m.resultsErr)
	require.True(t, m.selectedOwners["alice"])
}

func TestLookupFailureLeavesListEmpty(t *testing.T) {
	t.Parallel()

	m := NewModel(discardLogger(), &fakeAPI{}, config.ClientConfig{DefaultOwner: "acme"})

	next, _ := m.Update(membersLoadedMsg{err: errors.New("gh: not logged in")})
	m = next.(Model)

	require.False(t, m.loadingOwners)
	require.Empty(t, m.availableOwners)

	next, _ = m.Update(reposLoadedMsg{names: []string{"backend"}})
	m = next.(Model)

	require.False(t, m.loadingRepos)
	require.Equal(t, []string{"backend"}, m.availableRepos)
}
