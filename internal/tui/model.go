package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mkarpushin/pr-tracker/internal/config"
	"github.com/mkarpushin/pr-tracker/internal/domains"
)

// API is the slice of the tracker API the TUI uses.
type API interface {
	Members(ctx context.Context, org string) ([]string, error)
	Repositories(ctx context.Context, org string) ([]string, error)
	PullRequestsByRepository(ctx context.Context, users []string, owner, repo string) ([]domains.PullRequest, error)
	PullRequestsByAuthor(ctx context.Context, users []string, state string) ([]domains.PullRequest, error)
}

// Pane identifies which selection list is focused.
type Pane int

const (
	PaneOwners Pane = iota
	PaneRepos
)

type screen int

const (
	screenSelection screen = iota
	screenResults
)

// searchState is the PR state requested in user-only mode.
const searchState = "open"

// Model drives both screens: the selection form and the results cards.
type Model struct {
	log *slog.Logger
	api API
	cfg config.ClientConfig

	screen screen

	// selection form
	availableOwners []string
	availableRepos  []string
	selectedOwners  map[string]bool
	selectedRepos   map[string]bool
	activePane      Pane
	ownerCursor     int
	repoCursor      int
	userOnly        bool
	loadingOwners   bool
	loadingRepos    bool

	// results
	selection  domains.Selection
	pending    []string
	prs        []domains.PullRequest
	fetching   bool
	resultsErr error
	spinner    spinner.Model

	windowWidth  int
	windowHeight int
	quitting     bool
}

type membersLoadedMsg struct {
	logins []string
	err    error
}

type reposLoadedMsg struct {
	names []string
	err   error
}

type repoPRsMsg struct {
	repo string
	prs  []domains.PullRequest
	err  error
}

type userPRsMsg struct {
	prs []domains.PullRequest
	err error
}

// NewModel builds the TUI model. The default organization comes from the
// config object, never from ambient state.
func NewModel(log *slog.Logger, api API, cfg config.ClientConfig) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = cursorStyle

	return Model{
		spinner:        sp,
		log:            log,
		api:            api,
		cfg:            cfg,
		screen:         screenSelection,
		selectedOwners: make(map[string]bool),
		selectedRepos:  make(map[string]bool),
		activePane:     PaneOwners,
		loadingOwners:  true,
		loadingRepos:   true,
		windowWidth:    80,
		windowHeight:   24,
	}
}

// Init fires the two lookup fetches. They run concurrently and in no
// particular order; each failure only empties its own option list.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchMembers(), m.fetchRepositories(), m.spinner.Tick)
}

func (m Model) fetchMembers() tea.Cmd {
	return func() tea.Msg {
		logins, err := m.api.Members(context.Background(), m.cfg.DefaultOwner)
		return membersLoadedMsg{logins: logins, err: err}
	}
}

func (m Model) fetchRepositories() tea.Cmd {
	return func() tea.Msg {
		names, err := m.api.Repositories(context.Background(), m.cfg.DefaultOwner)
		return reposLoadedMsg{names: names, err: err}
	}
}

func (m Model) fetchRepoPRs(repo string) tea.Cmd {
	return func() tea.Msg {
		prs, err := m.api.PullRequestsByRepository(
			context.Background(), m.selection.Owners, m.cfg.DefaultOwner, repo)
		return repoPRsMsg{repo: repo, prs: prs, err: err}
	}
}

func (m Model) fetchUserPRs() tea.Cmd {
	return func() tea.Msg {
		prs, err := m.api.PullRequestsByAuthor(context.Background(), m.selection.Owners, searchState)
		return userPRsMsg{prs: prs, err: err}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.fetching && !m.loadingOwners && !m.loadingRepos {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case membersLoadedMsg:
		m.loadingOwners = false
		if msg.err != nil {
			m.log.Error("failed to load members", slog.String("err", msg.err.Error()))
			return m, nil
		}
		m.availableOwners = msg.logins
		return m, nil

	case reposLoadedMsg:
		m.loadingRepos = false
		if msg.err != nil {
			m.log.Error("failed to load repositories", slog.String("err", msg.err.Error()))
			return m, nil
		}
		m.availableRepos = msg.names
		return m, nil

	case repoPRsMsg:
		return m.updateRepoResults(msg)

	case userPRsMsg:
		m.fetching = false
		if msg.err != nil {
			m.resultsErr = msg.err
			return m, nil
		}
		m.prs = msg.prs
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

// updateRepoResults appends one repository's PRs and moves to the next
// pending repository. The first failure becomes the view's error state and
// stops the loop.
func (m Model) updateRepoResults(msg repoPRsMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.fetching = false
		m.resultsErr = msg.err
		m.log.Error("failed to fetch pull requests",
			slog.String("repo", msg.repo),
			slog.String("err", msg.err.Error()))
		return m, nil
	}

	m.prs = append(m.prs, msg.prs...)

	if len(m.pending) > 0 {
		next := m.pending[0]
		m.pending = m.pending[1:]
		return m, m.fetchRepoPRs(next)
	}

	m.fetching = false
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenSelection:
		return m.updateSelectionKeys(msg)
	case screenResults:
		if msg.String() == "esc" {
			// Back to the form; the previous selections stay put.
			m.screen = screenSelection
			m.prs = nil
			m.pending = nil
			m.resultsErr = nil
			return m, nil
		}
	}

	return m, nil
}

func (m Model) updateSelectionKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		if m.userOnly {
			return m, nil
		}
		if m.activePane == PaneOwners {
			m.activePane = PaneRepos
		} else {
			m.activePane = PaneOwners
		}

	case "up", "k":
		m.moveCursor(-1)

	case "down", "j":
		m.moveCursor(1)

	case " ":
		m.toggleCurrent()

	case "u":
		m.userOnly = !m.userOnly
		if m.userOnly {
			m.activePane = PaneOwners
		}

	case "enter":
		if !m.CanSubmit() {
			return m, nil
		}
		return m.submit()
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	switch m.activePane {
	case PaneOwners:
		m.ownerCursor = clamp(m.ownerCursor+delta, 0, len(m.availableOwners)-1)
	case PaneRepos:
		m.repoCursor = clamp(m.repoCursor+delta, 0, len(m.availableRepos)-1)
	}
}

func (m *Model) toggleCurrent() {
	switch m.activePane {
	case PaneOwners:
		if len(m.availableOwners) == 0 {
			return
		}
		owner := m.availableOwners[m.ownerCursor]
		m.selectedOwners[owner] = !m.selectedOwners[owner]
	case PaneRepos:
		if len(m.availableRepos) == 0 {
			return
		}
		repo := m.availableRepos[m.repoCursor]
		m.selectedRepos[repo] = !m.selectedRepos[repo]
	}
}

// CanSubmit reports whether the form is complete: at least one owner, and
// either at least one repository or user-only mode.
func (m Model) CanSubmit() bool {
	owners := m.pickedOwners()
	if len(owners) == 0 {
		return false
	}
	return m.userOnly || len(m.pickedRepos()) > 0
}

// submit freezes the form into a snapshot and starts the results fetch.
// The form itself is left untouched for the next round.
func (m Model) submit() (tea.Model, tea.Cmd) {
	m.selection = domains.Selection{
		Owners:   m.pickedOwners(),
		Repos:    m.pickedRepos(),
		UserOnly: m.userOnly,
	}

	m.screen = screenResults
	m.prs = nil
	m.resultsErr = nil
	m.fetching = true

	if m.selection.UserOnly {
		return m, tea.Batch(m.fetchUserPRs(), m.spinner.Tick)
	}

	// One call per repository, strictly one at a time.
	m.pending = append([]string(nil), m.selection.Repos...)
	next := m.pending[0]
	m.pending = m.pending[1:]
	return m, tea.Batch(m.fetchRepoPRs(next), m.spinner.Tick)
}

// pickedOwners returns the selected owners in option-list order.
func (m Model) pickedOwners() []string {
	var out []string
	for _, o := range m.availableOwners {
		if m.selectedOwners[o] {
			out = append(out, o)
		}
	}
	return out
}

func (m Model) pickedRepos() []string {
	var out []string
	for _, r := range m.availableRepos {
		if m.selectedRepos[r] {
			out = append(out, r)
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
