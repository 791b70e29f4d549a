package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkarpushin/pr-tracker/internal/domains"
)

func TestGroupByAuthor(t *testing.T) {
	t.Parallel()

	prs := []domains.PullRequest{
		{ID: 1, Title: "first", User: domains.Author{Login: "alice"}},
		{ID: 2, Title: "second", User: domains.Author{Login: "bob"}},
		{ID: 3, Title: "third", User: domains.Author{Login: "alice"}},
	}

	groups := GroupByAuthor(prs)

	require.Len(t, groups, 2)
	require.Equal(t, "alice", groups[0].Login)
	require.Equal(t, []int64{1, 3}, []int64{groups[0].PRs[0].ID, groups[0].PRs[1].ID})
	require.Equal(t, "bob", groups[1].Login)
	require.Len(t, groups[1].PRs, 1)
	require.Equal(t, int64(2), groups[1].PRs[0].ID)
}

func TestGroupByAuthorEmpty(t *testing.T) {
	t.Parallel()

	require.Empty(t, GroupByAuthor(nil))
}
