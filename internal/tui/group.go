package tui

import "github.com/mkarpushin/pr-tracker/internal/domains"

// AuthorGroup is one results card: an author and their PRs.
type AuthorGroup struct {
	Login string
	PRs   []domains.PullRequest
}

// GroupByAuthor buckets PRs by author login. Group order is first-seen
// order; within a group the arrival order is preserved. Duplicate PR ids
// are kept as-is since ids are only unique per repository.
func GroupByAuthor(prs []domains.PullRequest) []AuthorGroup {
	index := make(map[string]int)
	var groups []AuthorGroup

	for _, pr := range prs {
		i, ok := index[pr.User.Login]
		if !ok {
			i = len(groups)
			index[pr.User.Login] = i
			groups = append(groups, AuthorGroup{Login: pr.User.Login})
		}
		groups[i].PRs = append(groups[i].PRs, pr)
	}

	return groups
}
