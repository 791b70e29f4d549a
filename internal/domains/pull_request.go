package domains

import "time"

// PlaceholderAvatarURL is returned for every author instead of the real
// avatar. Resolving the real one costs one extra gh call per user.
const PlaceholderAvatarURL = "https://avatars.githubusercontent.com/u/98375917?v=4"

// Author is the PR author as exposed over the API.
type Author struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// PullRequest is the normalized pull request shape. IDs are unique only
// within one repository; aggregations across repositories may contain
// collisions and consumers must tolerate them.
type PullRequest struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	User      Author    `json:"user"`
	HTMLURL   string    `json:"html_url"`
}
