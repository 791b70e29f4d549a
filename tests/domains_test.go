package tests

import "time"

type PullRequest struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	User      struct {
		Login     string `json:"login"`
		AvatarURL string `json:"avatar_url"`
	} `json:"user"`
	HTMLURL string `json:"html_url"`
}

type AuthStatusResponse struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

type LoginResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}
