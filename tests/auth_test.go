package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkarpushin/pr-tracker/internal/repository/gh"
)

func TestAuthStatus_Authenticated(t *testing.T) {
	fake := newFakeGH()
	fake.on("Logged in to github.com account alice\n", "auth", "status")

	srv := newTestServer(t, fake, 1)

	var out AuthStatusResponse
	resp := getJSON(t, srv.URL+"/api/auth/status", &out)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "authenticated", out.Status)
	assert.Contains(t, out.Details, "alice")
}

func TestAuthStatus_NotAuthenticated(t *testing.T) {
	fake := newFakeGH()
	fake.fail(&gh.CommandError{
		Args:   []string{"auth", "status"},
		Stderr: "You are not logged into any GitHub hosts.",
	}, "auth", "status")

	srv := newTestServer(t, fake, 1)

	var out AuthStatusResponse
	resp := getJSON(t, srv.URL+"/api/auth/status", &out)

	// A failed gh check is still a well-formed answer, not a server error.
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "not authenticated", out.Status)
	assert.Contains(t, out.Details, "not logged in")
}

func TestAuthLogin_ReturnsInstructions(t *testing.T) {
	srv := newTestServer(t, newFakeGH(), 1)

	var out LoginResponse
	resp := postJSON(t, srv.URL+"/api/auth/login", `{}`, &out)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, out.Message, "gh auth login --web")
}
