package byrepo_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mkarpushin/pr-tracker/internal/domains"
	"github.com/mkarpushin/pr-tracker/internal/httpserver/handlers/prs/byrepo"
	"github.com/mkarpushin/pr-tracker/internal/httpserver/handlers/prs/byrepo/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestByRepoHandler(t *testing.T) {
	type testCase struct {
		name           string
		body           string
		expectUsers    []string
		mockReturn     []domains.PullRequest
		mockError      error
		expectedStatus int
		expectedErr    string
		expectedDetail string
	}

	cases := []testCase{
		{
			name:        "Success",
			body:        `{"users":"alice, bob","repository":"core","owner":"acme"}`,
			expectUsers: []string{"alice", "bob"},
			mockReturn: []domains.PullRequest{
				{ID: 1, Title: "one", State: "open", User: domains.Author{Login: "alice", AvatarURL: domains.PlaceholderAvatarURL}},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Empty users string",
			body:           `{"users":"","repository":"core","owner":"acme"}`,
			expectedStatus: http.StatusBadRequest,
			expectedErr:    "Users parameter is required",
		},
		{
			name:           "Whitespace-only users",
			body:           `{"users":" , ,","repository":"core","owner":"acme"}`,
			expectedStatus: http.StatusBadRequest,
			expectedErr:    "Users parameter is required",
		},
		{
			name:           "Invalid JSON",
			body:           `{"users":`,
			expectedStatus: http.StatusBadRequest,
			expectedErr:    "Users parameter is required",
		},
		{
			name:           "Upstream failure",
			body:           `{"users":"alice","repository":"core","owner":"acme"}`,
			expectUsers:    []string{"alice"},
			mockError:      errors.New("gh: could not resolve to a Repository"),
			expectedStatus: http.StatusInternalServerError,
			expectedErr:    "Failed to fetch PRs",
			expectedDetail: "gh: could not resolve to a Repository",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewPRService(t)

			if tc.expectUsers != nil {
				svc.On("ListByRepository", mock.Anything, tc.expectUsers, "acme", "core").
					Return(tc.mockReturn, tc.mockError).
					Once()
			}

			handler := byrepo.New(discardLogger(), svc)

			req := httptest.NewRequest(http.MethodPost, "/api/prs", bytes.NewReader([]byte(tc.body)))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			require.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedErr != "" {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				require.Equal(t, tc.expectedErr, resp["error"])
				if tc.expectedDetail != "" {
					require.Equal(t, tc.expectedDetail, resp["details"])
				}
				return
			}

			var prs []domains.PullRequest
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &prs))
			require.Equal(t, tc.mockReturn, prs)
		})
	}
}
