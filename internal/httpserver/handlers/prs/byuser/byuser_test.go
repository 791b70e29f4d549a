package byuser_test

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
	"github.com/mkarpushin/pr-tracker/internal/httpserver/handlers/prs/byuser"
	"github.com/mkarpushin/pr-tracker/internal/httpserver/handlers/prs/byuser/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestByUserHandler(t *testing.T) {
	type testCase struct {
		name           string
		body           string
		expectUsers    []string
		expectState    string
		mockReturn     []domains.PullRequest
		mockError      error
		expectedStatus int
		expectedErr    string
	}

	cases := []testCase{
		{
			name:        "Success",
			body:        `{"users":["alice","bob"],"state":"open"}`,
			expectUsers: []string{"alice", "bob"},
			expectState: "open",
			mockReturn: []domains.PullRequest{
				{ID: 1, Title: "one", State: "open", User: domains.Author{Login: "alice", AvatarURL: domains.PlaceholderAvatarURL}},
				{ID: 2, Title: "two", State: "open", User: domains.Author{Login: "bob", AvatarURL: domains.PlaceholderAvatarURL}},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Empty users list",
			body:           `{"users":[],"state":"open"}`,
			expectedStatus: http.StatusBadRequest,
			expectedErr:    "Users parameter is required",
		},
		{
			name:           "Missing users field",
			body:           `{"state":"open"}`,
			expectedStatus: http.StatusBadRequest,
			expectedErr:    "Users parameter is required",
		},
		{
			name:           "Invalid JSON",
			body:           `{"users":[`,
			expectedStatus: http.StatusBadRequest,
			expectedErr:    "Users parameter is required",
		},
		{
			name:           "Upstream failure",
			body:           `{"users":["alice"],"state":"closed"}`,
			expectUsers:    []string{"alice"},
			expectState:    "closed",
			mockError:      errors.New("gh: search failed"),
			expectedStatus: http.StatusInternalServerError,
			expectedErr:    "Failed to fetch PRs",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewPRService(t)

			if tc.expectUsers != nil {
				svc.On("SearchByAuthor", mock.Anything, tc.expectUsers, tc.expectState).
					Return(tc.mockReturn, tc.mockError).
					Once()
			}

			handler := byuser.New(discardLogger(), svc)

			req := httptest.NewRequest(http.MethodPost, "/api/user/prs", bytes.NewReader([]byte(tc.body)))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			require.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedErr != "" {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				require.Equal(t, tc.expectedErr, resp["error"])
				return
			}

			var prs []domains.PullRequest
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &prs))
			require.Equal(t, tc.mockReturn, prs)
		})
	}
}
