package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkarpushin/pr-tracker/internal/httpserver"
	"github.com/mkarpushin/pr-tracker/internal/repository/gh"
	"github.com/mkarpushin/pr-tracker/internal/usecase/auth"
	"github.com/mkarpushin/pr-tracker/internal/usecase/org"
	"github.com/mkarpushin/pr-tracker/internal/usecase/prs"
)

// fakeGH replays canned gh output keyed by the full argument list. Commands
// without an entry fail the way a broken gh invocation would.
type fakeGH struct {
	outputs map[string][]byte
	errs    map[string]error
}

func newFakeGH() *fakeGH {
	return &fakeGH{
		outputs: make(map[string][]byte),
		errs:    make(map[string]error),
	}
}

func (f *fakeGH) on(output string, args ...string) {
	f.outputs[strings.Join(args, " ")] = []byte(output)
}

func (f *fakeGH) fail(err error, args ...string) {
	f.errs[strings.Join(args, " ")] = err
}

func (f *fakeGH) Run(_ context.Context, args ...string) ([]byte, error) {
	key := strings.Join(args, " ")
	if err, ok := f.errs[key]; ok {
		return nil, err
	}
	if out, ok := f.outputs[key]; ok {
		return out, nil
	}
	return nil, &gh.CommandError{Args: args, Stderr: "unknown gh command: " + key}
}

// newTestServer wires the real router and services on top of a fake gh
// runner, with the fan-out width under test control.
func newTestServer(t *testing.T, runner gh.Runner, workers int) *httptest.Server {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ghClient := gh.New(log, runner)

	router := httpserver.NewRouter(log, httpserver.Services{
		Auth: auth.New(log, ghClient),
		Org:  org.New(log, ghClient),
		PRs:  prs.New(log, ghClient, workers),
	}, "http://localhost:3001")

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}

	return resp
}

func postJSON(t *testing.T, url, body string, out any) *http.Response {
	t.Helper()

	resp, err := http.Post(url, "application/json", bytes.NewReader([]byte(body)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}

	return resp
}
