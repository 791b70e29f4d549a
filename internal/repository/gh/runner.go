package gh

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// Runner executes one gh invocation and returns its stdout.
type Runner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

// CommandError is returned when the gh binary exits non-zero. Stderr holds
// the tool's own error text, which is what callers surface to the API.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error { return e.Err }

// CLIRunner runs the configured gh binary as a subprocess.
type CLIRunner struct {
	binary string
}

func NewCLIRunner(binary string) *CLIRunner {
	return &CLIRunner{binary: binary}
}

func (r *CLIRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &CommandError{
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}

	return stdout.Bytes(), nil
}
