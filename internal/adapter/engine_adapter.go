package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	m "iacscan.dev/pkg/iacscan/internal/model"
)

// DefaultEngineTimeout bounds a single policy engine invocation.
const DefaultEngineTimeout = 5 * time.Minute

// EngineRequest describes one policy engine invocation.
type EngineRequest struct {
	EnginePath  m.Path
	BundlePath  m.Path
	TargetPath  m.Path
	OrgSettings m.OrgSettings
	Args        []string
}

// EngineAdapter abstracts running the external policy engine.
type EngineAdapter interface {
	// Invoke runs the engine against req.TargetPath and decodes its report.
	// It blocks until the engine process exits.
	Invoke(ctx context.Context, req EngineRequest) (m.EngineOutput, error)
}

// EngineError reports an engine process that failed to start or exited abnormally.
type EngineError struct {
	ExitCode int
	Stderr   string
	Err      error
}

func (e *EngineError) Error() string {
	diagnostic := strings.TrimSpace(e.Stderr)
	if diagnostic == "" && e.Err != nil {
		diagnostic = e.Err.Error()
	}

	return fmt.Sprintf("policy engine exited with code %d: %s", e.ExitCode, diagnostic)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// OutputError reports engine stdout that could not be decoded.
type OutputError struct {
	Output string
	Err    error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("invalid policy engine output: %v", e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

// LocalEngineAdapter runs the engine as a child process using os/exec.
type LocalEngineAdapter struct {
	timeout time.Duration
}

// NewLocalEngineAdapter constructs a LocalEngineAdapter with the default timeout.
func NewLocalEngineAdapter() *LocalEngineAdapter {
	return &LocalEngineAdapter{
		timeout: DefaultEngineTimeout,
	}
}

// NewLocalEngineAdapterWithTimeout constructs a LocalEngineAdapter with a custom timeout.
func NewLocalEngineAdapterWithTimeout(timeout time.Duration) *LocalEngineAdapter {
	if timeout <= 0 {
		timeout = DefaultEngineTimeout
	}

	return &LocalEngineAdapter{
		timeout: timeout,
	}
}

// Invoke runs `<engine> test --bundle <bundle> --org-settings - [args...] <target>`.
// The org settings are written to the engine's stdin as JSON. Exit codes 0 and
// 1 both mean the engine completed (1 signals issues were found).
func (a *LocalEngineAdapter) Invoke(ctx context.Context, req EngineRequest) (m.EngineOutput, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	settings, err := json.Marshal(req.OrgSettings)
	if err != nil {
		return m.EngineOutput{}, fmt.Errorf("encode org settings: %w", err)
	}

	args := []string{"test", "--bundle", string(req.BundlePath), "--format", "json", "--org-settings", "-"}
	args = append(args, req.Args...)
	args = append(args, string(req.TargetPath))

	// #nosec G204 - the engine path comes from the resolved artifact cache
	cmd := exec.CommandContext(ctx, string(req.EnginePath), args...)
	cmd.Stdin = bytes.NewReader(settings)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("Invoking policy engine", "engine", req.EnginePath, "target", req.TargetPath, "args", args)

	runErr := cmd.Run()
	if runErr != nil {
		exitCode := -1

		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		if exitCode != 1 {
			slog.Error("Policy engine failed", "target", req.TargetPath, "exitCode", exitCode, "error", runErr)
			return m.EngineOutput{}, &EngineError{ExitCode: exitCode, Stderr: stderr.String(), Err: runErr}
		}
	}

	var output m.EngineOutput
	if err := json.Unmarshal(stdout.Bytes(), &output); err != nil {
		slog.Error("Failed to decode policy engine output", "target", req.TargetPath, "error", err)
		return m.EngineOutput{}, &OutputError{Output: stdout.String(), Err: err}
	}

	slog.Debug("Policy engine completed", "target", req.TargetPath, "results", len(output.Results), "errors", len(output.Errors))

	return output, nil
}
