package adapter

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "iacscan.dev/pkg/iacscan/internal/model"
)

// writeEngineScript writes a shell script standing in for the policy engine.
// The script records its arguments and stdin next to itself.
func writeEngineScript(t *testing.T, body string) (m.Path, string) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("engine stand-in is a POSIX shell script")
	}

	dir := t.TempDir()
	script := filepath.Join(dir, "engine")
	content := "#!/bin/sh\n" +
		"echo \"$@\" > \"" + filepath.Join(dir, "args") + "\"\n" +
		"cat > \"" + filepath.Join(dir, "stdin") + "\"\n" +
		body + "\n"

	require.NoError(t, os.WriteFile(script, []byte(content), 0o700))

	return m.Path(script), dir
}

func TestLocalEngineAdapter_Invoke_Success(t *testing.T) {
	engine, dir := writeEngineScript(t, `echo '{"results":[{"projectName":"infra","targetFile":"main.tf","issues":[{"id":"R1","title":"Open bucket","severity":"high"}]}]}'`)

	adapter := NewLocalEngineAdapter()
	out, err := adapter.Invoke(context.Background(), EngineRequest{
		EnginePath:  engine,
		BundlePath:  "/cache/rules-bundle_v1.tar.gz",
		TargetPath:  "./infra",
		OrgSettings: m.OrgSettings{OrgName: "acme"},
		Args:        []string{"--severity-threshold=high"},
	})
	require.NoError(t, err)
	require.Len(t, out.Results, 1)
	assert.Equal(t, "infra", out.Results[0].ProjectName)
	require.Len(t, out.Results[0].Issues, 1)
	assert.Equal(t, m.SeverityHigh, out.Results[0].Issues[0].Severity)

	args, err := os.ReadFile(filepath.Join(dir, "args"))
	require.NoError(t, err)
	assert.Equal(t, "test --bundle /cache/rules-bundle_v1.tar.gz --format json --org-settings - --severity-threshold=high ./infra", strings.TrimSpace(string(args)))

	stdin, err := os.ReadFile(filepath.Join(dir, "stdin"))
	require.NoError(t, err)
	assert.Contains(t, string(stdin), `"orgName":"acme"`)
}

func TestLocalEngineAdapter_Invoke_IssuesExitCode(t *testing.T) {
	engine, _ := writeEngineScript(t, `echo '{"results":[]}'; exit 1`)

	out, err := NewLocalEngineAdapter().Invoke(context.Background(), EngineRequest{EnginePath: engine, TargetPath: "x"})
	require.NoError(t, err)
	assert.Empty(t, out.Results)
}

func TestLocalEngineAdapter_Invoke_AbnormalExit(t *testing.T) {
	engine, _ := writeEngineScript(t, `echo 'panic: rule bundle corrupted' >&2; exit 2`)

	_, err := NewLocalEngineAdapter().Invoke(context.Background(), EngineRequest{EnginePath: engine, TargetPath: "x"})
	require.Error(t, err)

	var engineErr *EngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, 2, engineErr.ExitCode)
	assert.Contains(t, engineErr.Error(), "panic: rule bundle corrupted")
}

func TestLocalEngineAdapter_Invoke_MissingExecutable(t *testing.T) {
	_, err := NewLocalEngineAdapter().Invoke(context.Background(), EngineRequest{
		EnginePath: m.Path(filepath.Join(t.TempDir(), "missing")),
		TargetPath: "x",
	})

	var engineErr *EngineError
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, -1, engineErr.ExitCode)
}

func TestLocalEngineAdapter_Invoke_InvalidOutput(t *testing.T) {
	engine, _ := writeEngineScript(t, `echo 'not json'`)

	_, err := NewLocalEngineAdapter().Invoke(context.Background(), EngineRequest{EnginePath: engine, TargetPath: "x"})

	var outputErr *OutputError
	require.ErrorAs(t, err, &outputErr)
	assert.Contains(t, outputErr.Output, "not json")
}

func TestNewLocalEngineAdapterWithTimeout(t *testing.T) {
	assert.Equal(t, DefaultEngineTimeout, NewLocalEngineAdapterWithTimeout(0).timeout)
	assert.Equal(t, DefaultEngineTimeout/2, NewLocalEngineAdapterWithTimeout(DefaultEngineTimeout/2).timeout)
}
