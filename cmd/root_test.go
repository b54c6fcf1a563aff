package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"iacscan.dev/pkg/iacscan/internal/adapter"
	adaptermocks "iacscan.dev/pkg/iacscan/internal/adapter/mocks"
	"iacscan.dev/pkg/iacscan/internal/controller"
	"iacscan.dev/pkg/iacscan/internal/domain"
	domainmocks "iacscan.dev/pkg/iacscan/internal/domain/mocks"
	m "iacscan.dev/pkg/iacscan/internal/model"
)

// useTestLog sends log output of the command under test to a temp file.
func useTestLog(t *testing.T) {
	t.Helper()

	viper.Set(logFilenameKey, filepath.Join(t.TempDir(), "iacscan.log"))
	t.Cleanup(func() { viper.Set(logFilenameKey, defaultLogFilename) })
}

// useMockWorkflow swaps the package workflow for a mock for the duration of the test.
func useMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()
	useTestLog(t)

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

func TestParsePaths(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []m.Path
	}{
		{"empty defaults to current dir", []string{}, []m.Path{"."}},
		{"single", []string{"./infra"}, []m.Path{m.Path("./infra")}},
		{
			"multiple",
			[]string{"./network", "./database", "./modules/vpc"},
			[]m.Path{m.Path("./network"), m.Path("./database"), m.Path("./modules/vpc")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePaths(tt.args)
			require.Len(t, got, len(tt.want))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "iacscan", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)

	for _, name := range []string{outputFlagName, verboseFlagName, uiFlagName, cacheDirFlagName} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_HelpOutput(t *testing.T) {
	useMockWorkflow(t)

	cmd := newRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "Paths are scanned one after another")
}

func TestInit(t *testing.T) {
	assert.NotNil(t, fsAdapter)
	assert.NotNil(t, reportStore)
	assert.NotNil(t, engineAdapter)

	names := make([]string, 0, len(rootCmd.Commands()))
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.Subset(t, names, []string{"test", "view", "cache", "init", "version"})
}

func TestBuildWorkflow(t *testing.T) {
	t.Run("offline without a repository", func(t *testing.T) {
		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})

		wf, err := buildWorkflow(cmd)
		require.NoError(t, err)
		assert.NotNil(t, wf)
		assert.NotNil(t, ui)
	})

	t.Run("rejects a malformed repository", func(t *testing.T) {
		viper.Set(artifactsRepositoryKey, "not-a-repository")
		t.Cleanup(func() { viper.Set(artifactsRepositoryKey, "") })

		_, err := buildWorkflow(newRootCmd())
		require.Error(t, err)
	})
}

func TestExecute_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		agg  m.ScanAggregate
		err  error
		want int
	}{
		{name: "clean", agg: m.ScanAggregate{Results: []m.TestResult{{Path: "."}}}, want: domain.ExitClean},
		{name: "issues found", agg: m.ScanAggregate{Results: []m.TestResult{{Path: ".", Issues: []m.Issue{{ID: "IAC-1"}}}}}, want: domain.ExitIssuesFound},
		{name: "partial failure", agg: m.ScanAggregate{Failures: []m.Failure{{Path: ".", FailureReason: "boom"}}}, want: domain.ExitPartialFailure},
		{name: "fatal", err: domain.ErrArtifactNotFound, want: domain.ExitFatal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := useMockWorkflow(t)
			mockWorkflow.EXPECT().Test(mock.Anything, mock.Anything).Return(tt.agg, tt.err).Once()

			originalRootCmd := rootCmd
			defer func() { rootCmd = originalRootCmd }()

			rootCmd = newRootCmd()
			rootCmd.AddCommand(newTestCmd())
			rootCmd.SetOut(&bytes.Buffer{})
			rootCmd.SetErr(&bytes.Buffer{})
			rootCmd.SetArgs([]string{"test"})

			assert.Equal(t, tt.want, execute())
		})
	}
}

func TestExecuteContext_InterruptReleasesCache(t *testing.T) {
	useTestLog(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resolver := domainmocks.NewMockArtifactResolver(t)
	resolver.EXPECT().Resolve(mock.Anything, mock.Anything).Return(m.Path("/cache/artifact"), nil).Twice()
	resolver.EXPECT().Verify(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	resolver.EXPECT().Release(mock.Anything).Return(nil).Once()

	engine := adaptermocks.NewMockEngineAdapter(t)
	engine.EXPECT().Invoke(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, adapter.EngineRequest) (m.EngineOutput, error) {
			cancel()
			return m.EngineOutput{Results: []m.EngineResult{{ProjectName: "network"}}}, nil
		}).Once()

	uiCmd := &cobra.Command{}
	uiCmd.SetOut(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = domain.NewWorkflow(fsAdapter, reportStore, controller.NewSimpleUI(uiCmd), domain.NewScanner(fsAdapter, resolver, engine))
	t.Cleanup(func() { workflow = originalWorkflow })

	originalRootCmd := rootCmd
	defer func() { rootCmd = originalRootCmd }()

	rootCmd = newRootCmd()
	rootCmd.AddCommand(newTestCmd())
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--output", t.TempDir(), "--ui", controller.UIModeSimple, "test", "network", "database"})

	assert.Equal(t, domain.ExitFatal, executeContext(ctx))
}

func TestExecute_WithError(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() {
		rootCmd = originalRootCmd
	}()

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("command failed")
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})

	rootCmd = mockCmd

	assert.Equal(t, domain.ExitFatal, execute())
}

func TestExecute_ProcessLevel_Success(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Println("success")
				return nil
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Success")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS=1")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "success")
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(os.Stderr, "error occurred")
				return fmt.Errorf("command failed")
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	require.Error(t, err)

	if exitErr, ok := err.(*exec.ExitError); ok {
		assert.Equal(t, domain.ExitFatal, exitErr.ExitCode())
	} else {
		assert.Fail(t, "expected exec.ExitError", "got %T", err)
	}

	assert.Contains(t, string(output), "error occurred")
}
