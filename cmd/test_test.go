package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"iacscan.dev/pkg/iacscan/internal/adapter"
	"iacscan.dev/pkg/iacscan/internal/domain"
	m "iacscan.dev/pkg/iacscan/internal/model"
)

func newTestRootCmd() (*bytes.Buffer, func(args ...string) error) {
	cmd := newRootCmd()
	cmd.AddCommand(newTestCmd())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	return out, func(args ...string) error {
		cmd.SetArgs(args)
		return cmd.Execute()
	}
}

func TestTestCmd_PassesFlags(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.EXPECT().Test(mock.Anything, mock.MatchedBy(func(args domain.TestArgs) bool {
		scan := args.Scan
		threshold, _ := scan.Options.Flag(m.FlagSeverityThreshold)
		varFile, _ := scan.Options.Flag(m.FlagVarFile)

		return len(scan.Paths) == 2 &&
			scan.Paths[0] == m.Path("./network") &&
			scan.Paths[1] == m.Path("./database") &&
			scan.ProjectRoot == m.Path(".") &&
			scan.OrgID == "org-123" &&
			threshold == "high" &&
			varFile == "dev.tfvars" &&
			scan.Options.RemoteRepoURL == "git@example.com:acme/infra.git" &&
			scan.Cache.Dir == m.Path("/tmp/iacscan-cache") &&
			scan.Cache.PolicyEnginePath == m.Path("/opt/engine") &&
			scan.Cache.DefaultVersions.PolicyEngine == defaultPolicyEngineVersion &&
			args.Reports == m.Path("reports") &&
			args.ReportFormat == adapter.ReportFormatYAML
	})).Return(m.ScanAggregate{}, nil).Once()

	_, run := newTestRootCmd()

	err := run(
		"--output", "reports",
		"--cache-dir", "/tmp/iacscan-cache",
		"test",
		"--project-root", ".",
		"--org", "org-123",
		"--severity-threshold", "high",
		"--var-file", "dev.tfvars",
		"--remote-repo-url", "git@example.com:acme/infra.git",
		"--policy-engine-path", "/opt/engine",
		"--report-format", "yaml",
		"./network", "./database",
	)
	require.NoError(t, err)
}

func TestTestCmd_DefaultsToCurrentDir(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.EXPECT().Test(mock.Anything, mock.MatchedBy(func(args domain.TestArgs) bool {
		return len(args.Scan.Paths) == 1 &&
			args.Scan.Paths[0] == m.Path(".") &&
			args.Scan.ProjectRoot == "" &&
			len(args.Scan.Options.Flags) == 0 &&
			args.Reports == m.Path(defaultReportsDir) &&
			args.ReportFormat == adapter.ReportFormatJSON
	})).Return(m.ScanAggregate{}, nil).Once()

	_, run := newTestRootCmd()

	require.NoError(t, run("test"))
	assert.Equal(t, domain.ExitClean, exitCode)
}

func TestTestCmd_SetsExitCode(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.EXPECT().Test(mock.Anything, mock.Anything).Return(m.ScanAggregate{
		Results:  []m.TestResult{{Path: "a"}},
		Failures: []m.Failure{{Path: "b", FailureReason: "boom"}},
	}, nil).Once()

	_, run := newTestRootCmd()

	require.NoError(t, run("test", "a", "b"))
	assert.Equal(t, domain.ExitPartialFailure, exitCode)
}

func TestTestCmd_WorkflowError(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	mockWorkflow.EXPECT().Test(mock.Anything, mock.Anything).Return(m.ScanAggregate{}, domain.ErrArtifactNotFound).Once()

	_, run := newTestRootCmd()

	err := run("test")
	require.ErrorIs(t, err, domain.ErrArtifactNotFound)
}

func TestTestCmd_InvalidReportFormat(t *testing.T) {
	useMockWorkflow(t)

	_, run := newTestRootCmd()

	err := run("test", "--report-format", "xml")
	require.Error(t, err)
}

func TestNewTestCmd(t *testing.T) {
	cmd := newTestCmd()

	assert.Equal(t, "test [paths...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, testLongDescription, cmd.Long)

	for _, name := range []string{
		projectRootFlagName, projectNameFlagName, severityThresholdFlagName, varFileFlagName,
		scanFlagName, remoteRepoURLFlagName, targetNameFlagName, orgFlagName,
		policyEnginePathFlagName, rulesBundlePathFlagName, reportFormatFlagName,
	} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestTestCmdFlags_Options(t *testing.T) {
	opts := testCmdFlags{
		projectName: "infra",
		scan:        "resource-changes",
		targetName:  "prod",
	}.options()

	assert.Equal(t, "infra", opts.RequestedProjectName)
	assert.Empty(t, opts.ProjectName)
	assert.Equal(t, map[string]string{m.FlagScan: "resource-changes", m.FlagTargetName: "prod"}, opts.Flags)
	assert.Equal(t, []string{"--scan=resource-changes", "--target-name=prod"}, opts.EngineArgs())
}
