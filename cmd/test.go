package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"iacscan.dev/pkg/iacscan/internal/adapter"
	"iacscan.dev/pkg/iacscan/internal/domain"
	m "iacscan.dev/pkg/iacscan/internal/model"
)

const (
	projectRootFlagName       = "project-root"
	projectNameFlagName       = "project-name"
	severityThresholdFlagName = m.FlagSeverityThreshold
	varFileFlagName           = m.FlagVarFile
	scanFlagName              = m.FlagScan
	remoteRepoURLFlagName     = "remote-repo-url"
	targetNameFlagName        = m.FlagTargetName
)

type testCmdFlags struct {
	projectRoot       string
	projectName       string
	severityThreshold string
	varFile           string
	scan              string
	remoteRepoURL     string
	targetName        string
	orgID             string
	enginePath        string
	rulesPath         string
	reportFormat      string
}

var testFlags testCmdFlags

// testCmd represents the test command.
var testCmd = newTestCmd()

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test [paths...]",
		Short: "Scan infrastructure-as-code files for policy issues",
		Long:  testLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadOrgSettings()
			if err != nil {
				return err
			}

			format, err := adapter.ParseReportFormat(viper.GetString(reportFormatKey))
			if err != nil {
				return err
			}

			agg, err := workflow.Test(cmd.Context(), domain.TestArgs{
				Scan: domain.ScanArgs{
					OrgSettings: settings,
					Options:     testFlags.options(),
					Paths:       parsePaths(args),
					OrgID:       viper.GetString(orgIDKey),
					ProjectRoot: m.Path(testFlags.projectRoot),
					Cache: domain.CacheArgs{
						Dir:              m.Path(viper.GetString(cacheDirKey)),
						PolicyEnginePath: m.Path(viper.GetString(enginePathKey)),
						RulesBundlePath:  m.Path(viper.GetString(rulesPathKey)),
						DefaultVersions: m.ArtifactVersions{
							PolicyEngine: viper.GetString(policyEngineVersionKey),
							RulesBundle:  viper.GetString(rulesBundleVersionKey),
						},
					},
				},
				Reports:      m.Path(viper.GetString(outputFlagName)),
				ReportFormat: format,
			})
			if err != nil {
				return fmt.Errorf("test: %w", err)
			}

			if err := cmd.Context().Err(); err != nil {
				return fmt.Errorf("test: interrupted after %d results: %w", len(agg.Results), err)
			}

			exitCode = domain.ExitCode(agg)

			return nil
		},
	}

	configureTestFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func configureTestFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringVar(&testFlags.projectRoot, projectRootFlagName, "", "report every path as part of the project rooted at this directory")
	flags.StringVar(&testFlags.projectName, projectNameFlagName, "", "project name to report results under (single path only)")
	flags.StringVar(&testFlags.severityThreshold, severityThresholdFlagName, "", "only report issues at or above this severity: low, medium, high or critical")
	flags.StringVar(&testFlags.varFile, varFileFlagName, "", "terraform variable definitions file passed to the policy engine")
	flags.StringVar(&testFlags.scan, scanFlagName, "", "plan scan mode: planned-values or resource-changes")
	flags.StringVar(&testFlags.remoteRepoURL, remoteRepoURLFlagName, "", "remote repository URL attached to results")
	flags.StringVar(&testFlags.targetName, targetNameFlagName, "", "target name passed to the policy engine")

	flags.StringVar(&testFlags.orgID, orgFlagName, viper.GetString(orgIDKey), "organization ID results are reported under")
	bindFlagToConfig(flags.Lookup(orgFlagName), orgIDKey)

	flags.StringVar(&testFlags.enginePath, policyEnginePathFlagName, viper.GetString(enginePathKey), "use this policy engine executable instead of the cached one")
	bindFlagToConfig(flags.Lookup(policyEnginePathFlagName), enginePathKey)

	flags.StringVar(&testFlags.rulesPath, rulesBundlePathFlagName, viper.GetString(rulesPathKey), "use this rules bundle instead of the cached one")
	bindFlagToConfig(flags.Lookup(rulesBundlePathFlagName), rulesPathKey)

	flags.StringVar(&testFlags.reportFormat, reportFormatFlagName, viper.GetString(reportFormatKey), "saved report format: json or yaml")
	bindFlagToConfig(flags.Lookup(reportFormatFlagName), reportFormatKey)
}

// options converts the scan flags into engine options. Only flags the user
// set are forwarded to the engine.
func (f testCmdFlags) options() m.Options {
	opts := m.Options{
		RequestedProjectName: f.projectName,
		RemoteRepoURL:        f.remoteRepoURL,
	}

	passthrough := map[string]string{
		m.FlagSeverityThreshold: f.severityThreshold,
		m.FlagVarFile:           f.varFile,
		m.FlagScan:              f.scan,
		m.FlagTargetName:        f.targetName,
	}

	for name, value := range passthrough {
		if value != "" {
			opts.SetFlag(name, value)
		}
	}

	return opts
}
