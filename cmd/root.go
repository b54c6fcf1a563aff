// Package cmd provides the root command and CLI setup for iacscan.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"iacscan.dev/pkg/iacscan/internal/adapter"
	"iacscan.dev/pkg/iacscan/internal/controller"
	"iacscan.dev/pkg/iacscan/internal/domain"
	m "iacscan.dev/pkg/iacscan/internal/model"
)

var fsAdapter adapter.CacheFSAdapter
var reportStore adapter.ReportStore
var engineAdapter adapter.EngineAdapter
var ui controller.UI

// workflow is built on first use so that it picks up flags and config.
var workflow domain.Workflow

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

var verboseFlag bool

var uiModeFlag string

var cacheDirFlag string

// exitCode is the process exit code of the last executed command.
var exitCode = domain.ExitClean

func init() {
	configureRootFlags(rootCmd)

	fsAdapter = adapter.NewLocalCacheFSAdapter()
	reportStore = adapter.NewReportStore(fsAdapter)
	engineAdapter = adapter.NewLocalEngineAdapter()
}

const pathsHelp = `Paths are scanned one after another in the order given:
  iacscan test                       scan the current directory
  iacscan test ./network ./database  scan two directories
  iacscan test --project-root . ./modules/vpc
                                     report paths as a single project`

const rootLongDescription = `iacscan evaluates infrastructure-as-code files against a policy rules
bundle using a local policy engine. The engine and the bundle are cached
locally and downloaded on demand.

` + pathsHelp

const testLongDescription = `Scan infrastructure-as-code paths for policy issues.

Exit codes: 0 no issues, 1 issues found, 2 some paths failed, 3 the scan
could not run.

` + pathsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "iacscan",
		Short: "Infrastructure-as-code policy scanner",
		Long:  rootLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configureLogger("", viper.GetBool(verboseFlagName))

			if workflow != nil {
				return nil
			}

			wf, err := buildWorkflow(cmd)
			if err != nil {
				return err
			}

			workflow = wf

			return nil
		},
		SilenceUsage: true,
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for scan reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), verboseFlagName)

	cmd.PersistentFlags().StringVar(&uiModeFlag, uiFlagName, viper.GetString(uiModeKey), "output mode: auto, simple or tui")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(uiFlagName), uiModeKey)

	cmd.PersistentFlags().StringVar(&cacheDirFlag, cacheDirFlagName, viper.GetString(cacheDirKey), "directory holding cached artifacts")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(cacheDirFlagName), cacheDirKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// buildWorkflow wires the adapters into a workflow for the executing command.
func buildWorkflow(cmd *cobra.Command) (domain.Workflow, error) {
	var downloader adapter.ArtifactDownloader

	if repository := viper.GetString(artifactsRepositoryKey); repository != "" {
		gh, err := adapter.NewGitHubReleaseDownloader(cmd.Context(), repository, viper.GetString(githubTokenKey))
		if err != nil {
			return nil, fmt.Errorf("configure %s: %w", artifactsRepositoryKey, err)
		}

		downloader = gh
	}

	resolver := domain.NewArtifactResolver(fsAdapter, downloader)
	scanner := domain.NewScanner(fsAdapter, resolver, engineAdapter)
	ui = controller.NewUI(cmd, viper.GetString(uiModeKey))

	return domain.NewWorkflow(fsAdapter, reportStore, ui, scanner), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if code := execute(); code != domain.ExitClean {
		os.Exit(code)
	}
}

func execute() int {
	ctx, stop := withSignalContext(context.Background())
	defer stop()

	return executeContext(ctx)
}

// executeContext runs the root command. Cancelling ctx stops the scan after
// the current path and still releases the artifact cache.
func executeContext(ctx context.Context) int {
	exitCode = domain.ExitClean

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return domain.ExitFatal
	}

	return exitCode
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
