package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long: `Displays the iacscan build version, the Go version used to build it and the
policy engine and rules bundle versions scans download when the organization
does not pin them.`,
		Run: func(cmd *cobra.Command, _ []string) {
			version, goVersion := "unknown", "unknown"
			if info, ok := debug.ReadBuildInfo(); ok {
				goVersion = info.GoVersion

				if info.Main.Version != "" {
					version = info.Main.Version
				}
			}

			cmd.Println("iacscan version\t", version)
			cmd.Println("go version\t", goVersion)
			cmd.Println("policy engine\t", viper.GetString(policyEngineVersionKey))
			cmd.Println("rules bundle\t", viper.GetString(rulesBundleVersionKey))

			if repository := viper.GetString(artifactsRepositoryKey); repository != "" {
				cmd.Println("artifacts from\t", repository)
			}
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
