package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	m "iacscan.dev/pkg/iacscan/internal/model"
)

// cacheCmd represents the cache command.
var cacheCmd = newCacheCmd()

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clean the local artifact cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newCachePathCmd(), newCacheCleanCmd())

	return cmd
}

func newCachePathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the artifact cache directory",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(viper.GetString(cacheDirKey))
		},
	}
}

func newCacheCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove every cached policy engine and rules bundle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := workflow.CleanCache(cmd.Context(), m.Path(viper.GetString(cacheDirKey)))
			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(cacheCmd)
}
