package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long:  `Print the configuration gitline is running with, after defaults and the config file (~/.gitline/config.toml) have been applied.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Current configuration:")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "    Max .git size before skipping:  %d bytes\n", appConfig.Guard.MaxGitDirBytes)
		fmt.Fprintf(out, "    Tag lookup (git describe):      %v\n", appConfig.Tags.Enabled)
		fmt.Fprintf(out, "    Debug logging:                  %v\n", appConfig.Debug.Enabled)
		if appConfig.Debug.File != "" {
			fmt.Fprintf(out, "    Debug log file:                 %s\n", appConfig.Debug.File)
		}
		fmt.Fprintln(out)

		return nil
	},
}
