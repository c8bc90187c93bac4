// Package cmd provides the CLI commands for gitline.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	gitadapter "github.com/xvierd/gitline/internal/adapters/git"
	"github.com/xvierd/gitline/internal/config"
	"github.com/xvierd/gitline/internal/logging"
	"github.com/xvierd/gitline/internal/ports"
	"github.com/xvierd/gitline/internal/services"
	"go.uber.org/zap"
)

var (
	// Version info (set at build time via ldflags)
	Version = "dev"

	// Global flags
	debugMode bool

	// Global dependencies
	appConfig     *config.Config
	logger        *zap.Logger
	promptService ports.PromptProvider
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gitline",
	Short: "One line git status for your shell prompt",
	Long: `gitline summarizes the git state of the current directory into a single
compact line for embedding in an interactive shell prompt.

Run "gitline" with no arguments to print the segment for the current
directory. Directories that are not repositories print nothing.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	RunE: runPrompt,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Write debug logs to a file (never to the terminal)")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("gitline\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(configCmd)
}

// initializeServices sets up the prompt pipeline and its adapters.
func initializeServices() error {
	var err error
	appConfig, err = config.Load()
	if err != nil {
		// An unreadable config never blocks the prompt
		appConfig = config.DefaultConfig()
	}
	if debugMode {
		appConfig.Debug.Enabled = true
	}

	logger, err = logging.New(appConfig.Debug)
	if err != nil {
		logger = zap.NewNop()
	}

	var tags ports.TagReader
	if appConfig.Tags.Enabled {
		tags = gitadapter.NewDescriber(logger)
	}

	collector := gitadapter.NewCollector(tags, logger)
	promptService = services.NewPromptService(collector, appConfig.Guard.MaxGitDirBytes, logger)

	return nil
}
