package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// promptCmd represents the prompt command
var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the status segment for the current directory",
	Long: `Print the one-line git status segment for the process working directory.
The output has no trailing newline so it can be spliced directly into a
prompt string. When the directory is not a git repository the output is
empty and the exit code is still zero.`,
	RunE: runPrompt,
}

// runPrompt renders and prints the segment. It deliberately never returns an
// error: a broken repository must not break the shell prompt.
func runPrompt(cmd *cobra.Command, args []string) error {
	line := promptService.Line(context.Background(), "")
	fmt.Fprint(cmd.OutOrStdout(), line)
	return nil
}
