package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/gitline/internal/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the prompt command over MCP stdio",
	Long: `Start the Model Context Protocol (MCP) server so a host shell can request
prompt segments over stdio. The server registers a single tool, git_prompt,
taking an optional path argument. Stdout belongs to the protocol, so all
diagnostics go to the debug log.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		server := mcp.NewServer(promptService, Version, logger)
		if err := server.Start(ctx); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}

		return nil
	},
}
