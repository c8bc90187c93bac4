// Package mcp exposes the prompt command to host shells over the Model
// Context Protocol. The server speaks stdio and registers a single tool;
// the tool table is built explicitly on the server instance at startup, so
// there is no process-wide command registry.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/xvierd/gitline/internal/ports"
	"go.uber.org/zap"
)

// toolName is the command a host invokes to get the prompt segment.
const toolName = "git_prompt"

// Server implements the stdio plugin transport using mark3labs/mcp-go.
type Server struct {
	server   *server.MCPServer
	provider ports.PromptProvider
	logger   *zap.Logger
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewServer creates the transport around a prompt provider.
func NewServer(provider ports.PromptProvider, version string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		provider: provider,
		logger:   logger,
	}

	s.server = server.NewMCPServer(
		"gitline",
		version,
		server.WithLogging(),
	)
	s.registerTools()

	return s
}

// registerTools registers the command table on the server instance.
func (s *Server) registerTools() {
	tool := mcp.NewTool(
		toolName,
		mcp.WithDescription("One line git status output to show in your shell prompt"),
		mcp.WithString(
			"path",
			mcp.Description("Directory to summarize (defaults to the server's working directory)"),
		),
	)
	s.server.AddTool(tool, s.handleGitPrompt)
}

// handleGitPrompt handles the git_prompt tool. Ordinary repository-state
// conditions never surface as tool errors: the reply is simply the empty
// string the host would render anyway.
func (s *Server) handleGitPrompt(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := request.GetString("path", "")
	line := s.provider.Line(ctx, path)
	s.logger.Debug("served prompt request",
		zap.String("path", path), zap.String("line", line))
	return mcp.NewToolResultText(line), nil
}

// Start begins serving requests via stdio.
func (s *Server) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)
	return server.ServeStdio(s.server)
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// IsRunning returns true if the server is active.
func (s *Server) IsRunning() bool {
	if s.ctx == nil {
		return false
	}
	return s.ctx.Err() == nil
}

// Ensure Server implements ports.PluginServer.
var _ ports.PluginServer = (*Server)(nil)
