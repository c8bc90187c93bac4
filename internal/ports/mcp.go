package ports

import "context"

// PromptProvider renders the status line for a directory.
// This is a driven port (implemented by the services layer).
type PromptProvider interface {
	// Line returns the prompt segment for dir, or the process working
	// directory when dir is empty. It never fails: every not-applicable or
	// error condition yields the empty string.
	Line(ctx context.Context, dir string) string
}

// PluginServer is the host-facing transport that exposes the prompt
// command to an interactive shell. This is a driving port (called by the
// application layer).
type PluginServer interface {
	// Start begins serving requests and blocks until the host disconnects.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the server.
	Stop() error

	// IsRunning returns true if the server is active.
	IsRunning() bool
}
