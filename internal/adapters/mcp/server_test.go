package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

// mockPromptProvider is a mock implementation of ports.PromptProvider for testing.
type mockPromptProvider struct {
	line     string
	lastPath string
	calls    int
}

func (m *mockPromptProvider) Line(ctx context.Context, dir string) string {
	m.lastPath = dir
	m.calls++
	return m.line
}

func TestNewServer(t *testing.T) {
	mock := &mockPromptProvider{}
	srv := NewServer(mock, "test", nil)

	if srv == nil {
		t.Fatal("NewServer() returned nil")
	}

	if srv.provider != mock {
		t.Error("NewServer() did not set prompt provider correctly")
	}

	if srv.server == nil {
		t.Error("NewServer() did not create MCP server")
	}

	if srv.logger == nil {
		t.Error("NewServer() did not install a fallback logger")
	}
}

func TestServer_IsRunning(t *testing.T) {
	mock := &mockPromptProvider{}
	srv := NewServer(mock, "test", nil)

	if srv.IsRunning() {
		t.Error("IsRunning() should return false before Start()")
	}
}

func TestServer_handleGitPrompt(t *testing.T) {
	mock := &mockPromptProvider{line: " main ?1 ↑2"}
	srv := NewServer(mock, "test", nil)
	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"path": "/tmp/repo",
			},
		},
	}

	result, err := srv.handleGitPrompt(context.Background(), request)
	if err != nil {
		t.Fatalf("handleGitPrompt() error = %v", err)
	}

	if result == nil {
		t.Fatal("handleGitPrompt() returned nil result")
	}

	if result.IsError {
		t.Error("handleGitPrompt() returned error result")
	}

	if len(result.Content) == 0 {
		t.Fatal("handleGitPrompt() returned empty content")
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("handleGitPrompt() content type = %T, want TextContent", result.Content[0])
	}

	if text.Text != " main ?1 ↑2" {
		t.Errorf("handleGitPrompt() text = %q, want %q", text.Text, " main ?1 ↑2")
	}

	if mock.lastPath != "/tmp/repo" {
		t.Errorf("handleGitPrompt() forwarded path = %q, want %q", mock.lastPath, "/tmp/repo")
	}
}

func TestServer_handleGitPrompt_NoPath(t *testing.T) {
	mock := &mockPromptProvider{line: " "}
	srv := NewServer(mock, "test", nil)
	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{},
		},
	}

	result, err := srv.handleGitPrompt(context.Background(), request)
	if err != nil {
		t.Fatalf("handleGitPrompt() error = %v", err)
	}

	if mock.lastPath != "" {
		t.Errorf("handleGitPrompt() path = %q, want empty default", mock.lastPath)
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("handleGitPrompt() content type = %T, want TextContent", result.Content[0])
	}

	// A blank segment is a normal reply, not a tool error.
	if text.Text != " " {
		t.Errorf("handleGitPrompt() text = %q, want single space", text.Text)
	}
}

func TestServer_Stop(t *testing.T) {
	mock := &mockPromptProvider{}
	srv := NewServer(mock, "test", nil)

	// Stop before Start should not panic
	err := srv.Stop()
	if err != nil {
		t.Errorf("Stop() error = %v", err)
	}
}
