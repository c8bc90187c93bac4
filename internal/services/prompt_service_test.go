package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvierd/gitline/internal/domain"
)

// stubSource is a StatusSource with a canned answer.
type stubSource struct {
	snap *domain.Snapshot
	err  error

	calls int
}

func (s *stubSource) Collect(ctx context.Context, path string) (*domain.Snapshot, error) {
	s.calls++
	return s.snap, s.err
}

func TestPromptService_Line(t *testing.T) {
	source := &stubSource{snap: &domain.Snapshot{Branch: "main", WtNew: 1}}
	svc := NewPromptService(source, 1_000_000_000, nil)

	line := svc.Line(context.Background(), t.TempDir())

	assert.Equal(t, " main ?1", line)
	assert.Equal(t, 1, source.calls)
}

func TestPromptService_Line_EmptyDirUsesWorkingDirectory(t *testing.T) {
	source := &stubSource{snap: &domain.Snapshot{Branch: "main"}}
	svc := NewPromptService(source, 1_000_000_000, nil)

	line := svc.Line(context.Background(), "")

	assert.Equal(t, " main", line)
}

func TestPromptService_Line_MissingDirectory(t *testing.T) {
	source := &stubSource{snap: &domain.Snapshot{Branch: "main"}}
	svc := NewPromptService(source, 1_000_000_000, nil)

	line := svc.Line(context.Background(), filepath.Join(t.TempDir(), "nope"))

	assert.Empty(t, line)
	assert.Zero(t, source.calls, "guard must short-circuit before collection")
}

func TestPromptService_Line_PathIsAFile(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	source := &stubSource{snap: &domain.Snapshot{Branch: "main"}}
	svc := NewPromptService(source, 1_000_000_000, nil)

	assert.Empty(t, svc.Line(context.Background(), file))
	assert.Zero(t, source.calls)
}

func TestPromptService_Line_CollectionFailureIsSilent(t *testing.T) {
	source := &stubSource{err: errors.New("not a repository")}
	svc := NewPromptService(source, 1_000_000_000, nil)

	assert.Empty(t, svc.Line(context.Background(), t.TempDir()))
}

func TestPromptService_Line_SizeGuard(t *testing.T) {
	tmpDir := t.TempDir()
	gitDir := filepath.Join(tmpDir, ".git")
	require.NoError(t, os.MkdirAll(filepath.Join(gitDir, "objects"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(gitDir, "objects", "pack"), []byte("0123456789"), 0644))

	source := &stubSource{snap: &domain.Snapshot{Branch: "main"}}

	// Limit below the metadata size: nothing renders, nothing is collected.
	svc := NewPromptService(source, 5, nil)
	assert.Empty(t, svc.Line(context.Background(), tmpDir))
	assert.Zero(t, source.calls)

	// Limit above it: the pipeline proceeds.
	svc = NewPromptService(source, 1_000_000, nil)
	assert.Equal(t, " main", svc.Line(context.Background(), tmpDir))
	assert.Equal(t, 1, source.calls)
}

func TestPromptService_Line_GitFileDoesNotTriggerGuard(t *testing.T) {
	// Worktrees carry a .git file instead of a directory; the size guard
	// only applies to directories.
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".git"), []byte("gitdir: elsewhere"), 0644))

	source := &stubSource{snap: &domain.Snapshot{Branch: "main"}}
	svc := NewPromptService(source, 1, nil)

	assert.Equal(t, " main", svc.Line(context.Background(), tmpDir))
}

func TestMetadataSize(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "a"), []byte("12345"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "sub", "b"), []byte("123"), 0644))

	assert.Equal(t, int64(8), metadataSize(tmpDir))
}

func TestMetadataSize_MissingRoot(t *testing.T) {
	assert.Zero(t, metadataSize(filepath.Join(t.TempDir(), "nope")))
}
