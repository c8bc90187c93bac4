// Package services implements the application layer (use cases)
// following hexagonal architecture principles.
package services

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/xvierd/gitline/internal/ports"
	"github.com/xvierd/gitline/internal/render"
	"go.uber.org/zap"
)

// gitDirName is the metadata directory checked by the size guard.
const gitDirName = ".git"

// PromptService produces the prompt segment for a directory. It is stateless
// between calls: every invocation runs one guard-collect-render pass and
// shares nothing with the next.
type PromptService struct {
	source         ports.StatusSource
	maxGitDirBytes int64
	logger         *zap.Logger
}

// NewPromptService creates a prompt service. maxGitDirBytes bounds the total
// size of regular files under .git before the service gives up on a
// directory.
func NewPromptService(source ports.StatusSource, maxGitDirBytes int64, logger *zap.Logger) *PromptService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PromptService{
		source:         source,
		maxGitDirBytes: maxGitDirBytes,
		logger:         logger,
	}
}

// Ensure PromptService implements ports.PromptProvider.
var _ ports.PromptProvider = (*PromptService)(nil)

// Line returns the status segment for dir, or for the process working
// directory when dir is empty. It never fails visibly: a directory that is
// not a repository, cannot be read, or trips a guard yields the empty
// string. A shell prompt is no place for error text.
func (s *PromptService) Line(ctx context.Context, dir string) string {
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			s.logger.Debug("failed to get working directory", zap.Error(err))
			return ""
		}
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return ""
	}

	gitDir := filepath.Join(dir, gitDirName)
	if meta, err := os.Stat(gitDir); err == nil && meta.IsDir() {
		if size := metadataSize(gitDir); size > s.maxGitDirBytes {
			s.logger.Debug("git metadata over size guard",
				zap.String("dir", gitDir), zap.Int64("bytes", size))
			return ""
		}
	}

	snap, err := s.source.Collect(ctx, dir)
	if err != nil {
		s.logger.Debug("status collection failed",
			zap.String("dir", dir), zap.Error(err))
		return ""
	}

	return render.Render(snap)
}

// metadataSize sums the sizes of the regular files under root. Entries that
// cannot be read are skipped rather than failing the walk.
func metadataSize(root string) int64 {
	var total int64
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		total += info.Size()
		return nil
	})
	return total
}
