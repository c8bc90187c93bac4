package git

import (
	"context"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/xvierd/gitline/internal/ports"
	"go.uber.org/zap"
)

// Describer reads the nearest reachable tag by shelling out to the git
// binary. Tag lookup is best-effort enrichment: every failure mode, from a
// missing binary to a repository without tags, yields an empty string.
type Describer struct {
	logger *zap.Logger
}

// NewDescriber creates a tag reader backed by `git describe`.
func NewDescriber(logger *zap.Logger) *Describer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Describer{logger: logger}
}

// Ensure Describer implements ports.TagReader.
var _ ports.TagReader = (*Describer)(nil)

// NearestTag runs `git describe --tags --abbrev=0` in dir and returns the
// trimmed output, or empty on any failure.
func (d *Describer) NearestTag(ctx context.Context, dir string) string {
	cmd := exec.CommandContext(ctx, "git", "describe", "--tags", "--abbrev=0")
	cmd.Dir = dir

	out, err := cmd.Output()
	if err != nil {
		d.logger.Debug("tag lookup failed", zap.String("dir", dir), zap.Error(err))
		return ""
	}
	if !utf8.Valid(out) {
		d.logger.Debug("tag lookup produced invalid utf-8", zap.String("dir", dir))
		return ""
	}

	return strings.TrimSpace(string(out))
}
