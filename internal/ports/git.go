package ports

import (
	"context"

	"github.com/xvierd/gitline/internal/domain"
)

// StatusSource produces a status snapshot for a repository at a path.
// This is a driven port (implemented by adapters).
type StatusSource interface {
	// Collect opens the repository at path and summarizes its state. Any
	// error means there is nothing to show for this directory; callers
	// treat it as an ordinary outcome, not a fault.
	Collect(ctx context.Context, path string) (*domain.Snapshot, error)
}

// TagReader looks up the nearest tag reachable from HEAD.
// This is a driven port (implemented by adapters).
type TagReader interface {
	// NearestTag returns the tag name, or empty when there is no tag or the
	// lookup fails for any reason.
	NearestTag(ctx context.Context, dir string) string
}
