// Package git collects repository status using go-git.
package git

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/xvierd/gitline/internal/domain"
	"github.com/xvierd/gitline/internal/ports"
	"go.uber.org/zap"
)

const (
	// detachedLabel is what go-git reports as the short name of a HEAD that
	// points at a commit rather than a branch, and the identity of last
	// resort when nothing better resolves.
	detachedLabel = "HEAD"

	// unbornBranch is the identity shown for repositories that have no
	// commits yet (or are bare with an unresolvable HEAD).
	unbornBranch = "master"

	// shortHashLen is the number of hex characters shown for a detached
	// HEAD: the first 4 bytes of the commit id.
	shortHashLen = 8
)

// Collector implements the ports.StatusSource interface using go-git.
type Collector struct {
	tags   ports.TagReader
	logger *zap.Logger
}

// NewCollector creates a status collector. tags may be nil, in which case
// snapshots carry no tag.
func NewCollector(tags ports.TagReader, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{tags: tags, logger: logger}
}

// Ensure Collector implements ports.StatusSource.
var _ ports.StatusSource = (*Collector)(nil)

// Collect opens the repository at path and builds a fresh snapshot. An error
// means the directory has nothing to show: either it is not a repository or
// its status could not be enumerated. Partial data (tag, upstream) degrades
// silently instead.
func (c *Collector) Collect(ctx context.Context, path string) (*domain.Snapshot, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	snap := &domain.Snapshot{}
	c.resolveIdentity(repo, snap)

	if c.tags != nil {
		snap.Tag = c.tags.NearestTag(ctx, path)
	}

	if err := c.countChanges(repo, snap); err != nil {
		return nil, fmt.Errorf("failed to enumerate status: %w", err)
	}

	return snap, nil
}

// resolveIdentity fills in Branch, Remote, Ahead and Behind. It never fails:
// every resolution problem falls through to a defined default.
func (c *Collector) resolveIdentity(repo *git.Repository, snap *domain.Snapshot) {
	head, err := repo.Head()
	if err != nil {
		// An unborn HEAD (no commits yet) or a bare repository both show
		// the default branch name; anything else shows the sentinel.
		if errors.Is(err, plumbing.ErrReferenceNotFound) || isBare(repo) {
			snap.Branch = unbornBranch
		} else {
			snap.Branch = detachedLabel
		}
		return
	}

	name := head.Name().Short()
	if name == detachedLabel {
		// Detached: display a short commit hash, provided the commit is
		// actually readable.
		if _, err := repo.CommitObject(head.Hash()); err == nil {
			snap.Branch = head.Hash().String()[:shortHashLen]
		} else {
			snap.Branch = detachedLabel
		}
		return
	}

	snap.Branch = name
	c.resolveUpstream(repo, name, head.Hash(), snap)
}

// resolveUpstream looks up the configured upstream of branch and computes the
// commit divergence against it. Failures leave Remote empty and the counts at
// zero.
func (c *Collector) resolveUpstream(repo *git.Repository, branch string, local plumbing.Hash, snap *domain.Snapshot) {
	cfg, err := repo.Config()
	if err != nil {
		c.logger.Debug("failed to read repository config", zap.Error(err))
		return
	}

	b, ok := cfg.Branches[branch]
	if !ok || b.Remote == "" || b.Merge == "" {
		return
	}

	upName := plumbing.NewRemoteReferenceName(b.Remote, b.Merge.Short())
	if b.Remote == "." {
		// Local tracking branch: the merge ref is usable as-is.
		upName = b.Merge
	}

	upstream, err := repo.Reference(upName, true)
	if err != nil {
		c.logger.Debug("upstream reference not resolvable",
			zap.String("upstream", upName.String()), zap.Error(err))
		return
	}
	snap.Remote = upstream.Name().String()

	ahead, behind, err := aheadBehind(repo, local, upstream.Hash())
	if err != nil {
		c.logger.Debug("divergence computation failed",
			zap.String("upstream", snap.Remote), zap.Error(err))
		return
	}
	snap.Ahead = ahead
	snap.Behind = behind
}

// countChanges enumerates the working tree status and classifies each entry
// into exactly one counter. Bare repositories have no working tree and fail
// here.
func (c *Collector) countChanges(repo *git.Repository, snap *domain.Snapshot) error {
	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return fmt.Errorf("failed to get worktree status: %w", err)
	}

	for _, entry := range status {
		classify(entry, snap)
	}

	return nil
}

// classify maps one status entry onto one counter. The match is exact: an
// entry that is dirty on both the index and the working-tree side matches no
// single category and stays uncounted, mirroring the behavior this tool has
// always had. Conflicted entries are the one exception and count regardless
// of the other side.
//
// go-git performs no rename detection during status and reports neither
// typechange nor ignored entries, so IndexRenamed, WtRenamed, the typechange
// counters and Ignored stay zero with this backend.
func classify(entry *git.FileStatus, snap *domain.Snapshot) {
	if entry.Staging == git.UpdatedButUnmerged || entry.Worktree == git.UpdatedButUnmerged {
		snap.Conflicted++
		return
	}

	switch {
	case entry.Staging == git.Untracked && entry.Worktree == git.Untracked:
		snap.WtNew++
	case entry.Staging == git.Added && entry.Worktree == git.Unmodified:
		snap.IndexNew++
	case entry.Staging == git.Modified && entry.Worktree == git.Unmodified:
		snap.IndexModified++
	case entry.Staging == git.Deleted && entry.Worktree == git.Unmodified:
		snap.IndexDeleted++
	case entry.Staging == git.Renamed && entry.Worktree == git.Unmodified:
		snap.IndexRenamed++
	case entry.Staging == git.Unmodified && entry.Worktree == git.Modified:
		snap.WtModified++
	case entry.Staging == git.Unmodified && entry.Worktree == git.Deleted:
		snap.WtDeleted++
	case entry.Staging == git.Unmodified && entry.Worktree == git.Renamed:
		snap.WtRenamed++
	}
}

// isBare reports whether the repository has no working tree.
func isBare(repo *git.Repository) bool {
	cfg, err := repo.Config()
	if err != nil {
		return false
	}
	return cfg.Core.IsBare
}
