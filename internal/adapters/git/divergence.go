package git

import (
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// aheadBehind computes how many commits local and upstream have that the
// other side does not, by walking each tip down to their merge base.
func aheadBehind(repo *git.Repository, local, upstream plumbing.Hash) (ahead, behind int, err error) {
	localCommit, err := repo.CommitObject(local)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read local tip: %w", err)
	}

	upstreamCommit, err := repo.CommitObject(upstream)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read upstream tip: %w", err)
	}

	bases, err := localCommit.MergeBase(upstreamCommit)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to find merge base: %w", err)
	}

	stop := make([]plumbing.Hash, 0, len(bases))
	for _, base := range bases {
		stop = append(stop, base.Hash)
	}

	ahead, err = countExclusive(localCommit, stop)
	if err != nil {
		return 0, 0, err
	}

	behind, err = countExclusive(upstreamCommit, stop)
	if err != nil {
		return 0, 0, err
	}

	return ahead, behind, nil
}

// countExclusive counts the commits reachable from tip without crossing any
// of the stop hashes. With the merge bases as stops this is the number of
// commits unique to tip's side of the divergence.
func countExclusive(tip *object.Commit, stop []plumbing.Hash) (int, error) {
	count := 0
	iter := object.NewCommitPreorderIter(tip, nil, stop)
	err := iter.ForEach(func(*object.Commit) error {
		count++
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to walk commits: %w", err)
	}
	return count, nil
}
