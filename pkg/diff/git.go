package diff

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// FromRepository derives unified-diff text for the commit at rev (HEAD
// when empty) against its first parent in the repository at path. The
// returned text feeds straight into Parse/Add. A root commit yields no
// diff text.
func FromRepository(path, rev string) (string, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return "", fmt.Errorf("opening repository %s: %w", path, err)
	}

	var hash plumbing.Hash
	if rev == "" {
		head, err := repo.Head()
		if err != nil {
			return "", fmt.Errorf("resolving HEAD of %s: %w", path, err)
		}
		hash = head.Hash()
	} else {
		resolved, err := repo.ResolveRevision(plumbing.Revision(rev))
		if err != nil {
			return "", fmt.Errorf("resolving revision %s: %w", rev, err)
		}
		hash = *resolved
	}

	commit, err := repo.CommitObject(hash)
	if err != nil {
		return "", fmt.Errorf("reading commit %s: %w", hash, err)
	}

	parent, err := commit.Parent(0)
	if errors.Is(err, object.ErrParentNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading parent of %s: %w", hash, err)
	}

	patch, err := parent.Patch(commit)
	if err != nil {
		return "", fmt.Errorf("computing patch for %s: %w", hash, err)
	}

	return patch.String(), nil
}
