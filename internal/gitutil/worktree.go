package gitutil

import (
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
)

// WorktreeClean reports whether dir sits inside a git repository and, if so,
// whether its worktree has no uncommitted changes.
//
// inRepo is false when dir is not inside a repository; clean is meaningless in
// that case and callers should skip the check.
func WorktreeClean(dir string) (clean bool, inRepo bool, err error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return false, false, nil
		}
		return false, false, fmt.Errorf("failed to open git repository at %s: %w", dir, err)
	}

	w, err := repo.Worktree()
	if err != nil {
		return false, true, fmt.Errorf("failed to get git worktree: %w", err)
	}

	status, err := w.Status()
	if err != nil {
		return false, true, fmt.Errorf("failed to get git status: %w", err)
	}

	return status.IsClean(), true, nil
}
