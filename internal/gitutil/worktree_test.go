package gitutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

func TestWorktreeClean_NotARepository(t *testing.T) {
	clean, inRepo, err := WorktreeClean(t.TempDir())
	require.NoError(t, err)
	require.False(t, inRepo)
	require.False(t, clean)
}

func TestWorktreeClean_DirtyRepository(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.mdx"), []byte("x"), 0o600))

	clean, inRepo, err := WorktreeClean(dir)
	require.NoError(t, err)
	require.True(t, inRepo)
	require.False(t, clean)
}

func TestWorktreeClean_CleanRepository(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.mdx"), []byte("x"), 0o600))

	w, err := repo.Worktree()
	require.NoError(t, err)
	_, err = w.Add("a.mdx")
	require.NoError(t, err)
	_, err = w.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	clean, inRepo, err := WorktreeClean(dir)
	require.NoError(t, err)
	require.True(t, inRepo)
	require.True(t, clean)
}

func TestWorktreeClean_DetectsFromSubdirectory(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	sub := filepath.Join(dir, "docs", "reference")
	require.NoError(t, os.MkdirAll(sub, 0o750))

	_, inRepo, err := WorktreeClean(sub)
	require.NoError(t, err)
	require.True(t, inRepo)
}
