package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestConvertCmd_RewritesTree(t *testing.T) {
	root := t.TempDir()
	doc := writeDoc(t, root, "reference/agents/agent.mdx",
		"[memory](/docs/v1/memory/overview#persistence)\n")

	cmd := &ConvertCmd{Root: root, Scan: "reference", Ext: ".mdx"}
	require.NoError(t, cmd.Run(&Global{}))

	content, err := os.ReadFile(doc)
	require.NoError(t, err)
	require.Equal(t, "[memory](../../docs/memory/overview#persistence)\n", string(content))
}

func TestConvertCmd_DryRunWritesNothing(t *testing.T) {
	root := t.TempDir()
	original := "[memory](/docs/v1/memory/overview)\n"
	doc := writeDoc(t, root, "reference/agents/agent.mdx", original)

	cmd := &ConvertCmd{Root: root, Scan: "reference", Ext: ".mdx", DryRun: true}
	require.NoError(t, cmd.Run(&Global{}))

	content, err := os.ReadFile(doc)
	require.NoError(t, err)
	require.Equal(t, original, string(content))
}

func TestScanCmd_RunsOnTree(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "reference/overview.mdx", "[m](/docs/v1/m)\n")

	cmd := &ScanCmd{Root: root, Scan: "reference", Ext: ".mdx"}
	require.NoError(t, cmd.Run(&Global{}))
}
