package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontmatter(t *testing.T) {
	content := []byte("# Heading\n\nBody text.\n")

	fm, body, had, err := Split(content)
	require.NoError(t, err)
	require.False(t, had)
	require.Nil(t, fm)
	require.Equal(t, content, body)
}

func TestSplit_WithFrontmatter(t *testing.T) {
	content := []byte("---\ntitle: Overview\n---\n# Heading\n")

	fm, body, had, err := Split(content)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "title: Overview\n", string(fm))
	require.Equal(t, "# Heading\n", string(body))
}

func TestSplit_EmptyFrontmatter(t *testing.T) {
	content := []byte("---\n---\nBody\n")

	fm, body, had, err := Split(content)
	require.NoError(t, err)
	require.True(t, had)
	require.Empty(t, fm)
	require.Equal(t, "Body\n", string(body))
}

func TestSplit_CRLF(t *testing.T) {
	content := []byte("---\r\ntitle: Overview\r\n---\r\nBody\r\n")

	fm, body, had, err := Split(content)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "title: Overview\r\n", string(fm))
	require.Equal(t, "Body\r\n", string(body))
}

func TestSplit_MissingClosingDelimiter(t *testing.T) {
	_, _, _, err := Split([]byte("---\ntitle: Broken\n"))
	require.ErrorIs(t, err, ErrMissingClosingDelimiter)
}

func TestParseYAML(t *testing.T) {
	fields, err := ParseYAML([]byte("title: Overview\nweight: 3\n"))
	require.NoError(t, err)
	require.Equal(t, "Overview", fields["title"])
	require.Equal(t, 3, fields["weight"])
}

func TestParseYAML_Empty(t *testing.T) {
	fields, err := ParseYAML(nil)
	require.NoError(t, err)
	require.Empty(t, fields)
}

func TestTitle(t *testing.T) {
	title, ok := Title([]byte("---\ntitle: Memory Overview\n---\nBody\n"))
	require.True(t, ok)
	require.Equal(t, "Memory Overview", title)

	_, ok = Title([]byte("no frontmatter here\n"))
	require.False(t, ok)

	_, ok = Title([]byte("---\nweight: 3\n---\nBody\n"))
	require.False(t, ok)
}
