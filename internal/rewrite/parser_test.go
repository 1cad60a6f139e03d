package rewrite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanLinkSpans_SingleLink(t *testing.T) {
	src := []byte("See [overview](/docs/v1/memory/overview) for details.")

	spans := ScanLinkSpans(src)
	require.Len(t, spans, 1)
	require.Equal(t, "/docs/v1/memory/overview", spans[0].Destination)
	require.Equal(t, "/docs/v1/memory/overview", string(src[spans[0].Start:spans[0].End]))
}

func TestScanLinkSpans_MultipleLinks(t *testing.T) {
	src := []byte("[a](/docs/v1/a) and [b](./b) and [c](https://example.com)")

	spans := ScanLinkSpans(src)
	require.Len(t, spans, 3)
	require.Equal(t, "/docs/v1/a", spans[0].Destination)
	require.Equal(t, "./b", spans[1].Destination)
	require.Equal(t, "https://example.com", spans[2].Destination)
}

func TestScanLinkSpans_EmptyDestination(t *testing.T) {
	spans := ScanLinkSpans([]byte("[text]()"))
	require.Len(t, spans, 1)
	require.Equal(t, "", spans[0].Destination)
}

func TestScanLinkSpans_TruncatedLinkIgnored(t *testing.T) {
	spans := ScanLinkSpans([]byte("[text](/docs/v1/never-closed"))
	require.Empty(t, spans)
}

func TestScanLinkSpans_BareBracketsIgnored(t *testing.T) {
	spans := ScanLinkSpans([]byte("a [note] without parens and (parens) without brackets"))
	require.Empty(t, spans)
}

func TestScanLinkSpans_OffsetsAreReplaceable(t *testing.T) {
	src := []byte("x [a](/docs/v1/a) y [b](/docs/v1/b) z")

	spans := ScanLinkSpans(src)
	require.Len(t, spans, 2)
	for _, s := range spans {
		require.Equal(t, byte('('), src[s.Start-1])
		require.Equal(t, byte(')'), src[s.End])
	}
}
