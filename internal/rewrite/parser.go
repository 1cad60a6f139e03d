package rewrite

// LinkSpan is one `](<destination>)` occurrence in a document.
//
// Start and End are byte offsets of the destination within the source, End
// exclusive. The span covers only the destination bytes, so a replacement
// leaves the surrounding `](` and `)` untouched.
type LinkSpan struct {
	Start       int
	End         int
	Destination string
}

// ScanLinkSpans finds every markdown-link-closing `](<destination>)` span in
// source, in document order.
//
// The grammar is deliberately narrow: a destination is every byte between `](`
// and the next `)`. Spans without a closing parenthesis are not links and are
// skipped. Link text in bracket position is not inspected at all; anything
// immediately preceding `](` qualifies.
func ScanLinkSpans(source []byte) []LinkSpan {
	var spans []LinkSpan

	for i := 0; i+1 < len(source); i++ {
		if source[i] != ']' || source[i+1] != '(' {
			continue
		}

		start := i + 2
		end := -1
		for j := start; j < len(source); j++ {
			if source[j] == ')' {
				end = j
				break
			}
		}
		if end == -1 {
			// Truncated link, leave the rest of the document alone.
			break
		}

		spans = append(spans, LinkSpan{
			Start:       start,
			End:         end,
			Destination: string(source[start:end]),
		})
		i = end
	}

	return spans
}
