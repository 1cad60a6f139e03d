package report

import (
	"fmt"
	"io"
)

// classOrder fixes the column order for text output.
var classOrder = []LinkClass{
	ClassAbsolute,
	ClassUnknownAbsolute,
	ClassRelative,
	ClassExternal,
	ClassFragment,
}

var classLabels = map[LinkClass]string{
	ClassAbsolute:        "absolute",
	ClassUnknownAbsolute: "unknown absolute",
	ClassRelative:        "relative",
	ClassExternal:        "external",
	ClassFragment:        "fragment",
}

// Write renders the report as text: one line per document that contains links,
// then a totals line.
func (r *Report) Write(w io.Writer) error {
	for _, fr := range r.Files {
		if len(fr.Links) == 0 {
			continue
		}

		if fr.Title != "" {
			if _, err := fmt.Fprintf(w, "%s (%s)\n", fr.File, fr.Title); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(w, "%s\n", fr.File); err != nil {
				return err
			}
		}

		for _, class := range classOrder {
			if n := fr.Counts[class]; n > 0 {
				if _, err := fmt.Fprintf(w, "  %-16s %d\n", classLabels[class], n); err != nil {
					return err
				}
			}
		}
	}

	if _, err := fmt.Fprintf(w, "\nScanned %d files, %d links", r.FilesCount, r.LinksCount); err != nil {
		return err
	}
	for _, class := range classOrder {
		if n := r.Totals[class]; n > 0 {
			if _, err := fmt.Fprintf(w, " (%s: %d)", classLabels[class], n); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
