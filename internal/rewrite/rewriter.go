package rewrite

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"git.home.luguber.info/inful/relink/internal/config"
	"git.home.luguber.info/inful/relink/internal/docs"
	"git.home.luguber.info/inful/relink/internal/logfields"
	"git.home.luguber.info/inful/relink/internal/markdown"
)

// Rewriter converts absolute documentation links into relative ones, in place.
type Rewriter struct {
	cfg    config.Rewrite
	table  Table
	out    io.Writer
	dryRun bool
}

// Result accumulates counters for one run.
type Result struct {
	FilesProcessed int
	FilesChanged   int
	LinksRewritten int
}

// Summary returns the end-of-run summary line.
func (r Result) Summary() string {
	return fmt.Sprintf("Processed %d files, changed %d files", r.FilesProcessed, r.FilesChanged)
}

// New creates a Rewriter. Per-changed-file notices and the final summary are
// written to out. In dry-run mode documents are never written back.
func New(cfg config.Rewrite, out io.Writer, dryRun bool) *Rewriter {
	return &Rewriter{
		cfg:    cfg,
		table:  NewTable(cfg.Mappings),
		out:    out,
		dryRun: dryRun,
	}
}

// ConvertDestination rewrites a single link destination found in the document
// at docPath. It returns the replacement and whether a rewrite applies.
//
// External schemes pass through, a trailing #fragment is preserved, and a
// destination matching no configured prefix passes through byte-for-byte.
func (r *Rewriter) ConvertDestination(docPath, destination string) (string, bool, error) {
	if strings.HasPrefix(destination, "http://") || strings.HasPrefix(destination, "https://") {
		return destination, false, nil
	}

	path := destination
	fragment := ""
	if before, after, ok := strings.Cut(path, "#"); ok {
		path = before
		fragment = "#" + after
	}

	mapping, subpath, ok := r.table.Lookup(path)
	if !ok {
		return destination, false, nil
	}

	rel, err := ResolveRelativePath(r.cfg.BaseDir, docPath, mapping.Directory, subpath, r.cfg.DocExtension)
	if err != nil {
		return "", false, err
	}

	slog.Debug("Converted link",
		logfields.File(docPath),
		logfields.Prefix(mapping.URLPrefix),
		logfields.Target(rel+fragment))
	return rel + fragment, true, nil
}

// ProcessDocument reads the document at path, rewrites every matching link
// span, and writes the result back only if the content changed. It returns
// whether a write occurred (or would occur, in dry-run mode) and the number of
// links rewritten.
func (r *Rewriter) ProcessDocument(path string) (bool, int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, 0, fmt.Errorf("%w: %s: %w", ErrReadFailed, path, err)
	}

	var edits []markdown.Edit
	for _, span := range ScanLinkSpans(content) {
		replacement, ok, err := r.ConvertDestination(path, span.Destination)
		if err != nil {
			return false, 0, err
		}
		if !ok || replacement == span.Destination {
			continue
		}
		edits = append(edits, markdown.Edit{
			Start:       span.Start,
			End:         span.End,
			Replacement: []byte(replacement),
		})
	}

	if len(edits) == 0 {
		return false, 0, nil
	}

	updated, err := markdown.ApplyEdits(content, edits)
	if err != nil {
		return false, 0, fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, err)
	}

	if !r.dryRun {
		if err := os.WriteFile(path, updated, 0o600); err != nil {
			return false, 0, fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, err)
		}
	}

	return true, len(edits), nil
}

// Run walks the configured scan directory and processes every document.
// The first unreadable or unwritable file aborts the run.
func (r *Rewriter) Run() (Result, error) {
	var result Result

	files, err := docs.Discover(r.cfg.ScanDir, r.cfg.DocExtension)
	if err != nil {
		return result, err
	}

	for _, file := range files {
		result.FilesProcessed++

		changed, links, err := r.ProcessDocument(file.Path)
		if err != nil {
			return result, err
		}
		if !changed {
			continue
		}

		result.FilesChanged++
		result.LinksRewritten += links
		fmt.Fprintf(r.out, "✓ %s\n", file.RelativePath)
		slog.Debug("Document rewritten", logfields.File(file.RelativePath), logfields.Links(links))
	}

	fmt.Fprintf(r.out, "\n%s\n", result.Summary())
	return result, nil
}
