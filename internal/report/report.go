package report

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"git.home.luguber.info/inful/relink/internal/config"
	"git.home.luguber.info/inful/relink/internal/docs"
	"git.home.luguber.info/inful/relink/internal/frontmatter"
	"git.home.luguber.info/inful/relink/internal/logfields"
	"git.home.luguber.info/inful/relink/internal/markdown"
	"git.home.luguber.info/inful/relink/internal/rewrite"
)

// LinkClass categorizes a link destination relative to the prefix table.
type LinkClass string

const (
	// ClassAbsolute is an absolute destination matching a configured prefix;
	// a convert run would rewrite it.
	ClassAbsolute LinkClass = "absolute"
	// ClassUnknownAbsolute is an absolute destination no prefix matches;
	// a convert run leaves it untouched.
	ClassUnknownAbsolute LinkClass = "unknown_absolute"
	ClassRelative        LinkClass = "relative"
	ClassExternal        LinkClass = "external"
	ClassFragment        LinkClass = "fragment"
)

// ClassifiedLink is one extracted link together with its classification.
type ClassifiedLink struct {
	Link  markdown.Link
	Class LinkClass
}

// FileReport summarizes the links of one document.
type FileReport struct {
	File   string
	Title  string
	Links  []ClassifiedLink
	Counts map[LinkClass]int
}

// Report summarizes the links of a documentation tree.
type Report struct {
	Files      []FileReport
	Totals     map[LinkClass]int
	FilesCount int
	LinksCount int
}

// Scanner produces read-only link reports for a documentation tree. It never
// writes and never checks whether link targets exist.
type Scanner struct {
	cfg   config.Rewrite
	table rewrite.Table
}

// NewScanner creates a Scanner for the given configuration.
func NewScanner(cfg config.Rewrite) *Scanner {
	return &Scanner{cfg: cfg, table: rewrite.NewTable(cfg.Mappings)}
}

// Scan walks the configured scan directory and classifies every link in every
// document. The first unreadable file aborts the scan.
func (s *Scanner) Scan() (*Report, error) {
	files, err := docs.Discover(s.cfg.ScanDir, s.cfg.DocExtension)
	if err != nil {
		return nil, err
	}

	rep := &Report{Totals: make(map[LinkClass]int)}
	for _, file := range files {
		fr, err := s.scanFile(file)
		if err != nil {
			return nil, err
		}

		rep.FilesCount++
		rep.LinksCount += len(fr.Links)
		for class, n := range fr.Counts {
			rep.Totals[class] += n
		}
		rep.Files = append(rep.Files, fr)
	}

	return rep, nil
}

func (s *Scanner) scanFile(file docs.DocFile) (FileReport, error) {
	fr := FileReport{File: file.RelativePath, Counts: make(map[LinkClass]int)}

	content, err := os.ReadFile(file.Path)
	if err != nil {
		return fr, fmt.Errorf("%w: %s: %w", rewrite.ErrReadFailed, file.Path, err)
	}

	if title, ok := frontmatter.Title(content); ok {
		fr.Title = title
	}

	_, body, _, err := frontmatter.Split(content)
	if err != nil {
		if !errors.Is(err, frontmatter.ErrMissingClosingDelimiter) {
			return fr, err
		}
		// Unterminated frontmatter: analyze the raw bytes instead.
		body = content
	}

	links, err := markdown.ExtractLinks(body)
	if err != nil {
		return fr, err
	}

	for _, link := range links {
		class := s.classify(link.Destination)
		fr.Links = append(fr.Links, ClassifiedLink{Link: link, Class: class})
		fr.Counts[class]++
	}

	slog.Debug("Scanned document", logfields.File(file.RelativePath), logfields.Links(len(links)))
	return fr, nil
}

func (s *Scanner) classify(destination string) LinkClass {
	switch {
	case hasURLScheme(destination):
		return ClassExternal
	case strings.HasPrefix(destination, "#"):
		return ClassFragment
	case strings.HasPrefix(destination, "/"):
		if s.table.Matches(destination) {
			return ClassAbsolute
		}
		return ClassUnknownAbsolute
	default:
		return ClassRelative
	}
}

func hasURLScheme(destination string) bool {
	lower := strings.ToLower(destination)
	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "mailto:") ||
		strings.HasPrefix(lower, "tel:")
}
