package config

import (
	"fmt"
	"os"
	"strings"
)

// Mapping associates one absolute URL prefix with the on-disk directory that
// serves it. Order matters: the first prefix that matches a destination wins.
type Mapping struct {
	URLPrefix string
	Directory string
}

// Rewrite is the immutable configuration for one rewriter run.
//
// It replaces what used to live as module-level constants so the same logic can
// run against multiple roots or mapping tables (notably in tests).
type Rewrite struct {
	// BaseDir is the root against which absolute link targets are resolved.
	BaseDir string
	// ScanDir is the directory walked for input documents.
	ScanDir string
	// DocExtension identifies input documents and is stripped from rewritten
	// link targets (links point at routes, not raw files).
	DocExtension string
	// Mappings is the ordered prefix table.
	Mappings []Mapping
}

// DefaultDocExtension is the document extension the docs tree uses.
const DefaultDocExtension = ".mdx"

// DefaultMappings returns the standard section table: each versioned URL
// prefix maps to the top-level section directory of the same name.
func DefaultMappings() []Mapping {
	return []Mapping{
		{URLPrefix: "/docs/v1/", Directory: "docs/"},
		{URLPrefix: "/reference/v1/", Directory: "reference/"},
		{URLPrefix: "/guides/v1/", Directory: "guides/"},
		{URLPrefix: "/models/v1/", Directory: "models/"},
		{URLPrefix: "/examples/v1/", Directory: "examples/"},
	}
}

// NewRewrite builds a Rewrite with defaults applied for zero-value fields.
func NewRewrite(baseDir, scanDir, extension string, mappings []Mapping) Rewrite {
	if extension == "" {
		extension = DefaultDocExtension
	}
	if len(mappings) == 0 {
		mappings = DefaultMappings()
	}
	if scanDir == "" {
		scanDir = baseDir
	}
	return Rewrite{
		BaseDir:      baseDir,
		ScanDir:      scanDir,
		DocExtension: extension,
		Mappings:     mappings,
	}
}

// Validate checks the configuration before a run.
func (r Rewrite) Validate() error {
	if r.BaseDir == "" {
		return fmt.Errorf("%w: base directory is empty", ErrInvalidConfig)
	}
	if !strings.HasPrefix(r.DocExtension, ".") {
		return fmt.Errorf("%w: document extension %q must start with '.'", ErrInvalidConfig, r.DocExtension)
	}
	if len(r.Mappings) == 0 {
		return fmt.Errorf("%w: prefix mapping table is empty", ErrInvalidConfig)
	}
	for _, m := range r.Mappings {
		if !strings.HasPrefix(m.URLPrefix, "/") || !strings.HasSuffix(m.URLPrefix, "/") {
			return fmt.Errorf("%w: url prefix %q must start and end with '/'", ErrInvalidConfig, m.URLPrefix)
		}
		if m.Directory == "" {
			return fmt.Errorf("%w: mapping for %q has an empty directory", ErrInvalidConfig, m.URLPrefix)
		}
	}
	info, err := os.Stat(r.ScanDir)
	if err != nil {
		return fmt.Errorf("%w: scan directory %s: %w", ErrInvalidConfig, r.ScanDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: scan path %s is not a directory", ErrInvalidConfig, r.ScanDir)
	}
	return nil
}

// ParseMappings parses "PREFIX=DIR" pairs (from repeated --map flags) into an
// ordered mapping table. Directories get a trailing slash appended when missing
// so they compose cleanly with subpaths.
func ParseMappings(pairs []string) ([]Mapping, error) {
	mappings := make([]Mapping, 0, len(pairs))
	for _, pair := range pairs {
		prefix, dir, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q is not in PREFIX=DIR form", ErrInvalidMapping, pair)
		}
		prefix = strings.TrimSpace(prefix)
		dir = strings.TrimSpace(dir)
		if prefix == "" || dir == "" {
			return nil, fmt.Errorf("%w: %q has an empty prefix or directory", ErrInvalidMapping, pair)
		}
		if !strings.HasSuffix(dir, "/") {
			dir += "/"
		}
		mappings = append(mappings, Mapping{URLPrefix: prefix, Directory: dir})
	}
	return mappings, nil
}
