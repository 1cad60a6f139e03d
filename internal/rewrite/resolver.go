package rewrite

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ResolveRelativePath computes the relative path from the directory containing
// fromDocument to the target assembled as baseDir/section/subpath.
//
// The result uses forward slashes on every platform. A trailing docExtension is
// stripped so links point at a section route rather than a raw file, and the
// result always starts with "./" unless it already starts with "../".
func ResolveRelativePath(baseDir, fromDocument, section, subpath, docExtension string) (string, error) {
	fromDir := filepath.Dir(fromDocument)
	target := filepath.Join(baseDir, section, subpath)

	rel, err := filepath.Rel(fromDir, target)
	if err != nil {
		return "", fmt.Errorf("%w: %s -> %s: %w", ErrRelativePath, fromDocument, target, err)
	}

	rel = filepath.ToSlash(rel)
	rel = strings.TrimSuffix(rel, docExtension)

	if !strings.HasPrefix(rel, "../") {
		rel = "./" + rel
	}

	return rel, nil
}
