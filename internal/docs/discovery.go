package docs

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/relink/internal/logfields"
)

// DocFile represents a discovered documentation file.
type DocFile struct {
	Path         string // Absolute or root-joined path to the file
	RelativePath string // Path relative to the scanned directory, forward slashes
	Section      string // Directory of RelativePath ("" at the root)
	Name         string // File name without extension
	Extension    string // File extension including the dot
}

// Discover walks root and returns every file whose name ends with extension,
// in directory-walk order. Hidden files and hidden directories are skipped.
func Discover(root, extension string) ([]DocFile, error) {
	var files []DocFile

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		if !strings.HasSuffix(d.Name(), extension) {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidRelativePath, path, err)
		}
		relPath = filepath.ToSlash(relPath)

		section := ""
		if dir := filepath.ToSlash(filepath.Dir(relPath)); dir != "." {
			section = dir
		}

		files = append(files, DocFile{
			Path:         path,
			RelativePath: relPath,
			Section:      section,
			Name:         strings.TrimSuffix(d.Name(), extension),
			Extension:    extension,
		})

		slog.Debug("Discovered document", logfields.File(relPath), logfields.Section(section))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrWalkFailed, root, err)
	}

	return files, nil
}
