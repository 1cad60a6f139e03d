package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID   = "run_id"
	KeyRoot    = "root"
	KeyScanDir = "scan_dir"
	KeyFile    = "file"
	KeyPath    = "path"
	KeySection = "section"
	KeyPrefix  = "prefix"
	KeyTarget  = "target"
	KeyLinks   = "links"
	KeyError   = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr     { return slog.String(KeyRunID, id) }
func Root(dir string) slog.Attr     { return slog.String(KeyRoot, dir) }
func ScanDir(dir string) slog.Attr  { return slog.String(KeyScanDir, dir) }
func File(path string) slog.Attr    { return slog.String(KeyFile, path) }
func Path(path string) slog.Attr    { return slog.String(KeyPath, path) }
func Section(name string) slog.Attr { return slog.String(KeySection, name) }
func Prefix(p string) slog.Attr     { return slog.String(KeyPrefix, p) }
func Target(t string) slog.Attr     { return slog.String(KeyTarget, t) }
func Links(n int) slog.Attr         { return slog.Int(KeyLinks, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
