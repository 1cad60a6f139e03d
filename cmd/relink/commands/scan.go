package commands

import (
	"fmt"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/relink/internal/logfields"
	"git.home.luguber.info/inful/relink/internal/report"
	"github.com/google/uuid"
)

// ScanCmd implements the 'scan' command.
type ScanCmd struct {
	Root string   `arg:"" optional:"" default:"." env:"RELINK_ROOT" help:"Base directory for relative-path resolution"`
	Scan string   `short:"s" default:"reference" env:"RELINK_SCAN_DIR" help:"Subdirectory under the root walked for documents ('.' for the whole root)"`
	Ext  string   `default:".mdx" env:"RELINK_EXT" help:"Document extension to process"`
	Map  []string `short:"m" placeholder:"PREFIX=DIR" help:"Override the prefix mapping table (repeatable, order matters)"`
}

// Run executes the scan command.
func (s *ScanCmd) Run(_ *Global) error {
	cfg, err := buildConfig(s.Root, s.Scan, s.Ext, s.Map)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	slog.Info("Starting link scan",
		logfields.RunID(runID),
		logfields.Root(cfg.BaseDir),
		logfields.ScanDir(cfg.ScanDir))

	scanner := report.NewScanner(cfg)
	rep, err := scanner.Scan()
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if err := rep.Write(os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	slog.Info("Scan completed",
		logfields.RunID(runID),
		slog.Int("files", rep.FilesCount),
		logfields.Links(rep.LinksCount))
	return nil
}
