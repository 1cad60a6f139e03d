package commands

import (
	"fmt"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/relink/internal/gitutil"
	"git.home.luguber.info/inful/relink/internal/logfields"
	"git.home.luguber.info/inful/relink/internal/rewrite"
	"github.com/google/uuid"
)

// ConvertCmd implements the 'convert' command.
type ConvertCmd struct {
	Root   string   `arg:"" optional:"" default:"." env:"RELINK_ROOT" help:"Base directory for relative-path resolution"`
	Scan   string   `short:"s" default:"reference" env:"RELINK_SCAN_DIR" help:"Subdirectory under the root walked for documents ('.' for the whole root)"`
	Ext    string   `default:".mdx" env:"RELINK_EXT" help:"Document extension to process"`
	Map    []string `short:"m" placeholder:"PREFIX=DIR" help:"Override the prefix mapping table (repeatable, order matters)"`
	DryRun bool     `help:"Report changes without writing any file"`
	Force  bool     `help:"Rewrite even when the tree has uncommitted git changes"`
}

// Run executes the convert command.
func (c *ConvertCmd) Run(_ *Global) error {
	cfg, err := buildConfig(c.Root, c.Scan, c.Ext, c.Map)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	slog.Info("Starting link conversion",
		logfields.RunID(runID),
		logfields.Root(cfg.BaseDir),
		logfields.ScanDir(cfg.ScanDir),
		slog.Bool("dry_run", c.DryRun))

	// Rewriting happens in place with no rollback, so refuse to clobber
	// uncommitted work unless explicitly asked to.
	if !c.DryRun && !c.Force {
		clean, inRepo, err := gitutil.WorktreeClean(cfg.ScanDir)
		if err != nil {
			return err
		}
		if inRepo && !clean {
			return fmt.Errorf("uncommitted changes under %s; commit them or rerun with --force or --dry-run", cfg.ScanDir)
		}
	}

	if c.DryRun {
		fmt.Fprintf(os.Stdout, "DRY RUN: No changes will be applied\n\n")
	}

	rewriter := rewrite.New(cfg, os.Stdout, c.DryRun)
	result, err := rewriter.Run()
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	slog.Info("Conversion completed",
		logfields.RunID(runID),
		slog.Int("files_processed", result.FilesProcessed),
		slog.Int("files_changed", result.FilesChanged),
		slog.Int("links_rewritten", result.LinksRewritten))
	return nil
}
