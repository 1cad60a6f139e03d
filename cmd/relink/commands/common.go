package commands

import (
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/relink/internal/config"
	"github.com/alecthomas/kong"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Convert ConvertCmd `cmd:"" default:"withargs" help:"Rewrite absolute documentation links into relative ones, in place"`
	Scan    ScanCmd    `cmd:"" help:"Report link usage in a documentation tree without writing"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// buildConfig assembles and validates the rewrite configuration shared by the
// convert and scan commands.
func buildConfig(root, scan, ext string, mapPairs []string) (config.Rewrite, error) {
	mappings, err := config.ParseMappings(mapPairs)
	if err != nil {
		return config.Rewrite{}, err
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return config.Rewrite{}, err
	}

	scanDir := absRoot
	if scan != "" && scan != "." {
		scanDir = filepath.Join(absRoot, scan)
	}

	cfg := config.NewRewrite(absRoot, scanDir, ext, mappings)
	if err := cfg.Validate(); err != nil {
		return config.Rewrite{}, err
	}
	return cfg, nil
}
