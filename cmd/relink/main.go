package main

import (
	"fmt"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/relink/cmd/relink/commands"
	"git.home.luguber.info/inful/relink/internal/config"
	"git.home.luguber.info/inful/relink/internal/version"
	"github.com/alecthomas/kong"
)

func main() {
	// Load .env before flag parsing so env-backed flags pick it up.
	if envPath, ok := config.LoadEnvFile(); ok {
		fmt.Fprintf(os.Stderr, "Loaded environment variables from %s\n", envPath)
	}

	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("relink"),
		kong.Description("Rewrite absolute documentation links into relative file-system links."),
		kong.Vars{"version": version.Version},
	)

	err := ctx.Run(&commands.Global{Logger: slog.Default()})
	ctx.FatalIfErrorf(err)
}
