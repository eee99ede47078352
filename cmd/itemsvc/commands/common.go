// Package commands implements the itemsvc CLI subcommands.
package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config      string           `short:"c" help:"Configuration file path (optional)" default:"itemsvc.yaml" type:"path"`
	Verbose     bool             `short:"v" help:"Enable verbose logging"`
	VersionFlag kong.VersionFlag `name:"version" help:"Show version and exit"`

	Serve   ServeCmd   `cmd:"" default:"1" help:"Serve the items API"`
	Version VersionCmd `cmd:"" help:"Print build information"`
}

// AfterApply runs after flag parsing and installs a bootstrap logger used until
// configuration is loaded.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}
