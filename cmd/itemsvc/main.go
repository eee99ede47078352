package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/itemsvc/cmd/itemsvc/commands"
	ferrors "git.home.luguber.info/inful/itemsvc/internal/foundation/errors"
	"git.home.luguber.info/inful/itemsvc/internal/version"
)

func main() {
	var cli commands.CLI
	global := &commands.Global{}
	ctx := kong.Parse(&cli,
		kong.Name("itemsvc"),
		kong.Description("Items API with Prometheus request metrics"),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)

	if err := ctx.Run(global, &cli); err != nil {
		ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
