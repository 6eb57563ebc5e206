package main

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/citypress/cmd/citypress/commands"
)

// version is stamped at release time via -ldflags.
var version = "dev"

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("citypress"),
		kong.Description("Static multi-page site generator for local-services businesses."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)
	err := ctx.Run(&commands.Global{}, &cli)
	ctx.FatalIfErrorf(err)
}
