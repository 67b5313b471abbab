package main

import (
	"github.com/alecthomas/kong"

	"github.com/pescuma/gitstatus/lib/consoles"
)

var cli struct {
	Chdir string `short:"C" help:"Run as if started in this directory. Default is the current directory." type:"path"`

	Status StatusCmd `cmd:"" default:"withargs" help:"Show a summary of the staged and unstaged changes, one line per path."`
}

type context struct {
	console consoles.Console
}

func main() {
	ctx := kong.Parse(&cli, kong.ShortUsageOnError())

	err := ctx.Run(&context{
		console: consoles.NewStdOutConsole(),
	})
	ctx.FatalIfErrorf(err)
}
