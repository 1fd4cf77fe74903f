// Command pantry tracks household items, their categories and their
// price history from the terminal.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/jo-carlos-borges/pantry-tracker/cli"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	cli.Register(subcommands.DefaultCommander)

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
