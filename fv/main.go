package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"

	"folioview/cmd"
)

func main() {
	// a .env next to the working directory is the most convenient place
	// for FOLIOVIEW_BACKEND_URL and friends
	godotenv.Load()

	if os.Getenv("FOLIOVIEW_DEBUG") != "" {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	commands := cmd.Commands()

	// shell completion on subcommand names; must run before flag parsing
	sub := make(map[string]*complete.Command, len(commands))
	for _, c := range commands {
		sub[c.Name()] = &complete.Command{}
	}
	(&complete.Command{Sub: sub}).Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
