package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path"

	"github.com/azrs7/Login/internal/middleware"
	"github.com/azrs7/Login/internal/platform/config"
	"github.com/google/subcommands"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Logs go to stderr; stdout belongs to the interactive shell.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	for _, c := range commands(cfg) {
		commander.Register(middleware.StructuredLogging(logger, c), "ledger")
	}

	flag.Parse()
	if flag.NArg() == 0 {
		// No subcommand: run the interactive shell.
		os.Exit(int(middleware.StructuredLogging(logger, &shellCmd{cfg: cfg}).
			Execute(context.Background(), flag.NewFlagSet("shell", flag.ExitOnError))))
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func commands(cfg *config.Config) []subcommands.Command {
	return []subcommands.Command{
		&shellCmd{cfg: cfg},
		&registerCmd{cfg: cfg},
		&historyCmd{cfg: cfg},
		&exportCmd{cfg: cfg},
	}
}
