package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ashfall/mudcore/cmd/mudcore/command"
	"github.com/pixil98/go-service"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(command.ExitFailure)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "serve":
		serve()
	case "save":
		requireArg(2, "save <game>")
		os.Exit(command.Save(ctx, os.Getenv("MUDCORE_CATALOG_DIR"), os.Args[2]))
	case "load":
		requireArg(2, "load <game>")
		os.Exit(command.Load(ctx, os.Args[2]))
	case "list":
		os.Exit(command.List(ctx))
	case "backup":
		requireArg(2, "backup <game>")
		os.Exit(command.Backup(ctx, os.Args[2]))
	default:
		printUsage()
		os.Exit(command.ExitFailure)
	}
}

func requireArg(n int, usage string) {
	if len(os.Args) <= n {
		slog.Error("missing argument", "usage", usage)
		os.Exit(command.ExitFailure)
	}
}

func printUsage() {
	slog.Error("usage: mudcore <serve|save <game>|load <game>|list|backup <game>>")
}

func serve() {
	slog.Info("creating application")

	app, err := service.NewApp(&command.Config{}, command.BuildWorkers)
	if err != nil {
		slog.Error("creating application", "error", err)
		os.Exit(command.ExitFailure)
	}

	if err := app.Run(context.Background()); err != nil {
		slog.Error("running application", "error", err)
		os.Exit(command.ExitFailure)
	}

	slog.Info("exiting application")
}
