package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/phatneglo/uac-server/internal/client/api"
	"github.com/phatneglo/uac-server/internal/client/cli"
	"github.com/phatneglo/uac-server/internal/client/iocli"
	"github.com/phatneglo/uac-server/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "uac-client.db", "Path to local session database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	ctx := context.Background()

	sessions, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := sessions.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL)
	app := cli.New(apiClient, sessions, iocli.NewStdio())

	app.Run(ctx, args[0])
}

func printVersion() {
	fmt.Printf("UAC Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
