// Package cli implements the uac command line client.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/phatneglo/uac-server/internal/client/api"
	"github.com/phatneglo/uac-server/internal/client/iocli"
	"github.com/phatneglo/uac-server/internal/client/storage"
)

// Cli holds the dependencies shared by all commands
type Cli struct {
	apiClient *api.Client
	sessions  storage.SessionStorage
	io        iocli.IO
}

func New(apiClient *api.Client, sessions storage.SessionStorage, io iocli.IO) *Cli {
	return &Cli{
		apiClient: apiClient,
		sessions:  sessions,
		io:        io,
	}
}

// Run dispatches a command by name
func (c *Cli) Run(ctx context.Context, command string) {
	var err error

	switch command {
	case "register":
		err = c.runRegister(ctx)
	case "login":
		err = c.runLogin(ctx)
	case "logout":
		err = c.runLogout(ctx)
	case "me":
		err = c.runMe(ctx)
	case "roles":
		err = c.runRoles(ctx)
	case "status":
		err = c.runStatus(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func PrintUsage() {
	fmt.Println("UAC Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  uac [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version     Show version information")
	fmt.Println("  --server URL  Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH     Path to local session database (default: uac-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register      Register a new account")
	fmt.Println("  login         Login and save the session")
	fmt.Println("  logout        Delete the saved session")
	fmt.Println("  me            Show the profile of the logged-in user")
	fmt.Println("  roles         Show the roles of the logged-in user")
	fmt.Println("  status        Show authentication status")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  uac register")
	fmt.Println("  uac login")
	fmt.Println("  uac me")
	fmt.Println("  uac --server https://example.com login")
}
