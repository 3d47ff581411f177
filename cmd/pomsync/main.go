package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/indaco/pomsync/internal/cli"
	"github.com/indaco/pomsync/internal/config"
	"github.com/indaco/pomsync/internal/core"
	"github.com/indaco/pomsync/internal/printer"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	err := runCLI(os.Args)
	reportError(err)
	os.Exit(core.ExitCode(err))
}

// reportError prints the failure line for err. Success and help print nothing.
func reportError(err error) {
	if err == nil || errors.Is(err, core.ErrHelpRequested) {
		return
	}
	fmt.Printf("%s %s\n", printer.ErrorBadge("✗"), printer.Error(fmt.Sprintf("Error: %v", err)))
}

// runCLI builds the root command and runs it with args.
func runCLI(args []string) error {
	app := cli.New(config.Default(), version)
	return app.Run(context.Background(), args)
}
