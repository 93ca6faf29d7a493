package main

import (
	"os"

	"github.com/Makepad-fr/usagi/internal/cli"
)

func main() {
	// Flags, subcommands and exit codes are handled by the CLI runner.
	os.Exit(cli.Run(os.Args[1:], cli.Stdio()))
}
