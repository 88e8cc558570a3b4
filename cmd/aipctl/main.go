// Package main is the entry point for the aipctl CLI.
//
// aipctl is a command-line tool for onboarding developers onto Amazon
// Bedrock with cost-attributable application inference profiles.
// Administrators provision tagged profiles; developers discover the
// profile matching their identity tags and configure their local
// coding agent to use it.
//
// Commands: admin, client, doctor, version, completion.
//
// For detailed usage information, run:
//
//	aipctl --help
package main

import (
	"fmt"
	"os"

	"github.com/cloudeng/aipctl/cmd/aipctl/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
