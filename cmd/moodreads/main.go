// ABOUTME: Main entry point for the moodreads CLI
// ABOUTME: Wires version info from build flags into the command tree
package main

import (
	"fmt"
	"os"

	"github.com/moodreads/moodreads/cmd/moodreads/commands"
)

// Version information set by build flags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersion(version, commit, date)

	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
