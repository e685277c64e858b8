package main

import (
	"fmt"
	"os"

	"github.com/fivetwenty-io/dispatch/cmd/dispatch/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := commands.NewRootCommand(version, commit, date).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
