// Package main provides the cookbook CLI. Running it with no
// subcommand starts the interactive menu; subcommands cover the same
// operations for scripted use.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitSysError)
	}
}
