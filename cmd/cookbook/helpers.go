// Shared helpers for cookbook CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/mesh-intelligence/cookbook/internal/sqlite"
	"github.com/mesh-intelligence/cookbook/pkg/types"
)

// openStore resolves the data directory, creates a SQLite store, and
// opens it. The caller must defer store.Close().
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	store := sqlite.NewStore()
	if err := store.Open(cfg); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	return store, nil
}

// mustOpenStore opens the store or exits with a system error. Used by
// the scripted subcommands where an unreachable database is fatal.
func mustOpenStore(command string) *sqlite.Store {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", command, err)
		os.Exit(exitSysError)
	}
	return store
}

// parseRecipeID parses a positional id argument or exits with a user
// error.
func parseRecipeID(arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		fmt.Fprintf(os.Stderr, "%q is not a valid recipe ID\n", arg)
		os.Exit(exitUserError)
	}
	return id
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}
