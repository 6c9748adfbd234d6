// Init command creates the config and data directories eagerly.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the recipe database",
	Long: `Init creates the configuration directory, a default config.yaml,
the data directory, and the database file with its schema. Safe to run
more than once.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		fmt.Printf("Initialized recipe database at %s\n", store.Path())
		return nil
	},
}
