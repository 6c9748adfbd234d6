// Delete command removes a recipe by ID.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/cookbook/pkg/types"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recipe by ID",
	Long: `Delete removes a recipe. Unlike the interactive menu, no
confirmation is asked; this form is meant for scripts.

Example:
  cookbook delete 1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := parseRecipeID(args[0])

		store := mustOpenStore("delete")
		defer store.Close()

		if err := store.Delete(id); err != nil {
			if errors.Is(err, types.ErrNotFound) {
				fmt.Fprintf(os.Stderr, "recipe %d not found\n", id)
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "delete recipe:", err)
			os.Exit(exitSysError)
		}

		fmt.Printf("Deleted recipe %d\n", id)
		return nil
	},
}
