// List command prints all stored recipes.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/cookbook/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all recipes",
	Long: `List fetches every recipe and displays id, name, and description,
ordered by id.

Example:
  cookbook list
  cookbook list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := mustOpenStore("list")
		defer store.Close()

		recipes, err := store.List()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list recipes:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printJSON(recipes)
		}

		printRecipeTable(recipes)
		return nil
	},
}

// printRecipeTable prints recipes in a human-readable table format.
func printRecipeTable(recipes []*types.Recipe) {
	if len(recipes) == 0 {
		fmt.Println("No recipes found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION\tCREATED")
	for _, r := range recipes {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			r.RecipeID, r.Name, r.Description, r.DateCreated.Format("2006-01-02"))
	}
	w.Flush()
}
