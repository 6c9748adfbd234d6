// Show command prints one recipe in full.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/cookbook/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one recipe by ID",
	Long: `Show prints the full recipe: name, description, ingredients, and
numbered steps.

Example:
  cookbook show 1
  cookbook show 1 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := parseRecipeID(args[0])

		store := mustOpenStore("show")
		defer store.Close()

		recipe, err := store.Get(id)
		if err != nil {
			if errors.Is(err, types.ErrNotFound) {
				fmt.Fprintf(os.Stderr, "recipe %d not found\n", id)
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "get recipe:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printJSON(recipe)
		}

		fmt.Printf("Recipe ID: %d\n", recipe.RecipeID)
		fmt.Printf("Name: %s\n", recipe.Name)
		fmt.Printf("Description: %s\n", recipe.Description)
		fmt.Printf("Created: %s\n", recipe.DateCreated.Format("2006-01-02 15:04"))
		fmt.Println("\nIngredients:")
		for _, ingredient := range recipe.Ingredients {
			fmt.Printf("- %s\n", ingredient)
		}
		fmt.Println("\nSteps:")
		for i, step := range recipe.Steps {
			fmt.Printf("%d. %s\n", i+1, step)
		}
		return nil
	},
}
