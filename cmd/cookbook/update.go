// Update command replaces fields of an existing recipe.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/cookbook/pkg/types"
)

var (
	updateName        string
	updateDescription string
	updateIngredients []string
	updateSteps       []string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an existing recipe",
	Long: `Update replaces the provided fields of a recipe; fields not given
keep their current values. The id and creation date never change.

Example:
  cookbook update 1 --name "Pancakes v2"
  cookbook update 1 --step whisk --step rest --step cook`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := parseRecipeID(args[0])

		store := mustOpenStore("update")
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

		if cmd.Flags().Changed("name") {
			recipe.Name = updateName
		}
		if cmd.Flags().Changed("description") {
			recipe.Description = updateDescription
		}
		if cmd.Flags().Changed("ingredient") {
			recipe.Ingredients = updateIngredients
		}
		if cmd.Flags().Changed("step") {
			recipe.Steps = updateSteps
		}

		if err := recipe.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitUserError)
		}

		if err := store.Update(id, recipe); err != nil {
			fmt.Fprintln(os.Stderr, "update recipe:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printJSON(recipe)
		}
		fmt.Printf("Updated recipe %d\n", id)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "new recipe name")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "new recipe description")
	updateCmd.Flags().StringArrayVar(&updateIngredients, "ingredient", nil, "replacement ingredient list (repeatable)")
	updateCmd.Flags().StringArrayVar(&updateSteps, "step", nil, "replacement step list (repeatable)")
}
