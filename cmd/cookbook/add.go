// Add command creates a new recipe from flags.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/cookbook/pkg/types"
)

var (
	addName        string
	addDescription string
	addIngredients []string
	addSteps       []string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new recipe",
	Long: `Add creates a new recipe. All four fields are required; repeat
--ingredient and --step for each item.

Example:
  cookbook add --name "Pancakes" --description "Fluffy breakfast" \
    --ingredient flour --ingredient milk --ingredient egg \
    --step mix --step cook`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		recipe := &types.Recipe{
			Name:        addName,
			Description: addDescription,
			Ingredients: addIngredients,
			Steps:       addSteps,
		}
		if err := recipe.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitUserError)
		}

		store := mustOpenStore("add")
		defer store.Close()

		id, err := store.Create(recipe)
		if err != nil {
			fmt.Fprintln(os.Stderr, "create recipe:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printJSON(recipe)
		}
		fmt.Printf("Recipe created with ID: %d\n", id)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "recipe name (required)")
	addCmd.Flags().StringVar(&addDescription, "description", "", "recipe description (required)")
	addCmd.Flags().StringArrayVar(&addIngredients, "ingredient", nil, "ingredient (repeatable, required)")
	addCmd.Flags().StringArrayVar(&addSteps, "step", nil, "preparation step (repeatable, required)")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("description")
}
