// Export and import commands move recipes through JSONL files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export all recipes to a JSONL file",
	Long: `Export writes every recipe to the given file, one JSON object per
line, ordered by id. The file is written atomically.

Example:
  cookbook export recipes.jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := mustOpenStore("export")
		defer store.Close()

		if err := store.ExportJSONL(args[0]); err != nil {
			fmt.Fprintln(os.Stderr, "export recipes:", err)
			os.Exit(exitSysError)
		}

		fmt.Printf("Exported recipes to %s\n", args[0])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import recipes from a JSONL file",
	Long: `Import reads recipes from the given JSONL file and adds each one
as a new recipe. Ids are regenerated; creation dates in the file are
preserved. Malformed lines are skipped.

Example:
  cookbook import recipes.jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := mustOpenStore("import")
		defer store.Close()

		count, err := store.ImportJSONL(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "import recipes:", err)
			os.Exit(exitSysError)
		}

		fmt.Printf("Imported %d recipes from %s\n", count, args[0])
		return nil
	},
}
