// Root command for the cookbook CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/cookbook/internal/log"
	"github.com/mesh-intelligence/cookbook/internal/menu"
	"github.com/mesh-intelligence/cookbook/internal/paths"
	"github.com/mesh-intelligence/cookbook/pkg/cookbook"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagLogLevel  string
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

var rootCmd = &cobra.Command{
	Use:   "cookbook",
	Short: "Cookbook is a recipe manager for the terminal",
	Long: `Cookbook stores cooking recipes in a local SQLite database.

Run it with no arguments for the interactive menu, or use the
subcommands (list, show, add, update, delete, export, import) for
scripted access.`,
	Version: cookbook.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := log.SetLevel(flagLogLevel); err != nil {
			return err
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		return nil
	},
	RunE: runMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.cookbook-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug, info, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

// runMenu opens the store and hands control to the interactive menu
// until the user quits. An open failure here is the one fatal error.
func runMenu(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		log.Error("startup failed", "err", err)
		return err
	}
	defer store.Close()

	return menu.New(store, os.Stdin, os.Stdout).Run()
}

// resolveDataDir returns the data directory path following the
// precedence: --data-dir flag > config.yaml data_dir > COOKBOOK_DATA_DIR
// env > default $(CWD)/.cookbook-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > COOKBOOK_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
