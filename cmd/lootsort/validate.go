package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loot-go/lootsort/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the configured paths exist and the game type is recognised",
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagOverrides(cmd, &cfg)
	ok := true

	if _, err := cfg.GameType(); err != nil {
		fmt.Fprintf(os.Stderr, "✗ game: %v\n", err)
		ok = false
	} else {
		fmt.Fprintf(os.Stderr, "✓ game: %s\n", cfg.Game)
	}

	if info, err := os.Stat(cfg.PluginsDir); err != nil || !info.IsDir() {
		fmt.Fprintf(os.Stderr, "✗ plugins_dir: %s not found\n", cfg.PluginsDir)
		ok = false
	} else {
		fmt.Fprintf(os.Stderr, "✓ plugins_dir: %s\n", cfg.PluginsDir)
	}

	checkOptional := func(label, path string) {
		if path == "" {
			return
		}
		if _, err := os.Stat(path); err != nil {
			fmt.Fprintf(os.Stderr, "· %s: %s not found (will be treated as empty)\n", label, path)
			return
		}
		fmt.Fprintf(os.Stderr, "✓ %s: %s\n", label, path)
	}
	checkOptional("masterlist_path", cfg.MasterlistPath)
	checkOptional("userlist_path", cfg.UserlistPath)
	checkOptional("current_load_order_path", cfg.CurrentLoadOrder)

	if !ok {
		os.Exit(1)
	}
	return nil
}
