package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/loot-go/lootsort/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "lootsort",
	Short: "Compute a Bethesda plugin load order",
	Long:  "lootsort partitions plugins into masters and non-masters, builds a typed dependency graph from plugin headers and masterlist/userlist metadata, and topologically sorts each partition into a load order.",
}

// Execute runs the root command, printing any error to stderr and
// exiting non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .lootsort.yaml)")
	rootCmd.PersistentFlags().String("game", "", "game type (tes3, openmw, tes4, oblivionRemastered, tes5, tes5se, tes5vr, fo3, fonv, fo4, fo4vr, starfield)")
	rootCmd.PersistentFlags().String("plugins-dir", "", "directory containing plugin fixture manifests")
	rootCmd.PersistentFlags().String("masterlist", "", "path to masterlist.yaml")
	rootCmd.PersistentFlags().String("userlist", "", "path to userlist.yaml")
	rootCmd.PersistentFlags().String("output", "", "output format: text or json")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose logging")
}

// applyFlagOverrides applies any explicitly-set persistent flags to
// cfg. Flags are layered on top of the config file/env/default result
// from config.Load rather than bound directly into viper, so an
// unset flag's zero value never shadows a real default.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if v, _ := cmd.Flags().GetString("game"); v != "" {
		cfg.Game = v
	}
	if v, _ := cmd.Flags().GetString("plugins-dir"); v != "" {
		cfg.PluginsDir = v
	}
	if v, _ := cmd.Flags().GetString("masterlist"); v != "" {
		cfg.MasterlistPath = v
	}
	if v, _ := cmd.Flags().GetString("userlist"); v != "" {
		cfg.UserlistPath = v
	}
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		cfg.OutputFormat = v
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.Verbose = true
	}
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".lootsort")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("LOOTSORT")
	viper.AutomaticEnv()

	// A missing config file is fine; defaults, flags and env vars
	// still apply.
	_ = viper.ReadInConfig()
}
