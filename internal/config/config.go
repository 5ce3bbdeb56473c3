// Package config loads lootsort's runtime configuration: which game to
// sort for, where its plugins live, where the masterlist and userlist
// metadata files are, and how to print the result. Values are
// populated from .lootsort.yaml, LOOTSORT_* env vars, and CLI flags,
// in that ascending precedence, the same layering the config file,
// environment, and flag sources apply in every subcommand.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/loot-go/lootsort/internal/game"
)

// Config holds all runtime configuration for one lootsort invocation.
type Config struct {
	Game             string `mapstructure:"game"`
	PluginsDir       string `mapstructure:"plugins_dir"`
	MasterlistPath   string `mapstructure:"masterlist_path"`
	UserlistPath     string `mapstructure:"userlist_path"`
	CurrentLoadOrder string `mapstructure:"current_load_order_path"`
	OutputFormat     string `mapstructure:"output_format"`
	Verbose          bool   `mapstructure:"verbose"`
}

// gameTypes maps every config-file/flag spelling of a game to its
// game.Type.
var gameTypes = map[string]game.Type{
	"tes3":               game.Morrowind,
	"openmw":             game.OpenMW,
	"tes4":               game.Oblivion,
	"oblivionremastered": game.OblivionRemastered,
	"tes5":               game.Skyrim,
	"tes5se":             game.SkyrimSE,
	"tes5vr":             game.SkyrimVR,
	"fo3":                game.Fallout3,
	"fonv":               game.FalloutNV,
	"fo4":                game.Fallout4,
	"fo4vr":              game.Fallout4VR,
	"starfield":          game.Starfield,
}

// GameType resolves the configured Game string to a game.Type, failing
// if it names none of the closed set of supported games.
func (c Config) GameType() (game.Type, error) {
	t, ok := gameTypes[normalizeGameKey(c.Game)]
	if !ok {
		return 0, fmt.Errorf("unrecognised game %q", c.Game)
	}
	return t, nil
}

func normalizeGameKey(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		out = append(out, b)
	}
	return string(out)
}

// Load reads configuration from viper, applying built-in defaults for
// any values not set by config file, environment, or flag.
func Load() (Config, error) {
	viper.SetDefault("game", "tes5se")
	viper.SetDefault("plugins_dir", ".")
	viper.SetDefault("masterlist_path", "masterlist.yaml")
	viper.SetDefault("userlist_path", "userlist.yaml")
	viper.SetDefault("current_load_order_path", "")
	viper.SetDefault("output_format", "text")
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}
