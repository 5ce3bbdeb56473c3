package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"

	"github.com/loot-go/lootsort/internal/game"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Game", cfg.Game, "tes5se"},
		{"PluginsDir", cfg.PluginsDir, "."},
		{"MasterlistPath", cfg.MasterlistPath, "masterlist.yaml"},
		{"UserlistPath", cfg.UserlistPath, "userlist.yaml"},
		{"OutputFormat", cfg.OutputFormat, "text"},
		{"Verbose", cfg.Verbose, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{
			name:   "game",
			envKey: "LOOTSORT_GAME",
			envVal: "starfield",
			field:  func(c Config) any { return c.Game },
			want:   "starfield",
		},
		{
			name:   "plugins_dir",
			envKey: "LOOTSORT_PLUGINS_DIR",
			envVal: "/opt/games/skyrim/Data",
			field:  func(c Config) any { return c.PluginsDir },
			want:   "/opt/games/skyrim/Data",
		},
		{
			name:   "masterlist_path",
			envKey: "LOOTSORT_MASTERLIST_PATH",
			envVal: "/etc/lootsort/masterlist.yaml",
			field:  func(c Config) any { return c.MasterlistPath },
			want:   "/etc/lootsort/masterlist.yaml",
		},
		{
			name:   "output_format",
			envKey: "LOOTSORT_OUTPUT_FORMAT",
			envVal: "json",
			field:  func(c Config) any { return c.OutputFormat },
			want:   "json",
		},
		{
			name:   "verbose",
			envKey: "LOOTSORT_VERBOSE",
			envVal: "true",
			field:  func(c Config) any { return c.Verbose },
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			viper.SetEnvPrefix("LOOTSORT")
			viper.AutomaticEnv()

			os.Setenv(tt.envKey, tt.envVal)
			defer os.Unsetenv(tt.envKey)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			got := tt.field(cfg)
			if got != tt.want {
				t.Errorf("%s: got %v (%T), want %v (%T)", tt.name, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestConfig_GameType(t *testing.T) {
	tests := []struct {
		spelling string
		want     game.Type
	}{
		{"tes5se", game.SkyrimSE},
		{"TES5SE", game.SkyrimSE},
		{"starfield", game.Starfield},
		{"openmw", game.OpenMW},
		{"oblivionRemastered", game.OblivionRemastered},
	}
	for _, tt := range tests {
		t.Run(tt.spelling, func(t *testing.T) {
			cfg := Config{Game: tt.spelling}
			got, err := cfg.GameType()
			if err != nil {
				t.Fatalf("GameType(): %v", err)
			}
			if got != tt.want {
				t.Errorf("GameType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_GameType_Unrecognised(t *testing.T) {
	cfg := Config{Game: "tes6"}
	if _, err := cfg.GameType(); err == nil {
		t.Error("expected an error for an unrecognised game")
	}
}
