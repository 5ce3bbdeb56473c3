package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/loot-go/lootsort/internal/plugin"
)

// fixtureManifest is the on-disk shape of one plugin fixture: a TOML
// file standing in for whatever a real BSA/ESP parser would report
// for the plugin of the same name.
type fixtureManifest struct {
	Name       string   `toml:"name"`
	Masters    []string `toml:"masters"`
	Master     bool     `toml:"master"`
	Light      bool     `toml:"light"`
	Medium     bool     `toml:"medium"`
	Blueprint  bool     `toml:"blueprint"`
	Records    []string `toml:"records"`
	GroupCount int      `toml:"group_count"`
	Assets     []string `toml:"assets"`
	Version    string   `toml:"version"`
	CRC        uint32   `toml:"crc"`
	Tags       []string `toml:"tags"`
}

// LoadPluginFixtures reads every "*.plugin.toml" manifest in dir and
// returns one plugin.Fixture provider per file, ordered by file name
// for a deterministic starting point (the sort driver re-sorts by
// filename comparator regardless).
func LoadPluginFixtures(dir string) ([]plugin.Provider, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("loader: read dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".plugin.toml") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	providers := make([]plugin.Provider, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loader: read %s: %w", path, err)
		}

		var m fixtureManifest
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("loader: parse %s: %w", path, err)
		}
		if m.Name == "" {
			return nil, fmt.Errorf("loader: %s: missing name", path)
		}

		providers = append(providers, &plugin.Fixture{
			NameStr:     m.Name,
			MastersList: m.Masters,
			MasterFlag:  m.Master,
			Light:       m.Light,
			Medium:      m.Medium,
			Blueprint:   m.Blueprint,
			Records:     m.Records,
			GroupCount:  m.GroupCount,
			Assets:      m.Assets,
			VersionStr:  m.Version,
			CRCValue:    m.CRC,
			Tags:        m.Tags,
		})
	}
	return providers, nil
}
