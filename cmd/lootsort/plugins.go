package main

import (
	"fmt"

	"github.com/loot-go/lootsort/internal/config"
	"github.com/loot-go/lootsort/internal/game"
	"github.com/loot-go/lootsort/internal/loader"
	"github.com/loot-go/lootsort/internal/sorting"
)

// loadSortInput builds a sorting.Input from cfg: plugin fixtures from
// cfg.PluginsDir, masterlist and userlist metadata from their
// respective paths, and the game's default hardcoded plugin list.
func loadSortInput(cfg config.Config) (sorting.Input, error) {
	gameType, err := cfg.GameType()
	if err != nil {
		return sorting.Input{}, err
	}

	providers, err := loader.LoadPluginFixtures(cfg.PluginsDir)
	if err != nil {
		return sorting.Input{}, fmt.Errorf("load plugin fixtures: %w", err)
	}

	masterlistMeta, masterlistGroups, err := loader.LoadMetadata(cfg.MasterlistPath)
	if err != nil {
		return sorting.Input{}, fmt.Errorf("load masterlist: %w", err)
	}
	userMeta, userGroups, err := loader.LoadMetadata(cfg.UserlistPath)
	if err != nil {
		return sorting.Input{}, fmt.Errorf("load userlist: %w", err)
	}

	var currentLoadOrder []string
	if cfg.CurrentLoadOrder != "" {
		currentLoadOrder, err = loader.LoadLoadOrder(cfg.CurrentLoadOrder)
		if err != nil {
			return sorting.Input{}, fmt.Errorf("load current load order: %w", err)
		}
	}

	return sorting.Input{
		Plugins:          providers,
		MasterlistMeta:   masterlistMeta,
		UserMeta:         userMeta,
		CurrentLoadOrder: currentLoadOrder,
		GameType:         gameType,
		HardcodedPlugins: game.HardcodedPlugins(gameType),
		MasterlistGroups: masterlistGroups,
		UserGroups:       userGroups,
	}, nil
}
