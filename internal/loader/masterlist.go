// Package loader reads the on-disk representations the sorting core's
// external collaborators would otherwise hand it already parsed:
// masterlist/userlist YAML metadata, and TOML plugin fixture manifests
// standing in for a real BSA/ESP binary parser. Nothing here is part
// of the sorting core itself; it exists so `lootsort sort` has real
// data to sort without linking a Bethesda-plugin parser.
package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/loot-go/lootsort/internal/metadata"
)

// yamlFile is the top-level shape of a masterlist or userlist file.
type yamlFile struct {
	Groups  []yamlGroup  `yaml:"groups"`
	Plugins []yamlPlugin `yaml:"plugins"`
}

type yamlGroup struct {
	Name  string   `yaml:"name"`
	After []string `yaml:"after"`
}

type yamlFileRef struct {
	Name      string `yaml:"name"`
	Display   string `yaml:"display"`
	Condition string `yaml:"condition"`
}

type yamlMessage struct {
	Type      string `yaml:"type"`
	Content   string `yaml:"content"`
	Condition string `yaml:"condition"`
}

type yamlTag struct {
	Name      string `yaml:"name"`
	Add       bool   `yaml:"add"`
	Condition string `yaml:"condition"`
}

type yamlCleaningInfo struct {
	CRC      uint32 `yaml:"crc"`
	ITM      int    `yaml:"itm"`
	Deleted  int    `yaml:"deleted_refs"`
	NavDel   int    `yaml:"deleted_navmeshes"`
	Utility  string `yaml:"util"`
	Info     string `yaml:"info"`
}

type yamlLocation struct {
	Link string `yaml:"link"`
	Name string `yaml:"name"`
}

type yamlPlugin struct {
	Name              string             `yaml:"name"`
	Group             string             `yaml:"group"`
	After             []yamlFileRef      `yaml:"after"`
	Req               []yamlFileRef      `yaml:"req"`
	Inc               []yamlFileRef      `yaml:"inc"`
	Msg               []yamlMessage      `yaml:"msg"`
	Tag               []yamlTag          `yaml:"tag"`
	Dirty             []yamlCleaningInfo `yaml:"dirty"`
	Clean             []yamlCleaningInfo `yaml:"clean"`
	URL               []yamlLocation     `yaml:"url"`
}

// LoadMetadata reads a masterlist or userlist YAML file at path and
// returns the plugin metadata entries and groups it declares. A path
// that doesn't exist is not an error: it returns an empty metadata
// set, matching a userlist that hasn't been created yet.
func LoadMetadata(path string) ([]metadata.PluginMetadata, []metadata.Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("loader: read %s: %w", path, err)
	}

	var doc yamlFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("loader: parse %s: %w", path, err)
	}

	groups := make([]metadata.Group, 0, len(doc.Groups))
	for _, g := range doc.Groups {
		after := make([]metadata.AfterGroup, len(g.After))
		for i, a := range g.After {
			after[i] = metadata.AfterGroup{Name: a}
		}
		groups = append(groups, metadata.Group{Name: g.Name, AfterGroups: after})
	}

	plugins := make([]metadata.PluginMetadata, 0, len(doc.Plugins))
	for _, p := range doc.Plugins {
		pm := metadata.New(p.Name)
		if p.Group != "" {
			pm.SetGroup(p.Group)
		}
		pm.SetLoadAfterFiles(convertFiles(p.After))
		pm.SetRequirements(convertFiles(p.Req))
		pm.SetIncompatibilities(convertFiles(p.Inc))
		pm.SetMessages(convertMessages(p.Msg))
		pm.SetTags(convertTags(p.Tag))
		pm.SetDirtyInfo(convertCleaning(p.Dirty))
		pm.SetCleanInfo(convertCleaning(p.Clean))
		pm.SetLocations(convertLocations(p.URL))
		plugins = append(plugins, pm)
	}

	return plugins, groups, nil
}

func convertFiles(in []yamlFileRef) []metadata.File {
	out := make([]metadata.File, len(in))
	for i, f := range in {
		out[i] = metadata.File{Name: f.Name, Display: f.Display, Condition: f.Condition}
	}
	return out
}

func convertMessages(in []yamlMessage) []metadata.Message {
	out := make([]metadata.Message, len(in))
	for i, m := range in {
		out[i] = metadata.Message{Type: messageType(m.Type), Content: m.Content, Condition: m.Condition}
	}
	return out
}

func messageType(s string) metadata.MessageType {
	switch s {
	case "warn":
		return metadata.MessageWarn
	case "error":
		return metadata.MessageError
	default:
		return metadata.MessageSay
	}
}

func convertTags(in []yamlTag) []metadata.Tag {
	out := make([]metadata.Tag, len(in))
	for i, t := range in {
		out[i] = metadata.Tag{Name: t.Name, IsAddition: t.Add, Condition: t.Condition}
	}
	return out
}

func convertCleaning(in []yamlCleaningInfo) []metadata.PluginCleaningData {
	out := make([]metadata.PluginCleaningData, len(in))
	for i, c := range in {
		var info []metadata.Message
		if c.Info != "" {
			info = []metadata.Message{{Type: metadata.MessageSay, Content: c.Info}}
		}
		out[i] = metadata.PluginCleaningData{
			CRC:          c.CRC,
			ITMCount:     c.ITM,
			DeletedRefs:  c.Deleted,
			DeletedNavs:  c.NavDel,
			CleaningUtil: c.Utility,
			Info:         info,
		}
	}
	return out
}

func convertLocations(in []yamlLocation) []metadata.Location {
	out := make([]metadata.Location, len(in))
	for i, l := range in {
		out[i] = metadata.Location{URL: l.Link, Name: l.Name}
	}
	return out
}
