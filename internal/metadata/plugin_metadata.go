package metadata

import (
	"regexp"
	"strings"

	"github.com/loot-go/lootsort/internal/filename"
)

// regexSignalChars are the characters that mark a plugin metadata
// name as a regular expression rather than a literal filename.
const regexSignalChars = `:\*?|`

// PluginMetadata bundles every piece of masterlist/userlist metadata
// attached to one plugin (or one regex pattern matching several
// plugins).
type PluginMetadata struct {
	name  string
	regex *regexp.Regexp // non-nil iff name is a regex pattern

	group             string
	groupSet          bool
	loadAfter         []File
	requirements      []File
	incompatibilities []File
	messages          []Message
	tags              []Tag
	dirtyInfo         []PluginCleaningData
	cleanInfo         []PluginCleaningData
	locations         []Location
}

// New constructs a PluginMetadata with no metadata set, for the plugin
// (or regex pattern) named name.
func New(name string) PluginMetadata {
	pm := PluginMetadata{name: name}
	if pm.IsRegexPlugin() {
		// Neither this constructor nor the YAML loader reports an
		// error for a pattern that fails to compile. An invalid
		// pattern falls back to literal-name comparisons, which will
		// simply never match anything, rather than panicking.
		if re, err := regexp.Compile(name); err == nil {
			pm.regex = re
		}
	}
	return pm
}

// Name returns the plugin name or regex pattern this metadata applies to.
func (p PluginMetadata) Name() string { return p.name }

// IsRegexPlugin reports whether the name field is a regular expression,
// i.e. it contains any of the characters `:\*?|`.
func (p PluginMetadata) IsRegexPlugin() bool {
	return strings.ContainsAny(p.name, regexSignalChars)
}

// NameMatches reports whether query matches this metadata's name. If
// the name is a regular expression, query is matched against it;
// otherwise the two are compared case-insensitively as filenames.
// query must be a literal plugin name, never itself a regex.
func (p PluginMetadata) NameMatches(query string) bool {
	if p.regex != nil {
		return p.regex.MatchString(query)
	}
	return filename.Equal(p.name, query)
}

// Group returns the explicitly-set group name and whether one was set.
func (p PluginMetadata) Group() (string, bool) {
	return p.group, p.groupSet
}

// SetGroup sets the plugin's group.
func (p *PluginMetadata) SetGroup(group string) {
	p.group = group
	p.groupSet = true
}

// UnsetGroup clears any explicitly-set group.
func (p *PluginMetadata) UnsetGroup() {
	p.group = ""
	p.groupSet = false
}

func (p PluginMetadata) LoadAfterFiles() []File         { return p.loadAfter }
func (p PluginMetadata) Requirements() []File           { return p.requirements }
func (p PluginMetadata) Incompatibilities() []File      { return p.incompatibilities }
func (p PluginMetadata) Messages() []Message            { return p.messages }
func (p PluginMetadata) Tags() []Tag                    { return p.tags }
func (p PluginMetadata) DirtyInfo() []PluginCleaningData { return p.dirtyInfo }
func (p PluginMetadata) CleanInfo() []PluginCleaningData { return p.cleanInfo }
func (p PluginMetadata) Locations() []Location          { return p.locations }

func (p *PluginMetadata) SetLoadAfterFiles(files []File)             { p.loadAfter = files }
func (p *PluginMetadata) SetRequirements(files []File)               { p.requirements = files }
func (p *PluginMetadata) SetIncompatibilities(files []File)          { p.incompatibilities = files }
func (p *PluginMetadata) SetMessages(messages []Message)             { p.messages = messages }
func (p *PluginMetadata) SetTags(tags []Tag)                         { p.tags = tags }
func (p *PluginMetadata) SetDirtyInfo(info []PluginCleaningData)     { p.dirtyInfo = info }
func (p *PluginMetadata) SetCleanInfo(info []PluginCleaningData)     { p.cleanInfo = info }
func (p *PluginMetadata) SetLocations(locations []Location)          { p.locations = locations }

// HasNameOnly reports whether no metadata at all is set: the group is
// implicit and every container field is empty.
func (p PluginMetadata) HasNameOnly() bool {
	return !p.groupSet &&
		len(p.loadAfter) == 0 &&
		len(p.requirements) == 0 &&
		len(p.incompatibilities) == 0 &&
		len(p.messages) == 0 &&
		len(p.tags) == 0 &&
		len(p.dirtyInfo) == 0 &&
		len(p.cleanInfo) == 0 &&
		len(p.locations) == 0
}

// Merge merges other's metadata into p: container fields are unioned,
// deduplicating exact-equal elements while preserving order (p's
// elements first, then other's new ones); p's group is replaced by
// other's only if other explicitly set it.
func (p PluginMetadata) Merge(other PluginMetadata) PluginMetadata {
	merged := p

	merged.loadAfter = mergeFiles(p.loadAfter, other.loadAfter)
	merged.requirements = mergeFiles(p.requirements, other.requirements)
	merged.incompatibilities = mergeFiles(p.incompatibilities, other.incompatibilities)
	merged.messages = mergeMessages(p.messages, other.messages)
	merged.tags = mergeTags(p.tags, other.tags)
	merged.dirtyInfo = mergeCleaningData(p.dirtyInfo, other.dirtyInfo)
	merged.cleanInfo = mergeCleaningData(p.cleanInfo, other.cleanInfo)
	merged.locations = mergeLocations(p.locations, other.locations)

	if other.groupSet {
		merged.group = other.group
		merged.groupSet = true
	}

	return merged
}
