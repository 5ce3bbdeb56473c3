package game

import "strings"

// StripGhostSuffix removes a trailing ".ghost" suffix from an on-disk
// filename to recover a plugin's identity name, except under OpenMW,
// which does not use the ".ghost" convention at all.
func (t Type) StripGhostSuffix(diskName string) string {
	if t.IsOpenMW() {
		return diskName
	}
	const suffix = ".ghost"
	if strings.HasSuffix(strings.ToLower(diskName), suffix) {
		return diskName[:len(diskName)-len(suffix)]
	}
	return diskName
}

// lightExtension is the extension a light plugin is permitted to use
// on games that support them, other than ".esp".
const lightExtension = ".esl"

// IsLightExtension reports whether ext (including the leading dot) is
// the light-plugin extension on this game.
func (t Type) IsLightExtension(ext string) bool {
	return t.HasLightPlugins() && strings.EqualFold(ext, lightExtension)
}
