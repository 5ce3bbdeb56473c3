package game

// hardcodedPlugins holds each game's implicitly-active plugins, the
// ones LOOT's own get_implicitly_active_plugins() would report: base
// game masters and official/creation-club content the engine loads at
// a fixed position regardless of any load-order file. This is a
// reasonable default set, not an exhaustive DLC catalogue; a real
// installation's actual list depends on what's present on disk and
// belongs in the caller's own configuration, not hardcoded here.
var hardcodedPlugins = map[Type][]string{
	Morrowind: {"Morrowind.esm"},
	OpenMW:    {},
	Oblivion:  {"Oblivion.esm"},
	OblivionRemastered: {
		"Oblivion.esm", "DLCBattlehornCastle.esp", "DLCFrostcrag.esp",
		"DLCHorseArmor.esp", "DLCMehrunesRazor.esp", "DLCOrrery.esp",
		"DLCShiveringIsles.esp", "DLCThievesDen.esp", "DLCVileLair.esp",
		"Knights.esp",
	},
	Skyrim:   {"Skyrim.esm", "Update.esm"},
	SkyrimSE: {"Skyrim.esm", "Update.esm", "Dawnguard.esm", "HearthFires.esm", "Dragonborn.esm"},
	SkyrimVR: {"Skyrim.esm", "Update.esm", "Dawnguard.esm", "HearthFires.esm", "Dragonborn.esm", "SkyrimVR.esm"},
	Fallout3: {"Fallout3.esm"},
	FalloutNV: {
		"FalloutNV.esm", "DeadMoney.esm", "HonestHearts.esm",
		"OldWorldBlues.esm", "LonesomeRoad.esm", "GunRunnersArsenal.esm",
	},
	Fallout4:   {"Fallout4.esm", "DLCRobot.esm", "DLCworkshop01.esm", "DLCCoast.esm", "DLCworkshop02.esm", "DLCworkshop03.esm", "DLCNukaWorld.esm"},
	Fallout4VR: {"Fallout4.esm", "Fallout4_VR.esp"},
	Starfield:  {"Starfield.esm", "Constellation.esm", "OldMars.esm", "SFBGS003.esm", "SFBGS006.esm", "SFBGS007.esm", "SFBGS008.esm"},
}

// HardcodedPlugins returns t's default implicitly-active plugin list.
// The returned slice is owned by the caller; mutating it does not
// affect future calls.
func HardcodedPlugins(t Type) []string {
	src := hardcodedPlugins[t]
	out := make([]string, len(src))
	copy(out, src)
	return out
}
