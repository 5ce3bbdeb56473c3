// Package plugin defines the parser capability set the sorting core
// depends on without depending on any concrete plugin-binary parser,
// plus a simple in-memory implementation used by tests and by the
// CLI's fixture-backed loader.
package plugin

// Provider is the parser interface the sorting core consumes. It is
// implemented by a real plugin-binary parser (out of scope here) or by
// Fixture (fixture.go) for tests and CLI demos. The core only ever calls
// the methods listed here.
type Provider interface {
	Name() string
	Masters() []string
	IsMaster() bool
	IsLightPlugin() bool
	IsMediumPlugin() bool
	IsBlueprintPlugin() bool
	OverrideRecordCount() int
	RecordAndGroupCount() int
	RecordsOverlap(other Provider) bool
	AssetCount() int
	AssetsOverlap(other Provider) bool
	OverlapSize(others []Provider) int
	Version() string
	CRC() uint32
	BashTags() []string
}
