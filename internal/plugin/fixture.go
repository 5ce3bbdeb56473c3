package plugin

// Fixture is a Provider backed entirely by in-memory data: a list of
// override-record identifiers and asset paths, rather than a real
// parsed plugin binary. It backs tests and the CLI's fixture loader,
// so `lootsort sort` has something to sort without a real BSA/ESP
// parser linked in.
type Fixture struct {
	NameStr     string
	MastersList []string
	MasterFlag  bool
	Light       bool
	Medium      bool
	Blueprint   bool

	// Records lists the override-record identifiers this plugin
	// contains. Two fixtures overlap if they share any identifier.
	Records []string

	// GroupCount is added to len(Records) for RecordAndGroupCount,
	// modelling the header/group overhead a real parser would report
	// alongside record counts.
	GroupCount int

	// Assets lists the asset paths this plugin's paired archive
	// loads. Two fixtures overlap if they share any path.
	Assets []string

	VersionStr string
	CRCValue   uint32
	Tags       []string
}

var _ Provider = (*Fixture)(nil)

func (f *Fixture) Name() string            { return f.NameStr }
func (f *Fixture) Masters() []string       { return f.MastersList }
func (f *Fixture) IsMaster() bool          { return f.MasterFlag }
func (f *Fixture) IsLightPlugin() bool     { return f.Light }
func (f *Fixture) IsMediumPlugin() bool    { return f.Medium }
func (f *Fixture) IsBlueprintPlugin() bool { return f.Blueprint }
func (f *Fixture) OverrideRecordCount() int {
	return len(f.Records)
}
func (f *Fixture) RecordAndGroupCount() int {
	return len(f.Records) + f.GroupCount
}
func (f *Fixture) AssetCount() int { return len(f.Assets) }
func (f *Fixture) Version() string { return f.VersionStr }
func (f *Fixture) CRC() uint32     { return f.CRCValue }
func (f *Fixture) BashTags() []string {
	return f.Tags
}

func (f *Fixture) RecordsOverlap(other Provider) bool {
	o, ok := other.(*Fixture)
	if !ok {
		return false
	}
	return anyCommon(f.Records, o.Records)
}

func (f *Fixture) AssetsOverlap(other Provider) bool {
	o, ok := other.(*Fixture)
	if !ok {
		return false
	}
	return anyCommon(f.Assets, o.Assets)
}

// OverlapSize returns the number of this plugin's override records
// that also appear in the combined record sets of others. It backs
// the Morrowind/OpenMW fallback for override-record counting, which
// measures overlap against a plugin's declared masters rather than
// trusting a header-reported count.
func (f *Fixture) OverlapSize(others []Provider) int {
	union := make(map[string]struct{})
	for _, o := range others {
		fx, ok := o.(*Fixture)
		if !ok {
			continue
		}
		for _, r := range fx.Records {
			union[r] = struct{}{}
		}
	}

	count := 0
	for _, r := range f.Records {
		if _, ok := union[r]; ok {
			count++
		}
	}
	return count
}

func anyCommon(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	for _, v := range b {
		if _, ok := set[v]; ok {
			return true
		}
	}
	return false
}
