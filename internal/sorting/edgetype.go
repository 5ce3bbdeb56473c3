package sorting

// EdgeType identifies why one plugin must load before another. Values
// are ordered by the priority the original design assigns them (lower
// added earlier, never overridden by a later phase), though the phases
// that add them run in the order runPartition calls them, not in this
// numeric order.
type EdgeType int

const (
	Hardcoded EdgeType = iota
	MasterFlag
	Master
	MasterlistRequirement
	UserRequirement
	MasterlistLoadAfter
	UserLoadAfter
	Group
	Overlap
	TieBreak
)

// String returns the human-readable label used in log messages and in
// CyclicInteractionError's text.
func (t EdgeType) String() string {
	switch t {
	case Hardcoded:
		return "Hardcoded"
	case MasterFlag:
		return "Master Flag"
	case Master:
		return "Master"
	case MasterlistRequirement:
		return "Masterlist Requirement"
	case UserRequirement:
		return "User Requirement"
	case MasterlistLoadAfter:
		return "Masterlist Load After"
	case UserLoadAfter:
		return "User Load After"
	case Group:
		return "Group"
	case Overlap:
		return "Overlap"
	case TieBreak:
		return "Tie Break"
	default:
		return "Unknown"
	}
}
