package hexmap

// PlayerID identifies a seat at the table.
type PlayerID int

// Stage is a plant's growth stage. Stages advance one at a time and stop at
// StageLarge.
type Stage int

// Growth stages, in order.
const (
	StageSeed Stage = iota
	StageSmall
	StageMedium
	StageLarge
)

// Next returns the following growth stage, or false at StageLarge.
func (s Stage) Next() (Stage, bool) {
	if s >= StageLarge {
		return s, false
	}
	return s + 1, true
}

// LightValue returns the light points an unshadowed plant of this stage
// earns per sun phase.
func (s Stage) LightValue() int {
	switch s {
	case StageSmall:
		return 1
	case StageMedium:
		return 2
	case StageLarge:
		return 3
	default:
		return 0
	}
}

func (s Stage) String() string {
	switch s {
	case StageSeed:
		return "seed"
	case StageSmall:
		return "small"
	case StageMedium:
		return "medium"
	case StageLarge:
		return "large"
	default:
		return "Stage(?)"
	}
}

// Plant is a single plant: who owns it and how grown it is. A plant belongs
// exclusively to the cell holding it.
type Plant struct {
	Owner PlayerID
	Stage Stage
}
