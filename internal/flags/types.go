package flags

import "strings"

// Status says where a flag instance currently is. Wire ordinals are
// frozen; renumbering breaks protocol compatibility.
type Status uint8

const (
	// StatusNone means the flag is not present in the world.
	StatusNone Status = iota
	// StatusOnGround means the flag is on the ground and can be picked up.
	StatusOnGround
	// StatusCarried means a tank is carrying the flag.
	StatusCarried
	// StatusInFlight means the flag is falling through the air.
	StatusInFlight
	// StatusComing means the flag is entering the world.
	StatusComing
	// StatusGoing means the flag is leaving the world.
	StatusGoing
)

func (s Status) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusOnGround:
		return "ground"
	case StatusCarried:
		return "carried"
	case StatusInFlight:
		return "flight"
	case StatusComing:
		return "coming"
	case StatusGoing:
		return "going"
	default:
		return "invalid"
	}
}

// Endurance says whether a flag type is droppable and what happens to
// the flag when it is dropped.
type Endurance uint8

const (
	// EnduranceNormal flags are permanent and freely droppable.
	EnduranceNormal Endurance = iota
	// EnduranceUnstable flags disappear after one use.
	EnduranceUnstable
	// EnduranceSticky flags cannot be dropped voluntarily.
	EnduranceSticky
)

func (e Endurance) String() string {
	switch e {
	case EnduranceNormal:
		return "normal"
	case EnduranceUnstable:
		return "unstable"
	case EnduranceSticky:
		return "sticky"
	default:
		return "invalid"
	}
}

// ParseEndurance maps a config-file name to an Endurance.
func ParseEndurance(raw string) (Endurance, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "normal":
		return EnduranceNormal, true
	case "unstable":
		return EnduranceUnstable, true
	case "sticky":
		return EnduranceSticky, true
	default:
		return EnduranceNormal, false
	}
}

// Quality classifies a flag type as inherently good or bad. It does
// not gate endurance.
type Quality uint8

const (
	QualityGood Quality = iota
	QualityBad
)

func (q Quality) String() string {
	if q == QualityBad {
		return "bad"
	}
	return "good"
}

// ParseQuality maps a config-file name to a Quality.
func ParseQuality(raw string) (Quality, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "good":
		return QualityGood, true
	case "bad":
		return QualityBad, true
	default:
		return QualityGood, false
	}
}

// ShotKind says whether carrying the flag grants a modified shot.
type ShotKind uint8

const (
	NormalShot ShotKind = iota
	SpecialShot
)

func (k ShotKind) String() string {
	if k == SpecialShot {
		return "special"
	}
	return "normal"
}

// ParseShotKind maps a config-file name to a ShotKind.
func ParseShotKind(raw string) (ShotKind, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "normal":
		return NormalShot, true
	case "special":
		return SpecialShot, true
	default:
		return NormalShot, false
	}
}

// TeamColor is the team affiliation of a team flag. Superflags carry
// NoTeam.
type TeamColor uint8

const (
	NoTeam TeamColor = iota
	RedTeam
	GreenTeam
	BlueTeam
	PurpleTeam
)

func (t TeamColor) String() string {
	switch t {
	case RedTeam:
		return "red"
	case GreenTeam:
		return "green"
	case BlueTeam:
		return "blue"
	case PurpleTeam:
		return "purple"
	default:
		return "none"
	}
}

// PlayerID identifies the tank carrying a flag.
type PlayerID uint8

// NoPlayer marks a flag with no carrier.
const NoPlayer PlayerID = 0xff
