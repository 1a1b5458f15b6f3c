package flags

import (
	"fmt"
	"strings"
)

// Type describes one flag type, like "GM" or "CL". A Type is immutable
// after construction: the registry holds the only canonical copy of
// each type and everything else references it by pointer. Instances
// must never deep-copy a Type.
type Type struct {
	Name      string
	Abbrev    string
	Help      string
	Endurance Endurance
	Quality   Quality
	Shot      ShotKind
	Team      TeamColor
	Effect    Effect
	Custom    bool
}

// Sentinel descriptors shared by every registry. Neither is reachable
// through Lookup; they stand for "no flag" and "type this peer has not
// learned yet".
var (
	NullType = &Type{Name: "", Abbrev: ""}

	UnknownType = &Type{
		Name:   "Unknown",
		Abbrev: "??",
		Help:   "Flag type not recognized by this client.",
	}
)

// Label returns the display name with the abbreviation letters
// capitalized in place, so the player can see where the short code
// comes from. When the abbreviation letters do not all occur in order
// in the name, the abbreviation is appended instead.
func (ft *Type) Label() string {
	abbrev := strings.ToUpper(ft.Abbrev)
	var b strings.Builder
	next := 0
	for _, c := range ft.Name {
		upper := strings.ToUpper(string(c))
		if next < len(abbrev) && upper == string(abbrev[next]) {
			b.WriteString(upper)
			next++
			continue
		}
		b.WriteRune(c)
	}
	if next < len(abbrev) {
		return fmt.Sprintf("%s (%s)", ft.Name, ft.Abbrev)
	}
	return b.String()
}

// Information returns "name ([+|-]abbrev): help" where + and - mark
// the type as inherently good or bad.
func (ft *Type) Information() string {
	sign := "+"
	if ft.Quality == QualityBad {
		sign = "-"
	}
	return fmt.Sprintf("%s (%s%s): %s", ft.Name, sign, ft.Abbrev, ft.Help)
}

// Color returns the RGBA color of the flag object. Team flags use
// their team color; superflags are white.
func (ft *Type) Color() [4]float32 {
	switch ft.Team {
	case RedTeam:
		return [4]float32{1, 0, 0, 1}
	case GreenTeam:
		return [4]float32{0, 1, 0, 1}
	case BlueTeam:
		return [4]float32{0.1, 0.2, 1, 1}
	case PurpleTeam:
		return [4]float32{1, 0, 1, 1}
	default:
		return [4]float32{1, 1, 1, 1}
	}
}

// RadarColor returns the color the flag shows on radar. Bad superflags
// dim to keep the radar readable; everything else matches Color.
func (ft *Type) RadarColor() [4]float32 {
	if ft.Team == NoTeam && ft.Quality == QualityBad {
		return [4]float32{0.35, 0.35, 0.35, 1}
	}
	return ft.Color()
}

// sameDefinition reports whether two descriptors define the same flag
// type, ignoring the Custom marker.
func sameDefinition(a, b *Type) bool {
	return a.Name == b.Name &&
		a.Abbrev == b.Abbrev &&
		a.Help == b.Help &&
		a.Endurance == b.Endurance &&
		a.Quality == b.Quality &&
		a.Shot == b.Shot &&
		a.Team == b.Team &&
		a.Effect == b.Effect
}
