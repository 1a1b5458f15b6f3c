package flags

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalTransition = errors.New("flags: illegal status transition")
	ErrStickyFlag        = errors.New("flags: sticky flag cannot be dropped")
)

// Instance is one flag live in a match. It references its Type by
// pointer; the descriptor is shared, never copied. Endurance is copied
// from the type at grab time so a later registry change cannot alter a
// flag already in play.
//
// Position is authoritative only while the flag is on the ground or
// carried; during flight the match loop derives it from the launch
// scalars. Owner is meaningful only while carried. The match loop owns
// the clock and physics; this type only validates transitions.
type Instance struct {
	Type      *Type
	Status    Status
	Endurance Endurance
	Owner     PlayerID

	Position        [3]float32
	LaunchPosition  [3]float32
	LandingPosition [3]float32
	FlightTime      float32
	FlightEnd       float32
	InitialVelocity float32
}

// NewInstance returns a not-present instance of the given type. A nil
// type resolves to the NullType sentinel.
func NewInstance(ft *Type) *Instance {
	if ft == nil {
		ft = NullType
	}
	return &Instance{
		Type:      ft,
		Status:    StatusNone,
		Endurance: ft.Endurance,
		Owner:     NoPlayer,
	}
}

// legal status transitions:
//
//	None -> Coming -> OnGround <-> Carried
//	OnGround <-> InFlight, Carried -> InFlight
//	Carried -> None (captured or expended)
//	OnGround -> Going -> None
func (s Status) canTransition(to Status) bool {
	switch s {
	case StatusNone:
		return to == StatusComing
	case StatusComing:
		return to == StatusOnGround
	case StatusOnGround:
		return to == StatusCarried || to == StatusInFlight || to == StatusGoing
	case StatusCarried:
		return to == StatusOnGround || to == StatusInFlight || to == StatusNone
	case StatusInFlight:
		return to == StatusOnGround
	case StatusGoing:
		return to == StatusNone
	default:
		return false
	}
}

// SetStatus performs a validated transition for externally driven
// phases (spawn, despawn, capture). State is untouched on rejection.
func (fi *Instance) SetStatus(to Status) error {
	if !fi.Status.canTransition(to) {
		return transitionError(fi.Status, to)
	}
	fi.Status = to
	if to == StatusNone || to == StatusGoing {
		fi.Owner = NoPlayer
	}
	return nil
}

// Grab marks the flag as carried by owner and copies the type
// endurance into the instance.
func (fi *Instance) Grab(owner PlayerID) error {
	if !fi.Status.canTransition(StatusCarried) {
		return transitionError(fi.Status, StatusCarried)
	}
	fi.Status = StatusCarried
	fi.Owner = owner
	fi.Endurance = fi.Type.Endurance
	return nil
}

// Drop puts a carried flag back on the ground. A sticky flag rejects
// the request; whether the caller may force the matter anyway is
// gameplay policy, not decided here.
func (fi *Instance) Drop() error {
	if fi.Status != StatusCarried {
		return transitionError(fi.Status, StatusOnGround)
	}
	if fi.Endurance == EnduranceSticky {
		return fmt.Errorf("%w: %q", ErrStickyFlag, fi.Type.Abbrev)
	}
	fi.Status = StatusOnGround
	fi.Owner = NoPlayer
	return nil
}

// Launch sends the flag into the air, from a drop or an explosion.
// Flight scalars are recorded; the match loop drives the clock.
func (fi *Instance) Launch(from, to [3]float32, velocity, duration float32) error {
	if !fi.Status.canTransition(StatusInFlight) {
		return transitionError(fi.Status, StatusInFlight)
	}
	fi.Status = StatusInFlight
	fi.Owner = NoPlayer
	fi.LaunchPosition = from
	fi.LandingPosition = to
	fi.InitialVelocity = velocity
	fi.FlightTime = 0
	fi.FlightEnd = duration
	return nil
}

// Land grounds an in-flight flag at its landing position.
func (fi *Instance) Land() error {
	if fi.Status != StatusInFlight {
		return transitionError(fi.Status, StatusOnGround)
	}
	fi.Status = StatusOnGround
	fi.Position = fi.LandingPosition
	fi.FlightTime = fi.FlightEnd
	return nil
}

func transitionError(from, to Status) error {
	return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
}
