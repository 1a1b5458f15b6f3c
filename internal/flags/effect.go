package flags

import "strings"

// Effect tags the gameplay effect a flag type grants its carrier. The
// tag is stored and transmitted by this package but never interpreted
// here; gameplay code owns the semantics. Wire ordinals are frozen.
type Effect uint8

const (
	EffectNormal Effect = iota
	EffectVelocity
	EffectQuickTurn
	EffectOscillationOverthruster
	EffectRapidFire
	EffectMachineGun
	EffectGuidedMissile
	EffectLaser
	EffectRicochet
	EffectSuperBullet
	EffectInvisibleBullet
	EffectStealth
	EffectTiny
	EffectNarrow
	EffectShield
	EffectSteamroller
	EffectShockWave
	EffectPhantomZone
	EffectJumping
	EffectIdentify
	EffectCloaking
	EffectUseless
	EffectMasquerade
	EffectSeer
	EffectThief
	EffectBurrow
	EffectWings
	EffectAgility
	EffectColorblindness
	EffectObesity
	EffectLeftTurnOnly
	EffectRightTurnOnly
	EffectForwardOnly
	EffectReverseOnly
	EffectMomentum
	EffectBlindness
	EffectJamming
	EffectWideAngle
	EffectNoJumping
	EffectTriggerHappy
	EffectReverseControls
	EffectBouncy
	EffectNoShot

	effectCount
)

var effectNames = [effectCount]string{
	EffectNormal:                  "normal",
	EffectVelocity:                "velocity",
	EffectQuickTurn:               "quick_turn",
	EffectOscillationOverthruster: "oscillation_overthruster",
	EffectRapidFire:               "rapid_fire",
	EffectMachineGun:              "machine_gun",
	EffectGuidedMissile:           "guided_missile",
	EffectLaser:                   "laser",
	EffectRicochet:                "ricochet",
	EffectSuperBullet:             "super_bullet",
	EffectInvisibleBullet:         "invisible_bullet",
	EffectStealth:                 "stealth",
	EffectTiny:                    "tiny",
	EffectNarrow:                  "narrow",
	EffectShield:                  "shield",
	EffectSteamroller:             "steamroller",
	EffectShockWave:               "shock_wave",
	EffectPhantomZone:             "phantom_zone",
	EffectJumping:                 "jumping",
	EffectIdentify:                "identify",
	EffectCloaking:                "cloaking",
	EffectUseless:                 "useless",
	EffectMasquerade:              "masquerade",
	EffectSeer:                    "seer",
	EffectThief:                   "thief",
	EffectBurrow:                  "burrow",
	EffectWings:                   "wings",
	EffectAgility:                 "agility",
	EffectColorblindness:          "colorblindness",
	EffectObesity:                 "obesity",
	EffectLeftTurnOnly:            "left_turn_only",
	EffectRightTurnOnly:           "right_turn_only",
	EffectForwardOnly:             "forward_only",
	EffectReverseOnly:             "reverse_only",
	EffectMomentum:                "momentum",
	EffectBlindness:               "blindness",
	EffectJamming:                 "jamming",
	EffectWideAngle:               "wide_angle",
	EffectNoJumping:               "no_jumping",
	EffectTriggerHappy:            "trigger_happy",
	EffectReverseControls:         "reverse_controls",
	EffectBouncy:                  "bouncy",
	EffectNoShot:                  "no_shot",
}

func (e Effect) String() string {
	if e >= effectCount {
		return "invalid"
	}
	return effectNames[e]
}

// Valid reports whether e is a member of the closed effect set.
func (e Effect) Valid() bool {
	return e < effectCount
}

// ParseEffect maps a config-file name to an Effect.
func ParseEffect(raw string) (Effect, bool) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for i, n := range effectNames {
		if n == name {
			return Effect(i), true
		}
	}
	return EffectNormal, false
}
