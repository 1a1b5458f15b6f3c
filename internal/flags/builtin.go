package flags

// Built-in flag types. Every peer compiles the same table, so the
// registry contents are identical across the network without any
// handshake; only custom types need announcing.

func teamFlag(name, abbrev string, team TeamColor, help string) *Type {
	return &Type{
		Name:      name,
		Abbrev:    abbrev,
		Help:      help,
		Endurance: EnduranceNormal,
		Quality:   QualityGood,
		Shot:      NormalShot,
		Team:      team,
		Effect:    EffectNormal,
	}
}

func goodFlag(name, abbrev string, shot ShotKind, effect Effect, help string) *Type {
	return &Type{
		Name:      name,
		Abbrev:    abbrev,
		Help:      help,
		Endurance: EnduranceUnstable,
		Quality:   QualityGood,
		Shot:      shot,
		Team:      NoTeam,
		Effect:    effect,
	}
}

func badFlag(name, abbrev string, effect Effect, help string) *Type {
	return &Type{
		Name:      name,
		Abbrev:    abbrev,
		Help:      help,
		Endurance: EnduranceSticky,
		Quality:   QualityBad,
		Shot:      NormalShot,
		Team:      NoTeam,
		Effect:    effect,
	}
}

const teamFlagHelp = "If it's yours, prevent other teams from taking it. If it's not, take it to your base to capture it!"

func builtinTypes() []*Type {
	return []*Type{
		teamFlag("Red Team", "R*", RedTeam, teamFlagHelp),
		teamFlag("Green Team", "G*", GreenTeam, teamFlagHelp),
		teamFlag("Blue Team", "B*", BlueTeam, teamFlagHelp),
		teamFlag("Purple Team", "P*", PurpleTeam, teamFlagHelp),

		goodFlag("High Speed", "V", NormalShot, EffectVelocity,
			"Tank moves faster. Outrun bad guys."),
		goodFlag("Quick Turn", "QT", NormalShot, EffectQuickTurn,
			"Tank turns faster. Good for dodging."),
		goodFlag("Oscillation Overthruster", "OO", NormalShot, EffectOscillationOverthruster,
			"Can drive through buildings. Can't back up or shoot while inside."),
		goodFlag("Rapid Fire", "F", SpecialShot, EffectRapidFire,
			"Shoots more often. Shells go faster but not as far."),
		goodFlag("Machine Gun", "MG", SpecialShot, EffectMachineGun,
			"Very fast reload and very short range."),
		goodFlag("Guided Missile", "GM", SpecialShot, EffectGuidedMissile,
			"Shots track a target. Can lock on or retarget after firing."),
		goodFlag("Laser", "L", SpecialShot, EffectLaser,
			"Shoots a laser. Infinite speed and range but long reload time."),
		goodFlag("Ricochet", "R", SpecialShot, EffectRicochet,
			"Shots bounce off walls. Don't shoot yourself!"),
		goodFlag("Super Bullet", "SB", SpecialShot, EffectSuperBullet,
			"Shoots through buildings. Can kill phantom zoned tanks."),
		goodFlag("Invisible Bullet", "IB", SpecialShot, EffectInvisibleBullet,
			"Your shots don't appear on other radars. Still visible out the window."),
		goodFlag("Stealth", "ST", NormalShot, EffectStealth,
			"Tank is invisible on radar. Shots are still visible. Sneak up behind enemies!"),
		goodFlag("Tiny", "T", NormalShot, EffectTiny,
			"Tank is small and can get through small openings. Very hard to hit."),
		goodFlag("Narrow", "N", NormalShot, EffectNarrow,
			"Tank is super thin. Very hard to hit from the front. Can get through small openings."),
		goodFlag("Shield", "SH", NormalShot, EffectShield,
			"Getting hit only drops the flag. The flag flies an extra long time."),
		goodFlag("Steamroller", "SR", NormalShot, EffectSteamroller,
			"Destroys tanks you touch, but you have to get really close."),
		goodFlag("Shock Wave", "SW", SpecialShot, EffectShockWave,
			"Firing destroys all tanks nearby. Don't get too close."),
		goodFlag("Phantom Zone", "PZ", NormalShot, EffectPhantomZone,
			"Teleporting toggles the zoned effect. A zoned tank can drive through buildings."),
		goodFlag("Jumping", "JP", NormalShot, EffectJumping,
			"Tank can jump. Can't steer in the air."),
		goodFlag("Identify", "ID", NormalShot, EffectIdentify,
			"Identifies the type of the nearest flag."),
		goodFlag("Cloaking", "CL", NormalShot, EffectCloaking,
			"Makes your tank invisible out the window. Still visible on radar."),
		goodFlag("Useless", "US", NormalShot, EffectUseless,
			"You have found the fabled Useless Flag. Use it wisely."),
		goodFlag("Masquerade", "MQ", NormalShot, EffectMasquerade,
			"In opponents' views you appear as a teammate."),
		goodFlag("Seer", "SE", NormalShot, EffectSeer,
			"See stealthed, cloaked and masquerading tanks as normal."),
		goodFlag("Thief", "TH", SpecialShot, EffectThief,
			"Steal flags. Small and fast but can't kill."),
		goodFlag("Burrow", "BU", NormalShot, EffectBurrow,
			"Tank burrows underground, impervious to normal shots, but can be steamrolled by anyone!"),
		goodFlag("Wings", "WG", NormalShot, EffectWings,
			"Tank can drive in the air."),
		goodFlag("Agility", "A", NormalShot, EffectAgility,
			"Tank is quick and nimble, making it easier to dodge."),

		badFlag("Colorblindness", "CB", EffectColorblindness,
			"Can't tell team colors. Don't shoot teammates!"),
		badFlag("Obesity", "O", EffectObesity,
			"Tank becomes very large. Can't fit through teleporters."),
		badFlag("Left Turn Only", "LT", EffectLeftTurnOnly,
			"Can't turn right."),
		badFlag("Right Turn Only", "RT", EffectRightTurnOnly,
			"Can't turn left."),
		badFlag("Forward Only", "FO", EffectForwardOnly,
			"Can't drive in reverse."),
		badFlag("Reverse Only", "RO", EffectReverseOnly,
			"Can only drive in reverse."),
		badFlag("Momentum", "M", EffectMomentum,
			"Tank has inertia. Acceleration is limited."),
		badFlag("Blindness", "B", EffectBlindness,
			"Can't see out the window. Radar still works."),
		badFlag("Jamming", "JM", EffectJamming,
			"Radar doesn't work. Can still see out the window."),
		badFlag("Wide Angle", "WA", EffectWideAngle,
			"Fish-eye lens distorts the view."),
		badFlag("No Jumping", "NJ", EffectNoJumping,
			"Tank can't jump."),
		badFlag("Trigger Happy", "TR", EffectTriggerHappy,
			"Tank can't stop firing."),
		badFlag("Reverse Controls", "RC", EffectReverseControls,
			"Driving controls are reversed."),
		badFlag("Bouncy", "BY", EffectBouncy,
			"Tank can't stop bouncing."),
	}
}
