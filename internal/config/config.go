package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tanklash/flagwire/internal/flags"
)

var ErrInvalidDefinition = errors.New("config: invalid flag definition")

// FlagDef is one [[flag]] table in a custom flag definition file.
// Enumerated fields are names, parsed case-insensitively; omitted
// fields default to a plain good superflag.
type FlagDef struct {
	Abbrev    string `toml:"abbrev"`
	Name      string `toml:"name"`
	Help      string `toml:"help"`
	Endurance string `toml:"endurance"`
	Quality   string `toml:"quality"`
	Shot      string `toml:"shot"`
	Effect    string `toml:"effect"`
}

type flagFile struct {
	Flags []FlagDef `toml:"flag"`
}

// LoadFlagTypes reads custom flag type definitions from a TOML file.
// The returned descriptors are detached; register them through
// flags.Registry.RegisterCustom.
func LoadFlagTypes(path string) ([]*flags.Type, error) {
	var raw flagFile
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	list := make([]*flags.Type, 0, len(raw.Flags))
	for i, def := range raw.Flags {
		ft, err := buildType(def)
		if err != nil {
			return nil, fmt.Errorf("flag[%d]: %w", i, err)
		}
		list = append(list, ft)
	}
	return list, nil
}

func buildType(def FlagDef) (*flags.Type, error) {
	abbrev := strings.TrimSpace(def.Abbrev)
	name := strings.TrimSpace(def.Name)
	if abbrev == "" {
		return nil, fmt.Errorf("%w: abbrev is required", ErrInvalidDefinition)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidDefinition)
	}

	ft := &flags.Type{
		Name:      name,
		Abbrev:    abbrev,
		Help:      strings.TrimSpace(def.Help),
		Endurance: flags.EnduranceUnstable,
		Quality:   flags.QualityGood,
		Shot:      flags.NormalShot,
		Team:      flags.NoTeam,
		Effect:    flags.EffectNormal,
		Custom:    true,
	}

	if def.Endurance != "" {
		e, ok := flags.ParseEndurance(def.Endurance)
		if !ok {
			return nil, fmt.Errorf("%w: unknown endurance %q", ErrInvalidDefinition, def.Endurance)
		}
		ft.Endurance = e
	}
	if def.Quality != "" {
		q, ok := flags.ParseQuality(def.Quality)
		if !ok {
			return nil, fmt.Errorf("%w: unknown quality %q", ErrInvalidDefinition, def.Quality)
		}
		ft.Quality = q
	}
	if def.Shot != "" {
		k, ok := flags.ParseShotKind(def.Shot)
		if !ok {
			return nil, fmt.Errorf("%w: unknown shot kind %q", ErrInvalidDefinition, def.Shot)
		}
		ft.Shot = k
	}
	if def.Effect != "" {
		e, ok := flags.ParseEffect(def.Effect)
		if !ok {
			return nil, fmt.Errorf("%w: unknown effect %q", ErrInvalidDefinition, def.Effect)
		}
		ft.Effect = e
	}
	return ft, nil
}
