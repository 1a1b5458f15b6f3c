package flags

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrTypeNil        = errors.New("flags: flag type is nil")
	ErrInvalidAbbrev  = errors.New("flags: invalid abbreviation")
	ErrInvalidName    = errors.New("flags: invalid flag name")
	ErrAbbrevConflict = errors.New("flags: abbreviation already registered")
)

// Registry is the per-session catalog of flag type descriptors. It is
// populated with every built-in type at construction and extended at
// runtime with custom types announced by the server.
//
// The registry does no internal locking: it expects the single-writer
// many-reader model of the session layer, where all mutation happens
// on the thread that processes incoming packets.
type Registry struct {
	byAbbrev map[string]*Type
	custom   map[string]*Type
}

// NewRegistry builds a registry holding all built-in flag types.
// A duplicate built-in abbreviation is a programmer error and panics.
func NewRegistry() *Registry {
	r := &Registry{
		byAbbrev: make(map[string]*Type),
		custom:   make(map[string]*Type),
	}
	for _, ft := range builtinTypes() {
		if _, ok := r.byAbbrev[ft.Abbrev]; ok {
			panic(fmt.Sprintf("flags: duplicate built-in abbreviation %q", ft.Abbrev))
		}
		r.byAbbrev[ft.Abbrev] = ft
	}
	return r
}

// Lookup returns the descriptor registered under abbrev. Unknown input
// is not an error; the second return is false.
func (r *Registry) Lookup(abbrev string) (*Type, bool) {
	ft, ok := r.byAbbrev[abbrev]
	return ft, ok
}

// GoodFlags returns the good superflag descriptors ordered by
// abbreviation. Team flags are excluded.
func (r *Registry) GoodFlags() []*Type {
	return r.byQuality(QualityGood)
}

// BadFlags returns the bad superflag descriptors ordered by
// abbreviation. Team flags are excluded.
func (r *Registry) BadFlags() []*Type {
	return r.byQuality(QualityBad)
}

// CustomFlags returns the custom descriptors ordered by abbreviation.
func (r *Registry) CustomFlags() []*Type {
	list := make([]*Type, 0, len(r.custom))
	for _, ft := range r.custom {
		list = append(list, ft)
	}
	sortByAbbrev(list)
	return list
}

// All returns every registered descriptor ordered by abbreviation.
func (r *Registry) All() []*Type {
	list := make([]*Type, 0, len(r.byAbbrev))
	for _, ft := range r.byAbbrev {
		list = append(list, ft)
	}
	sortByAbbrev(list)
	return list
}

// RegisterCustom adds a dynamically announced flag type. Registration
// is idempotent by abbreviation: re-registering an identical
// definition returns the existing singleton. A conflicting definition
// under a live abbreviation is rejected.
func (r *Registry) RegisterCustom(ft *Type) (*Type, error) {
	if ft == nil {
		return nil, ErrTypeNil
	}
	if err := validateAbbrev(ft.Abbrev); err != nil {
		return nil, err
	}
	if ft.Name == "" {
		return nil, fmt.Errorf("%w: custom type %q has no name", ErrInvalidName, ft.Abbrev)
	}
	if existing, ok := r.byAbbrev[ft.Abbrev]; ok {
		if existing.Custom && sameDefinition(existing, ft) {
			return existing, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrAbbrevConflict, ft.Abbrev)
	}

	def := *ft
	def.Custom = true
	r.byAbbrev[def.Abbrev] = &def
	r.custom[def.Abbrev] = &def
	return &def, nil
}

// ClearCustom removes every custom descriptor, e.g. when leaving a
// server. Callers must drop all instances referencing custom types
// first; an instance still holding a cleared descriptor keeps it alive
// but the registry will no longer resolve its abbreviation.
func (r *Registry) ClearCustom() {
	for abbrev := range r.custom {
		delete(r.byAbbrev, abbrev)
		delete(r.custom, abbrev)
	}
}

func (r *Registry) byQuality(q Quality) []*Type {
	list := make([]*Type, 0, len(r.byAbbrev))
	for _, ft := range r.byAbbrev {
		if ft.Team != NoTeam || ft.Quality != q {
			continue
		}
		list = append(list, ft)
	}
	sortByAbbrev(list)
	return list
}

func validateAbbrev(abbrev string) error {
	if len(abbrev) == 0 || len(abbrev) > TypePackSize {
		return fmt.Errorf("%w: %q", ErrInvalidAbbrev, abbrev)
	}
	for i := 0; i < len(abbrev); i++ {
		c := abbrev[i]
		if c == 0 || c > 0x7f {
			return fmt.Errorf("%w: %q", ErrInvalidAbbrev, abbrev)
		}
	}
	return nil
}

func sortByAbbrev(list []*Type) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].Abbrev < list[j].Abbrev
	})
}
