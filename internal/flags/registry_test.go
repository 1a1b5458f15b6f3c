package flags

import (
	"errors"
	"testing"

	"github.com/tanklash/flagwire/internal/testutil/testlog"
)

func customVanish() *Type {
	return &Type{
		Name:      "Vanish",
		Abbrev:    "VN",
		Help:      "Tank fades from view while holding this flag.",
		Endurance: EnduranceUnstable,
		Quality:   QualityGood,
		Shot:      NormalShot,
		Team:      NoTeam,
		Effect:    EffectCloaking,
	}
}

func TestRegistryAbbreviationsUnique(t *testing.T) {
	testlog.Start(t)
	r := NewRegistry()
	seen := map[string]string{}
	for _, ft := range r.All() {
		if prev, ok := seen[ft.Abbrev]; ok {
			t.Fatalf("abbreviation %q used by both %q and %q", ft.Abbrev, prev, ft.Name)
		}
		seen[ft.Abbrev] = ft.Name
	}
}

func TestLookupReturnsCanonicalDescriptor(t *testing.T) {
	testlog.Start(t)
	r := NewRegistry()
	gm, ok := r.Lookup("GM")
	if !ok {
		t.Fatalf("GM not registered")
	}
	if gm.Name != "Guided Missile" || gm.Shot != SpecialShot {
		t.Fatalf("unexpected GM descriptor: %+v", gm)
	}
	again, _ := r.Lookup("GM")
	if again != gm {
		t.Fatalf("lookup returned a different pointer for the same abbreviation")
	}
}

func TestLookupUnknownAbbreviation(t *testing.T) {
	testlog.Start(t)
	r := NewRegistry()
	if _, ok := r.Lookup("zz"); ok {
		t.Fatalf("expected unknown abbreviation to miss")
	}
}

func TestGoodBadPartitionExcludesTeamFlags(t *testing.T) {
	testlog.Start(t)
	r := NewRegistry()
	for _, ft := range r.GoodFlags() {
		if ft.Team != NoTeam {
			t.Fatalf("team flag %q in good set", ft.Abbrev)
		}
		if ft.Quality != QualityGood {
			t.Fatalf("bad flag %q in good set", ft.Abbrev)
		}
	}
	for _, ft := range r.BadFlags() {
		if ft.Team != NoTeam || ft.Quality != QualityBad {
			t.Fatalf("unexpected flag %q in bad set", ft.Abbrev)
		}
	}
	if len(r.GoodFlags()) == 0 || len(r.BadFlags()) == 0 {
		t.Fatalf("partition empty: good=%d bad=%d", len(r.GoodFlags()), len(r.BadFlags()))
	}
}

func TestRegisterCustomIdempotent(t *testing.T) {
	testlog.Start(t)
	r := NewRegistry()
	before := len(r.CustomFlags())

	first, err := r.RegisterCustom(customVanish())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !first.Custom {
		t.Fatalf("registered descriptor not marked custom")
	}
	second, err := r.RegisterCustom(customVanish())
	if err != nil {
		t.Fatalf("re-register: %v", err)
	}
	if first != second {
		t.Fatalf("idempotent registration returned a different singleton")
	}
	if got := len(r.CustomFlags()); got != before+1 {
		t.Fatalf("custom set grew by %d, want 1", got-before)
	}
}

func TestRegisterCustomConflicts(t *testing.T) {
	testlog.Start(t)
	r := NewRegistry()
	if _, err := r.RegisterCustom(nil); !errors.Is(err, ErrTypeNil) {
		t.Fatalf("expected ErrTypeNil, got %v", err)
	}

	redefined := customVanish()
	if _, err := r.RegisterCustom(customVanish()); err != nil {
		t.Fatalf("register: %v", err)
	}
	redefined.Effect = EffectStealth
	if _, err := r.RegisterCustom(redefined); !errors.Is(err, ErrAbbrevConflict) {
		t.Fatalf("expected ErrAbbrevConflict for redefinition, got %v", err)
	}

	builtinClash := customVanish()
	builtinClash.Abbrev = "GM"
	if _, err := r.RegisterCustom(builtinClash); !errors.Is(err, ErrAbbrevConflict) {
		t.Fatalf("expected ErrAbbrevConflict with built-in, got %v", err)
	}
}

func TestRegisterCustomValidation(t *testing.T) {
	testlog.Start(t)
	r := NewRegistry()

	noName := customVanish()
	noName.Name = ""
	if _, err := r.RegisterCustom(noName); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}

	for _, abbrev := range []string{"", "ABC", "A\x00"} {
		bad := customVanish()
		bad.Abbrev = abbrev
		if _, err := r.RegisterCustom(bad); !errors.Is(err, ErrInvalidAbbrev) {
			t.Fatalf("abbrev %q: expected ErrInvalidAbbrev, got %v", abbrev, err)
		}
	}
}

func TestClearCustom(t *testing.T) {
	testlog.Start(t)
	r := NewRegistry()
	if _, err := r.RegisterCustom(customVanish()); err != nil {
		t.Fatalf("register: %v", err)
	}
	builtins := len(r.All()) - 1

	r.ClearCustom()
	if _, ok := r.Lookup("VN"); ok {
		t.Fatalf("cleared custom abbreviation still resolves")
	}
	if len(r.CustomFlags()) != 0 {
		t.Fatalf("custom set not empty after clear")
	}
	if got := len(r.All()); got != builtins {
		t.Fatalf("clear touched built-ins: %d types left, want %d", got, builtins)
	}
}
