package flags

import (
	"errors"
	"testing"

	"github.com/tanklash/flagwire/internal/testutil/testlog"
)

func TestTypeRoundTripIsIdentity(t *testing.T) {
	testlog.Start(t)
	r := NewRegistry()
	for _, ft := range r.All() {
		buf := AppendType(nil, ft)
		if len(buf) != TypePackSize {
			t.Fatalf("%q: packed %d bytes, want %d", ft.Abbrev, len(buf), TypePackSize)
		}
		got, err := DecodeType(buf, r)
		if err != nil {
			t.Fatalf("%q: decode: %v", ft.Abbrev, err)
		}
		if got != ft {
			t.Fatalf("%q: decode returned a different descriptor pointer", ft.Abbrev)
		}
	}
}

func TestDecodeTypeUnknownAbbreviation(t *testing.T) {
	testlog.Start(t)
	r := NewRegistry()
	got, err := DecodeType([]byte{'z', 'z'}, r)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != UnknownType {
		t.Fatalf("expected UnknownType sentinel, got %+v", got)
	}
}

func TestDecodeTypeNullReference(t *testing.T) {
	testlog.Start(t)
	r := NewRegistry()
	got, err := DecodeType([]byte{0, 0}, r)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != NullType {
		t.Fatalf("expected NullType sentinel, got %+v", got)
	}
}

func TestDecodeTypeShortBuffer(t *testing.T) {
	testlog.Start(t)
	r := NewRegistry()
	if _, err := DecodeType([]byte{'V'}, r); !errors.Is(err, ErrShortRecord) {
		t.Fatalf("expected ErrShortRecord, got %v", err)
	}
}

func TestSingleCharAbbreviationPadding(t *testing.T) {
	testlog.Start(t)
	r := NewRegistry()
	v, _ := r.Lookup("V")
	buf := AppendType(nil, v)
	if buf[0] != 'V' || buf[1] != 0 {
		t.Fatalf("expected null padding, got % x", buf)
	}
	got, err := DecodeType(buf, r)
	if err != nil || got != v {
		t.Fatalf("padded reference did not round-trip: %v %p", err, got)
	}
}

func TestCustomTypeRoundTrip(t *testing.T) {
	testlog.Start(t)
	in := customVanish()
	buf := AppendCustomType(nil, in)
	out, n, err := DecodeCustomType(buf)
	if err != nil {
		t.Fatalf("decode custom: %v", err)
	}
	if n != len(buf) {
		t.Fatalf("consumed %d of %d bytes", n, len(buf))
	}
	if !sameDefinition(in, out) {
		t.Fatalf("custom definition changed in transit:\n in=%+v\nout=%+v", in, out)
	}
	if !out.Custom {
		t.Fatalf("decoded definition not marked custom")
	}
}

func TestCustomTypeAnnounceThenReference(t *testing.T) {
	testlog.Start(t)
	server := NewRegistry()
	client := NewRegistry()

	canonical, err := server.RegisterCustom(customVanish())
	if err != nil {
		t.Fatalf("server register: %v", err)
	}

	// Announcement travels once; every later reference is two bytes.
	announce := AppendCustomType(nil, canonical)
	def, _, err := DecodeCustomType(announce)
	if err != nil {
		t.Fatalf("client decode: %v", err)
	}
	learned, err := client.RegisterCustom(def)
	if err != nil {
		t.Fatalf("client register: %v", err)
	}

	ref := AppendType(nil, canonical)
	got, err := DecodeType(ref, client)
	if err != nil {
		t.Fatalf("client resolve: %v", err)
	}
	if got != learned {
		t.Fatalf("reference resolved to a non-singleton descriptor")
	}
}

func TestDecodeCustomTypeTruncated(t *testing.T) {
	testlog.Start(t)
	buf := AppendCustomType(nil, customVanish())
	for _, n := range []int{0, 1, 5, len(buf) - 1} {
		if _, _, err := DecodeCustomType(buf[:n]); !errors.Is(err, ErrShortRecord) {
			t.Fatalf("len=%d: expected ErrShortRecord, got %v", n, err)
		}
	}
}

func TestFakeTypeRecord(t *testing.T) {
	testlog.Start(t)
	r := NewRegistry()
	gm, _ := r.Lookup("GM")
	buf := AppendFakeType(nil, gm)
	if len(buf) != FakeTypePackSize {
		t.Fatalf("fake record is %d bytes, want %d", len(buf), FakeTypePackSize)
	}
	out, err := DecodeFakeType(buf)
	if err != nil {
		t.Fatalf("decode fake: %v", err)
	}
	if out.Name != gm.Name || out.Abbrev != gm.Abbrev || out.Effect != gm.Effect {
		t.Fatalf("fake record mangled descriptor: %+v", out)
	}
	if _, err := DecodeFakeType(buf[:FakeTypePackSize-1]); !errors.Is(err, ErrShortRecord) {
		t.Fatalf("expected ErrShortRecord, got %v", err)
	}
}
