package flags

import (
	"errors"
	"strings"
)

// Record sizes. Big-endian throughout, matching general game-network
// convention.
const (
	// TypePackSize is the compact type reference: the ASCII
	// abbreviation, null-padded to two bytes.
	TypePackSize = 2

	fakeNameSize = 32

	// FakeTypePackSize is the fixed diagnostic record written by
	// AppendFakeType: name, abbreviation, and the five enumerated
	// fields as one byte each.
	FakeTypePackSize = fakeNameSize + TypePackSize + 5
)

var ErrShortRecord = errors.New("flags: short wire record")

// AppendType appends the compact type reference for ft to dst. This is
// the only type overhead an instance update carries; the full
// definition of a custom type travels once per session via
// AppendCustomType.
func AppendType(dst []byte, ft *Type) []byte {
	var ref [TypePackSize]byte
	copy(ref[:], ft.Abbrev)
	return append(dst, ref[:]...)
}

// DecodeType reads a compact type reference from the front of buf and
// resolves it through the registry. An abbreviation the registry does
// not know resolves to UnknownType, never an error: an older client
// must survive references to types it has not learned yet.
func DecodeType(buf []byte, reg *Registry) (*Type, error) {
	if len(buf) < TypePackSize {
		return nil, ErrShortRecord
	}
	abbrev := strings.TrimRight(string(buf[:TypePackSize]), "\x00")
	if abbrev == "" {
		return NullType, nil
	}
	if ft, ok := reg.Lookup(abbrev); ok {
		return ft, nil
	}
	return UnknownType, nil
}

// AppendCustomType appends the full variable-length definition record
// for ft. The server sends it exactly once per custom type, before any
// instance referencing the type.
func AppendCustomType(dst []byte, ft *Type) []byte {
	dst = appendWireString(dst, ft.Abbrev)
	dst = appendWireString(dst, ft.Name)
	dst = appendWireString(dst, ft.Help)
	dst = append(dst, byte(ft.Endurance), byte(ft.Quality), byte(ft.Shot), byte(ft.Team), byte(ft.Effect))
	return dst
}

// DecodeCustomType reads one full definition record from the front of
// buf and returns the decoded descriptor and the number of bytes
// consumed. The descriptor is detached; register it through
// Registry.RegisterCustom to obtain the session singleton.
func DecodeCustomType(buf []byte) (*Type, int, error) {
	offset := 0
	abbrev, n, err := decodeWireString(buf[offset:])
	if err != nil {
		return nil, 0, err
	}
	offset += n
	name, n, err := decodeWireString(buf[offset:])
	if err != nil {
		return nil, 0, err
	}
	offset += n
	help, n, err := decodeWireString(buf[offset:])
	if err != nil {
		return nil, 0, err
	}
	offset += n
	if len(buf)-offset < 5 {
		return nil, 0, ErrShortRecord
	}
	ft := &Type{
		Name:      name,
		Abbrev:    abbrev,
		Help:      help,
		Endurance: Endurance(buf[offset]),
		Quality:   Quality(buf[offset+1]),
		Shot:      ShotKind(buf[offset+2]),
		Team:      TeamColor(buf[offset+3]),
		Effect:    Effect(buf[offset+4]),
		Custom:    true,
	}
	return ft, offset + 5, nil
}

// AppendFakeType appends the fixed-size diagnostic record for ft: a
// self-contained dump readable without any registry. Used for dummy
// display paths only, never resolved back into a live descriptor.
func AppendFakeType(dst []byte, ft *Type) []byte {
	var name [fakeNameSize]byte
	copy(name[:], ft.Name)
	dst = append(dst, name[:]...)
	dst = AppendType(dst, ft)
	dst = append(dst, byte(ft.Endurance), byte(ft.Quality), byte(ft.Shot), byte(ft.Team), byte(ft.Effect))
	return dst
}

// DecodeFakeType reads a diagnostic record into a detached descriptor.
func DecodeFakeType(buf []byte) (*Type, error) {
	if len(buf) < FakeTypePackSize {
		return nil, ErrShortRecord
	}
	return &Type{
		Name:      strings.TrimRight(string(buf[:fakeNameSize]), "\x00"),
		Abbrev:    strings.TrimRight(string(buf[fakeNameSize:fakeNameSize+TypePackSize]), "\x00"),
		Endurance: Endurance(buf[fakeNameSize+TypePackSize]),
		Quality:   Quality(buf[fakeNameSize+TypePackSize+1]),
		Shot:      ShotKind(buf[fakeNameSize+TypePackSize+2]),
		Team:      TeamColor(buf[fakeNameSize+TypePackSize+3]),
		Effect:    Effect(buf[fakeNameSize+TypePackSize+4]),
	}, nil
}

// Wire strings carry a one-byte length prefix; longer values are
// clipped, not rejected.
func appendWireString(dst []byte, s string) []byte {
	if len(s) > 0xff {
		s = s[:0xff]
	}
	dst = append(dst, byte(len(s)))
	return append(dst, s...)
}

func decodeWireString(buf []byte) (string, int, error) {
	if len(buf) < 1 {
		return "", 0, ErrShortRecord
	}
	length := int(buf[0])
	if len(buf)-1 < length {
		return "", 0, ErrShortRecord
	}
	return string(buf[1 : 1+length]), 1 + length, nil
}
