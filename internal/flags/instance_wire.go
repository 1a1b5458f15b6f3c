package flags

import (
	"encoding/binary"
	"math"
)

// InstancePackSize is the fixed instance record: type reference,
// status, endurance, owner, three position vectors, and the three
// flight scalars as IEEE-754 singles.
const InstancePackSize = TypePackSize + 1 + 1 + 1 + 3*12 + 3*4

// Pack appends the instance record to dst.
func (fi *Instance) Pack(dst []byte) []byte {
	return fi.pack(dst, fi.Type)
}

// FakePack appends the instance record with the type reference
// replaced by UnknownType, hiding the real type from clients that are
// not entitled to it. When to obfuscate is server policy; this codec
// only guarantees the type-erased record on request.
func (fi *Instance) FakePack(dst []byte) []byte {
	return fi.pack(dst, UnknownType)
}

func (fi *Instance) pack(dst []byte, ft *Type) []byte {
	rec := make([]byte, 0, InstancePackSize)
	rec = AppendType(rec, ft)
	rec = append(rec, byte(fi.Status), byte(fi.Endurance), byte(fi.Owner))
	rec = appendVec(rec, fi.Position)
	rec = appendVec(rec, fi.LaunchPosition)
	rec = appendVec(rec, fi.LandingPosition)
	rec = appendFloat(rec, fi.FlightTime)
	rec = appendFloat(rec, fi.FlightEnd)
	rec = appendFloat(rec, fi.InitialVelocity)
	return append(dst, rec...)
}

// Unpack overwrites fi from the front of buf, resolving the type
// through the registry. It is a pure transcoder: only the buffer
// length is checked, never transition legality. Validating the
// resulting status against the machine is the session layer's job.
func (fi *Instance) Unpack(buf []byte, reg *Registry) error {
	if len(buf) < InstancePackSize {
		return ErrShortRecord
	}
	ft, err := DecodeType(buf, reg)
	if err != nil {
		return err
	}
	fi.Type = ft
	fi.Status = Status(buf[TypePackSize])
	fi.Endurance = Endurance(buf[TypePackSize+1])
	fi.Owner = PlayerID(buf[TypePackSize+2])
	offset := TypePackSize + 3
	fi.Position, offset = decodeVec(buf, offset)
	fi.LaunchPosition, offset = decodeVec(buf, offset)
	fi.LandingPosition, offset = decodeVec(buf, offset)
	fi.FlightTime, offset = decodeFloat(buf, offset)
	fi.FlightEnd, offset = decodeFloat(buf, offset)
	fi.InitialVelocity, _ = decodeFloat(buf, offset)
	return nil
}

func appendVec(dst []byte, v [3]float32) []byte {
	dst = appendFloat(dst, v[0])
	dst = appendFloat(dst, v[1])
	return appendFloat(dst, v[2])
}

func appendFloat(dst []byte, f float32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], math.Float32bits(f))
	return append(dst, b[:]...)
}

func decodeVec(buf []byte, offset int) ([3]float32, int) {
	var v [3]float32
	v[0], offset = decodeFloat(buf, offset)
	v[1], offset = decodeFloat(buf, offset)
	v[2], offset = decodeFloat(buf, offset)
	return v, offset
}

func decodeFloat(buf []byte, offset int) (float32, int) {
	return math.Float32frombits(binary.BigEndian.Uint32(buf[offset : offset+4])), offset + 4
}
