package abi

import (
	"encoding/binary"
	"math"
)

// Fixed-width integer and IEEE-754 float codecs (spec §3, §4.3). Every
// value is little-endian, matching the chain's wire format exactly; there
// is no room for interpretation here, so these are thin wrappers around
// encoding/binary.

func EncodeU8(v uint8, dst []byte) []byte { return append(dst, v) }

func DecodeU8(b []byte) (uint8, int, error) {
	if err := needLen(b, 1); err != nil {
		return 0, 0, err
	}
	return b[0], 1, nil
}

func EncodeU16(v uint16, dst []byte) []byte {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	return append(dst, buf[:]...)
}

func DecodeU16(b []byte) (uint16, int, error) {
	if err := needLen(b, 2); err != nil {
		return 0, 0, err
	}
	return binary.LittleEndian.Uint16(b[:2]), 2, nil
}

func EncodeU32(v uint32, dst []byte) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return append(dst, buf[:]...)
}

func DecodeU32(b []byte) (uint32, int, error) {
	if err := needLen(b, 4); err != nil {
		return 0, 0, err
	}
	return binary.LittleEndian.Uint32(b[:4]), 4, nil
}

func EncodeU64(v uint64, dst []byte) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return append(dst, buf[:]...)
}

func DecodeU64(b []byte) (uint64, int, error) {
	if err := needLen(b, 8); err != nil {
		return 0, 0, err
	}
	return binary.LittleEndian.Uint64(b[:8]), 8, nil
}

func EncodeI8(v int8, dst []byte) []byte { return EncodeU8(uint8(v), dst) }

func DecodeI8(b []byte) (int8, int, error) {
	v, n, err := DecodeU8(b)
	return int8(v), n, err
}

func EncodeI16(v int16, dst []byte) []byte { return EncodeU16(uint16(v), dst) }

func DecodeI16(b []byte) (int16, int, error) {
	v, n, err := DecodeU16(b)
	return int16(v), n, err
}

func EncodeI32(v int32, dst []byte) []byte { return EncodeU32(uint32(v), dst) }

func DecodeI32(b []byte) (int32, int, error) {
	v, n, err := DecodeU32(b)
	return int32(v), n, err
}

func EncodeI64(v int64, dst []byte) []byte { return EncodeU64(uint64(v), dst) }

func DecodeI64(b []byte) (int64, int, error) {
	v, n, err := DecodeU64(b)
	return int64(v), n, err
}

func EncodeF32(v float32, dst []byte) []byte { return EncodeU32(math.Float32bits(v), dst) }

func DecodeF32(b []byte) (float32, int, error) {
	v, n, err := DecodeU32(b)
	return math.Float32frombits(v), n, err
}

func EncodeF64(v float64, dst []byte) []byte { return EncodeU64(math.Float64bits(v), dst) }

func DecodeF64(b []byte) (float64, int, error) {
	v, n, err := DecodeU64(b)
	return math.Float64frombits(v), n, err
}
