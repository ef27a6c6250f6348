package abi

// VarUint is a base-128, LSB-first variable-length unsigned integer (spec
// §3, §4.2). The reference chain's own encoder emits an unconditional
// first byte before its retry loop; EncodeVarUint below is the leaner,
// bit-identical equivalent flagged as acceptable by spec §9 ("Open
// questions") — both shapes produce the same stream because each always
// writes at least one byte and sets the continuation bit iff bits remain
// after the current 7-bit group.
type VarUint = uint64

// EncodeVarUint appends v to dst using LEB128: the low 7 bits per byte,
// continuation bit 0x80 set iff more bits remain. Zero encodes as a single
// 0x00 byte.
func EncodeVarUint(v uint64, dst []byte) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		dst = append(dst, b)
		if v == 0 {
			return dst
		}
	}
}

// DecodeVarUint reads a VarUint from the front of b, returning the value
// and the number of bytes consumed.
func DecodeVarUint(b []byte) (uint64, int, error) {
	var result uint64
	var shift uint
	cursor := 0
	for {
		if err := needLen(b, cursor+1); err != nil {
			return 0, 0, err
		}
		tmp := b[cursor]
		result |= uint64(tmp&0x7f) << shift
		shift += 7
		cursor++
		if tmp&0x80 == 0 {
			return result, cursor, nil
		}
	}
}
