package abi

// EncodeBytes appends a varuint length prefix followed by the raw bytes of
// v (spec §3, §4.3).
func EncodeBytes(v []byte, dst []byte) []byte {
	dst = EncodeVarUint(uint64(len(v)), dst)
	return append(dst, v...)
}

// DecodeBytes reads a length-prefixed byte string from the front of b.
func DecodeBytes(b []byte) ([]byte, int, error) {
	n, prefixLen, err := DecodeVarUint(b)
	if err != nil {
		return nil, 0, err
	}
	total := prefixLen + int(n)
	if err := needLen(b, total); err != nil {
		return nil, 0, err
	}
	out := make([]byte, n)
	copy(out, b[prefixLen:total])
	return out, total, nil
}

// EncodeString appends v's UTF-8 bytes with a varuint length prefix; the
// wire shape is identical to EncodeBytes.
func EncodeString(v string, dst []byte) []byte {
	return EncodeBytes([]byte(v), dst)
}

// DecodeString reads a length-prefixed UTF-8 string from the front of b.
func DecodeString(b []byte) (string, int, error) {
	raw, n, err := DecodeBytes(b)
	if err != nil {
		return "", 0, err
	}
	return string(raw), n, nil
}
