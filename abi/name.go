package abi

import (
	"strings"

	eoserr "github.com/r3e-go/eosiogo/internal/errors"
)

// Name is an up-to-13-character account/action identifier packed into 64
// bits (spec §3, §4.1).
type Name string

const nameAlphabet = ".12345abcdefghijklmnopqrstuvwxyz"

// EncodeName packs n into a little-endian uint64 and appends it to dst.
func EncodeName(n Name, dst []byte) ([]byte, error) {
	s := string(n)
	if len(s) > 13 {
		return nil, eoserr.NameTooLong(s)
	}

	var packed uint64
	limit := len(s)
	if limit > 12 {
		limit = 12
	}
	for i := 0; i < limit; i++ {
		idx := strings.IndexByte(nameAlphabet, s[i])
		if idx < 0 {
			return nil, eoserr.NameBadCharacter(s)
		}
		packed |= uint64(idx&0x1f) << (64 - 5*uint(i+1))
	}
	if len(s) > 12 {
		idx := strings.IndexByte(nameAlphabet, s[12])
		if idx < 0 {
			return nil, eoserr.NameBadCharacter(s)
		}
		packed |= uint64(idx & 0x0f)
	}

	return EncodeU64(packed, dst), nil
}

// DecodeName reads a packed Name from the front of b.
func DecodeName(b []byte) (Name, int, error) {
	packed, n, err := DecodeU64(b)
	if err != nil {
		return "", 0, err
	}

	var chars [13]byte
	value := packed
	for i := 12; i >= 0; i-- {
		var mask uint64 = 0x1f
		shift := uint(5)
		if i == 12 {
			mask = 0x0f
			shift = 4
		}
		chars[i] = nameAlphabet[value&mask]
		value >>= shift
	}

	return Name(strings.TrimRight(string(chars[:]), ".")), n, nil
}
