package key

import (
	"crypto/subtle"
	"errors"
)

var (
	errShortPayload     = errors.New("key: base58check payload shorter than checksum")
	errNoPrivateScalar  = errors.New("key: public_only key has no private scalar")
	errBadPayloadLen    = errors.New("key: base58check payload has the wrong length")
	errBadSignatureLen  = errors.New("key: signature payload has the wrong length")
	errUnknownTag       = errors.New("key: unrecognised key-type tag")
)

// constantTimeEqual reports whether a and b are equal using a
// constant-time comparison (spec §4.7: checksum verification must be
// constant with respect to the supplied checksum bytes).
func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
