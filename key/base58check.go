// Package key implements secp256k1 key material: generation, the two
// private-key text formats, compressed public-key text, and RFC-6979
// deterministic signing with canonical-signature and recovery-parameter
// derivation.
package key

import (
	"crypto/sha256"

	"github.com/mr-tron/base58/base58"
	"golang.org/x/crypto/ripemd160"

	eoserr "github.com/r3e-go/eosiogo/internal/errors"
)

const checksumLen = 4

// sha256x2Checksum is the legacy WIF checksum: the first 4 bytes of
// SHA-256(SHA-256(payload)).
func sha256x2Checksum(payload []byte) []byte {
	h1 := sha256.Sum256(payload)
	h2 := sha256.Sum256(h1[:])
	return h2[:checksumLen]
}

// ripemd160Checksum is the tagged-format checksum: the first 4 bytes of
// RIPEMD-160 over payload followed by the ASCII key-type tag (e.g.
// "K1"). EOS public keys pass an empty tag.
func ripemd160Checksum(payload []byte, tag string) []byte {
	h := ripemd160.New()
	h.Write(payload)
	h.Write([]byte(tag))
	return h.Sum(nil)[:checksumLen]
}

// encodeChecksummed base58-encodes payload with its checksum appended.
func encodeChecksummed(payload, checksum []byte) string {
	buf := make([]byte, 0, len(payload)+len(checksum))
	buf = append(buf, payload...)
	buf = append(buf, checksum...)
	return base58.Encode(buf)
}

// decodeChecksummed base58-decodes s and splits payload from its
// trailing 4-byte checksum, verifying it against checksumOf(payload).
// Checksum comparison happens over fixed-length 4-byte slices so there
// is no early-exit timing signal to observe.
func decodeChecksummed(s string, checksumOf func([]byte) []byte) ([]byte, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, eoserr.MalformedKeyText(err)
	}
	if len(raw) <= checksumLen {
		return nil, eoserr.MalformedKeyText(errShortPayload)
	}

	split := len(raw) - checksumLen
	payload, gotChecksum := raw[:split], raw[split:]
	wantChecksum := checksumOf(payload)

	if !constantTimeEqual(gotChecksum, wantChecksum) {
		return nil, eoserr.ChecksumMismatch()
	}
	return payload, nil
}
