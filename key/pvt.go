package key

import (
	"strings"

	eoserr "github.com/r3e-go/eosiogo/internal/errors"
)

const (
	pvtPrefix   = "PVT_"
	defaultTag  = "K1"
	scalarBytes = 32
)

// ExportPVT renders the key's private scalar as a tagged PVT_K1_...
// string: base58-check of the raw scalar with a RIPEMD-160 checksum
// over scalar||tag (spec §4.7).
func (k *Key) ExportPVT() (string, error) {
	if k.PublicOnly() {
		return "", eoserr.MalformedKeyText(errNoPrivateScalar)
	}
	scalar := k.priv.Serialize()
	checksum := ripemd160Checksum(scalar, defaultTag)
	return pvtPrefix + defaultTag + "_" + encodeChecksummed(scalar, checksum), nil
}

// ImportPVT parses a tagged PVT_<tag>_<...> private-key string.
func ImportPVT(s string) (*Key, error) {
	rest, ok := strings.CutPrefix(s, pvtPrefix)
	if !ok {
		return nil, eoserr.MalformedKeyText(errUnknownTag)
	}
	tag, body, ok := strings.Cut(rest, "_")
	if !ok {
		return nil, eoserr.MalformedKeyText(errUnknownTag)
	}

	payload, err := decodeChecksummed(body, func(p []byte) []byte { return ripemd160Checksum(p, tag) })
	if err != nil {
		return nil, err
	}
	if len(payload) != scalarBytes {
		return nil, eoserr.MalformedKeyText(errBadPayloadLen)
	}
	return fromPrivateScalar(payload), nil
}
