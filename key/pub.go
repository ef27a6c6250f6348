package key

import (
	"strings"

	eoserr "github.com/r3e-go/eosiogo/internal/errors"
)

const eosPrefix = "EOS"

// ExportPublic renders the key's compressed public point as an
// EOS<...> string: base58-check with a RIPEMD-160 checksum and no tag
// suffix (spec §4.7).
func (k *Key) ExportPublic() string {
	compressed := k.PublicBytes()
	checksum := ripemd160Checksum(compressed, "")
	return eosPrefix + encodeChecksummed(compressed, checksum)
}

// ImportPublic parses an EOS<...> public-key string.
func ImportPublic(s string) (*Key, error) {
	body, ok := strings.CutPrefix(s, eosPrefix)
	if !ok {
		return nil, eoserr.MalformedKeyText(errUnknownTag)
	}

	payload, err := decodeChecksummed(body, func(p []byte) []byte { return ripemd160Checksum(p, "") })
	if err != nil {
		return nil, err
	}
	if len(payload) != 33 {
		return nil, eoserr.MalformedKeyText(errBadPayloadLen)
	}
	k, err := fromPublicBytes(payload)
	if err != nil {
		return nil, eoserr.MalformedKeyText(err)
	}
	return k, nil
}
