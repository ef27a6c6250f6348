package key

import eoserr "github.com/r3e-go/eosiogo/internal/errors"

const wifVersion = 0x80

// ExportWIF renders the key's private scalar as a legacy WIF string:
// base58-check of 0x80||scalar with a sha256x2 checksum (spec §4.7).
func (k *Key) ExportWIF() (string, error) {
	if k.PublicOnly() {
		return "", eoserr.MalformedKeyText(errNoPrivateScalar)
	}
	payload := make([]byte, 0, 33)
	payload = append(payload, wifVersion)
	payload = append(payload, k.priv.Serialize()...)
	return encodeChecksummed(payload, sha256x2Checksum(payload)), nil
}

// ImportWIF parses a legacy WIF string into a Key.
func ImportWIF(s string) (*Key, error) {
	payload, err := decodeChecksummed(s, sha256x2Checksum)
	if err != nil {
		return nil, err
	}
	if len(payload) != 33 {
		return nil, eoserr.MalformedKeyText(errBadPayloadLen)
	}
	if payload[0] != wifVersion {
		return nil, eoserr.BadVersion(payload[0])
	}
	return fromPrivateScalar(payload[1:]), nil
}
