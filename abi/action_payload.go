package abi

import eoserr "github.com/r3e-go/eosiogo/internal/errors"

// payloadKind distinguishes the three action_payload variants (spec §3,
// §4.4, §9 "Action payload as a tagged union").
type payloadKind uint8

const (
	payloadRawBytes payloadKind = iota
	payloadRecord
	payloadUnresolvedMap
)

// Encodable is satisfied by every record type the codec knows how to
// serialize (Authority, PermissionLevel, ...). A record-shaped action
// payload stores one of these via a closure rather than a type tag, which
// is the "function pointer stored with the payload" option the design
// notes call out for re-dispatching to the correct record codec without
// runtime reflection.
type Encodable interface {
	Encode(dst []byte) []byte
}

// ActionPayload is the tagged union carried by Action.Data: already-encoded
// raw bytes, a typed record pending encoding, or a dict-shaped mapping that
// has not yet been translated by the remote oracle.
type ActionPayload struct {
	kind    payloadKind
	raw     []byte
	encode  func(dst []byte) []byte
	mapping map[string]any
}

// RawActionPayload wraps an already-serialized opaque payload.
func RawActionPayload(data []byte) ActionPayload {
	return ActionPayload{kind: payloadRawBytes, raw: data}
}

// RecordActionPayload wraps a typed record to be serialized in place when
// the action itself is encoded.
func RecordActionPayload[T Encodable](record T) ActionPayload {
	return ActionPayload{
		kind: payloadRecord,
		encode: func(dst []byte) []byte {
			return record.Encode(dst)
		},
	}
}

// UnresolvedActionPayload wraps a dict-shaped mapping awaiting translation
// by the remote oracle (signer package's pipeline step 1). The codec must
// never see this variant.
func UnresolvedActionPayload(mapping map[string]any) ActionPayload {
	return ActionPayload{kind: payloadUnresolvedMap, mapping: mapping}
}

// IsUnresolved reports whether this payload still needs oracle translation.
func (p ActionPayload) IsUnresolved() bool {
	return p.kind == payloadUnresolvedMap
}

// Mapping returns the dict-shaped payload and true, if this is an
// unresolved_map payload.
func (p ActionPayload) Mapping() (map[string]any, bool) {
	if p.kind != payloadUnresolvedMap {
		return nil, false
	}
	return p.mapping, true
}

// bytes returns this payload's bytes without a length prefix: raw bytes
// as stored, or a typed record serialized first. Action.Encode adds the
// varuint length prefix via EncodeBytes (spec §4.4). An unresolved_map
// payload is a programmer error at this layer.
func (p ActionPayload) bytes(accountHint, nameHint string) ([]byte, error) {
	switch p.kind {
	case payloadRawBytes:
		return p.raw, nil
	case payloadRecord:
		return p.encode(nil), nil
	default:
		return nil, eoserr.UnresolvedActionPayload(accountHint, nameHint)
	}
}
