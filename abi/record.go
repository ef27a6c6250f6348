package abi

import "time"

// The record shapes below mirror the closed schema in spec §3. Each type
// carries an Encode method (fields in declaration order) and a matching
// free DecodeXxx function, so record-to-record composition (e.g.
// Authority.Keys holding KeyWeight) reads the same way call sites already
// read primitive fields.

// PermissionLevel identifies an account/permission pair authorizing an
// action.
type PermissionLevel struct {
	Actor      Name
	Permission Name
}

func (p PermissionLevel) Encode(dst []byte) []byte {
	dst, _ = EncodeName(p.Actor, dst)
	dst, _ = EncodeName(p.Permission, dst)
	return dst
}

func DecodePermissionLevel(b []byte) (PermissionLevel, int, error) {
	actor, n1, err := DecodeName(b)
	if err != nil {
		return PermissionLevel{}, 0, err
	}
	permission, n2, err := DecodeName(b[n1:])
	if err != nil {
		return PermissionLevel{}, 0, err
	}
	return PermissionLevel{Actor: actor, Permission: permission}, n1 + n2, nil
}

// KeyWeight pairs an already-encoded compressed public key with its
// multisig weight. Key holds wire-ready bytes (the key package's
// caller is expected to have encoded the point already).
type KeyWeight struct {
	Key    []byte
	Weight uint16
}

func (k KeyWeight) Encode(dst []byte) []byte {
	dst = EncodeBytes(k.Key, dst)
	dst = EncodeU16(k.Weight, dst)
	return dst
}

func DecodeKeyWeight(b []byte) (KeyWeight, int, error) {
	key, n1, err := DecodeBytes(b)
	if err != nil {
		return KeyWeight{}, 0, err
	}
	weight, n2, err := DecodeU16(b[n1:])
	if err != nil {
		return KeyWeight{}, 0, err
	}
	return KeyWeight{Key: key, Weight: weight}, n1 + n2, nil
}

// PermissionLevelWeight pairs a permission level with its multisig
// weight, used in Authority.Accounts.
type PermissionLevelWeight struct {
	Permission PermissionLevel
	Weight     uint16
}

func (p PermissionLevelWeight) Encode(dst []byte) []byte {
	dst = p.Permission.Encode(dst)
	dst = EncodeU16(p.Weight, dst)
	return dst
}

func DecodePermissionLevelWeight(b []byte) (PermissionLevelWeight, int, error) {
	permission, n1, err := DecodePermissionLevel(b)
	if err != nil {
		return PermissionLevelWeight{}, 0, err
	}
	weight, n2, err := DecodeU16(b[n1:])
	if err != nil {
		return PermissionLevelWeight{}, 0, err
	}
	return PermissionLevelWeight{Permission: permission, Weight: weight}, n1 + n2, nil
}

// WaitWeight pairs a delay, in seconds, with its multisig weight.
type WaitWeight struct {
	WaitSec uint32
	Weight  uint16
}

func (w WaitWeight) Encode(dst []byte) []byte {
	dst = EncodeU32(w.WaitSec, dst)
	dst = EncodeU16(w.Weight, dst)
	return dst
}

func DecodeWaitWeight(b []byte) (WaitWeight, int, error) {
	wait, n1, err := DecodeU32(b)
	if err != nil {
		return WaitWeight{}, 0, err
	}
	weight, n2, err := DecodeU16(b[n1:])
	if err != nil {
		return WaitWeight{}, 0, err
	}
	return WaitWeight{WaitSec: wait, Weight: weight}, n1 + n2, nil
}

// Authority is a weighted threshold of keys, accounts and delays. A
// freshly built Authority should set Threshold to 1 unless it genuinely
// needs a higher bar (spec default).
type Authority struct {
	Threshold uint32
	Keys      []KeyWeight
	Accounts  []PermissionLevelWeight
	Waits     []WaitWeight
}

func (a Authority) Encode(dst []byte) []byte {
	dst = EncodeU32(a.Threshold, dst)
	dst = EncodeSequence(a.Keys, dst, func(d []byte, k KeyWeight) []byte { return k.Encode(d) })
	dst = EncodeSequence(a.Accounts, dst, func(d []byte, p PermissionLevelWeight) []byte { return p.Encode(d) })
	dst = EncodeSequence(a.Waits, dst, func(d []byte, w WaitWeight) []byte { return w.Encode(d) })
	return dst
}

func DecodeAuthority(b []byte) (Authority, int, error) {
	threshold, cursor, err := DecodeU32(b)
	if err != nil {
		return Authority{}, 0, err
	}
	keys, n, err := DecodeSequence(b[cursor:], DecodeKeyWeight)
	if err != nil {
		return Authority{}, 0, err
	}
	cursor += n
	accounts, n, err := DecodeSequence(b[cursor:], DecodePermissionLevelWeight)
	if err != nil {
		return Authority{}, 0, err
	}
	cursor += n
	waits, n, err := DecodeSequence(b[cursor:], DecodeWaitWeight)
	if err != nil {
		return Authority{}, 0, err
	}
	cursor += n
	return Authority{Threshold: threshold, Keys: keys, Accounts: accounts, Waits: waits}, cursor, nil
}

// Action is a single contract invocation: the target account and action
// name, its authorizing permission levels, and its payload.
type Action struct {
	Account        Name
	Name           Name
	Authorization  []PermissionLevel
	Data           ActionPayload
}

// Encode serializes the action. Data must already be raw_bytes or
// record; an unresolved_map payload fails fast per spec §4.4.
func (a Action) Encode(dst []byte) ([]byte, error) {
	dst, _ = EncodeName(a.Account, dst)
	dst, _ = EncodeName(a.Name, dst)
	dst = EncodeSequence(a.Authorization, dst, func(d []byte, p PermissionLevel) []byte { return p.Encode(d) })

	payload, err := a.Data.bytes(string(a.Account), string(a.Name))
	if err != nil {
		return nil, err
	}
	dst = EncodeBytes(payload, dst)
	return dst, nil
}

// DecodeAction reads an action, leaving Data as a raw_bytes payload: the
// schema of an arbitrary contract action is not known to this library
// (spec §4.4).
func DecodeAction(b []byte) (Action, int, error) {
	account, cursor, err := DecodeName(b)
	if err != nil {
		return Action{}, 0, err
	}
	name, n, err := DecodeName(b[cursor:])
	if err != nil {
		return Action{}, 0, err
	}
	cursor += n

	auth, n, err := DecodeSequence(b[cursor:], DecodePermissionLevel)
	if err != nil {
		return Action{}, 0, err
	}
	cursor += n

	data, n, err := DecodeBytes(b[cursor:])
	if err != nil {
		return Action{}, 0, err
	}
	cursor += n

	return Action{Account: account, Name: name, Authorization: auth, Data: RawActionPayload(data)}, cursor, nil
}

// Extension is a forward-compatibility slot: a type tag plus opaque
// payload bytes.
type Extension struct {
	ExtensionType uint16
	Data          []byte
}

func (e Extension) Encode(dst []byte) []byte {
	dst = EncodeU16(e.ExtensionType, dst)
	dst = EncodeBytes(e.Data, dst)
	return dst
}

func DecodeExtension(b []byte) (Extension, int, error) {
	extType, n1, err := DecodeU16(b)
	if err != nil {
		return Extension{}, 0, err
	}
	data, n2, err := DecodeBytes(b[n1:])
	if err != nil {
		return Extension{}, 0, err
	}
	return Extension{ExtensionType: extType, Data: data}, n1 + n2, nil
}

// Transaction is the top-level record the signing pipeline serializes
// and digests.
type Transaction struct {
	Expiration           time.Time
	RefBlockNum          uint16
	RefBlockPrefix       uint32
	MaxNetUsageWords     uint64
	MaxCPUUsageMS        uint8
	DelaySec             uint64
	ContextFreeActions   []Action
	Actions              []Action
	TransactionExtensions []Extension
}

// Encode serializes the transaction. Any unresolved_map action payload
// fails fast; the signing pipeline is responsible for resolving those
// before calling Encode.
func (t Transaction) Encode(dst []byte) ([]byte, error) {
	dst = EncodeTimePointSec(t.Expiration, dst)
	dst = EncodeU16(t.RefBlockNum, dst)
	dst = EncodeU32(t.RefBlockPrefix, dst)
	dst = EncodeVarUint(t.MaxNetUsageWords, dst)
	dst = EncodeU8(t.MaxCPUUsageMS, dst)
	dst = EncodeVarUint(t.DelaySec, dst)

	dst, err := encodeActionSequence(t.ContextFreeActions, dst)
	if err != nil {
		return nil, err
	}
	dst, err = encodeActionSequence(t.Actions, dst)
	if err != nil {
		return nil, err
	}
	dst = EncodeSequence(t.TransactionExtensions, dst, func(d []byte, e Extension) []byte { return e.Encode(d) })
	return dst, nil
}

// encodeActionSequence is EncodeSequence specialised for Action, whose
// Encode method can itself fail (unresolved_map payload).
func encodeActionSequence(actions []Action, dst []byte) ([]byte, error) {
	dst = EncodeVarUint(uint64(len(actions)), dst)
	for _, a := range actions {
		var err error
		dst, err = a.Encode(dst)
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func DecodeTransaction(b []byte) (Transaction, int, error) {
	expiration, cursor, err := DecodeTimePointSec(b)
	if err != nil {
		return Transaction{}, 0, err
	}
	refBlockNum, n, err := DecodeU16(b[cursor:])
	if err != nil {
		return Transaction{}, 0, err
	}
	cursor += n

	refBlockPrefix, n, err := DecodeU32(b[cursor:])
	if err != nil {
		return Transaction{}, 0, err
	}
	cursor += n

	maxNetUsageWords, n, err := DecodeVarUint(b[cursor:])
	if err != nil {
		return Transaction{}, 0, err
	}
	cursor += n

	maxCPUUsageMS, n, err := DecodeU8(b[cursor:])
	if err != nil {
		return Transaction{}, 0, err
	}
	cursor += n

	delaySec, n, err := DecodeVarUint(b[cursor:])
	if err != nil {
		return Transaction{}, 0, err
	}
	cursor += n

	contextFreeActions, n, err := DecodeSequence(b[cursor:], DecodeAction)
	if err != nil {
		return Transaction{}, 0, err
	}
	cursor += n

	actions, n, err := DecodeSequence(b[cursor:], DecodeAction)
	if err != nil {
		return Transaction{}, 0, err
	}
	cursor += n

	extensions, n, err := DecodeSequence(b[cursor:], DecodeExtension)
	if err != nil {
		return Transaction{}, 0, err
	}
	cursor += n

	return Transaction{
		Expiration:            expiration,
		RefBlockNum:           refBlockNum,
		RefBlockPrefix:        refBlockPrefix,
		MaxNetUsageWords:      maxNetUsageWords,
		MaxCPUUsageMS:         maxCPUUsageMS,
		DelaySec:              delaySec,
		ContextFreeActions:    contextFreeActions,
		Actions:               actions,
		TransactionExtensions: extensions,
	}, cursor, nil
}
