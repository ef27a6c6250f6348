package abi

import eoserr "github.com/r3e-go/eosiogo/internal/errors"

// Kind identifies the category of wire codec a declared ABI type name
// resolves to (spec §4.6). There is a closed, small set of kinds, so
// dispatch is a plain switch rather than a reflective walk.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindPrimitive
	KindSequence
	KindRecord
)

// TypeSpec is the result of resolving a declared field type name: its
// Kind, and, for KindSequence, the element type name to resolve next.
type TypeSpec struct {
	Kind    Kind
	Elem    string
	Primary string
}

// primitiveTypeNames enumerates every primitive this codec can emit or
// consume. Types named in the non-goals (128-bit int/float, asset/symbol,
// checksums, embedded keys) are deliberately absent: resolving one of
// those names must fail with unsupported_type rather than guess at a
// layout.
var primitiveTypeNames = map[string]struct{}{
	"u8": {}, "u16": {}, "u32": {}, "u64": {},
	"i8": {}, "i16": {}, "i32": {}, "i64": {},
	"f32": {}, "f64": {},
	"varuint":         {},
	"name":            {},
	"bytes":           {},
	"string":          {},
	"time_point_sec":  {},
	"time_point":      {},
}

// recordTypeNames enumerates the closed set of record schemas this
// library knows (spec §3).
var recordTypeNames = map[string]struct{}{
	"permission_level":        {},
	"key_weight":              {},
	"permission_level_weight": {},
	"wait_weight":             {},
	"authority":               {},
	"action":                  {},
	"extension":               {},
	"transaction":             {},
}

// ResolveType classifies a declared ABI type name. "T[]" resolves to a
// KindSequence TypeSpec whose Elem is "T"; anything else is looked up
// directly against the primitive and record tables.
func ResolveType(declared string) (TypeSpec, error) {
	if n := len(declared); n >= 2 && declared[n-2:] == "[]" {
		elem := declared[:n-2]
		if _, err := ResolveType(elem); err != nil {
			return TypeSpec{}, err
		}
		return TypeSpec{Kind: KindSequence, Elem: elem}, nil
	}

	if _, ok := primitiveTypeNames[declared]; ok {
		return TypeSpec{Kind: KindPrimitive, Primary: declared}, nil
	}
	if _, ok := recordTypeNames[declared]; ok {
		return TypeSpec{Kind: KindRecord, Primary: declared}, nil
	}
	return TypeSpec{}, eoserr.UnsupportedType(declared)
}
