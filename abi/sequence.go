package abi

// EncodeSequence appends a varuint element count followed by each element's
// encoding, in order (spec §3, §4.5). Using a type parameter here keeps the
// element codec statically dispatched rather than routed through runtime
// reflection, per the "sum type per field type" guidance for this codec.
func EncodeSequence[T any](items []T, dst []byte, encodeElem func([]byte, T) []byte) []byte {
	dst = EncodeVarUint(uint64(len(items)), dst)
	for _, item := range items {
		dst = encodeElem(dst, item)
	}
	return dst
}

// DecodeSequence reads a varuint count, then decodes exactly that many
// elements, propagating the byte advance across reads.
func DecodeSequence[T any](b []byte, decodeElem func([]byte) (T, int, error)) ([]T, int, error) {
	count, cursor, err := DecodeVarUint(b)
	if err != nil {
		return nil, 0, err
	}

	items := make([]T, 0, count)
	for i := uint64(0); i < count; i++ {
		item, n, err := decodeElem(b[cursor:])
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
		cursor += n
	}
	return items, cursor, nil
}
