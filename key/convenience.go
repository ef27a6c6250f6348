package key

import "github.com/r3e-go/eosiogo/abi"

// ToKeyWeight builds an abi.KeyWeight from this key's compressed public
// point, the one contract-agnostic convenience constructor the key
// module keeps (everything building a specific contract action stays
// out of scope).
func (k *Key) ToKeyWeight(weight uint16) abi.KeyWeight {
	return abi.KeyWeight{Key: k.PublicBytes(), Weight: weight}
}
