package key

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Key wraps a secp256k1 key pair. A public_only Key (priv == nil) can
// verify signatures and export its public text form but cannot sign.
type Key struct {
	priv *secp256k1.PrivateKey
	pub  *secp256k1.PublicKey
}

// Generate draws a new secp256k1 scalar from the platform's
// cryptographic RNG (spec §4.7).
func Generate() (*Key, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	return &Key{priv: priv, pub: priv.PubKey()}, nil
}

// PublicOnly reports whether this Key holds only a verifying point.
func (k *Key) PublicOnly() bool {
	return k.priv == nil
}

// PublicBytes returns the 33-byte compressed public point, the wire
// form required everywhere a public key is transmitted (spec §3).
func (k *Key) PublicBytes() []byte {
	return k.pub.SerializeCompressed()
}

// fromPrivateScalar builds a Key from a raw 32-byte private scalar.
func fromPrivateScalar(scalar []byte) *Key {
	priv := secp256k1.PrivKeyFromBytes(scalar)
	return &Key{priv: priv, pub: priv.PubKey()}
}

// fromPublicBytes builds a public_only Key from a compressed point.
func fromPublicBytes(compressed []byte) (*Key, error) {
	pub, err := secp256k1.ParsePubKey(compressed)
	if err != nil {
		return nil, err
	}
	return &Key{pub: pub}, nil
}
