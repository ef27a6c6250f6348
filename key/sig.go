package key

import (
	"crypto/sha256"
	"math/big"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/nspcc-dev/rfc6979"

	eoserr "github.com/r3e-go/eosiogo/internal/errors"
)

const (
	sigPrefix      = "SIG_"
	compactSigLen  = 65 // recovery byte || r(32) || s(32)
	maxSignRetries = 256
)

var curve = secp256k1.S256()

// derScalarLen is the length a big-endian scalar would occupy once
// DER-encoded as an INTEGER: its minimal byte length, plus one if the top
// bit of the leading byte is set and DER must prepend a zero sign byte.
func derScalarLen(v *big.Int) int {
	b := v.Bytes()
	if len(b) > 0 && b[0]&0x80 != 0 {
		return len(b) + 1
	}
	return len(b)
}

func isCanonical(r, s *big.Int) bool {
	return derScalarLen(r) == 32 && derScalarLen(s) == 32
}

// Sign produces a canonical, recoverable signature over a 32-byte
// digest (spec §4.7). Each attempt derives its RFC-6979 nonce from
// SHA-256(digest) for the first try, then SHA-256(digest || attempt)
// for subsequent ones, until both scalars DER-encode to exactly 32
// bytes. No low-S normalization is applied; canonicality is the
// DER-length test alone.
func (k *Key) Sign(digest []byte) (string, error) {
	if len(digest) != 32 {
		return "", eoserr.BadDigest(len(digest))
	}
	if k.PublicOnly() {
		return "", eoserr.MalformedKeyText(errNoPrivateScalar)
	}

	order := curve.Params().N
	d := new(big.Int).SetBytes(k.priv.Serialize())
	e := new(big.Int).SetBytes(digest)

	for attempt := 0; attempt < maxSignRetries; attempt++ {
		toHash := digest
		if attempt > 0 {
			toHash = append(append([]byte{}, digest...), byte(attempt))
		}
		h := sha256.Sum256(toHash)

		var kNonce *big.Int
		rfc6979.GenerateSecret(order, d, sha256.New, h[:], func(candidate *big.Int) bool {
			kNonce = candidate
			return true
		})

		rx, _ := curve.ScalarBaseMult(kNonce.Bytes())
		r := new(big.Int).Mod(rx, order)
		if r.Sign() == 0 {
			continue
		}

		kInv := new(big.Int).ModInverse(kNonce, order)
		s := new(big.Int).Mul(d, r)
		s.Add(s, e)
		s.Mul(s, kInv)
		s.Mod(s, order)
		if s.Sign() == 0 {
			continue
		}

		if !isCanonical(r, s) {
			continue
		}

		recoveryID, err := findRecoveryParam(digest, r, s, k.PublicBytes())
		if err != nil {
			continue
		}

		return encodeSignature(r, s, recoveryID), nil
	}

	return "", eoserr.NoCanonicalSignature(maxSignRetries)
}

// findRecoveryParam searches i in {0,1,2,3} for the value that recovers
// wantCompressed from (digest, r, s), per SEC-1 §4.1.6 (spec §4.7).
func findRecoveryParam(digest []byte, r, s *big.Int, wantCompressed []byte) (int, error) {
	for i := 0; i < 4; i++ {
		recovered, err := recoverCompressed(digest, r, s, i)
		if err != nil {
			continue
		}
		if constantTimeEqual(recovered, wantCompressed) {
			return i, nil
		}
	}
	return 0, eoserr.NoRecoveryParam()
}

// recoverCompressed reconstructs the compressed public point that would
// produce signature (r,s) over digest under recovery parameter i.
func recoverCompressed(digest []byte, r, s *big.Int, i int) ([]byte, error) {
	order := curve.Params().N
	p := curve.Params().P

	x := new(big.Int).Set(r)
	if i >= 2 {
		x.Add(x, order)
		if x.Cmp(p) >= 0 {
			return nil, eoserr.NoRecoveryParam()
		}
	}

	ySq := new(big.Int).Exp(x, big.NewInt(3), p)
	ySq.Add(ySq, big.NewInt(7))
	ySq.Mod(ySq, p)
	y := new(big.Int).ModSqrt(ySq, p)
	if y == nil {
		return nil, eoserr.NoRecoveryParam()
	}
	if int(y.Bit(0)) != i&1 {
		y.Sub(p, y)
	}

	e := new(big.Int).SetBytes(digest)
	rInv := new(big.Int).ModInverse(r, order)

	sRx, sRy := curve.ScalarMult(x, y, s.Bytes())
	eGx, eGy := curve.ScalarBaseMult(new(big.Int).Mod(e, order).Bytes())
	eGy.Sub(p, eGy)
	eGy.Mod(eGy, p)

	qx, qy := curve.Add(sRx, sRy, eGx, eGy)
	qx, qy = curve.ScalarMult(qx, qy, rInv.Bytes())

	return compressPoint(qx, qy), nil
}

func compressPoint(x, y *big.Int) []byte {
	out := make([]byte, 33)
	out[0] = 0x02
	if y.Bit(0) == 1 {
		out[0] = 0x03
	}
	xb := x.Bytes()
	copy(out[33-len(xb):], xb)
	return out
}

// encodeSignature renders (r, s, recoveryID) as SIG_K1_<base58check>.
// The transmitted recovery byte is i+4+27 (spec §4.7 step 7).
func encodeSignature(r, s *big.Int, recoveryID int) string {
	payload := make([]byte, compactSigLen)
	payload[0] = byte(recoveryID + 4 + 27)
	putScalar(payload[1:33], r)
	putScalar(payload[33:65], s)

	checksum := ripemd160Checksum(payload, defaultTag)
	return sigPrefix + defaultTag + "_" + encodeChecksummed(payload, checksum)
}

func putScalar(dst []byte, v *big.Int) {
	b := v.Bytes()
	copy(dst[len(dst)-len(b):], b)
}

// Verify reports whether sigText is a valid signature over digest by
// this key's verifying point. A malformed signature text or the wrong
// key both return false, not an error (spec §4.7).
func (k *Key) Verify(sigText string, digest []byte) bool {
	r, s, ok := parseSignature(sigText)
	if !ok || len(digest) != 32 {
		return false
	}

	order := curve.Params().N
	if r.Sign() <= 0 || r.Cmp(order) >= 0 || s.Sign() <= 0 || s.Cmp(order) >= 0 {
		return false
	}

	w := new(big.Int).ModInverse(s, order)
	e := new(big.Int).SetBytes(digest)
	u1 := new(big.Int).Mul(e, w)
	u1.Mod(u1, order)
	u2 := new(big.Int).Mul(r, w)
	u2.Mod(u2, order)

	x1, y1 := curve.ScalarBaseMult(u1.Bytes())
	qx, qy := pubKeyCoords(k.pub)
	x2, y2 := curve.ScalarMult(qx, qy, u2.Bytes())
	x, _ := curve.Add(x1, y1, x2, y2)

	x.Mod(x, order)
	return x.Cmp(r) == 0
}

// pubKeyCoords extracts affine (x, y) big.Ints from a public key by
// round-tripping through its uncompressed serialization, sidestepping
// the library's internal field-element type.
func pubKeyCoords(pub *secp256k1.PublicKey) (x, y *big.Int) {
	raw := pub.SerializeUncompressed()
	return new(big.Int).SetBytes(raw[1:33]), new(big.Int).SetBytes(raw[33:65])
}

// parseSignature decodes a SIG_<tag>_<...> string into its r and s
// scalars, dropping the recovery byte.
func parseSignature(s string) (r, ss *big.Int, ok bool) {
	rest, found := strings.CutPrefix(s, sigPrefix)
	if !found {
		return nil, nil, false
	}
	tag, body, found := strings.Cut(rest, "_")
	if !found {
		return nil, nil, false
	}

	payload, err := decodeChecksummed(body, func(p []byte) []byte { return ripemd160Checksum(p, tag) })
	if err != nil || len(payload) != compactSigLen {
		return nil, nil, false
	}

	r = new(big.Int).SetBytes(payload[1:33])
	ss = new(big.Int).SetBytes(payload[33:65])
	return r, ss, true
}
