package key_test

import (
	"crypto/sha256"
	"strings"
	"testing"

	"github.com/r3e-go/eosiogo/key"
	"github.com/stretchr/testify/require"
)

func TestImportWIFExportsExpectedPublicKey(t *testing.T) {
	k, err := key.ImportWIF("5KJbQhJSyayfUvfpK1d7sPYBRdjGz1EHgeCE8mfrZC1pM4Z9Tto")
	require.NoError(t, err)
	require.False(t, k.PublicOnly())
	require.Equal(t, "EOS72kwLAoSdeVjUgKTCJ9cysF2iQVJehmGMjWrJUfbGnxATgYVRf", k.ExportPublic())
}

func TestImportPVTExportsExpectedPublicKey(t *testing.T) {
	k, err := key.ImportPVT("PVT_K1_2jH3nnhxhR3zPUcsKaWWZC9ZmZAnKm3GAnFD1xynGJE1Znuvjd")
	require.NoError(t, err)
	require.False(t, k.PublicOnly())
	require.Equal(t, "EOS859gxfnXyUriMgUeThh1fWv3oqcpLFyHa3TfFYC4PK2HqhToVM", k.ExportPublic())
}

func TestImportPublicIsPublicOnly(t *testing.T) {
	k, err := key.ImportPublic("EOS72kwLAoSdeVjUgKTCJ9cysF2iQVJehmGMjWrJUfbGnxATgYVRf")
	require.NoError(t, err)
	require.True(t, k.PublicOnly())
	require.Len(t, k.PublicBytes(), 33)

	_, err = k.ExportWIF()
	require.Error(t, err)
	_, err = k.ExportPVT()
	require.Error(t, err)
	_, err = k.Sign(make([]byte, 32))
	require.Error(t, err)
}

func TestWIFAndPVTAgreeOnTheSameScalar(t *testing.T) {
	k, err := key.ImportWIF("5KJbQhJSyayfUvfpK1d7sPYBRdjGz1EHgeCE8mfrZC1pM4Z9Tto")
	require.NoError(t, err)

	pvt, err := k.ExportPVT()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(pvt, "PVT_K1_"))

	reimported, err := key.ImportPVT(pvt)
	require.NoError(t, err)
	require.Equal(t, k.ExportPublic(), reimported.ExportPublic())
}

func TestGenerateSignAndVerifyRoundTrip(t *testing.T) {
	k, err := key.Generate()
	require.NoError(t, err)
	require.False(t, k.PublicOnly())

	digest := sha256.Sum256([]byte("eosiogo signer pipeline"))
	sigText, err := k.Sign(digest[:])
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(sigText, "SIG_K1_"))

	require.True(t, k.Verify(sigText, digest[:]))

	other, err := key.Generate()
	require.NoError(t, err)
	require.False(t, other.Verify(sigText, digest[:]))

	tamperedDigest := sha256.Sum256([]byte("a different message"))
	require.False(t, k.Verify(sigText, tamperedDigest[:]))
}

func TestVerifyRejectsMalformedSignatureText(t *testing.T) {
	k, err := key.Generate()
	require.NoError(t, err)
	digest := make([]byte, 32)
	require.False(t, k.Verify("not a signature", digest))
	require.False(t, k.Verify("SIG_K1_", digest))
}

func TestSignRejectsWrongDigestLength(t *testing.T) {
	k, err := key.Generate()
	require.NoError(t, err)
	_, err = k.Sign([]byte{0x01, 0x02})
	require.Error(t, err)
}

func TestVerifyOverPublicOnlyKey(t *testing.T) {
	priv, err := key.Generate()
	require.NoError(t, err)
	digest := sha256.Sum256([]byte("public only verify"))
	sigText, err := priv.Sign(digest[:])
	require.NoError(t, err)

	pub, err := key.ImportPublic(priv.ExportPublic())
	require.NoError(t, err)
	require.True(t, pub.Verify(sigText, digest[:]))
}

func TestImportWIFRejectsBadChecksum(t *testing.T) {
	_, err := key.ImportWIF("5KJbQhJSyayfUvfpK1d7sPYBRdjGz1EHgeCE8mfrZC1pM4Z9Tsa")
	require.Error(t, err)
}

func TestToKeyWeight(t *testing.T) {
	k, err := key.Generate()
	require.NoError(t, err)
	kw := k.ToKeyWeight(1)
	require.Equal(t, k.PublicBytes(), kw.Key)
	require.Equal(t, uint16(1), kw.Weight)
}

func TestImportPublicRejectsUnknownPrefix(t *testing.T) {
	_, err := key.ImportPublic("XYZ72kwLAoSdeVjUgKTCJ9cysF2iQVJehmGMjWrJUfbGnxATgYVRf")
	require.Error(t, err)
}
