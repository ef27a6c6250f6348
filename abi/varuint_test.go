package abi_test

import (
	"testing"

	"github.com/r3e-go/eosiogo/abi"
	"github.com/stretchr/testify/require"
)

func TestVarUintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 129, 16383, 16384, 300, 1 << 20, ^uint64(0)}
	for _, v := range values {
		encoded := abi.EncodeVarUint(v, nil)
		require.NotEmpty(t, encoded)

		got, n, err := abi.DecodeVarUint(encoded)
		require.NoError(t, err)
		require.Equal(t, len(encoded), n)
		require.Equal(t, v, got)
	}
}

func TestVarUintZeroIsSingleByte(t *testing.T) {
	encoded := abi.EncodeVarUint(0, nil)
	require.Equal(t, []byte{0x00}, encoded)
}

func TestVarUintContinuationBit(t *testing.T) {
	// 300 = 0b1_0010_1100 -> low 7 bits 0b0101100 with continuation set,
	// then remaining 0b10 as the final byte.
	encoded := abi.EncodeVarUint(300, nil)
	require.Equal(t, []byte{0xac, 0x02}, encoded)
}
